// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package battery

import (
	"github.com/bitmark-inc/batteryd/account"
	"github.com/bitmark-inc/batteryd/merkle"
)

// Battery - the registry record for one battery
//
// Station is nil while the battery is with its owner
type Battery struct {
	Id           merkle.Digest    `json:"id"`
	Owner        *account.Account `json:"owner"`
	Station      *account.Account `json:"station"`
	Tradable     bool             `json:"tradable"`
	RegisteredAt uint64           `json:"registeredAt"`
}

// StateType - where a battery currently is
type StateType int

// possible states
const (
	Unregistered StateType = iota
	AtStation    StateType = iota
	WithOwner    StateType = iota
)

// State - derived custody state
//
// Tradable is only meaningful for AtStation
type State struct {
	Type     StateType
	Tradable bool
}

// String - state name
func (t StateType) String() string {
	switch t {
	case Unregistered:
		return "unregistered"
	case AtStation:
		return "at station"
	case WithOwner:
		return "with owner"
	default:
		return "unknown"
	}
}

// State - derive the custody state of a record
//
// a nil record is an unregistered battery
func (b *Battery) State() State {
	if nil == b {
		return State{Type: Unregistered}
	}
	if nil != b.Station {
		return State{Type: AtStation, Tradable: b.Tradable}
	}
	return State{Type: WithOwner}
}

// HasCustodian - true if held by a station
func (b *Battery) HasCustodian() bool {
	return nil != b.Station
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package event - the typed notifications emitted by registry operations
//
// consumers depend on the event name and the order of its fields
package event

import (
	"encoding/json"

	"github.com/bitmark-inc/batteryd/account"
	"github.com/bitmark-inc/batteryd/merkle"
)

// Event - one notification
type Event interface {
	Name() string
	Fields() []Field
}

// Field - a named event field
type Field struct {
	Name  string
	Value interface{}
}

// Sink - receives events in emission order
type Sink interface {
	Deposit(Event)
}

// event names
const (
	StationRegisteredName  = "StationRegistered"
	BatteryRegisteredName  = "BatteryRegistered"
	TradableSwitchedName   = "TradableSwitched"
	StoredToStationName    = "StoredToStation"
	FetchedFromStationName = "FetchedFromStation"
	TradedName             = "Traded"
)

// StationRegistered - a new station
type StationRegistered struct {
	Station *account.Account
}

func (e StationRegistered) Name() string { return StationRegisteredName }
func (e StationRegistered) Fields() []Field {
	return []Field{
		{"station", e.Station},
	}
}

// BatteryRegistered - a station created a battery for an owner
type BatteryRegistered struct {
	Station *account.Account
	Id      merkle.Digest
	Owner   *account.Account
}

func (e BatteryRegistered) Name() string { return BatteryRegisteredName }
func (e BatteryRegistered) Fields() []Field {
	return []Field{
		{"station", e.Station},
		{"id", e.Id},
		{"owner", e.Owner},
	}
}

// TradableSwitched - the new value of the tradable flag
type TradableSwitched struct {
	Id       merkle.Digest
	Tradable bool
}

func (e TradableSwitched) Name() string { return TradableSwitchedName }
func (e TradableSwitched) Fields() []Field {
	return []Field{
		{"id", e.Id},
		{"tradable", e.Tradable},
	}
}

// StoredToStation - a battery was handed to a station
type StoredToStation struct {
	Id      merkle.Digest
	Owner   *account.Account
	Station *account.Account
}

func (e StoredToStation) Name() string { return StoredToStationName }
func (e StoredToStation) Fields() []Field {
	return []Field{
		{"id", e.Id},
		{"owner", e.Owner},
		{"station", e.Station},
	}
}

// FetchedFromStation - an owner took a battery back
//
// Caller and Owner are always the same identity
type FetchedFromStation struct {
	Id     merkle.Digest
	Caller *account.Account
	Owner  *account.Account
}

func (e FetchedFromStation) Name() string { return FetchedFromStationName }
func (e FetchedFromStation) Fields() []Field {
	return []Field{
		{"id", e.Id},
		{"caller", e.Caller},
		{"owner", e.Owner},
	}
}

// Traded - a station moved ownership of a battery
type Traded struct {
	Id      merkle.Digest
	From    *account.Account
	To      *account.Account
	Station *account.Account
}

func (e Traded) Name() string { return TradedName }
func (e Traded) Fields() []Field {
	return []Field{
		{"id", e.Id},
		{"from", e.From},
		{"to", e.To},
		{"station", e.Station},
	}
}

// Marshal - JSON array of name followed by field values in order
//
// e.g. ["Traded","<id>","<from>","<to>","<station>"]
func Marshal(e Event) ([]byte, error) {
	fields := e.Fields()
	values := make([]interface{}, 0, len(fields)+1)
	values = append(values, e.Name())
	for _, f := range fields {
		values = append(values, f.Value)
	}
	return json.Marshal(values)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/batteryd/account"
	"github.com/bitmark-inc/batteryd/rpc/owner"
	"github.com/bitmark-inc/batteryd/rpc/station"
)

// RegisterStation - the client's account becomes a station
func (client *Client) RegisterStation() (*station.RegisterReply, error) {
	auth, err := client.authorise(station.RegisterMethod)
	if nil != err {
		return nil, err
	}

	arguments := station.RegisterArguments{
		Authorisation: auth,
	}
	var reply station.RegisterReply
	if err := client.call(station.RegisterMethod, &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ListStations - a page of stations
func (client *Client) ListStations(start uint64, count int) (*station.ListReply, error) {
	arguments := station.ListArguments{
		Start: start,
		Count: count,
	}
	var reply station.ListReply
	if err := client.call("Station.List", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// InStation - a page of the batteries a station holds
func (client *Client) InStation(s *account.Account, start uint64, count int) (*station.BatteriesReply, error) {
	arguments := station.BatteriesArguments{
		Station: s,
		Start:   start,
		Count:   count,
	}
	var reply station.BatteriesReply
	if err := client.call("Station.Batteries", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Owned - a page of the batteries an account owns
func (client *Client) Owned(o *account.Account, start uint64, count int) (*owner.BatteriesReply, error) {
	arguments := owner.BatteriesArguments{
		Owner: o,
		Start: start,
		Count: count,
	}
	var reply owner.BatteriesReply
	if err := client.call("Owner.Batteries", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

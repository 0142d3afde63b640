// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/batteryd/account"
	"github.com/bitmark-inc/batteryd/merkle"
	"github.com/bitmark-inc/batteryd/rpc/battery"
)

// RegisterBattery - the client's station creates a battery for owner
func (client *Client) RegisterBattery(owner *account.Account) (*battery.Reply, error) {
	auth, err := client.authorise(battery.RegisterMethod, owner.Bytes())
	if nil != err {
		return nil, err
	}

	arguments := battery.RegisterArguments{
		Authorisation: auth,
		Owner:         owner,
	}
	var reply battery.Reply
	if err := client.call(battery.RegisterMethod, &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// SwitchTradable - toggle the tradable flag of an owned battery
func (client *Client) SwitchTradable(id merkle.Digest) (*battery.Reply, error) {
	return client.change(battery.SwitchTradableMethod, id)
}

// StoreToStation - the client's station takes custody
func (client *Client) StoreToStation(id merkle.Digest) (*battery.Reply, error) {
	return client.change(battery.StoreToStationMethod, id)
}

// FetchFromStation - the client, as owner, takes the battery back from its station
func (client *Client) FetchFromStation(id merkle.Digest) (*battery.Reply, error) {
	return client.change(battery.FetchFromStationMethod, id)
}

func (client *Client) change(method string, id merkle.Digest) (*battery.Reply, error) {
	auth, err := client.authorise(method, id[:])
	if nil != err {
		return nil, err
	}

	arguments := battery.IdArguments{
		Authorisation: auth,
		Id:            id,
	}
	var reply battery.Reply
	if err := client.call(method, &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Trade - the client's station sells a battery to a new owner
func (client *Client) Trade(id merkle.Digest, to *account.Account) (*battery.Reply, error) {
	auth, err := client.authorise(battery.TradeMethod, id[:], to.Bytes())
	if nil != err {
		return nil, err
	}

	arguments := battery.TradeArguments{
		Authorisation: auth,
		Id:            id,
		To:            to,
	}
	var reply battery.Reply
	if err := client.call(battery.TradeMethod, &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetBattery - read one battery
func (client *Client) GetBattery(id merkle.Digest) (*battery.GetReply, error) {
	arguments := battery.GetArguments{
		Id: id,
	}
	var reply battery.GetReply
	if err := client.call("Battery.Get", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ListBatteries - a page of all batteries
func (client *Client) ListBatteries(start uint64, count int) (*battery.ListReply, error) {
	arguments := battery.ListArguments{
		Start: start,
		Count: count,
	}
	var reply battery.ListReply
	if err := client.call("Battery.List", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

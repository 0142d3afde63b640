// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package battery

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/batteryd/account"
	"github.com/bitmark-inc/batteryd/fault"
	"github.com/bitmark-inc/batteryd/merkle"
	"github.com/bitmark-inc/batteryd/mode"
	"github.com/bitmark-inc/batteryd/registry"
	"github.com/bitmark-inc/batteryd/rpc/paging"
	"github.com/bitmark-inc/batteryd/rpc/ratelimit"
	"github.com/bitmark-inc/batteryd/rpc/signed"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitBattery = 200
	rateBurstBattery = 100
)

// method names as signed by clients
const (
	RegisterMethod         = "Battery.Register"
	SwitchTradableMethod   = "Battery.SwitchTradable"
	StoreToStationMethod   = "Battery.StoreToStation"
	FetchFromStationMethod = "Battery.FetchFromStation"
	TradeMethod            = "Battery.Trade"
)

// Battery - type for the RPC
type Battery struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	Registry     registry.Registry
	Verifier     *signed.Verifier
	IsNormalMode func(mode.Mode) bool
}

// New - create battery RPC handler
func New(log *logger.L, reg registry.Registry, verifier *signed.Verifier, isNormalMode func(mode.Mode) bool) *Battery {
	return &Battery{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitBattery, rateBurstBattery),
		Registry:     reg,
		Verifier:     verifier,
		IsNormalMode: isNormalMode,
	}
}

// common checks for all changing requests
func (battery *Battery) authorise(method string, auth *signed.Authorisation, parameters ...[]byte) error {
	if err := ratelimit.Limit(battery.Limiter); nil != err {
		return err
	}

	if !battery.IsNormalMode(mode.Normal) {
		return fault.NotAvailable
	}

	return battery.Verifier.Verify(method, auth, parameters...)
}

// Register
// --------

// RegisterArguments - arguments for RPC
type RegisterArguments struct {
	Authorisation signed.Authorisation `json:"authorisation"`
	Owner         *account.Account     `json:"owner"`
}

// Reply - result of a changing request
type Reply struct {
	Id merkle.Digest `json:"id"`
}

// Register - a station records a new battery for an owner
func (battery *Battery) Register(arguments *RegisterArguments, reply *Reply) error {

	if nil == arguments || nil == arguments.Owner {
		return fault.MissingParameters
	}
	if err := battery.Verifier.CheckNetwork(arguments.Owner); nil != err {
		return err
	}

	err := battery.authorise(RegisterMethod, &arguments.Authorisation, arguments.Owner.Bytes())
	if nil != err {
		return err
	}

	log := battery.Log
	log.Infof("Battery.Register: station: %s  owner: %s", arguments.Authorisation.Caller, arguments.Owner)

	id, err := battery.Registry.RegisterBattery(arguments.Authorisation.Caller, arguments.Owner)
	if nil != err {
		return err
	}

	reply.Id = id
	return nil
}

// Battery changes
// ---------------

// IdArguments - arguments for RPC that act on one battery
type IdArguments struct {
	Authorisation signed.Authorisation `json:"authorisation"`
	Id            merkle.Digest        `json:"id"`
}

// SwitchTradable - the owner toggles the tradable flag
func (battery *Battery) SwitchTradable(arguments *IdArguments, reply *Reply) error {
	return battery.change(SwitchTradableMethod, arguments, reply, battery.Registry.SwitchTradable)
}

// StoreToStation - a station takes custody of a battery
func (battery *Battery) StoreToStation(arguments *IdArguments, reply *Reply) error {
	return battery.change(StoreToStationMethod, arguments, reply, battery.Registry.StoreToStation)
}

// FetchFromStation - the owner takes a battery back from its station
func (battery *Battery) FetchFromStation(arguments *IdArguments, reply *Reply) error {
	return battery.change(FetchFromStationMethod, arguments, reply, battery.Registry.FetchFromStation)
}

func (battery *Battery) change(method string, arguments *IdArguments, reply *Reply, operation func(*account.Account, merkle.Digest) error) error {
	if nil == arguments {
		return fault.MissingParameters
	}

	err := battery.authorise(method, &arguments.Authorisation, arguments.Id[:])
	if nil != err {
		return err
	}

	battery.Log.Infof("%s: caller: %s  id: %v", method, arguments.Authorisation.Caller, arguments.Id)

	err = operation(arguments.Authorisation.Caller, arguments.Id)
	if nil != err {
		return err
	}

	reply.Id = arguments.Id
	return nil
}

// Trade
// -----

// TradeArguments - arguments for RPC
type TradeArguments struct {
	Authorisation signed.Authorisation `json:"authorisation"`
	Id            merkle.Digest        `json:"id"`
	To            *account.Account     `json:"to"`
}

// Trade - the custodian station sells a tradable battery to a new owner
func (battery *Battery) Trade(arguments *TradeArguments, reply *Reply) error {

	if nil == arguments || nil == arguments.To {
		return fault.MissingParameters
	}
	if err := battery.Verifier.CheckNetwork(arguments.To); nil != err {
		return err
	}

	err := battery.authorise(TradeMethod, &arguments.Authorisation, arguments.Id[:], arguments.To.Bytes())
	if nil != err {
		return err
	}

	battery.Log.Infof("Battery.Trade: station: %s  id: %v  to: %s", arguments.Authorisation.Caller, arguments.Id, arguments.To)

	err = battery.Registry.TradeBattery(arguments.Authorisation.Caller, arguments.Id, arguments.To)
	if nil != err {
		return err
	}

	reply.Id = arguments.Id
	return nil
}

// Get
// ---

// GetArguments - arguments for RPC
type GetArguments struct {
	Id merkle.Digest `json:"id"`
}

// GetReply - a battery record with its derived state
type GetReply struct {
	Id           merkle.Digest    `json:"id"`
	Owner        *account.Account `json:"owner"`
	Station      *account.Account `json:"station,omitempty"`
	Tradable     bool             `json:"tradable"`
	RegisteredAt uint64           `json:"registeredAt"`
	State        string           `json:"state"`
	Index        uint64           `json:"index"`
}

// Get - read a battery
func (battery *Battery) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(battery.Limiter); nil != err {
		return err
	}

	b, err := battery.Registry.Battery(arguments.Id)
	if nil != err {
		return err
	}

	reply.Id = b.Id
	reply.Owner = b.Owner
	reply.Station = b.Station
	reply.Tradable = b.Tradable
	reply.RegisteredAt = b.RegisteredAt
	reply.State = b.State().Type.String()
	reply.Index, _ = battery.Registry.OwnedIndex(b.Owner, b.Id)

	return nil
}

// List
// ----

// ListArguments - arguments for RPC
type ListArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// ListReply - a page of battery identifiers
type ListReply struct {
	Batteries []merkle.Digest `json:"batteries"`
	Next      uint64          `json:"next,string"`
	Total     uint64          `json:"total,string"`
}

// List - page through all registered batteries
func (battery *Battery) List(arguments *ListArguments, reply *ListReply) error {

	if err := ratelimit.LimitN(battery.Limiter, arguments.Count, paging.MaximumCount); nil != err {
		return err
	}

	reg := battery.Registry
	total := reg.BatteryCount()
	reply.Batteries, reply.Next = paging.Digests(arguments.Start, arguments.Count, total, reg.BatteryByIndex)
	reply.Total = total

	return nil
}

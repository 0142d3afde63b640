// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package station

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
	rateLimitStation = 200
	rateBurstStation = 100
)

// RegisterMethod - method name as signed by clients
const RegisterMethod = "Station.Register"

// Station - type for the RPC
type Station struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	Registry     registry.Registry
	Verifier     *signed.Verifier
	IsNormalMode func(mode.Mode) bool
}

// New - create station RPC handler
func New(log *logger.L, reg registry.Registry, verifier *signed.Verifier, isNormalMode func(mode.Mode) bool) *Station {
	return &Station{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitStation, rateBurstStation),
		Registry:     reg,
		Verifier:     verifier,
		IsNormalMode: isNormalMode,
	}
}

// RegisterArguments - arguments for RPC
type RegisterArguments struct {
	Authorisation signed.Authorisation `json:"authorisation"`
}

// RegisterReply - result of registration
type RegisterReply struct {
	Station *account.Account `json:"station"`
	Count   uint64           `json:"count,string"`
}

// Register - the caller becomes a station
func (station *Station) Register(arguments *RegisterArguments, reply *RegisterReply) error {

	if err := ratelimit.Limit(station.Limiter); nil != err {
		return err
	}

	if !station.IsNormalMode(mode.Normal) {
		return fault.NotAvailable
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	err := station.Verifier.Verify(RegisterMethod, &arguments.Authorisation)
	if nil != err {
		return err
	}

	caller := arguments.Authorisation.Caller
	station.Log.Infof("Station.Register: %s", caller)

	err = station.Registry.RegisterStation(caller)
	if nil != err {
		return err
	}

	reply.Station = caller
	reply.Count = station.Registry.StationCount()
	return nil
}

// ListArguments - arguments for RPC
type ListArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// ListReply - a page of stations in registration order
type ListReply struct {
	Stations []*account.Account `json:"stations"`
	Next     uint64             `json:"next,string"`
	Total    uint64             `json:"total,string"`
}

// List - page through the registered stations
func (station *Station) List(arguments *ListArguments, reply *ListReply) error {

	if err := ratelimit.LimitN(station.Limiter, arguments.Count, paging.MaximumCount); nil != err {
		return err
	}

	reg := station.Registry
	total := reg.StationCount()
	stations := make([]*account.Account, 0, arguments.Count)

	n := arguments.Start
	for ; n < total && len(stations) < arguments.Count; n += 1 {
		s, ok := reg.StationByIndex(n)
		if !ok {
			break
		}
		stations = append(stations, s)
	}

	reply.Stations = stations
	reply.Next = n
	reply.Total = total
	return nil
}

// BatteriesArguments - arguments for RPC
type BatteriesArguments struct {
	Station *account.Account `json:"station"`
	Start   uint64           `json:"start,string"`
	Count   int              `json:"count"`
}

// BatteriesReply - a page of batteries held by a station
type BatteriesReply struct {
	Batteries []merkle.Digest `json:"batteries"`
	Next      uint64          `json:"next,string"`
	Total     uint64          `json:"total,string"`
}

// Batteries - page through the batteries a station holds
func (station *Station) Batteries(arguments *BatteriesArguments, reply *BatteriesReply) error {

	if err := ratelimit.LimitN(station.Limiter, arguments.Count, paging.MaximumCount); nil != err {
		return err
	}

	if nil == arguments.Station {
		return fault.MissingParameters
	}

	reg := station.Registry
	s := arguments.Station
	total := reg.InStationCount(s)
	at := func(n uint64) (merkle.Digest, bool) {
		return reg.InStationByIndex(s, n)
	}
	reply.Batteries, reply.Next = paging.Digests(arguments.Start, arguments.Count, total, at)
	reply.Total = total

	return nil
}

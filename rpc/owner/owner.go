// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package owner

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/batteryd/account"
	"github.com/bitmark-inc/batteryd/fault"
	"github.com/bitmark-inc/batteryd/merkle"
	"github.com/bitmark-inc/batteryd/registry"
	"github.com/bitmark-inc/batteryd/rpc/paging"
	"github.com/bitmark-inc/batteryd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

// Owner
// -----

const (
	rateLimitOwner = 200
	rateBurstOwner = 100
)

// Owner - type for the RPC
type Owner struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry registry.Registry
}

// New - create owner RPC handler
func New(log *logger.L, reg registry.Registry) *Owner {
	return &Owner{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitOwner, rateBurstOwner),
		Registry: reg,
	}
}

// Owner batteries
// ---------------

// BatteriesArguments - arguments for RPC
type BatteriesArguments struct {
	Owner *account.Account `json:"owner"`        // base58
	Start uint64           `json:"start,string"` // first index
	Count int              `json:"count"`        // number of records
}

// BatteriesReply - result of owner RPC
type BatteriesReply struct {
	Batteries []merkle.Digest `json:"batteries"`
	Next      uint64          `json:"next,string"` // Start value for the next call
	Total     uint64          `json:"total,string"`
}

// Batteries - list batteries belonging to an account
func (owner *Owner) Batteries(arguments *BatteriesArguments, reply *BatteriesReply) error {

	if err := ratelimit.LimitN(owner.Limiter, arguments.Count, paging.MaximumCount); nil != err {
		return err
	}

	if nil == arguments.Owner {
		return fault.MissingParameters
	}

	log := owner.Log
	log.Debugf("Owner.Batteries: %+v", arguments)

	reg := owner.Registry
	o := arguments.Owner
	total := reg.OwnedCount(o)
	at := func(n uint64) (merkle.Digest, bool) {
		return reg.OwnedByIndex(o, n)
	}
	reply.Batteries, reply.Next = paging.Digests(arguments.Start, arguments.Count, total, at)
	reply.Total = total

	return nil
}

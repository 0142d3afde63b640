// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package station - the set of identities allowed to act as custodians
//
// stations are only ever added
package station

import (
	"github.com/bitmark-inc/batteryd/account"
	"github.com/bitmark-inc/batteryd/fault"
	"github.com/bitmark-inc/batteryd/indexedset"
	"github.com/bitmark-inc/batteryd/storage"
)

// Registry - registered stations in registration order
type Registry struct {
	set *indexedset.Set
}

// stations occupy a single partition
var allStations = []byte(nil)

// New - create a registry over the station pools
func New(count storage.Handle, array storage.Handle, position storage.Handle) *Registry {
	return &Registry{
		set: indexedset.New(count, array, position),
	}
}

// IsStation - check if an identity is registered
func (r *Registry) IsStation(trx storage.Query, identity *account.Account) bool {
	if nil == identity {
		return false
	}
	return r.set.Has(trx, allStations, identity.Bytes())
}

// Register - add a new station
func (r *Registry) Register(trx storage.Transaction, identity *account.Account) error {
	if nil == identity {
		return fault.NotAStation
	}
	if r.IsStation(trx, identity) {
		return fault.AlreadyRegistered
	}
	return r.set.Insert(trx, allStations, identity.Bytes())
}

// Count - number of registered stations
func (r *Registry) Count(trx storage.Query) uint64 {
	return r.set.Count(trx, allStations)
}

// StationAt - station by registration index
func (r *Registry) StationAt(trx storage.Query, index uint64) (*account.Account, bool) {
	b, ok := r.set.MemberAt(trx, allStations, index)
	if !ok {
		return nil, false
	}
	a, err := account.AccountFromBytes(b)
	if nil != err {
		return nil, false
	}
	return a, true
}

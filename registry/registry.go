// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"sync"

	"github.com/bitmark-inc/batteryd/account"
	"github.com/bitmark-inc/batteryd/battery"
	"github.com/bitmark-inc/batteryd/event"
	"github.com/bitmark-inc/batteryd/indexedset"
	"github.com/bitmark-inc/batteryd/merkle"
	"github.com/bitmark-inc/batteryd/station"
	"github.com/bitmark-inc/batteryd/storage"
	"github.com/bitmark-inc/logger"
)

// Environment - facts about the current invocation supplied by the host
type Environment interface {
	// each call takes the next extrinsic index of the current block
	Invocation() Invocation
}

// Invocation - block facts as seen by one operation
type Invocation struct {
	BlockNumber    uint64        // height of the current block
	ExtrinsicIndex uint32        // index of this invocation within the block
	RandomSeed     merkle.Digest // entropy for identifier generation
	Now            uint64        // block time in seconds
}

// Registry - the operations and queries on batteries
type Registry interface {
	RegisterStation(caller *account.Account) error
	RegisterBattery(caller *account.Account, owner *account.Account) (merkle.Digest, error)
	SwitchTradable(caller *account.Account, id merkle.Digest) error
	StoreToStation(caller *account.Account, id merkle.Digest) error
	FetchFromStation(caller *account.Account, id merkle.Digest) error
	TradeBattery(caller *account.Account, id merkle.Digest, to *account.Account) error

	Battery(id merkle.Digest) (*battery.Battery, error)
	BatteryCount() uint64
	BatteryByIndex(n uint64) (merkle.Digest, bool)
	OwnedCount(owner *account.Account) uint64
	OwnedByIndex(owner *account.Account, n uint64) (merkle.Digest, bool)
	OwnedIndex(owner *account.Account, id merkle.Digest) (uint64, bool)
	StationCount() uint64
	StationByIndex(n uint64) (*account.Account, bool)
	IsStation(identity *account.Account) bool
	InStationCount(station *account.Account) uint64
	InStationByIndex(station *account.Account, n uint64) (merkle.Digest, bool)
	InStationIndex(station *account.Account, id merkle.Digest) (uint64, bool)
	StateRoot() merkle.Digest
}

// Handles - the pools used by the registry
type Handles struct {
	Batteries storage.Handle

	AllCount storage.Handle
	AllArray storage.Handle
	AllIndex storage.Handle

	OwnedCount storage.Handle
	OwnedArray storage.Handle
	OwnedIndex storage.Handle

	StationsCount storage.Handle
	StationsArray storage.Handle
	StationsIndex storage.Handle

	InStationCount storage.Handle
	InStationArray storage.Handle
	InStationIndex storage.Handle
}

// PoolHandles - the handles of the initialised database
func PoolHandles() Handles {
	return Handles{
		Batteries:      storage.Pool.Batteries,
		AllCount:       storage.Pool.AllBatteriesCount,
		AllArray:       storage.Pool.AllBatteriesArray,
		AllIndex:       storage.Pool.AllBatteriesIndex,
		OwnedCount:     storage.Pool.OwnedBatteriesCount,
		OwnedArray:     storage.Pool.OwnedBatteriesArray,
		OwnedIndex:     storage.Pool.OwnedBatteriesIndex,
		StationsCount:  storage.Pool.StationsCount,
		StationsArray:  storage.Pool.StationsArray,
		StationsIndex:  storage.Pool.StationsIndex,
		InStationCount: storage.Pool.BatteriesCountInStation,
		InStationArray: storage.Pool.BatteriesArrayInStation,
		InStationIndex: storage.Pool.BatteriesIndexInStation,
	}
}

// Engine - the Registry over storage pools
type Engine struct {
	sync.Mutex // serialise all operations

	log  *logger.L
	env  Environment
	sink event.Sink

	begin func() (storage.Transaction, error)

	batteries *battery.Store
	all       *indexedset.Set
	owned     *indexedset.Set
	inStation *indexedset.Set
	stations  *station.Registry
}

// the global set has a single partition
var global = []byte(nil)

// New - create an engine
func New(log *logger.L, pools Handles, env Environment, sink event.Sink) *Engine {
	return &Engine{
		log:       log,
		env:       env,
		sink:      sink,
		begin:     storage.NewDBTransaction,
		batteries: battery.NewStore(pools.Batteries),
		all:       indexedset.New(pools.AllCount, pools.AllArray, pools.AllIndex),
		owned:     indexedset.New(pools.OwnedCount, pools.OwnedArray, pools.OwnedIndex),
		inStation: indexedset.New(pools.InStationCount, pools.InStationArray, pools.InStationIndex),
		stations:  station.New(pools.StationsCount, pools.StationsArray, pools.StationsIndex),
	}
}

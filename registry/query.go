// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/batteryd/account"
	"github.com/bitmark-inc/batteryd/battery"
	"github.com/bitmark-inc/batteryd/merkle"
	"github.com/bitmark-inc/batteryd/storage"
)

// queries only see committed data

// Battery - the record for an identifier
func (e *Engine) Battery(id merkle.Digest) (*battery.Battery, error) {
	return e.batteries.Get(storage.Committed, id)
}

// BatteryCount - number of batteries ever registered
func (e *Engine) BatteryCount() uint64 {
	return e.all.Count(storage.Committed, global)
}

// BatteryByIndex - battery by registration order
func (e *Engine) BatteryByIndex(n uint64) (merkle.Digest, bool) {
	return toDigest(e.all.MemberAt(storage.Committed, global, n))
}

// OwnedCount - number of batteries of an owner
func (e *Engine) OwnedCount(owner *account.Account) uint64 {
	if nil == owner {
		return 0
	}
	return e.owned.Count(storage.Committed, owner.Bytes())
}

// OwnedByIndex - battery at a slot of an owner
func (e *Engine) OwnedByIndex(owner *account.Account, n uint64) (merkle.Digest, bool) {
	if nil == owner {
		return merkle.Digest{}, false
	}
	return toDigest(e.owned.MemberAt(storage.Committed, owner.Bytes(), n))
}

// OwnedIndex - slot of a battery of an owner
func (e *Engine) OwnedIndex(owner *account.Account, id merkle.Digest) (uint64, bool) {
	if nil == owner {
		return 0, false
	}
	return e.owned.Position(storage.Committed, owner.Bytes(), id[:])
}

// StationCount - number of registered stations
func (e *Engine) StationCount() uint64 {
	return e.stations.Count(storage.Committed)
}

// StationByIndex - station by registration order
func (e *Engine) StationByIndex(n uint64) (*account.Account, bool) {
	return e.stations.StationAt(storage.Committed, n)
}

// IsStation - check if an identity is a station
func (e *Engine) IsStation(identity *account.Account) bool {
	return e.stations.IsStation(storage.Committed, identity)
}

// InStationCount - number of batteries held by a station
func (e *Engine) InStationCount(station *account.Account) uint64 {
	if nil == station {
		return 0
	}
	return e.inStation.Count(storage.Committed, station.Bytes())
}

// InStationByIndex - battery at a slot of a station
func (e *Engine) InStationByIndex(station *account.Account, n uint64) (merkle.Digest, bool) {
	if nil == station {
		return merkle.Digest{}, false
	}
	return toDigest(e.inStation.MemberAt(storage.Committed, station.Bytes(), n))
}

// InStationIndex - slot of a battery held by a station
func (e *Engine) InStationIndex(station *account.Account, id merkle.Digest) (uint64, bool) {
	if nil == station {
		return 0, false
	}
	return e.inStation.Position(storage.Committed, station.Bytes(), id[:])
}

// StateRoot - merkle root of all battery identifiers in registration order
func (e *Engine) StateRoot() merkle.Digest {
	e.Lock()
	defer e.Unlock()

	n := e.all.Count(storage.Committed, global)
	ids := make([]merkle.Digest, 0, n)
	for i := uint64(0); i < n; i += 1 {
		id, ok := toDigest(e.all.MemberAt(storage.Committed, global, i))
		if !ok {
			e.log.Criticalf("missing battery at index: %d of: %d", i, n)
			break
		}
		ids = append(ids, id)
	}
	return merkle.Root(ids)
}

func toDigest(buffer []byte, ok bool) (merkle.Digest, bool) {
	var d merkle.Digest
	if !ok {
		return d, false
	}
	if err := merkle.DigestFromBytes(&d, buffer); nil != err {
		return d, false
	}
	return d, true
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package battery

import (
	"github.com/bitmark-inc/batteryd/fault"
	"github.com/bitmark-inc/batteryd/merkle"
	"github.com/bitmark-inc/batteryd/storage"
	"github.com/bitmark-inc/logger"
)

// Store - battery records keyed by identifier
type Store struct {
	pool storage.Handle
}

// NewStore - create a store over a pool
func NewStore(pool storage.Handle) *Store {
	return &Store{
		pool: pool,
	}
}

// Has - check if a battery exists
func (s *Store) Has(trx storage.Query, id merkle.Digest) bool {
	return trx.Has(s.pool, id[:])
}

// Get - fetch a battery record
func (s *Store) Get(trx storage.Query, id merkle.Digest) (*Battery, error) {
	return decode(id, trx.Get(s.pool, id[:]))
}

// Put - overwrite the whole record
func (s *Store) Put(trx storage.Transaction, b *Battery) error {
	packed, err := b.Pack()
	if nil != err {
		return err
	}
	trx.Put(s.pool, b.Id[:], packed)
	return nil
}

func decode(id merkle.Digest, packed []byte) (*Battery, error) {
	if nil == packed {
		return nil, fault.BatteryNotFound
	}
	b, err := Packed(packed).Unpack()
	if nil != err {
		logger.Criticalf("battery: %v  corrupt record: %x  error: %s", id, packed, err)
		return nil, err
	}
	b.Id = id
	return b, nil
}

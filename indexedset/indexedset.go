// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package indexedset

import (
	"encoding/binary"

	"github.com/bitmark-inc/batteryd/fault"
	"github.com/bitmark-inc/batteryd/storage"
)

// Set - the three pools holding one partitioned set
type Set struct {
	count    storage.Handle
	array    storage.Handle
	position storage.Handle
}

// New - create a set over the given pools
func New(count storage.Handle, array storage.Handle, position storage.Handle) *Set {
	return &Set{
		count:    count,
		array:    array,
		position: position,
	}
}

// Count - number of members in a partition
func (s *Set) Count(trx storage.Query, partition []byte) uint64 {
	n, found := trx.GetN(s.count, partition)
	if !found {
		return 0
	}
	return n
}

// MemberAt - the member stored at an index
//
// second parameter is false if index is outside 0..Count-1
func (s *Set) MemberAt(trx storage.Query, partition []byte, index uint64) ([]byte, bool) {
	member := trx.Get(s.array, arrayKey(partition, index))
	if nil == member {
		return nil, false
	}
	return member, true
}

// Position - the index of a member
//
// second parameter is false if not a member
func (s *Set) Position(trx storage.Query, partition []byte, member []byte) (uint64, bool) {
	return trx.GetN(s.position, positionKey(partition, member))
}

// Has - check for membership
func (s *Set) Has(trx storage.Query, partition []byte, member []byte) bool {
	return trx.Has(s.position, positionKey(partition, member))
}

// Insert - append a member to the end of a partition
func (s *Set) Insert(trx storage.Transaction, partition []byte, member []byte) error {
	pKey := positionKey(partition, member)
	if trx.Has(s.position, pKey) {
		return fault.DuplicateMember
	}

	n := s.Count(trx, partition)

	trx.Put(s.array, arrayKey(partition, n), member)
	trx.PutN(s.position, pKey, n)
	trx.PutN(s.count, partition, n+1)

	return nil
}

// Remove - delete a member by moving the last member into its slot
//
// only the moved member changes index, the relative order of the
// rest is preserved
func (s *Set) Remove(trx storage.Transaction, partition []byte, member []byte) error {
	pKey := positionKey(partition, member)
	index, found := trx.GetN(s.position, pKey)
	if !found {
		return fault.NotAMember
	}

	n := s.Count(trx, partition)
	if 0 == n || index >= n {
		return fault.NotAMember
	}
	last := n - 1

	if index != last {
		lastMember, ok := s.MemberAt(trx, partition, last)
		if !ok {
			return fault.NotAMember
		}
		trx.Put(s.array, arrayKey(partition, index), lastMember)
		trx.PutN(s.position, positionKey(partition, lastMember), index)
	}

	trx.Delete(s.array, arrayKey(partition, last))
	trx.Delete(s.position, pKey)
	if 0 == last {
		trx.Delete(s.count, partition)
	} else {
		trx.PutN(s.count, partition, last)
	}

	return nil
}

func arrayKey(partition []byte, index uint64) []byte {
	key := make([]byte, len(partition)+8)
	copy(key, partition)
	binary.BigEndian.PutUint64(key[len(partition):], index)
	return key
}

func positionKey(partition []byte, member []byte) []byte {
	key := make([]byte, 0, len(partition)+len(member))
	key = append(key, partition...)
	return append(key, member...)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package indexedset_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/batteryd/fault"
	"github.com/bitmark-inc/batteryd/indexedset"
	"github.com/bitmark-inc/batteryd/storage"
)

func setup(t *testing.T) (*indexedset.Set, storage.Transaction, func()) {
	dir, err := ioutil.TempDir("", "indexedset-test")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	err = storage.Initialise(filepath.Join(dir, "test.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}

	s := indexedset.New(
		storage.Pool.OwnedBatteriesCount,
		storage.Pool.OwnedBatteriesArray,
		storage.Pool.OwnedBatteriesIndex,
	)
	return s, trx, func() {
		trx.Abort()
		storage.Finalise()
		os.RemoveAll(dir)
	}
}

var (
	partA = []byte("partition-a")
	partB = []byte("partition-b")
)

func members(n int) [][]byte {
	m := make([][]byte, n)
	for i := range m {
		m[i] = []byte{'m', byte('0' + i)}
	}
	return m
}

// every member in 0..count-1 maps back to its index and vice versa
func checkConsistent(t *testing.T, s *indexedset.Set, trx storage.Transaction, partition []byte) {
	n := s.Count(trx, partition)
	for i := uint64(0); i < n; i += 1 {
		member, ok := s.MemberAt(trx, partition, i)
		if !assert.True(t, ok, "missing member at: %d", i) {
			continue
		}
		position, ok := s.Position(trx, partition, member)
		assert.True(t, ok, "missing position for: %q", member)
		assert.Equal(t, i, position, "wrong position for: %q", member)
	}
	_, ok := s.MemberAt(trx, partition, n)
	assert.False(t, ok, "member beyond count")
}

func TestInsert(t *testing.T) {
	s, trx, done := setup(t)
	defer done()

	m := members(3)
	for i, member := range m {
		err := s.Insert(trx, partA, member)
		assert.Nil(t, err, "insert error")

		position, ok := s.Position(trx, partA, member)
		assert.True(t, ok, "no position")
		assert.Equal(t, uint64(i), position, "wrong position")
	}

	assert.Equal(t, uint64(3), s.Count(trx, partA), "wrong count")
	assert.Equal(t, uint64(0), s.Count(trx, partB), "other partition affected")
	assert.False(t, s.Has(trx, partB, m[0]), "member leaked to other partition")
	checkConsistent(t, s, trx, partA)

	err := s.Insert(trx, partA, m[1])
	assert.Equal(t, fault.DuplicateMember, err, "duplicate allowed")
	assert.Equal(t, uint64(3), s.Count(trx, partA), "count changed by duplicate")

	// same member may be in different partitions
	err = s.Insert(trx, partB, m[1])
	assert.Nil(t, err, "insert in second partition error")
	assert.Equal(t, uint64(1), s.Count(trx, partB), "wrong count in second partition")
}

func TestRemoveMiddle(t *testing.T) {
	s, trx, done := setup(t)
	defer done()

	m := members(4)
	for _, member := range m {
		assert.Nil(t, s.Insert(trx, partA, member), "insert error")
	}

	err := s.Remove(trx, partA, m[1])
	assert.Nil(t, err, "remove error")

	assert.Equal(t, uint64(3), s.Count(trx, partA), "wrong count")
	assert.False(t, s.Has(trx, partA, m[1]), "removed member still present")

	// last member moved into slot 1, others unchanged
	expected := [][]byte{m[0], m[3], m[2]}
	for i, member := range expected {
		actual, ok := s.MemberAt(trx, partA, uint64(i))
		assert.True(t, ok, "missing member")
		assert.Equal(t, member, actual, "wrong member at: %d", i)
	}
	checkConsistent(t, s, trx, partA)
}

func TestRemoveLast(t *testing.T) {
	s, trx, done := setup(t)
	defer done()

	m := members(3)
	for _, member := range m {
		assert.Nil(t, s.Insert(trx, partA, member), "insert error")
	}

	err := s.Remove(trx, partA, m[2])
	assert.Nil(t, err, "remove error")

	assert.Equal(t, uint64(2), s.Count(trx, partA), "wrong count")
	for i := 0; i < 2; i += 1 {
		actual, _ := s.MemberAt(trx, partA, uint64(i))
		assert.Equal(t, m[i], actual, "member moved")
	}
	checkConsistent(t, s, trx, partA)
}

func TestRemoveAll(t *testing.T) {
	s, trx, done := setup(t)
	defer done()

	m := members(5)
	for _, member := range m {
		assert.Nil(t, s.Insert(trx, partA, member), "insert error")
	}

	for _, i := range []int{2, 0, 4, 1, 3} {
		err := s.Remove(trx, partA, m[i])
		assert.Nil(t, err, "remove error")
		checkConsistent(t, s, trx, partA)
	}
	assert.Equal(t, uint64(0), s.Count(trx, partA), "set not empty")

	err := s.Remove(trx, partA, m[0])
	assert.Equal(t, fault.NotAMember, err, "remove from empty set allowed")

	// reinsert after emptying starts at zero
	err = s.Insert(trx, partA, m[3])
	assert.Nil(t, err, "insert error")
	position, ok := s.Position(trx, partA, m[3])
	assert.True(t, ok, "no position")
	assert.Equal(t, uint64(0), position, "wrong position")
}

func TestRemoveNotMember(t *testing.T) {
	s, trx, done := setup(t)
	defer done()

	m := members(2)
	assert.Nil(t, s.Insert(trx, partA, m[0]), "insert error")

	err := s.Remove(trx, partA, m[1])
	assert.Equal(t, fault.NotAMember, err, "non-member removed")

	err = s.Remove(trx, partB, m[0])
	assert.Equal(t, fault.NotAMember, err, "member removed from wrong partition")

	assert.Equal(t, uint64(1), s.Count(trx, partA), "count changed")
}

func TestGlobalPartition(t *testing.T) {
	s, trx, done := setup(t)
	defer done()

	m := members(3)
	for _, member := range m {
		assert.Nil(t, s.Insert(trx, nil, member), "insert error")
	}
	assert.Equal(t, uint64(3), s.Count(trx, nil), "wrong count")
	checkConsistent(t, s, trx, nil)
}

func TestCommitted(t *testing.T) {
	s, trx, done := setup(t)
	defer done()

	m := members(2)
	for _, member := range m {
		assert.Nil(t, s.Insert(trx, partA, member), "insert error")
	}
	assert.Nil(t, trx.Commit(), "commit error")

	n, found := storage.Pool.OwnedBatteriesCount.GetN(partA)
	assert.True(t, found, "count not committed")
	assert.Equal(t, uint64(2), n, "wrong committed count")

	assert.Nil(t, trx.Begin(), "begin error")
	assert.Nil(t, s.Remove(trx, partA, m[0]), "remove error")
	trx.Abort()

	assert.Nil(t, trx.Begin(), "begin error")
	assert.Equal(t, uint64(2), s.Count(trx, partA), "aborted remove was applied")
	checkConsistent(t, s, trx, partA)
}

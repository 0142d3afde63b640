// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/batteryd/fault"
	"github.com/bitmark-inc/batteryd/storage"
)

func TestInitialiseTwice(t *testing.T) {
	setup(t)
	defer teardown(t)

	err := storage.Initialise("ignored", storage.ReadWrite)
	assert.Equal(t, fault.AlreadyInitialised, err, "second initialise allowed")
}

func TestCommittedData(t *testing.T) {
	setup(t)
	defer teardown(t)

	writeElements(t)

	p := storage.Pool.TestData
	assert.Equal(t, []byte("data-one(NEW)"), p.Get([]byte("key-one")), "overwrite lost")
	assert.Nil(t, p.Get([]byte("key-eight")), "deleted key still present")
	assert.False(t, p.Has([]byte("key-eight")), "deleted key still reported")
	assert.True(t, p.Has([]byte("key-two")), "key missing")
}

func TestReadYourWrites(t *testing.T) {
	setup(t)
	defer teardown(t)

	writeElements(t)

	p := storage.Pool.TestData
	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin error")

	trx.Put(p, []byte("key-nine"), []byte("data-nine"))
	trx.Delete(p, []byte("key-two"))
	trx.PutN(p, []byte("count"), 42)

	assert.Equal(t, []byte("data-nine"), trx.Get(p, []byte("key-nine")), "pending put not visible")
	assert.Nil(t, trx.Get(p, []byte("key-two")), "pending delete not visible")
	assert.False(t, trx.Has(p, []byte("key-two")), "pending delete reported present")
	assert.True(t, trx.Has(p, []byte("key-three")), "committed key not visible")

	n, found := trx.GetN(p, []byte("count"))
	assert.True(t, found, "count not found")
	assert.Equal(t, uint64(42), n, "wrong count")

	// outside the transaction nothing has changed yet
	assert.Nil(t, p.Get([]byte("key-nine")), "uncommitted data visible")
	assert.True(t, p.Has([]byte("key-two")), "uncommitted delete visible")

	err = trx.Commit()
	assert.Nil(t, err, "commit error")

	assert.Equal(t, []byte("data-nine"), p.Get([]byte("key-nine")), "committed put missing")
	assert.False(t, p.Has([]byte("key-two")), "committed delete missing")
	n, found = p.GetN([]byte("count"))
	assert.True(t, found, "count not found")
	assert.Equal(t, uint64(42), n, "wrong committed count")
}

func TestAbort(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin error")

	trx.Put(p, []byte("key"), []byte("value"))
	trx.Abort()

	assert.False(t, trx.InUse(), "transaction still in use after abort")
	assert.False(t, p.Has([]byte("key")), "aborted data was written")

	// cache must also be discarded
	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "begin after abort error")
	assert.Nil(t, trx.Get(p, []byte("key")), "aborted data still cached")
	trx.Abort()
}

func TestSingleTransaction(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "first begin error")

	_, err = storage.NewDBTransaction()
	assert.Equal(t, fault.TransactionAlreadyStarted, err, "second begin allowed")

	err = trx.Commit()
	assert.Nil(t, err, "commit error")

	err = trx.Commit()
	assert.Equal(t, fault.TransactionNotStarted, err, "commit without begin allowed")
}

func TestFetchCursor(t *testing.T) {
	setup(t)
	defer teardown(t)

	writeElements(t)

	cursor := storage.Pool.TestData.NewFetchCursor()

	first, err := cursor.Fetch(3)
	assert.Nil(t, err, "fetch error")
	second, err := cursor.Fetch(10)
	assert.Nil(t, err, "fetch error")

	all := append(first, second...)
	assert.Equal(t, expectedElements, all, "wrong elements")

	empty, err := cursor.Fetch(1)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 0, len(empty), "data after last element")

	_, err = cursor.Fetch(0)
	assert.Equal(t, fault.InvalidCount, err, "zero count allowed")

	n := 0
	err = storage.Pool.TestData.NewFetchCursor().Seek([]byte("key-s")).Map(func(key []byte, value []byte) error {
		n += 1
		return nil
	})
	assert.Nil(t, err, "map error")
	assert.Equal(t, 4, n, "wrong number of mapped elements")
}

func TestCommittedQuery(t *testing.T) {
	setup(t)
	defer teardown(t)

	writeElements(t)

	p := storage.Pool.TestData
	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin error")
	defer trx.Abort()

	trx.Put(p, []byte("key-one"), []byte("pending"))

	assert.Equal(t, []byte("data-one(NEW)"), storage.Committed.Get(p, []byte("key-one")), "pending data visible")
	assert.Equal(t, []byte("pending"), trx.Get(p, []byte("key-one")), "pending data not visible")
	assert.False(t, storage.Committed.Has(p, []byte("key-eight")), "deleted key visible")
}

func TestDirectPut(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	err := p.Put([]byte("direct"), []byte("value"))
	assert.Nil(t, err, "put error")
	assert.Equal(t, []byte("value"), p.Get([]byte("direct")), "direct put not visible")
}

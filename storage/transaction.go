// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// Query - read access to pools
type Query interface {
	Get(Handle, []byte) []byte
	GetN(Handle, []byte) (uint64, bool)
	Has(Handle, []byte) bool
}

// Transaction - a batch of pool updates that commits atomically
//
// reads through a transaction see its own uncommitted writes
type Transaction interface {
	Query
	Abort()
	Begin() error
	Commit() error
	Delete(Handle, []byte)
	InUse() bool
	Put(Handle, []byte, []byte)
	PutN(Handle, []byte, uint64)
}

// Committed - queries that only see committed data
var Committed Query = committedQuery{}

type committedQuery struct{}

func (committedQuery) Get(handle Handle, key []byte) []byte {
	return handle.Get(key)
}

func (committedQuery) GetN(handle Handle, key []byte) (uint64, bool) {
	return handle.GetN(key)
}

func (committedQuery) Has(handle Handle, key []byte) bool {
	return handle.Has(key)
}

// TransactionData - implements Transaction over a single database
type TransactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionData{
		access: access,
	}
}

func (t *TransactionData) Begin() error {
	return t.access.Begin()
}

func (t *TransactionData) Commit() error {
	return t.access.Commit()
}

func (t *TransactionData) Abort() {
	t.access.Abort()
}

func (t *TransactionData) InUse() bool {
	return t.access.InUse()
}

func (t *TransactionData) Put(handle Handle, key []byte, value []byte) {
	t.access.Put(handle.prefixKey(key), value)
}

func (t *TransactionData) PutN(handle Handle, key []byte, value uint64) {
	t.access.Put(handle.prefixKey(key), encodeN(value))
}

func (t *TransactionData) Delete(handle Handle, key []byte) {
	t.access.Delete(handle.prefixKey(key))
}

// Get - returns nil if the key is not present
func (t *TransactionData) Get(handle Handle, key []byte) []byte {
	value, err := t.access.Get(handle.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("transaction.Get", err)
	return value
}

func (t *TransactionData) GetN(handle Handle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(handle, key))
}

func (t *TransactionData) Has(handle Handle, key []byte) bool {
	found, err := t.access.Has(handle.prefixKey(key))
	logger.PanicIfError("transaction.Has", err)
	return found
}

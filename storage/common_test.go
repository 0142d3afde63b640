// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/batteryd/storage"
)

// test database directory
var testingDirName string

// configure for testing
func setup(t *testing.T) {
	var err error
	testingDirName, err = ioutil.TempDir("", "storage-test")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	err = storage.Initialise(filepath.Join(testingDirName, "test.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	storage.Finalise()
	os.RemoveAll(testingDirName)
}

// a string data item
type stringElement struct {
	key   string
	value string
}

// make an element array
func makeElements(input []stringElement) []storage.Element {
	output := make([]storage.Element, 0, len(input))
	for _, e := range input {
		output = append(output, storage.Element{
			Key:   []byte(e.key),
			Value: []byte(e.value),
		})
	}
	return output
}

// this is the expected order
var expectedElements = makeElements([]stringElement{
	{"key-five", "data-five"},
	{"key-four", "data-four"},
	{"key-one", "data-one(NEW)"},
	{"key-seven", "data-seven"},
	{"key-six", "data-six"},
	{"key-three", "data-three"},
	{"key-two", "data-two"},
})

// write the data items in a scrambled order with one overwrite
// and one delete
func writeElements(t *testing.T) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	p := storage.Pool.TestData
	trx.Put(p, []byte("key-one"), []byte("data-one"))
	trx.Put(p, []byte("key-two"), []byte("data-two"))
	trx.Put(p, []byte("key-three"), []byte("data-three"))
	trx.Put(p, []byte("key-four"), []byte("data-four"))
	trx.Put(p, []byte("key-five"), []byte("data-five"))
	trx.Put(p, []byte("key-six"), []byte("data-six"))
	trx.Put(p, []byte("key-seven"), []byte("data-seven"))
	trx.Put(p, []byte("key-eight"), []byte("data-eight"))
	trx.Put(p, []byte("key-one"), []byte("data-one(NEW)"))
	trx.Delete(p, []byte("key-eight"))
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
}

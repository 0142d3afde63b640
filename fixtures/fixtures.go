// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for package tests
package fixtures

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/batteryd/account"
	"github.com/bitmark-inc/batteryd/storage"
	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
)

const (
	LogCategory = "testing"
)

var (
	logDirectory     string
	storageDirectory string
)

// SetupTestLogger - log to a temporary directory at critical level
func SetupTestLogger() {
	dir, err := ioutil.TempDir("", "batteryd-log")
	if nil != err {
		panic(err)
	}
	logDirectory = dir

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles(logDirectory)
}

// SetupTestStorage - open an empty database in a temporary directory
func SetupTestStorage() error {
	dir, err := ioutil.TempDir("", "batteryd-storage")
	if nil != err {
		return err
	}
	storageDirectory = dir
	return storage.Initialise(filepath.Join(dir, "test.leveldb"), storage.ReadWrite)
}

// ReopenTestStorage - open the database left by a previous
// SetupTestStorage after storage.Finalise
func ReopenTestStorage() error {
	return storage.Initialise(filepath.Join(storageDirectory, "test.leveldb"), storage.ReadWrite)
}

// TeardownTestStorage - close and remove the database
func TeardownTestStorage() {
	storage.Finalise()
	removeFiles(storageDirectory)
}

func removeFiles(dir string) {
	if "" == dir {
		return
	}
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// PrivateKey - a deterministic test key for a small number
func PrivateKey(n byte) *account.PrivateKey {
	seed := make([]byte, ed25519.SeedSize)
	seed[0] = n
	seed[ed25519.SeedSize-1] = 0x5a
	return &account.PrivateKey{
		Test:       true,
		PrivateKey: ed25519.NewKeyFromSeed(seed),
	}
}

// Account - the account of PrivateKey(n)
func Account(n byte) *account.Account {
	return PrivateKey(n).Account()
}

// Certificate - a short lived self-signed certificate and its private
// key, both PEM encoded
func Certificate() (string, string) {
	cert, key, err := certgen.NewTLSCertPair("batteryd test", time.Now().Add(time.Hour), false, []string{"127.0.0.1"})
	if nil != err {
		panic(err)
	}
	return string(cert), string(key)
}

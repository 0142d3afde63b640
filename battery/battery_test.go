// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package battery_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/batteryd/account"
	"github.com/bitmark-inc/batteryd/battery"
	"github.com/bitmark-inc/batteryd/fault"
	"github.com/bitmark-inc/batteryd/merkle"
	"github.com/bitmark-inc/batteryd/storage"
)

func makeAccount(seed byte) *account.Account {
	s := make([]byte, ed25519.SeedSize)
	s[0] = seed
	key := ed25519.NewKeyFromSeed(s)
	return &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      true,
			PublicKey: key.Public().(ed25519.PublicKey),
		},
	}
}

var (
	owner   = makeAccount(1)
	station = makeAccount(2)
	id      = merkle.NewDigest([]byte("battery"))
)

func TestState(t *testing.T) {
	var none *battery.Battery
	assert.Equal(t, battery.State{Type: battery.Unregistered}, none.State(), "nil record")

	b := &battery.Battery{Id: id, Owner: owner}
	assert.Equal(t, battery.State{Type: battery.WithOwner}, b.State(), "with owner")
	assert.False(t, b.HasCustodian(), "custodian without station")

	b.Station = station
	assert.Equal(t, battery.State{Type: battery.AtStation}, b.State(), "at station")

	b.Tradable = true
	assert.Equal(t, battery.State{Type: battery.AtStation, Tradable: true}, b.State(), "tradable")
	assert.Equal(t, "at station", b.State().Type.String(), "state name")
}

func TestPack(t *testing.T) {
	b := &battery.Battery{
		Id:           id,
		Owner:        owner,
		Station:      station,
		Tradable:     true,
		RegisteredAt: 1572566400,
	}

	packed, err := b.Pack()
	assert.Nil(t, err, "pack error")

	unpacked, err := packed.Unpack()
	assert.Nil(t, err, "unpack error")
	assert.True(t, owner.Equal(unpacked.Owner), "owner")
	assert.True(t, station.Equal(unpacked.Station), "station")
	assert.True(t, unpacked.Tradable, "tradable")
	assert.Equal(t, b.RegisteredAt, unpacked.RegisteredAt, "registered at")
	assert.True(t, unpacked.Id.IsZero(), "identifier is not part of the record")

	b.Station = nil
	b.Tradable = false
	packed, err = b.Pack()
	assert.Nil(t, err, "pack error")
	unpacked, err = packed.Unpack()
	assert.Nil(t, err, "unpack error")
	assert.Nil(t, unpacked.Station, "station present")

	_, err = packed[:len(packed)-2].Unpack()
	assert.Equal(t, fault.TruncatedRecord, err, "truncated record accepted")
}

func TestPackInvalid(t *testing.T) {
	_, err := (&battery.Battery{Id: id}).Pack()
	assert.Equal(t, fault.NotOwner, err, "missing owner accepted")

	_, err = (&battery.Battery{Id: id, Owner: owner, Tradable: true}).Pack()
	assert.Equal(t, fault.NoCustodian, err, "tradable without station accepted")
}

func TestStore(t *testing.T) {
	dir, err := ioutil.TempDir("", "battery-test")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	defer os.RemoveAll(dir)

	err = storage.Initialise(filepath.Join(dir, "test.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	store := battery.NewStore(storage.Pool.Batteries)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin error")

	assert.False(t, store.Has(trx, id), "empty store has battery")
	_, err = store.Get(trx, id)
	assert.Equal(t, fault.BatteryNotFound, err, "missing battery found")

	b := &battery.Battery{Id: id, Owner: owner, RegisteredAt: 42}
	assert.Nil(t, store.Put(trx, b), "put error")
	assert.True(t, store.Has(trx, id), "put battery missing")

	_, err = store.Get(storage.Committed, id)
	assert.Equal(t, fault.BatteryNotFound, err, "uncommitted battery visible")

	assert.Nil(t, trx.Commit(), "commit error")

	stored, err := store.Get(storage.Committed, id)
	assert.Nil(t, err, "get error")
	assert.Equal(t, id, stored.Id, "identifier")
	assert.True(t, owner.Equal(stored.Owner), "owner")
	assert.Equal(t, uint64(42), stored.RegisteredAt, "registered at")
}

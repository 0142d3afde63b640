// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"math/rand"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/batteryd/account"
	"github.com/bitmark-inc/batteryd/battery"
	"github.com/bitmark-inc/batteryd/event"
	"github.com/bitmark-inc/batteryd/fault"
	"github.com/bitmark-inc/batteryd/fixtures"
	"github.com/bitmark-inc/batteryd/merkle"
	"github.com/bitmark-inc/batteryd/registry"
	"github.com/bitmark-inc/batteryd/registry/mocks"
	"github.com/bitmark-inc/logger"
)

const (
	testBlock = 12
	testIndex = 3
	testNow   = 1572566400
)

var (
	s1 = fixtures.Account(1)
	s2 = fixtures.Account(2)
	o1 = fixtures.Account(11)
	o2 = fixtures.Account(12)

	testSeed = merkle.NewDigest([]byte("seed"))
)

type testData struct {
	engine   *registry.Engine
	recorder *event.Recorder
	done     func()
}

func setup(t *testing.T) testData {
	fixtures.SetupTestLogger()
	if err := fixtures.SetupTestStorage(); nil != err {
		t.Fatalf("storage setup error: %s", err)
	}

	ctl := gomock.NewController(t)

	env := mocks.NewMockEnvironment(ctl)
	env.EXPECT().Invocation().Return(registry.Invocation{
		BlockNumber:    testBlock,
		ExtrinsicIndex: testIndex,
		RandomSeed:     testSeed,
		Now:            testNow,
	}).AnyTimes()

	recorder := &event.Recorder{}
	engine := registry.New(logger.New(fixtures.LogCategory), registry.PoolHandles(), env, recorder)

	return testData{
		engine:   engine,
		recorder: recorder,
		done: func() {
			ctl.Finish()
			fixtures.TeardownTestStorage()
			fixtures.TeardownTestLogger()
		},
	}
}

func mustRegister(t *testing.T, e *registry.Engine, station *account.Account, owner *account.Account) merkle.Digest {
	id, err := e.RegisterBattery(station, owner)
	if nil != err {
		t.Fatalf("register battery error: %s", err)
	}
	return id
}

// every slot of a partition maps back to its position
func checkOwned(t *testing.T, e *registry.Engine, owner *account.Account, expected ...merkle.Digest) {
	n := e.OwnedCount(owner)
	assert.Equal(t, uint64(len(expected)), n, "owned count of: %s", owner)
	seen := make(map[merkle.Digest]bool)
	for i := uint64(0); i < n; i += 1 {
		id, ok := e.OwnedByIndex(owner, i)
		assert.True(t, ok, "missing owned battery at: %d", i)
		position, ok := e.OwnedIndex(owner, id)
		assert.True(t, ok, "missing owned index")
		assert.Equal(t, i, position, "owned index mismatch")
		seen[id] = true
	}
	for _, id := range expected {
		assert.True(t, seen[id], "battery: %v not owned", id)
	}
}

func checkInStation(t *testing.T, e *registry.Engine, station *account.Account, expected ...merkle.Digest) {
	n := e.InStationCount(station)
	assert.Equal(t, uint64(len(expected)), n, "in station count of: %s", station)
	seen := make(map[merkle.Digest]bool)
	for i := uint64(0); i < n; i += 1 {
		id, ok := e.InStationByIndex(station, i)
		assert.True(t, ok, "missing in station battery at: %d", i)
		position, ok := e.InStationIndex(station, id)
		assert.True(t, ok, "missing in station index")
		assert.Equal(t, i, position, "in station index mismatch")
		seen[id] = true
	}
	for _, id := range expected {
		assert.True(t, seen[id], "battery: %v not in station", id)
	}
}

func TestRegisterStation(t *testing.T) {
	d := setup(t)
	defer d.done()
	e := d.engine

	assert.False(t, e.IsStation(s1), "station before registration")

	err := e.RegisterStation(s1)
	assert.Nil(t, err, "register error")
	assert.True(t, e.IsStation(s1), "not a station after registration")
	assert.Equal(t, uint64(1), e.StationCount(), "station count")

	a, ok := e.StationByIndex(0)
	assert.True(t, ok, "no station at 0")
	assert.True(t, s1.Equal(a), "wrong station at 0")

	err = e.RegisterStation(s1)
	assert.Equal(t, fault.AlreadyRegistered, err, "registered twice")
	assert.Equal(t, uint64(1), e.StationCount(), "station count after duplicate")

	events := d.recorder.Events()
	assert.Equal(t, 1, len(events), "event count")
	assert.Equal(t, event.StationRegistered{Station: s1}, events[0], "event")
}

// scenario: a station registers a battery for an owner
func TestRegisterBattery(t *testing.T) {
	d := setup(t)
	defer d.done()
	e := d.engine

	assert.Nil(t, e.RegisterStation(s1), "register station error")

	id, err := e.RegisterBattery(s1, o1)
	assert.Nil(t, err, "register battery error")
	assert.False(t, id.IsZero(), "zero identifier")

	b, err := e.Battery(id)
	assert.Nil(t, err, "battery error")
	assert.Equal(t, id, b.Id, "identifier")
	assert.True(t, o1.Equal(b.Owner), "owner")
	assert.True(t, s1.Equal(b.Station), "custodian")
	assert.False(t, b.Tradable, "tradable")
	assert.Equal(t, uint64(testNow), b.RegisteredAt, "registered at")
	assert.Equal(t, battery.State{Type: battery.AtStation}, b.State(), "state")

	assert.Equal(t, uint64(1), e.BatteryCount(), "battery count")
	first, ok := e.BatteryByIndex(0)
	assert.True(t, ok, "no battery at 0")
	assert.Equal(t, id, first, "battery at 0")

	checkOwned(t, e, o1, id)
	checkInStation(t, e, s1, id)

	// same environment, different count so a different identifier
	id2 := mustRegister(t, e, s1, o1)
	assert.NotEqual(t, id, id2, "identifiers collide")
	assert.Equal(t, uint64(2), e.BatteryCount(), "battery count")
	checkOwned(t, e, o1, id, id2)
	checkInStation(t, e, s1, id, id2)

	events := d.recorder.Events()
	assert.Equal(t, 3, len(events), "event count")
	assert.Equal(t, event.BatteryRegistered{Station: s1, Id: id, Owner: o1}, events[1], "event")
}

// scenario: only stations register batteries
func TestRegisterBatteryNotStation(t *testing.T) {
	d := setup(t)
	defer d.done()
	e := d.engine

	root := e.StateRoot()

	_, err := e.RegisterBattery(o1, o1)
	assert.Equal(t, fault.NotAStation, err, "non-station registered battery")
	assert.Equal(t, uint64(0), e.BatteryCount(), "battery count")
	assert.Equal(t, uint64(0), e.OwnedCount(o1), "owned count")
	assert.Equal(t, root, e.StateRoot(), "state changed")
	assert.Equal(t, 0, len(d.recorder.Events()), "event deposited")
}

// scenario: owner toggles tradable while at a station
func TestSwitchTradable(t *testing.T) {
	d := setup(t)
	defer d.done()
	e := d.engine

	assert.Nil(t, e.RegisterStation(s1), "register station error")
	id := mustRegister(t, e, s1, o1)

	err := e.SwitchTradable(o2, id)
	assert.Equal(t, fault.NotOwner, err, "non-owner switched")

	err = e.SwitchTradable(o1, merkle.NewDigest([]byte("nothing")))
	assert.Equal(t, fault.BatteryNotFound, err, "missing battery switched")

	err = e.SwitchTradable(o1, id)
	assert.Nil(t, err, "switch error")
	b, _ := e.Battery(id)
	assert.True(t, b.Tradable, "not tradable after switch")
	assert.Equal(t, battery.State{Type: battery.AtStation, Tradable: true}, b.State(), "state")

	err = e.SwitchTradable(o1, id)
	assert.Nil(t, err, "switch error")
	b, _ = e.Battery(id)
	assert.False(t, b.Tradable, "tradable after second switch")

	events := d.recorder.Events()
	assert.Equal(t, 4, len(events), "event count")
	assert.Equal(t, event.TradableSwitched{Id: id, Tradable: true}, events[2], "first switch event")
	assert.Equal(t, event.TradableSwitched{Id: id, Tradable: false}, events[3], "second switch event")
}

// scenario: owner fetches from the station
func TestFetchFromStation(t *testing.T) {
	d := setup(t)
	defer d.done()
	e := d.engine

	assert.Nil(t, e.RegisterStation(s1), "register station error")
	id := mustRegister(t, e, s1, o1)
	assert.Nil(t, e.SwitchTradable(o1, id), "switch error")

	err := e.FetchFromStation(o2, id)
	assert.Equal(t, fault.NotOwner, err, "non-owner fetched")

	err = e.FetchFromStation(o1, id)
	assert.Nil(t, err, "fetch error")

	b, _ := e.Battery(id)
	assert.Nil(t, b.Station, "custodian after fetch")
	assert.False(t, b.Tradable, "tradable after fetch")
	assert.Equal(t, battery.State{Type: battery.WithOwner}, b.State(), "state")
	checkInStation(t, e, s1)
	checkOwned(t, e, o1, id)

	err = e.FetchFromStation(o1, id)
	assert.Equal(t, fault.NoCustodian, err, "fetched twice")

	err = e.SwitchTradable(o1, id)
	assert.Equal(t, fault.NoCustodian, err, "switched without custodian")

	events := d.recorder.Events()
	assert.Equal(t, event.FetchedFromStation{Id: id, Caller: o1, Owner: o1}, events[len(events)-1], "fetch event")
}

// scenario: store at another station, switch and trade
func TestStoreAndTrade(t *testing.T) {
	d := setup(t)
	defer d.done()
	e := d.engine

	assert.Nil(t, e.RegisterStation(s1), "register station error")
	assert.Nil(t, e.RegisterStation(s2), "register station error")
	id := mustRegister(t, e, s1, o1)
	assert.Nil(t, e.FetchFromStation(o1, id), "fetch error")

	err := e.StoreToStation(o2, id)
	assert.Equal(t, fault.NotAStation, err, "non-station stored")

	err = e.StoreToStation(s2, id)
	assert.Nil(t, err, "store error")

	err = e.StoreToStation(s1, id)
	assert.Equal(t, fault.AlreadyCustodied, err, "stored twice")

	b, _ := e.Battery(id)
	assert.True(t, s2.Equal(b.Station), "custodian")
	checkInStation(t, e, s2, id)
	checkInStation(t, e, s1)

	err = e.TradeBattery(s2, id, o2)
	assert.Equal(t, fault.NotTradable, err, "traded while not tradable")

	assert.Nil(t, e.SwitchTradable(o1, id), "switch error")

	err = e.TradeBattery(s1, id, o2)
	assert.Equal(t, fault.WrongCustodian, err, "traded by wrong station")

	err = e.TradeBattery(s2, id, o2)
	assert.Nil(t, err, "trade error")

	b, _ = e.Battery(id)
	assert.True(t, o2.Equal(b.Owner), "owner after trade")
	assert.True(t, s2.Equal(b.Station), "custodian after trade")
	assert.False(t, b.Tradable, "tradable after trade")
	checkOwned(t, e, o1)
	checkOwned(t, e, o2, id)
	checkInStation(t, e, s2, id)

	events := d.recorder.Events()
	assert.Equal(t, event.StoredToStation{Id: id, Owner: o1, Station: s2}, events[4], "store event")
	assert.Equal(t, event.Traded{Id: id, From: o1, To: o2, Station: s2}, events[len(events)-1], "trade event")
}

// scenario: trade to the current owner
func TestTradeSameOwner(t *testing.T) {
	d := setup(t)
	defer d.done()
	e := d.engine

	assert.Nil(t, e.RegisterStation(s1), "register station error")
	id := mustRegister(t, e, s1, o1)
	assert.Nil(t, e.SwitchTradable(o1, id), "switch error")

	before := len(d.recorder.Events())
	root := e.StateRoot()

	err := e.TradeBattery(s1, id, o1)
	assert.Equal(t, fault.SameOwner, err, "traded to same owner")

	b, _ := e.Battery(id)
	assert.True(t, o1.Equal(b.Owner), "owner changed")
	assert.True(t, b.Tradable, "tradable changed")
	checkOwned(t, e, o1, id)
	assert.Equal(t, root, e.StateRoot(), "state changed")
	assert.Equal(t, before, len(d.recorder.Events()), "event deposited")
}

func TestTradeWithoutCustodian(t *testing.T) {
	d := setup(t)
	defer d.done()
	e := d.engine

	assert.Nil(t, e.RegisterStation(s1), "register station error")
	id := mustRegister(t, e, s1, o1)
	assert.Nil(t, e.FetchFromStation(o1, id), "fetch error")

	err := e.TradeBattery(s1, id, o2)
	assert.Equal(t, fault.WrongCustodian, err, "traded without custodian")

	err = e.TradeBattery(s1, merkle.Digest{}, o2)
	assert.Equal(t, fault.BatteryNotFound, err, "traded missing battery")

	err = e.TradeBattery(o2, id, o1)
	assert.Equal(t, fault.NotAStation, err, "traded by non-station")
}

// trading the first of several batteries moves the last one into its slot
func TestTradeSwapRemove(t *testing.T) {
	d := setup(t)
	defer d.done()
	e := d.engine

	assert.Nil(t, e.RegisterStation(s1), "register station error")
	ids := []merkle.Digest{
		mustRegister(t, e, s1, o1),
		mustRegister(t, e, s1, o1),
		mustRegister(t, e, s1, o1),
	}

	assert.Nil(t, e.SwitchTradable(o1, ids[0]), "switch error")
	assert.Nil(t, e.TradeBattery(s1, ids[0], o2), "trade error")

	checkOwned(t, e, o1, ids[1], ids[2])
	checkOwned(t, e, o2, ids[0])

	slot0, _ := e.OwnedByIndex(o1, 0)
	slot1, _ := e.OwnedByIndex(o1, 1)
	assert.Equal(t, ids[2], slot0, "last battery not moved into vacated slot")
	assert.Equal(t, ids[1], slot1, "untouched battery moved")

	_, ok := e.OwnedIndex(o1, ids[0])
	assert.False(t, ok, "traded battery still indexed for previous owner")

	// fetch the middle one from the station
	assert.Nil(t, e.FetchFromStation(o1, ids[1]), "fetch error")
	checkInStation(t, e, s1, ids[0], ids[2])
	slot1, _ = e.InStationByIndex(s1, 1)
	assert.Equal(t, ids[2], slot1, "last battery not moved into vacated station slot")

	// global registry never shrinks
	assert.Equal(t, uint64(3), e.BatteryCount(), "battery count")
	for i, id := range ids {
		actual, ok := e.BatteryByIndex(uint64(i))
		assert.True(t, ok, "no battery at: %d", i)
		assert.Equal(t, id, actual, "global order changed")
	}
	assert.Equal(t, merkle.Root(ids), e.StateRoot(), "state root")
}

func TestMissingParameters(t *testing.T) {
	d := setup(t)
	defer d.done()
	e := d.engine

	assert.Equal(t, fault.MissingParameters, e.RegisterStation(nil), "nil station")
	_, err := e.RegisterBattery(s1, nil)
	assert.Equal(t, fault.MissingParameters, err, "nil owner")
	assert.Equal(t, fault.MissingParameters, e.TradeBattery(s1, merkle.Digest{}, nil), "nil recipient")
	assert.Equal(t, 0, len(d.recorder.Events()), "event deposited")
}

func TestFailureDepositsNothing(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	if err := fixtures.SetupTestStorage(); nil != err {
		t.Fatalf("storage setup error: %s", err)
	}
	defer fixtures.TeardownTestStorage()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	env := mocks.NewMockEnvironment(ctl)
	sink := mocks.NewMockSink(ctl)

	sink.EXPECT().Deposit(event.StationRegistered{Station: s1}).Times(1)

	e := registry.New(logger.New(fixtures.LogCategory), registry.PoolHandles(), env, sink)

	assert.Nil(t, e.RegisterStation(s1), "register station error")
	assert.Equal(t, fault.AlreadyRegistered, e.RegisterStation(s1), "registered twice")
	assert.Equal(t, fault.BatteryNotFound, e.SwitchTradable(o1, merkle.Digest{}), "switch missing")
	assert.Equal(t, fault.BatteryNotFound, e.StoreToStation(s1, merkle.Digest{}), "store missing")
	assert.Equal(t, fault.BatteryNotFound, e.FetchFromStation(o1, merkle.Digest{}), "fetch missing")
	_, err := e.RegisterBattery(o1, o1)
	assert.Equal(t, fault.NotAStation, err, "non-station registered")
}

// drive random operations, successful or not, and check after every
// step that each partition is dense and its positions map back
func TestRandomOperations(t *testing.T) {
	d := setup(t)
	defer d.done()
	e := d.engine

	const (
		seed  = 20191101
		steps = 600
	)
	random := rand.New(rand.NewSource(seed))

	identities := []*account.Account{
		fixtures.Account(1),
		fixtures.Account(2),
		fixtures.Account(3),
		fixtures.Account(11),
		fixtures.Account(12),
		fixtures.Account(13),
	}
	pick := func() *account.Account {
		return identities[random.Intn(len(identities))]
	}

	ids := []merkle.Digest{}
	pickId := func() merkle.Digest {
		// sometimes a battery that does not exist
		if 0 == len(ids) || 0 == random.Intn(8) {
			return merkle.NewDigest([]byte{byte(random.Intn(256))})
		}
		return ids[random.Intn(len(ids))]
	}

	successes := 0
	failures := 0
	previousCount := uint64(0)

	for step := 0; step < steps; step += 1 {
		var err error
		operation := random.Intn(6)
		switch operation {
		case 0:
			err = e.RegisterStation(pick())
		case 1:
			var id merkle.Digest
			id, err = e.RegisterBattery(pick(), pick())
			if nil == err {
				ids = append(ids, id)
			}
		case 2:
			err = e.SwitchTradable(pick(), pickId())
		case 3:
			err = e.StoreToStation(pick(), pickId())
		case 4:
			err = e.FetchFromStation(pick(), pickId())
		case 5:
			err = e.TradeBattery(pick(), pickId(), pick())
		}
		if nil == err {
			successes += 1
		} else {
			failures += 1
		}

		count := e.BatteryCount()
		if count < previousCount {
			t.Fatalf("step: %d  operation: %d  battery count dropped from: %d to: %d", step, operation, previousCount, count)
		}
		previousCount = count

		if !checkPartitions(t, e, identities, ids) {
			t.Fatalf("seed: %d  step: %d  operation: %d  error: %v", seed, step, operation, err)
		}
	}

	assert.Equal(t, uint64(len(ids)), e.BatteryCount(), "battery count")
	assert.Equal(t, successes, len(d.recorder.Events()), "one event per success")
	assert.True(t, len(ids) > 0, "no battery registered")
	assert.True(t, failures > 0, "no failing operation")
}

func checkPartitions(t *testing.T, e *registry.Engine, identities []*account.Account, ids []merkle.Digest) bool {
	ok := true

	owned := uint64(0)
	inStations := uint64(0)
	for _, a := range identities {
		n := e.OwnedCount(a)
		owned += n
		for i := uint64(0); i < n; i += 1 {
			id, found := e.OwnedByIndex(a, i)
			position, indexed := e.OwnedIndex(a, id)
			ok = assert.True(t, found && indexed && i == position, "owned slot: %d of: %s", i, a) && ok
		}
		_, beyond := e.OwnedByIndex(a, n)
		ok = assert.False(t, beyond, "owned slot past count of: %s", a) && ok

		n = e.InStationCount(a)
		inStations += n
		for i := uint64(0); i < n; i += 1 {
			id, found := e.InStationByIndex(a, i)
			position, indexed := e.InStationIndex(a, id)
			ok = assert.True(t, found && indexed && i == position, "in station slot: %d of: %s", i, a) && ok
		}
		_, beyond = e.InStationByIndex(a, n)
		ok = assert.False(t, beyond, "in station slot past count of: %s", a) && ok
	}

	ok = assert.Equal(t, e.BatteryCount(), owned, "every battery has one owner") && ok

	custody := uint64(0)
	for _, id := range ids {
		b, err := e.Battery(id)
		if !assert.Nil(t, err, "battery: %v", id) {
			return false
		}
		if b.Tradable {
			ok = assert.NotNil(t, b.Station, "tradable battery: %v without station", id) && ok
		}
		for _, a := range identities {
			_, isOwned := e.OwnedIndex(a, id)
			ok = assert.Equal(t, a.Equal(b.Owner), isOwned, "ownership of: %v by: %s", id, a) && ok

			_, isHeld := e.InStationIndex(a, id)
			held := nil != b.Station && a.Equal(b.Station)
			ok = assert.Equal(t, held, isHeld, "custody of: %v by: %s", id, a) && ok
		}
		if nil != b.Station {
			custody += 1
		}
	}
	ok = assert.Equal(t, custody, inStations, "batteries in custody") && ok

	return ok
}

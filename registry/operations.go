// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/batteryd/account"
	"github.com/bitmark-inc/batteryd/battery"
	"github.com/bitmark-inc/batteryd/event"
	"github.com/bitmark-inc/batteryd/fault"
	"github.com/bitmark-inc/batteryd/identifier"
	"github.com/bitmark-inc/batteryd/merkle"
	"github.com/bitmark-inc/batteryd/storage"
)

// run one operation as a single transaction
//
// the event is deposited only after a successful commit
func (e *Engine) apply(name string, operation func(trx storage.Transaction) (event.Event, error)) error {
	e.Lock()
	defer e.Unlock()

	trx, err := e.begin()
	if nil != err {
		e.log.Errorf("%s: begin transaction error: %s", name, err)
		return err
	}

	ev, err := operation(trx)
	if nil != err {
		trx.Abort()
		if fault.IsErrRecord(err) {
			e.log.Criticalf("%s: index inconsistency: %s", name, err)
		} else {
			e.log.Debugf("%s: rejected: %s", name, err)
		}
		return err
	}

	err = trx.Commit()
	if nil != err {
		e.log.Errorf("%s: commit error: %s", name, err)
		return err
	}

	e.log.Infof("%s: %v", ev.Name(), ev.Fields())
	e.sink.Deposit(ev)
	return nil
}

// RegisterStation - caller becomes a station
func (e *Engine) RegisterStation(caller *account.Account) error {
	if nil == caller {
		return fault.MissingParameters
	}
	return e.apply("RegisterStation", func(trx storage.Transaction) (event.Event, error) {
		err := e.stations.Register(trx, caller)
		if nil != err {
			return nil, err
		}
		return event.StationRegistered{Station: caller}, nil
	})
}

// RegisterBattery - a station creates a battery for an owner
//
// the new battery starts in the custody of the calling station and is
// not tradable
func (e *Engine) RegisterBattery(caller *account.Account, owner *account.Account) (merkle.Digest, error) {
	var id merkle.Digest
	if nil == caller || nil == owner {
		return id, fault.MissingParameters
	}

	err := e.apply("RegisterBattery", func(trx storage.Transaction) (event.Event, error) {
		if !e.stations.IsStation(trx, caller) {
			return nil, fault.NotAStation
		}

		invocation := e.env.Invocation()
		context := identifier.Context{
			Seed:           invocation.RandomSeed,
			Owner:          owner,
			ExtrinsicIndex: invocation.ExtrinsicIndex,
			BlockNumber:    invocation.BlockNumber,
			BatteryCount:   e.all.Count(trx, global),
		}
		newId := identifier.Next(context)

		if e.batteries.Has(trx, newId) {
			return nil, fault.BatteryAlreadyExists
		}

		b := &battery.Battery{
			Id:           newId,
			Owner:        owner,
			Station:      caller,
			Tradable:     false,
			RegisteredAt: invocation.Now,
		}

		if err := e.all.Insert(trx, global, newId[:]); nil != err {
			return nil, err
		}
		if err := e.owned.Insert(trx, owner.Bytes(), newId[:]); nil != err {
			return nil, err
		}
		if err := e.inStation.Insert(trx, caller.Bytes(), newId[:]); nil != err {
			return nil, err
		}
		if err := e.batteries.Put(trx, b); nil != err {
			return nil, err
		}

		id = newId
		return event.BatteryRegistered{
			Station: caller,
			Id:      newId,
			Owner:   owner,
		}, nil
	})
	if nil != err {
		return merkle.Digest{}, err
	}
	return id, nil
}

// SwitchTradable - owner toggles whether the holding station may trade
func (e *Engine) SwitchTradable(caller *account.Account, id merkle.Digest) error {
	if nil == caller {
		return fault.MissingParameters
	}
	return e.apply("SwitchTradable", func(trx storage.Transaction) (event.Event, error) {
		b, err := e.batteries.Get(trx, id)
		if nil != err {
			return nil, err
		}
		if !b.Owner.Equal(caller) {
			return nil, fault.NotOwner
		}
		if !b.HasCustodian() {
			return nil, fault.NoCustodian
		}

		b.Tradable = !b.Tradable

		if err := e.batteries.Put(trx, b); nil != err {
			return nil, err
		}
		return event.TradableSwitched{
			Id:       id,
			Tradable: b.Tradable,
		}, nil
	})
}

// StoreToStation - the calling station takes custody of a battery
func (e *Engine) StoreToStation(caller *account.Account, id merkle.Digest) error {
	if nil == caller {
		return fault.MissingParameters
	}
	return e.apply("StoreToStation", func(trx storage.Transaction) (event.Event, error) {
		if !e.stations.IsStation(trx, caller) {
			return nil, fault.NotAStation
		}
		b, err := e.batteries.Get(trx, id)
		if nil != err {
			return nil, err
		}
		if b.HasCustodian() {
			return nil, fault.AlreadyCustodied
		}

		b.Station = caller

		if err := e.inStation.Insert(trx, caller.Bytes(), id[:]); nil != err {
			return nil, err
		}
		if err := e.batteries.Put(trx, b); nil != err {
			return nil, err
		}
		return event.StoredToStation{
			Id:      id,
			Owner:   b.Owner,
			Station: caller,
		}, nil
	})
}

// FetchFromStation - owner takes a battery back from its station
func (e *Engine) FetchFromStation(caller *account.Account, id merkle.Digest) error {
	if nil == caller {
		return fault.MissingParameters
	}
	return e.apply("FetchFromStation", func(trx storage.Transaction) (event.Event, error) {
		b, err := e.batteries.Get(trx, id)
		if nil != err {
			return nil, err
		}
		if !b.Owner.Equal(caller) {
			return nil, fault.NotOwner
		}
		if !b.HasCustodian() {
			return nil, fault.NoCustodian
		}

		if err := e.inStation.Remove(trx, b.Station.Bytes(), id[:]); nil != err {
			return nil, err
		}

		b.Station = nil
		b.Tradable = false

		if err := e.batteries.Put(trx, b); nil != err {
			return nil, err
		}
		return event.FetchedFromStation{
			Id:     id,
			Caller: caller,
			Owner:  b.Owner,
		}, nil
	})
}

// TradeBattery - the holding station moves a tradable battery to a new owner
//
// the battery stays at the station and is no longer tradable
func (e *Engine) TradeBattery(caller *account.Account, id merkle.Digest, to *account.Account) error {
	if nil == caller || nil == to {
		return fault.MissingParameters
	}
	return e.apply("TradeBattery", func(trx storage.Transaction) (event.Event, error) {
		if !e.stations.IsStation(trx, caller) {
			return nil, fault.NotAStation
		}
		b, err := e.batteries.Get(trx, id)
		if nil != err {
			return nil, err
		}
		if !b.Station.Equal(caller) {
			return nil, fault.WrongCustodian
		}
		if !b.Tradable {
			return nil, fault.NotTradable
		}
		from := b.Owner
		if from.Equal(to) {
			return nil, fault.SameOwner
		}

		if err := e.owned.Remove(trx, from.Bytes(), id[:]); nil != err {
			return nil, err
		}
		if err := e.owned.Insert(trx, to.Bytes(), id[:]); nil != err {
			return nil, err
		}

		b.Owner = to
		b.Tradable = false

		if err := e.batteries.Put(trx, b); nil != err {
			return nil, err
		}
		return event.Traded{
			Id:      id,
			From:    from,
			To:      to,
			Station: caller,
		}, nil
	})
}

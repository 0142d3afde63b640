// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package battery

import (
	"github.com/bitmark-inc/batteryd/account"
	"github.com/bitmark-inc/batteryd/fault"
	"github.com/bitmark-inc/batteryd/util"
)

// Packed - the stored form of a battery record
type Packed []byte

// current record format
const recordVersion = 1

const (
	maxAccountLength = 128
	noStation        = 0
	hasStation       = 1
)

// Pack - encode the record fields
//
// the identifier is the storage key and is not included
//
// Pack Varint64(version) then owner, optional station, tradable flag
// and registration time
func (b *Battery) Pack() (Packed, error) {
	if nil == b.Owner {
		return nil, fault.NotOwner
	}
	if b.Tradable && nil == b.Station {
		return nil, fault.NoCustodian
	}

	buffer := util.ToVarint64(recordVersion)
	buffer = appendAccount(buffer, b.Owner)

	if nil == b.Station {
		buffer = append(buffer, noStation)
	} else {
		buffer = append(buffer, hasStation)
		buffer = appendAccount(buffer, b.Station)
	}

	if b.Tradable {
		buffer = append(buffer, 1)
	} else {
		buffer = append(buffer, 0)
	}

	buffer = append(buffer, util.ToVarint64(b.RegisteredAt)...)
	return buffer, nil
}

// Unpack - decode a stored record
//
// the identifier must be filled in by the caller
func (record Packed) Unpack() (b *Battery, e error) {

	defer func() {
		if r := recover(); nil != r {
			e = fault.TruncatedRecord
		}
	}()

	version, n := util.FromVarint64(record)
	if 0 == n || recordVersion != version {
		return nil, fault.TruncatedRecord
	}

	owner, n, err := extractAccount(record, n)
	if nil != err {
		return nil, err
	}

	var station *account.Account
	switch record[n] {
	case noStation:
		n += 1
	case hasStation:
		n += 1
		station, n, err = extractAccount(record, n)
		if nil != err {
			return nil, err
		}
	default:
		return nil, fault.TruncatedRecord
	}

	tradable := 0 != record[n]
	n += 1

	registeredAt, timeLength := util.FromVarint64(record[n:])
	if 0 == timeLength {
		return nil, fault.TruncatedRecord
	}

	b = &Battery{
		Owner:        owner,
		Station:      station,
		Tradable:     tradable,
		RegisteredAt: registeredAt,
	}
	return b, nil
}

// append an account to a buffer
//
// the field is prefixed by Varint64(length)
func appendAccount(buffer []byte, address *account.Account) []byte {
	data := address.Bytes()
	buffer = append(buffer, util.ToVarint64(uint64(len(data)))...)
	return append(buffer, data...)
}

func extractAccount(record []byte, n int) (*account.Account, int, error) {
	length, lengthSize := util.FromVarint64(record[n:])
	if 0 == lengthSize || length > maxAccountLength {
		return nil, 0, fault.TruncatedRecord
	}
	n += lengthSize
	end := n + int(length)
	if end > len(record) {
		return nil, 0, fault.TruncatedRecord
	}
	a, err := account.AccountFromBytes(record[n:end])
	if nil != err {
		return nil, 0, err
	}
	return a, end, nil
}

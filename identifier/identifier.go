// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package identifier - derive battery identifiers
package identifier

import (
	"encoding/binary"

	"github.com/bitmark-inc/batteryd/account"
	"github.com/bitmark-inc/batteryd/merkle"
)

// Context - everything that contributes to a new identifier
type Context struct {
	Seed           merkle.Digest
	Owner          *account.Account
	ExtrinsicIndex uint32
	BlockNumber    uint64
	BatteryCount   uint64
}

// Pack - the fields in a fixed order
//
//   seed ++ owner bytes ++ BE32(extrinsic) ++ BE64(block) ++ BE64(count)
func (c Context) Pack() []byte {
	owner := []byte(nil)
	if nil != c.Owner {
		owner = c.Owner.Bytes()
	}

	buffer := make([]byte, 0, len(c.Seed)+len(owner)+4+8+8)
	buffer = append(buffer, c.Seed[:]...)
	buffer = append(buffer, owner...)

	var n [8]byte
	binary.BigEndian.PutUint32(n[:4], c.ExtrinsicIndex)
	buffer = append(buffer, n[:4]...)
	binary.BigEndian.PutUint64(n[:], c.BlockNumber)
	buffer = append(buffer, n[:]...)
	binary.BigEndian.PutUint64(n[:], c.BatteryCount)
	buffer = append(buffer, n[:]...)

	return buffer
}

// Next - the identifier for a context
//
// the same context always gives the same identifier
func Next(c Context) merkle.Digest {
	return merkle.NewDigest(c.Pack())
}

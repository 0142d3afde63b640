// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockheader

import (
	"encoding/binary"
	"time"

	"github.com/bitmark-inc/batteryd/merkle"
	"github.com/bitmark-inc/batteryd/registry"
)

// Get - return all header data
func Get() (uint64, merkle.Digest, uint64) {
	globalData.RLock()
	defer globalData.RUnlock()

	return globalData.height, globalData.seed, globalData.timestamp
}

// Height - return current height
func Height() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()

	return globalData.height
}

// NextSeed - the seed that follows a block
//
//   SHA3-256(previous seed ++ BE64(new height))
func NextSeed(previous merkle.Digest, height uint64) merkle.Digest {
	buffer := make([]byte, merkle.DigestLength+8)
	copy(buffer, previous[:])
	binary.BigEndian.PutUint64(buffer[merkle.DigestLength:], height)
	return merkle.NewDigest(buffer)
}

// Advance - start the next block
func Advance() error {
	globalData.Lock()
	defer globalData.Unlock()

	height := globalData.height + 1
	globalData.seed = NextSeed(globalData.seed, height)
	globalData.height = height
	globalData.timestamp = uint64(time.Now().Unix())
	globalData.extrinsic.Reset()

	globalData.log.Debugf("block: %d  seed: %v", height, globalData.seed)
	return save()
}

// Host - current block facts for registry operations
type Host struct{}

// Invocation - the current block and the next index within it
//
// all fields are read under one lock so they belong to the same block
func (Host) Invocation() registry.Invocation {
	globalData.RLock()
	defer globalData.RUnlock()

	return registry.Invocation{
		BlockNumber:    globalData.height,
		ExtrinsicIndex: uint32(globalData.extrinsic.Next()),
		RandomSeed:     globalData.seed,
		Now:            globalData.timestamp,
	}
}

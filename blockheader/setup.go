// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockheader

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
	"time"

	"github.com/bitmark-inc/batteryd/counter"
	"github.com/bitmark-inc/batteryd/fault"
	"github.com/bitmark-inc/batteryd/merkle"
	"github.com/bitmark-inc/batteryd/storage"
	"github.com/bitmark-inc/logger"
)

// globals for header
type blockData struct {
	sync.RWMutex // to allow locking

	log *logger.L

	height    uint64        // this is the current block height
	seed      merkle.Digest // entropy for this block
	timestamp uint64        // when this block started

	extrinsic counter.Counter // invocations within this block

	// set once during initialise
	initialised bool
}

// global data
var globalData blockData

// key of the current header in the BlockHeader pool
var currentKey = []byte("current")

const packedLength = 8 + merkle.DigestLength + 8

// Initialise - load the current block or create the genesis block
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("blockheader")
	globalData.log = log
	log.Info("starting…")

	packed := storage.Pool.BlockHeader.Get(currentKey)
	if nil == packed {
		err := setGenesis()
		if nil != err {
			return err
		}
	} else {
		err := unpack(packed)
		if nil != err {
			log.Criticalf("corrupt header: %x", packed)
			return err
		}
	}
	globalData.extrinsic.Reset()

	log.Infof("block height: %d", globalData.height)
	log.Infof("block seed: %v", globalData.seed)

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - shutdown the block header system
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// internal: must hold lock
func setGenesis() error {
	var seed merkle.Digest
	_, err := rand.Read(seed[:])
	if nil != err {
		return err
	}
	globalData.height = 0
	globalData.seed = seed
	globalData.timestamp = uint64(time.Now().Unix())
	globalData.log.Info("created genesis block")
	return save()
}

// internal: must hold lock
func save() error {
	buffer := make([]byte, packedLength)
	binary.BigEndian.PutUint64(buffer[:8], globalData.height)
	copy(buffer[8:], globalData.seed[:])
	binary.BigEndian.PutUint64(buffer[8+merkle.DigestLength:], globalData.timestamp)
	return storage.Pool.BlockHeader.Put(currentKey, buffer)
}

// internal: must hold lock
func unpack(buffer []byte) error {
	if packedLength != len(buffer) {
		return fault.TruncatedRecord
	}
	globalData.height = binary.BigEndian.Uint64(buffer[:8])
	err := merkle.DigestFromBytes(&globalData.seed, buffer[8:8+merkle.DigestLength])
	if nil != err {
		return err
	}
	globalData.timestamp = binary.BigEndian.Uint64(buffer[8+merkle.DigestLength:])
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - lock free counters
//
// used for connection limits and the per block invocation index
package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned integer updated atomically
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Decrement - subtract 1 from a counter, returns new value
func (ic *Counter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(ic), ^uint64(0))
}

// Next - add 1 to a counter, returns the value before the add
func (ic *Counter) Next() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1) - 1
}

// Reset - set back to zero
func (ic *Counter) Reset() {
	atomic.StoreUint64((*uint64)(ic), 0)
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return 0 == ic.Uint64()
}

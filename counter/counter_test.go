// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/batteryd/counter"
)

func TestCounter(t *testing.T) {
	var c counter.Counter

	assert.True(t, c.IsZero(), "not zero at start")

	for i := 0; i < 5; i += 1 {
		c.Increment()
	}
	assert.Equal(t, uint64(5), c.Uint64(), "after increment")

	assert.Equal(t, uint64(4), c.Decrement(), "decrement result")
	assert.Equal(t, uint64(4), c.Next(), "next returns previous value")
	assert.Equal(t, uint64(5), c.Uint64(), "after next")

	c.Reset()
	assert.True(t, c.IsZero(), "not zero after reset")
}

func TestConcurrentNext(t *testing.T) {
	var c counter.Counter

	const workers = 8
	const each = 1000

	var mutex sync.Mutex
	seen := make(map[uint64]bool)

	var wg sync.WaitGroup
	for w := 0; w < workers; w += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]uint64, 0, each)
			for i := 0; i < each; i += 1 {
				local = append(local, c.Next())
			}
			mutex.Lock()
			for _, n := range local {
				seen[n] = true
			}
			mutex.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, workers*each, len(seen), "duplicate values returned")
	assert.Equal(t, uint64(workers*each), c.Uint64(), "final value")
}

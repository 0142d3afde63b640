// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/batteryd/background"
)

type ticker struct {
	ticks    int32
	finished int32
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	interval := args.(time.Duration)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(interval):
			atomic.AddInt32(&state.ticks, 1)
		}
	}
	atomic.StoreInt32(&state.finished, 1)
}

func TestStartStop(t *testing.T) {
	proc1 := &ticker{}
	proc2 := &ticker{}

	p := background.Start(background.Processes{proc1, proc2}, time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	for i, proc := range []*ticker{proc1, proc2} {
		assert.Equal(t, int32(1), atomic.LoadInt32(&proc.finished), "process %d did not finish", i)
		assert.True(t, atomic.LoadInt32(&proc.ticks) > 0, "process %d never ran", i)
	}

	// stopping twice is harmless
	p.Stop()
}

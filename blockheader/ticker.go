// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockheader

import (
	"sync"
	"time"
)

// Ticker - background process advancing the block at a fixed interval
type Ticker struct {
	sync.Mutex
	interval time.Duration
	changed  chan time.Duration
}

// NewTicker - create a ticker, the interval must be positive
func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{
		interval: interval,
		changed:  make(chan time.Duration, 1),
	}
}

// SetInterval - change the interval from the next block
//
// only the latest of several pending changes is applied
func (ticker *Ticker) SetInterval(interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker.Lock()
	defer ticker.Unlock()

	if interval == ticker.interval {
		return
	}
	ticker.interval = interval

	select {
	case <-ticker.changed:
	default:
	}
	ticker.changed <- interval
}

// Interval - the current interval
func (ticker *Ticker) Interval() time.Duration {
	ticker.Lock()
	defer ticker.Unlock()
	return ticker.interval
}

// Run - advance until shutdown
func (ticker *Ticker) Run(args interface{}, shutdown <-chan struct{}) {
	log := globalData.log

	interval := ticker.Interval()
	log.Infof("block interval: %s", interval)

	t := time.NewTicker(interval)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case interval = <-ticker.changed:
			log.Infof("block interval changed to: %s", interval)
			t.Stop()
			t = time.NewTicker(interval)

		case <-t.C:
			err := Advance()
			if nil != err {
				log.Errorf("advance error: %s", err)
			}
		}
	}
	t.Stop()
	log.Info("stopped")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"sync"
)

// Recorder - a sink that keeps every event
type Recorder struct {
	sync.Mutex
	events []Event
}

// Deposit - append an event
func (r *Recorder) Deposit(e Event) {
	r.Lock()
	r.events = append(r.events, e)
	r.Unlock()
}

// Events - copy of all events so far
func (r *Recorder) Events() []Event {
	r.Lock()
	defer r.Unlock()
	result := make([]Event, len(r.events))
	copy(result, r.events)
	return result
}

// Fanout - deliver each event to several sinks in order
type Fanout []Sink

// Deposit - pass an event to every sink
func (f Fanout) Deposit(e Event) {
	for _, s := range f {
		s.Deposit(e)
	}
}

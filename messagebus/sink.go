// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"github.com/bitmark-inc/batteryd/event"
	"github.com/bitmark-inc/logger"
)

// EventSink - passes registry events to the Events queue
//
// command is the event name, the single parameter is the JSON array
// of the event fields
type EventSink struct {
	Log *logger.L
}

// Deposit - encode and send an event
func (sink EventSink) Deposit(e event.Event) {
	data, err := event.Marshal(e)
	if nil != err {
		sink.Log.Errorf("cannot encode event: %s  error: %s", e.Name(), err)
		return
	}
	Bus.Events.Send(e.Name(), data)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/batteryd/event"
	"github.com/bitmark-inc/batteryd/fixtures"
	"github.com/bitmark-inc/batteryd/messagebus"
	"github.com/bitmark-inc/logger"
)

func TestBroadcast(t *testing.T) {
	var queue messagebus.BroadcastQueue

	// nothing listening so this is dropped
	queue.Send("ignored")

	const listeners = 5
	commands := []string{"c1", "c2", "c3"}

	channels := make([]<-chan messagebus.Message, listeners)
	for i := range channels {
		channels[i] = queue.Chan(0)
	}

	for _, c := range commands {
		queue.Send(c, []byte(c))
	}

	var wg sync.WaitGroup
	for i, c := range channels {
		wg.Add(1)
		go func(n int, c <-chan messagebus.Message) {
			defer wg.Done()
			for _, expected := range commands {
				received := <-c
				assert.Equal(t, expected, received.Command, "listener: %d", n)
				assert.Equal(t, [][]byte{[]byte(expected)}, received.Parameters, "listener: %d", n)
			}
		}(i, c)
	}
	wg.Wait()

	queue.Release()
	for i, c := range channels {
		_, ok := <-c
		assert.False(t, ok, "listener: %d not closed", i)
	}
}

func TestSlowListener(t *testing.T) {
	var queue messagebus.BroadcastQueue
	defer queue.Release()

	c := queue.Chan(1)
	queue.Send("first")
	queue.Send("second")

	received := <-c
	assert.Equal(t, "first", received.Command, "first message")
	assert.Equal(t, uint64(1), queue.Dropped(), "dropped count")
}

func TestEventSink(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	c := messagebus.Bus.Events.Chan(5)
	defer messagebus.Bus.Events.Release()

	e := event.StationRegistered{Station: fixtures.Account(1)}
	sink := messagebus.EventSink{Log: logger.New(fixtures.LogCategory)}
	sink.Deposit(e)

	expected, err := event.Marshal(e)
	assert.Nil(t, err, "marshal error")

	received := <-c
	assert.Equal(t, "StationRegistered", received.Command, "command")
	assert.Equal(t, [][]byte{expected}, received.Parameters, "parameters")
}

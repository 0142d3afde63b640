// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"

	"github.com/bitmark-inc/batteryd/counter"
)

// Message - a command and its parameters
type Message struct {
	Command    string
	Parameters [][]byte
}

// BroadcastQueue - delivers to all current listeners
type BroadcastQueue struct {
	sync.Mutex
	listeners []chan Message
	dropped   counter.Counter
}

// the set of queues
type busses struct {
	Events BroadcastQueue
}

// Bus - all available queues
var Bus busses

const defaultListenerSize = 1000

// Chan - add a listener
//
// size zero selects the default buffer size
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size <= 0 {
		size = defaultListenerSize
	}
	c := make(chan Message, size)

	queue.Lock()
	queue.listeners = append(queue.listeners, c)
	queue.Unlock()

	return c
}

// Release - close and remove all listeners
func (queue *BroadcastQueue) Release() {
	queue.Lock()
	for _, c := range queue.listeners {
		close(c)
	}
	queue.listeners = nil
	queue.Unlock()
}

// Send - queue a message to every listener without blocking
func (queue *BroadcastQueue) Send(command string, parameters ...[]byte) {
	m := Message{
		Command:    command,
		Parameters: parameters,
	}

	queue.Lock()
	defer queue.Unlock()

	for _, c := range queue.listeners {
		select {
		case c <- m:
		default:
			queue.dropped.Increment()
		}
	}
}

// Dropped - number of messages a listener could not accept
func (queue *BroadcastQueue) Dropped() uint64 {
	return queue.dropped.Uint64()
}

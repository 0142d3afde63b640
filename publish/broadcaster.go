// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/batteryd/fault"
	"github.com/bitmark-inc/batteryd/messagebus"
	"github.com/bitmark-inc/batteryd/util"
	"github.com/bitmark-inc/batteryd/zmqutil"
	"github.com/bitmark-inc/logger"
)

const (
	broadcasterZapDomain = "broadcaster"
)

type broadcaster struct {
	log     *logger.L
	socket4 *zmq.Socket
	socket6 *zmq.Socket
	queue   <-chan messagebus.Message
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(privateKey []byte, publicKey []byte, broadcast []string) error {

	log := logger.New("broadcaster")
	if nil == log {
		return fault.InvalidLoggerChannel
	}
	brdc.log = log

	log.Info("initialising…")

	c, err := util.NewConnections(broadcast)
	if nil != err {
		log.Errorf("ip and port error: %s", err)
		return err
	}

	// allocate IPv4 and IPv6 sockets
	brdc.socket4, brdc.socket6, err = zmqutil.NewBind(log, zmq.PUB, broadcasterZapDomain, privateKey, publicKey, c)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}

	// listen before returning so no event is missed
	brdc.queue = messagebus.Bus.Events.Chan(0)

	return nil
}

// forward each queued event to all subscribers
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item, ok := <-brdc.queue:
			if !ok {
				break loop
			}
			log.Infof("sending: %s  data: %s", item.Command, item.Parameters)
			brdc.process(brdc.socket4, &item)
			brdc.process(brdc.socket6, &item)
		}
	}
	if nil != brdc.socket4 {
		brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
	}
	log.Info("stopped")
}

// send one message as a multipart frame
func (brdc *broadcaster) process(socket *zmq.Socket, item *messagebus.Message) {
	if nil == socket {
		return
	}

	flags := zmq.SNDMORE | zmq.DONTWAIT
	if 0 == len(item.Parameters) {
		flags = zmq.DONTWAIT
	}
	_, err := socket.Send(item.Command, flags)
	logger.PanicIfError("broadcaster", err)

	last := len(item.Parameters) - 1
	for i, p := range item.Parameters {
		if i == last {
			_, err = socket.SendBytes(p, zmq.DONTWAIT)
		} else {
			_, err = socket.SendBytes(p, zmq.SNDMORE|zmq.DONTWAIT)
		}
		logger.PanicIfError("broadcaster", err)
	}
}

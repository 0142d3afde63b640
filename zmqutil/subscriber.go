// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"crypto/rand"
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/batteryd/fault"
	"github.com/bitmark-inc/batteryd/util"
)

const identifierSize = 32

// NewSubscriber - connect a SUB socket to a publisher with the
// publisher's curve public key
//
// a temporary client keypair is generated for each connection
func NewSubscriber(address *util.Connection, serverPublicKey []byte, timeout time.Duration) (*zmq.Socket, error) {
	if publicLength != len(serverPublicKey) {
		return nil, fault.InvalidPublicKeyFile
	}

	publicKey, privateKey, err := zmq.NewCurveKeypair()
	if nil != err {
		return nil, err
	}

	socket, err := zmq.NewSocket(zmq.SUB)
	if nil != err {
		return nil, err
	}

	connectTo, v6 := address.CanonicalIPandPort("tcp://")

	// create a secure random identifier
	randomIdBytes := make([]byte, identifierSize)
	_, err = rand.Read(randomIdBytes)
	if nil != err {
		goto failure
	}

	// set up as client
	if err = socket.SetCurveServer(0); nil != err {
		goto failure
	}
	if err = socket.SetCurvePublickey(publicKey); nil != err {
		goto failure
	}
	if err = socket.SetCurveSecretkey(privateKey); nil != err {
		goto failure
	}
	if err = socket.SetCurveServerkey(zmq.Z85encode(string(serverPublicKey))); nil != err {
		goto failure
	}
	if err = socket.SetIdentity(string(randomIdBytes)); nil != err {
		goto failure
	}

	// zero => do not set timeout
	if 0 != timeout {
		if err = socket.SetRcvtimeo(timeout); nil != err {
			goto failure
		}
	}
	if err = socket.SetLinger(0); nil != err {
		goto failure
	}

	// set subscription prefix - empty => receive everything
	if err = socket.SetSubscribe(""); nil != err {
		goto failure
	}

	// set IPv6 state before connect
	if err = socket.SetIpv6(v6); nil != err {
		goto failure
	}

	if err = socket.Connect(connectTo); nil != err {
		goto failure
	}
	return socket, nil

failure:
	socket.Close()
	return nil, err
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package signed - proof of the caller identity for RPC requests
// that change the registry
//
// the signed message is:
//
//   method name ++ 0x00 ++ caller bytes ++ varint(nonce) ++ parameters
//
// where parameters are the binary forms of the request arguments in
// the order the method declares them
package signed

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/batteryd/account"
	"github.com/bitmark-inc/batteryd/fault"
	"github.com/bitmark-inc/batteryd/storage"
	"github.com/bitmark-inc/batteryd/util"
)

// Authorisation - the signature block carried by every changing request
type Authorisation struct {
	Caller    *account.Account  `json:"caller"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// Verifier - checks authorisations and rejects replays
//
// the last accepted nonce of each caller is kept in the nonces pool
// so replay protection survives a restart
type Verifier struct {
	sync.Mutex
	nonces    storage.Handle
	isTesting func() bool
}

// NewVerifier - create a verifier for the current chain
func NewVerifier(isTesting func() bool, nonces storage.Handle) *Verifier {
	return &Verifier{
		nonces:    nonces,
		isTesting: isTesting,
	}
}

// CheckNetwork - an account must belong to the same network as the chain
func (v *Verifier) CheckNetwork(a *account.Account) error {
	if nil == a || nil == a.AccountInterface {
		return fault.MissingParameters
	}
	if a.IsTesting() != v.isTesting() {
		return fault.WrongNetworkForAccount
	}
	return nil
}

// Message - the bytes covered by the signature
func Message(method string, caller *account.Account, nonce uint64, parameters ...[]byte) []byte {
	message := append([]byte(method), 0)
	message = append(message, caller.Bytes()...)
	message = append(message, util.ToVarint64(nonce)...)
	for _, p := range parameters {
		message = append(message, p...)
	}
	return message
}

// Sign - produce the authorisation for a request
func Sign(privateKey *account.PrivateKey, method string, nonce uint64, parameters ...[]byte) Authorisation {
	caller := privateKey.Account()
	return Authorisation{
		Caller:    caller,
		Nonce:     nonce,
		Signature: privateKey.Sign(Message(method, caller, nonce, parameters...)),
	}
}

// Verify - check the signature and record the nonce
//
// each caller's nonces must strictly increase
func (v *Verifier) Verify(method string, auth *Authorisation, parameters ...[]byte) error {
	if nil == auth {
		return fault.MissingParameters
	}
	if err := v.CheckNetwork(auth.Caller); nil != err {
		return err
	}

	message := Message(method, auth.Caller, auth.Nonce, parameters...)
	err := auth.Caller.CheckSignature(message, auth.Signature)
	if nil != err {
		return err
	}

	key := auth.Caller.Bytes()

	v.Lock()
	defer v.Unlock()

	last, ok := v.nonces.GetN(key)
	if ok && auth.Nonce <= last {
		return fault.ReplayedRequest
	}

	value := make([]byte, 8)
	binary.BigEndian.PutUint64(value, auth.Nonce)
	return v.nonces.Put(key, value)
}

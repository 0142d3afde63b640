// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpccalls - client side of the batteryd JSON RPC
package rpccalls

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/bitmark-inc/batteryd/account"
	"github.com/bitmark-inc/batteryd/fault"
	"github.com/bitmark-inc/batteryd/rpc/signed"
)

// ErrRequiredKey - a changing request was made without a private key
const ErrRequiredKey = fault.InvalidError("private key is required")

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	key     *account.PrivateKey
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a batteryd
//
// key may be nil when only queries are made
func NewClient(connect string, key *account.PrivateKey, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		key:     key,
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// NewClientFromConn - wrap an existing connection
func NewClientFromConn(conn net.Conn, key *account.PrivateKey) *Client {
	return &Client{
		conn:   conn,
		client: jsonrpc.NewClient(conn),
		key:    key,
	}
}

// Close - shutdown the batteryd connection
func (client *Client) Close() {
	client.client.Close()
	client.conn.Close()
}

// sign a request with a fresh nonce
func (client *Client) authorise(method string, parameters ...[]byte) (signed.Authorisation, error) {
	if nil == client.key {
		return signed.Authorisation{}, ErrRequiredKey
	}
	nonce := uint64(time.Now().UnixNano())
	return signed.Sign(client.key, method, nonce, parameters...), nil
}

// perform a call, showing the request and reply if verbose
func (client *Client) call(method string, arguments interface{}, reply interface{}) error {
	if client.verbose {
		client.printJson(method+" request", arguments)
	}

	if err := client.client.Call(method, arguments, reply); nil != err {
		return err
	}

	if client.verbose {
		client.printJson(method+" reply", reply)
	}
	return nil
}

func (client *Client) printJson(title string, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(client.handle, "%s: marshal error: %s\n", title, err)
		return
	}
	fmt.Fprintf(client.handle, "%s:\n%s\n", title, b)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - register all RPC services
package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/batteryd/counter"
	"github.com/bitmark-inc/batteryd/mode"
	"github.com/bitmark-inc/batteryd/registry"
	"github.com/bitmark-inc/batteryd/rpc/battery"
	"github.com/bitmark-inc/batteryd/rpc/node"
	"github.com/bitmark-inc/batteryd/rpc/owner"
	"github.com/bitmark-inc/batteryd/rpc/signed"
	"github.com/bitmark-inc/batteryd/rpc/station"
	"github.com/bitmark-inc/logger"
)

// Create - an RPC server offering Battery, Node, Owner and Station
func Create(log *logger.L, version string, rpcCount *counter.Counter, reg registry.Registry, verifier *signed.Verifier) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(battery.New(log, reg, verifier, mode.Is))
	_ = server.Register(station.New(log, reg, verifier, mode.Is))
	_ = server.Register(owner.New(log, reg))
	_ = server.Register(node.New(log, reg, start, version, rpcCount))

	return server
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"encoding/hex"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/batteryd/blockheader"
	"github.com/bitmark-inc/batteryd/counter"
	"github.com/bitmark-inc/batteryd/merkle"
	"github.com/bitmark-inc/batteryd/messagebus"
	"github.com/bitmark-inc/batteryd/mode"
	"github.com/bitmark-inc/batteryd/publish"
	"github.com/bitmark-inc/batteryd/registry"
	"github.com/bitmark-inc/batteryd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Start    time.Time
	Version  string
	Registry registry.Registry
	counter  *counter.Counter
}

// New - create node RPC handler
func New(log *logger.L, reg registry.Registry, start time.Time, version string, counter *counter.Counter) *Node {
	return &Node{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:    start,
		Version:  version,
		Registry: reg,
		counter:  counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain     string        `json:"chain"`
	Mode      string        `json:"mode"`
	Block     BlockInfo     `json:"block"`
	RPCs      uint64        `json:"rpcs"`
	Counts    Counts        `json:"counts"`
	StateRoot merkle.Digest `json:"stateRoot"`
	Dropped   uint64        `json:"droppedEvents"`
	Version   string        `json:"version"`
	Uptime    string        `json:"uptime"`
	PublicKey string        `json:"publicKey"`
}

// BlockInfo - the current block
type BlockInfo struct {
	Height    uint64        `json:"height"`
	Seed      merkle.Digest `json:"seed"`
	Timestamp uint64        `json:"timestamp"`
}

// Counts - registry sizes
type Counts struct {
	Batteries uint64 `json:"batteries"`
	Stations  uint64 `json:"stations"`
}

// Info - return some information about this node
// only enough for clients to determine node state
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	height, seed, timestamp := blockheader.Get()

	reply.Chain = mode.ChainName()
	reply.Mode = mode.String()
	reply.Block = BlockInfo{
		Height:    height,
		Seed:      seed,
		Timestamp: timestamp,
	}
	reply.RPCs = node.counter.Uint64()
	reply.Counts = Counts{
		Batteries: node.Registry.BatteryCount(),
		Stations:  node.Registry.StationCount(),
	}
	reply.StateRoot = node.Registry.StateRoot()
	reply.Dropped = messagebus.Bus.Events.Dropped()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.PublicKey = hex.EncodeToString(publish.PublicKey())
	return nil
}

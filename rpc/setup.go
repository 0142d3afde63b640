// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"time"

	"github.com/bitmark-inc/batteryd/counter"
	"github.com/bitmark-inc/batteryd/fault"
	"github.com/bitmark-inc/batteryd/mode"
	"github.com/bitmark-inc/batteryd/registry"
	"github.com/bitmark-inc/batteryd/rpc/certificate"
	"github.com/bitmark-inc/batteryd/rpc/handler"
	"github.com/bitmark-inc/batteryd/rpc/listeners"
	"github.com/bitmark-inc/batteryd/rpc/server"
	"github.com/bitmark-inc/batteryd/rpc/signed"
	"github.com/bitmark-inc/batteryd/storage"
	"github.com/bitmark-inc/logger"
)

const (
	rpcName   = "client_rpc"
	httpsName = "http_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listeners []listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// number of active RPC connections
var connectionCountRPC counter.Counter

// Initialise - start the RPC and HTTPS listeners
func Initialise(rpcConfiguration *listeners.RPCConfiguration, httpsConfiguration *listeners.HTTPSConfiguration, version string, reg registry.Registry) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	// one verifier so a nonce cannot be replayed on the other listener
	verifier := signed.NewVerifier(mode.IsTesting, storage.Pool.Nonces)

	tlsConfig, certificateFingerprint, err := certificate.Get(log, rpcName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		server.Create(log, version, &connectionCountRPC, reg, verifier),
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		return err
	}
	globalData.listeners = append(globalData.listeners, rpcListener)

	if len(httpsConfiguration.Listen) > 0 {
		httpsTLS, fingerprint, err := certificate.Get(log, httpsName, httpsConfiguration.Certificate, httpsConfiguration.PrivateKey)
		if nil != err {
			return err
		}
		log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, fingerprint)

		hdlr := handler.New(
			log,
			server.Create(log, version, &connectionCountRPC, reg, verifier),
			reg,
			time.Now(),
			version,
			httpsConfiguration.MaximumConnections,
		)
		httpsListener, err := listeners.NewHTTPS(httpsConfiguration, log, httpsTLS, hdlr)
		if nil != err {
			return err
		}
		err = httpsListener.Serve()
		if nil != err {
			return err
		}
		globalData.listeners = append(globalData.listeners, httpsListener)
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all listeners
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	for _, l := range globalData.listeners {
		_ = l.Close()
	}
	globalData.listeners = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

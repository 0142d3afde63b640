// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package handler - HTTP access to the JSON RPC services
//
//   POST /batteryd/rpc      any JSON RPC request
//   GET  /batteryd/details  node summary (restricted by allow list)
package handler

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/batteryd/blockheader"
	"github.com/bitmark-inc/batteryd/counter"
	"github.com/bitmark-inc/batteryd/merkle"
	"github.com/bitmark-inc/batteryd/mode"
	"github.com/bitmark-inc/batteryd/registry"
	"github.com/bitmark-inc/logger"
)

// Handler - the HTTP endpoints
type Handler interface {
	RPC(http.ResponseWriter, *http.Request)
	Details(http.ResponseWriter, *http.Request)
	Root(http.ResponseWriter, *http.Request)
	SetAllow(map[string][]*net.IPNet)
}

// type to allow rpc system to interface to http request
type internalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *internalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}
func (c *internalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}
func (c *internalConnection) Close() error {
	return nil
}

type httpHandler struct {
	sync.RWMutex
	log                *logger.L
	server             *rpc.Server
	registry           registry.Registry
	start              time.Time
	version            string
	allow              map[string][]*net.IPNet
	count              counter.Counter
	maximumConnections uint64
}

// New - create the HTTP handler
func New(log *logger.L, server *rpc.Server, reg registry.Registry, start time.Time, version string, maximumConnections uint64) Handler {
	return &httpHandler{
		log:                log,
		server:             server,
		registry:           reg,
		start:              start,
		version:            version,
		allow:              make(map[string][]*net.IPNet),
		maximumConnections: maximumConnections,
	}
}

// SetAllow - replace the access control lists
func (h *httpHandler) SetAllow(allow map[string][]*net.IPNet) {
	h.Lock()
	h.allow = allow
	h.Unlock()
}

// Root - this matches anything not matched and returns error
func (h *httpHandler) Root(w http.ResponseWriter, _ *http.Request) {
	sendNotFound(w)
}

// RPC - performs a call to any normal RPC
func (h *httpHandler) RPC(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if h.count.Increment() > h.maximumConnections {
		h.count.Decrement()
		sendTooManyRequests(w)
		return
	}
	defer h.count.Decrement()

	serverCodec := jsonrpc.NewServerCodec(&internalConnection{in: r.Body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	err := h.server.ServeRequest(serverCodec)
	if nil != err {
		h.log.Debugf("serve request error: %s", err)
		sendInternalServerError(w)
		return
	}
}

// DetailsReply - summary of the node state
type DetailsReply struct {
	Chain     string        `json:"chain"`
	Mode      string        `json:"mode"`
	Height    uint64        `json:"height"`
	Batteries uint64        `json:"batteries"`
	Stations  uint64        `json:"stations"`
	StateRoot merkle.Digest `json:"stateRoot"`
	RPCs      uint64        `json:"rpcs"`
	Version   string        `json:"version"`
	Uptime    string        `json:"uptime"`
}

// Details - node summary for monitoring
func (h *httpHandler) Details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.isAllowed("details", r.RemoteAddr) {
		h.log.Warnf("Deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}

	if h.count.Increment() > h.maximumConnections {
		h.count.Decrement()
		sendTooManyRequests(w)
		return
	}
	defer h.count.Decrement()

	reply := DetailsReply{
		Chain:     mode.ChainName(),
		Mode:      mode.String(),
		Height:    blockheader.Height(),
		Batteries: h.registry.BatteryCount(),
		Stations:  h.registry.StationCount(),
		StateRoot: h.registry.StateRoot(),
		RPCs:      h.count.Uint64(),
		Version:   h.version,
		Uptime:    time.Since(h.start).String(),
	}

	sendReply(w, reply)
}

// check the remote address against an allow list
func (h *httpHandler) isAllowed(name string, remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if nil != err {
		return false
	}
	ip := net.ParseIP(strings.Trim(host, "[]"))
	if nil == ip {
		return false
	}

	h.RLock()
	defer h.RUnlock()

	for _, cidr := range h.allow[name] {
		if cidr.Contains(ip) {
			return true
		}
	}
	return false
}

// send an JSON encoded reply
func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

// selected errors as required above
func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}
func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}
func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}
func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}
func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

// to compose JSON error messages
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		// manually composed error just incase JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - TLS servers for the JSON RPC services
package listeners

import (
	"net"
	"strings"

	"github.com/bitmark-inc/batteryd/fault"
	"github.com/bitmark-inc/logger"
)

const minConnectionCount = 1

// Listener - a started server
type Listener interface {
	Serve() error
	Close() error
}

// change "*:PORT" to "[::]:PORT"
// on the assumption that this will listen on tcp4 and tcp6
func expandWildcard(listen string) string {
	if '*' == listen[0] {
		return "[::]" + ":" + strings.Split(listen, ":")[1]
	}
	return listen
}

// determine the network type of each listen address
func parseListenAddress(addrs []string, log *logger.L) ([]string, error) {
	parsed := make([]string, len(addrs))
	for i, listen := range addrs {
		if "" == listen {
			return nil, fault.InvalidIpAddress
		}
		if '*' == listen[0] {
			addrs[i] = expandWildcard(listen)
			listen = "::"
			parsed[i] = "tcp"
		} else if '[' == listen[0] {
			listen = strings.Split(listen[1:], "]:")[0]
			parsed[i] = "tcp6"
		} else {
			listen = strings.Split(listen, ":")[0]
			parsed[i] = "tcp4"
		}

		if ip := net.ParseIP(listen); nil == ip {
			err := fault.InvalidIpAddress
			log.Errorf("rpc server listen error: %s", err)
			return nil, err
		}
	}

	return parsed, nil
}

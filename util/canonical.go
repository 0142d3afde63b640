// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/bitmark-inc/batteryd/fault"
)

// Connection - a canonical IP and port
type Connection struct {
	ip   net.IP
	port int
}

// NewConnection - create a connection from an Bitcoin-style IP & port string
//
// examples:
//   IPv4:  127.0.0.1:1234
//   IPv6:  [::1]:1234
func NewConnection(hostPort string) (*Connection, error) {
	host, port, err := net.SplitHostPort(strings.TrimSpace(hostPort))
	if nil != err {
		return nil, fault.InvalidIpAddress
	}

	IP := net.ParseIP(strings.TrimSpace(host))
	if nil == IP {
		return nil, fault.InvalidIpAddress
	}

	numericPort, err := strconv.Atoi(strings.TrimSpace(port))
	if nil != err {
		return nil, err
	}
	if numericPort < 1 || numericPort > 65535 {
		return nil, fault.InvalidPortNumber
	}

	c := &Connection{
		ip:   IP,
		port: numericPort,
	}
	return c, nil
}

// NewConnections - convert a list of IP & port strings
func NewConnections(hostPort []string) ([]*Connection, error) {
	if 0 == len(hostPort) {
		return nil, fault.InvalidCount
	}
	c := make([]*Connection, len(hostPort))
	for i, hp := range hostPort {
		var err error
		c[i], err = NewConnection(hp)
		if nil != err {
			return nil, err
		}
	}
	return c, nil
}

// CanonicalIPandPort - make the IP:Port canonical with a prefix
// e.g. "tcp://"
//
// also returns true if the address is IPv6
func (conn *Connection) CanonicalIPandPort(prefix string) (string, bool) {
	port := strconv.Itoa(conn.port)
	if nil != conn.ip.To4() {
		return prefix + conn.ip.String() + ":" + port, false
	}
	return prefix + "[" + conn.ip.String() + "]:" + port, true
}

// CanonicalIPandPort - make the IP:Port canonical
func CanonicalIPandPort(prefix string, hostPort string) (string, error) {
	c, err := NewConnection(hostPort)
	if nil != err {
		return "", err
	}
	s, _ := c.CanonicalIPandPort(prefix)
	return s, nil
}

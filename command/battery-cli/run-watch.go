// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	zmq "github.com/pebbe/zmq4"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/batteryd/util"
	"github.com/bitmark-inc/batteryd/zmqutil"
)

const watchTimeout = 500 * time.Millisecond

func runWatch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	publicKeyFile := c.String("public-key")
	if "" == publicKeyFile {
		return ErrRequiredPublicKey
	}
	publicKey, err := zmqutil.ReadPublicKeyFile(publicKeyFile)
	if nil != err {
		return err
	}

	address, err := util.NewConnection(c.String("publisher"))
	if nil != err {
		return err
	}

	socket, err := zmqutil.NewSubscriber(address, publicKey, 0)
	if nil != err {
		return err
	}
	defer socket.Close()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	if m.verbose {
		fmt.Fprintf(m.e, "watching: %s\n", c.String("publisher"))
	}

	poller := zmq.NewPoller()
	poller.Add(socket, zmq.POLLIN)

	for {
		select {
		case <-stop:
			return nil
		default:
		}

		polled, err := poller.Poll(watchTimeout)
		if nil != err {
			return err
		}
		if 0 == len(polled) {
			continue
		}

		data, err := socket.RecvMessageBytes(0)
		if nil != err {
			return err
		}
		if len(data) < 2 {
			fmt.Fprintf(m.e, "short message: %q\n", data)
			continue
		}
		fmt.Fprintf(m.w, "%s: %s\n", data[0], data[1])
	}
}

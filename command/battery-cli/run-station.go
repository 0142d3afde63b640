// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runRegisterStation(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.RegisterStation()
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runStations(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.ListStations(c.Uint64("start"), c.Int("count"))
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runInStation(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	station, err := checkAccount(c, m, "station", true)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.InStation(station, c.Uint64("start"), c.Int("count"))
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/batteryd/command/battery-cli/rpccalls"
	"github.com/bitmark-inc/batteryd/merkle"
	"github.com/bitmark-inc/batteryd/rpc/battery"
)

func runRegister(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkAccount(c, m, "owner", false)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.RegisterBattery(owner)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runSwitchTradable(c *cli.Context) error {
	return runChange(c, (*rpccalls.Client).SwitchTradable)
}

func runStore(c *cli.Context) error {
	return runChange(c, (*rpccalls.Client).StoreToStation)
}

func runFetch(c *cli.Context) error {
	return runChange(c, (*rpccalls.Client).FetchFromStation)
}

// a signed request on a single battery
func runChange(c *cli.Context, change func(*rpccalls.Client, merkle.Digest) (*battery.Reply, error)) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkId(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := change(client, id)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runTrade(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkId(c)
	if nil != err {
		return err
	}
	to, err := checkAccount(c, m, "to", false)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Trade(id, to)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "traded: %s  to: %s\n", id, to)
	}

	printJson(m.w, reply)
	return nil
}

func runBattery(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkId(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetBattery(id)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.ListBatteries(c.Uint64("start"), c.Int("count"))
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runOwned(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkAccount(c, m, "owner", true)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Owned(owner, c.Uint64("start"), c.Int("count"))
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

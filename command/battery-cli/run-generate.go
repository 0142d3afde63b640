// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/batteryd/account"
)

type generateReply struct {
	Account    *account.Account    `json:"account"`
	PrivateKey *account.PrivateKey `json:"private_key"`
	Testnet    bool                `json:"testnet"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := account.NewPrivateKey(m.testnet)
	if nil != err {
		return err
	}

	printJson(m.w, generateReply{
		Account:    key.Account(),
		PrivateKey: key,
		Testnet:    m.testnet,
	})
	return nil
}

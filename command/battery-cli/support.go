// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/batteryd/account"
	"github.com/bitmark-inc/batteryd/command/battery-cli/rpccalls"
	"github.com/bitmark-inc/batteryd/merkle"
)

func connect(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.connect, m.key, m.verbose, m.e)
}

// battery id from the --id flag
func checkId(c *cli.Context) (merkle.Digest, error) {
	var id merkle.Digest
	s := strings.TrimSpace(c.String("id"))
	if "" == s {
		return id, ErrRequiredId
	}
	err := id.UnmarshalText([]byte(s))
	return id, err
}

// account from a flag, optionally defaulting to the key's account
func checkAccount(c *cli.Context, m *metadata, name string, useKey bool) (*account.Account, error) {
	s := strings.TrimSpace(c.String(name))
	if "" == s {
		if useKey && nil != m.key {
			return m.key.Account(), nil
		}
		return nil, ErrRequiredAccount
	}
	a, err := account.AccountFromBase58(s)
	if nil != err {
		return nil, err
	}
	if a.IsTesting() != m.testnet {
		return nil, ErrWrongNetwork
	}
	return a, nil
}

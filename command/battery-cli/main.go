// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/batteryd/account"
)

type metadata struct {
	connect string
	key     *account.PrivateKey
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "battery-cli"
	app.Usage = "batteryd client"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: "local",
			Usage: " account `NETWORK` [bitmark|testing|local]",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "127.0.0.1:2130",
			Usage: " batteryd host/IP and port, `HOST:PORT`",
		},
		cli.StringFlag{
			Name:   "key, k",
			Value:  "",
			Usage:  " base58 private `KEY` for signing changes",
			EnvVar: "BATTERY_KEY",
		},
	}

	pageFlags := []cli.Flag{
		cli.Uint64Flag{
			Name:  "start, s",
			Value: 0,
			Usage: " first index `NUMBER`",
		},
		cli.IntFlag{
			Name:  "count, l",
			Value: 20,
			Usage: " maximum records `COUNT`",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a new private key and account",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "register-station",
			Usage:     "register the key's account as a station",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runRegisterStation,
		},
		{
			Name:      "register",
			Usage:     "station registers a new battery for an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner `ACCOUNT`",
				},
			},
			Action: runRegister,
		},
		{
			Name:      "switch-tradable",
			Usage:     "owner toggles whether a battery may be traded",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag},
			Action:    runSwitchTradable,
		},
		{
			Name:      "store",
			Usage:     "station takes custody of a battery",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag},
			Action:    runStore,
		},
		{
			Name:      "fetch",
			Usage:     "owner takes a battery back from its station",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag},
			Action:    runFetch,
		},
		{
			Name:      "trade",
			Usage:     "station sells a tradable battery to a new owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag,
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*new owner `ACCOUNT`",
				},
			},
			Action: runTrade,
		},
		{
			Name:      "battery",
			Usage:     "show one battery",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag},
			Action:    runBattery,
		},
		{
			Name:      "list",
			Usage:     "list all batteries",
			ArgsUsage: "\n   (* = required)",
			Flags:     pageFlags,
			Action:    runList,
		},
		{
			Name:      "owned",
			Usage:     "list batteries of an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owner `ACCOUNT` [default: account of key]",
				},
			}, pageFlags...),
			Action: runOwned,
		},
		{
			Name:      "in-station",
			Usage:     "list batteries held by a station",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "station, S",
					Value: "",
					Usage: " station `ACCOUNT` [default: account of key]",
				},
			}, pageFlags...),
			Action: runInStation,
		},
		{
			Name:      "stations",
			Usage:     "list stations in registration order",
			ArgsUsage: "\n   (* = required)",
			Flags:     pageFlags,
			Action:    runStations,
		},
		{
			Name:      "info",
			Usage:     "display batteryd status",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runInfo,
		},
		{
			Name:      "watch",
			Usage:     "print registry events as they are published",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "publisher, P",
					Value: "127.0.0.1:2135",
					Usage: " publisher `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "public-key, K",
					Value: "",
					Usage: "*publisher public key `FILE`",
				},
			},
			Action: runWatch,
		},
		{
			Name:   "version",
			Usage:  "display battery-cli version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		network := c.GlobalString("network")
		switch network {
		case "bitmark", "live":
			network = "bitmark"
		case "testing", "test":
			network = "testing"
		case "local", "regression":
			network = "local"
		default:
			return fmt.Errorf("network: %q can only be bitmark/testing/local", network)
		}
		testnet := network != "bitmark"

		var key *account.PrivateKey
		if k := c.GlobalString("key"); "" != k {
			var err error
			key, err = account.PrivateKeyFromBase58(k)
			if nil != err {
				return err
			}
			if key.Account().IsTesting() != testnet {
				return ErrWrongNetwork
			}
		}

		if verbose {
			fmt.Fprintf(e, "network: %s  connect: %s\n", network, c.GlobalString("connect"))
		}

		c.App.Metadata["config"] = &metadata{
			connect: c.GlobalString("connect"),
			key:     key,
			testnet: testnet,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

var idFlag = cli.StringFlag{
	Name:  "id, i",
	Value: "",
	Usage: "*battery `ID`",
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/batteryd/merkle"
	"github.com/bitmark-inc/batteryd/registry"
	"github.com/bitmark-inc/batteryd/rpc/certificate"
	"github.com/bitmark-inc/batteryd/zmqutil"
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"

	publisherPublicKeyFilename  = "publisher.public"
	publisherPrivateKeyFilename = "publisher.private"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := certificate.MakeSelfSigned("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "gen-publisher-key", "publisher":
		publicKeyFilename := getFilenameWithDirectory(arguments, publisherPublicKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, publisherPrivateKeyFilename)
		err := zmqutil.MakeKeyPair(publicKeyFilename, privateKeyFilename)
		if nil != err {
			fmt.Printf("generate private key: %q and public key: %q error: %s\n", privateKeyFilename, publicKeyFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated private key: %q and public key: %q\n", privateKeyFilename, publicKeyFilename)

	case "start", "run":
		return false // continue processing

	case "stations", "batteries", "battery", "state-root":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)         - display this message\n\n")
		fmt.Printf("  version                    (v)         - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)       - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                           and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]            - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                           and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-publisher-key [DIR]    (publisher) - create private key in: %q\n", "DIR/"+publisherPrivateKeyFilename)
		fmt.Printf("                                           and the public key in: %q\n", "DIR/"+publisherPublicKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)       - just run the program, same as no arguments\n")
		fmt.Printf("                                           for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)       - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  stations [FILE]                        - dump all stations as JSON to stdout/file\n")
		fmt.Printf("\n")

		fmt.Printf("  batteries [FILE]                       - dump all batteries as JSON to stdout/file\n")
		fmt.Printf("\n")

		fmt.Printf("  battery ID                             - display one battery\n")
		fmt.Printf("\n")

		fmt.Printf("  state-root                             - display the registry state digest\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		json.Indent(&out, b, "", "  ")
		out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the registry pools are open so these commands can read the stored
// stations and batteries
func processDataCommand(log *logger.L, arguments []string, reg registry.Registry) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "stations":
		fd := outputFile(arguments)
		defer fd.Close()

		n := reg.StationCount()
		fmt.Fprintf(fd, "[\n")
		for i := uint64(0); i < n; i += 1 {
			s, ok := reg.StationByIndex(i)
			if !ok {
				exitwithstatus.Message("station: %d is missing", i)
			}
			separator := ","
			if i == n-1 {
				separator = ""
			}
			fmt.Fprintf(fd, "  %q%s\n", s, separator)
		}
		fmt.Fprintf(fd, "]\n")

	case "batteries":
		fd := outputFile(arguments)
		defer fd.Close()

		n := reg.BatteryCount()
		fmt.Fprintf(fd, "[\n")
		for i := uint64(0); i < n; i += 1 {
			id, ok := reg.BatteryByIndex(i)
			if !ok {
				exitwithstatus.Message("battery: %d is missing", i)
			}
			separator := ","
			if i == n-1 {
				separator = ""
			}
			fmt.Fprintf(fd, "  %s%s\n", batteryJSON(reg, id), separator)
		}
		fmt.Fprintf(fd, "]\n")

	case "battery":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing battery id argument")
		}
		var id merkle.Digest
		if err := id.UnmarshalText([]byte(arguments[0])); nil != err {
			exitwithstatus.Message("error in battery id: %s", err)
		}
		fmt.Printf("%s\n", batteryJSON(reg, id))

	case "state-root":
		fmt.Printf("%s\n", reg.StateRoot())

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	log.Infof("data command: %q complete", command)

	// indicate processing complete and perform normal exit from main
	return true
}

// a battery record with its state as indented JSON
func batteryJSON(reg registry.Registry, id merkle.Digest) []byte {
	b, err := reg.Battery(id)
	if nil != err {
		exitwithstatus.Message("battery: %s  error: %s", id, err)
	}
	record := struct {
		Battery interface{} `json:"battery"`
		State   string      `json:"state"`
	}{
		Battery: b,
		State:   b.State().Type.String(),
	}
	s, err := json.MarshalIndent(record, "  ", "  ")
	if nil != err {
		exitwithstatus.Message("battery JSON error: %s", err)
	}
	return s
}

// optional first argument is an output file, default stdout
func outputFile(arguments []string) io.WriteCloser {
	if len(arguments) < 1 || "" == arguments[0] || "-" == arguments[0] {
		return nopCloser{os.Stdout}
	}
	fd, err := os.Create(arguments[0])
	if nil != err {
		exitwithstatus.Message("error: creating: %q error: %s", arguments[0], err)
	}
	return fd
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}

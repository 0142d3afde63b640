// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - names of the supported registries
//
// the chain name selects the account network: "bitmark" accepts only
// live accounts, the other two accept only test accounts
package chain

// names of all chains
const (
	Bitmark = "bitmark"
	Testing = "testing"
	Local   = "local"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Bitmark, Testing, Local:
		return true
	default:
		return false
	}
}

// IsTesting - true if the chain uses test accounts
func IsTesting(name string) bool {
	return Testing == name || Local == name
}

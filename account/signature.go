// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"
)

// Signature - proof that a request came from an account
//
// carried as hex in the authorisation block of signed requests
type Signature []byte

// String - hex form for logging
func (signature Signature) String() string {
	return hex.EncodeToString(signature)
}

// MarshalText - hex form for JSON
func (signature Signature) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(signature)), nil
}

// UnmarshalText - decode the hex form
//
// the length is left to CheckSignature
func (signature *Signature) UnmarshalText(s []byte) error {
	sig, err := hex.DecodeString(string(s))
	if nil != err {
		return err
	}
	*signature = sig
	return nil
}

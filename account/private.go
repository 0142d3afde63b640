// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/batteryd/fault"
	"github.com/bitmark-inc/batteryd/util"
)

// PrivateKey - an ed25519 signing key
//
// only used by clients to sign requests, the daemon never holds one
type PrivateKey struct {
	Test       bool
	PrivateKey ed25519.PrivateKey
}

// NewPrivateKey - generate a new random private key
func NewPrivateKey(test bool) (*PrivateKey, error) {
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{
		Test:       test,
		PrivateKey: key,
	}, nil
}

// PrivateKeyFromBase58 - this converts a Base58 encoded string and returns a private key
func PrivateKeyFromBase58(privateKeyBase58Encoded string) (*PrivateKey, error) {
	privateKeyDecoded := util.FromBase58(privateKeyBase58Encoded)
	if 0 == len(privateKeyDecoded) {
		return nil, fault.CannotDecodePrivateKey
	}

	h, err := parseKeyHeader(privateKeyDecoded)
	if nil != err || h.isPublicKeyset {
		return nil, fault.NotPrivateKey
	}
	if ED25519 != h.algorithm {
		return nil, fault.InvalidKeyType
	}

	checksumStart := len(privateKeyDecoded) - checksumLength
	if checksumStart-h.variantLength != ed25519.PrivateKeySize {
		return nil, fault.InvalidKeyLength
	}

	checksum := sha3.Sum256(privateKeyDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], privateKeyDecoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	key := make([]byte, ed25519.PrivateKeySize)
	copy(key, privateKeyDecoded[h.variantLength:checksumStart])
	return &PrivateKey{
		Test:       h.test,
		PrivateKey: key,
	}, nil
}

// Account - the public account for this key
func (privateKey *PrivateKey) Account() *Account {
	return &Account{
		AccountInterface: &ED25519Account{
			Test:      privateKey.Test,
			PublicKey: privateKey.PrivateKey[32:],
		},
	}
}

// Sign - sign a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.PrivateKey, message)
}

// Bytes - byte slice for encoded key
func (privateKey *PrivateKey) Bytes() []byte {
	keyVariant := byte(ED25519 << algorithmShift)
	if privateKey.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, privateKey.PrivateKey...)
}

// String - base58 encoding of encoded key
func (privateKey *PrivateKey) String() string {
	buffer := privateKey.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return util.ToBase58(buffer)
}

// MarshalText - convert a private key to its Base58 JSON form
func (privateKey PrivateKey) MarshalText() ([]byte, error) {
	return []byte(privateKey.String()), nil
}

// UnmarshalText - convert Base58 JSON text to a private key
func (privateKey *PrivateKey) UnmarshalText(s []byte) error {
	p, err := PrivateKeyFromBase58(string(s))
	if nil != err {
		return err
	}
	*privateKey = *p
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/batteryd/fault"
	"github.com/bitmark-inc/batteryd/util"
)

// enumeration of supported key algorithms
const (
	// list of valid algorithms
	Nothing = iota // zero keytype is reserved and never decoded
	ED25519 = iota
	// end of list (one greater than last item)
	algorithmLimit = iota
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm
)

// Account - base type for accounts
//
// an account identifies an owner, a station or the caller of an
// operation
type Account struct {
	AccountInterface
}

// AccountInterface - the methods of a specific account type
type AccountInterface interface {
	KeyType() int
	PublicKeyBytes() []byte
	CheckSignature(message []byte, signature Signature) error
	Bytes() []byte
	String() string
	MarshalText() ([]byte, error)
	IsTesting() bool
	IsZero() bool
}

// ED25519Account - for ed25519 signatures
type ED25519Account struct {
	Test      bool
	PublicKey []byte
}

// key header decoded from the varint prefix
type keyHeader struct {
	algorithm      uint64
	test           bool
	variantLength  int
	isPublicKeyset bool
}

func parseKeyHeader(buffer []byte) (keyHeader, error) {
	keyVariant, keyVariantLength := util.FromVarint64(buffer)
	if 0 == keyVariantLength {
		return keyHeader{}, fault.NotPublicKey
	}

	h := keyHeader{
		algorithm:      keyVariant >> algorithmShift,
		test:           0 != keyVariant&testKeyCode,
		variantLength:  keyVariantLength,
		isPublicKeyset: keyVariant&publicKeyCode == publicKeyCode,
	}
	return h, nil
}

// AccountFromBase58 - this converts a Base58 encoded string and returns an account
//
// one of the specific account types are returned using the base "AccountInterface"
// interface type to allow individual methods to be called.
func AccountFromBase58(accountBase58Encoded string) (*Account, error) {
	accountDecoded := util.FromBase58(accountBase58Encoded)
	if 0 == len(accountDecoded) {
		return nil, fault.CannotDecodeAccount
	}

	h, err := parseKeyHeader(accountDecoded)
	if nil != err {
		return nil, err
	}
	if !h.isPublicKeyset {
		return nil, fault.NotPublicKey
	}
	if h.algorithm >= algorithmLimit {
		return nil, fault.InvalidKeyType
	}

	keyLength := len(accountDecoded) - h.variantLength - checksumLength
	if keyLength <= 0 {
		return nil, fault.InvalidKeyLength
	}

	checksumStart := len(accountDecoded) - checksumLength
	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	return accountFromKey(h, accountDecoded[h.variantLength:checksumStart])
}

// AccountFromBytes - this converts a byte encoded buffer and returns an account
//
// the buffer is the form produced by Bytes() i.e. without checksum
func AccountFromBytes(accountBytes []byte) (*Account, error) {
	h, err := parseKeyHeader(accountBytes)
	if nil != err {
		return nil, err
	}
	if !h.isPublicKeyset {
		return nil, fault.NotPublicKey
	}
	if h.algorithm >= algorithmLimit {
		return nil, fault.InvalidKeyType
	}
	return accountFromKey(h, accountBytes[h.variantLength:])
}

func accountFromKey(h keyHeader, publicKey []byte) (*Account, error) {
	switch h.algorithm {
	case ED25519:
		if len(publicKey) != ed25519.PublicKeySize {
			return nil, fault.InvalidKeyLength
		}
		key := make([]byte, ed25519.PublicKeySize)
		copy(key, publicKey)
		account := &Account{
			AccountInterface: &ED25519Account{
				Test:      h.test,
				PublicKey: key,
			},
		}
		return account, nil
	default:
		return nil, fault.InvalidKeyType
	}
}

// UnmarshalText - convert Base58 JSON text to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if nil != err {
		return err
	}
	account.AccountInterface = a.AccountInterface
	return nil
}

// Equal - true if both accounts have the same encoded bytes
func (account *Account) Equal(other *Account) bool {
	if nil == account || nil == other {
		return account == other
	}
	if nil == account.AccountInterface || nil == other.AccountInterface {
		return account.AccountInterface == other.AccountInterface
	}
	return bytes.Equal(account.Bytes(), other.Bytes())
}

// ED25519
// -------

// KeyType - key type code (see enumeration above)
func (account *ED25519Account) KeyType() int {
	return ED25519
}

// PublicKeyBytes - fetch the public key as byte slice
func (account *ED25519Account) PublicKeyBytes() []byte {
	return account.PublicKey[:]
}

// CheckSignature - check the signature of a message
func (account *ED25519Account) CheckSignature(message []byte, signature Signature) error {

	if ed25519.SignatureSize != len(signature) {
		return fault.InvalidSignature
	}

	if !ed25519.Verify(account.PublicKey[:], message, signature) {
		return fault.InvalidSignature
	}
	return nil
}

// Bytes - byte slice for encoded key
func (account *ED25519Account) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift) | publicKeyCode
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.PublicKey[:]...)
}

// String - base58 encoding of encoded key
func (account *ED25519Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return util.ToBase58(buffer)
}

// MarshalText - convert an account to its Base58 JSON form
func (account ED25519Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// IsTesting - return whether the public key is in test mode or not
func (account ED25519Account) IsTesting() bool {
	return account.Test
}

// IsZero - check if the public key is all zero
func (account ED25519Account) IsZero() bool {
	for _, b := range account.PublicKey {
		if 0 != b {
			return false
		}
	}
	return true
}

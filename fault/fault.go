// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyCustodied          = ExistsError("battery is already held by a station")
	AlreadyInitialised        = ExistsError("already initialised")
	AlreadyRegistered         = ExistsError("already registered as a station")
	BatteryAlreadyExists      = ExistsError("battery already exists")
	BatteryNotFound           = NotFoundError("battery not found")
	CannotDecodeAccount       = InvalidError("cannot decode account")
	CannotDecodePrivateKey    = InvalidError("cannot decode private key")
	CertificateFileExists     = ExistsError("certificate file already exists")
	ChecksumMismatch          = InvalidError("checksum mismatch")
	DuplicateMember           = RecordError("duplicate member in indexed set")
	InvalidBlockInterval      = InvalidError("invalid block interval")
	InvalidChain              = InvalidError("invalid chain")
	InvalidCount              = InvalidError("invalid count")
	InvalidCursor             = InvalidError("invalid cursor")
	InvalidDigest             = InvalidError("invalid digest")
	InvalidIpAddress          = InvalidError("invalid IP address")
	InvalidKeyLength          = InvalidError("invalid key length")
	InvalidKeyType            = InvalidError("invalid key type")
	InvalidLoggerChannel      = InvalidError("invalid logger channel")
	InvalidPortNumber         = InvalidError("invalid port number")
	InvalidPrivateKeyFile     = InvalidError("invalid private key file")
	InvalidPublicKeyFile      = InvalidError("invalid public key file")
	InvalidSignature          = InvalidError("invalid signature")
	InvalidStructPointer      = InvalidError("invalid struct pointer")
	KeyFileAlreadyExists      = ExistsError("key file already exists")
	MissingParameters         = InvalidError("missing parameters")
	NoCustodian               = InvalidError("battery is not held by a station")
	NotAMember                = RecordError("not a member of indexed set")
	NotAStation               = InvalidError("caller is not a station")
	NotAvailable              = InvalidError("not available in current mode")
	NotInitialised            = NotFoundError("not initialised")
	NotOwner                  = InvalidError("caller is not the owner of this battery")
	NotPrivateKey             = InvalidError("not a private key")
	NotPublicKey              = InvalidError("not a public key")
	NotTradable               = InvalidError("battery is not tradable")
	RateLimiting              = InvalidError("rate limiting")
	ReplayedRequest           = ExistsError("request has already been processed")
	SameOwner                 = InvalidError("new owner is the current owner")
	TransactionAlreadyStarted = ProcessError("storage transaction already started")
	TransactionNotStarted     = ProcessError("storage transaction not started")
	TruncatedRecord           = LengthError("record is truncated")
	WrongCustodian            = InvalidError("caller is not the station holding this battery")
	WrongNetworkForAccount    = InvalidError("wrong network for account")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }

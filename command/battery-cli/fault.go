// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/batteryd/fault"
)

// common errors - keep in alphabetic order
const (
	ErrRequiredAccount   = fault.InvalidError("account is required")
	ErrRequiredId        = fault.InvalidError("battery id is required")
	ErrRequiredPublicKey = fault.InvalidError("public key is required")
	ErrWrongNetwork      = fault.InvalidError("key does not match network")
)

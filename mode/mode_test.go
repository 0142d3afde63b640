// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/batteryd/chain"
	"github.com/bitmark-inc/batteryd/fault"
	"github.com/bitmark-inc/batteryd/fixtures"
	"github.com/bitmark-inc/batteryd/mode"
)

func TestMode(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := mode.Initialise("no-such-chain")
	assert.Equal(t, fault.InvalidChain, err, "invalid chain accepted")

	err = mode.Initialise(chain.Local)
	assert.Nil(t, err, "initialise")
	defer mode.Finalise()

	err = mode.Initialise(chain.Local)
	assert.Equal(t, fault.AlreadyInitialised, err, "second initialise")

	assert.True(t, mode.IsTesting(), "local chain is testing")
	assert.Equal(t, chain.Local, mode.ChainName(), "chain name")
	assert.True(t, mode.Is(mode.Starting), "initial mode")

	mode.Set(mode.Normal)
	assert.True(t, mode.Is(mode.Normal), "normal mode")
	assert.True(t, mode.IsNot(mode.Stopped), "not stopped")
	assert.Equal(t, "Normal", mode.String(), "mode string")

	mode.Set(mode.Mode(99))
	assert.True(t, mode.Is(mode.Normal), "invalid mode ignored")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/batteryd/fault"
	"github.com/bitmark-inc/batteryd/merkle"
)

func TestScanFmt(t *testing.T) {

	stringDigest := "00000000440b921e1b77c6c0487ae5616de67f788f44ae2a5af6e2194d16b6f8"

	var d merkle.Digest
	n, err := fmt.Sscan(stringDigest, &d)
	if nil != err {
		t.Fatalf("hex to digest error: %v", err)
	}

	if 1 != n {
		t.Fatalf("scanned %d items expected to scan 1", n)
	}

	expected := merkle.Digest{
		0x00, 0x00, 0x00, 0x00,
		0x44, 0x0b, 0x92, 0x1e,
		0x1b, 0x77, 0xc6, 0xc0,
		0x48, 0x7a, 0xe5, 0x61,
		0x6d, 0xe6, 0x7f, 0x78,
		0x8f, 0x44, 0xae, 0x2a,
		0x5a, 0xf6, 0xe2, 0x19,
		0x4d, 0x16, 0xb6, 0xf8,
	}
	if d != expected {
		t.Errorf("digest = %#v expected %#v", d, expected)
	}

	s := fmt.Sprintf("%s", d)
	if s != stringDigest {
		t.Errorf("string: digest = %s expected %s", s, stringDigest)
	}

	s = fmt.Sprintf("%#v", d)
	if s != "<SHA3-256:"+stringDigest+">" {
		t.Errorf("hash-v: digest = %s expected %s", s, stringDigest)
	}
}

func TestJSON(t *testing.T) {
	d := merkle.NewDigest([]byte("battery"))

	buffer, err := json.Marshal(d)
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `"`+d.String()+`"`, string(buffer), "wrong JSON")

	var d2 merkle.Digest
	err = json.Unmarshal(buffer, &d2)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, d, d2, "wrong digest")

	err = d2.UnmarshalText([]byte("1234"))
	assert.Equal(t, fault.InvalidDigest, err, "short text accepted")
}

func TestFromBytes(t *testing.T) {
	var d merkle.Digest
	assert.True(t, d.IsZero(), "zero digest not detected")

	err := merkle.DigestFromBytes(&d, make([]byte, 31))
	assert.Equal(t, fault.InvalidDigest, err, "short buffer accepted")

	b := make([]byte, merkle.DigestLength)
	b[0] = 0x42
	err = merkle.DigestFromBytes(&d, b)
	assert.Nil(t, err, "valid buffer rejected")
	assert.Equal(t, byte(0x42), d[0], "wrong first byte")
	assert.False(t, d.IsZero(), "non-zero digest reported as zero")
}

func TestRoot(t *testing.T) {
	assert.True(t, merkle.Root(nil).IsZero(), "empty list must give zero root")

	a := merkle.NewDigest([]byte("a"))
	b := merkle.NewDigest([]byte("b"))
	c := merkle.NewDigest([]byte("c"))

	assert.Equal(t, a, merkle.Root([]merkle.Digest{a}), "single item is its own root")

	ab := merkle.NewDigest(append(a[:], b[:]...))
	assert.Equal(t, ab, merkle.Root([]merkle.Digest{a, b}), "wrong two item root")

	// odd count duplicates the last item
	cc := merkle.NewDigest(append(c[:], c[:]...))
	abcc := merkle.NewDigest(append(ab[:], cc[:]...))
	assert.Equal(t, abcc, merkle.Root([]merkle.Digest{a, b, c}), "wrong three item root")

	tree := merkle.FullMerkleTree([]merkle.Digest{a, b, c})
	assert.Equal(t, 6, len(tree), "wrong tree length")
}

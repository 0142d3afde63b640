// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package paging - read a window of an indexed list
package paging

import (
	"github.com/bitmark-inc/batteryd/merkle"
)

// MaximumCount - largest window a single request may ask for
const MaximumCount = 100

// Digests - collect up to count items starting at index start
//
// returns the items and the start value for the following page; a
// short page means the end of the list was reached
func Digests(start uint64, count int, total uint64, at func(uint64) (merkle.Digest, bool)) ([]merkle.Digest, uint64) {
	items := make([]merkle.Digest, 0, count)
	n := start
	for ; n < total && len(items) < count; n += 1 {
		d, ok := at(n)
		if !ok {
			break
		}
		items = append(items, d)
	}
	return items, n
}

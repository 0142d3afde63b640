// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package indexedset - a partitioned set with a dense index
//
// each partition holds a set of members stored in three pools:
//
//   count:    partition                   → N (number of members)
//   array:    partition ++ 8 byte index   → member
//   position: partition ++ member         → 8 byte index
//
// members occupy the indices 0..N-1 of their partition with no
// gaps. Removal moves the last member into the vacated slot so that
// all operations touch a constant number of records.
//
// the partition key must have a fixed length within one set, an empty
// partition gives a single global set
package indexedset

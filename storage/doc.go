// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the avaiable tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. batteryId    = SHA3-256 digest (32 bytes)
// 4. count        = successive index value as big endian uint64 (8 bytes)
// 5. account      = encoded account bytes (key variant ++ 32 byte public key)
//
// Batteries:
//
//   B ++ batteryId               - battery record
//                                  data: packed battery
//
// All batteries (never shrinks):
//
//   C                            - number of batteries ever registered
//                                  data: count
//   A ++ count                   - battery by insertion order
//                                  data: batteryId
//   X ++ batteryId               - insertion position of battery
//                                  data: count
//
// Owned batteries:
//
//   N ++ owner                   - number of batteries owned
//                                  data: count
//   L ++ owner ++ count          - dense list of owned batteries
//                                  data: batteryId
//   D ++ owner ++ batteryId      - position in list of owned batteries, for swap remove
//                                  data: count
//
// Stations (never shrinks):
//
//   K                            - number of stations
//                                  data: count
//   J ++ count                   - station by registration order
//                                  data: account
//   H ++ account                 - position in list of stations
//                                  data: count
//
// Batteries held by a station:
//
//   M ++ station                 - number of batteries held
//                                  data: count
//   P ++ station ++ count        - dense list of held batteries
//                                  data: batteryId
//   Q ++ station ++ batteryId    - position in list of held batteries, for swap remove
//                                  data: count
//
// Block header:
//
//   V ++ "height"                - current block number
//                                  data: count
//   V ++ "seed"                  - random seed of current block
//                                  data: 32 byte digest
//   V ++ "time"                  - timestamp of current block
//                                  data: unix seconds as count
//
// Testing:
//   Z ++ key                     - testing data
package storage

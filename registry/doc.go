// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - custody and trade of batteries
//
// every battery is indexed three ways:
//
//   global:     all batteries in registration order, never shrinks
//   owner:      batteries of each owner
//   in station: batteries held by each station
//
// battery states:
//
//   unregistered --RegisterBattery--> at station
//   at station   --SwitchTradable---> at station (tradable toggled)
//   at station   --TradeBattery-----> at station (new owner, not tradable)
//   at station   --FetchFromStation-> with owner
//   with owner   --StoreToStation---> at station
//
// each operation validates everything before making any change, then
// commits all changes together and deposits exactly one event. A
// failed operation leaves storage untouched and deposits nothing.
package registry

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON RPC requests
// from clients requiring batteryd services
//
// standard golang RPC services can be used on the client side to
// access these services:
//
//   Battery.Register          station records a battery for an owner
//   Battery.SwitchTradable    owner toggles the tradable flag
//   Battery.StoreToStation    station takes custody
//   Battery.FetchFromStation  owner takes the battery back
//   Battery.Trade             custodian station sells to a new owner
//   Battery.Get               read one battery
//   Battery.List              page through all batteries
//   Station.Register          caller becomes a station
//   Station.List              page through stations
//   Station.Batteries         page through batteries held by a station
//   Owner.Batteries           page through batteries of an owner
//   Node.Info                 node summary
//
// changing requests carry a signed.Authorisation
package rpc

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// battery-cli - command line client for batteryd
//
// queries need only --connect; changes are signed with the private
// key given by --key or the BATTERY_KEY environment variable
//
//   battery-cli generate
//   battery-cli -k KEY register-station
//   battery-cli -k KEY register -o OWNER
//   battery-cli -k KEY trade -i ID -t BUYER
//   battery-cli watch -K publisher.public
package main

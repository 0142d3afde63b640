// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// classes:
//   ExistsError   - something is already present (station, custody, battery)
//   InvalidError  - a precondition or authorisation check failed
//   LengthError   - binary data was too short
//   NotFoundError - a referenced item is absent
//   ProcessError  - storage or background processing failure
//   RecordError   - an indexed set is internally inconsistent,
//                   this is a bug and never a user input error
package fault

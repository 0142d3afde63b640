// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - a configured path relative to directory unless it
// is already absolute
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// RefuseOverwrite - return exists if any of the named files is present
//
// generated keys and certificates never replace existing ones
func RefuseOverwrite(exists error, names ...string) error {
	for _, name := range names {
		if _, err := os.Stat(name); nil == err {
			return exists
		}
	}
	return nil
}

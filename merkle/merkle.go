// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

// FullMerkleTree - compute the full merkle tree from a list of digests
//
// structure is:
//   1. N * leaf digests
//   2. level 1..m digests
//   3. merkle root digest
func FullMerkleTree(ids []Digest) []Digest {

	// compute length of ids + all tree levels including root
	idCount := len(ids)

	totalLength := 1 // all ids + space for the final root
	for n := idCount; n > 1; n = (n + 1) / 2 {
		totalLength += n
	}

	// add initial ids
	tree := make([]Digest, totalLength)
	copy(tree[:], ids)

	n := idCount
	j := 0
	for workLength := idCount; workLength > 1; workLength = (workLength + 1) / 2 {
		for i := 0; i < workLength; i += 2 {
			k := j + 1
			if i+1 == workLength {
				k = j // compensate for odd number
			}
			b := make([]byte, 0, 2*DigestLength)
			b = append(b, tree[j][:]...)
			b = append(b, tree[k][:]...)
			tree[n] = NewDigest(b)
			n += 1
			j = k + 1
		}
	}
	return tree
}

// Root - the merkle root of a list of digests
//
// an empty list has the zero digest as its root
func Root(ids []Digest) Digest {
	if 0 == len(ids) {
		return Digest{}
	}
	tree := FullMerkleTree(ids)
	return tree[len(tree)-1]
}

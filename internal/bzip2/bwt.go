// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bzip2

// inverseBWT prepares the inverse Burrows-Wheeler transform via a counting
// sort, as described in section 4.2 of
// http://www.hpl.hp.com/techreports/Compaq-DEC/SRC-RR-124.pdf.
//
// v holds the transformed bytes in the order they were decoded and c their
// occurrence counts (the `C' array of the paper; counting happened during
// symbol decoding). Two phases run over c: the exclusive prefix sum turns
// the counts into each byte value's starting offset among the sorted
// positions, at which point the entries of c summed to len(v); scattering
// each index of v into its byte's bucket then fills next with a forward
// pointer from every position to the following position of the original,
// pre-transform ordering. No full sort is materialized.
//
// The classic single-array formulation packs the pointer into the high 24
// bits of each data cell; two parallel arrays trade a little memory for not
// having to bit-pack.
//
// The returned index is where traversal of the original byte order begins:
// emit v[i], then step to next[i].
func inverseBWT(v []byte, next []uint32, origPtr uint, c *[256]uint32) uint32 {
	sum := uint32(0)
	for i := range c {
		sum += c[i]
		c[i] = sum - c[i]
	}

	for i, b := range v {
		next[c[b]] = uint32(i)
		c[b]++
	}

	return next[origPtr]
}

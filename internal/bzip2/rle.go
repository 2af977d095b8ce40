// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bzip2

// unwindRLE walks the successor chain produced by inverseBWT, visiting
// every position of v exactly once, and undoes the run-length encoding
// bzip2 applies before the transform: any sequence of four equal bytes is
// followed by a byte holding the number of additional copies to emit,
// which may be zero. Output is appended to the sink strictly left to
// right.
func (d *decompressor) unwindRLE(v []byte, next []uint32, tPos uint32) {
	lastByte := -1
	byteRepeats := 0
	for range v {
		b := v[tPos]
		tPos = next[tPos]

		if byteRepeats == 3 {
			// b is the repeat count closing the run, not a literal.
			for i := 0; i < int(b); i++ {
				d.out = append(d.out, byte(lastByte))
			}
			byteRepeats = 0
			lastByte = -1
			continue
		}

		if int(b) == lastByte {
			byteRepeats++
		} else {
			byteRepeats = 0
		}
		lastByte = int(b)
		d.out = append(d.out, b)
	}
}

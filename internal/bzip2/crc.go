// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bzip2

import (
	"hash/crc32"
	"math/bits"
)

// bzip2 checksums are CRC-32 over the data fed in most-significant-bit
// first, the reverse of the usual reflected convention. Reversing the bits
// of the input bytes and of the running value lets hash/crc32's IEEE table
// compute it.
type crc struct {
	val uint32
	buf [256]byte
}

func (c *crc) update(buf []byte) {
	cval := bits.Reverse32(c.val)
	for len(buf) > 0 {
		n := copy(c.buf[:], buf)
		buf = buf[n:]
		for i, b := range c.buf[:n] {
			c.buf[byte(i)] = bits.Reverse8(b)
		}
		cval = crc32.Update(cval, crc32.IEEETable, c.buf[:n])
	}
	c.val = bits.Reverse32(cval)
}

// updateStreamCRC folds one block's checksum into the running stream
// checksum.
func updateStreamCRC(streamCRC, blockCRC uint32) uint32 {
	return (streamCRC<<1 | streamCRC>>31) ^ blockCRC
}

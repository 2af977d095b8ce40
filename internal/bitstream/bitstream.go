// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package bitstream provides bit-granularity reads over an in-memory
// buffer. bzip2 streams pack 8 bits per byte with the most significant bit
// first, so the stream can be visualized as flowing from left to right and
// reads routinely span byte boundaries.
package bitstream

import "io"

// Reader reads bits from a byte buffer, most significant bit first. Errors
// are sticky: once a read runs off the end of the buffer, every subsequent
// read returns zero and Err reports io.ErrUnexpectedEOF. This lets decode
// loops defer error checking to structurally convenient points.
type Reader struct {
	data []byte
	pos  int
	n    uint64
	bits uint
	err  error
}

// NewReader returns a Reader with its cursor at the first bit of data.
// The buffer is never mutated.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// ReadBits64 returns the next bits (at most 57) as an unsigned integer,
// advancing the cursor. The 48-bit form is used to match the block and
// end-of-stream magic numbers.
func (r *Reader) ReadBits64(bits uint) uint64 {
	if r.err != nil {
		return 0
	}
	for r.bits < bits {
		if r.pos >= len(r.data) {
			r.err = io.ErrUnexpectedEOF
			return 0
		}
		r.n = r.n<<8 | uint64(r.data[r.pos])
		r.pos++
		r.bits += 8
	}

	// Stale high bits from earlier reads are shifted out by the mask.
	v := (r.n >> (r.bits - bits)) & (1<<bits - 1)
	r.bits -= bits
	return v
}

// ReadBits returns the next bits (at most 32) as an int.
func (r *Reader) ReadBits(bits uint) int {
	return int(r.ReadBits64(bits))
}

// ReadBit returns the next single bit.
func (r *Reader) ReadBit() bool {
	return r.ReadBits64(1) == 1
}

// BitsUsed returns the number of bits consumed from the buffer so far.
func (r *Reader) BitsUsed() uint {
	return uint(r.pos)*8 - r.bits
}

// Err returns the error state of the reader, if any.
func (r *Reader) Err() error {
	return r.err
}

// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bzip2

import "fmt"

// A FormatError is returned when the bzip2 data is found to be
// syntactically invalid.
type FormatError string

func (e FormatError) Error() string {
	return "bzip2 data invalid: " + string(e)
}

// An UnsupportedError is returned when the input uses block randomization,
// a deprecated feature that was never correctly implemented by reference
// decoders and is rejected outright.
type UnsupportedError string

func (e UnsupportedError) Error() string {
	return "bzip2 feature unsupported: " + string(e)
}

// A BoundsError is returned when a position decoded from the stream falls
// outside the block it refers to.
type BoundsError string

func (e BoundsError) Error() string {
	return "bzip2 position out of bounds: " + string(e)
}

// A CapacityError is returned when decoding would overflow the block
// buffer implied by the stream header's block-size level, or when the
// level itself exceeds the caller's configured maximum.
type CapacityError string

func (e CapacityError) Error() string {
	return "bzip2 block capacity exceeded: " + string(e)
}

// A SizeMismatchError is returned when the caller specified the expected
// decompressed size and the stream decoded to a different number of bytes.
type SizeMismatchError struct {
	Want, Got int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("bzip2 decompressed size mismatch: want %v bytes, got %v", e.Want, e.Got)
}

// A ChecksumError is returned when checksum verification is enabled and a
// stored CRC does not match the decompressed data. Block is the zero-based
// block ordinal, or -1 for the whole-stream checksum.
type ChecksumError struct {
	Block     int
	Want, Got uint32
}

func (e *ChecksumError) Error() string {
	if e.Block < 0 {
		return fmt.Sprintf("bzip2 stream checksum mismatch: want %08x, got %08x", e.Want, e.Got)
	}
	return fmt.Sprintf("bzip2 block %v checksum mismatch: want %08x, got %08x", e.Block, e.Want, e.Got)
}

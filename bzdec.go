// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bzdec

import (
	"github.com/cosnicolaou/bzdec/internal/bzip2"
)

// Stats records the layout of a decoded stream: the bit offset of each
// block and of the end-of-stream marker, and the stored checksums. See
// WithStats.
type Stats = bzip2.Stats

// The error kinds reported by Decompress. All are terminal: no partial
// output is returned alongside them.
type (
	// FormatError indicates syntactically invalid bzip2 data.
	FormatError = bzip2.FormatError
	// UnsupportedError indicates a randomized block, a deprecated
	// feature this package rejects.
	UnsupportedError = bzip2.UnsupportedError
	// BoundsError indicates a decoded position outside its block.
	BoundsError = bzip2.BoundsError
	// CapacityError indicates a block overflowing the buffer implied by
	// the stream's block-size level, or a level above the MaxLevel bound.
	CapacityError = bzip2.CapacityError
	// SizeMismatchError indicates that the stream decoded to a size
	// other than the one passed to ExpectedSize.
	SizeMismatchError = bzip2.SizeMismatchError
	// ChecksumError indicates a CRC mismatch when VerifyCRC is enabled.
	ChecksumError = bzip2.ChecksumError
)

// Option represents an option to Decompress.
type Option func(o *bzip2.Options)

// ExpectedSize specifies the exact decompressed size. Decompress fails
// with a SizeMismatchError, after all blocks have been decoded, if the
// stream's output is any other length; the output buffer is allocated up
// front rather than grown.
func ExpectedSize(size int) Option {
	return func(o *bzip2.Options) {
		o.ExpectedSize = size
	}
}

// MaxLevel rejects streams whose block-size level (the trailing digit of
// the "BZh1".."BZh9" header) exceeds the supplied bound. A level n
// stream admits up to n*100000 bytes of per-block buffering, so callers
// decoding untrusted input can use this to cap allocation before it
// happens.
func MaxLevel(level int) Option {
	return func(o *bzip2.Options) {
		o.MaxLevel = level
	}
}

// VerifyCRC enables verification of each block's checksum and of the
// combined stream checksum, failing with a ChecksumError on mismatch. The
// default is the historical decoder behavior: checksums are read but not
// verified.
func VerifyCRC() Option {
	return func(o *bzip2.Options) {
		o.VerifyCRC = true
	}
}

// WithStats records the bit offsets and stored checksums of the stream's
// blocks into s as they are decoded.
func WithStats(s *Stats) Option {
	return func(o *bzip2.Options) {
		o.Stats = s
	}
}

// Decompress decodes the bzip2 stream held in src, which must be a single
// complete stream beginning with the "BZh" header, and returns the
// decompressed bytes.
func Decompress(src []byte, opts ...Option) ([]byte, error) {
	o := bzip2.Options{ExpectedSize: -1}
	for _, fn := range opts {
		fn(&o)
	}
	return bzip2.Decompress(src, o)
}

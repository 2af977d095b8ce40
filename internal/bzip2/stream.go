// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package bzip2 implements the bzip2 block decompression pipeline over
// in-memory buffers.
package bzip2

import (
	"github.com/cosnicolaou/bzdec/internal/bitstream"
)

// There's no RFC for bzip2. The Wikipedia page at
// https://en.wikipedia.org/wiki/Bzip2 describes the format; the bzip2
// sources document the corner cases.

const (
	fileMagic  = 0x425a // "BZ"
	blockMagic = 0x314159265359
	finalMagic = 0x177245385090
)

// Stats records the layout of a decoded stream. Offsets are in bits from
// the start of the input; the CRCs are the stored values, recorded whether
// or not verification is enabled.
type Stats struct {
	BlockStartOffsets []uint // offset of each block's magic number.
	EndOfStreamOffset uint   // offset of the end of stream marker.
	BlockCRCs         []uint32
	StreamCRC         uint32
}

// Options controls a single Decompress call.
type Options struct {
	// ExpectedSize, when >= 0, is the exact number of bytes the stream
	// must decode to. It also pre-sizes the output buffer.
	ExpectedSize int

	// MaxLevel, when nonzero, rejects streams whose block-size level
	// exceeds it, before any block buffers are allocated.
	MaxLevel int

	// VerifyCRC enables verification of the block checksums and of the
	// combined stream checksum. When false the checksum fields are read,
	// to keep bit alignment, but never compared against the output.
	VerifyCRC bool

	// Stats, when non-nil, is filled in as the stream is decoded.
	Stats *Stats
}

// decompressor holds the stream-scoped state: the bit reader cursor, the
// output sink and the running checksum. Everything block-scoped lives in
// decodeBlock.
type decompressor struct {
	br        *bitstream.Reader
	opts      Options
	blockSize int // in bytes, i.e. 900 * 1000 for level 9.
	out       []byte
	nblocks   int
	streamCRC uint32
}

// Decompress decodes the complete bzip2 stream held in src: the "BZh"
// header followed by one or more blocks and the end-of-stream marker.
func Decompress(src []byte, opts Options) ([]byte, error) {
	br := bitstream.NewReader(src)
	if br.ReadBits(16) != fileMagic {
		if err := br.Err(); err != nil {
			return nil, err
		}
		return nil, FormatError("bad magic value")
	}
	if br.ReadBits(8) != 'h' {
		return nil, FormatError("non-Huffman entropy encoding")
	}
	level := br.ReadBits(8)
	if level < '1' || level > '9' {
		if err := br.Err(); err != nil {
			return nil, err
		}
		return nil, FormatError("invalid compression level")
	}
	if ml := opts.MaxLevel; ml > 0 && level-'0' > ml {
		return nil, CapacityError("compression level exceeds configured maximum")
	}

	d := &decompressor{
		br:        br,
		opts:      opts,
		blockSize: 100 * 1000 * (level - '0'),
	}
	if opts.ExpectedSize > 0 {
		d.out = make([]byte, 0, opts.ExpectedSize)
	}

	for {
		magic := br.ReadBits64(48)
		if err := br.Err(); err != nil {
			return nil, err
		}
		switch magic {
		case blockMagic:
			if s := d.opts.Stats; s != nil {
				s.BlockStartOffsets = append(s.BlockStartOffsets, br.BitsUsed()-48)
			}
			if err := d.decodeBlock(); err != nil {
				// Exhausting the input trumps whatever structural
				// error the resulting zero reads produced.
				if brErr := br.Err(); brErr != nil {
					return nil, brErr
				}
				return nil, err
			}
		case finalMagic:
			return d.finish()
		default:
			return nil, FormatError("bad magic value found")
		}
	}
}

// finish consumes the stream trailer after the end-of-stream magic and runs
// the checks that need the whole stream: the combined checksum and the
// caller's expected size.
func (d *decompressor) finish() ([]byte, error) {
	if s := d.opts.Stats; s != nil {
		s.EndOfStreamOffset = d.br.BitsUsed() - 48
	}
	wantCRC := uint32(d.br.ReadBits64(32))
	if err := d.br.Err(); err != nil {
		return nil, err
	}
	if s := d.opts.Stats; s != nil {
		s.StreamCRC = wantCRC
	}
	if d.opts.VerifyCRC && d.streamCRC != wantCRC {
		return nil, &ChecksumError{Block: -1, Want: wantCRC, Got: d.streamCRC}
	}
	if want := d.opts.ExpectedSize; want >= 0 && want != len(d.out) {
		return nil, &SizeMismatchError{Want: want, Got: len(d.out)}
	}
	return d.out, nil
}

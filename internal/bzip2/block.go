// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bzip2

// decodeBlock reads one bzip2 block, the magic number having already been
// consumed, and appends its decompressed bytes to the output sink. All of
// the block-scoped structures (symbol map, move-to-front lists, Huffman
// tables, intermediate buffers, histogram) are local to this call and die
// with it.
//
//nolint:gocyclo
func (d *decompressor) decodeBlock() error {
	br := d.br

	wantCRC := uint32(br.ReadBits64(32))
	if s := d.opts.Stats; s != nil {
		s.BlockCRCs = append(s.BlockCRCs, wantCRC)
	}

	if br.ReadBits(1) != 0 {
		return UnsupportedError("deprecated randomized block")
	}

	// origPtr marks where the original byte ordering starts in the
	// transformed block. It is validated against the actual symbol count
	// once that is known; malformed values beyond the block size fail
	// here already.
	origPtr := uint(br.ReadBits(24))
	if origPtr >= uint(d.blockSize) {
		return BoundsError("block start pointer exceeds block size")
	}

	// If not every byte value occurs in the block (i.e. it's text) the
	// symbol set is reduced. The values present are stored as a
	// two-level, 16x16 bitmap; walking it in order yields the
	// symbol-to-byte map with byte values strictly increasing.
	ranges := br.ReadBits(16)
	symbols := make([]byte, 0, 256)
	for symRange := uint(0); symRange < 16; symRange++ {
		if ranges&(1<<(15-symRange)) != 0 {
			bits := br.ReadBits(16)
			for symbol := uint(0); symbol < 16; symbol++ {
				if bits&(1<<(15-symbol)) != 0 {
					symbols = append(symbols, byte(16*symRange+symbol))
				}
			}
		}
	}
	numSymbols := len(symbols)
	if numSymbols == 0 {
		// There must be an end-of-block symbol.
		return FormatError("no symbols in input")
	}

	// A block uses between two and six Huffman coding groups.
	groupCount := br.ReadBits(3)
	if groupCount < 2 || groupCount > 6 {
		return FormatError("invalid number of Huffman groups")
	}

	// The group in use can change every 50 symbols; the selectors naming
	// the groups are stored move-to-front transformed as unary numbers.
	numSelectors := br.ReadBits(15)
	if numSelectors == 0 {
		return FormatError("no group selectors given")
	}
	if err := br.Err(); err != nil {
		return err
	}
	selectors := make([]uint8, numSelectors)
	mtfGroups := newMTFDecoderWithRange(groupCount)
	for i := range selectors {
		c := 0
		for br.ReadBit() {
			c++
			if c >= groupCount {
				return FormatError("group selector out of range")
			}
		}
		selectors[i] = mtfGroups.Decode(c)
	}

	// Each group's code lengths are delta encoded from a 5-bit base
	// value, one increment or decrement bit at a time.
	numSymbols += 2 // to account for the RUNA and RUNB symbols.
	tables := make([]huffmanTable, groupCount)
	lengths := make([]uint8, numSymbols)
	for g := range tables {
		length := br.ReadBits(5)
		for s := range lengths {
			for {
				if length < minCodeLen || length > maxCodeLen {
					return FormatError("Huffman length out of range")
				}
				if !br.ReadBit() {
					break
				}
				if br.ReadBit() {
					length--
				} else {
					length++
				}
			}
			lengths[s] = uint8(length)
		}
		tbl, err := newHuffmanTable(lengths)
		if err != nil {
			return err
		}
		tables[g] = tbl
	}
	if err := br.Err(); err != nil {
		return err
	}

	// Decode the symbol stream into the intermediate buffer. v receives
	// the transformed bytes in emission order while c counts byte
	// occurrences; the two stay consistent by construction and feed the
	// inverse BWT below.
	mtf := newMTFDecoder(symbols)
	v := make([]byte, d.blockSize)
	var c [256]uint32
	bufIndex := 0

	selectorIndex := 0
	decoded := 50 // forces fetching the first selector.
	var cur *huffmanTable

	// The output of the move-to-front transform is run-length encoded;
	// runs of zero ranks arrive as RUNA/RUNB sequences whose length these
	// two variables accumulate.
	repeat := 0
	repeatPower := 0

	for {
		if decoded == 50 {
			if selectorIndex >= numSelectors {
				return FormatError("insufficient selectors for number of symbols")
			}
			cur = &tables[selectors[selectorIndex]]
			selectorIndex++
			decoded = 0
		}
		sym, err := cur.decode(br)
		if err != nil {
			return err
		}
		decoded++

		if sym < 2 {
			// RUNA or RUNB: the k-th run symbol contributes 1<<k or
			// 2<<k, so the pair spells the run length in bijective
			// base 2. Nothing is emitted until the run ends.
			if repeat == 0 {
				repeatPower = 1
			}
			repeat += repeatPower << sym
			repeatPower <<= 1

			// This limit comes from the bzip2 source and prevents
			// repeat from overflowing.
			if repeat > 2*1024*1024 {
				return CapacityError("repeat count too large")
			}
			continue
		}

		if repeat > 0 {
			// A complete run length has been accumulated: replicate
			// the byte at the front of the move-to-front list.
			if repeat > d.blockSize-bufIndex {
				return CapacityError("run past end of block")
			}
			b := mtf.First()
			c[b] += uint32(repeat)
			for i := bufIndex; i < bufIndex+repeat; i++ {
				v[i] = b
			}
			bufIndex += repeat
			repeat = 0
		}

		if int(sym) == numSymbols-1 {
			// The end-of-block symbol sits at the end of the
			// move-to-front list and never moves, so its value is
			// unique.
			break
		}

		// The front of the move-to-front list is only ever referenced
		// through a run of length one, so rank 0 needs no encoding and
		// literal ranks start at sym-1.
		b := mtf.Decode(int(sym) - 1)
		if bufIndex >= d.blockSize {
			return CapacityError("data exceeds block size")
		}
		v[bufIndex] = b
		c[b]++
		bufIndex++
	}
	if err := br.Err(); err != nil {
		return err
	}

	if origPtr >= uint(bufIndex) {
		return BoundsError("block start pointer past end of block")
	}

	// Entropy decoding is complete: invert the transform and unwind the
	// run-length encoding into the output sink.
	v = v[:bufIndex]
	next := make([]uint32, bufIndex)
	tPos := inverseBWT(v, next, origPtr, &c)

	n := len(d.out)
	d.unwindRLE(v, next, tPos)

	if d.opts.VerifyCRC {
		var sum crc
		sum.update(d.out[n:])
		if sum.val != wantCRC {
			return &ChecksumError{Block: d.nblocks, Want: wantCRC, Got: sum.val}
		}
	}
	d.streamCRC = updateStreamCRC(d.streamCRC, wantCRC)
	d.nblocks++
	return nil
}

// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bzip2

import (
	"math"

	"github.com/cosnicolaou/bzdec/internal/bitstream"
)

// bzip2 constrains every Huffman code to these lengths.
const (
	minCodeLen = 1
	maxCodeLen = 20
)

// huffmanTable holds the canonical decoding tables for one coding group.
// In a canonical code, codes of equal length take consecutive values in
// symbol order, so the whole code is recoverable from the per-symbol
// lengths alone: permute ranks the symbols by ascending code length
// (ties broken by symbol order), limit[n] is the largest n-bit code value
// and base[n] the offset that maps an n-bit code value to its rank in
// permute.
type huffmanTable struct {
	minLen, maxLen uint
	limit          [maxCodeLen + 2]int32
	base           [maxCodeLen + 2]int32
	permute        []uint16
}

// newHuffmanTable builds the decoding tables from per-symbol code lengths,
// each of which must already be within [minCodeLen, maxCodeLen]. The
// lengths must describe a complete code: over- and under-subscribed sets
// are rejected here rather than surfacing as garbage output later.
func newHuffmanTable(lengths []uint8) (huffmanTable, error) {
	t := huffmanTable{minLen: maxCodeLen, permute: make([]uint16, 0, len(lengths))}
	for _, l := range lengths {
		if ul := uint(l); ul < t.minLen {
			t.minLen = ul
		}
		if ul := uint(l); ul > t.maxLen {
			t.maxLen = ul
		}
	}

	for l := t.minLen; l <= t.maxLen; l++ {
		for sym, sl := range lengths {
			if uint(sl) == l {
				t.permute = append(t.permute, uint16(sym))
			}
		}
	}

	// base[n+1] first counts the codes of length n; the prefix sum then
	// gives the rank of the first code of each length.
	for _, l := range lengths {
		t.base[l+1]++
	}
	for i := 1; i < len(t.base); i++ {
		t.base[i] += t.base[i-1]
	}

	vec := int32(0)
	for l := t.minLen; l <= t.maxLen; l++ {
		vec += t.base[l+1] - t.base[l]
		t.limit[l] = vec - 1
		vec <<= 1
	}
	// A complete code consumes the value space exactly: after the final
	// shift, vec is twice the number of maxLen-bit values.
	if want := int32(1) << (t.maxLen + 1); vec != want {
		if vec > want {
			return t, FormatError("over-subscribed Huffman code")
		}
		return t, FormatError("incomplete Huffman code")
	}
	for l := t.minLen + 1; l <= t.maxLen; l++ {
		t.base[l] = (t.limit[l-1]+1)<<1 - t.base[l]
	}

	// Sentinel that terminates the length scan in decode; a value that
	// exceeds every real limit stops here and fails the maxLen check.
	t.limit[t.maxLen+1] = math.MaxInt32
	return t, nil
}

// decode reads one Huffman code from br, MSB first: start with minLen bits
// and extend one bit at a time until the accumulated value falls within the
// current length's limit, then translate the value to a symbol through
// permute. The sentinel entry past maxLen bounds the scan; in a complete
// code every value that stops at a real length maps to a symbol.
func (t *huffmanTable) decode(br *bitstream.Reader) (uint16, error) {
	n := t.minLen
	vec := int32(br.ReadBits(n))
	for vec > t.limit[n] {
		n++
		vec = vec<<1 | int32(br.ReadBits(1))
	}
	if n > t.maxLen {
		return 0, FormatError("Huffman code overran table")
	}
	return t.permute[vec-t.base[n]], nil
}

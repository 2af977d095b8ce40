// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bzip2

// moveToFrontDecoder implements a move-to-front list. Rather than actually
// keeping a linked list, the symbols are stored in a flat array and
// decoding a rank shifts the preceding entries up by one. For the at most
// 256 element lists that bzip2 uses this beats any pointer structure.
type moveToFrontDecoder []byte

// newMTFDecoder creates a move-to-front decoder with an explicit initial
// symbol ordering.
func newMTFDecoder(symbols []byte) moveToFrontDecoder {
	if len(symbols) > 256 {
		panic("too many symbols")
	}
	return moveToFrontDecoder(symbols)
}

// newMTFDecoderWithRange creates a move-to-front decoder over the identity
// list 0..n-1. This is used to decode the Huffman group selectors.
func newMTFDecoderWithRange(n int) moveToFrontDecoder {
	if n > 256 {
		panic("newMTFDecoderWithRange: cannot have more than 256 symbols")
	}
	m := make([]byte, n)
	for i := range m {
		m[i] = byte(i)
	}
	return moveToFrontDecoder(m)
}

// Decode returns the symbol at the given rank and moves it to the front of
// the list.
func (m moveToFrontDecoder) Decode(n int) (b byte) {
	b = m[n]
	copy(m[1:], m[:n])
	m[0] = b
	return
}

// First returns the symbol at the front of the list.
func (m moveToFrontDecoder) First() byte {
	return m[0]
}

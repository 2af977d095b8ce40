// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.
package bzip2

import (
	"errors"
	"reflect"
	"testing"

	"github.com/cosnicolaou/bzdec/internal/bitstream"
)

func TestHuffmanTableKnownCode(t *testing.T) {
	// Lengths {1, 2, 3, 3} describe the canonical code
	//   0: 0, 1: 10, 2: 110, 3: 111
	table, err := newHuffmanTable([]uint8{1, 2, 3, 3})
	if err != nil {
		t.Fatal(err)
	}

	if got, want := table.minLen, uint(1); got != want {
		t.Errorf("minLen: got %v, want %v", got, want)
	}
	if got, want := table.maxLen, uint(3); got != want {
		t.Errorf("maxLen: got %v, want %v", got, want)
	}
	if got, want := table.permute, []uint16{0, 1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("permute: got %v, want %v", got, want)
	}

	// 0 10 110 111 111 110 10 0, packed MSB first.
	br := bitstream.NewReader([]byte{0b01011011, 0b11111101, 0b00000000})
	for i, want := range []uint16{0, 1, 2, 3, 3, 2, 1, 0} {
		got, err := table.decode(br)
		if err != nil {
			t.Fatalf("%v: decode: %v", i, err)
		}
		if got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
}

func TestHuffmanTablePermuteStability(t *testing.T) {
	// Symbols sharing a length keep their symbol order; shorter codes
	// rank first.
	table, err := newHuffmanTable([]uint8{3, 1, 3, 2})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := table.permute, []uint16{1, 3, 0, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("permute: got %v, want %v", got, want)
	}
}

func TestHuffmanTableIdempotent(t *testing.T) {
	lengths := []uint8{4, 2, 2, 3, 4, 2}
	a, err := newHuffmanTable(lengths)
	if err != nil {
		t.Fatal(err)
	}
	b, err := newHuffmanTable(lengths)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("tables differ: %#v vs %#v", a, b)
	}
}

func TestHuffmanTableMalformed(t *testing.T) {
	for _, tc := range []struct {
		name    string
		lengths []uint8
	}{
		// Lengths {2, 2, 2} leave the 11 prefix unassigned.
		{"incomplete", []uint8{2, 2, 2}},
		// Three one-bit codes cannot coexist.
		{"over-subscribed", []uint8{1, 1, 1}},
		// A lone one-bit code leaves half the value space unassigned.
		{"degenerate", []uint8{1}},
	} {
		_, err := newHuffmanTable(tc.lengths)
		var ferr FormatError
		if !errors.As(err, &ferr) {
			t.Errorf("%v: got %v, want a format error", tc.name, err)
		}
	}
}

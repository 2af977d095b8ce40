// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.
package bzip2

import (
	"strings"
	"testing"
)

func TestBlockCRC(t *testing.T) {
	// Stored block CRCs taken from streams produced by the reference
	// bzip2 implementation.
	for _, tc := range []struct {
		data string
		want uint32
	}{
		{"hello world\n", 0x4eece836},
		{"aaaa", 0x881233a6},
		{strings.Repeat("x", 100), 0xd184ad7b},
	} {
		var c crc
		c.update([]byte(tc.data))
		if got, want := c.val, tc.want; got != want {
			t.Errorf("%q: got %08x, want %08x", tc.data[:4], got, want)
		}
	}
}

func TestBlockCRCChunked(t *testing.T) {
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(i * 7)
	}
	var whole, chunked crc
	whole.update(data)
	// The internal staging buffer is 256 bytes; updates that straddle it
	// must agree with a single update.
	for i := 0; i < len(data); i += 100 {
		end := i + 100
		if end > len(data) {
			end = len(data)
		}
		chunked.update(data[i:end])
	}
	if got, want := chunked.val, whole.val; got != want {
		t.Errorf("got %08x, want %08x", got, want)
	}
}

func TestUpdateStreamCRC(t *testing.T) {
	// A single-block stream's checksum is its block's checksum.
	if got, want := updateStreamCRC(0, 0x4eece836), uint32(0x4eece836); got != want {
		t.Errorf("got %08x, want %08x", got, want)
	}
	// The running value is rotated left one bit before the fold.
	if got, want := updateStreamCRC(0x80000001, 0), uint32(0x00000003); got != want {
		t.Errorf("got %08x, want %08x", got, want)
	}
}

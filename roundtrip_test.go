// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bzdec_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cosnicolaou/bzdec"
	"github.com/cosnicolaou/bzdec/internal"
)

// TestRoundTrip compresses with the dsnet/compress encoder, the only
// native Go bzip2 encoder, and decodes with this package.
func TestRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"hello", []byte("hello world\n")},
		{"short-run", []byte("aaaa")},
		{"long-run", bytes.Repeat([]byte{'z'}, 100000)},
		{"text", []byte(strings.Repeat("the quick brown fox jumps over the lazy dog\n", 4096))},
		{"random-100KB", internal.GenPredictableRandomData(100 * 1024)},
		{"random-300KB", internal.GenPredictableRandomData(300 * 1024)},
	} {
		for _, level := range []int{1, 9} {
			compressed, err := internal.CompressBzip2(tc.data, level)
			if err != nil {
				t.Fatalf("%v: level %v: %v", tc.name, level, err)
			}
			got, err := bzdec.Decompress(compressed,
				bzdec.ExpectedSize(len(tc.data)),
				bzdec.VerifyCRC())
			if err != nil {
				t.Errorf("%v: level %v: %v", tc.name, level, err)
				continue
			}
			if want := tc.data; !bytes.Equal(got, want) {
				t.Errorf("%v: level %v: got %v... (%v bytes), want %v... (%v bytes)",
					tc.name, level, internal.FirstN(10, got), len(got),
					internal.FirstN(10, want), len(want))
			}
		}
	}
}

// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package internal

import (
	"bytes"
	"fmt"
	"math/rand"

	"github.com/dsnet/compress/bzip2"
)

// Seed for the pseudorandom generator, must be shared with gentestdata.go
const fixedRandSeed = 0x1234

// GenPredictableRandomData generates random data starting with a fixed
// known seed.
func GenPredictableRandomData(size int) []byte {
	gen := rand.New(rand.NewSource(fixedRandSeed))
	out := make([]byte, size)
	for i := range out {
		out[i] = byte(gen.Intn(256))
	}
	return out
}

// CompressBzip2 compresses the supplied raw data in memory at the given
// level (1..9) using the dsnet/compress encoder.
func CompressBzip2(data []byte, level int) ([]byte, error) {
	buf := &bytes.Buffer{}
	bzw, err := bzip2.NewWriter(buf, &bzip2.WriterConfig{Level: level})
	if err != nil {
		return nil, fmt.Errorf("bzip2 writer: %v", err)
	}
	if _, err := bzw.Write(data); err != nil {
		return nil, fmt.Errorf("bzip2 write: %v", err)
	}
	if err := bzw.Close(); err != nil {
		return nil, fmt.Errorf("bzip2 close: %v", err)
	}
	return buf.Bytes(), nil
}

// FirstN returns at most the first n bytes of b.
func FirstN(n int, b []byte) []byte {
	if len(b) > n {
		return b[:n]
	}
	return b
}

// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build ignore

// Regenerates the fixtures under testdata/ using the reference bzip2 tool.
// The overflow fixture is crafted: a single block holding more than 100000
// positions is relabeled as a level-1 stream, so decoders must reject it.
// Candidate payloads are tried until one's origPtr also fits below the
// level-1 limit, keeping the header bounds check from firing first.
package main

import (
	"bytes"
	"log"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Seed for the pseudorandom generator, must be shared with test_util.go
const fixedRandSeed = 0x1234

func genPredictableRandomData(size int) []byte {
	gen := rand.New(rand.NewSource(fixedRandSeed))
	out := make([]byte, size)
	for i := range out {
		out[i] = byte(gen.Intn(256))
	}
	return out
}

func bzip2Compress(data []byte, level string) []byte {
	tmp, err := os.CreateTemp("", "gentestdata")
	if err != nil {
		log.Fatalf("temp file: %v", err)
	}
	name := tmp.Name()
	defer os.Remove(name + ".bz2")
	if _, err := tmp.Write(data); err != nil {
		log.Fatalf("write: %v", err)
	}
	tmp.Close()
	cmd := exec.Command("bzip2", "-f", level, name)
	if output, err := cmd.CombinedOutput(); err != nil {
		log.Fatalf("failed to run bzip2: %v: %v", err, string(output))
	}
	compressed, err := os.ReadFile(name + ".bz2")
	if err != nil {
		log.Fatalf("read: %v", err)
	}
	return compressed
}

// origPtr extracts the first block's 24-bit origPtr field, which starts at
// bit 113 (stream header, block magic, block CRC and the randomized flag
// precede it).
func origPtr(compressed []byte) int {
	v := 0
	for bit := uint(113); bit < 137; bit++ {
		v <<= 1
		if compressed[bit/8]&(0x80>>(bit%8)) != 0 {
			v |= 1
		}
	}
	return v
}

func main() {
	var runs bytes.Buffer
	for i := 0; i < 3000; i++ {
		runs.Write(bytes.Repeat([]byte{byte(i % 7)}, i%300+1))
	}
	for _, tc := range []struct {
		name  string
		data  []byte
		level string
	}{
		{"hello_world.bz2", []byte("hello world\n"), "-9"},
		{"random_300KB1.bz2", genPredictableRandomData(300 * 1024), "-1"},
		{"text_264KB1.bz2", []byte(strings.Repeat("the quick brown fox jumps over the lazy dog\n", 6000)), "-1"},
		{"runs.bz2", runs.Bytes(), "-9"},
	} {
		out := filepath.Join("testdata", tc.name)
		if err := os.WriteFile(out, bzip2Compress(tc.data, tc.level), 0660); err != nil {
			log.Fatalf("write %v: %v", out, err)
		}
	}

	gen := rand.New(rand.NewSource(fixedRandSeed))
	for {
		data := make([]byte, 150000)
		for i := range data {
			data[i] = byte(gen.Intn(256))
		}
		// Incompressible data keeps all 150000 positions in one
		// level-2 block.
		compressed := bzip2Compress(data, "-2")
		if origPtr(compressed) >= 100*1000 {
			continue
		}
		compressed[3] = '1'
		out := filepath.Join("testdata", "overflow_150KB_as1.bz2")
		if err := os.WriteFile(out, compressed, 0660); err != nil {
			log.Fatalf("write %v: %v", out, err)
		}
		break
	}
}

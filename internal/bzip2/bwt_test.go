// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.
package bzip2

import (
	"bytes"
	"testing"
)

// walk traverses the successor chain exactly len(v) times, the way
// unwindRLE does, recording the positions visited.
func walk(v []byte, next []uint32, tPos uint32) (out []byte, visited []bool) {
	visited = make([]bool, len(v))
	for range v {
		out = append(out, v[tPos])
		visited[tPos] = true
		tPos = next[tPos]
	}
	return
}

func TestInverseBWT(t *testing.T) {
	for i, tc := range []struct {
		transformed string
		origPtr     uint
		want        string
	}{
		{"nnbaaa", 3, "banana"},
		{"pssmipissii", 4, "mississippi"},
		{"kynxeserl i hhv ottu c uwd rfm ebp gqjoooza", 35,
			"the quick brown fox jumps over the lazy dog"},
		{"a", 0, "a"},
	} {
		v := []byte(tc.transformed)
		var c [256]uint32
		for _, b := range v {
			c[b]++
		}
		next := make([]uint32, len(v))
		tPos := inverseBWT(v, next, tc.origPtr, &c)

		got, visited := walk(v, next, tPos)
		if want := []byte(tc.want); !bytes.Equal(got, want) {
			t.Errorf("%v: got %q, want %q", i, got, want)
		}
		// The successor chain is a permutation: every position is
		// visited exactly once in len(v) steps.
		for pos, ok := range visited {
			if !ok {
				t.Errorf("%v: position %v never visited", i, pos)
			}
		}
	}
}

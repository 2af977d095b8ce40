// Copyright 2024 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package bzdec decompresses bzip2 data held entirely in memory.
//
// Unlike compress/bzip2 it does not present an io.Reader: callers hand it
// a complete compressed stream and receive the complete output, which
// suits block stores and archive formats that already hold both sides in
// memory and often know the decompressed size in advance. Decoding is
// purely sequential and single threaded; each call owns all of its state.
//
// Checksum verification is off by default, matching decoders that trust
// their transport: the CRC fields are read to keep bit alignment but are
// not compared against the output. Enable VerifyCRC when the input's
// integrity is in doubt, and bound the memory an untrusted stream can
// demand with MaxLevel.
package bzdec

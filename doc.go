// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package attorand implements a small, portable, deterministic pseudorandom
number generator built on top of a general purpose hash function.

The generator repeatedly hashes its own 64-bit state with an accumulating
hasher, using the digest of one round as the input of the next, and folds each
digest into a single output byte.  Integers, bounded integers and booleans are
all derived from that byte stream.  No entropy is ever read from the operating
system, so a given seed produces the same stream on every platform and every
run.

This package is NOT suitable for cryptographic use.  Do not use it for keys,
nonces, tokens or anything else an attacker must not predict.

# Hash Algorithms

The default hasher is SipHash-1-3 keyed with zero, written to with
little-endian state words, which reproduces the output of generators built on
the reference hash-table hasher.  SipHash-2-4, BLAKE-256, BLAKE3 and xxHash are
available through NewWithAlgorithm, and any hash.Hash64 may be adapted with
HasherFromHash64.  Changing the algorithm changes every output.

# Usage

	r := attorand.NewWithSeed(42)
	roll := r.NextU64Max(5) + 1 // a six sided die
	coin := r.NextBool()
	buf := make([]byte, 32)
	r.Read(buf)

A generator is not safe for concurrent use.  Use Split to derive independent
generators for other goroutines.
*/
package attorand

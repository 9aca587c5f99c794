// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package siphash13 implements a streaming SipHash-1-3 accumulator.
//
// SipHash-1-3 performs one compression round per 8-byte message block and
// three finalization rounds.  It is the variant used by several language
// runtimes for their default hash tables and, unlike SipHash-2-4, is not
// offered by the common Go SipHash packages.
//
// Computing a digest with Sum64 or Sum does not modify the accumulated state,
// so more data may be written afterwards and the next digest covers all data
// written since the last Reset.
package siphash13

import (
	"encoding/binary"
	"math/bits"
)

const (
	// Size is the size of a SipHash-1-3 digest in bytes.
	Size = 8

	// BlockSize is the block size of SipHash-1-3 in bytes.
	BlockSize = 8
)

// Initialization constants.  They spell "somepseudorandomlygeneratedbytes".
const (
	c0 = 0x736f6d6570736575
	c1 = 0x646f72616e646f6d
	c2 = 0x6c7967656e657261
	c3 = 0x7465646279746573
)

// Digest is a SipHash-1-3 accumulator.  The zero value is not usable; create
// one with New.  A Digest may be copied by value to snapshot its state.
type Digest struct {
	k0, k1         uint64
	v0, v1, v2, v3 uint64
	tail           [BlockSize]byte
	ntail          int
	length         uint64
}

// New returns a Digest keyed with the given 128-bit key split into two
// little-endian halves.
func New(k0, k1 uint64) *Digest {
	d := &Digest{k0: k0, k1: k1}
	d.Reset()
	return d
}

// Reset discards all written data and restores the initial keyed state.
func (d *Digest) Reset() {
	d.v0 = d.k0 ^ c0
	d.v1 = d.k1 ^ c1
	d.v2 = d.k0 ^ c2
	d.v3 = d.k1 ^ c3
	d.ntail = 0
	d.length = 0
}

// sipRound applies a single SipRound to the provided state words.
func sipRound(v0, v1, v2, v3 uint64) (uint64, uint64, uint64, uint64) {
	v0 += v1
	v1 = bits.RotateLeft64(v1, 13)
	v1 ^= v0
	v0 = bits.RotateLeft64(v0, 32)
	v2 += v3
	v3 = bits.RotateLeft64(v3, 16)
	v3 ^= v2
	v0 += v3
	v3 = bits.RotateLeft64(v3, 21)
	v3 ^= v0
	v2 += v1
	v1 = bits.RotateLeft64(v1, 17)
	v1 ^= v2
	v2 = bits.RotateLeft64(v2, 32)
	return v0, v1, v2, v3
}

// compress mixes a single message word into the state.
func (d *Digest) compress(m uint64) {
	d.v3 ^= m
	d.v0, d.v1, d.v2, d.v3 = sipRound(d.v0, d.v1, d.v2, d.v3)
	d.v0 ^= m
}

// Write adds p to the accumulated data.  It never returns an error.
func (d *Digest) Write(p []byte) (int, error) {
	n := len(p)
	d.length += uint64(n)

	// Complete any partial block left over from a previous write first.
	if d.ntail > 0 {
		c := copy(d.tail[d.ntail:], p)
		d.ntail += c
		p = p[c:]
		if d.ntail < BlockSize {
			return n, nil
		}
		d.compress(binary.LittleEndian.Uint64(d.tail[:]))
		d.ntail = 0
	}

	for len(p) >= BlockSize {
		d.compress(binary.LittleEndian.Uint64(p))
		p = p[BlockSize:]
	}
	d.ntail = copy(d.tail[:], p)
	return n, nil
}

// WriteUint64 adds v to the accumulated data as 8 little-endian bytes.
func (d *Digest) WriteUint64(v uint64) {
	if d.ntail != 0 {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], v)
		d.Write(b[:])
		return
	}
	d.length += 8
	d.compress(v)
}

// Sum64 returns the digest of all data written since the last Reset.  The
// accumulated state is left untouched.
func (d *Digest) Sum64() uint64 {
	v0, v1, v2, v3 := d.v0, d.v1, d.v2, d.v3

	var b uint64
	for i := d.ntail - 1; i >= 0; i-- {
		b = b<<8 | uint64(d.tail[i])
	}
	b |= d.length << 56

	v3 ^= b
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	v0 ^= b
	v2 ^= 0xff
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	return v0 ^ v1 ^ v2 ^ v3
}

// Sum appends the little-endian digest to b and returns the resulting slice.
func (d *Digest) Sum(b []byte) []byte {
	return binary.LittleEndian.AppendUint64(b, d.Sum64())
}

// Size returns the number of bytes Sum will append.
func (d *Digest) Size() int {
	return Size
}

// BlockSize returns the underlying block size.
func (d *Digest) BlockSize() int {
	return BlockSize
}

// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package attorand

import (
	"iter"
	"math/bits"
)

// RngSeed is the seed used by New.  There is nothing special about this
// number.
const RngSeed uint64 = 0x6865636B79656168

// longRejectionRun is the number of draws after which a single bounded
// sample is reported at debug level.  It is not a limit.
const longRejectionRun = 32

// Rng is a deterministic pseudorandom number generator driven by repeatedly
// hashing its own state.
//
// Each state transition writes the current 64-bit state to the hasher as 8
// little-endian bytes and replaces the state with the hasher's digest.  The
// hasher is never reset, so every digest covers the entire history of states.
// The output of a transition is the XOR of the 8 bytes of the new state.
//
// Two generators created with the same seed and hash algorithm produce the
// same output for the same sequence of calls.  The output is NOT suitable for
// cryptographic use.
//
// Rng methods are not safe for concurrent access.
type Rng struct {
	state     uint64
	hasher    Hasher
	newHasher func() Hasher
}

// newDefaultHasher returns the default SipHash-1-3 accumulator.
func newDefaultHasher() Hasher {
	h, _ := SipHash13.NewHasher()
	return h
}

// New returns a generator seeded with RngSeed.  It produces the same sequence
// every time.
func New() *Rng {
	return NewWithSeed(RngSeed)
}

// NewWithSeed returns a generator seeded with the provided value and driven by
// SipHash-1-3.  Every value, including zero, is a valid seed.
func NewWithSeed(seed uint64) *Rng {
	return NewWithHasher(seed, nil)
}

// NewWithHasher returns a generator seeded with the provided value and driven
// by hashers created by newHasher.  newHasher is called once now and once for
// every generator derived with Split.  A nil newHasher selects SipHash-1-3.
func NewWithHasher(seed uint64, newHasher func() Hasher) *Rng {
	if newHasher == nil {
		newHasher = newDefaultHasher
	}
	log.Tracef("Creating generator with seed %#016x", seed)
	return &Rng{
		state:     seed,
		hasher:    newHasher(),
		newHasher: newHasher,
	}
}

// NewWithAlgorithm returns a generator seeded with the provided value and
// driven by the given hash algorithm.  An Error wrapping ErrUnknownAlgorithm is
// returned for unsupported algorithms.
func NewWithAlgorithm(seed uint64, algo Algorithm) (*Rng, error) {
	if _, err := algo.NewHasher(); err != nil {
		return nil, err
	}
	newHasher := func() Hasher {
		// The algorithm was validated above.
		h, _ := algo.NewHasher()
		return h
	}
	return NewWithHasher(seed, newHasher), nil
}

// next advances the state once and returns the XOR of the bytes of the new
// state.
func (r *Rng) next() byte {
	r.hasher.WriteUint64(r.state)
	r.state = r.hasher.Sum64()

	// Fold all 8 bytes into one.  Only one byte of the digest is produced per
	// transition.
	s := r.state
	s ^= s >> 32
	s ^= s >> 16
	s ^= s >> 8
	return byte(s)
}

// Bytes returns the generator as an infinite sequence of random bytes.
// Ranging over the sequence advances the generator; the sequence only ends
// when the caller stops iterating.
func (r *Rng) Bytes() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for yield(r.next()) {
		}
	}
}

// NextByte returns the next random byte.
func (r *Rng) NextByte() byte {
	return r.next()
}

// NextU64 returns the next random uint64.  It is the big-endian packing of the
// next 8 bytes, so it advances the state 8 times.
func (r *Rng) NextU64() uint64 {
	var out uint64
	for i := 0; i < 8; i++ {
		out = out<<8 | uint64(r.next())
	}
	return out
}

// NextBool returns true when the next random byte is even.
func (r *Rng) NextBool() bool {
	return r.next()%2 == 0
}

// NextU64Max returns a uniform random uint64 in the inclusive range [0,max].
//
// Values are drawn with NextU64, masked down to the smallest all-ones mask
// that covers max, and rejected while they exceed max.  Since the mask is less
// than twice max, fewer than two draws are expected.  The number of draws is
// not bounded, so this does not run in constant time.
//
// A max of 0 produces a zero mask and always returns 0 after a single draw.
func (r *Rng) NextU64Max(max uint64) uint64 {
	// bits.LeadingZeros64(0) is 64 and shifting by 64 yields 0.
	mask := ^uint64(0) >> bits.LeadingZeros64(max)

	draws := 1
	out := r.NextU64() & mask
	for out > max {
		out = r.NextU64() & mask
		draws++
	}
	if draws > longRejectionRun {
		log.Debugf("Bounded sample with max %d took %d draws", max, draws)
	}
	return out
}

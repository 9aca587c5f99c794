// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package attorand

import "time"

// Read fills p with random bytes and returns len(p).  Read never errors, which
// makes the generator usable wherever an io.Reader is expected.
func (r *Rng) Read(p []byte) (n int, err error) {
	for i := range p {
		p[i] = r.next()
	}
	return len(p), nil
}

// Uint32 returns a random uint32 taken from the high bits of NextU64.
func (r *Rng) Uint32() uint32 {
	return uint32(r.NextU64() >> 32)
}

// Uint64N returns a uniform random uint64 in range [0,n).
// Panics if n == 0.
func (r *Rng) Uint64N(n uint64) uint64 {
	if n == 0 {
		panic("attorand: invalid argument to Uint64N")
	}
	return r.NextU64Max(n - 1)
}

// IntN returns, as an int, a uniform random non-negative integer in [0,n).
// Panics if n <= 0.
func (r *Rng) IntN(n int) int {
	if n <= 0 {
		panic("attorand: invalid argument to IntN")
	}
	return int(r.NextU64Max(uint64(n) - 1))
}

// Duration returns a uniform random duration in [0,n).
// Panics if n <= 0.
func (r *Rng) Duration(n time.Duration) time.Duration {
	if n <= 0 {
		panic("attorand: invalid argument to Duration")
	}
	return time.Duration(r.NextU64Max(uint64(n) - 1))
}

// Shuffle randomizes the order of n elements by swapping the elements at
// indexes i and j.
// Panics if n < 0.
func (r *Rng) Shuffle(n int, swap func(i, j int)) {
	if n < 0 {
		panic("attorand: invalid argument to Shuffle")
	}

	// Fisher-Yates shuffle.
	for i := n - 1; i > 0; i-- {
		j := int(r.NextU64Max(uint64(i)))
		swap(i, j)
	}
}

// Split returns a new generator that uses the same kind of hasher and is
// seeded with the next random uint64 of r.  The two generators share no state
// afterwards.
func (r *Rng) Split() *Rng {
	return NewWithHasher(r.NextU64(), r.newHasher)
}

// Seed returns the current state word.  A generator created from this value
// does NOT continue the sequence of r, since the hasher history is not part
// of the value.
func (r *Rng) Seed() uint64 {
	return r.state
}

// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package attorand

import (
	"encoding/binary"
	"fmt"
	"hash"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/dchest/siphash"
	"github.com/decred/dcrd/crypto/blake256"
	"github.com/slightknack/attorand/internal/siphash13"
	"lukechampine.com/blake3"
)

// Hasher is the accumulating hash that drives a generator.
//
// Sum64 MUST NOT reset or otherwise alter the accumulated state.  Every digest
// covers all values written since the hasher was created, so the output of a
// generator depends on the full history of the accumulator and not only on
// the most recent state word.
type Hasher interface {
	// WriteUint64 adds v to the accumulated data as 8 little-endian bytes.
	WriteUint64(v uint64)

	// Sum64 returns the 64-bit digest of all data written so far.
	Sum64() uint64
}

// Algorithm identifies one of the supported hash backends.
type Algorithm uint8

// These constants define the supported hash backends.
const (
	// SipHash13 is SipHash-1-3 keyed with zero.  It is the default and
	// reproduces the sequences of the reference hash-table hasher.
	SipHash13 Algorithm = iota

	// SipHash24 is SipHash-2-4 keyed with zero.
	SipHash24

	// Blake256 is BLAKE-256 truncated to its first 8 bytes.
	Blake256

	// Blake3 is BLAKE3 truncated to its first 8 bytes.
	Blake3

	// XXHash is 64-bit xxHash with a zero seed.
	XXHash

	// numAlgorithms is the number of supported algorithms.  It must be the
	// last entry.
	numAlgorithms
)

// algorithmStrings maps each algorithm to its canonical name.
var algorithmStrings = [numAlgorithms]string{
	SipHash13: "sip13",
	SipHash24: "sip24",
	Blake256:  "blake256",
	Blake3:    "blake3",
	XXHash:    "xxhash",
}

// String returns the canonical name of the algorithm.
func (a Algorithm) String() string {
	if a < numAlgorithms {
		return algorithmStrings[a]
	}
	return fmt.Sprintf("Unknown Algorithm (%d)", uint8(a))
}

// Algorithms returns all supported algorithms in their canonical order.
func Algorithms() []Algorithm {
	algos := make([]Algorithm, 0, numAlgorithms)
	for a := Algorithm(0); a < numAlgorithms; a++ {
		algos = append(algos, a)
	}
	return algos
}

// ParseAlgorithm returns the algorithm with the provided case-insensitive
// name.  An Error wrapping ErrUnknownAlgorithm is returned when no algorithm
// matches.
func ParseAlgorithm(name string) (Algorithm, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for a, s := range algorithmStrings {
		if s == lower {
			return Algorithm(a), nil
		}
	}
	str := fmt.Sprintf("unknown hash algorithm %q (supported: %s)", name,
		strings.Join(algorithmStrings[:], ", "))
	return 0, makeError(ErrUnknownAlgorithm, str)
}

// NewHasher returns a fresh accumulator for the algorithm.  An Error wrapping
// ErrUnknownAlgorithm is returned for unsupported values.
func (a Algorithm) NewHasher() (Hasher, error) {
	switch a {
	case SipHash13:
		return siphash13.New(0, 0), nil

	case SipHash24:
		var key [16]byte
		return HasherFromHash64(siphash.New(key[:])), nil

	case Blake256:
		return &blake256Hasher{h: blake256.NewHasher256()}, nil

	case Blake3:
		return HasherFromHash(blake3.New(32, nil)), nil

	case XXHash:
		return HasherFromHash64(xxhash.New()), nil
	}

	str := fmt.Sprintf("unsupported hash algorithm %d", uint8(a))
	return nil, makeError(ErrUnknownAlgorithm, str)
}

// hash64Hasher adapts a standard 64-bit hash to the Hasher interface.
type hash64Hasher struct {
	h   hash.Hash64
	buf [8]byte
}

// HasherFromHash64 adapts a standard library style 64-bit hash to a Hasher.
// The hash must not reset its state when Sum64 is called, which holds for any
// implementation that follows the hash.Hash contract.
func HasherFromHash64(h hash.Hash64) Hasher {
	return &hash64Hasher{h: h}
}

// WriteUint64 adds v to the hash as 8 little-endian bytes.
func (h *hash64Hasher) WriteUint64(v uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	h.h.Write(h.buf[:])
}

// Sum64 returns the current digest of the wrapped hash.
func (h *hash64Hasher) Sum64() uint64 {
	return h.h.Sum64()
}

// truncatedHasher adapts a hash with a wide digest to the Hasher interface by
// reading the first 8 digest bytes as a little-endian integer.
type truncatedHasher struct {
	h   hash.Hash
	buf [8]byte
	sum []byte
}

// HasherFromHash adapts a standard hash with a digest of at least 8 bytes to
// a Hasher.  The first 8 bytes of the digest are read as a little-endian
// integer.  It panics if the digest is shorter than 8 bytes.
func HasherFromHash(h hash.Hash) Hasher {
	if h.Size() < 8 {
		panic(fmt.Sprintf("attorand: digest size %d is too small", h.Size()))
	}
	return &truncatedHasher{h: h, sum: make([]byte, 0, h.Size())}
}

// WriteUint64 adds v to the hash as 8 little-endian bytes.
func (h *truncatedHasher) WriteUint64(v uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	h.h.Write(h.buf[:])
}

// Sum64 returns the first 8 bytes of the current digest.
func (h *truncatedHasher) Sum64() uint64 {
	h.sum = h.h.Sum(h.sum[:0])
	return binary.LittleEndian.Uint64(h.sum)
}

// blake256Hasher uses the zero-allocation BLAKE-256 hasher directly.
type blake256Hasher struct {
	h *blake256.Hasher256
}

// WriteUint64 adds v to the hash as 8 little-endian bytes.
func (h *blake256Hasher) WriteUint64(v uint64) {
	h.h.WriteUint64LE(v)
}

// Sum64 returns the first 8 bytes of the current BLAKE-256 digest.
func (h *blake256Hasher) Sum64() uint64 {
	sum := h.h.Sum256()
	return binary.LittleEndian.Uint64(sum[:8])
}

// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package siphash13

import (
	"bytes"
	"encoding/binary"
	"hash"
	"testing"
)

// Ensure the digest satisfies the standard 64-bit hash interface.
var _ hash.Hash64 = (*Digest)(nil)

// seqBytes returns a slice of n bytes where each byte is its own index.
func seqBytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

// TestVectors ensures the digest produces the expected SipHash-1-3 values
// for both the reference key and the zero key across block boundaries.
func TestVectors(t *testing.T) {
	const refK0, refK1 = 0x0706050403020100, 0x0f0e0d0c0b0a0908
	tests := []struct {
		name   string // test description
		k0, k1 uint64 // key halves
		data   []byte // data to hash
		want   uint64 // expected digest
	}{{
		name: "reference key, empty",
		k0:   refK0,
		k1:   refK1,
		data: nil,
		want: 0xabac0158050fc4dc,
	}, {
		name: "reference key, 1 byte",
		k0:   refK0,
		k1:   refK1,
		data: seqBytes(1),
		want: 0xc9f49bf37d57ca93,
	}, {
		name: "reference key, 7 bytes",
		k0:   refK0,
		k1:   refK1,
		data: seqBytes(7),
		want: 0xd3927d989bb11140,
	}, {
		name: "reference key, 8 bytes",
		k0:   refK0,
		k1:   refK1,
		data: seqBytes(8),
		want: 0x369095118d299a8e,
	}, {
		name: "reference key, 9 bytes",
		k0:   refK0,
		k1:   refK1,
		data: seqBytes(9),
		want: 0x25a48eb36c063de4,
	}, {
		name: "reference key, 15 bytes",
		k0:   refK0,
		k1:   refK1,
		data: seqBytes(15),
		want: 0xd320d86d2a519956,
	}, {
		name: "reference key, 16 bytes",
		k0:   refK0,
		k1:   refK1,
		data: seqBytes(16),
		want: 0xcc4fdd1a7d908b66,
	}, {
		name: "reference key, 63 bytes",
		k0:   refK0,
		k1:   refK1,
		data: seqBytes(63),
		want: 0x9d199062b7bbb3a8,
	}, {
		name: "zero key, empty",
		data: nil,
		want: 0xd1fba762150c532c,
	}, {
		name: "zero key, 8 bytes",
		data: seqBytes(8),
		want: 0xead411e67ebe2eea,
	}, {
		name: "zero key, 15 bytes",
		data: seqBytes(15),
		want: 0xf30eb725bb91c9ea,
	}, {
		name: "zero key, hello world",
		data: []byte("hello world"),
		want: 0xb1b1f2e707e4ac8a,
	}}

	for _, test := range tests {
		d := New(test.k0, test.k1)
		d.Write(test.data)
		if got := d.Sum64(); got != test.want {
			t.Errorf("%s: mismatched digest -- got %016x, want %016x",
				test.name, got, test.want)
			continue
		}

		// Writing the same data one byte at a time must produce the same
		// digest.
		d.Reset()
		for i := range test.data {
			d.Write(test.data[i : i+1])
		}
		if got := d.Sum64(); got != test.want {
			t.Errorf("%s: mismatched bytewise digest -- got %016x, want %016x",
				test.name, got, test.want)
			continue
		}

		// Sum must append the little-endian digest.
		var want [Size]byte
		binary.LittleEndian.PutUint64(want[:], test.want)
		if got := d.Sum([]byte{0xaa}); !bytes.Equal(got, append([]byte{0xaa}, want[:]...)) {
			t.Errorf("%s: mismatched sum -- got %x, want aa%x", test.name,
				got, want)
			continue
		}
	}
}

// TestSumDoesNotReset ensures computing a digest leaves the accumulated state
// intact so that later digests cover all previously written data.
func TestSumDoesNotReset(t *testing.T) {
	d := New(0, 0)
	d.WriteUint64(1)
	if got, want := d.Sum64(), uint64(0x1e9f734161d62dd9); got != want {
		t.Fatalf("mismatched first digest -- got %016x, want %016x", got, want)
	}
	if got, want := d.Sum64(), uint64(0x1e9f734161d62dd9); got != want {
		t.Fatalf("repeated digest changed -- got %016x, want %016x", got, want)
	}
	d.WriteUint64(2)
	if got, want := d.Sum64(), uint64(0xfb058313e6201d48); got != want {
		t.Fatalf("mismatched cumulative digest -- got %016x, want %016x", got,
			want)
	}

	// The cumulative digest must match hashing the concatenation at once.
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], 1)
	binary.LittleEndian.PutUint64(buf[8:], 2)
	whole := New(0, 0)
	whole.Write(buf[:])
	if whole.Sum64() != d.Sum64() {
		t.Fatalf("cumulative digest %016x does not match one-shot digest %016x",
			d.Sum64(), whole.Sum64())
	}
}

// TestWriteUint64Unaligned ensures WriteUint64 is equivalent to writing the
// little-endian bytes when a partial block is pending.
func TestWriteUint64Unaligned(t *testing.T) {
	a := New(0, 0)
	a.Write([]byte{0x01, 0x02, 0x03})
	a.WriteUint64(0x1122334455667788)

	b := New(0, 0)
	b.Write([]byte{0x01, 0x02, 0x03})
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], 0x1122334455667788)
	b.Write(buf[:])

	if a.Sum64() != b.Sum64() {
		t.Fatalf("mismatched digests -- got %016x, want %016x", a.Sum64(),
			b.Sum64())
	}
}

// TestCopySnapshot ensures a Digest copied by value continues independently.
func TestCopySnapshot(t *testing.T) {
	d := New(0, 0)
	d.Write([]byte("shared prefix"))
	saved := *d

	d.Write([]byte("suffix one"))
	restored := saved
	restored.Write([]byte("suffix one"))
	if d.Sum64() != restored.Sum64() {
		t.Fatalf("restored digest %016x does not match %016x",
			restored.Sum64(), d.Sum64())
	}
}

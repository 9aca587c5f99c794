// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package attorand

import "testing"

// BenchmarkNextU64 benchmarks generating uint64 values with every hash
// algorithm.
func BenchmarkNextU64(b *testing.B) {
	for _, algo := range Algorithms() {
		b.Run(algo.String(), func(b *testing.B) {
			r, err := NewWithAlgorithm(RngSeed, algo)
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = r.NextU64()
			}
		})
	}
}

// BenchmarkNextU64Max benchmarks bounded sampling with a bound that rejects
// close to half of all draws.
func BenchmarkNextU64Max(b *testing.B) {
	r := New()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.NextU64Max(1 << 32)
	}
}

// BenchmarkRead benchmarks filling a 1KiB buffer.
func BenchmarkRead(b *testing.B) {
	r := New()
	buf := make([]byte, 1024)

	b.SetBytes(int64(len(buf)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Read(buf)
	}
}

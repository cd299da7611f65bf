package align_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/seqalign/align"
)

// benchSeq builds a deterministic pseudo-random nucleotide string of
// length n.
func benchSeq(seed int64, n int) string {
	rng := rand.New(rand.NewSource(seed))
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = naAlphabet[rng.Intn(len(naAlphabet))]
	}

	return string(buf)
}

// benchmarkGlobalNA runs the global nucleic aligner on n×n inputs.
func benchmarkGlobalNA(b *testing.B, n int, affine bool) {
	s1 := benchSeq(1, n)
	s2 := benchSeq(2, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var err error
		if affine {
			_, err = align.GlobalNAAffine(s1, s2, nil)
		} else {
			_, err = align.GlobalNA(s1, s2, nil)
		}
		if err != nil {
			b.Fatalf("alignment failed: %v", err)
		}
	}
}

// BenchmarkGlobalNA_Small benchmarks linear global alignment on 100×100.
func BenchmarkGlobalNA_Small(b *testing.B) { benchmarkGlobalNA(b, 100, false) }

// BenchmarkGlobalNA_Medium benchmarks linear global alignment on 500×500.
func BenchmarkGlobalNA_Medium(b *testing.B) { benchmarkGlobalNA(b, 500, false) }

// BenchmarkGlobalNAAffine_Small benchmarks affine global alignment on 100×100.
func BenchmarkGlobalNAAffine_Small(b *testing.B) { benchmarkGlobalNA(b, 100, true) }

// BenchmarkGlobalNAAffine_Medium benchmarks affine global alignment on 500×500.
func BenchmarkGlobalNAAffine_Medium(b *testing.B) { benchmarkGlobalNA(b, 500, true) }

// BenchmarkLocalNA_Small benchmarks local alignment on 100×100.
func BenchmarkLocalNA_Small(b *testing.B) {
	s1 := benchSeq(3, 100)
	s2 := benchSeq(4, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := align.LocalNA(s1, s2, nil); err != nil {
			b.Fatalf("alignment failed: %v", err)
		}
	}
}

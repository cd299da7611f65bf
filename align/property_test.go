package align_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	aaAlphabet = "ARNDCQEGHILKMFPSTWYV"
	naAlphabet = "ACGT"
	propRounds = 40
)

// randSeq draws a random sequence of length 0..maxLen over alpha.
func randSeq(rng *rand.Rand, alpha string, maxLen int) string {
	n := rng.Intn(maxLen + 1)
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte(alpha[rng.Intn(len(alpha))])
	}

	return sb.String()
}

// TestProperty_GlobalLinear checks, on random inputs, that global linear
// alignments strip back to their inputs, are structurally well formed, and
// carry a score equal to the column-wise rescore.
func TestProperty_GlobalLinear(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	// Terminal gaps priced like interior gaps make the plain column
	// rescore exact.
	p := scoring.Params{Match: 4, Mismatch: -4, Gap: -8, GapExtend: -2, TerminalGap: -8, TerminalGapExtend: -2}

	for round := 0; round < propRounds; round++ {
		a := randSeq(rng, naAlphabet, 12)
		b := randSeq(rng, naAlphabet, 12)

		r, err := align.GlobalNA(a, b, &p)
		require.NoError(t, err, "round %d: %q/%q", round, a, b)

		assertWellFormed(t, r)
		assert.Equal(t, a, strip(r.Seq1), "round %d: seq1 strips to input", round)
		assert.Equal(t, b, strip(r.Seq2), "round %d: seq2 strips to input", round)
		assert.Equal(t, align.Rescore(r, &p), r.Score, "round %d: column rescore", round)
	}
}

// TestProperty_GlobalAffine mirrors the linear property under Gotoh
// scoring, using the affine rescorer.
func TestProperty_GlobalAffine(t *testing.T) {
	rng := rand.New(rand.NewSource(43))

	for round := 0; round < propRounds; round++ {
		a := randSeq(rng, aaAlphabet, 12)
		b := randSeq(rng, aaAlphabet, 12)

		// Amino defaults already price terminal gaps like interior gaps.
		r, err := align.GlobalAAAffine(a, b, nil)
		require.NoError(t, err, "round %d: %q/%q", round, a, b)

		assertWellFormed(t, r)
		assert.Equal(t, a, strip(r.Seq1), "round %d", round)
		assert.Equal(t, b, strip(r.Seq2), "round %d", round)

		sc := scoring.WithGap(scoring.Blosum62, -8)
		assert.Equal(t, align.RescoreAffine(r, sc, -2), r.Score,
			"round %d: affine rescore of %q/%q", round, r.Seq1, r.Seq2)
	}
}

// TestProperty_Local checks the local contracts on random inputs:
// non-negative scores, empty alignment exactly at score zero, aligned
// regions that are substrings of the inputs, and exact rescores.
func TestProperty_Local(t *testing.T) {
	rng := rand.New(rand.NewSource(44))
	p := scoring.Params{Match: 2, Mismatch: -1, Gap: -2}

	for round := 0; round < propRounds; round++ {
		a := randSeq(rng, naAlphabet, 12)
		b := randSeq(rng, naAlphabet, 12)

		r, err := align.LocalNA(a, b, &p)
		require.NoError(t, err, "round %d: %q/%q", round, a, b)

		assertWellFormed(t, &r.Result)
		assert.GreaterOrEqual(t, r.Score, 0, "round %d: local scores are non-negative", round)
		if r.Score == 0 {
			assert.Empty(t, r.Seq1, "round %d: zero score means empty alignment", round)
			assert.Empty(t, r.Seq2, "round %d", round)
		}
		assert.Contains(t, a, strip(r.Seq1), "round %d: aligned region comes from a", round)
		assert.Contains(t, b, strip(r.Seq2), "round %d: aligned region comes from b", round)
		assert.Equal(t, align.Rescore(&r.Result, &p), r.Score, "round %d", round)
	}
}

// TestProperty_Symmetry checks that swapping the inputs of a symmetric
// provider preserves the score.
func TestProperty_Symmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(45))

	for round := 0; round < propRounds; round++ {
		a := randSeq(rng, aaAlphabet, 10)
		b := randSeq(rng, aaAlphabet, 10)

		r1, err := align.GlobalAA(a, b)
		require.NoError(t, err)
		r2, err := align.GlobalAA(b, a)
		require.NoError(t, err)
		assert.Equal(t, r1.Score, r2.Score, "round %d: BLOSUM62 is symmetric", round)

		l1, err := align.LocalAA(a, b)
		require.NoError(t, err)
		l2, err := align.LocalAA(b, a)
		require.NoError(t, err)
		assert.Equal(t, l1.Score, l2.Score, "round %d: local symmetry", round)
	}
}

// TestProperty_SelfAlignmentDominates checks that no alignment of a with a
// random b beats aligning a with itself.
func TestProperty_SelfAlignmentDominates(t *testing.T) {
	rng := rand.New(rand.NewSource(46))

	for round := 0; round < propRounds; round++ {
		a := randSeq(rng, aaAlphabet, 10)
		if a == "" {
			continue
		}
		b := randSeq(rng, aaAlphabet, 10)

		self, err := align.GlobalAA(a, a)
		require.NoError(t, err)
		other, err := align.GlobalAA(a, b)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, self.Score, other.Score,
			"round %d: self-alignment of %q dominates alignment with %q", round, a, b)
	}
}

// TestProperty_UngappedProjection checks the diagonal-only projections on
// random local affine alignments: the projections are equal-length and
// gap-free.
func TestProperty_UngappedProjection(t *testing.T) {
	rng := rand.New(rand.NewSource(47))

	for round := 0; round < propRounds; round++ {
		a := randSeq(rng, naAlphabet, 12)
		b := randSeq(rng, naAlphabet, 12)

		r, err := align.LocalNAAffine(a, b)
		require.NoError(t, err)

		assert.Equal(t, len(r.Ungapped1), len(r.Ungapped2),
			"round %d: projections pair up match columns", round)
		assert.NotContains(t, r.Ungapped1, "-", "round %d", round)
		assert.NotContains(t, r.Ungapped2, "-", "round %d", round)
	}
}

package align

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/seqalign/scoring"
)

// Columns returns the aligned column pairs, one [seq1 symbol, seq2 symbol]
// entry per alignment column.
func (r *Result) Columns() [][2]byte {
	cols := make([][2]byte, len(r.Seq1))
	for k := range cols {
		cols[k] = [2]byte{r.Seq1[k], r.Seq2[k]}
	}

	return cols
}

// Identity returns the fraction of alignment columns holding two identical
// residues, or 0 for an empty alignment.
func (r *Result) Identity() float64 {
	if len(r.Seq1) == 0 {
		return 0
	}

	same := 0
	for k := 0; k < len(r.Seq1); k++ {
		if r.Seq1[k] == r.Seq2[k] && r.Seq1[k] != scoring.GapSymbol {
			same++
		}
	}

	return float64(same) / float64(len(r.Seq1))
}

// CIGAR renders the alignment as a run-length operation string with Seq1
// as the query: 'M' for a residue pair (match or mismatch), 'I' for a gap
// in Seq1, 'D' for a gap in Seq2.  An empty alignment yields "".
func (r *Result) CIGAR() string {
	var sb strings.Builder
	var op byte
	runLen := 0
	for k := 0; k < len(r.Seq1); k++ {
		var o byte
		switch {
		case r.Seq1[k] == scoring.GapSymbol:
			o = 'I'
		case r.Seq2[k] == scoring.GapSymbol:
			o = 'D'
		default:
			o = 'M'
		}
		if o != op && runLen > 0 {
			fmt.Fprintf(&sb, "%d%c", runLen, op)
			runLen = 0
		}
		op = o
		runLen++
	}
	if runLen > 0 {
		fmt.Fprintf(&sb, "%d%c", runLen, op)
	}

	return sb.String()
}

// Rescore recomputes an alignment score column by column under linear gap
// semantics: every column is priced by sc, gap columns included.  For a
// result produced with uniform gap costs (terminal equal to interior) this
// reproduces Result.Score exactly.
func Rescore(r *Result, sc scoring.Scorer) int {
	score := 0
	for k := 0; k < len(r.Seq1); k++ {
		score += sc.Score(r.Seq1[k], r.Seq2[k])
	}

	return score
}

// RescoreAffine recomputes an alignment score under affine gap semantics:
// the first column of each gap run is priced by sc (the open cost),
// subsequent columns of the same run cost extend.
func RescoreAffine(r *Result, sc scoring.Scorer, extend int) int {
	const (
		noGap = iota
		gap1  // open run of gaps in Seq1
		gap2  // open run of gaps in Seq2
	)

	score, open := 0, noGap
	for k := 0; k < len(r.Seq1); k++ {
		switch {
		case r.Seq1[k] == scoring.GapSymbol:
			if open == gap1 {
				score += extend
			} else {
				score += sc.Score(scoring.GapSymbol, r.Seq2[k])
			}
			open = gap1
		case r.Seq2[k] == scoring.GapSymbol:
			if open == gap2 {
				score += extend
			} else {
				score += sc.Score(r.Seq1[k], scoring.GapSymbol)
			}
			open = gap2
		default:
			score += sc.Score(r.Seq1[k], r.Seq2[k])
			open = noGap
		}
	}

	return score
}

// Package align defines the result types, direction codes and sentinel
// errors of the DP engine.
package align

import "errors"

// Direction is a traceback direction cell.
//
//   - Match     - diagonal step, a[i-1] aligned to b[j-1].
//   - Up        - vertical step, a[i-1] aligned to a gap.
//   - Left      - horizontal step, b[j-1] aligned to a gap.
//   - Terminate - end of path: matrix origin, or a zero-score cell in
//     local alignment.
type Direction byte

const (
	// Match marks a diagonal step.
	Match Direction = iota

	// Up marks a vertical step consuming a symbol of the first sequence.
	Up

	// Left marks a horizontal step consuming a symbol of the second sequence.
	Left

	// Terminate marks the end of a traceback path.
	Terminate
)

// String returns a single-rune arrow for table rendering.
func (d Direction) String() string {
	switch d {
	case Match:
		return "⬉"
	case Up:
		return "⬆"
	case Left:
		return "⬅"
	case Terminate:
		return "·"
	default:
		return "?"
	}
}

// Sentinel errors returned by the alignment engine.
var (
	// ErrTracebackCorrupt indicates a direction cell outside the valid
	// range was encountered during traceback.  It diagnoses a bug in the
	// fill, not a caller error.
	ErrTracebackCorrupt = errors.New("align: corrupt traceback matrix")
)

// Result is a pairwise alignment: the optimal score and the two gapped
// strings, one column per step.  For a global alignment, stripping the gap
// symbols from Seq1 and Seq2 recovers the original inputs; for a local
// alignment it yields the aligned substrings of the inputs.  Both strings
// have equal length and no column holds a gap in both.
//
// The filled matrices remain attached for inspection via the DP(),
// Traceback(), Down() and Right() accessors.
type Result struct {
	Score int    // optimal alignment score
	Seq1  string // first input with gap symbols inserted
	Seq2  string // second input with gap symbols inserted

	a, b  string   // original inputs, kept for table rendering
	dp    *grid    // score matrix M
	tb    *dirGrid // direction matrix N
	down  *grid    // affine gap-state matrix D, nil for linear variants
	right *grid    // affine gap-state matrix R, nil for linear variants
}

// LocalResult is a local alignment.  Beyond the gapped strings it carries
// the diagonal-only projections of the aligned region: the characters
// emitted on Match steps, with all gap columns dropped.
type LocalResult struct {
	Result

	Ungapped1 string // Match-column projection of Seq1
	Ungapped2 string // Match-column projection of Seq2
}

// DP returns a copy of the score matrix M, dimensioned (|a|+1)×(|b|+1).
func (r *Result) DP() [][]int32 { return r.dp.table() }

// Traceback returns a copy of the direction matrix N.
func (r *Result) Traceback() [][]Direction { return r.tb.table() }

// Down returns a copy of the affine gap-state matrix D (scores for paths
// ending in a vertical gap run), or nil for linear variants.
func (r *Result) Down() [][]int32 {
	if r.down == nil {
		return nil
	}

	return r.down.table()
}

// Right returns a copy of the affine gap-state matrix R (scores for paths
// ending in a horizontal gap run), or nil for linear variants.
func (r *Result) Right() [][]int32 {
	if r.right == nil {
		return nil
	}

	return r.right.table()
}

// Package scoring defines the Scorer contract, the gap sentinel and the
// sentinel errors shared by all score providers.
package scoring

import "errors"

// GapSymbol is the gap sentinel.  It never appears in input sequences;
// providers see it only when a recurrence prices a gap-involved pair.
const GapSymbol byte = '-'

// Scorer maps a pair of symbols (residues or GapSymbol) to an integer
// alignment score.  It is the single contract the DP engine consumes.
type Scorer interface {
	Score(x, y byte) int
}

// Sentinel errors for matrix parsing and parameter validation.
var (
	// ErrUnknownSymbol indicates a sequence symbol absent from a
	// substitution matrix.  The returned error is an *UnknownSymbolError
	// naming the symbol and the matrix.
	ErrUnknownSymbol = errors.New("scoring: symbol not present in substitution matrix")

	// ErrMatrixHeader indicates a header token that is not a single symbol,
	// a duplicate symbol, or an empty header line.
	ErrMatrixHeader = errors.New("scoring: malformed matrix header")

	// ErrMatrixShape indicates a row count or row length inconsistent with
	// the header symbols.
	ErrMatrixShape = errors.New("scoring: matrix rows must be square with the header")

	// ErrMatrixEntry indicates a non-integer score entry.
	ErrMatrixEntry = errors.New("scoring: matrix entries must be integers")

	// ErrBadPenalty indicates a positive gap penalty.  Penalties are
	// negative by convention; zero is allowed (free gaps).
	ErrBadPenalty = errors.New("scoring: gap penalties must be zero or negative")
)

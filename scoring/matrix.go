package scoring

import (
	"fmt"
	"strconv"
	"strings"
)

// Matrix is a parsed substitution matrix: an ordered symbol list, a
// symbol→index table and a flat row-major score table.  A Matrix prices
// residue pairs only; compose it with a gap cost via WithGap to obtain a
// full Scorer for the DP engine.
type Matrix struct {
	name    string
	symbols string
	index   [128]int8 // symbol → row/column position, -1 when absent
	scores  []int     // len(symbols)² entries, row-major
}

// UnknownSymbolError reports a sequence symbol that a Matrix cannot score.
// It matches ErrUnknownSymbol under errors.Is.
type UnknownSymbolError struct {
	Symbol byte   // the offending symbol
	Matrix string // name of the matrix that rejected it
}

// Error formats the diagnostic with the offending symbol and matrix name.
func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("scoring: symbol %q not in matrix %s", e.Symbol, e.Matrix)
}

// Unwrap lets errors.Is(err, ErrUnknownSymbol) match.
func (e *UnknownSymbolError) Unwrap() error { return ErrUnknownSymbol }

// ParseMatrix parses a textual substitution matrix.
//
// The format is whitespace-tokenized, optionally wrapped in parentheses,
// with '#'-prefixed comment lines skipped: the first content line lists the
// ordered alphabet symbols; each following content line is one row of
// integer scores.  The table must be square with the header.
//
// Stage 1 (Header): record symbols in order, build symbol→index.
// Stage 2 (Rows): parse each row, enforcing the header length.
// Stage 3 (Finalize): enforce the row count, return the Matrix.
// Complexity: O(n²) for n header symbols.
func ParseMatrix(name, text string) (*Matrix, error) {
	m := &Matrix{name: name}
	for i := range m.index {
		m.index[i] = -1
	}

	// Parens are decoration in the on-disk layout; tokens carry the data.
	clean := strings.NewReplacer("(", " ", ")", " ").Replace(text)

	var syms []byte
	row := 0
	for ln, line := range strings.Split(clean, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		// First content line: the ordered alphabet symbols.
		if syms == nil {
			for _, f := range fields {
				if len(f) != 1 || f[0] >= 128 {
					return nil, fmt.Errorf("%s line %d: token %q: %w", name, ln+1, f, ErrMatrixHeader)
				}
				b := f[0]
				if m.index[b] >= 0 {
					return nil, fmt.Errorf("%s line %d: duplicate symbol %q: %w", name, ln+1, b, ErrMatrixHeader)
				}
				m.index[b] = int8(len(syms))
				syms = append(syms, b)
			}
			m.symbols = string(syms)
			m.scores = make([]int, 0, len(syms)*len(syms))
			continue
		}

		// Score rows, one per header symbol.
		if len(fields) != len(syms) {
			return nil, fmt.Errorf("%s line %d: %d entries for %d symbols: %w",
				name, ln+1, len(fields), len(syms), ErrMatrixShape)
		}
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%s line %d: entry %q: %w", name, ln+1, f, ErrMatrixEntry)
			}
			m.scores = append(m.scores, v)
		}
		row++
	}

	if len(syms) == 0 {
		return nil, fmt.Errorf("%s: empty matrix: %w", name, ErrMatrixHeader)
	}
	if row != len(syms) {
		return nil, fmt.Errorf("%s: %d rows for %d symbols: %w", name, row, len(syms), ErrMatrixShape)
	}

	return m, nil
}

// MustParse is ParseMatrix for bundled tables; it panics on error.
func MustParse(name, text string) *Matrix {
	m, err := ParseMatrix(name, text)
	if err != nil {
		panic(err)
	}

	return m
}

// Name returns the matrix name used in diagnostics.
func (m *Matrix) Name() string { return m.name }

// Symbols returns the matrix alphabet in header order.
func (m *Matrix) Symbols() string { return m.symbols }

// Contains reports whether b is a symbol of the matrix alphabet.
func (m *Matrix) Contains(b byte) bool {
	return b < 128 && m.index[b] >= 0
}

// Index returns the row/column position of b, or -1 when absent.
func (m *Matrix) Index(b byte) int {
	if b >= 128 {
		return -1
	}

	return int(m.index[b])
}

// Score returns the substitution score for two residue symbols.
//
// Both arguments must be symbols of the matrix alphabet; check sequences
// with CheckSequence first.  GapSymbol or any other unknown symbol panics.
// Complexity: O(1), two table lookups.
func (m *Matrix) Score(x, y byte) int {
	return m.scores[int(m.index[x])*len(m.symbols)+int(m.index[y])]
}

// CheckSequence verifies every symbol of s against the matrix alphabet and
// returns an *UnknownSymbolError for the first symbol it cannot score.
// Alignment entry points call this before any matrix is allocated, so an
// unknown symbol fails fast instead of being scored as a mismatch.
func (m *Matrix) CheckSequence(s string) error {
	for i := 0; i < len(s); i++ {
		if !m.Contains(s[i]) {
			return &UnknownSymbolError{Symbol: s[i], Matrix: m.name}
		}
	}

	return nil
}

// gapScorer prices residue pairs from a Matrix and gap-involved pairs at a
// fixed cost.
type gapScorer struct {
	m   *Matrix
	gap int
}

// WithGap composes a Matrix with a gap cost, yielding the full Scorer the
// DP engine consumes.  The driver builds two of these per global call: one
// with the interior gap cost and one with the terminal-gap cost for
// boundary and final fills.
func WithGap(m *Matrix, gap int) Scorer {
	return gapScorer{m: m, gap: gap}
}

// Score returns gap for gap-involved pairs and the matrix score otherwise.
func (g gapScorer) Score(x, y byte) int {
	if x == GapSymbol || y == GapSymbol {
		return g.gap
	}

	return g.m.Score(x, y)
}

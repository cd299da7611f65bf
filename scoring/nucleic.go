package scoring

// Params bundles the scoring constants for nucleic acid alignment and the
// gap constants shared by the amino acid entry points.  A Params record is
// immutable once passed to an alignment call; there is no process-wide
// scoring state.
//
// Sign convention: Match is positive, Mismatch and the gap fields are
// negative (zero means free).  Transition is optional; nil disables
// transition-aware scoring.
type Params struct {
	Match             int  // score for identical symbols
	Mismatch          int  // score for a substitution
	Transition        *int // score for A↔G / C↔T substitutions; nil = score as Mismatch
	Gap               int  // cost of each gap symbol (linear), or gap open (affine)
	GapExtend         int  // cost of extending an open gap (affine only)
	TerminalGap       int  // Gap substitute on boundary and final fills (global only)
	TerminalGapExtend int  // GapExtend substitute on boundary and final fills
}

// DefaultParams returns the nucleic acid defaults:
//
//	Match:             +4
//	Mismatch:          -4
//	Transition:        nil  // transitions score as mismatches
//	Gap:               -8
//	GapExtend:         -2
//	TerminalGap:        0   // end gaps are free
//	TerminalGapExtend:  0
func DefaultParams() Params {
	return Params{
		Match:             4,
		Mismatch:          -4,
		Gap:               -8,
		GapExtend:         -2,
		TerminalGap:       0,
		TerminalGapExtend: 0,
	}
}

// DefaultAminoParams returns the gap defaults used by the amino acid entry
// points, which take their substitution scores from Blosum62:
//
//	Gap:               -8
//	GapExtend:         -2
//	TerminalGap:       -8  // end gaps priced like interior gaps
//	TerminalGapExtend: -2
//
// Terminal gaps equal to interior gaps keep the global amino operations on
// the classic Needleman–Wunsch formulation.
func DefaultAminoParams() Params {
	return Params{
		Gap:               -8,
		GapExtend:         -2,
		TerminalGap:       -8,
		TerminalGapExtend: -2,
	}
}

// Validate checks the documented sign convention.  It returns ErrBadPenalty
// when any gap field is positive.  Match, Mismatch and Transition are
// unconstrained; unusual values change results, not validity.
func (p *Params) Validate() error {
	if p.Gap > 0 || p.GapExtend > 0 || p.TerminalGap > 0 || p.TerminalGapExtend > 0 {
		return ErrBadPenalty
	}

	return nil
}

// Score prices a symbol pair, in priority order: Match for identical
// symbols, Gap when either symbol is the gap sentinel, Transition (when
// configured) for a purine↔purine or pyrimidine↔pyrimidine substitution,
// Mismatch otherwise.
func (p *Params) Score(x, y byte) int {
	switch {
	case x == y:
		return p.Match
	case x == GapSymbol || y == GapSymbol:
		return p.Gap
	default:
		if p.Transition != nil {
			if t := transitionPartner(x); t != 'N' && t == y {
				return *p.Transition
			}
		}

		return p.Mismatch
	}
}

// Terminal returns a copy of p with Gap and GapExtend replaced by the
// terminal-gap costs.  The driver substitutes this provider on boundary and
// final fills; the recurrences never look up terminal-ness themselves.
func (p *Params) Terminal() *Params {
	t := *p
	t.Gap = p.TerminalGap
	t.GapExtend = p.TerminalGapExtend

	return &t
}

// transitionPartner maps a base to its transition partner: A↔G (purines),
// C↔T (pyrimidines).  Every other symbol maps to 'N', which never equals a
// partnered base, so only the four canonical bases can score a transition.
func transitionPartner(b byte) byte {
	switch b {
	case 'A':
		return 'G'
	case 'G':
		return 'A'
	case 'C':
		return 'T'
	case 'T':
		return 'C'
	default:
		return 'N'
	}
}

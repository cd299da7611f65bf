// Package scoring provides substitution-score providers for pairwise
// sequence alignment.
//
// 🚀 What is scoring?
//
//	The pluggable layer that maps a pair of residue symbols (including the
//	gap sentinel '-') to an integer alignment score.  Two concrete
//	providers are included:
//
//	  • Matrix — a parsed substitution matrix such as BLOSUM62, for
//	    amino acid alignment
//	  • Params — a match/mismatch/transition/gap parameter bundle, for
//	    nucleic acid alignment
//
// ✨ Key features:
//   - one-method Scorer interface; every provider plugs into the same
//     DP kernel in package align
//   - textual matrix format: a header line of ordered symbols followed by
//     a square table of integer rows (BLOSUM62 is bundled in this format)
//   - fail-fast symbol checking — an unknown symbol is reported by name,
//     never silently scored as a mismatch
//   - terminal-gap substitution: Terminal() and WithGap build the wrapped
//     providers the driver applies on boundary and final fills, so the
//     recurrences never branch on terminal-ness
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqalign/scoring"
//
//	// amino acids, BLOSUM62 with a -8 gap cost
//	sc := scoring.WithGap(scoring.Blosum62, -8)
//	s := sc.Score('W', 'W') // 11
//
//	// nucleic acids, default bundle
//	p := scoring.DefaultParams()
//	s = p.Score('A', 'G') // Mismatch, or *Transition when configured
//
// Sign convention: penalties (Gap, GapExtend, Mismatch and the terminal
// variants) are negative; rewards are positive.  Validate flags positive
// gap penalties as ErrBadPenalty.
//
// Providers are immutable after construction and safe to share across
// concurrent alignments.
package scoring

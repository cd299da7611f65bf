// Package align computes optimal pairwise sequence alignments by dynamic
// programming, for amino acid and nucleic acid strings.
//
// 🚀 What is align?
//
//	The DP engine of seqalign: matrices, recurrences, traceback, and the
//	eight entry points that combine them:
//
//	  • GlobalAA / GlobalNA           — Needleman–Wunsch, linear gaps
//	  • GlobalAAAffine / GlobalNAAffine — Gotoh, affine gaps
//	  • LocalAA / LocalNA             — Smith–Waterman, linear gaps
//	  • LocalAAAffine / LocalNAAffine — local affine gaps
//
// ✨ Key features:
//   - one kernel, four recurrences: global/local × linear/affine, sharing
//     the same matrices, driver and traceback
//   - deterministic tie-break MATCH > UP > LEFT, so equal-score alignments
//     reproduce bit-identically
//   - terminal-gap pricing by provider substitution: boundary and final
//     row/column fills use a terminal-wrapped scorer, the recurrences never
//     branch on position
//   - full inspection surface: DP(), Traceback(), Down(), Right() debug
//     accessors plus a tabwriter table renderer
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqalign/align"
//
//	r, err := align.GlobalAA("HEAGAWGHEE", "PAWHEAE")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(r.Score) // -8
//	fmt.Println(r.Seq1)  // HEAGAWGHEE
//	fmt.Println(r.Seq2)  // --P-AWHEAE
//
// Terminal-gap policy (global modes): the boundary row and column are
// filled with the terminal-wrapped provider; the full interior is filled
// once with the main provider; then, only when the terminal costs differ
// from the interior costs, the last row and last column are re-filled with
// the terminal wrapper.  Every gap step that ends in the boundary or in the
// last row or column is thus priced at the terminal cost, including a gap
// step that lands in the last row or column before the alignment's end.
// With the nucleic defaults (TerminalGap 0) this
// makes end gaps free; with the amino defaults (TerminalGap == Gap) it is
// the classic Needleman–Wunsch formulation.  Local modes have no
// terminal-gap concept: their boundaries are zero, and the local-affine
// gap-state boundary uses Gap for the first step and GapExtend after.
//
// Performance:
//
//   - Time:   O(|a|·|b|)
//   - Memory: O(|a|·|b|) int32 cells — 2 matrices linear, 4 affine —
//     in row-major contiguous storage
//
// One call fills its own private matrices; scoring providers are immutable.
// Concurrent alignments on disjoint results are safe.
package align

// Package seqalign is an in-memory pairwise biological sequence
// alignment library for Go.
//
// 🚀 What is seqalign?
//
//	A compact library that computes optimal alignments between two
//	residue strings (amino acid or nucleic acid) by dynamic programming:
//
//	  • Global alignment (Needleman–Wunsch) — whole sequence vs whole sequence
//	  • Local alignment (Smith–Waterman)    — best matching subsequences
//	  • Linear and affine (Gotoh) gap penalties, with separate terminal-gap costs
//
// ✨ Why choose seqalign?
//
//   - Explicit parameters — no process-wide scoring knobs; every call
//     carries its own immutable parameter record
//   - Pluggable scoring   — BLOSUM62 bundled, any parsed substitution
//     matrix or match/mismatch/transition bundle plugs into the same kernel
//   - Inspectable         — score, direction and gap-state matrices are
//     exposed through debug accessors, with a tabwriter table renderer
//   - Safe to share       — scoring providers are immutable; concurrent
//     alignments never share matrices
//
// Under the hood, everything is organized under three subpackages:
//
//	scoring/ — substitution-score providers: parsed matrices (BLOSUM62),
//	           nucleic parameter bundles, terminal-gap wrappers
//	align/   — the DP engine: recurrences, driver, traceback, results
//	seqrec/  — thin residue-string adapter for sequence record types
//
// Quick ASCII example:
//
//	    GCA-TGCU
//	    G-ATTACA
//
//	aligns two short nucleotide reads column by column, with `-` marking
//	a gap in one sequence opposite a residue in the other.
//
// Dive into the package docs of align/ and scoring/ for the recurrences,
// the terminal-gap policy and worked examples.
//
//	go get github.com/katalvlaran/seqalign
package seqalign

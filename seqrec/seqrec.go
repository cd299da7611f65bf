// Package seqrec adapts sequence records to the plain residue strings the
// alignment engine operates on.
//
// The engine never dispatches on record types: every entry point takes a
// string, and this package is the single, thin interface point for callers
// holding richer sequence objects — raw bytes, biogo letter slices or
// biogo linear sequences.
//
// ⚙️ Usage:
//
//	s := linear.NewSeq("read1", alphabet.BytesToLetters([]byte("GATTACA")), alphabet.DNA)
//	res, err := seqrec.Residues(s)
//	// res == "GATTACA"
//	r, err := align.GlobalNA(res, "GCATGCT", nil)
package seqrec

import (
	"errors"
	"fmt"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"
)

// ErrUnsupportedRecord indicates a record type Residues cannot extract a
// residue string from.
var ErrUnsupportedRecord = errors.New("seqrec: unsupported sequence record type")

// Residues extracts the residue string from a sequence record.
//
// Supported records, in match order: string and []byte pass through;
// alphabet.Letters and *linear.Seq yield their letter string; any other
// fmt.Stringer falls back to String().  Everything else fails with
// ErrUnsupportedRecord naming the concrete type.
func Residues(rec any) (string, error) {
	switch s := rec.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	case alphabet.Letters:
		return s.String(), nil
	case *linear.Seq:
		return s.Seq.String(), nil
	case fmt.Stringer:
		return s.String(), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedRecord, rec)
	}
}

package align

import "github.com/katalvlaran/seqalign/scoring"

// GlobalAA aligns two amino acid strings globally (Needleman–Wunsch) with
// BLOSUM62 substitution scores and a linear gap cost of -8, terminal gaps
// priced like interior gaps.
//
// Preconditions: every symbol of a and b must be a BLOSUM62 amino acid;
// an unknown symbol fails with scoring.ErrUnknownSymbol before any matrix
// is allocated.
//
// Time complexity:   O(|a|·|b|)
// Memory complexity: O(|a|·|b|)
func GlobalAA(a, b string) (*Result, error) {
	p := scoring.DefaultAminoParams()
	lr, err := alignAA(a, b, &p, false, false)
	if err != nil {
		return nil, err
	}

	return &lr.Result, nil
}

// GlobalNA aligns two nucleic acid strings globally with the given
// parameter bundle.  A nil p means scoring.DefaultParams(): +4/-4 with a
// -8 gap and free terminal gaps.
func GlobalNA(a, b string, p *scoring.Params) (*Result, error) {
	lr, err := alignNA(a, b, naParams(p), false, false)
	if err != nil {
		return nil, err
	}

	return &lr.Result, nil
}

// GlobalAAAffine aligns two amino acid strings globally with BLOSUM62 and
// affine (Gotoh) gap costs from p.  A nil p means
// scoring.DefaultAminoParams(): open -8, extend -2, terminal gaps priced
// like interior gaps.  Only the gap fields of p are consulted;
// substitution scores come from the matrix.
func GlobalAAAffine(a, b string, p *scoring.Params) (*Result, error) {
	lr, err := alignAA(a, b, aaParams(p), true, false)
	if err != nil {
		return nil, err
	}

	return &lr.Result, nil
}

// GlobalNAAffine aligns two nucleic acid strings globally with affine gap
// costs from the full parameter bundle.  A nil p means
// scoring.DefaultParams().
func GlobalNAAffine(a, b string, p *scoring.Params) (*Result, error) {
	lr, err := alignNA(a, b, naParams(p), true, false)
	if err != nil {
		return nil, err
	}

	return &lr.Result, nil
}

// LocalAA aligns two amino acid strings locally (Smith–Waterman) with
// BLOSUM62 and a linear gap cost of -8.  The result score is never
// negative; a zero score means the optimal local alignment is empty and
// both gapped strings are empty.
func LocalAA(a, b string) (*LocalResult, error) {
	p := scoring.DefaultAminoParams()

	return alignAA(a, b, &p, false, true)
}

// LocalNA aligns two nucleic acid strings locally with the given
// parameter bundle (Gap, Match, Mismatch; the terminal fields are ignored
// — local alignment has no terminal-gap concept).  A nil p means
// scoring.DefaultParams().
func LocalNA(a, b string, p *scoring.Params) (*LocalResult, error) {
	return alignNA(a, b, naParams(p), false, true)
}

// LocalAAAffine aligns two amino acid strings locally with BLOSUM62 and
// the default affine gap costs (open -8, extend -2).
func LocalAAAffine(a, b string) (*LocalResult, error) {
	p := scoring.DefaultAminoParams()

	return alignAA(a, b, &p, true, true)
}

// LocalNAAffine aligns two nucleic acid strings locally with the default
// parameter bundle and affine gap costs.
func LocalNAAffine(a, b string) (*LocalResult, error) {
	return alignNA(a, b, naParams(nil), true, true)
}

// naParams resolves a caller bundle, nil meaning the nucleic defaults.
func naParams(p *scoring.Params) *scoring.Params {
	if p == nil {
		d := scoring.DefaultParams()

		return &d
	}

	return p
}

// aaParams resolves a caller bundle, nil meaning the amino gap defaults.
func aaParams(p *scoring.Params) *scoring.Params {
	if p == nil {
		d := scoring.DefaultAminoParams()

		return &d
	}

	return p
}

// alignAA validates amino inputs against BLOSUM62, composes the matrix
// with the interior and terminal gap costs, and runs the kernel.
func alignAA(a, b string, p *scoring.Params, affine, local bool) (*LocalResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := scoring.Blosum62.CheckSequence(a); err != nil {
		return nil, err
	}
	if err := scoring.Blosum62.CheckSequence(b); err != nil {
		return nil, err
	}

	sub := scoring.WithGap(scoring.Blosum62, p.Gap)
	bsub := scoring.WithGap(scoring.Blosum62, p.TerminalGap)

	return run(a, b, sub, bsub, p, affine, local)
}

// alignNA runs the kernel with the parameter bundle itself as the
// provider; the terminal wrapper is a copy with the terminal gap costs
// substituted.
func alignNA(a, b string, p *scoring.Params, affine, local bool) (*LocalResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return run(a, b, p, p.Terminal(), p, affine, local)
}

// run drives one alignment: allocate, fill, trace, package the result.
func run(a, b string, sub, bsub scoring.Scorer, p *scoring.Params, affine, local bool) (*LocalResult, error) {
	refill := !local && (p.TerminalGap != p.Gap || (affine && p.TerminalGapExtend != p.GapExtend))
	al := newAligner(a, b, sub, bsub, p.GapExtend, p.TerminalGapExtend, affine, local, refill)
	al.fill()

	i, j := len(a), len(b)
	score := al.m.at(i, j)
	if local {
		i, j, score = al.maxI, al.maxJ, al.maxScore
	}

	s1, s2, u1, u2, err := al.trace(i, j)
	if err != nil {
		return nil, err
	}

	return &LocalResult{
		Result: Result{
			Score: int(score),
			Seq1:  string(s1),
			Seq2:  string(s2),
			a:     a, b: b,
			dp: al.m, tb: al.n,
			down: al.d, right: al.r,
		},
		Ungapped1: string(u1),
		Ungapped2: string(u2),
	}, nil
}

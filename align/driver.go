package align

import "github.com/katalvlaran/seqalign/scoring"

// aligner carries one alignment call: the inputs, the providers, and the
// matrices private to the call.  A fresh aligner is built per call and
// discarded with its Result; nothing here outlives or is shared.
type aligner struct {
	a, b string

	sub  scoring.Scorer // interior provider
	bsub scoring.Scorer // terminal-wrapped provider for boundary and final fills
	ext  int32          // interior gap-extend cost (affine)
	bext int32          // terminal gap-extend cost (affine)

	affine bool
	local  bool
	refill bool // re-fill last row/column with bsub (terminal costs differ)

	m *grid    // score matrix M
	n *dirGrid // direction matrix N

	// Affine gap-state matrices and their run bits.  dext/rext record
	// whether D/R won through extension, which lets traceback rebuild the
	// exact gap runs the fill chose.
	d, r       *grid
	dext, rext []bool

	// Local argmax, tracked during the row-major scan.  Strict improvement
	// keeps the lexicographically smallest (i, j) on ties.
	maxI, maxJ int
	maxScore   int32
}

// newAligner allocates the matrices for one |a|×|b| alignment.
// Complexity: O(|a|·|b|) memory — 2 matrices linear, 4 affine.
func newAligner(a, b string, sub, bsub scoring.Scorer, ext, bext int, affine, local, refill bool) *aligner {
	rows, cols := len(a)+1, len(b)+1
	al := &aligner{
		a: a, b: b,
		sub: sub, bsub: bsub,
		ext: int32(ext), bext: int32(bext),
		affine: affine, local: local, refill: refill,
		m: newGrid(rows, cols),
		n: newDirGrid(rows, cols),
	}
	if affine {
		al.d = newGrid(rows, cols)
		al.r = newGrid(rows, cols)
		al.dext = make([]bool, rows*cols)
		al.rext = make([]bool, rows*cols)
	}

	return al
}

// fill runs the driver: boundary cells, then the interior in row-major
// order, then the terminal re-fill of the last row and column when the
// terminal costs differ.  Row-major order guarantees every cell is filled
// strictly after its three (five, affine) neighbors.
// Complexity: O(|a|·|b|) time.
func (al *aligner) fill() {
	if al.local {
		al.fillBoundaryLocal()
	} else {
		al.fillBoundaryGlobal()
	}

	la, lb := len(al.a), len(al.b)
	for i := 1; i <= la; i++ {
		for j := 1; j <= lb; j++ {
			al.cell(i, j, al.sub, al.ext)
		}
	}

	// Terminal-gap policy: one interior pass with the main provider above,
	// then the last row and last column priced again with the terminal
	// wrapper.  Ascending order keeps each re-filled cell reading already
	// re-filled neighbors along its own row or column.
	if al.refill && la > 0 {
		for j := 1; j <= lb; j++ {
			al.cell(la, j, al.bsub, al.bext)
		}
	}
	if al.refill && lb > 0 {
		for i := 1; i <= la; i++ {
			al.cell(i, lb, al.bsub, al.bext)
		}
	}
}

// cell applies the recurrence for this aligner's flavor at (i, j) with the
// given provider and extend cost.
func (al *aligner) cell(i, j int, sc scoring.Scorer, extend int32) {
	if al.affine {
		al.affineCell(i, j, sc, extend)
	} else {
		al.linearCell(i, j, sc)
	}
}

// fillBoundaryGlobal prices the boundary row and column as cumulative gap
// runs under the terminal provider.  Linear boundaries accumulate the gap
// cost per symbol; affine boundaries open one run and extend it.
func (al *aligner) fillBoundaryGlobal() {
	al.n.set(0, 0, Terminate)
	if al.affine {
		al.d.set(0, 0, negInf)
		al.r.set(0, 0, negInf)
	}

	cols := len(al.b) + 1
	for j := 1; j < cols; j++ {
		if al.affine {
			v := al.r.at(0, j-1) + al.bext
			if j == 1 {
				v = al.m.at(0, 0) + int32(al.bsub.Score(scoring.GapSymbol, al.b[0]))
			}
			al.r.set(0, j, v)
			al.rext[j] = j > 1
			al.d.set(0, j, negInf)
			al.m.set(0, j, v)
		} else {
			al.m.set(0, j, al.m.at(0, j-1)+int32(al.bsub.Score(scoring.GapSymbol, al.b[j-1])))
		}
		al.n.set(0, j, Left)
	}

	for i := 1; i <= len(al.a); i++ {
		if al.affine {
			v := al.d.at(i-1, 0) + al.bext
			if i == 1 {
				v = al.m.at(0, 0) + int32(al.bsub.Score(al.a[0], scoring.GapSymbol))
			}
			al.d.set(i, 0, v)
			al.dext[i*cols] = i > 1
			al.r.set(i, 0, negInf)
			al.m.set(i, 0, v)
		} else {
			al.m.set(i, 0, al.m.at(i-1, 0)+int32(al.bsub.Score(al.a[i-1], scoring.GapSymbol)))
		}
		al.n.set(i, 0, Up)
	}
}

// fillBoundaryLocal zeroes the boundary scores and terminates paths there.
// Local alignment has no terminal-gap concept: the affine gap-state
// boundary opens with the interior Gap cost and extends with GapExtend.
func (al *aligner) fillBoundaryLocal() {
	cols := len(al.b) + 1
	al.n.set(0, 0, Terminate)
	if al.affine {
		al.d.set(0, 0, negInf)
		al.r.set(0, 0, negInf)
	}

	for j := 1; j < cols; j++ {
		al.n.set(0, j, Terminate)
		if al.affine {
			v := al.r.at(0, j-1) + al.ext
			if j == 1 {
				v = int32(al.sub.Score(scoring.GapSymbol, al.b[0]))
			}
			al.r.set(0, j, v)
			al.rext[j] = j > 1
			al.d.set(0, j, negInf)
		}
	}

	for i := 1; i <= len(al.a); i++ {
		al.n.set(i, 0, Terminate)
		if al.affine {
			v := al.d.at(i-1, 0) + al.ext
			if i == 1 {
				v = int32(al.sub.Score(al.a[0], scoring.GapSymbol))
			}
			al.d.set(i, 0, v)
			al.dext[i*cols] = i > 1
			al.r.set(i, 0, negInf)
		}
	}
}

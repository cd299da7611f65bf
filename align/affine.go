package align

import "github.com/katalvlaran/seqalign/scoring"

// affineCell applies the affine-gap (Gotoh) recurrence at (i, j):
//
//	D[i][j] = max(D[i-1][j] + extend, M[i-1][j] + open)   // vertical runs
//	R[i][j] = max(R[i][j-1] + extend, M[i][j-1] + open)   // horizontal runs
//	M[i][j] = max(M[i-1][j-1] + score(a[i-1], b[j-1]), D[i][j], R[i][j])
//
// where open = score(·, '-') from the provider.  Extension wins D/R ties,
// and M ties break MATCH > UP > LEFT.  Whenever N[i][j] is Up the value
// came from D, and symmetrically Left from R; dext/rext remember whether
// the winning gap state extended, so traceback can rebuild the exact run.
// Local mode floors M at zero and terminates when no candidate is
// positive.
func (al *aligner) affineCell(i, j int, sc scoring.Scorer, extend int32) {
	x := i*al.m.cols + j // flat index for the run bits

	d := al.d.at(i-1, j) + extend
	al.dext[x] = true
	if open := al.m.at(i-1, j) + int32(sc.Score(al.a[i-1], scoring.GapSymbol)); open > d {
		d = open
		al.dext[x] = false
	}
	al.d.set(i, j, d)

	r := al.r.at(i, j-1) + extend
	al.rext[x] = true
	if open := al.m.at(i, j-1) + int32(sc.Score(scoring.GapSymbol, al.b[j-1])); open > r {
		r = open
		al.rext[x] = false
	}
	al.r.set(i, j, r)

	best := al.m.at(i-1, j-1) + int32(sc.Score(al.a[i-1], al.b[j-1]))
	dir := Match
	if d > best {
		best, dir = d, Up
	}
	if r > best {
		best, dir = r, Left
	}

	if al.local {
		if best <= 0 {
			al.m.set(i, j, 0)
			al.n.set(i, j, Terminate)

			return
		}
		if best > al.maxScore {
			al.maxScore, al.maxI, al.maxJ = best, i, j
		}
	}

	al.m.set(i, j, best)
	al.n.set(i, j, dir)
}

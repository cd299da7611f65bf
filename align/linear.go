package align

import "github.com/katalvlaran/seqalign/scoring"

// linearCell applies the linear-gap recurrence at (i, j):
//
//	x = M[i-1][j-1] + score(a[i-1], b[j-1])   // Match
//	y = M[i-1][j]   + score(a[i-1], '-')      // Up
//	z = M[i][j-1]   + score('-', b[j-1])      // Left
//
// M[i][j] is the maximum with tie-break MATCH > UP > LEFT.  Local mode
// floors the cell at zero and terminates the path when no branch is
// positive.
func (al *aligner) linearCell(i, j int, sc scoring.Scorer) {
	best := al.m.at(i-1, j-1) + int32(sc.Score(al.a[i-1], al.b[j-1]))
	dir := Match
	if y := al.m.at(i-1, j) + int32(sc.Score(al.a[i-1], scoring.GapSymbol)); y > best {
		best, dir = y, Up
	}
	if z := al.m.at(i, j-1) + int32(sc.Score(scoring.GapSymbol, al.b[j-1])); z > best {
		best, dir = z, Left
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

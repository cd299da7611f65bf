package align

import "github.com/katalvlaran/seqalign/scoring"

// trace walks the direction matrix from (i, j) back to a terminator and
// returns the two gapped strings plus the diagonal-only projections
// (characters emitted on Match steps).  Buffers are built reversed and
// flipped once at the end, so stack depth is constant regardless of
// sequence length.
//
// Termination: the matrix origin, a Terminate cell, or (local mode) a
// zero-score cell.  In affine mode a gap run entered through Up or Left is
// walked in full using the recorded extension bits before control returns
// to the match state.
// Complexity: O(|a|+|b|) time.
func (al *aligner) trace(i, j int) (s1, s2, u1, u2 []byte, err error) {
	n := len(al.a) + len(al.b)
	s1 = make([]byte, 0, n)
	s2 = make([]byte, 0, n)
	cols := al.m.cols

walk:
	for i > 0 || j > 0 {
		if al.local && al.m.at(i, j) == 0 {
			break
		}

		switch al.n.at(i, j) {
		case Terminate:
			break walk

		case Match:
			s1 = append(s1, al.a[i-1])
			s2 = append(s2, al.b[j-1])
			u1 = append(u1, al.a[i-1])
			u2 = append(u2, al.b[j-1])
			i--
			j--

		case Up:
			if al.affine {
				for {
					s1 = append(s1, al.a[i-1])
					s2 = append(s2, scoring.GapSymbol)
					ext := al.dext[i*cols+j]
					i--
					if !ext {
						break
					}
				}
			} else {
				s1 = append(s1, al.a[i-1])
				s2 = append(s2, scoring.GapSymbol)
				i--
			}

		case Left:
			if al.affine {
				for {
					s1 = append(s1, scoring.GapSymbol)
					s2 = append(s2, al.b[j-1])
					ext := al.rext[i*cols+j]
					j--
					if !ext {
						break
					}
				}
			} else {
				s1 = append(s1, scoring.GapSymbol)
				s2 = append(s2, al.b[j-1])
				j--
			}

		default:
			return nil, nil, nil, nil, ErrTracebackCorrupt
		}
	}

	reverseBytes(s1)
	reverseBytes(s2)
	reverseBytes(u1)
	reverseBytes(u2)

	return s1, s2, u1, u2, nil
}

// reverseBytes flips p in place.
func reverseBytes(p []byte) {
	for l, r := 0, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
}

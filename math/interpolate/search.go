package interpolate

// searcher locates the bin containing a query point in a monotone grid. It
// first guesses under the assumption of uniform spacing and falls back to a
// binary search when the guess misses.
type searcher struct {
	xs     []float64
	x0, dx float64
	lim    float64
	n      int
	incr   bool
}

func (s *searcher) init(xs []float64) {
	s.xs = xs
	s.x0 = xs[0]
	s.lim = xs[len(xs)-1]
	s.dx = (s.lim - s.x0) / float64(len(xs)-1)
	s.n = len(xs)
	s.incr = s.dx > 0
}

// search returns i such that x lies within [xs[i], xs[i+1]] (reversed for
// decreasing grids). The caller must ensure x is in range.
func (s *searcher) search(x float64) int {
	guess := int((x - s.x0) / s.dx)
	if guess >= 0 && guess < s.n-1 &&
		(s.xs[guess] <= x) == s.incr &&
		(s.xs[guess+1] >= x) == s.incr {

		return guess
	}

	lo, hi := 0, s.n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if s.incr == (x >= s.xs[mid]) {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo
}

func (s *searcher) val(i int) float64 { return s.xs[i] }

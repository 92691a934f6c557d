/*
package interpolate implements 1D linear interpolation over monotone grids.

Unlike most interpolation packages, evaluation outside the sampled range does
not extrapolate and does not fail: it clamps to the boundary values. This is
the behavior redshift inversion needs, where a target value past either end
of the sampled curve must map to the corresponding redshift bound.
*/
package interpolate

// Clamped is a linear interpolator over a strictly increasing or strictly
// decreasing sequence of x values. Evaluation below or above the sampled
// range returns the value at the nearer end.
type Clamped struct {
	xs   searcher
	vals []float64
}

// NewClamped creates a clamped linear interpolator for a sequence of strictly
// increasing or strictly decreasing points, xs, which take on the values
// given by vals.
//
// Lookups occur in O(log |xs|), possibly faster for nearly uniform grids.
func NewClamped(xs, vals []float64) *Clamped {
	if len(xs) != len(vals) {
		panic("interpolate: length of input slices are not equal")
	}
	if len(xs) < 2 {
		panic("interpolate: need at least two points")
	}
	c := &Clamped{}
	c.xs.init(xs)
	c.vals = vals
	return c
}

// Eval returns the interpolated value at x, clamped to the boundary values
// outside the sampled range.
func (c *Clamped) Eval(x float64) float64 {
	if v, ok := c.clamp(x); ok {
		return v
	}

	i1 := c.xs.search(x)
	i2 := i1 + 1
	x1, x2 := c.xs.val(i1), c.xs.val(i2)
	v1, v2 := c.vals[i1], c.vals[i2]

	return ((v2-v1)/(x2-x1))*(x-x1) + v1
}

// EvalAll evaluates the interpolator at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
func (c *Clamped) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = c.Eval(x)
	}
	return out[0]
}

func (c *Clamped) clamp(x float64) (float64, bool) {
	n := c.xs.n
	if c.xs.incr {
		if x <= c.xs.x0 {
			return c.vals[0], true
		}
		if x >= c.xs.lim {
			return c.vals[n-1], true
		}
	} else {
		if x >= c.xs.x0 {
			return c.vals[0], true
		}
		if x <= c.xs.lim {
			return c.vals[n-1], true
		}
	}
	return 0, false
}

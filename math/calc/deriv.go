/*package calc provides some basic calculus routines for sampled curves.
 */
package calc

// Deriv computes the numerical derivative of a sequence of (x, y) points by
// second-order central differences, with one-sided stencils of the same order
// at the ends. The points should be ordered but do not need to be uniformly
// spaced, although the end stencils are only second order for near-uniform
// spacing.
//
// If an output array is given, the derivatives are written to that array (the
// array is still returned as a convenience).
func Deriv(xs, ys []float64, out ...[]float64) []float64 {
	n := len(xs)
	if len(ys) != n {
		panic("calc: length of xs and ys are not the same")
	}
	if n < 3 {
		panic("calc: need at least three points")
	}

	if len(out) == 0 {
		out = [][]float64{make([]float64, n)}
	}
	d := out[0]
	if len(d) != n {
		panic("calc: length of out and xs are not the same")
	}

	for i := 1; i < n-1; i++ {
		d[i] = (ys[i+1] - ys[i-1]) / (xs[i+1] - xs[i-1])
	}
	d[0] = (-3*ys[0] + 4*ys[1] - ys[2]) / (xs[2] - xs[0])
	d[n-1] = (3*ys[n-1] - 4*ys[n-2] + ys[n-3]) / (xs[n-1] - xs[n-3])

	return d
}

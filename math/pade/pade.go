/*
package pade constructs Padé approximants of power series.

A Padé approximant replaces a truncated Taylor series with a rational
function that agrees with the series to the same order but typically
converges far outside the series' radius of convergence.
*/
package pade

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Approximant is a rational function P(x)/Q(x) with Q(0) = 1. P and Q hold
// coefficients in ascending order.
type Approximant struct {
	P, Q []float64
}

// FromTaylor builds the [m/n] Padé approximant of the power series whose
// ascending Taylor coefficients are given by c. The first m+n+1 coefficients
// are used; extras are ignored.
//
// An error is returned if c is too short or if the denominator system is
// singular, which happens for degenerate coefficient sequences (e.g. a
// series that is secretly a polynomial of lower degree).
func FromTaylor(c []float64, m, n int) (*Approximant, error) {
	if len(c) < m+n+1 {
		return nil, fmt.Errorf(
			"pade: [%d/%d] approximant needs %d Taylor coefficients, got %d",
			m, n, m+n+1, len(c),
		)
	}

	q := make([]float64, n+1)
	q[0] = 1
	if n > 0 {
		// The denominator coefficients satisfy
		//     sum_{j=1..n} q_j c_{m+i-j} = -c_{m+i},   i = 1..n,
		// with c_k = 0 for k < 0.
		a := mat.NewDense(n, n, nil)
		b := mat.NewVecDense(n, nil)
		for i := 1; i <= n; i++ {
			for j := 1; j <= n; j++ {
				if k := m + i - j; k >= 0 {
					a.Set(i-1, j-1, c[k])
				}
			}
			b.SetVec(i-1, -c[m+i])
		}
		// An ill-conditioned (but solvable) system is reported by gonum as
		// a Condition error; the solution is still usable.
		var sol mat.VecDense
		if err := sol.SolveVec(a, b); err != nil {
			if _, ok := err.(mat.Condition); !ok {
				return nil, fmt.Errorf("pade: singular [%d/%d] denominator system: %w", m, n, err)
			}
		}
		for j := 1; j <= n; j++ {
			q[j] = sol.AtVec(j - 1)
		}
	}

	p := make([]float64, m+1)
	for i := 0; i <= m; i++ {
		s := c[i]
		for j := 1; j <= n && j <= i; j++ {
			s += q[j] * c[i-j]
		}
		p[i] = s
	}

	return &Approximant{P: p, Q: q}, nil
}

// Eval evaluates the approximant at x.
func (a *Approximant) Eval(x float64) float64 {
	return horner(a.P, x) / horner(a.Q, x)
}

// EvalAll evaluates the approximant at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
func (a *Approximant) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = a.Eval(x)
	}
	return out[0]
}

func horner(c []float64, x float64) float64 {
	s := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		s = s*x + c[i]
	}
	return s
}

package eos

import (
	"math"
	"strconv"
)

// DefaultTolerance is the tolerance Fraction uses.
const DefaultTolerance = 1e-9

// maxConvergents bounds the depth of the continued fraction expansion.
const maxConvergents = 10

// Fraction formats x as the rational number of lowest order approximating x
// to within DefaultTolerance. See FractionTol.
func Fraction(x float64) string {
	return FractionTol(x, DefaultTolerance)
}

// FractionTol formats x as "n/d", or as "n" if the denominator is 1, using
// the convergents of the continued fraction expansion of x. The search stops
// at the first convergent within tol of x, when the expansion terminates, or
// after ten terms, so inputs with no small exact fraction produce an
// approximation. The result is the empty string if x is NaN or infinite.
func FractionTol(x, tol float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return ""
	}
	// n1/d1 is the latest convergent and n2/d2 the one before it.
	n1, d1 := 1.0, 0.0
	n2, d2 := 0.0, 1.0
	r := x
	for i := 0; i < maxConvergents; i++ {
		a := math.Floor(r)
		n1, n2 = a*n1+n2, n1
		d1, d2 = a*d1+d2, d1
		if math.Abs(x-n1/d1) < tol {
			break
		}
		f := r - a
		if f < 1e-12 {
			break
		}
		r = 1 / f
	}
	num := strconv.FormatFloat(n1, 'f', -1, 64)
	if d1 == 1 {
		return num
	}
	return num + "/" + strconv.FormatFloat(d1, 'f', -1, 64)
}

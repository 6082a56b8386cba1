package eos

import (
	"math"
	"strconv"
)

// epsilon is the tolerance for treating a scalar as zero, as false, or as
// equal to another scalar.
const epsilon = 1e-9

// funcs implements the scalar functions. Functions never fail on scalars:
// square roots of negative numbers are 0 and logarithms of non-positive
// numbers are -Inf.
var funcs = map[Token]func(float64) float64{
	Sin:  math.Sin,
	Cos:  math.Cos,
	Tan:  math.Tan,
	Asin: math.Asin,
	Acos: math.Acos,
	Atan: math.Atan,
	Log: func(x float64) float64 {
		if x <= 0 {
			return math.Inf(-1)
		}
		return math.Log10(x)
	},
	Ln: func(x float64) float64 {
		if x <= 0 {
			return math.Inf(-1)
		}
		return math.Log(x)
	},
	Sqrt: func(x float64) float64 {
		if x < 0 {
			return 0
		}
		return math.Sqrt(x)
	},
	Not: func(x float64) float64 {
		return b2f(!truthy(x))
	},
}

// truthy converts a scalar to a boolean: anything farther than epsilon from
// zero is true.
func truthy(x float64) bool {
	return math.Abs(x) > epsilon
}

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// maxFactorial is the largest n for which n! is finite as a float64.
const maxFactorial = 170

// factorial computes n! for integral n in [0, maxFactorial]. ok is false for
// any other argument.
func factorial(n float64) (r float64, ok bool) {
	if n < 0 || n > maxFactorial || n != math.Trunc(n) {
		return 0, false
	}
	r = 1
	for k := 2.0; k <= n; k++ {
		r *= k
	}
	return r, true
}

// DomainError is an error returned when an operator is applied to an
// argument outside its domain. It implements InputError.
type DomainError struct {
	// Index is the position of the operator in the postfix sequence.
	Index int
	// Op is the operator.
	Op Token
	// X is the out-of-domain scalar argument. It is meaningless if Singular
	// is true.
	X float64
	// Singular indicates that the argument was a singular matrix.
	Singular bool
}

func (err *DomainError) Error() string {
	x := strconv.FormatFloat(err.X, 'g', -1, 64)
	if err.Singular {
		x = "singular matrix"
	}
	return errpos(err.Index, x+" outside domain of "+err.Op.String())
}

func (err *DomainError) Pos() int {
	return err.Index
}

func (err *DomainError) Kind() string {
	return KindDomain
}

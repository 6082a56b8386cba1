package eos

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// constPrec is the precision used to compute constants before rounding them
// to float64.
const constPrec = 256

var (
	constPi = bigconst(bigfloat.Pi)
	constE  = bigconst(func(out *big.Float) *big.Float {
		var one big.Float
		one.SetPrec(out.Prec()).SetInt64(1)
		return bigfloat.Exp(out, &one)
	})
)

// bigconst evaluates f at high precision and rounds the result to the nearest
// float64.
func bigconst(f func(out *big.Float) *big.Float) float64 {
	z := new(big.Float).SetPrec(constPrec)
	f(z)
	r, _ := z.Float64()
	return r
}

// constant returns the value of a constant token. ok is false if t is not a
// constant.
func constant(t Token) (v float64, ok bool) {
	switch t {
	case Pi:
		return constPi, true
	case E:
		return constE, true
	default:
		return 0, false
	}
}

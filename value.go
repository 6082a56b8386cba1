package eos

import "strconv"

// Value is the result of evaluating an expression or any intermediate operand:
// either a Scalar or a *Matrix. No other types implement Value.
type Value interface {
	String() string
	value()
}

// Scalar is a real-valued result.
type Scalar float64

func (Scalar) value() {}

func (v Scalar) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

func (*Matrix) value() {}

// describe names the kind of a value for error messages.
func describe(v Value) string {
	switch v := v.(type) {
	case Scalar:
		return "scalar"
	case *Matrix:
		return v.Dims() + " matrix"
	default:
		panic("eos: invalid value type")
	}
}

package eos

import (
	"io"
	"strings"
)

// Result is the outcome of a calculation: a scalar, a matrix, or an error.
// Exactly one of the three is present in a Result returned by Calculate.
type Result struct {
	v   Value
	err error
}

// Calculate compiles and evaluates a token sequence as the calculator's
// evaluate key does. Options configure the free variable and matrix store as
// for NewContext.
func Calculate(tokens []Token, opts ...ContextOption) Result {
	e, err := Compile(tokens)
	if err != nil {
		return Result{err: err}
	}
	ctx := NewContext(opts...)
	v := ctx.Eval(e)
	return Result{v: v, err: ctx.Err()}
}

// OK returns whether the calculation succeeded.
func (r Result) OK() bool {
	return r.err == nil && r.v != nil
}

// Value returns the result value, or nil if the calculation failed.
func (r Result) Value() Value {
	return r.v
}

// Scalar returns the scalar result. ok is false if the result is a matrix or
// an error.
func (r Result) Scalar() (x float64, ok bool) {
	v, ok := r.v.(Scalar)
	return float64(v), ok
}

// Matrix returns the matrix result. ok is false if the result is a scalar or
// an error.
func (r Result) Matrix() (m *Matrix, ok bool) {
	m, ok = r.v.(*Matrix)
	return m, ok
}

// Err returns the error that caused the calculation to fail, if any.
func (r Result) Err() error {
	return r.err
}

// Kind returns the kind of error that caused the calculation to fail, or the
// empty string if it succeeded.
func (r Result) Kind() string {
	return ErrorKind(r.err)
}

// String formats the result for display. Errors are formatted as ERR: and the
// error kind.
func (r Result) String() string {
	if r.err != nil {
		return "ERR:" + r.Kind()
	}
	if r.v == nil {
		return ""
	}
	return r.v.String()
}

// Eval is a shortcut to scan, compile, and evaluate a key script.
func Eval(src io.RuneScanner, opts ...ContextOption) (Value, error) {
	tokens, err := Scan(src)
	if err != nil {
		return nil, err
	}
	r := Calculate(tokens, opts...)
	return r.v, r.err
}

// EvalString is a shortcut to evaluate a key script held in a string.
func EvalString(src string, opts ...ContextOption) (Value, error) {
	return Eval(strings.NewReader(src), opts...)
}

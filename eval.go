package eos

import (
	"math"
	"strconv"
	"strings"
)

// Context is a context for evaluating expressions. It holds the value of the
// free variable X and the matrix store that slot references read from. It is
// not safe to use a Context concurrently, but any number of contexts may
// share one Store.
type Context struct {
	stack []Value
	store *Store
	x     float64
	res   Value
	err   error
	done  bool
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	storeopt struct{ s *Store }
	xopt     float64
)

func (storeopt) ctxOption() {}
func (xopt) ctxOption()     {}

// WithStore sets the matrix store that evaluation reads matrix slots from.
func WithStore(s *Store) ContextOption {
	return storeopt{s}
}

// SetX sets the value substituted for the free variable X.
func SetX(x float64) ContextOption {
	return xopt(x)
}

// NewContext creates a new evaluation context. If no store is given, the
// context uses a new empty store. X is 0 unless set.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{store: NewStore()}
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context and applies options to it. The clone
// shares the original's store unless an option replaces it. The clone has no
// result.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{
		stack: make([]Value, 0, cap(ctx.stack)),
		store: ctx.store,
		x:     ctx.x,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case storeopt:
			n.store = opt.s
		case xopt:
			n.x = float64(opt)
		default:
			panic("eos: unknown option type")
		}
	}
	return &n
}

// SetX sets the value of the free variable. Returns ctx for chaining.
func (ctx *Context) SetX(x float64) *Context {
	ctx.x = x
	return ctx
}

// X returns the value of the free variable.
func (ctx *Context) X() float64 {
	return ctx.x
}

// Store returns the matrix store the context reads from.
func (ctx *Context) Store() *Store {
	return ctx.store
}

// Eval evaluates a compiled expression and returns the result. If an error
// occurs, the result is nil and ctx.Err returns the error.
func (ctx *Context) Eval(e *Expr) Value {
	return ctx.EvalPostfix(e.postfix, e.lits)
}

// EvalPostfix evaluates a postfix token sequence. Each Literal token takes
// the next value from lits. If an error occurs, the result is nil and ctx.Err
// returns the error. Evaluation stops at the first error.
//
// Scalar division by zero is not an error: the quotient is 0. This holds for
// x⁻¹ of 0 as well.
func (ctx *Context) EvalPostfix(postfix []Token, lits []float64) Value {
	ctx.stack = ctx.stack[:0]
	ctx.res, ctx.err = ctx.run(postfix, lits)
	ctx.done = true
	ctx.stack = ctx.stack[:0]
	return ctx.res
}

// Result returns the result obtained after evaluating an expression. Panics if
// ctx has not been used to evaluate an expression. Returns nil if an error
// occurred during evaluation.
func (ctx *Context) Result() Value {
	if !ctx.done {
		panic("eos: Context.Result called before evaluating any expression")
	}
	return ctx.res
}

// Err returns the error from the last evaluation, if any.
func (ctx *Context) Err() error {
	return ctx.err
}

func (ctx *Context) push(v Value) {
	ctx.stack = append(ctx.stack, v)
}

func (ctx *Context) pop() Value {
	v := ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	return v
}

func (ctx *Context) run(postfix []Token, lits []float64) (Value, error) {
	if len(postfix) == 0 {
		return nil, &EmptyExpressionError{}
	}
	k := 0
	for i, t := range postfix {
		switch {
		case t == Literal:
			if k >= len(lits) {
				return nil, &TokenError{Index: i, Tok: t}
			}
			ctx.push(Scalar(lits[k]))
			k++
		case t == X:
			ctx.push(Scalar(ctx.x))
		case t == Pi, t == E:
			v, _ := constant(t)
			ctx.push(Scalar(v))
		case t.IsMatrix():
			var (
				m  *Matrix
				ok bool
			)
			if ctx.store != nil {
				m, ok = ctx.store.Lookup(t)
			}
			if !ok {
				return nil, &MatrixError{Index: i, Slot: t}
			}
			ctx.push(m)
		case IsFunction(t), t == Neg, isPostfix(t):
			if len(ctx.stack) < 1 {
				return nil, &StackError{Index: i, Op: t, Have: 0, Need: 1}
			}
			r, err := unary(i, t, ctx.pop())
			if err != nil {
				return nil, err
			}
			ctx.push(r)
		case isBinary(t):
			if len(ctx.stack) < 2 {
				return nil, &StackError{Index: i, Op: t, Have: len(ctx.stack), Need: 2}
			}
			b := ctx.pop()
			a := ctx.pop()
			r, err := binary(i, t, a, b)
			if err != nil {
				return nil, err
			}
			ctx.push(r)
		default:
			d, ok := t.Digit()
			if !ok {
				return nil, &TokenError{Index: i, Tok: t}
			}
			ctx.push(Scalar(d))
		}
	}
	if len(ctx.stack) != 1 {
		return nil, &ResultError{Left: len(ctx.stack)}
	}
	return ctx.stack[0], nil
}

// unary applies a function, prefix, or postfix operator to one operand.
func unary(i int, op Token, v Value) (Value, error) {
	if f := funcs[op]; f != nil {
		x, ok := v.(Scalar)
		if !ok {
			return nil, &TypeError{Index: i, Op: op, Args: []string{describe(v)}}
		}
		return Scalar(f(float64(x))), nil
	}
	switch v := v.(type) {
	case Scalar:
		switch op {
		case Neg:
			return -v, nil
		case Square:
			return v * v, nil
		case Inverse:
			if v == 0 {
				return Scalar(0), nil
			}
			return 1 / v, nil
		case Factorial:
			r, ok := factorial(float64(v))
			if !ok {
				return nil, &DomainError{Index: i, Op: op, X: float64(v)}
			}
			return Scalar(r), nil
		}
	case *Matrix:
		switch op {
		case Neg:
			return v.Scale(-1), nil
		case Square:
			if r, ok := v.Mul(v); ok {
				return r, nil
			}
		case Inverse:
			if !v.Square() {
				break
			}
			if r, ok := v.Inverse(); ok {
				return r, nil
			}
			return nil, &DomainError{Index: i, Op: op, Singular: true}
		}
		return nil, &TypeError{Index: i, Op: op, Args: []string{describe(v)}}
	}
	panic("eos: invalid unary operator " + op.String())
}

// binary applies a binary operator to a and b, where a was pushed first.
func binary(i int, op Token, a, b Value) (Value, error) {
	x, xs := a.(Scalar)
	y, ys := b.(Scalar)
	if xs && ys {
		return Scalar(arith(op, float64(x), float64(y))), nil
	}
	am, _ := a.(*Matrix)
	bm, _ := b.(*Matrix)
	switch op {
	case Add:
		if am != nil && bm != nil {
			if r, ok := am.Add(bm); ok {
				return r, nil
			}
		}
	case Mul, ImplicitMul:
		switch {
		case am != nil && bm != nil:
			if r, ok := am.Mul(bm); ok {
				return r, nil
			}
		case am != nil:
			return am.Scale(float64(y)), nil
		default:
			return bm.Scale(float64(x)), nil
		}
	}
	return nil, &TypeError{Index: i, Op: op, Args: []string{describe(a), describe(b)}}
}

// arith applies a binary operator to two scalars.
func arith(op Token, x, y float64) float64 {
	switch op {
	case Add:
		return x + y
	case Sub:
		return x - y
	case Mul, ImplicitMul:
		return x * y
	case Div:
		if y == 0 {
			return 0
		}
		return x / y
	case Pow:
		return math.Pow(x, y)
	case Eq:
		return b2f(math.Abs(x-y) < epsilon)
	case Ne:
		return b2f(math.Abs(x-y) >= epsilon)
	case Lt:
		return b2f(x < y)
	case Le:
		return b2f(x <= y)
	case Gt:
		return b2f(x > y)
	case Ge:
		return b2f(x >= y)
	case And:
		return b2f(truthy(x) && truthy(y))
	case Or:
		return b2f(truthy(x) || truthy(y))
	case Xor:
		return b2f(truthy(x) != truthy(y))
	default:
		panic("eos: invalid binary operator " + op.String())
	}
}

// EmptyExpressionError is an error indicating that there was nothing to
// evaluate.
type EmptyExpressionError struct{}

func (err *EmptyExpressionError) Error() string {
	return "no expression"
}

func (err *EmptyExpressionError) Kind() string {
	return KindEmpty
}

// StackError is an error indicating an operator evaluated without enough
// operands. It implements InputError.
type StackError struct {
	// Index is the position of the operator in the postfix sequence.
	Index int
	// Op is the operator.
	Op Token
	// Have and Need are the number of operands available and required.
	Have, Need int
}

func (err *StackError) Error() string {
	return errpos(err.Index, "stack underflow: "+err.Op.String()+" needs "+
		strconv.Itoa(err.Need)+" operands, have "+strconv.Itoa(err.Have))
}

func (err *StackError) Pos() int {
	return err.Index
}

func (err *StackError) Kind() string {
	return KindStackUnderflow
}

// ResultError is an error indicating that evaluation did not leave exactly
// one value.
type ResultError struct {
	// Left is the number of values left after evaluation.
	Left int
}

func (err *ResultError) Error() string {
	if err.Left == 0 {
		return "no result"
	}
	return "missing operator: " + strconv.Itoa(err.Left) + " values left"
}

// Kind returns KindNoResult if nothing was left and KindSyntax if too much
// was.
func (err *ResultError) Kind() string {
	if err.Left == 0 {
		return KindNoResult
	}
	return KindSyntax
}

// MatrixError is an error from a reference to a matrix slot that holds no
// matrix. It implements InputError.
type MatrixError struct {
	// Index is the position of the reference in the postfix sequence.
	Index int
	// Slot is the undefined slot.
	Slot Token
}

func (err *MatrixError) Error() string {
	return errpos(err.Index, "undefined matrix "+err.Slot.String())
}

func (err *MatrixError) Pos() int {
	return err.Index
}

func (err *MatrixError) Kind() string {
	return KindUndefinedMatrix
}

// TypeError is an error indicating an operator applied to operands it does
// not support, e.g. subtraction of matrices or multiplication of matrices
// with mismatched inner dimensions. It implements InputError.
type TypeError struct {
	// Index is the position of the operator in the postfix sequence.
	Index int
	// Op is the operator.
	Op Token
	// Args describes each operand, e.g. "scalar" or "2×3 matrix".
	Args []string
}

func (err *TypeError) Error() string {
	return errpos(err.Index, "cannot apply "+err.Op.String()+" to "+strings.Join(err.Args, " and "))
}

func (err *TypeError) Pos() int {
	return err.Index
}

func (err *TypeError) Kind() string {
	return KindType
}

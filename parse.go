package eos

import (
	"strconv"
	"strings"
)

// Expr is a compiled expression: a postfix token sequence together with the
// values of its numeric literals. An Expr can be evaluated any number of times
// with different contexts.
type Expr struct {
	// postfix is the expression in evaluation order.
	postfix []Token
	// lits holds the value of each Literal in postfix, in order.
	lits []float64
}

// Compile prepares a token sequence for evaluation. Numeric literals are
// assembled, implicit multiplications are made explicit, unclosed parentheses
// are closed at the end, and the result is converted to postfix order.
//
// The only error Compile returns is a *LiteralError. Every other malformed
// sequence compiles and reports its problem when evaluated.
func Compile(tokens []Token) (*Expr, error) {
	toks, lits, err := AssembleLiterals(tokens)
	if err != nil {
		return nil, err
	}
	toks = insertImplicit(toks)
	toks = Balance(toks)
	return &Expr{postfix: ToPostfix(toks), lits: lits}, nil
}

// Balance appends as many close parentheses as the open parentheses in
// tokens outnumber the close parentheses. Balance never removes or reorders
// tokens. A close parenthesis before its partner still counts, so ")(" is
// returned unchanged; the unmatched open is dropped during conversion.
func Balance(tokens []Token) []Token {
	n := 0
	for _, t := range tokens {
		switch t {
		case LParen:
			n++
		case RParen:
			n--
		}
	}
	if n <= 0 {
		return tokens
	}
	out := make([]Token, len(tokens), len(tokens)+n)
	copy(out, tokens)
	for ; n > 0; n-- {
		out = append(out, RParen)
	}
	return out
}

// insertImplicit inserts ImplicitMul between adjacent terms with no operator
// between them, e.g. 2π, 3X, 2(4), or X sin(X).
func insertImplicit(tokens []Token) []Token {
	var out []Token
	for i, t := range tokens {
		if i > 0 && endsTerm(tokens[i-1]) && startsTerm(t) {
			if out == nil {
				out = make([]Token, i, len(tokens)+4)
				copy(out, tokens[:i])
			}
			out = append(out, ImplicitMul)
		}
		if out != nil {
			out = append(out, t)
		}
	}
	if out == nil {
		return tokens
	}
	return out
}

func endsTerm(t Token) bool {
	return isOperand(t) || t == RParen || isPostfix(t)
}

func startsTerm(t Token) bool {
	return isOperand(t) || t == LParen || IsFunction(t) || t == Neg
}

// ToPostfix converts an infix token sequence to postfix order using the
// shunting-yard algorithm. It never fails; malformed sequences produce
// postfix sequences that fail during evaluation.
//
// A function is held on the operator stack until the parenthesized group
// following it closes, at which point it is emitted, so that sin(x) becomes
// x sin. Operators of equal precedence group left to right, except for
// exponentiation and prefix negation, which group right to left. Precedences
// are compared by magnitude.
func ToPostfix(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	ops := make([]Token, 0, 8)
	pop := func() Token {
		t := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		return t
	}
	for _, t := range tokens {
		switch {
		case isOperand(t), isPostfix(t):
			// Postfix operators bind tighter than anything that could be
			// waiting on the stack, so they apply immediately.
			out = append(out, t)
		case t == LParen, IsFunction(t), t == Neg:
			ops = append(ops, t)
		case t == RParen:
			for len(ops) > 0 && ops[len(ops)-1] != LParen {
				out = append(out, pop())
			}
			if len(ops) > 0 {
				pop()
			}
			if len(ops) > 0 && IsFunction(ops[len(ops)-1]) {
				out = append(out, pop())
			}
		case t == Comma:
			for len(ops) > 0 && ops[len(ops)-1] != LParen {
				out = append(out, pop())
			}
		case IsOperator(t):
			q := abs(Precedence(t))
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top == LParen {
					break
				}
				p := abs(Precedence(top))
				if p < q || p == q && !IsLeftAssociative(t) {
					break
				}
				out = append(out, pop())
			}
			ops = append(ops, t)
		default:
			// Let the evaluator report it.
			out = append(out, t)
		}
	}
	for len(ops) > 0 {
		if t := pop(); t != LParen {
			out = append(out, t)
		}
	}
	return out
}

// Postfix returns a copy of the compiled token sequence in evaluation order.
func (e *Expr) Postfix() []Token {
	return append([]Token(nil), e.postfix...)
}

// Literals returns a copy of the literal values in the order of the Literal
// tokens in the postfix sequence.
func (e *Expr) Literals() []float64 {
	return append([]float64(nil), e.lits...)
}

// UsesX returns whether evaluating the expression reads the free variable.
func (e *Expr) UsesX() bool {
	for _, t := range e.postfix {
		if t == X {
			return true
		}
	}
	return false
}

// Matrices returns the matrix slots the expression refers to, in slot order
// and without duplicates.
func (e *Expr) Matrices() []Token {
	var used [len(slots)]bool
	for _, t := range e.postfix {
		if t.IsMatrix() {
			used[t-MatA] = true
		}
	}
	var r []Token
	for i, u := range used {
		if u {
			r = append(r, slots[i])
		}
	}
	return r
}

// String formats the expression in postfix order, with literal values in
// place of their placeholders.
func (e *Expr) String() string {
	var b strings.Builder
	k := 0
	for i, t := range e.postfix {
		if i > 0 {
			b.WriteByte(' ')
		}
		if t == Literal && k < len(e.lits) {
			b.WriteString(strconv.FormatFloat(e.lits[k], 'g', -1, 64))
			k++
			continue
		}
		b.WriteString(t.String())
	}
	return b.String()
}

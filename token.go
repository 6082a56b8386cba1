package eos

import "strconv"

// Token is a single key of the calculator's expression language. The set of
// tokens is closed; a Token carries no value of its own. Numeric literals are
// represented by the Literal placeholder with their values held alongside the
// token sequence.
type Token int8

const (
	// None is the zero Token. It never appears in a valid sequence.
	None Token = iota

	Num0
	Num1
	Num2
	Num3
	Num4
	Num5
	Num6
	Num7
	Num8
	Num9
	Decimal

	Pi
	E
	// X is the free variable, substituted at evaluation time.
	X

	Add
	Sub
	Mul
	Div
	Pow

	Sin
	Cos
	Tan
	Asin
	Acos
	Atan
	Log
	Ln
	Sqrt
	Not

	Eq
	Ne
	Lt
	Le
	Gt
	Ge

	And
	Or
	Xor

	LParen
	RParen
	Comma

	MatA
	MatB
	MatC
	MatD
	MatE
	MatF
	MatG
	MatH
	MatI
	MatJ

	// Neg is prefix negation, the (-) key.
	Neg
	// Square, Inverse, and Factorial are postfix operators: x², x⁻¹, x!.
	Square
	Inverse
	Factorial

	// ImplicitMul is the multiplication written by juxtaposition, as in 2X.
	// It binds tighter than × and ÷, so 6÷2X is 6÷(2X). Compile inserts it;
	// there is no key for it.
	ImplicitMul

	// Literal stands in for an assembled numeric literal.
	Literal

	ntokens
)

var tokenNames = [ntokens]string{
	None:        "None",
	Num0:        "0",
	Num1:        "1",
	Num2:        "2",
	Num3:        "3",
	Num4:        "4",
	Num5:        "5",
	Num6:        "6",
	Num7:        "7",
	Num8:        "8",
	Num9:        "9",
	Decimal:     ".",
	Pi:          "π",
	E:           "e",
	X:           "X",
	Add:         "+",
	Sub:         "-",
	Mul:         "×",
	Div:         "÷",
	Pow:         "^",
	Sin:         "sin",
	Cos:         "cos",
	Tan:         "tan",
	Asin:        "asin",
	Acos:        "acos",
	Atan:        "atan",
	Log:         "log",
	Ln:          "ln",
	Sqrt:        "√",
	Not:         "not",
	Eq:          "=",
	Ne:          "≠",
	Lt:          "<",
	Le:          "≤",
	Gt:          ">",
	Ge:          "≥",
	And:         "and",
	Or:          "or",
	Xor:         "xor",
	LParen:      "(",
	RParen:      ")",
	Comma:       ",",
	MatA:        "[A]",
	MatB:        "[B]",
	MatC:        "[C]",
	MatD:        "[D]",
	MatE:        "[E]",
	MatF:        "[F]",
	MatG:        "[G]",
	MatH:        "[H]",
	MatI:        "[I]",
	MatJ:        "[J]",
	Neg:         "(-)",
	Square:      "²",
	Inverse:     "⁻¹",
	Factorial:   "!",
	ImplicitMul: "·",
	Literal:     "lit",
}

func (t Token) String() string {
	if t < 0 || t >= ntokens {
		return "Token(" + strconv.Itoa(int(t)) + ")"
	}
	return tokenNames[t]
}

// digits maps each digit token to its value. Digit values never depend on the
// order of the Token constants.
var digits = map[Token]int{
	Num0: 0,
	Num1: 1,
	Num2: 2,
	Num3: 3,
	Num4: 4,
	Num5: 5,
	Num6: 6,
	Num7: 7,
	Num8: 8,
	Num9: 9,
}

var digitTokens = [10]Token{Num0, Num1, Num2, Num3, Num4, Num5, Num6, Num7, Num8, Num9}

// DigitToken returns the token for the digit d. Panics if d is not in [0, 9].
func DigitToken(d int) Token {
	if d < 0 || d > 9 {
		panic("eos: invalid digit " + strconv.Itoa(d))
	}
	return digitTokens[d]
}

// Digit returns the value of a digit token. ok is false if t is not a digit.
func (t Token) Digit() (d int, ok bool) {
	d, ok = digits[t]
	return d, ok
}

// slots lists the matrix reference tokens in slot order.
var slots = [...]Token{MatA, MatB, MatC, MatD, MatE, MatF, MatG, MatH, MatI, MatJ}

// IsMatrix returns whether t names a matrix slot.
func (t Token) IsMatrix() bool {
	return MatA <= t && t <= MatJ
}

// Slots returns the ten matrix slot tokens in order.
func Slots() []Token {
	return append([]Token(nil), slots[:]...)
}

// Precedence returns the binding strength of an operator or function token.
// Higher binds tighter. Relational and logical operators have negative
// precedences so that they sort below arithmetic while remaining distinct
// from non-operators; compare magnitudes. Tokens that are not operators have
// precedence 0.
func Precedence(t Token) int {
	switch t {
	case Square, Inverse, Factorial:
		return 5
	case Sin, Cos, Tan, Asin, Acos, Atan, Log, Ln, Sqrt, Not:
		return 4
	case Pow, Neg, ImplicitMul:
		return 3
	case Mul, Div:
		return 2
	case Add, Sub:
		return 1
	case Eq, Ne, Lt, Le, Gt, Ge:
		return -1
	case And:
		return -2
	case Or, Xor:
		return -3
	default:
		return 0
	}
}

// IsFunction returns whether t is a unary function written before its
// argument, e.g. sin.
func IsFunction(t Token) bool {
	switch t {
	case Sin, Cos, Tan, Asin, Acos, Atan, Log, Ln, Sqrt, Not:
		return true
	}
	return false
}

// IsOperator returns whether t takes part in precedence comparison. Functions
// are never operators.
func IsOperator(t Token) bool {
	return Precedence(t) != 0 && !IsFunction(t)
}

// IsLeftAssociative returns whether chains of t at equal precedence group
// left to right. Only exponentiation and prefix negation group right to left.
func IsLeftAssociative(t Token) bool {
	return t != Pow && t != Neg
}

// isPostfix returns whether t is applied to the operand before it.
func isPostfix(t Token) bool {
	return t == Square || t == Inverse || t == Factorial
}

// isBinary returns whether t combines two operands.
func isBinary(t Token) bool {
	return IsOperator(t) && t != Neg && !isPostfix(t)
}

// isOperand returns whether t pushes a value without consuming any.
func isOperand(t Token) bool {
	switch {
	case t == Literal, t == Pi, t == E, t == X, t.IsMatrix():
		return true
	}
	_, ok := t.Digit()
	return ok
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

package eos

import (
	"errors"
	"strconv"
)

// Error kinds reported by Result.Kind and by the Kind method of every error
// the package returns.
const (
	KindEmpty           = "Empty"
	KindStackUnderflow  = "StackUnderflow"
	KindUndefinedMatrix = "UndefinedMatrix"
	KindType            = "TypeError"
	KindNoResult        = "NoResult"
	KindSyntax          = "Syntax"
	KindDomain          = "Domain"
	KindStore           = "Store"
)

// LiteralError is an error indicating a numeric literal with more than one
// decimal point. It implements InputError.
type LiteralError struct {
	// Index is the position in the token sequence of the extra decimal point.
	Index int
	// Text is the literal as entered up to and including the extra point.
	Text string
}

func (err *LiteralError) Error() string {
	return errpos(err.Index, "too many decimal points in "+strconv.Quote(err.Text))
}

func (err *LiteralError) Pos() int {
	return err.Index
}

func (err *LiteralError) Kind() string {
	return KindSyntax
}

// TokenError is an error indicating a token that cannot appear where it was
// found, e.g. a comma reaching the evaluator. It implements InputError.
type TokenError struct {
	// Index is the position of the token in the postfix sequence.
	Index int
	// Tok is the unexpected token.
	Tok Token
}

func (err *TokenError) Error() string {
	return errpos(err.Index, "unexpected token "+strconv.Quote(err.Tok.String()))
}

func (err *TokenError) Pos() int {
	return err.Index
}

func (err *TokenError) Kind() string {
	return KindSyntax
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// a malformed token sequence implements InputError.
type InputError interface {
	error
	// Pos returns the index of the token that caused the error. For errors
	// found during evaluation, the index is into the postfix sequence.
	Pos() int
}

var (
	_ InputError = (*LiteralError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*StackError)(nil)
	_ InputError = (*MatrixError)(nil)
	_ InputError = (*TypeError)(nil)
	_ InputError = (*DomainError)(nil)
	_ InputError = (*LexError)(nil)
)

// kinded is implemented by every error the package returns.
type kinded interface {
	Kind() string
}

// ErrorKind returns the kind of an error returned by the package, or "Error"
// for any other non-nil error. It returns the empty string for nil.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	var k kinded
	if errors.As(err, &k) {
		return k.Kind()
	}
	return "Error"
}

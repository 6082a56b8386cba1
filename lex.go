package eos

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// words maps the names a key script may use for keys.
var words = map[string]Token{
	"sin":  Sin,
	"cos":  Cos,
	"tan":  Tan,
	"asin": Asin,
	"acos": Acos,
	"atan": Atan,
	"log":  Log,
	"ln":   Ln,
	"sqrt": Sqrt,
	"not":  Not,
	"and":  And,
	"or":   Or,
	"xor":  Xor,
	"neg":  Neg,
	"pi":   Pi,
	"e":    E,
	"x":    X,
	"X":    X,
}

// runes maps single-rune keys.
var runes = map[rune]Token{
	'.': Decimal,
	'+': Add,
	'-': Sub,
	'−': Sub,
	'*': Mul,
	'×': Mul,
	'/': Div,
	'÷': Div,
	'^': Pow,
	'(': LParen,
	')': RParen,
	',': Comma,
	'=': Eq,
	'≠': Ne,
	'≤': Le,
	'≥': Ge,
	'π': Pi,
	'√': Sqrt,
	'~': Neg,
	'²': Square,
}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// Scan reads a key script and returns the keys it names. A key script writes
// one key per digit, so "12" is the two keys 1 and 2; the keys are assembled
// into numbers by Compile. Names of functions and logical operators are
// written as words, matrix slots as [A] through [J], and negation as ~ or
// neg. Whitespace separates keys and is otherwise ignored.
func Scan(src io.RuneScanner) ([]Token, error) {
	l := lex(src)
	var r []Token
	for {
		t, err := l.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return r, nil
			}
			return nil, err
		}
		r = append(r, t)
	}
}

// ScanString is a shortcut to scan a key script held in a string.
func ScanString(src string) ([]Token, error) {
	return Scan(strings.NewReader(src))
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// follow consumes the next rune if it is want.
func (l *lexer) follow(want rune) (bool, error) {
	r, err := l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	if r != want {
		l.unreadRune()
		return false, nil
	}
	return true, nil
}

// next scans the next key from the input. At the end of the input, the error
// is io.EOF.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			return None, err
		}
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9':
			return DigitToken(int(r - '0')), nil
		case unicode.IsLetter(r) && r != 'π':
			l.unreadRune()
			return l.scanWord()
		case r == '[':
			return l.scanMatrix()
		case r == '<', r == '>', r == '!':
			eq, err := l.follow('=')
			if err != nil {
				return None, err
			}
			return relational(r, eq), nil
		case r == '⁻':
			l.buf.WriteRune(r)
			one, err := l.follow('¹')
			if err != nil {
				return None, err
			}
			if !one {
				return None, l.error("operator")
			}
			return Inverse, nil
		default:
			if t, ok := runes[r]; ok {
				return t, nil
			}
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return None, l.error("")
		}
	}
}

func relational(r rune, eq bool) Token {
	switch {
	case r == '<' && eq:
		return Le
	case r == '<':
		return Lt
	case r == '>' && eq:
		return Ge
	case r == '>':
		return Gt
	case eq:
		return Ne
	default:
		return Factorial
	}
}

func (l *lexer) scanWord() (Token, error) {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return None, err
		}
		if !unicode.IsLetter(r) || r == 'π' {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
	}
	t, ok := words[l.buf.String()]
	if !ok {
		return None, l.error("word")
	}
	return t, nil
}

func (l *lexer) scanMatrix() (Token, error) {
	l.buf.WriteByte('[')
	for i := 0; i < 2; i++ {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return None, l.error("matrix")
			}
			return None, err
		}
		l.buf.WriteRune(r)
	}
	s := l.buf.String()
	if s[len(s)-1] != ']' || s[1] < 'A' || s[1] > 'J' {
		return None, l.error("matrix")
	}
	return slots[s[1]-'A'], nil
}

func (l *lexer) error(class string) error {
	return &LexError{
		Text:  l.buf.String(),
		Class: class,
		Col:   l.rune,
	}
}

// LexError indicates an invalid key in a key script. It implements
// InputError.
type LexError struct {
	// Text is the key the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Class is the type of key the lexer was scanning. This may be "word",
	// "matrix", "operator", or the empty string if a type hadn't been
	// decided.
	Class string
	// Col is the total number of runes scanned by the lexer up to and
	// including this error.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Class == "" {
		return "invalid key at " + pos + ": " + err.Text
	}
	return "invalid " + err.Class + " key at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) Kind() string {
	return KindSyntax
}

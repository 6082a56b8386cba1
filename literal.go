package eos

import (
	"strconv"
	"strings"
)

// AssembleLiterals collapses each run of digit tokens with at most one decimal
// point into a single Literal token. The values of the literals are returned
// in the order their placeholders appear. Every other token is copied through
// unchanged and ends any literal in progress.
//
// A run containing a second decimal point results in a *LiteralError. A run
// consisting only of a decimal point has the value 0, as on a handheld.
func AssembleLiterals(tokens []Token) ([]Token, []float64, error) {
	out := make([]Token, 0, len(tokens))
	var lits []float64
	var (
		b   strings.Builder
		dot bool
		in  bool
	)
	flush := func() {
		if !in {
			return
		}
		s := b.String()
		if s == "." {
			s = "0"
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			// The builder only ever holds digits and one point, so the only
			// possible failure is range, which ParseFloat reports as ±Inf.
			if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
				panic("eos: assembled invalid literal " + strconv.Quote(s))
			}
		}
		out = append(out, Literal)
		lits = append(lits, v)
		b.Reset()
		dot, in = false, false
	}
	for i, t := range tokens {
		if d, ok := t.Digit(); ok {
			b.WriteByte(byte('0' + d))
			in = true
			continue
		}
		if t == Decimal {
			b.WriteByte('.')
			if dot {
				return nil, nil, &LiteralError{Index: i, Text: b.String()}
			}
			dot, in = true, true
			continue
		}
		flush()
		out = append(out, t)
	}
	flush()
	return out, lits, nil
}

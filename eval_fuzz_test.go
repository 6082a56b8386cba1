//go:build go1.18
// +build go1.18

package eos_test

import (
	"testing"

	"github.com/zephyrtronium/eos"
)

func FuzzEval(f *testing.F) {
	f.Add("X")
	f.Add("2+3×4")
	f.Add("sin(X^2")
	f.Add("[A]⁻¹×[B]")
	f.Add("1..2")
	store := eos.NewStore()
	store.Update(eos.MatA, 2, 2, []float64{1, 2, 3, 4})
	store.Update(eos.MatB, 2, 1, []float64{5, 6})
	f.Fuzz(func(t *testing.T, s string) {
		v, err := eos.EvalString(s, eos.WithStore(store), eos.SetX(0.5))
		if (v == nil) == (err == nil) {
			t.Errorf("%q: got both or neither of value %v and error %v", s, v, err)
		}
		if err != nil && eos.ErrorKind(err) == "Error" {
			t.Errorf("%q: error without kind: %v", s, err)
		}
	})
}

func FuzzCompile(f *testing.F) {
	f.Add([]byte{1, 2, 11, 3})
	f.Add([]byte{30, 40, 41})
	f.Fuzz(func(t *testing.T, b []byte) {
		toks := make([]eos.Token, len(b))
		for i, c := range b {
			toks[i] = eos.Token(c % 64)
		}
		r := eos.Calculate(toks)
		if r.OK() == (r.Err() != nil) {
			t.Errorf("%v: inconsistent result %v", toks, r)
		}
	})
}

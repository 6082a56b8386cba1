package eos

import (
	"errors"
	"reflect"
	"testing"
)

// keys scans a key script, failing the test on error.
func keys(t testing.TB, src string) []Token {
	t.Helper()
	r, err := ScanString(src)
	if err != nil {
		t.Fatalf("couldn't scan %q: %v", src, err)
	}
	return r
}

func TestAssembleLiterals(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		tokens []Token
		lits   []float64
	}{
		{"empty", "", []Token{}, nil},
		{"digit", "7", []Token{Literal}, []float64{7}},
		{"run", "1234", []Token{Literal}, []float64{1234}},
		{"decimal", "12.5", []Token{Literal}, []float64{12.5}},
		{"lead", ".25", []Token{Literal}, []float64{0.25}},
		{"trail", "3.", []Token{Literal}, []float64{3}},
		{"point", ".", []Token{Literal}, []float64{0}},
		{"flush", "1+23", []Token{Literal, Add, Literal}, []float64{1, 23}},
		{"order", "3×(20-1)", []Token{Literal, Mul, LParen, Literal, Sub, Literal, RParen}, []float64{3, 20, 1}},
		{"split", "1 2", []Token{Literal}, []float64{12}},
		{"none", "X+π", []Token{X, Add, Pi}, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, lits, err := AssembleLiterals(keys(t, c.src))
			if err != nil {
				t.Fatalf("%q gave error %v", c.src, err)
			}
			if !reflect.DeepEqual(toks, c.tokens) {
				t.Errorf("%q gave wrong tokens: want %v, got %v", c.src, c.tokens, toks)
			}
			if !reflect.DeepEqual(lits, c.lits) {
				t.Errorf("%q gave wrong literals: want %v, got %v", c.src, c.lits, lits)
			}
		})
	}
}

func TestAssembleLiteralsError(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		index int
	}{
		{"double", "1..2", 2},
		{"twice", "1.2.3", 3},
		{"later", "4+.5.", 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := AssembleLiterals(keys(t, c.src))
			var le *LiteralError
			if !errors.As(err, &le) {
				t.Fatalf("%q: want *LiteralError, got %#v", c.src, err)
			}
			if le.Pos() != c.index {
				t.Errorf("%q: want error at %d, got %d", c.src, c.index, le.Pos())
			}
		})
	}
}

func TestBalance(t *testing.T) {
	cases := []struct {
		name string
		in   []Token
		out  []Token
	}{
		{"none", []Token{Num1}, []Token{Num1}},
		{"closed", []Token{LParen, Num1, RParen}, []Token{LParen, Num1, RParen}},
		{"one", []Token{LParen, Num1, Add, Num2}, []Token{LParen, Num1, Add, Num2, RParen}},
		{"two", []Token{Sin, LParen, LParen, Num1}, []Token{Sin, LParen, LParen, Num1, RParen, RParen}},
		{"inner", []Token{LParen, LParen, Num1, RParen}, []Token{LParen, LParen, Num1, RParen, RParen}},
		{"extra-close", []Token{Num1, RParen, LParen, Num2}, []Token{Num1, RParen, LParen, Num2}},
		{"net", []Token{LParen, LParen, Num1, RParen, RParen, RParen, LParen, LParen}, []Token{LParen, LParen, Num1, RParen, RParen, RParen, LParen, LParen, RParen}},
		{"only-close", []Token{RParen, RParen}, []Token{RParen, RParen}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := append([]Token(nil), c.in...)
			out := Balance(in)
			if !reflect.DeepEqual(out, c.out) {
				t.Errorf("want %v, got %v", c.out, out)
			}
			if !reflect.DeepEqual(in, c.in) {
				t.Errorf("input modified: was %v, now %v", c.in, in)
			}
		})
	}
}

func TestPostfix(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"num", "12", "12"},
		{"add", "1+2", "1 2 +"},
		{"prec", "2+3×4", "2 3 4 × +"},
		{"prec-desc", "2×3+4", "2 3 × 4 +"},
		{"sub-left", "5-2-1", "5 2 - 1 -"},
		{"div-left", "8/4/2", "8 4 ÷ 2 ÷"},
		{"pow-right", "2^3^2", "2 3 2 ^ ^"},
		{"paren", "(1+2)×3", "1 2 + 3 ×"},
		{"balance", "(1+2", "1 2 +"},
		{"balance-nested", "2×(3+(4", "2 3 4 + ×"},
		{"func", "sin(0)", "0 sin"},
		{"func-expr", "sin(1+2)×3", "1 2 + sin 3 ×"},
		{"func-nested", "√(ln(e))", "e ln √"},
		{"func-pow", "sin(X)^2", "X sin 2 ^"},
		{"func-bare", "sin 0+1", "0 sin 1 +"},
		{"rel", "1+2=3", "1 2 + 3 ="},
		{"neg", "~2", "2 (-)"},
		{"neg-pow", "~2^2", "2 2 ^ (-)"},
		{"neg-mul", "~2×3", "2 (-) 3 ×"},
		{"pow-neg", "2^~1", "2 1 (-) ^"},
		{"square", "2+3²", "2 3 ² +"},
		{"square-group", "(1+2)²", "1 2 + ²"},
		{"fact", "3!×2", "3 ! 2 ×"},
		{"implicit-pi", "2π", "2 π ·"},
		{"implicit-paren", "2(3)", "2 3 ·"},
		{"implicit-x", "3X²", "3 X ² ·"},
		{"implicit-func", "2sin(0)", "2 0 sin ·"},
		{"implicit-groups", "(1)(2)", "1 2 ·"},
		{"implicit-matrix", "2[A]", "2 [A] ·"},
		{"implicit-div", "6÷2X", "6 2 X · ÷"},
		{"implicit-div-pi", "1÷2π", "1 2 π · ÷"},
		{"implicit-pow", "2X^2", "2 X 2 ^ ·"},
		{"implicit-left", "2X3", "2 X · 3 ·"},
		{"implicit-neg", "~2X", "2 (-) X ·"},
		{"stray-close", "1)+(2", "1 2 +"},
		{"comma", "(1,2)", "1 2"},
		{"empty", "", ""},
		{"parens", "()", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := Compile(keys(t, c.src))
			if err != nil {
				t.Fatalf("%q failed to compile: %v", c.src, err)
			}
			if got := e.String(); got != c.want {
				t.Errorf("%q gave wrong postfix:\n\twant %q\n\tgot  %q", c.src, c.want, got)
			}
		})
	}
}

func TestToPostfixTotal(t *testing.T) {
	// Nothing in the token set makes conversion fail.
	var all []Token
	for k := None; k < ntokens; k++ {
		all = append(all, k)
	}
	for i := range all {
		ToPostfix(all[i:])
		ToPostfix(all[:i])
	}
	if got := ToPostfix([]Token{RParen, Add, RParen}); !reflect.DeepEqual(got, []Token{Add}) {
		t.Errorf("stray parentheses: want [+], got %v", got)
	}
	if got := ToPostfix([]Token{LParen, LParen, Num1}); !reflect.DeepEqual(got, []Token{Num1}) {
		t.Errorf("unclosed parentheses: want [1], got %v", got)
	}
}

func TestExprAccessors(t *testing.T) {
	e, err := Compile(keys(t, "[B]X+2.5[A]+[B]"))
	if err != nil {
		t.Fatal(err)
	}
	if !e.UsesX() {
		t.Error("expression should use X")
	}
	if got, want := e.Matrices(), []Token{MatA, MatB}; !reflect.DeepEqual(got, want) {
		t.Errorf("wrong matrices: want %v, got %v", want, got)
	}
	if got, want := e.Literals(), []float64{2.5}; !reflect.DeepEqual(got, want) {
		t.Errorf("wrong literals: want %v, got %v", want, got)
	}
	p := e.Postfix()
	p[0] = None
	if e.postfix[0] == None {
		t.Error("Postfix returned the expression's own slice")
	}
	f, err := Compile(keys(t, "1+2"))
	if err != nil {
		t.Fatal(err)
	}
	if f.UsesX() || f.Matrices() != nil {
		t.Errorf("1+2 should use neither X nor matrices")
	}
}

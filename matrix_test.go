package eos_test

import (
	"errors"
	"math"
	"testing"

	"github.com/zephyrtronium/eos"
)

func mat(t *testing.T, rows, cols int, data ...float64) *eos.Matrix {
	t.Helper()
	m, err := eos.NewMatrix(rows, cols, data)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestNewMatrix(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	m, err := eos.NewMatrix(2, 3, data)
	if err != nil {
		t.Fatal(err)
	}
	data[5] = 0
	if m.At(1, 2) != 6 {
		t.Error("NewMatrix kept caller's slice")
	}
	if m.String() != "[[1 2 3][4 5 6]]" || m.Dims() != "2×3" {
		t.Errorf("wrong formatting %s %s", m, m.Dims())
	}
	var se *eos.ShapeError
	if _, err := eos.NewMatrix(2, 2, data); !errors.As(err, &se) {
		t.Errorf("want *ShapeError, got %#v", err)
	}
}

func TestMatrixArith(t *testing.T) {
	a := mat(t, 2, 2, 1, 2, 3, 4)
	b := mat(t, 2, 2, 5, 6, 7, 8)
	c := mat(t, 2, 3, 1, 2, 3, 4, 5, 6)

	if r, ok := a.Add(b); !ok || !r.Equal(mat(t, 2, 2, 6, 8, 10, 12)) {
		t.Errorf("A+B: got %v", r)
	}
	if _, ok := a.Add(c); ok {
		t.Error("A+C should fail")
	}
	if r, ok := a.Mul(b); !ok || !r.Equal(mat(t, 2, 2, 19, 22, 43, 50)) {
		t.Errorf("A×B: got %v", r)
	}
	if r, ok := b.Mul(a); !ok || !r.Equal(mat(t, 2, 2, 23, 34, 31, 46)) {
		t.Errorf("B×A: got %v", r)
	}
	if r, ok := a.Mul(c); !ok || !r.Equal(mat(t, 2, 3, 9, 12, 15, 19, 26, 33)) {
		t.Errorf("A×C: got %v", r)
	}
	if _, ok := c.Mul(a); ok {
		t.Error("C×A should fail")
	}
	if r := c.Scale(-2); !r.Equal(mat(t, 2, 3, -2, -4, -6, -8, -10, -12)) {
		t.Errorf("-2C: got %v", r)
	}
	if !a.Equal(mat(t, 2, 2, 1, 2, 3, 4)) {
		t.Errorf("operand modified: %v", a)
	}
}

func TestMatrixInverse(t *testing.T) {
	cases := []struct {
		name string
		m    *eos.Matrix
		want []float64
	}{
		{"2x2", mat(t, 2, 2, 1, 2, 3, 4), []float64{-2, 1, 1.5, -0.5}},
		{"1x1", mat(t, 1, 1, 4), []float64{0.25}},
		{"pivot", mat(t, 2, 2, 0, 1, 1, 0), []float64{0, 1, 1, 0}},
		{"3x3", mat(t, 3, 3, 2, 0, 0, 0, 4, 0, 0, 0, 8), []float64{0.5, 0, 0, 0, 0.25, 0, 0, 0, 0.125}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, ok := c.m.Inverse()
			if !ok {
				t.Fatalf("%v reported singular", c.m)
			}
			for i, v := range r.Data() {
				if math.Abs(v-c.want[i]) > 1e-12 {
					t.Fatalf("want %v, got %v", c.want, r.Data())
				}
			}
		})
	}
	if _, ok := mat(t, 2, 2, 1, 2, 2, 4).Inverse(); ok {
		t.Error("singular matrix inverted")
	}
	if _, ok := mat(t, 2, 3, 1, 2, 3, 4, 5, 6).Inverse(); ok {
		t.Error("non-square matrix inverted")
	}
}

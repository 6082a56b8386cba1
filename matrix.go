package eos

import (
	"math"
	"strconv"
	"strings"
)

// Matrix is a dense matrix of float64 stored in row-major order. Matrices are
// values: every operation returns a new Matrix and leaves its operands alone.
type Matrix struct {
	rows, cols int
	data       []float64
}

// NewMatrix creates a rows×cols matrix from row-major data. The data is
// copied. The result is a *ShapeError if either dimension is not positive or
// if len(data) != rows*cols.
func NewMatrix(rows, cols int, data []float64) (*Matrix, error) {
	if rows <= 0 || cols <= 0 || len(data) != rows*cols {
		return nil, &ShapeError{Rows: rows, Cols: cols, Len: len(data)}
	}
	return &Matrix{rows: rows, cols: cols, data: append([]float64(nil), data...)}, nil
}

// zeros creates a zero matrix of the given size.
func zeros(rows, cols int) *Matrix {
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// Rows returns the number of rows in m.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns in m.
func (m *Matrix) Cols() int { return m.cols }

// At returns the element at row r and column c, both zero-based.
func (m *Matrix) At(r, c int) float64 {
	return m.data[r*m.cols+c]
}

// Data returns a copy of the elements of m in row-major order.
func (m *Matrix) Data() []float64 {
	return append([]float64(nil), m.data...)
}

// Clone returns an independent copy of m.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{rows: m.rows, cols: m.cols, data: append([]float64(nil), m.data...)}
}

// SameShape returns whether m and n have the same dimensions.
func (m *Matrix) SameShape(n *Matrix) bool {
	return m.rows == n.rows && m.cols == n.cols
}

// Add returns the element-wise sum of m and n. ok is false if the matrices
// have different shapes.
func (m *Matrix) Add(n *Matrix) (r *Matrix, ok bool) {
	if !m.SameShape(n) {
		return nil, false
	}
	r = zeros(m.rows, m.cols)
	for i := range r.data {
		r.data[i] = m.data[i] + n.data[i]
	}
	return r, true
}

// Mul returns the matrix product m×n. ok is false if the number of columns of
// m differs from the number of rows of n.
func (m *Matrix) Mul(n *Matrix) (r *Matrix, ok bool) {
	if m.cols != n.rows {
		return nil, false
	}
	r = zeros(m.rows, n.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < n.cols; j++ {
			var s float64
			for k := 0; k < m.cols; k++ {
				s += m.At(i, k) * n.At(k, j)
			}
			r.data[i*r.cols+j] = s
		}
	}
	return r, true
}

// Scale returns m with every element multiplied by k.
func (m *Matrix) Scale(k float64) *Matrix {
	r := zeros(m.rows, m.cols)
	for i, v := range m.data {
		r.data[i] = v * k
	}
	return r
}

// Square returns whether m has as many rows as columns.
func (m *Matrix) Square() bool {
	return m.rows == m.cols
}

// Inverse returns the inverse of a square matrix by Gauss-Jordan elimination
// with partial pivoting. ok is false if m is not square or is singular to
// within 1e-12.
func (m *Matrix) Inverse() (r *Matrix, ok bool) {
	if !m.Square() {
		return nil, false
	}
	n := m.rows
	a := m.Clone()
	r = zeros(n, n)
	for i := 0; i < n; i++ {
		r.data[i*n+i] = 1
	}
	for c := 0; c < n; c++ {
		p := c
		for i := c + 1; i < n; i++ {
			if math.Abs(a.At(i, c)) > math.Abs(a.At(p, c)) {
				p = i
			}
		}
		if math.Abs(a.At(p, c)) < 1e-12 {
			return nil, false
		}
		a.swapRows(p, c)
		r.swapRows(p, c)
		d := a.At(c, c)
		for j := 0; j < n; j++ {
			a.data[c*n+j] /= d
			r.data[c*n+j] /= d
		}
		for i := 0; i < n; i++ {
			if i == c {
				continue
			}
			f := a.At(i, c)
			if f == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				a.data[i*n+j] -= f * a.data[c*n+j]
				r.data[i*n+j] -= f * r.data[c*n+j]
			}
		}
	}
	return r, true
}

func (m *Matrix) swapRows(i, j int) {
	if i == j {
		return
	}
	ri := m.data[i*m.cols : (i+1)*m.cols]
	rj := m.data[j*m.cols : (j+1)*m.cols]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

// Equal returns whether m and n have the same shape and elements.
func (m *Matrix) Equal(n *Matrix) bool {
	if !m.SameShape(n) {
		return false
	}
	for i, v := range m.data {
		if n.data[i] != v {
			return false
		}
	}
	return true
}

// Dims formats the dimensions of m as rows×cols.
func (m *Matrix) Dims() string {
	return strconv.Itoa(m.rows) + "×" + strconv.Itoa(m.cols)
}

// String formats m in calculator style, e.g. [[1 2][3 4]].
func (m *Matrix) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < m.rows; i++ {
		b.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatFloat(m.At(i, j), 'g', -1, 64))
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')
	return b.String()
}

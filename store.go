package eos

import (
	"strconv"
	"sync"
)

// Store holds the matrices assigned to the ten named slots. A slot with no
// matrix is undefined; there is no default value. A Store is safe for
// concurrent use. The zero value is an empty store ready to use.
type Store struct {
	mu sync.RWMutex
	m  [len(slots)]*Matrix
}

// NewStore creates an empty matrix store.
func NewStore() *Store {
	return new(Store)
}

// Update assigns a rows×cols matrix built from row-major vals to slot,
// replacing any previous matrix there. vals is copied. The error is a
// *SlotError if slot is not a matrix token or a *ShapeError if the shape is
// invalid or does not match len(vals); in either case the store is unchanged.
func (s *Store) Update(slot Token, rows, cols int, vals []float64) error {
	if !slot.IsMatrix() {
		return &SlotError{Slot: slot}
	}
	m, err := NewMatrix(rows, cols, vals)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.m[slot-MatA] = m
	s.mu.Unlock()
	return nil
}

// Set assigns a copy of m to slot. A nil m is a *ShapeError.
func (s *Store) Set(slot Token, m *Matrix) error {
	if m == nil {
		return &ShapeError{}
	}
	return s.Update(slot, m.rows, m.cols, m.data)
}

// Lookup returns a copy of the matrix in slot. ok is false if the slot is
// undefined or slot is not a matrix token.
func (s *Store) Lookup(slot Token) (m *Matrix, ok bool) {
	if !slot.IsMatrix() {
		return nil, false
	}
	s.mu.RLock()
	m = s.m[slot-MatA]
	s.mu.RUnlock()
	if m == nil {
		return nil, false
	}
	// Stored matrices are never modified in place, but callers own what
	// Lookup returns.
	return m.Clone(), true
}

// Defined returns the slots that hold a matrix, in slot order.
func (s *Store) Defined() []Token {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var r []Token
	for i, m := range s.m {
		if m != nil {
			r = append(r, slots[i])
		}
	}
	return r
}

// SlotError is an error indicating a matrix update for a token that is not a
// matrix slot.
type SlotError struct {
	// Slot is the token that was used as a slot.
	Slot Token
}

func (err *SlotError) Error() string {
	return "not a matrix slot: " + strconv.Quote(err.Slot.String())
}

func (err *SlotError) Kind() string {
	return KindStore
}

// ShapeError is an error indicating matrix dimensions that are not positive
// or that do not match the number of values supplied.
type ShapeError struct {
	Rows, Cols int
	// Len is the number of values supplied.
	Len int
}

func (err *ShapeError) Error() string {
	return "invalid matrix shape " + strconv.Itoa(err.Rows) + "×" + strconv.Itoa(err.Cols) +
		" for " + strconv.Itoa(err.Len) + " values"
}

func (err *ShapeError) Kind() string {
	return KindStore
}

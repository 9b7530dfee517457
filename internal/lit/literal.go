// Package lit defines the literal type and the literal-indexed array used
// throughout the checker.
package lit

import "fmt"

// Literal is a nonzero signed integer identifying a boolean variable and its
// polarity. The variable is abs(l); the polarity is the sign.
type Literal int32

// FromInt converts a DIMACS-style signed integer (as found in CNF and DRAT
// text) into a Literal. It panics if given 0, since 0 is reserved as a
// terminator in the external text formats and never denotes a literal.
func FromInt(v int) Literal {
	if v == 0 {
		panic("lit: 0 is not a valid literal")
	}
	return Literal(v)
}

// Var returns the variable identifier of l, always a positive integer.
func (l Literal) Var() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// IsPositive reports whether l is the positive occurrence of its variable.
func (l Literal) IsPositive() bool {
	return l > 0
}

// Negate returns the opposite literal.
func (l Literal) Negate() Literal {
	return -l
}

func (l Literal) String() string {
	return fmt.Sprintf("%d", int(l))
}

// index returns the position of l within a LiteralMap sized for maxVar, per
// the packing index(l) = |l| if l>0 else |l|+maxVar.
func index(l Literal, maxVar int) int {
	v := l.Var()
	if l > 0 {
		return v
	}
	return v + maxVar
}

// LiteralMap is a dense, literal-indexed array. It never hashes: every
// literal in the universe [1, maxVar] (and its negation) maps to a unique,
// precomputed slot.
type LiteralMap[T any] struct {
	maxVar int
	data   []T
}

// NewLiteralMap allocates a LiteralMap able to index every literal over
// variables 1..maxVar in both polarities.
func NewLiteralMap[T any](maxVar int) LiteralMap[T] {
	return LiteralMap[T]{
		maxVar: maxVar,
		data:   make([]T, 2*maxVar+1),
	}
}

// MaxVar returns the variable capacity the map was constructed with.
func (m *LiteralMap[T]) MaxVar() int {
	return m.maxVar
}

// Get returns the value stored for l.
func (m *LiteralMap[T]) Get(l Literal) T {
	return m.data[index(l, m.maxVar)]
}

// Set stores v for l.
func (m *LiteralMap[T]) Set(l Literal, v T) {
	m.data[index(l, m.maxVar)] = v
}

// Ptr returns a pointer to the slot for l, allowing in-place mutation
// without a Get/Set round trip (used by the propagator's watchlists).
func (m *LiteralMap[T]) Ptr(l Literal) *T {
	return &m.data[index(l, m.maxVar)]
}

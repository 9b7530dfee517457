// Package clausedb implements the append-only clause arena shared by the
// formula and every lemma of the proof, plus the active-set view layered on
// top of it.
package clausedb

import (
	"fmt"

	"github.com/cbpark/dratcheck/internal/lit"
)

// Handle is a stable, dense reference to a clause stored in a DB. Handles are
// never reused and remain valid for the lifetime of the DB that issued them.
type Handle int32

// DB is the clause arena: a single flat literal buffer sliced into
// per-clause ranges. Once a clause is added its range never moves; the only
// mutation permitted on a clause's literals after insertion is swapping two
// of its existing positions in place (used by the propagator to install a
// new watch).
type DB struct {
	maxVar   int
	literals []lit.Literal
	starts   []int32
	ends     []int32
	frozen   bool
}

// NewDB creates an empty arena with a declared variable capacity. maxVar
// must be the true maximum variable across the combined formula and proof,
// computed up front by the preprocessor; Add panics if given a literal
// outside [1, maxVar].
func NewDB(maxVar int) *DB {
	return &DB{maxVar: maxVar}
}

// MaxVar returns the arena's declared variable capacity.
func (db *DB) MaxVar() int {
	return db.maxVar
}

// NumClauses returns the number of clauses ever added to the arena.
func (db *DB) NumClauses() int {
	return len(db.starts)
}

// Add appends a new clause to the arena and returns its handle. The literal
// slice is copied; the caller's slice may be reused afterwards.
func (db *DB) Add(lits []lit.Literal) Handle {
	if db.frozen {
		panic("clausedb: Add called on a frozen DB")
	}
	for _, l := range lits {
		if l.Var() > db.maxVar {
			panic(fmt.Sprintf("clausedb: literal %v exceeds declared maxVar %d", l, db.maxVar))
		}
	}
	start := int32(len(db.literals))
	db.literals = append(db.literals, lits...)
	end := int32(len(db.literals))
	db.starts = append(db.starts, start)
	db.ends = append(db.ends, end)
	return Handle(len(db.starts) - 1)
}

// Freeze marks the arena read-only for structural changes (no further Add).
// In-place literal swaps remain legal afterwards. Freeze is idempotent.
func (db *DB) Freeze() {
	db.frozen = true
}

// Literals returns the literal slice backing h. The returned slice aliases
// the arena's internal buffer: callers must not retain it across calls that
// add new clauses (which may grow/reallocate the backing array), and must
// only mutate it through SwapInWatch.
func (db *DB) Literals(h Handle) []lit.Literal {
	return db.literals[db.starts[h]:db.ends[h]]
}

// Len returns the number of literals in clause h.
func (db *DB) Len(h Handle) int {
	return int(db.ends[h] - db.starts[h])
}

// IsEmpty reports whether h has zero literals.
func (db *DB) IsEmpty(h Handle) bool {
	return db.Len(h) == 0
}

// IsUnit reports whether h has exactly one literal, returning it.
func (db *DB) IsUnit(h Handle) (lit.Literal, bool) {
	if db.Len(h) != 1 {
		return 0, false
	}
	return db.literals[db.starts[h]], true
}

// WatchedPair returns the two watched literals (positions 0 and 1) of a
// clause with at least two literals. It panics if h has fewer than two.
func (db *DB) WatchedPair(h Handle) (lit.Literal, lit.Literal) {
	s := db.Literals(h)
	if len(s) < 2 {
		panic("clausedb: WatchedPair called on a clause with fewer than 2 literals")
	}
	return s[0], s[1]
}

// SwapInWatch swaps the literal currently at watchedPos (0 or 1) with the
// one at otherPos (>= 2) within clause h, installing a new watched literal.
func (db *DB) SwapInWatch(h Handle, watchedPos, otherPos int) {
	s := db.Literals(h)
	s[watchedPos], s[otherPos] = s[otherPos], s[watchedPos]
}

// String renders a clause in DIMACS-like form, used by log messages.
func (db *DB) String(h Handle) string {
	s := db.Literals(h)
	if len(s) == 0 {
		return "()"
	}
	out := fmt.Sprintf("(%v", s[0])
	for _, l := range s[1:] {
		out += fmt.Sprintf(" %v", l)
	}
	return out + ")"
}

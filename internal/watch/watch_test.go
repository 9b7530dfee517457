package watch

import (
	"testing"

	"github.com/cbpark/dratcheck/internal/assign"
	"github.com/cbpark/dratcheck/internal/clausedb"
	"github.com/cbpark/dratcheck/internal/lit"
)

func lits(vs ...int) []lit.Literal {
	out := make([]lit.Literal, len(vs))
	for i, v := range vs {
		out[i] = lit.FromInt(v)
	}
	return out
}

// buildSimple encodes the unsatisfiable formula (1 2), (-1 2), (1 -2), (-1 -2).
func buildSimple() (*clausedb.DB, *clausedb.View, *assign.Assignment) {
	db := clausedb.NewDB(2)
	hs := []clausedb.Handle{
		db.Add(lits(1, 2)),
		db.Add(lits(-1, 2)),
		db.Add(lits(1, -2)),
		db.Add(lits(-1, -2)),
	}
	db.Freeze()
	v := clausedb.NewView(db)
	for _, h := range hs {
		v.Activate(h)
	}
	return db, v, assign.New(2)
}

func TestPropagateFindsConflict(t *testing.T) {
	db, v, a := buildSimple()
	p := New(db, v)

	a.TryAssign(lit.FromInt(1))
	a.TryAssign(lit.FromInt(2))

	c := p.Propagate(a)
	if c == nil {
		t.Fatalf("expected conflict propagating 1 and 2 assigned true against (-1 -2)")
	}
}

func TestPropagateUnitChain(t *testing.T) {
	// (1), (-1 2), (-2 3): assigning nothing initially, propagate the unit
	// should cascade: 1 -> then -1 false forces 2 true -> then -2 false forces 3 true.
	db := clausedb.NewDB(3)
	unit := db.Add(lits(1))
	c2 := db.Add(lits(-1, 2))
	c3 := db.Add(lits(-2, 3))
	db.Freeze()

	v := clausedb.NewView(db)
	v.Activate(unit)
	v.Activate(c2)
	v.Activate(c3)

	a := assign.New(3)
	if c := PropagateInitialUnits(db, v, a); c != nil {
		t.Fatalf("unexpected conflict on initial units: %v", c)
	}
	p := New(db, v)

	if conflict := p.Propagate(a); conflict != nil {
		t.Fatalf("unexpected conflict: %v", conflict)
	}
	if !a.IsTrue(lit.FromInt(2)) {
		t.Fatalf("expected literal 2 to be forced true")
	}
	if !a.IsTrue(lit.FromInt(3)) {
		t.Fatalf("expected literal 3 to be forced true")
	}
}

func TestPropagateIgnoresInactiveClauses(t *testing.T) {
	db := clausedb.NewDB(2)
	unit := db.Add(lits(1))
	c2 := db.Add(lits(-1, 2))
	db.Freeze()

	v := clausedb.NewView(db)
	v.Activate(unit)
	// c2 intentionally left inactive.

	a := assign.New(2)
	PropagateInitialUnits(db, v, a)
	p := New(db, v)
	if conflict := p.Propagate(a); conflict != nil {
		t.Fatalf("unexpected conflict: %v", conflict)
	}
	if a.IsTrue(lit.FromInt(2)) || a.IsFalse(lit.FromInt(2)) {
		t.Fatalf("literal 2 should remain unassigned since c2 is inactive")
	}
	_ = c2
}

func TestAddClauseMidCheck(t *testing.T) {
	// The clause arena is built in full before freezing (the preprocessor's
	// job); a mid-check "addition" only activates an already-interned
	// handle and registers it with the propagator.
	db := clausedb.NewDB(3)
	h := db.Add(lits(3, 1))
	db.Freeze()
	v := clausedb.NewView(db)
	p := New(db, v)

	a := assign.New(3)
	a.TryAssign(lit.FromInt(-3))

	v.Activate(h)
	p.AddClause(h)

	if conflict := p.Propagate(a); conflict != nil {
		t.Fatalf("unexpected conflict: %v", conflict)
	}
	if !a.IsTrue(lit.FromInt(1)) {
		t.Fatalf("expected literal 1 to be forced true via the newly added clause")
	}
}

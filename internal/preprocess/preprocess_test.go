package preprocess

import (
	"testing"

	"github.com/cbpark/dratcheck/internal/lit"
)

func lits(vs ...int) []lit.Literal {
	out := make([]lit.Literal, len(vs))
	for i, v := range vs {
		out[i] = lit.FromInt(v)
	}
	return out
}

func TestMaxVar(t *testing.T) {
	formula := [][]lit.Literal{lits(1, 2), lits(-3)}
	proof := []RawStep{{Literals: lits(4, -1)}}
	if got := MaxVar(formula, proof); got != 4 {
		t.Fatalf("MaxVar = %d, want 4", got)
	}
}

func TestBuildElidesDuplicateAddition(t *testing.T) {
	formula := [][]lit.Literal{lits(1, 2), lits(-1, 2)}
	proof := []RawStep{
		{Literals: lits(2)},
		{Literals: lits(2)}, // duplicate addition, must be elided
		{Literals: lits()},  // empty clause
	}

	_, _, script := Build(formula, proof, false, nil)

	// Only the first addition of {2} and the empty clause should survive;
	// the duplicate {2} is elided.
	if len(script) != 2 {
		t.Fatalf("script length = %d, want 2 (got %+v)", len(script), script)
	}
	if script[0].Del {
		t.Fatalf("first surviving step should be an addition")
	}
}

func TestBuildElidesDeletionOfAbsentClause(t *testing.T) {
	formula := [][]lit.Literal{lits(1, 2)}
	proof := []RawStep{
		{Del: true, Literals: lits(3, 4)}, // never added, must be elided
	}

	_, _, script := Build(formula, proof, false, nil)
	if len(script) != 0 {
		t.Fatalf("script length = %d, want 0", len(script))
	}
}

func TestBuildElidesDuplicateDeletion(t *testing.T) {
	formula := [][]lit.Literal{lits(1, 2)}
	proof := []RawStep{
		{Literals: lits(1, 2)},            // re-add, duplicate of formula clause, elided
		{Del: true, Literals: lits(1, 2)}, // count 2 -> 1, duplicate deletion, elided
		{Del: true, Literals: lits(1, 2)}, // count 1 -> 0, kept
	}

	_, _, script := Build(formula, proof, false, nil)
	if len(script) != 1 {
		t.Fatalf("script length = %d, want 1 (the single surviving deletion)", len(script))
	}
	if !script[0].Del {
		t.Fatalf("surviving step should be a deletion")
	}
}

func TestBuildIgnoreDeletionsFlag(t *testing.T) {
	formula := [][]lit.Literal{lits(1, 2)}
	proof := []RawStep{
		{Del: true, Literals: lits(1, 2)},
		{Literals: lits(3)},
	}

	_, _, script := Build(formula, proof, true, nil)
	for _, s := range script {
		if s.Del {
			t.Fatalf("expected all deletions to be filtered out by IgnoreDeletions")
		}
	}
}

func TestBuildDedupesIdenticalClauseRegardlessOfOrder(t *testing.T) {
	formula := [][]lit.Literal{lits(1, 2, 3)}
	proof := []RawStep{
		{Literals: lits(3, 2, 1)}, // same clause, different literal order
	}

	_, _, script := Build(formula, proof, false, nil)
	if len(script) != 0 {
		t.Fatalf("reordered duplicate should be elided, got script %+v", script)
	}
}

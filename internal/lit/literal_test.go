package lit

import "testing"

func TestLiteralBasics(t *testing.T) {
	p := FromInt(3)
	n := FromInt(-3)

	if p.Var() != 3 || n.Var() != 3 {
		t.Fatalf("Var() mismatch: p=%d n=%d", p.Var(), n.Var())
	}
	if !p.IsPositive() || n.IsPositive() {
		t.Fatalf("IsPositive() mismatch")
	}
	if p.Negate() != n || n.Negate() != p {
		t.Fatalf("Negate() mismatch")
	}
}

func TestFromIntPanicsOnZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on FromInt(0)")
		}
	}()
	FromInt(0)
}

func TestLiteralMapIndexing(t *testing.T) {
	const maxVar = 5
	m := NewLiteralMap[int](maxVar)

	for v := 1; v <= maxVar; v++ {
		m.Set(FromInt(v), v)
		m.Set(FromInt(-v), -v)
	}
	for v := 1; v <= maxVar; v++ {
		if got := m.Get(FromInt(v)); got != v {
			t.Errorf("Get(%d) = %d, want %d", v, got, v)
		}
		if got := m.Get(FromInt(-v)); got != -v {
			t.Errorf("Get(%d) = %d, want %d", -v, got, -v)
		}
	}
}

func TestLiteralMapPtr(t *testing.T) {
	m := NewLiteralMap[[]int](4)
	p := m.Ptr(FromInt(2))
	*p = append(*p, 1, 2, 3)
	if got := m.Get(FromInt(2)); len(got) != 3 {
		t.Fatalf("Ptr mutation not observed through Get: %v", got)
	}
}

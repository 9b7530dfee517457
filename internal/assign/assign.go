// Package assign implements the literal assignment and trail used during
// unit propagation, with O(1) membership checks and rollback whose cost is
// proportional to the number of literals undone.
package assign

import (
	"fmt"

	"github.com/cbpark/dratcheck/internal/lit"
)

// Conflict signals that a literal could not be assigned because its
// negation was already assigned. It is a dedicated type, not a generic
// error, so it cannot be silently dropped by code written for I/O errors.
type Conflict struct {
	CausedBy lit.Literal
}

func (c *Conflict) Error() string {
	return fmt.Sprintf("conflict on literal %v", c.CausedBy)
}

// Rollback is an opaque trail-length snapshot produced by RollbackPoint and
// consumed by Rollback.
type Rollback struct {
	len int
}

// Assignment tracks the current partial truth assignment as a trail of
// literals in assignment order, alongside a literal-indexed membership set
// for O(1) lookups.
type Assignment struct {
	set   lit.LiteralMap[bool]
	trail []lit.Literal
}

// New returns an empty Assignment sized for maxVar.
func New(maxVar int) *Assignment {
	return &Assignment{
		set: lit.NewLiteralMap[bool](maxVar),
	}
}

// IsTrue reports whether l is currently assigned true.
func (a *Assignment) IsTrue(l lit.Literal) bool {
	return a.set.Get(l)
}

// IsFalse reports whether the negation of l is currently assigned true.
func (a *Assignment) IsFalse(l lit.Literal) bool {
	return a.set.Get(l.Negate())
}

// IsUnassigned reports whether neither l nor its negation is assigned.
func (a *Assignment) IsUnassigned(l lit.Literal) bool {
	return !a.IsTrue(l) && !a.IsFalse(l)
}

// TryAssign attempts to assign l true. If -l is already assigned, it
// returns a Conflict and leaves the assignment unchanged. If l is already
// assigned, it is a no-op (added=false). Otherwise l is pushed to the trail.
func (a *Assignment) TryAssign(l lit.Literal) (added bool, conflict *Conflict) {
	if a.IsFalse(l) {
		return false, &Conflict{CausedBy: l}
	}
	if a.IsTrue(l) {
		return false, nil
	}
	a.set.Set(l, true)
	a.trail = append(a.trail, l)
	return true, nil
}

// RollbackPoint captures the current trail length.
func (a *Assignment) RollbackPoint() Rollback {
	return Rollback{len: len(a.trail)}
}

// Rollback undoes every assignment made since r was captured. It is a
// no-op if r is already the current rollback point, and is only legal for
// an r obtained from this Assignment at or before its current length.
func (a *Assignment) Rollback(r Rollback) {
	for i := len(a.trail) - 1; i >= r.len; i-- {
		a.set.Set(a.trail[i], false)
	}
	a.trail = a.trail[:r.len]
}

// Nth returns the i-th literal pushed to the trail.
func (a *Assignment) Nth(i int) lit.Literal {
	return a.trail[i]
}

// Len returns the number of literals currently on the trail.
func (a *Assignment) Len() int {
	return len(a.trail)
}

// IsSatisfied reports whether at least one literal in lits is currently
// assigned true.
func (a *Assignment) IsSatisfied(lits []lit.Literal) bool {
	for _, l := range lits {
		if a.IsTrue(l) {
			return true
		}
	}
	return false
}

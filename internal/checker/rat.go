package checker

import (
	"github.com/cbpark/dratcheck/internal/clausedb"
	"github.com/cbpark/dratcheck/internal/lit"
)

// hasRAT reports whether h is Resolution Asymmetric Tautology redundant:
// some literal of h (the pivot) resolves against every active clause
// containing its negation into a clause that itself has RUP.
func (d *Driver) hasRAT(h clausedb.Handle) bool {
	for _, p := range d.db.Literals(h) {
		if d.checkRATOnPivot(h, p) {
			return true
		}
	}
	return false
}

// checkRATOnPivot tries a single candidate pivot literal p of clause h.
func (d *Driver) checkRATOnPivot(h clausedb.Handle, p lit.Literal) bool {
	lits := d.db.Literals(h)
	negP := p.Negate()

	ok := true
	d.view.Active(func(other clausedb.Handle) bool {
		otherLits := d.db.Literals(other)
		if !containsLiteral(otherLits, negP) {
			return true
		}
		resolvent := resolve(lits, otherLits, p, negP)
		if !d.hasRUPLiterals(resolvent) {
			ok = false
			return false
		}
		return true
	})
	return ok
}

// resolve builds the resolvent of two clauses on pivot p (present in a) and
// its negation (present in b), merging duplicate literals.
func resolve(a, b []lit.Literal, p, negP lit.Literal) []lit.Literal {
	out := make([]lit.Literal, 0, len(a)+len(b)-2)
	seen := make(map[lit.Literal]bool, len(a)+len(b))
	for _, l := range a {
		if l == p || seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	for _, l := range b {
		if l == negP || seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}

func containsLiteral(lits []lit.Literal, target lit.Literal) bool {
	for _, l := range lits {
		if l == target {
			return true
		}
	}
	return false
}

// hasRUPLiterals runs the same RUP check as hasRUP but against an ad-hoc
// literal slice (a resolvent) rather than an interned clause handle.
func (d *Driver) hasRUPLiterals(lits []lit.Literal) bool {
	rollback := d.asg.RollbackPoint()
	defer d.asg.Rollback(rollback)

	for _, l := range lits {
		if _, conflict := d.asg.TryAssign(l.Negate()); conflict != nil {
			return true
		}
	}

	return d.prop.Propagate(d.asg) != nil
}

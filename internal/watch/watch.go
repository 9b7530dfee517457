// Package watch implements the two-watched-literal unit propagation engine
// that drives both RUP checking and post-addition propagation.
package watch

import (
	"github.com/cbpark/dratcheck/internal/assign"
	"github.com/cbpark/dratcheck/internal/clausedb"
	"github.com/cbpark/dratcheck/internal/lit"
)

// Propagator maintains, for each literal, the list of watchable clauses
// (length >= 2) currently watching that literal in one of their first two
// positions.
type Propagator struct {
	db        *clausedb.DB
	view      *clausedb.View
	watchlist lit.LiteralMap[[]clausedb.Handle]
}

// New builds a Propagator over every clause currently active in view.
// Unit and empty clauses are never registered: the caller is expected to
// have already assigned true units via PropagateInitialUnits.
func New(db *clausedb.DB, view *clausedb.View) *Propagator {
	p := &Propagator{
		db:        db,
		view:      view,
		watchlist: lit.NewLiteralMap[[]clausedb.Handle](db.MaxVar()),
	}
	view.Active(func(h clausedb.Handle) bool {
		if db.Len(h) >= 2 {
			p.AddClause(h)
		}
		return true
	})
	return p
}

// AddClause registers a newly-activated watchable clause (length >= 2) with
// the watchlists of its current first two literals. A clause re-activated
// after a deletion may still have stale entries from before; Propagate
// drops any entry whose clause no longer watches that literal.
func (p *Propagator) AddClause(h clausedb.Handle) {
	l0, l1 := p.db.WatchedPair(h)
	*p.watchlist.Ptr(l0) = append(*p.watchlist.Ptr(l0), h)
	*p.watchlist.Ptr(l1) = append(*p.watchlist.Ptr(l1), h)
}

// PropagateInitialUnits assigns every active unit clause true. It rolls
// back and returns a conflict the moment a contradiction is found, leaving
// the assignment exactly as it was on entry.
func PropagateInitialUnits(db *clausedb.DB, view *clausedb.View, a *assign.Assignment) *assign.Conflict {
	rollback := a.RollbackPoint()
	var conflict *assign.Conflict
	view.Active(func(h clausedb.Handle) bool {
		u, ok := db.IsUnit(h)
		if !ok {
			return true
		}
		if _, c := a.TryAssign(u); c != nil {
			conflict = c
			return false
		}
		return true
	})
	if conflict != nil {
		a.Rollback(rollback)
	}
	return conflict
}

// Propagate drains every consequence of the current trail through unit
// propagation. It always restarts its cursor at the beginning of the trail,
// so callers are free to invoke it after every assignment without tracking
// a persistent cursor themselves.
//
// On conflict, the in-flight watchlist for the literal being processed is
// restored before returning, but the assignment itself is left untouched:
// rolling it back is the caller's responsibility.
func (p *Propagator) Propagate(a *assign.Assignment) *assign.Conflict {
	cursor := 0
	for cursor < a.Len() {
		neg := a.Nth(cursor).Negate()
		cursor++

		ws := *p.watchlist.Ptr(neg)
		*p.watchlist.Ptr(neg) = ws[:0:0]

		i := 0
		for i < len(ws) {
			h := ws[i]

			if !p.view.IsActive(h) {
				ws = swapRemove(ws, i)
				continue
			}

			l0, l1 := p.db.WatchedPair(h)
			if l0 != neg && l1 != neg {
				// A duplicate entry left over from before a deletion whose
				// watch has already moved off neg: drop it.
				ws = swapRemove(ws, i)
				continue
			}
			other := l1
			if l0 != neg {
				other = l0
			}

			if a.IsTrue(other) {
				i++
				continue
			}

			if newLit, pos, ok := scanReplacement(p.db, h, a, l0, l1); ok {
				watchedPos := 1
				if l0 == neg {
					watchedPos = 0
				}
				p.db.SwapInWatch(h, watchedPos, pos)
				*p.watchlist.Ptr(newLit) = append(*p.watchlist.Ptr(newLit), h)
				ws = swapRemove(ws, i)
				continue
			}

			if _, conflict := a.TryAssign(other); conflict != nil {
				*p.watchlist.Ptr(neg) = ws
				return conflict
			}
			i++
		}
		*p.watchlist.Ptr(neg) = ws
	}
	return nil
}

// scanReplacement looks, among the literals of h past the first two watched
// slots, for one that is not currently falsified. It returns that literal,
// its position, and true on success.
func scanReplacement(db *clausedb.DB, h clausedb.Handle, a *assign.Assignment, l0, l1 lit.Literal) (lit.Literal, int, bool) {
	lits := db.Literals(h)
	for i := 2; i < len(lits); i++ {
		candidate := lits[i]
		if candidate == l0 || candidate == l1 {
			continue
		}
		if !a.IsFalse(candidate) {
			return candidate, i, true
		}
	}
	return 0, 0, false
}

func swapRemove(s []clausedb.Handle, i int) []clausedb.Handle {
	last := len(s) - 1
	s[i] = s[last]
	return s[:last]
}

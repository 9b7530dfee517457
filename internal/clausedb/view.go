package clausedb

// View tracks which clauses of a DB are currently members of the active
// formula. The arena itself never shrinks; deletion only flips a flag here.
type View struct {
	active []bool
}

// NewView returns a View sized for db with every clause initially inactive.
func NewView(db *DB) *View {
	return &View{active: make([]bool, db.NumClauses())}
}

// Grow extends the view to cover newly added clauses, defaulting them to
// inactive. Safe to call repeatedly as the arena grows during building.
func (v *View) Grow(db *DB) {
	for len(v.active) < db.NumClauses() {
		v.active = append(v.active, false)
	}
}

// Activate marks h as a member of the active formula.
func (v *View) Activate(h Handle) {
	v.active[h] = true
}

// Deactivate removes h from the active formula.
func (v *View) Deactivate(h Handle) {
	v.active[h] = false
}

// IsActive reports whether h is currently a member of the active formula.
func (v *View) IsActive(h Handle) bool {
	return v.active[h]
}

// Active iterates over every currently active clause handle, in handle
// order. Used by the RAT fallback's resolvent scan.
func (v *View) Active(yield func(Handle) bool) {
	for i, on := range v.active {
		if on {
			if !yield(Handle(i)) {
				return
			}
		}
	}
}

// Package checker implements the forward DRAT validation driver: given a
// frozen clause database, an initial active view, and a script of
// handle-tagged lemmas, it decides whether the proof is a valid refutation.
package checker

import (
	"github.com/hashicorp/go-hclog"

	"github.com/cbpark/dratcheck/internal/assign"
	"github.com/cbpark/dratcheck/internal/clausedb"
	"github.com/cbpark/dratcheck/internal/watch"
)

// Lemma is a single interned proof step: either the addition or the
// deletion of the clause identified by Handle.
type Lemma struct {
	Del    bool
	Handle clausedb.Handle
}

// Verdict is the outcome of checking a proof against a formula.
type Verdict int

const (
	// NoConflict means the proof was consumed in full without ever deriving
	// the empty clause or an outright conflict: the proof does not show a
	// refutation.
	NoConflict Verdict = iota
	// RefutationRefuted means some added lemma was neither RUP nor (when
	// enabled) RAT redundant: the proof is invalid.
	RefutationRefuted
	// RefutationVerified means the empty clause was derived and verified,
	// or propagation after some addition directly produced a conflict.
	RefutationVerified
	// EarlyRefutation means a conflict was found before or immediately
	// after committing a unit, strictly before the proof names the empty
	// clause explicitly. Every lemma up to that point has already been
	// accepted by construction of this driver, so it is treated by callers
	// as equivalent to RefutationVerified.
	EarlyRefutation
)

func (v Verdict) String() string {
	switch v {
	case NoConflict:
		return "NO_CONFLICT"
	case RefutationRefuted:
		return "REFUTATION_REFUTED"
	case RefutationVerified:
		return "REFUTATION_VERIFIED"
	case EarlyRefutation:
		return "EARLY_REFUTATION"
	default:
		return "UNKNOWN"
	}
}

// Verified reports whether v should be reported to the user as a successful
// verification (exit code 0, "s VERIFIED").
func (v Verdict) Verified() bool {
	return v == RefutationVerified || v == EarlyRefutation
}

// Flags configures optional checker behavior.
type Flags struct {
	// RupOnly disables the RAT fallback: a lemma that fails RUP is treated
	// as refuted outright.
	RupOnly bool
	// IgnoreDeletions is consumed by the preprocessor before the script
	// ever reaches the Driver; it is retained here for logging purposes.
	IgnoreDeletions bool
}

// Driver owns the mutable checking state: the clause arena, its active-set
// view, the assignment trail, and the watcher.
type Driver struct {
	db    *clausedb.DB
	view  *clausedb.View
	asg   *assign.Assignment
	prop  *watch.Propagator
	flags Flags
	log   hclog.Logger
}

// NewDriver constructs a Driver. db must already be frozen; view must have
// the formula's clauses (and only those) active.
func NewDriver(db *clausedb.DB, view *clausedb.View, flags Flags, log hclog.Logger) (*Driver, Verdict) {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	d := &Driver{
		db:    db,
		view:  view,
		asg:   assign.New(db.MaxVar()),
		flags: flags,
		log:   log,
	}
	d.log.Debug("driver flags", "rup_only", flags.RupOnly, "ignore_deletions", flags.IgnoreDeletions)

	if c := watch.PropagateInitialUnits(db, view, d.asg); c != nil {
		d.log.Debug("conflict while assigning initial true units", "literal", c.CausedBy)
		return d, EarlyRefutation
	}

	d.prop = watch.New(db, view)

	if c := d.prop.Propagate(d.asg); c != nil {
		d.log.Debug("conflict during pre-propagation", "literal", c.CausedBy)
		return d, EarlyRefutation
	}

	return d, NoConflict
}

// Check builds a Driver over db/view and runs it across script in one call,
// short-circuiting if a conflict was already found while bootstrapping the
// initial assignment (Scenario: a formula whose unit clauses directly
// conflict, with the empty clause never even needing to be reached).
func Check(db *clausedb.DB, view *clausedb.View, script []Lemma, flags Flags, log hclog.Logger) Verdict {
	d, verdict := NewDriver(db, view, flags, log)
	if verdict != NoConflict {
		return verdict
	}
	return d.Run(script)
}

// Run drives the checker across script, returning the final verdict.
func (d *Driver) Run(script []Lemma) Verdict {
	for step, lemma := range script {
		if verdict, done := d.Step(lemma, step); done {
			return verdict
		}
	}

	d.log.Error("proof consumed without a conflict")
	return NoConflict
}

// Step applies a single lemma of the script, identified by its position for
// logging purposes. done is true once the driver has reached a terminal
// verdict, at which point the caller must stop iterating.
func (d *Driver) Step(lemma Lemma, step int) (verdict Verdict, done bool) {
	if lemma.Del {
		d.view.Deactivate(lemma.Handle)
		d.log.Trace("deleted clause", "step", step, "clause", d.db.String(lemma.Handle))
		return NoConflict, false
	}
	return d.applyAdd(step, lemma.Handle)
}

// applyAdd checks and, if redundant, commits a single Add lemma. done is
// true when the driver has reached a terminal verdict.
func (d *Driver) applyAdd(step int, h clausedb.Handle) (verdict Verdict, done bool) {
	d.log.Debug("checking addition", "step", step, "clause", d.db.String(h))

	if !d.hasRUP(h) {
		if d.flags.RupOnly || !d.hasRAT(h) {
			d.log.Error("lemma is neither RUP nor RAT", "step", step, "clause", d.db.String(h))
			return RefutationRefuted, true
		}
	}

	wasActive := d.view.IsActive(h)
	d.view.Activate(h)

	if d.db.IsEmpty(h) {
		d.log.Debug("empty clause verified, refutation confirmed", "step", step)
		return RefutationVerified, true
	}

	if u, ok := d.db.IsUnit(h); ok {
		if _, conflict := d.asg.TryAssign(u); conflict != nil {
			d.log.Error("early refutation assigning unit from proof", "step", step, "literal", conflict.CausedBy)
			return EarlyRefutation, true
		}
	} else if !wasActive {
		d.prop.AddClause(h)
	}

	if c := d.prop.Propagate(d.asg); c != nil {
		d.log.Debug("conflict found during post-addition propagation", "step", step, "literal", c.CausedBy)
		return RefutationVerified, true
	}

	return NoConflict, false
}

// hasRUP reports whether h's negated literals, assumed as units, propagate
// to a conflict. The assignment is always restored to its prior state.
func (d *Driver) hasRUP(h clausedb.Handle) bool {
	rollback := d.asg.RollbackPoint()
	defer d.asg.Rollback(rollback)

	for _, l := range d.db.Literals(h) {
		if _, conflict := d.asg.TryAssign(l.Negate()); conflict != nil {
			return true
		}
	}

	return d.prop.Propagate(d.asg) != nil
}

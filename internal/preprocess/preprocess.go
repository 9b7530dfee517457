// Package preprocess interns the raw formula and proof into a single frozen
// clause arena, deduplicating identical clauses and eliding redundant proof
// steps according to an occurrence-count policy.
package preprocess

import (
	"sort"

	"github.com/hashicorp/go-hclog"

	"github.com/cbpark/dratcheck/internal/checker"
	"github.com/cbpark/dratcheck/internal/clausedb"
	"github.com/cbpark/dratcheck/internal/lit"
)

// RawStep is an un-interned proof step as produced by a DRAT parser.
type RawStep struct {
	Del     bool
	Literals []lit.Literal
}

// key is the sorted, deduplicated literal sequence of a clause: two clauses
// with the same key are considered identical regardless of input order or
// repeated literals.
type key string

func makeKey(lits []lit.Literal) key {
	sorted := append([]lit.Literal(nil), lits...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	// dedup adjacent repeats
	out := sorted[:0]
	for i, l := range sorted {
		if i == 0 || l != out[len(out)-1] {
			out = append(out, l)
		}
	}
	buf := make([]byte, 0, len(out)*5)
	for _, l := range out {
		buf = appendInt(buf, int(l))
		buf = append(buf, ',')
	}
	return key(buf)
}

func appendInt(buf []byte, v int) []byte {
	if v < 0 {
		buf = append(buf, '-')
		v = -v
	}
	if v == 0 {
		return append(buf, '0')
	}
	start := len(buf)
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	// reverse the digits just appended
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}

// Builder interns literal sets into a shared clausedb.DB, deduplicating
// identical clauses onto a single handle.
type Builder struct {
	db      *clausedb.DB
	byKey   map[key]clausedb.Handle
	counts  map[clausedb.Handle]int
	log     hclog.Logger
}

// NewBuilder returns a Builder targeting a freshly-created DB sized for
// maxVar, the true maximum variable across the combined formula and proof.
func NewBuilder(maxVar int, log hclog.Logger) *Builder {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Builder{
		db:     clausedb.NewDB(maxVar),
		byKey:  make(map[key]clausedb.Handle),
		counts: make(map[clausedb.Handle]int),
		log:    log,
	}
}

// intern returns the handle for lits, adding it to the arena on first sight.
func (b *Builder) intern(lits []lit.Literal) clausedb.Handle {
	k := makeKey(lits)
	if h, ok := b.byKey[k]; ok {
		return h
	}
	h := b.db.Add(lits)
	b.byKey[k] = h
	return h
}

// MaxVar scans a formula and a raw proof to determine the true maximum
// variable across both, as required to size the arena before any clause is
// added.
func MaxVar(formula [][]lit.Literal, proof []RawStep) int {
	max := 0
	scan := func(lits []lit.Literal) {
		for _, l := range lits {
			if v := l.Var(); v > max {
				max = v
			}
		}
	}
	for _, c := range formula {
		scan(c)
	}
	for _, s := range proof {
		scan(s.Literals)
	}
	return max
}

// Build interns the formula and proof, applies the deletion filter (if
// ignoreDeletions is set), elides redundant Add/Del steps per the
// occurrence-count policy, freezes the arena, and returns the resulting DB,
// the activation view seeded with the formula's clauses, and the surviving
// handle-tagged lemma script.
func Build(formula [][]lit.Literal, proof []RawStep, ignoreDeletions bool, log hclog.Logger) (*clausedb.DB, *clausedb.View, []checker.Lemma) {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	if ignoreDeletions {
		filtered := make([]RawStep, 0, len(proof))
		for _, s := range proof {
			if !s.Del {
				filtered = append(filtered, s)
			}
		}
		proof = filtered
	}

	maxVar := MaxVar(formula, proof)
	b := NewBuilder(maxVar, log)

	view := clausedb.NewView(b.db)
	for _, c := range formula {
		h := b.intern(c)
		view.Grow(b.db)
		view.Activate(h)
		b.counts[h]++
	}

	script := make([]checker.Lemma, 0, len(proof))
	for i, step := range proof {
		h := b.intern(step.Literals)
		view.Grow(b.db)

		if step.Del {
			if b.counts[h] < 1 {
				log.Warn("ignoring deletion of non-existing clause", "step", i)
				continue
			}
			b.counts[h]--
			if b.counts[h] == 0 {
				script = append(script, checker.Lemma{Del: true, Handle: h})
			} else {
				log.Warn("ignoring deletion of duplicate clause", "step", i)
			}
			continue
		}

		if b.counts[h] > 0 {
			log.Warn("ignoring addition of duplicate clause", "step", i)
			b.counts[h]++
			continue
		}
		b.counts[h]++
		script = append(script, checker.Lemma{Del: false, Handle: h})
	}

	b.db.Freeze()
	return b.db, view, script
}

// Package progress renders a terminal progress indicator over the proof's
// lemma count, as a small self-contained type rather than a dependency on an
// unexercised terminal progress-bar package.
package progress

import (
	"fmt"
	"io"
)

// Bar reports progress over a known total as a sequence of "c " prefixed
// status lines, matching the convention for informational output used
// elsewhere (DIMACS comment lines begin with "c").
type Bar struct {
	w       io.Writer
	total   int
	done    int
	step    int
	enabled bool
}

// New returns a Bar that reports to w. If enabled is false, every method is
// a no-op: this is how --progress is wired off by default.
func New(w io.Writer, total int, enabled bool) *Bar {
	step := total / 20
	if step == 0 {
		step = 1
	}
	return &Bar{w: w, total: total, step: step, enabled: enabled}
}

// Inc advances the bar by one unit, printing a status line every 5% of the
// total (or every step, for small totals).
func (b *Bar) Inc() {
	if !b.enabled {
		return
	}
	b.done++
	if b.done%b.step != 0 && b.done != b.total {
		return
	}
	pct := 100
	if b.total > 0 {
		pct = b.done * 100 / b.total
	}
	fmt.Fprintf(b.w, "c progress: %d/%d (%d%%)\n", b.done, b.total, pct)
}

// Finish prints a closing status line, regardless of the reporting cadence
// used by Inc. Like every method, it is a no-op on a disabled Bar.
func (b *Bar) Finish() {
	if !b.enabled {
		return
	}
	fmt.Fprintf(b.w, "c progress: %d/%d (100%%)\n", b.total, b.total)
}

// Package dratio implements a hand-rolled text parser for DRAT proofs. No
// maintained third-party Go library targets this narrow format.
package dratio

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cbpark/dratcheck/internal/lit"
)

// Step is a single raw (un-interned) proof step: either the addition or the
// deletion of a literal set.
type Step struct {
	Del      bool
	Literals []lit.Literal
}

func reader(filename string) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if strings.HasSuffix(filename, ".gz") {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// LoadDRAT parses a (optionally gzip-compressed) DRAT proof file into an
// ordered slice of Steps.
func LoadDRAT(filename string) ([]Step, error) {
	r, err := reader(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer r.Close()

	var steps []Step
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<24)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == 'c' {
			continue
		}

		del := false
		if strings.HasPrefix(line, "d") && (len(line) == 1 || line[1] == ' ' || line[1] == '\t') {
			del = true
			line = strings.TrimSpace(line[1:])
		}

		fields := strings.Fields(line)
		lits := make([]lit.Literal, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: invalid literal %q: %w", filename, lineNo, f, err)
			}
			if v == 0 {
				break // terminator
			}
			lits = append(lits, lit.FromInt(v))
		}

		steps = append(steps, Step{Del: del, Literals: lits})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning file %q: %w", filename, err)
	}

	return steps, nil
}

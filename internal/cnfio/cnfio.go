// Package cnfio loads DIMACS CNF formula files into literal-set slices
// ready for the preprocessor, wrapping the published github.com/rhartert/dimacs
// parser behind a small builder.
package cnfio

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rhartert/dimacs"

	"github.com/cbpark/dratcheck/internal/lit"
)

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

// LoadCNF parses a (optionally gzip-compressed) DIMACS CNF file and returns
// its clauses as literal-set slices, along with the declared variable
// count from the problem line.
func LoadCNF(filename string) (nVars int, clauses [][]lit.Literal, err error) {
	r, err := reader(filename)
	if err != nil {
		return 0, nil, fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer r.Close()

	b := &builder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return 0, nil, fmt.Errorf("error parsing CNF file %q: %w", filename, err)
	}
	if len(b.clauses) == 0 {
		return 0, nil, fmt.Errorf("formula %q contains no clauses", filename)
	}
	return b.nVars, b.clauses, nil
}

// builder implements dimacs.Builder, the interface expected by
// dimacs.ReadBuilder.
type builder struct {
	nVars   int
	clauses [][]lit.Literal
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("instance of type %q are not supported", problem)
	}
	b.nVars = nVars
	b.clauses = make([][]lit.Literal, 0, nClauses)
	return nil
}

func (b *builder) Clause(tmp []int) error {
	clause := make([]lit.Literal, len(tmp))
	for i, v := range tmp {
		clause[i] = lit.FromInt(v)
	}
	b.clauses = append(b.clauses, clause)
	return nil
}

func (b *builder) Comment(_ string) error {
	return nil
}

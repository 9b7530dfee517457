package cnfio

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/cbpark/dratcheck/internal/lit"
)

const sampleCNF = "c a trivial unsat instance\np cnf 2 4\n1 2 0\n1 -2 0\n-1 2 0\n-1 -2 0\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadCNF(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "test.cnf", sampleCNF)

	nVars, clauses, err := LoadCNF(path)
	if err != nil {
		t.Fatalf("LoadCNF: %v", err)
	}
	if nVars != 2 {
		t.Errorf("nVars = %d, want 2", nVars)
	}
	if len(clauses) != 4 {
		t.Fatalf("len(clauses) = %d, want 4", len(clauses))
	}
	want := lit.FromInt(1)
	if clauses[0][0] != want {
		t.Errorf("clauses[0][0] = %v, want %v", clauses[0][0], want)
	}
}

func TestLoadCNFGzipped(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.cnf.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	gw := gzip.NewWriter(f)
	if _, err := gw.Write([]byte(sampleCNF)); err != nil {
		t.Fatalf("gzip Write: %v", err)
	}
	gw.Close()
	f.Close()

	_, clauses, err := LoadCNF(path)
	if err != nil {
		t.Fatalf("LoadCNF (gzip): %v", err)
	}
	if len(clauses) != 4 {
		t.Fatalf("len(clauses) = %d, want 4", len(clauses))
	}
}

func TestLoadCNFRejectsEmptyFormula(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "empty.cnf", "p cnf 0 0\n")

	if _, _, err := LoadCNF(path); err == nil {
		t.Fatalf("expected error for an empty formula")
	}
}

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexslade/ash/core/schema"
)

const alphaYAML = `
schema: alpha
options:
  - name: name
    kind: symbol
    required: true
  - name: stamp
    kind: literal_or_deferred
    default: {call: now}
    match_defaults: true
`

const betaYAML = `
schema: beta
options:
  - name: enabled
    kind: bool
    default: false
`

func testCalls() schema.Callables {
	return schema.Callables{
		Zero: map[string]schema.Func0{
			"now": func() (any, error) { return 1, nil },
		},
	}
}

func writeDecl(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeDecl(t, dir, "alpha.yaml", alphaYAML)
	writeDecl(t, dir, "beta.yml", betaYAML)

	reg, err := Load(dir, testCalls())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if reg.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", reg.Len())
	}

	s, ok := reg.Get("alpha")
	if !ok {
		t.Fatal("alpha not registered")
	}
	opt, _ := s.Get("stamp")
	if _, ok := opt.Default.(schema.Deferred0); !ok {
		t.Errorf("stamp default = %T, want Deferred0", opt.Default)
	}
}

func TestLoadInvalidDeclaration(t *testing.T) {
	dir := t.TempDir()
	writeDecl(t, dir, "bad.yaml", "schema: bad\noptions:\n  - name: a\n    kind: nonsense\n")

	if _, err := Load(dir, testCalls()); err == nil {
		t.Fatal("Load() accepted an invalid declaration")
	}
}

func TestLoadDuplicateSchemaName(t *testing.T) {
	dir := t.TempDir()
	writeDecl(t, dir, "a.yaml", betaYAML)
	writeDecl(t, dir, "b.yaml", betaYAML)

	if _, err := Load(dir, testCalls()); err == nil {
		t.Fatal("Load() accepted two declarations with the same schema name")
	}
}

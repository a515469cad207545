package schema

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const attributeYAML = `
schema: attribute
options:
  - name: name
    kind: symbol
    required: true
    doc: The attribute name.
  - name: status
    kind: enum
    values: [pending, active]
    default: pending
  - name: allow_nil
    kind: bool
    default: true
    nullable: true
  - name: primary_key
    kind: bool
    default: false
    identity: true
  - name: default
    kind: literal_or_deferred
    default: {call: now}
    match_defaults: true
  - name: update_default
    kind: literal_or_deferred
    default: {call: touch}
  - name: mixed
    kind: union
    members:
      - kind: symbol
      - kind: bool
`

func testCallables() Callables {
	return Callables{
		Zero: map[string]Func0{
			"now": func() (any, error) { return 1, nil },
		},
		One: map[string]Func1{
			"touch": func(any) (any, error) { return 2, nil },
		},
	}
}

func TestParse(t *testing.T) {
	f, err := Parse([]byte(attributeYAML), testCallables())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if f.Name != "attribute" {
		t.Errorf("Name = %q, want attribute", f.Name)
	}
	if f.Schema.Len() != 7 {
		t.Fatalf("Len() = %d, want 7", f.Schema.Len())
	}

	opt, _ := f.Schema.Get("status")
	if opt.Kind.Type != KindEnum || len(opt.Kind.Allowed) != 2 {
		t.Errorf("status kind = %+v, want enum of 2", opt.Kind)
	}
	if lit, ok := opt.Default.(Literal); !ok || lit.Value != Symbol("pending") {
		t.Errorf("status default = %v, want Symbol(pending)", opt.Default)
	}

	opt, _ = f.Schema.Get("allow_nil")
	if !opt.Nullable {
		t.Error("allow_nil nullable marker not set")
	}
	if lit, ok := opt.Default.(Literal); !ok || lit.Value != true {
		t.Errorf("allow_nil default = %v, want true", opt.Default)
	}

	opt, _ = f.Schema.Get("default")
	if _, ok := opt.Default.(Deferred0); !ok {
		t.Errorf("default option default = %T, want Deferred0", opt.Default)
	}
	if !opt.MatchDefaults {
		t.Error("default option sharing flag not set")
	}

	opt, _ = f.Schema.Get("update_default")
	if _, ok := opt.Default.(Deferred1); !ok {
		t.Errorf("update_default default = %T, want Deferred1", opt.Default)
	}

	opt, _ = f.Schema.Get("mixed")
	if opt.Kind.Type != KindUnion || len(opt.Kind.Members) != 2 {
		t.Errorf("mixed kind = %+v, want union of 2", opt.Kind)
	}
}

func TestParseMatchesHandBuiltSchema(t *testing.T) {
	calls := testCallables()

	f, err := Parse([]byte(`
schema: tiny
options:
  - name: name
    kind: symbol
    required: true
  - name: writable
    kind: bool
    default: true
`), calls)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	hand, err := New([]Entry{
		{Name: "name", Option: Option{Kind: SymbolKind, Required: true}},
		{Name: "writable", Option: Option{Kind: BoolKind, Default: Literal{Value: true}}},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if !f.Schema.Equal(hand) {
		t.Error("parsed schema differs from the hand-built one")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		invalid bool
	}{
		{
			name:    "missing schema name",
			yaml:    "options:\n  - name: a\n    kind: bool\n",
			invalid: true,
		},
		{
			name:    "unknown kind",
			yaml:    "schema: x\noptions:\n  - name: a\n    kind: integer\n",
			invalid: true,
		},
		{
			name:    "unknown computation",
			yaml:    "schema: x\noptions:\n  - name: a\n    kind: literal_or_deferred\n    default: {call: nope}\n",
			invalid: true,
		},
		{
			name:    "empty enum",
			yaml:    "schema: x\noptions:\n  - name: a\n    kind: enum\n",
			invalid: true,
		},
		{
			name: "not yaml",
			yaml: "::\n\t::",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml), testCallables())
			if err == nil {
				t.Fatal("Parse() error = nil, want error")
			}
			if tt.invalid {
				var invalid *InvalidSchemaError
				if !errors.As(err, &invalid) {
					t.Errorf("Parse() error = %v, want InvalidSchemaError", err)
				}
			}
		})
	}
}

func TestParseDir(t *testing.T) {
	dir := t.TempDir()

	writeFile := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	writeFile("a.yaml", "schema: alpha\noptions:\n  - name: x\n    kind: bool\n")
	writeFile("b.yml", "schema: beta\noptions:\n  - name: y\n    kind: symbol\n")
	writeFile("ignored.txt", "not a declaration")

	files, err := ParseDir(dir, Callables{})
	if err != nil {
		t.Fatalf("ParseDir() error = %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("ParseDir() returned %d files, want 2", len(files))
	}

	names := []string{files[0].Name, files[1].Name}
	joined := strings.Join(names, ",")
	if !strings.Contains(joined, "alpha") || !strings.Contains(joined, "beta") {
		t.Errorf("parsed names = %v, want alpha and beta", names)
	}
}

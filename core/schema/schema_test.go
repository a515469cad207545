package schema

import (
	"errors"
	"testing"
)

func baseEntries() []Entry {
	return []Entry{
		{Name: "name", Option: Option{Kind: SymbolKind, Required: true}},
		{Name: "allow_nil", Option: Option{Kind: BoolKind, Default: Literal{Value: true}, Nullable: true}},
		{Name: "default", Option: Option{Kind: LiteralOrDeferredKind}},
	}
}

func TestNew(t *testing.T) {
	s, err := New(baseEntries())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}

	opt, ok := s.Get("allow_nil")
	if !ok {
		t.Fatal("Get(allow_nil) not found")
	}
	if opt.Kind.Type != KindBool {
		t.Errorf("allow_nil kind = %s, want bool", opt.Kind.Type)
	}

	names := s.Names()
	want := []Symbol{"name", "allow_nil", "default"}
	for i, n := range want {
		if names[i] != n {
			t.Errorf("Names()[%d] = %s, want %s", i, names[i], n)
		}
	}
}

func TestNewRejectsMalformedSchemas(t *testing.T) {
	fn1 := Func1(func(any) (any, error) { return nil, nil })

	tests := []struct {
		name    string
		entries []Entry
	}{
		{
			name: "duplicate option name",
			entries: []Entry{
				{Name: "a", Option: Option{Kind: BoolKind}},
				{Name: "a", Option: Option{Kind: BoolKind}},
			},
		},
		{
			name:    "empty option name",
			entries: []Entry{{Name: "", Option: Option{Kind: BoolKind}}},
		},
		{
			name:    "invalid identifier",
			entries: []Entry{{Name: "Not-Valid", Option: Option{Kind: BoolKind}}},
		},
		{
			name:    "literal default fails kind predicate",
			entries: []Entry{{Name: "a", Option: Option{Kind: BoolKind, Default: Literal{Value: "yes"}}}},
		},
		{
			name:    "empty enum",
			entries: []Entry{{Name: "a", Option: Option{Kind: Kind{Type: KindEnum}}}},
		},
		{
			name:    "empty union",
			entries: []Entry{{Name: "a", Option: Option{Kind: Kind{Type: KindUnion}}}},
		},
		{
			name:    "deferred arity out of range",
			entries: []Entry{{Name: "a", Option: Option{Kind: Kind{Type: KindDeferred, Arity: 2}}}},
		},
		{
			name:    "entity-parameterized default on a bool kind",
			entries: []Entry{{Name: "a", Option: Option{Kind: BoolKind, Default: Deferred1{Fn: fn1}}}},
		},
		{
			name:    "nil deferred computation",
			entries: []Entry{{Name: "a", Option: Option{Kind: LiteralOrDeferredKind, Default: Deferred0{}}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entries)
			var invalid *InvalidSchemaError
			if !errors.As(err, &invalid) {
				t.Errorf("New() error = %v, want InvalidSchemaError", err)
			}
		})
	}
}

func TestDeferred1RequiresAdmittingKind(t *testing.T) {
	fn1 := Func1(func(any) (any, error) { return nil, nil })
	def1, _ := DeferredKind(1)
	union, _ := UnionKind(BoolKind, def1)

	kinds := []Kind{LiteralOrDeferredKind, def1, union}
	for _, kind := range kinds {
		entries := []Entry{{Name: "a", Option: Option{Kind: kind, Default: Deferred1{Fn: fn1}}}}
		if _, err := New(entries); err != nil {
			t.Errorf("New() with kind %s error = %v, want nil", kind.Type, err)
		}
	}
}

func TestEntriesReturnsACopy(t *testing.T) {
	s, err := New(baseEntries())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	entries := s.Entries()
	entries[0].Name = "mutated"

	if s.At(0).Name != "name" {
		t.Error("mutating Entries() result changed the schema")
	}
}

func TestSchemaEqual(t *testing.T) {
	a, err := New(baseEntries())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	b, err := New(baseEntries())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if !a.Equal(b) {
		t.Error("schemas built from the same entries are not equal")
	}

	c, err := Derive(a, []Op{SetDefault("allow_nil", Literal{Value: false})})
	if err != nil {
		t.Fatalf("Derive() error = %v", err)
	}
	if a.Equal(c) {
		t.Error("derived schema with a changed default compares equal to its base")
	}
}

func TestSchemaEqualComparesDeferredByIdentity(t *testing.T) {
	shared := Func0(func() (any, error) { return 1, nil })
	other := Func0(func() (any, error) { return 1, nil })

	mk := func(fn Func0) Schema {
		s, err := New([]Entry{
			{Name: "default", Option: Option{Kind: LiteralOrDeferredKind, Default: Deferred0{Fn: fn}}},
		})
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		return s
	}

	a, b := mk(shared), mk(shared)
	if !a.Equal(b) {
		t.Error("schemas with the identical computation are not equal")
	}

	c := mk(other)
	if a.Equal(c) {
		t.Error("schemas with distinct computations compare equal")
	}
}

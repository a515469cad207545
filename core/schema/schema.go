package schema

import "reflect"

// Entry pairs an option name with its spec.
type Entry struct {
	Name   Symbol
	Option Option
}

// Schema is an ordered, name-unique sequence of option specs.
// Schemas are immutable values: derivation returns a new Schema and any
// number of resolutions may read one concurrently without locking.
type Schema struct {
	entries []Entry
	index   map[Symbol]int
}

// New builds a schema from an ordered list of entries.
// Construction validates every option spec; malformed input fails with
// InvalidSchemaError immediately rather than at resolution time.
func New(entries []Entry) (Schema, error) {
	index := make(map[Symbol]int, len(entries))
	copied := make([]Entry, len(entries))

	for i, e := range entries {
		if e.Name == "" {
			return Schema{}, &InvalidSchemaError{Reason: "option name must not be empty"}
		}
		if !isValidIdentifier(string(e.Name)) {
			return Schema{}, &InvalidSchemaError{Reason: "option name " + string(e.Name) + " is not a valid identifier"}
		}
		if _, dup := index[e.Name]; dup {
			return Schema{}, &InvalidSchemaError{Reason: "duplicate option " + string(e.Name)}
		}
		if err := e.Option.validate(e.Name); err != nil {
			return Schema{}, err
		}
		index[e.Name] = i
		copied[i] = e
	}

	return Schema{entries: copied, index: index}, nil
}

// Len returns the number of options.
func (s Schema) Len() int {
	return len(s.entries)
}

// At returns the entry at position i in declaration order.
func (s Schema) At(i int) Entry {
	return s.entries[i]
}

// Get looks up an option spec by name.
func (s Schema) Get(name Symbol) (Option, bool) {
	i, ok := s.index[name]
	if !ok {
		return Option{}, false
	}
	return s.entries[i].Option, true
}

// Has reports whether the schema declares the named option.
func (s Schema) Has(name Symbol) bool {
	_, ok := s.index[name]
	return ok
}

// Names returns the option names in declaration order.
func (s Schema) Names() []Symbol {
	names := make([]Symbol, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.Name
	}
	return names
}

// Entries returns a copy of the ordered entry list.
func (s Schema) Entries() []Entry {
	entries := make([]Entry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

// Equal reports whether two schemas declare the same ordered options.
// Deferred defaults compare by computation identity.
func (s Schema) Equal(other Schema) bool {
	if len(s.entries) != len(other.entries) {
		return false
	}
	for i, e := range s.entries {
		o := other.entries[i]
		if e.Name != o.Name {
			return false
		}
		if !optionEqual(e.Option, o.Option) {
			return false
		}
	}
	return true
}

func optionEqual(a, b Option) bool {
	if a.Required != b.Required ||
		a.Doc != b.Doc ||
		a.MatchDefaults != b.MatchDefaults ||
		a.Identity != b.Identity ||
		a.Nullable != b.Nullable {
		return false
	}
	if !a.Kind.Equal(b.Kind) {
		return false
	}
	return defaultEqual(a.Default, b.Default)
}

func defaultEqual(a, b Default) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case Literal:
		bv, ok := b.(Literal)
		return ok && literalEqual(av.Value, bv.Value)
	case Deferred0:
		bv, ok := b.(Deferred0)
		return ok && funcKey(av.Fn) == funcKey(bv.Fn)
	case Deferred1:
		bv, ok := b.(Deferred1)
		return ok && funcKey1(av.Fn) == funcKey1(bv.Fn)
	default:
		return false
	}
}

// literalEqual compares literal defaults, tolerating uncomparable values.
func literalEqual(a, b any) bool {
	if akv, ok := a.([]KV); ok {
		bkv, ok := b.([]KV)
		if !ok || len(akv) != len(bkv) {
			return false
		}
		for i := range akv {
			if akv[i].Key != bkv[i].Key || !literalEqual(akv[i].Value, bkv[i].Value) {
				return false
			}
		}
		return true
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !reflect.TypeOf(a).Comparable() || !reflect.TypeOf(b).Comparable() {
		return false
	}
	return a == b
}

// funcKey is the computation identity used for sharing and equality:
// the code pointer of the function value.
func funcKey(fn Func0) uintptr {
	return reflect.ValueOf(fn).Pointer()
}

func funcKey1(fn Func1) uintptr {
	return reflect.ValueOf(fn).Pointer()
}

// isValidIdentifier reports whether the name is a lowercase identifier:
// letters, digits, and underscores, not starting with a digit.
func isValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

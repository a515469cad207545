package resolve

import "github.com/alexslade/ash/core/schema"

// Record is the fully resolved, validated output of one resolution call.
// It is immutable once returned and owned solely by the caller.
type Record struct {
	order  []schema.Symbol
	values map[schema.Symbol]any
	tokens map[schema.Symbol]uint64
}

// Get returns the resolved value for an option.
func (r Record) Get(name schema.Symbol) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Bool returns the resolved value as a bool, or false when the option is
// absent or non-boolean.
func (r Record) Bool(name schema.Symbol) bool {
	v, ok := r.values[name]
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// Has reports whether the option resolved to a value.
func (r Record) Has(name schema.Symbol) bool {
	_, ok := r.values[name]
	return ok
}

// Len returns the number of resolved options.
func (r Record) Len() int {
	return len(r.values)
}

// Names returns the resolved option names in schema declaration order.
func (r Record) Names() []schema.Symbol {
	names := make([]schema.Symbol, len(r.order))
	copy(names, r.order)
	return names
}

// Token returns the evaluation token for an option whose value came from a
// deferred default. Two options carry the same token exactly when one
// shared evaluation produced both values.
func (r Record) Token(name schema.Symbol) (uint64, bool) {
	t, ok := r.tokens[name]
	return t, ok
}

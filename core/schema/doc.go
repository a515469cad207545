/*
Package schema defines ordered, named option schemas with defaults,
constraints, and documentation metadata, and the derivation operations that
build specialized schemas from a base without mutating it.

# Schemas

A schema is an ordered list of (name, option) entries. Option names are the
exact set of keys resolution will accept. Schemas are immutable values: every
derivation returns a new schema, and any number of concurrent readers may
share one safely.

	base, err := schema.New([]schema.Entry{
		{Name: "name", Option: schema.Option{Kind: schema.SymbolKind, Required: true}},
		{Name: "allow_nil", Option: schema.Option{Kind: schema.BoolKind, Default: schema.Literal{Value: true}}},
	})

# Kinds

Kinds are a closed set of value-shape descriptors with a pure Matches
predicate:

  - symbol:              identifier-valued token
  - bool, string:        the obvious scalars
  - ordered_kv:          ordered key-value list ([]KV)
  - enum:                one of a non-empty set of symbols
  - union:               matches if any member matches
  - deferred/0, deferred/1: a callable of that exact arity
  - literal_or_deferred: any literal, or either callable shape

# Defaults

A default is absent, a literal, or a deferred computation invoked at
resolution time. Zero-arg computations on options flagged MatchDefaults are
evaluated once per resolution call and shared across every flagged option
naming the identical computation. Entity-parameterized computations receive
the entity in progress and are never shared.

# Derivation

Specialized schemas are a base plus a short op list, so additions to the
base catalog propagate to every derived schema:

	ts, err := schema.Derive(base, []schema.Op{
		schema.SetDefault("allow_nil", schema.Literal{Value: false}),
	})

# Declarations

Schemas can also be declared in YAML files (see Parse), with deferred
defaults referencing caller-supplied named computations.
*/
package schema

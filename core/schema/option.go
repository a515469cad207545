package schema

// Default is the tagged default-value variant carried by an option spec.
// A nil Default means the option has no default.
type Default interface {
	defaultValue()
}

// Literal is a fixed default value known at schema-definition time.
type Literal struct {
	Value any
}

// Deferred0 is a default computed at resolution time with no inputs.
type Deferred0 struct {
	Fn Func0
}

// Deferred1 is a default computed at resolution time from the entity in
// progress. Results are never cached across fields.
type Deferred1 struct {
	Fn Func1
}

func (Literal) defaultValue()   {}
func (Deferred0) defaultValue() {}
func (Deferred1) defaultValue() {}

// Option declares a single named field of a schema.
// Options are immutable once their schema is built.
type Option struct {
	// Kind is the value-shape constraint for supplied values.
	Kind Kind

	// Required indicates the option must be supplied when it has no default.
	Required bool

	// Default fills in the value when none is supplied. Nil means absent.
	Default Default

	// Doc is human-readable documentation for this option.
	Doc string

	// MatchDefaults opts this option into deferred-default sharing: within
	// one resolution call, every opted-in option backed by the identical
	// zero-arg computation observes one evaluation. Options without this
	// flag always invoke fresh.
	MatchDefaults bool

	// Identity marks this option as declaring membership in the record's
	// unique identity (primary key). Used by cross-field invariants.
	Identity bool

	// Nullable marks this option as carrying the record's nullability.
	// Used by cross-field invariants.
	Nullable bool
}

// validate checks construction-time invariants of one option spec.
func (o Option) validate(name Symbol) error {
	if err := o.Kind.validate(); err != nil {
		return err
	}

	switch d := o.Default.(type) {
	case nil:
		return nil

	case Literal:
		if !o.Kind.Matches(d.Value) {
			return &InvalidSchemaError{Reason: "option " + string(name) + ": literal default does not match kind " + string(o.Kind.Type)}
		}
		return nil

	case Deferred0:
		if d.Fn == nil {
			return &InvalidSchemaError{Reason: "option " + string(name) + ": nil deferred computation"}
		}
		return nil

	case Deferred1:
		if d.Fn == nil {
			return &InvalidSchemaError{Reason: "option " + string(name) + ": nil deferred computation"}
		}
		// Entity-parameterized defaults only make sense for kinds that
		// admit a one-arg callable.
		if !kindAdmitsDeferred1(o.Kind) {
			return &InvalidSchemaError{Reason: "option " + string(name) + ": entity-parameterized default requires a literal_or_deferred or deferred/1 kind"}
		}
		return nil

	default:
		return &InvalidSchemaError{Reason: "option " + string(name) + ": unknown default variant"}
	}
}

func kindAdmitsDeferred1(k Kind) bool {
	switch k.Type {
	case KindLiteralOrDeferred:
		return true
	case KindDeferred:
		return k.Arity == 1
	case KindUnion:
		for _, m := range k.Members {
			if kindAdmitsDeferred1(m) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

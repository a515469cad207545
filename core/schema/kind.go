// Package schema defines the core types for declarative attribute-option
// schemas: constraint kinds, option specs, ordered schemas, and the
// derivation operations that build specialized schemas from a base.
package schema

// Symbol is an identifier-valued token. Option names and enum members are
// symbols, as are opaque type tokens forwarded to an external type checker.
type Symbol string

// KV is one entry of an ordered key-value list.
type KV struct {
	Key   Symbol
	Value any
}

// Func0 is a deferred computation taking no inputs.
// A non-nil error aborts resolution of the option it backs.
type Func0 func() (any, error)

// Func1 is a deferred computation receiving the entity in progress.
type Func1 func(entity any) (any, error)

// KindType identifies a constraint kind variant.
type KindType string

const (
	KindSymbol            KindType = "symbol"
	KindBool              KindType = "bool"
	KindString            KindType = "string"
	KindOrderedKV         KindType = "ordered_kv"
	KindEnum              KindType = "enum"
	KindUnion             KindType = "union"
	KindDeferred          KindType = "deferred"
	KindLiteralOrDeferred KindType = "literal_or_deferred"
)

// Kind is a closed value-shape descriptor for option values.
// The zero Kind is invalid; use the package-level kinds and constructors.
type Kind struct {
	// Type selects the variant.
	Type KindType

	// Allowed holds the members for enum kinds.
	Allowed []Symbol

	// Members holds the alternatives for union kinds.
	Members []Kind

	// Arity is 0 or 1 for deferred kinds.
	Arity int
}

// Payload-free kinds.
var (
	SymbolKind            = Kind{Type: KindSymbol}
	BoolKind              = Kind{Type: KindBool}
	StringKind            = Kind{Type: KindString}
	OrderedKVKind         = Kind{Type: KindOrderedKV}
	LiteralOrDeferredKind = Kind{Type: KindLiteralOrDeferred}
)

// EnumKind builds an enum kind. The allowed set must be non-empty.
func EnumKind(allowed ...Symbol) (Kind, error) {
	if len(allowed) == 0 {
		return Kind{}, &InvalidSchemaError{Reason: "enum kind requires at least one allowed value"}
	}
	return Kind{Type: KindEnum, Allowed: allowed}, nil
}

// UnionKind builds a union kind. At least one member is required.
func UnionKind(members ...Kind) (Kind, error) {
	if len(members) == 0 {
		return Kind{}, &InvalidSchemaError{Reason: "union kind requires at least one member"}
	}
	return Kind{Type: KindUnion, Members: members}, nil
}

// DeferredKind builds a deferred-computation kind with the given arity.
// Only arities 0 and 1 exist; anything else is a construction error.
func DeferredKind(arity int) (Kind, error) {
	if arity != 0 && arity != 1 {
		return Kind{}, &InvalidSchemaError{Reason: "deferred kind arity must be 0 or 1"}
	}
	return Kind{Type: KindDeferred, Arity: arity}, nil
}

// Matches reports whether the value satisfies the kind.
// This is a PURE function.
func (k Kind) Matches(value any) bool {
	switch k.Type {
	case KindSymbol:
		_, ok := value.(Symbol)
		return ok

	case KindBool:
		_, ok := value.(bool)
		return ok

	case KindString:
		_, ok := value.(string)
		return ok

	case KindOrderedKV:
		_, ok := value.([]KV)
		return ok

	case KindEnum:
		s, ok := value.(Symbol)
		if !ok {
			return false
		}
		for _, allowed := range k.Allowed {
			if s == allowed {
				return true
			}
		}
		return false

	case KindUnion:
		for _, member := range k.Members {
			if member.Matches(value) {
				return true
			}
		}
		return false

	case KindDeferred:
		switch k.Arity {
		case 0:
			_, ok := value.(Func0)
			return ok
		case 1:
			_, ok := value.(Func1)
			return ok
		}
		return false

	case KindLiteralOrDeferred:
		// Any literal matches, as does either deferred callable shape.
		return true

	default:
		return false
	}
}

// Equal reports structural equality of two kinds.
func (k Kind) Equal(other Kind) bool {
	if k.Type != other.Type || k.Arity != other.Arity {
		return false
	}
	if len(k.Allowed) != len(other.Allowed) || len(k.Members) != len(other.Members) {
		return false
	}
	for i, a := range k.Allowed {
		if a != other.Allowed[i] {
			return false
		}
	}
	for i, m := range k.Members {
		if !m.Equal(other.Members[i]) {
			return false
		}
	}
	return true
}

// validate checks construction-time invariants of the kind itself.
func (k Kind) validate() error {
	switch k.Type {
	case KindSymbol, KindBool, KindString, KindOrderedKV, KindLiteralOrDeferred:
		return nil
	case KindEnum:
		if len(k.Allowed) == 0 {
			return &InvalidSchemaError{Reason: "enum kind requires at least one allowed value"}
		}
		return nil
	case KindUnion:
		if len(k.Members) == 0 {
			return &InvalidSchemaError{Reason: "union kind requires at least one member"}
		}
		for _, m := range k.Members {
			if err := m.validate(); err != nil {
				return err
			}
		}
		return nil
	case KindDeferred:
		if k.Arity != 0 && k.Arity != 1 {
			return &InvalidSchemaError{Reason: "deferred kind arity must be 0 or 1"}
		}
		return nil
	default:
		return &InvalidSchemaError{Reason: "unknown kind " + string(k.Type)}
	}
}

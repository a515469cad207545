package schema

// OpType identifies a derivation operation.
type OpType string

const (
	// OpSetDefault replaces an option's default. Kind and required-ness
	// are untouched.
	OpSetDefault OpType = "set_default"

	// OpSetKind replaces an option's kind.
	OpSetKind OpType = "set_kind"

	// OpSetSharing toggles an option's participation in deferred-default
	// sharing.
	OpSetSharing OpType = "set_sharing"

	// OpDelete removes an option entirely. Resolution against the derived
	// schema treats the name as fully absent, not merely defaulted.
	OpDelete OpType = "delete"
)

// Op is one derivation operation against a named option.
type Op struct {
	Type    OpType
	Name    Symbol
	Default Default
	Kind    Kind
	Sharing bool
}

// SetDefault returns an op replacing the named option's default.
// A nil default clears it.
func SetDefault(name Symbol, def Default) Op {
	return Op{Type: OpSetDefault, Name: name, Default: def}
}

// SetKind returns an op replacing the named option's kind.
func SetKind(name Symbol, kind Kind) Op {
	return Op{Type: OpSetKind, Name: name, Kind: kind}
}

// SetSharing returns an op toggling the named option's sharing flag.
func SetSharing(name Symbol, on bool) Op {
	return Op{Type: OpSetSharing, Name: name, Sharing: on}
}

// Delete returns an op removing the named option.
func Delete(name Symbol) Op {
	return Op{Type: OpDelete, Name: name}
}

// Derive applies ops in order to a working copy of the base schema and
// returns the result as a new schema. The base is never mutated.
//
// Ops are order-sensitive (a later SetDefault on the same name wins) and
// deterministic: deriving twice from the same base with the same ops yields
// value-equal schemas, and deriving in two steps equals deriving with the
// concatenated op list. Any op naming an option absent from the working
// schema fails with UnknownOptionError.
func Derive(base Schema, ops []Op) (Schema, error) {
	entries := base.Entries()

	for _, op := range ops {
		i := entryIndex(entries, op.Name)
		if i < 0 {
			return Schema{}, &UnknownOptionError{Name: op.Name}
		}

		switch op.Type {
		case OpSetDefault:
			entries[i].Option.Default = op.Default
		case OpSetKind:
			entries[i].Option.Kind = op.Kind
		case OpSetSharing:
			entries[i].Option.MatchDefaults = op.Sharing
		case OpDelete:
			entries = append(entries[:i], entries[i+1:]...)
		default:
			return Schema{}, &InvalidSchemaError{Reason: "unknown derivation op " + string(op.Type)}
		}
	}

	// Re-validate: derivation must preserve construction invariants
	// (a SetKind can invalidate an existing default, for example).
	return New(entries)
}

func entryIndex(entries []Entry, name Symbol) int {
	for i, e := range entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

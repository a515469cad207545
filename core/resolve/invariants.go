package resolve

import "github.com/alexslade/ash/core/schema"

// Invariant is a pure cross-field check applied after every option has
// resolved. Invariants run in a fixed order; the first violation aborts
// the resolution.
type Invariant func(s schema.Schema, rec Record) error

// RulePrimaryKeyNotNullable names the built-in identity invariant.
const RulePrimaryKeyNotNullable = "primary_key_not_nullable"

// PrimaryKeyNotNullable rejects records where an identity-marked option
// resolved to true while the nullability-marked option also resolved to
// true: a primary key cannot be nullable.
func PrimaryKeyNotNullable(s schema.Schema, rec Record) error {
	for i := 0; i < s.Len(); i++ {
		entry := s.At(i)
		if !entry.Option.Identity || !rec.Bool(entry.Name) {
			continue
		}
		if nullable(s, rec) {
			return &InvariantViolationError{Rule: RulePrimaryKeyNotNullable, Name: entry.Name}
		}
	}
	return nil
}

func nullable(s schema.Schema, rec Record) bool {
	for i := 0; i < s.Len(); i++ {
		entry := s.At(i)
		if entry.Option.Nullable {
			return rec.Bool(entry.Name)
		}
	}
	return false
}

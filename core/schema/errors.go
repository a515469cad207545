package schema

import "fmt"

// InvalidSchemaError reports a malformed schema or option spec.
// It is raised at construction time, never deferred to resolution.
type InvalidSchemaError struct {
	Reason string
}

func (e *InvalidSchemaError) Error() string {
	return "invalid schema: " + e.Reason
}

// UnknownOptionError reports a name absent from the schema, either from a
// derivation operation or from resolution input.
type UnknownOptionError struct {
	Name Symbol
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option %q", string(e.Name))
}

package resolve

import (
	"errors"
	"fmt"

	"github.com/alexslade/ash/core/schema"
)

// TypeMismatchError reports a supplied value failing its kind predicate.
type TypeMismatchError struct {
	Name     schema.Symbol
	Expected schema.Kind
	Actual   any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("option %q: value %v does not match kind %s", string(e.Name), e.Actual, e.Expected.Type)
}

// MissingRequiredError reports a required option with no default and no
// supplied value.
type MissingRequiredError struct {
	Name schema.Symbol
}

func (e *MissingRequiredError) Error() string {
	return fmt.Sprintf("option %q is required", string(e.Name))
}

// InvariantViolationError reports a cross-field invariant failing after
// individual option resolution succeeded.
type InvariantViolationError struct {
	Rule string
	Name schema.Symbol
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("invariant %s violated by option %q", e.Rule, string(e.Name))
}

// DefaultComputationFailedError reports a deferred default computation
// failing during evaluation. The cause is never swallowed.
type DefaultComputationFailedError struct {
	Name  schema.Symbol
	Cause error
}

func (e *DefaultComputationFailedError) Error() string {
	return fmt.Sprintf("option %q: default computation failed: %v", string(e.Name), e.Cause)
}

func (e *DefaultComputationFailedError) Unwrap() error {
	return e.Cause
}

// ErrorKind returns a stable label for a resolution error, used by
// observers. An unrecognized error maps to "internal".
func ErrorKind(err error) string {
	var (
		unknown   *schema.UnknownOptionError
		mismatch  *TypeMismatchError
		missing   *MissingRequiredError
		invariant *InvariantViolationError
		deferred  *DefaultComputationFailedError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &unknown):
		return "unknown_option"
	case errors.As(err, &mismatch):
		return "type_mismatch"
	case errors.As(err, &missing):
		return "missing_required"
	case errors.As(err, &invariant):
		return "invariant_violation"
	case errors.As(err, &deferred):
		return "default_computation_failed"
	default:
		return "internal"
	}
}

// Package resolve materializes concrete option values against a schema:
// it validates supplied input, fills in defaults (literal, deferred, and
// shared deferred), and applies cross-field invariants.
package resolve

import (
	"reflect"
	"time"

	"github.com/alexslade/ash/core/schema"
)

// Observer receives the outcome of each resolution call.
// kind is "" on success, otherwise an ErrorKind label.
type Observer interface {
	ObserveResolution(kind string, elapsed time.Duration)
}

// Resolver resolves input mappings against schemas.
// A Resolver is immutable after construction and safe for concurrent use;
// all per-call state lives in a call-local context.
type Resolver struct {
	invariants []Invariant
	observer   Observer
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithInvariant registers an additional cross-field invariant, applied
// after the built-in ones in registration order.
func WithInvariant(inv Invariant) ResolverOption {
	return func(r *Resolver) {
		r.invariants = append(r.invariants, inv)
	}
}

// WithObserver sets an outcome observer (metrics, logging).
func WithObserver(o Observer) ResolverOption {
	return func(r *Resolver) {
		r.observer = o
	}
}

// New creates a resolver carrying the built-in invariants.
func New(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		invariants: []Invariant{PrimaryKeyNotNullable},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ctx is the per-call resolution context: a cache of already-computed
// shared deferred defaults plus a token counter. It is created at the
// start of each Resolve call and discarded at its end.
type ctx struct {
	shared    map[uintptr]evaluation
	nextToken uint64
}

type evaluation struct {
	value any
	token uint64
}

// Resolve validates input against the schema and produces a record.
//
// Options resolve in schema declaration order; the first failure aborts the
// whole call. Input keys absent from the schema fail with
// UnknownOptionError before any option resolves. entity is opaque to the
// engine and passed through to entity-parameterized defaults.
func (r *Resolver) Resolve(s schema.Schema, input map[schema.Symbol]any, entity any) (Record, error) {
	start := time.Now()
	rec, err := r.resolve(s, input, entity)
	if r.observer != nil {
		r.observer.ObserveResolution(ErrorKind(err), time.Since(start))
	}
	return rec, err
}

func (r *Resolver) resolve(s schema.Schema, input map[schema.Symbol]any, entity any) (Record, error) {
	for name := range input {
		if !s.Has(name) {
			return Record{}, &schema.UnknownOptionError{Name: name}
		}
	}

	c := &ctx{shared: make(map[uintptr]evaluation)}
	rec := Record{
		values: make(map[schema.Symbol]any, s.Len()),
		tokens: make(map[schema.Symbol]uint64),
	}

	for i := 0; i < s.Len(); i++ {
		entry := s.At(i)
		name, opt := entry.Name, entry.Option

		if value, supplied := input[name]; supplied {
			if !opt.Kind.Matches(value) {
				return Record{}, &TypeMismatchError{Name: name, Expected: opt.Kind, Actual: value}
			}
			rec.values[name] = value
			rec.order = append(rec.order, name)
			continue
		}

		if opt.Default == nil {
			if opt.Required {
				return Record{}, &MissingRequiredError{Name: name}
			}
			continue
		}

		value, token, err := c.resolveDefault(name, opt, entity)
		if err != nil {
			return Record{}, err
		}
		rec.values[name] = value
		rec.order = append(rec.order, name)
		if token != 0 {
			rec.tokens[name] = token
		}
	}

	for _, inv := range r.invariants {
		if err := inv(s, rec); err != nil {
			return Record{}, err
		}
	}

	return rec, nil
}

// resolveDefault evaluates an option's default. The returned token is
// non-zero for deferred defaults and identifies the evaluation that
// produced the value.
func (c *ctx) resolveDefault(name schema.Symbol, opt schema.Option, entity any) (any, uint64, error) {
	switch d := opt.Default.(type) {
	case schema.Literal:
		return d.Value, 0, nil

	case schema.Deferred0:
		// Only sharing-flagged options consult the cache; unflagged
		// options invoke fresh even for the identical computation.
		if !opt.MatchDefaults {
			value, err := d.Fn()
			if err != nil {
				return nil, 0, &DefaultComputationFailedError{Name: name, Cause: err}
			}
			return value, c.token(), nil
		}

		key := reflect.ValueOf(d.Fn).Pointer()
		if eval, ok := c.shared[key]; ok {
			return eval.value, eval.token, nil
		}
		value, err := d.Fn()
		if err != nil {
			return nil, 0, &DefaultComputationFailedError{Name: name, Cause: err}
		}
		eval := evaluation{value: value, token: c.token()}
		c.shared[key] = eval
		return eval.value, eval.token, nil

	case schema.Deferred1:
		// Entity-dependent, never cached.
		value, err := d.Fn(entity)
		if err != nil {
			return nil, 0, &DefaultComputationFailedError{Name: name, Cause: err}
		}
		return value, c.token(), nil

	default:
		return nil, 0, &schema.InvalidSchemaError{Reason: "option " + string(name) + ": unknown default variant"}
	}
}

func (c *ctx) token() uint64 {
	c.nextToken++
	return c.nextToken
}

// Package registry manages named schemas and the derivation surface
// addressed by base-schema identifier.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/alexslade/ash/core/schema"
)

// Registry holds schemas by name.
// Registered schemas are immutable; the registry itself is safe for
// concurrent use.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]schema.Schema
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		schemas: make(map[string]schema.Schema),
	}
}

// Register registers a schema under a name.
// Returns an error on a duplicate name.
func (r *Registry) Register(name string, s schema.Schema) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.schemas[name]; exists {
		return fmt.Errorf("schema %q already registered", name)
	}

	r.schemas[name] = s
	return nil
}

// Unregister removes a schema from the registry.
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.schemas[name]; !exists {
		return fmt.Errorf("schema %q not registered", name)
	}

	delete(r.schemas, name)
	return nil
}

// Get returns a registered schema by name.
func (r *Registry) Get(name string) (schema.Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.schemas[name]
	return s, ok
}

// List returns all registered schema names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered schemas.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.schemas)
}

// DeriveFrom derives a new schema from a registered base.
// The base is untouched; the result is returned without being registered.
func (r *Registry) DeriveFrom(base string, ops []schema.Op) (schema.Schema, error) {
	r.mu.RLock()
	s, ok := r.schemas[base]
	r.mu.RUnlock()

	if !ok {
		return schema.Schema{}, fmt.Errorf("schema %q not registered", base)
	}

	derived, err := schema.Derive(s, ops)
	if err != nil {
		return schema.Schema{}, fmt.Errorf("derive from %q: %w", base, err)
	}

	return derived, nil
}

// RegisterDerived derives from a registered base and registers the result
// under a new name in one step.
func (r *Registry) RegisterDerived(name, base string, ops []schema.Op) error {
	derived, err := r.DeriveFrom(base, ops)
	if err != nil {
		return err
	}
	return r.Register(name, derived)
}

// Package catalog loads schema declaration directories into registries
// and keeps them fresh with hot reload.
package catalog

import (
	"fmt"

	"github.com/alexslade/ash/core/registry"
	"github.com/alexslade/ash/core/schema"
)

// Load parses every schema declaration in dir and registers it.
// Deferred defaults in the files are bound against calls.
func Load(dir string, calls schema.Callables) (*registry.Registry, error) {
	files, err := schema.ParseDir(dir, calls)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	reg := registry.New()
	for _, f := range files {
		if err := reg.Register(f.Name, f.Schema); err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
	}

	return reg, nil
}

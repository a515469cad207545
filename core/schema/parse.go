package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Callables binds the computation names a declaration file may reference
// to actual deferred computations. Files carry names; callers supply code.
type Callables struct {
	Zero map[string]Func0
	One  map[string]Func1
}

// File is one parsed schema declaration.
type File struct {
	// Name identifies the schema, used as its registry key.
	Name string

	// Schema is the constructed schema.
	Schema Schema
}

type yamlFile struct {
	Name    string       `yaml:"schema"`
	Options []yamlOption `yaml:"options"`
}

type yamlOption struct {
	Name          string     `yaml:"name"`
	Kind          string     `yaml:"kind"`
	Values        []string   `yaml:"values,omitempty"`
	Members       []yamlKind `yaml:"members,omitempty"`
	Required      bool       `yaml:"required,omitempty"`
	Default       yaml.Node  `yaml:"default,omitempty"`
	Doc           string     `yaml:"doc,omitempty"`
	MatchDefaults bool       `yaml:"match_defaults,omitempty"`
	Identity      bool       `yaml:"identity,omitempty"`
	Nullable      bool       `yaml:"nullable,omitempty"`
}

type yamlKind struct {
	Kind    string     `yaml:"kind"`
	Values  []string   `yaml:"values,omitempty"`
	Members []yamlKind `yaml:"members,omitempty"`
}

// ParseFile parses a schema declaration from a YAML file.
func ParseFile(path string, calls Callables) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read file %s: %w", path, err)
	}

	return Parse(data, calls)
}

// Parse parses a schema declaration from YAML bytes.
// Deferred defaults are spelled {call: name} and resolved against calls;
// an unknown name is an InvalidSchemaError at parse time.
func Parse(data []byte, calls Callables) (File, error) {
	var raw yamlFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return File{}, fmt.Errorf("parse yaml: %w", err)
	}

	if raw.Name == "" {
		return File{}, &InvalidSchemaError{Reason: "declaration is missing a schema name"}
	}

	entries := make([]Entry, 0, len(raw.Options))
	for _, opt := range raw.Options {
		kind, err := parseKind(yamlKind{Kind: opt.Kind, Values: opt.Values, Members: opt.Members})
		if err != nil {
			return File{}, fmt.Errorf("option %q: %w", opt.Name, err)
		}

		var defNode *yaml.Node
		if !opt.Default.IsZero() {
			defNode = &opt.Default
		}
		def, err := parseDefault(defNode, kind, calls)
		if err != nil {
			return File{}, fmt.Errorf("option %q: %w", opt.Name, err)
		}

		entries = append(entries, Entry{
			Name: Symbol(opt.Name),
			Option: Option{
				Kind:          kind,
				Required:      opt.Required,
				Default:       def,
				Doc:           opt.Doc,
				MatchDefaults: opt.MatchDefaults,
				Identity:      opt.Identity,
				Nullable:      opt.Nullable,
			},
		})
	}

	s, err := New(entries)
	if err != nil {
		return File{}, fmt.Errorf("schema %q: %w", raw.Name, err)
	}

	return File{Name: raw.Name, Schema: s}, nil
}

// ParseDir parses all schema declarations from a directory.
func ParseDir(dir string, calls Callables) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	var files []File
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		f, err := ParseFile(filepath.Join(dir, name), calls)
		if err != nil {
			return nil, err
		}

		files = append(files, f)
	}

	return files, nil
}

func parseKind(raw yamlKind) (Kind, error) {
	switch raw.Kind {
	case "symbol":
		return SymbolKind, nil
	case "bool":
		return BoolKind, nil
	case "string":
		return StringKind, nil
	case "ordered_kv":
		return OrderedKVKind, nil
	case "literal_or_deferred":
		return LiteralOrDeferredKind, nil
	case "deferred/0":
		return DeferredKind(0)
	case "deferred/1":
		return DeferredKind(1)
	case "enum":
		allowed := make([]Symbol, len(raw.Values))
		for i, v := range raw.Values {
			allowed[i] = Symbol(v)
		}
		return EnumKind(allowed...)
	case "union":
		members := make([]Kind, len(raw.Members))
		for i, m := range raw.Members {
			k, err := parseKind(m)
			if err != nil {
				return Kind{}, err
			}
			members[i] = k
		}
		return UnionKind(members...)
	default:
		return Kind{}, &InvalidSchemaError{Reason: fmt.Sprintf("unknown kind %q", raw.Kind)}
	}
}

func parseDefault(node *yaml.Node, kind Kind, calls Callables) (Default, error) {
	if node == nil {
		return nil, nil
	}

	// A mapping with a "call" key names a deferred computation.
	if node.Kind == yaml.MappingNode {
		var ref struct {
			Call string `yaml:"call"`
		}
		if err := node.Decode(&ref); err != nil {
			return nil, fmt.Errorf("decode default: %w", err)
		}
		if ref.Call != "" {
			if fn, ok := calls.Zero[ref.Call]; ok {
				return Deferred0{Fn: fn}, nil
			}
			if fn, ok := calls.One[ref.Call]; ok {
				return Deferred1{Fn: fn}, nil
			}
			return nil, &InvalidSchemaError{Reason: fmt.Sprintf("unknown computation %q", ref.Call)}
		}
	}

	var value any
	if err := node.Decode(&value); err != nil {
		return nil, fmt.Errorf("decode default: %w", err)
	}

	// Symbol-valued kinds take bare strings as symbols in files.
	if s, ok := value.(string); ok && symbolValued(kind) {
		return Literal{Value: Symbol(s)}, nil
	}

	return Literal{Value: value}, nil
}

func symbolValued(k Kind) bool {
	switch k.Type {
	case KindSymbol, KindEnum:
		return true
	case KindUnion:
		for _, m := range k.Members {
			if symbolValued(m) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

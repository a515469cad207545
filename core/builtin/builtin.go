// Package builtin carries the base attribute option schema and the
// specialized schemas derived from it. Every specialization is expressed
// as the base plus a short op list, so additions to the base catalog
// propagate to all of them.
package builtin

import (
	"github.com/alexslade/ash/core/defaults"
	"github.com/alexslade/ash/core/schema"
)

var (
	base              = must(schema.New(baseEntries()))
	createTimestamp   = mustDerive(base, createTimestampOps())
	updateTimestamp   = mustDerive(createTimestamp, updateTimestampOps())
	uuidPrimaryKey    = mustDerive(base, uuidPrimaryKeyOps())
	integerPrimaryKey = mustDerive(base, integerPrimaryKeyOps())
)

// Base returns the attribute option schema: the full catalog of options an
// attribute declaration accepts.
func Base() schema.Schema { return base }

// CreateTimestamp returns the schema for a creation timestamp attribute:
// a non-writable, non-nil UTC instant defaulted at insert. Its default
// participates in sharing so that paired timestamp attributes resolved in
// one call receive the identical instant.
func CreateTimestamp() schema.Schema { return createTimestamp }

// UpdateTimestamp returns the schema for an update timestamp attribute:
// CreateTimestamp plus a shared update default.
func UpdateTimestamp() schema.Schema { return updateTimestamp }

// UUIDPrimaryKey returns the schema for a v4 UUID primary key attribute.
// Its default is deliberately NOT sharing-flagged: independently generated
// identifiers must diverge even within one resolution call.
func UUIDPrimaryKey() schema.Schema { return uuidPrimaryKey }

// IntegerPrimaryKey returns the schema for a storage-generated integer
// primary key attribute. The default option is deleted outright: storage
// generates the value, so supplying any default is an unknown option.
func IntegerPrimaryKey() schema.Schema { return integerPrimaryKey }

func baseEntries() []schema.Entry {
	return []schema.Entry{
		{Name: "name", Option: schema.Option{
			Kind:     schema.SymbolKind,
			Required: true,
			Doc:      "The attribute name.",
		}},
		{Name: "type", Option: schema.Option{
			Kind:     schema.SymbolKind,
			Required: true,
			Doc:      "The attribute type token, checked by the external type checker.",
		}},
		{Name: "constraints", Option: schema.Option{
			Kind:    schema.OrderedKVKind,
			Default: schema.Literal{Value: []schema.KV{}},
			Doc:     "Type constraints, forwarded to the external type checker.",
		}},
		{Name: "primary_key", Option: schema.Option{
			Kind:     schema.BoolKind,
			Default:  schema.Literal{Value: false},
			Identity: true,
			Doc:      "Whether the attribute is part of the record's unique identity.",
		}},
		{Name: "allow_nil", Option: schema.Option{
			Kind:     schema.BoolKind,
			Default:  schema.Literal{Value: true},
			Nullable: true,
			Doc:      "Whether the attribute may hold nil.",
		}},
		{Name: "public", Option: schema.Option{
			Kind:    schema.BoolKind,
			Default: schema.Literal{Value: false},
			Doc:     "Whether the attribute is exposed on public interfaces.",
		}},
		{Name: "sensitive", Option: schema.Option{
			Kind:    schema.BoolKind,
			Default: schema.Literal{Value: false},
			Doc:     "Whether the attribute value is redacted from logs and errors.",
		}},
		{Name: "writable", Option: schema.Option{
			Kind:    schema.BoolKind,
			Default: schema.Literal{Value: true},
			Doc:     "Whether the attribute accepts caller-supplied values.",
		}},
		{Name: "generated", Option: schema.Option{
			Kind:    schema.BoolKind,
			Default: schema.Literal{Value: false},
			Doc:     "Whether storage generates the value.",
		}},
		{Name: "always_select", Option: schema.Option{
			Kind:    schema.BoolKind,
			Default: schema.Literal{Value: false},
			Doc:     "Whether the attribute is selected regardless of the query.",
		}},
		{Name: "filterable", Option: schema.Option{
			Kind:    schema.BoolKind,
			Default: schema.Literal{Value: true},
			Doc:     "Whether queries may filter on the attribute.",
		}},
		{Name: "sortable", Option: schema.Option{
			Kind:    schema.BoolKind,
			Default: schema.Literal{Value: true},
			Doc:     "Whether queries may sort on the attribute.",
		}},
		{Name: "select_by_default", Option: schema.Option{
			Kind:    schema.BoolKind,
			Default: schema.Literal{Value: true},
			Doc:     "Whether the attribute is selected when no select is given.",
		}},
		{Name: "default", Option: schema.Option{
			Kind: schema.LiteralOrDeferredKind,
			Doc:  "The value filled in at creation when none is supplied.",
		}},
		{Name: "update_default", Option: schema.Option{
			Kind: schema.LiteralOrDeferredKind,
			Doc:  "The value filled in on every update when none is supplied.",
		}},
		{Name: "source", Option: schema.Option{
			Kind: schema.SymbolKind,
			Doc:  "Storage-side name override.",
		}},
		{Name: "description", Option: schema.Option{
			Kind: schema.StringKind,
			Doc:  "Human-readable documentation for the attribute.",
		}},
	}
}

func createTimestampOps() []schema.Op {
	return []schema.Op{
		schema.SetDefault("type", schema.Literal{Value: schema.Symbol("utc_datetime_usec")}),
		schema.SetDefault("writable", schema.Literal{Value: false}),
		schema.SetDefault("allow_nil", schema.Literal{Value: false}),
		schema.SetDefault("default", schema.Deferred0{Fn: defaults.UTCNow}),
		schema.SetSharing("default", true),
		schema.SetSharing("update_default", true),
	}
}

func updateTimestampOps() []schema.Op {
	return []schema.Op{
		schema.SetDefault("update_default", schema.Deferred0{Fn: defaults.UTCNow}),
	}
}

func uuidPrimaryKeyOps() []schema.Op {
	return []schema.Op{
		schema.SetDefault("type", schema.Literal{Value: schema.Symbol("uuid")}),
		schema.SetDefault("primary_key", schema.Literal{Value: true}),
		schema.SetDefault("allow_nil", schema.Literal{Value: false}),
		schema.SetDefault("writable", schema.Literal{Value: false}),
		schema.SetDefault("default", schema.Deferred0{Fn: defaults.UUID}),
	}
}

func integerPrimaryKeyOps() []schema.Op {
	return []schema.Op{
		schema.SetDefault("type", schema.Literal{Value: schema.Symbol("integer")}),
		schema.SetDefault("primary_key", schema.Literal{Value: true}),
		schema.SetDefault("allow_nil", schema.Literal{Value: false}),
		schema.SetDefault("writable", schema.Literal{Value: false}),
		schema.SetDefault("generated", schema.Literal{Value: true}),
		schema.Delete("default"),
	}
}

// The catalog is hardcoded; a construction failure here is a bug.
func must(s schema.Schema, err error) schema.Schema {
	if err != nil {
		panic(err)
	}
	return s
}

func mustDerive(base schema.Schema, ops []schema.Op) schema.Schema {
	return must(schema.Derive(base, ops))
}

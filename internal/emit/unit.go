package emit

import (
	"slices"

	"github.com/music-group/flatbuffers/internal/diagnostic"
	"github.com/music-group/flatbuffers/internal/naming"
	"github.com/music-group/flatbuffers/internal/schema"
	"github.com/music-group/flatbuffers/internal/typemap"
)

// Options configures emission for one target.
type Options struct {
	Mapper typemap.Mapper
	Naming naming.Convention
	// Namespace is the namespace of the unit being emitted into. Types from
	// other namespaces are qualified by the mapper.
	Namespace schema.Namespace
}

// Unit is the statement list of one definition.
type Unit struct {
	// Name is the definition name as declared.
	Name      string
	Namespace schema.Namespace
	Stmts     []Stmt
	// Imports lists the other namespaces the statements reference, sorted.
	Imports []schema.Namespace
	// Warnings collects the warnings and notes raised while emitting.
	Warnings *diagnostic.Diagnostics
}

type unitBuilder struct {
	unit    *Unit
	opts    Options
	imports map[string]schema.Namespace
}

func newUnit(name string, ns schema.Namespace, opts Options) *unitBuilder {
	return &unitBuilder{
		unit:    &Unit{Name: name, Namespace: ns, Warnings: &diagnostic.Diagnostics{}},
		opts:    opts,
		imports: map[string]schema.Namespace{},
	}
}

func (b *unitBuilder) add(s ...Stmt) {
	b.unit.Stmts = append(b.unit.Stmts, s...)
}

// mapType maps t and records the namespace it has to be imported from.
func (b *unitBuilder) mapType(t schema.Type) typemap.Target {
	target := b.opts.Mapper.Map(t, b.opts.Namespace)
	if len(target.Namespace) > 0 {
		b.imports[target.Namespace.String()] = target.Namespace
	}

	return target
}

func (b *unitBuilder) done() *Unit {
	keys := make([]string, 0, len(b.imports))
	for k := range b.imports {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	for _, k := range keys {
		b.unit.Imports = append(b.unit.Imports, b.imports[k])
	}

	return b.unit
}

package emit

import (
	"github.com/music-group/flatbuffers/internal/diagnostic"
	"github.com/music-group/flatbuffers/internal/plan"
)

// RecordUnit emits the binding of one struct or table.
//
// Tables get a declaration, the root reader, one accessor per field in slot
// order, the keyed lookup when the table has a key, then the builder
// protocol. Structs have no vtable: they get accessors at fixed byte offsets
// and an inline constructor, never the start/add/end trio.
func RecordUnit(p *plan.RecordPlan, opts Options) *Unit {
	r := p.Record
	b := newUnit(r.Name, r.Namespace, opts)
	name := opts.Naming.Type(r.Name)

	b.add(DeclareRecord{Name: name, Fixed: r.Fixed, Doc: r.Doc})

	for _, f := range r.Fields {
		if f.Deprecated {
			b.unit.Warnings.AddInfo(diagnostic.CodeDeprecatedField,
				"deprecated field is not generated; its slot stays reserved", r.Name, f.Name)
		}
	}

	if r.Fixed {
		for _, f := range p.Fields {
			b.add(b.structAccessor(name, f))
		}

		b.add(b.createStruct(name, r))

		return b.done()
	}

	b.add(GetRootAs{Record: name})

	accessors := make([]Accessor, 0, len(p.Fields))

	for _, f := range p.Fields {
		a := b.accessor(name, f)
		accessors = append(accessors, a)
		b.add(a)
	}

	if p.Key != nil {
		b.add(b.lookup(name, accessors[p.Key.Field], p.Key))
	}

	b.builder(name, p)

	return b.done()
}

package emit

import (
	"fmt"
	"slices"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/music-group/flatbuffers/internal/diagnostic"
	"github.com/music-group/flatbuffers/internal/plan"
	"github.com/music-group/flatbuffers/internal/schema"
)

// builder emits the table builder protocol: start, one add per field in slot
// order (each vector field followed by its vector helper), end with the
// required assertions, the finish entry point of the root and the one-call
// constructor.
func (b *unitBuilder) builder(record string, p *plan.RecordPlan) {
	b.add(Start{Record: record, FieldCount: p.FieldCount()})

	adds := make([]Add, 0, len(p.Fields))

	for _, f := range p.Fields {
		a := b.addCall(record, f)
		adds = append(adds, a)
		b.add(a)

		if v, ok := f.Field.Type.(schema.Vector); ok {
			b.add(startVector(record, f.Field.Name, v.Elem))
		}
	}

	b.add(b.end(record, p))

	if p.IsRoot {
		b.add(Finish{Record: record, FileIdentifier: p.FileIdentifier})
	}

	b.add(Create{Record: record, Params: adds, Order: slices.Clone(p.WriteOrder)})
}

func (b *unitBuilder) addCall(record string, f plan.FieldPlan) Add {
	kind, _ := schema.Underlying(f.Field.Type)

	storage := StorageScalar

	switch {
	case f.Struct:
		storage = StorageStruct
	case f.Offset:
		storage = StorageOffset
	}

	return Add{
		Record:  record,
		Field:   f.Field.Name,
		Param:   b.opts.Naming.Param(f.Field.Name),
		Slot:    f.Slot,
		Kind:    kind,
		Type:    b.mapType(f.Field.Type),
		Storage: storage,
		Default: b.defaultOf(f),
	}
}

func (b *unitBuilder) end(record string, p *plan.RecordPlan) End {
	e := End{Record: record}

	for _, f := range p.Required() {
		e.Required = append(e.Required, Required{Field: f.Field.Name, Slot: f.Slot})
	}

	for _, f := range p.Fields {
		if f.Field.Required && f.Scalar() {
			b.unit.Warnings.AddWarning(diagnostic.CodeRequiredScalar,
				fmt.Sprintf("required has no effect on scalar field %q", f.Field.Name),
				b.unit.Name, f.Field.Name)
		}
	}

	return e
}

func startVector(record, field string, elem schema.Type) StartVector {
	s := StartVector{Record: record, Field: field, ElemSize: flatbuffers.SizeUOffsetT, Alignment: flatbuffers.SizeUOffsetT}

	if k, ok := schema.Underlying(elem); ok {
		s.ElemSize, s.Alignment = k.Size(), k.Size()
	} else if st, ok := elem.(schema.StructRef); ok {
		l := plan.Layout(st.Def)
		s.ElemSize, s.Alignment = l.Size, l.Align
	}

	return s
}

func (b *unitBuilder) lookup(record string, key Accessor, kp *plan.KeyPlan) LookupByKey {
	if !kp.Comparable {
		b.unit.Warnings.AddWarning(diagnostic.CodeUnsupportedKey,
			fmt.Sprintf("lookup by %s key %q is a placeholder", key.Type.Expr, key.Field),
			b.unit.Name, key.Field)
	}

	return LookupByKey{Record: record, Key: key, Comparable: kp.Comparable}
}

// createStruct emits the inline constructor of a struct. Nested struct
// fields are flattened into prefixed parameters.
func (b *unitBuilder) createStruct(record string, r *schema.RecordDef) CreateStruct {
	cs := CreateStruct{Record: record}
	cs.Params = b.structParams(r, "", cs.Params)

	next := len(cs.Params) - 1
	cs.Ops = structOps(r, &next, nil)

	return cs
}

func (b *unitBuilder) structParams(r *schema.RecordDef, prefix string, params []StructParam) []StructParam {
	for _, f := range liveFields(r) {
		name := prefix + f.Name

		if st, ok := f.Type.(schema.StructRef); ok {
			params = b.structParams(st.Def, name+"_", params)
			continue
		}

		kind, _ := schema.Underlying(f.Type)
		params = append(params, StructParam{
			Param: b.opts.Naming.Param(name),
			Kind:  kind,
			Type:  b.mapType(f.Type),
		})
	}

	return params
}

// structOps walks the fields back to front, since the builder grows
// downwards. next counts down through the flattened parameters.
func structOps(r *schema.RecordDef, next *int, ops []StructOp) []StructOp {
	layout := plan.Layout(r)
	ops = append(ops, StructOp{Op: StructOpPrep, Align: layout.Align, Size: layout.Size})

	fields := liveFields(r)
	for i := len(fields) - 1; i >= 0; i-- {
		if pad := layout.Padding(i); pad > 0 {
			ops = append(ops, StructOp{Op: StructOpPad, Pad: pad})
		}

		if st, ok := fields[i].Type.(schema.StructRef); ok {
			ops = structOps(st.Def, next, ops)
			continue
		}

		ops = append(ops, StructOp{Op: StructOpPut, Param: *next})
		*next--
	}

	return ops
}

func liveFields(r *schema.RecordDef) []*schema.FieldDef {
	out := make([]*schema.FieldDef, 0, len(r.Fields))

	for _, f := range r.Fields {
		if !f.Deprecated {
			out = append(out, f)
		}
	}

	return out
}

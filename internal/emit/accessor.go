package emit

import (
	"fmt"

	"github.com/music-group/flatbuffers/internal/diagnostic"
	"github.com/music-group/flatbuffers/internal/plan"
	"github.com/music-group/flatbuffers/internal/schema"
)

func (b *unitBuilder) defaultOf(f plan.FieldPlan) Default {
	if !f.HasDefault {
		return Default{}
	}

	d := Default{Literal: f.Default.Literal}
	if f.Default.Enumerator != nil {
		d.Enumerator = b.opts.Naming.Enumerator(f.Default.Enumerator.Name)
	}

	return d
}

// accessor emits the vtable accessor of one table field. Fields that cannot
// be read in place get a placeholder and a warning.
func (b *unitBuilder) accessor(record string, f plan.FieldPlan) Accessor {
	kind, _ := schema.Underlying(f.Field.Type)
	target := b.mapType(f.Field.Type)

	a := Accessor{
		Record:   record,
		Field:    f.Field.Name,
		Member:   b.opts.Naming.Member(f.Field.Name),
		Slot:     f.Slot,
		VOffset:  f.VOffset,
		Kind:     kind,
		Type:     target,
		Default:  b.defaultOf(f),
		Readable: target.Readable,
		Doc:      f.Field.Doc,
	}

	if !a.Readable {
		b.unit.Warnings.AddWarning(diagnostic.CodeUnsupportedAccessor,
			fmt.Sprintf("accessor for %s field %q is not generated", f.Field.Type, f.Field.Name),
			b.unit.Name, f.Field.Name)
	}

	return a
}

func (b *unitBuilder) structAccessor(record string, f plan.FieldPlan) StructAccessor {
	kind, _ := schema.Underlying(f.Field.Type)
	target := b.mapType(f.Field.Type)

	a := StructAccessor{
		Record:     record,
		Field:      f.Field.Name,
		Member:     b.opts.Naming.Member(f.Field.Name),
		ByteOffset: f.ByteOffset,
		Kind:       kind,
		Type:       target,
		Readable:   target.Readable,
		Doc:        f.Field.Doc,
	}

	if !a.Readable {
		b.unit.Warnings.AddWarning(diagnostic.CodeUnsupportedAccessor,
			fmt.Sprintf("accessor for nested struct field %q is not generated", f.Field.Name),
			b.unit.Name, f.Field.Name)
	}

	return a
}

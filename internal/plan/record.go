package plan

import (
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/music-group/flatbuffers/internal/schema"
)

// FieldPlan is one emitted field of a record.
type FieldPlan struct {
	Field *schema.FieldDef
	// Slot is the field's vtable slot: its index among emitted fields in
	// declaration order.
	Slot int
	// VOffset is the byte offset of the slot inside the vtable.
	VOffset int
	// SortSize is the size class used for sortbysize write ordering.
	SortSize int
	// Default is the normalised default of scalar-stored fields.
	Default schema.Value
	// HasDefault is set when Default is meaningful.
	HasDefault bool
	// Offset is set when the builder value is a child offset (string, vector,
	// table, union).
	Offset bool
	// Struct is set for inline struct fields, built in place by the caller.
	Struct bool
	// ByteOffset is the fixed position of the field inside a struct.
	ByteOffset int
}

// Scalar reports whether the field is stored as an inline scalar.
func (f FieldPlan) Scalar() bool {
	return !f.Offset && !f.Struct
}

// RecordPlan is the field plan of one struct or table.
type RecordPlan struct {
	Record *schema.RecordDef
	// Fields are the emitted fields in slot order.
	Fields []FieldPlan
	// WriteOrder lists indexes into Fields in builder write order.
	WriteOrder []int
	// IsRoot is set when the record is the schema's root table.
	IsRoot bool
	// FileIdentifier is the root's buffer identifier, if declared.
	FileIdentifier string
	// Layout is the fixed layout of a struct, nil for tables.
	Layout *StructLayout
	// Key is the keyed lookup plan of a table with a key, nil otherwise.
	Key *KeyPlan
}

// KeyPlan describes the key a table's sorted vectors are searched by.
type KeyPlan struct {
	// Field indexes into RecordPlan.Fields.
	Field int
	// Comparable is set when the key can be compared without reading
	// out-of-line data.
	Comparable bool
}

// FieldCount is the number of emitted fields, the argument of the builder's
// start call.
func (p *RecordPlan) FieldCount() int {
	return len(p.Fields)
}

// Ordered returns the fields in builder write order.
func (p *RecordPlan) Ordered() []FieldPlan {
	out := make([]FieldPlan, 0, len(p.WriteOrder))
	for _, i := range p.WriteOrder {
		out = append(out, p.Fields[i])
	}

	return out
}

// Required returns the required fields that get a presence check, in slot
// order. Scalars are never checked.
func (p *RecordPlan) Required() []FieldPlan {
	var out []FieldPlan

	for _, f := range p.Fields {
		if f.Field.Required && !f.Scalar() {
			out = append(out, f)
		}
	}

	return out
}

// VOffset returns the vtable byte offset of a slot.
func VOffset(slot int) int {
	return (flatbuffers.VtableMetadataFields + slot) * flatbuffers.SizeVOffsetT
}

// Build computes the plan of record r within schema s.
func Build(r *schema.RecordDef, s *schema.Schema) (*RecordPlan, error) {
	p := &RecordPlan{Record: r}

	for _, f := range r.Fields {
		if f.Deprecated {
			continue
		}

		def, ok, err := schema.DefaultValue(f)
		if err != nil {
			return nil, fmt.Errorf("planning %s: %w", r.Name, err)
		}

		slot := len(p.Fields)
		p.Fields = append(p.Fields, FieldPlan{
			Field:      f,
			Slot:       slot,
			VOffset:    VOffset(slot),
			SortSize:   schema.SortSize(f.Type),
			Default:    def,
			HasDefault: ok,
			Offset:     schema.IsOffset(f.Type),
			Struct:     schema.IsStruct(f.Type),
		})
	}

	p.WriteOrder = WriteOrder(p.Fields, r.SortBySize)

	if r.Fixed {
		layout := Layout(r)
		p.Layout = &layout

		for i := range p.Fields {
			p.Fields[i].ByteOffset = layout.Offsets[i]
		}
	}

	if s != nil && s.IsRoot(r) {
		p.IsRoot = true
		p.FileIdentifier = s.FileIdentifier
	}

	if r.HasKey && !r.Fixed {
		p.Key = keyPlan(p)
	}

	return p, nil
}

func keyPlan(p *RecordPlan) *KeyPlan {
	for i, f := range p.Fields {
		if !f.Field.Key {
			continue
		}

		kind, scalar := schema.Underlying(f.Field.Type)

		return &KeyPlan{Field: i, Comparable: scalar && kind != schema.ScalarBool}
	}

	return nil
}

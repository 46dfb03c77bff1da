package plan

import (
	"github.com/music-group/flatbuffers/internal/schema"
)

// StructLayout is the fixed byte layout of a struct.
type StructLayout struct {
	// Size is the total byte size including trailing padding.
	Size int
	// Align is the struct's minimum alignment.
	Align int
	// Offsets holds the byte offset of each field, in declaration order.
	Offsets []int
	// Sizes holds the inline byte size of each field.
	Sizes []int
}

// Padding returns the number of padding bytes that follow field i.
func (l StructLayout) Padding(i int) int {
	end := l.Size
	if i+1 < len(l.Offsets) {
		end = l.Offsets[i+1]
	}

	return end - l.Offsets[i] - l.Sizes[i]
}

// Layout lays out the fields of struct r. Every field is aligned to its own
// alignment and the struct is padded to a multiple of its largest alignment.
func Layout(r *schema.RecordDef) StructLayout {
	l := StructLayout{Align: 1}
	offset := 0

	for _, f := range r.Fields {
		if f.Deprecated {
			continue
		}

		size, align := inlineSize(f.Type)
		offset = alignUp(offset, align)
		l.Offsets = append(l.Offsets, offset)
		l.Sizes = append(l.Sizes, size)
		offset += size
		l.Align = max(l.Align, align)
	}

	l.Size = alignUp(offset, l.Align)

	return l
}

// inlineSize returns the size and alignment of a value stored inline in a
// struct: scalars, enums and nested structs.
func inlineSize(t schema.Type) (size, align int) {
	if k, ok := schema.Underlying(t); ok {
		return k.Size(), k.Size()
	}

	if s, ok := t.(schema.StructRef); ok {
		nested := Layout(s.Def)
		return nested.Size, nested.Align
	}

	panic("plan: " + t.String() + " cannot be stored inline in a struct")
}

func alignUp(n, align int) int {
	if align <= 1 {
		return n
	}

	return (n + align - 1) / align * align
}

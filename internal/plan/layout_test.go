package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/music-group/flatbuffers/internal/schema"
)

func TestLayout(t *testing.T) {
	s := mustParse(t, `
structs:
  - name: Vec3
    fields:
      - {name: x, type: float}
      - {name: y, type: float}
      - {name: z, type: float}
  - name: Padded
    fields:
      - {name: a, type: byte}
      - {name: b, type: int}
      - {name: c, type: short}
  - name: Outer
    fields:
      - {name: pos, type: Vec3}
      - {name: flag, type: bool}
      - {name: weight, type: double}
`)

	tests := []struct {
		name    string
		offsets []int
		size    int
		align   int
	}{
		{"Vec3", []int{0, 4, 8}, 12, 4},
		{"Padded", []int{0, 4, 8}, 12, 4},
		{"Outer", []int{0, 12, 16}, 24, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustBuild(t, s, tt.name)
			require.NotNil(t, p.Layout)

			assert.Equal(t, tt.offsets, p.Layout.Offsets)
			assert.Equal(t, tt.size, p.Layout.Size)
			assert.Equal(t, tt.align, p.Layout.Align)

			for i, f := range p.Fields {
				assert.Equal(t, tt.offsets[i], f.ByteOffset, f.Field.Name)
			}

			assert.Nil(t, p.Key)
		})
	}
}

func TestLayout_EnumUsesUnderlyingSize(t *testing.T) {
	s := mustParse(t, `
enums:
  - {name: Kind, type: ushort, values: [A, B]}
structs:
  - name: S
    fields:
      - {name: k, type: Kind}
      - {name: n, type: long}
`)
	p := mustBuild(t, s, "S")

	assert.Equal(t, []int{0, 8}, p.Layout.Offsets)
	assert.Equal(t, 16, p.Layout.Size)
}

func TestLayout_PanicsOnOffsetField(t *testing.T) {
	r := &schema.RecordDef{Name: "Bad", Fixed: true, Fields: []*schema.FieldDef{
		{Name: "s", Type: schema.Str{}},
	}}

	assert.Panics(t, func() { Layout(r) })
}

func TestWriteOrder_EmptyInput(t *testing.T) {
	assert.Empty(t, WriteOrder(nil, true))
	assert.Empty(t, WriteOrder(nil, false))
}

func TestLayout_Padding(t *testing.T) {
	s := mustParse(t, `
structs:
  - name: Padded
    fields:
      - {name: a, type: byte}
      - {name: b, type: int}
      - {name: c, type: short}
`)
	l := mustBuild(t, s, "Padded").Layout

	assert.Equal(t, []int{1, 4, 2}, l.Sizes)
	assert.Equal(t, 3, l.Padding(0))
	assert.Equal(t, 0, l.Padding(1))
	assert.Equal(t, 2, l.Padding(2))
}

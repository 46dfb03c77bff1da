package plan

import (
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/music-group/flatbuffers/internal/schema"
)

// dump prints values field by field. spew's String method handling breaks on
// the single-pointer reference types.
var dump = spew.ConfigState{Indent: "  ", DisableMethods: true, MaxDepth: 4}

func mustParse(t *testing.T, doc string) *schema.Schema {
	t.Helper()

	s, err := schema.Parse([]byte(doc))
	require.NoError(t, err)
	require.True(t, schema.Validate(s).IsValid(), "schema must be valid: %v", schema.Validate(s).Error())

	return s
}

func mustBuild(t *testing.T, s *schema.Schema, name string) *RecordPlan {
	t.Helper()

	r := s.Record(name)
	require.NotNil(t, r, name)

	p, err := Build(r, s)
	require.NoError(t, err)

	return p
}

func fieldNames(fields []FieldPlan) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Field.Name)
	}

	return names
}

func TestBuild_MonsterScenario(t *testing.T) {
	s := mustParse(t, `
tables:
  - name: Monster
    fields:
      - {name: hp, type: short, default: 100}
      - {name: name, type: string, required: true}
`)
	p := mustBuild(t, s, "Monster")

	assert.Equal(t, 2, p.FieldCount())
	assert.Equal(t, []string{"hp", "name"}, fieldNames(p.Fields))
	assert.Equal(t, []string{"hp", "name"}, fieldNames(p.Ordered()))

	assert.Equal(t, 0, p.Fields[0].Slot)
	assert.Equal(t, 4, p.Fields[0].VOffset)
	assert.Equal(t, "100", p.Fields[0].Default.Literal)
	assert.True(t, p.Fields[0].Scalar())

	assert.Equal(t, 1, p.Fields[1].Slot)
	assert.Equal(t, 6, p.Fields[1].VOffset)
	assert.True(t, p.Fields[1].Offset)
	assert.False(t, p.Fields[1].HasDefault)

	required := p.Required()
	require.Len(t, required, 1)
	assert.Equal(t, "name", required[0].Field.Name)
	assert.Equal(t, 1, required[0].Slot)

	assert.False(t, p.IsRoot)
	assert.Nil(t, p.Layout)
	assert.Nil(t, p.Key)
}

func TestBuild_SlotsAreContiguousAndSkipDeprecated(t *testing.T) {
	s := mustParse(t, `
tables:
  - name: T
    fields:
      - {name: a, type: int}
      - {name: old, type: int, deprecated: true}
      - {name: b, type: string}
      - {name: older, type: "[int]", deprecated: true}
      - {name: c, type: double}
`)
	p := mustBuild(t, s, "T")

	assert.Equal(t, []string{"a", "b", "c"}, fieldNames(p.Fields))
	assert.Equal(t, 3, p.FieldCount())

	for i, f := range p.Fields {
		assert.Equal(t, i, f.Slot, dump.Sdump(f.Field))
		assert.Equal(t, VOffset(i), f.VOffset)
	}
}

func TestBuild_SortBySizeKeepsSlots(t *testing.T) {
	s := mustParse(t, `
tables:
  - name: T
    sortbysize: true
    fields:
      - {name: a, type: byte}
      - {name: b, type: long}
      - {name: c, type: short}
      - {name: d, type: int}
      - {name: e, type: long}
      - {name: f, type: string}
      - {name: g, type: bool}
`)
	p := mustBuild(t, s, "T")

	assert.Equal(t, []int{4, 1, 5, 3, 2, 6, 0}, p.WriteOrder)
	assert.Equal(t, []string{"e", "b", "f", "d", "c", "g", "a"}, fieldNames(p.Ordered()))

	// Slot numbering is declaration order regardless of write order.
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g"}, fieldNames(p.Fields))
	for i, f := range p.Fields {
		assert.Equal(t, i, f.Slot)
	}

	assert.Equal(t, 7, p.FieldCount())
}

func TestBuild_FieldCountIndependentOfSortOrder(t *testing.T) {
	doc := `
tables:
  - name: T
    sortbysize: %s
    fields:
      - {name: a, type: byte}
      - {name: b, type: "[long]"}
      - {name: c, type: double}
`
	sorted := mustBuild(t, mustParse(t, fmt.Sprintf(doc, "true")), "T")
	unsorted := mustBuild(t, mustParse(t, fmt.Sprintf(doc, "false")), "T")

	assert.Equal(t, unsorted.FieldCount(), sorted.FieldCount())
	assert.Equal(t, []int{0, 1, 2}, unsorted.WriteOrder)
	assert.Equal(t, []int{2, 1, 0}, sorted.WriteOrder)
	assert.ElementsMatch(t, unsorted.WriteOrder, sorted.WriteOrder)
}

func TestBuild_EmptyRecord(t *testing.T) {
	s := mustParse(t, "tables: [{name: Empty, fields: []}]")
	p := mustBuild(t, s, "Empty")

	assert.Empty(t, p.Fields)
	assert.Empty(t, p.WriteOrder)
	assert.Equal(t, 0, p.FieldCount())
}

func TestBuild_RootDetection(t *testing.T) {
	s := mustParse(t, `
root_type: A
file_identifier: ABCD
tables:
  - {name: A, fields: [{name: x, type: int}]}
  - {name: B, fields: [{name: x, type: int}]}
`)
	a := mustBuild(t, s, "A")
	b := mustBuild(t, s, "B")

	assert.True(t, a.IsRoot)
	assert.Equal(t, "ABCD", a.FileIdentifier)
	assert.False(t, b.IsRoot)
	assert.Empty(t, b.FileIdentifier)
}

func TestBuild_RequiredScalarIsNotChecked(t *testing.T) {
	s := mustParse(t, `
tables:
  - name: T
    fields:
      - {name: a, type: int, required: true}
      - {name: b, type: "[ubyte]", required: true}
      - {name: c, type: string}
      - {name: d, type: string, required: true}
`)
	p := mustBuild(t, s, "T")

	assert.Equal(t, []string{"b", "d"}, fieldNames(p.Required()))
}

func TestBuild_Key(t *testing.T) {
	s := mustParse(t, `
tables:
  - name: ById
    fields:
      - {name: label, type: string}
      - {name: id, type: ulong, key: true}
  - name: ByName
    fields:
      - {name: name, type: string, key: true}
`)
	byID := mustBuild(t, s, "ById")
	require.NotNil(t, byID.Key)
	assert.Equal(t, 1, byID.Key.Field)
	assert.True(t, byID.Key.Comparable)

	byName := mustBuild(t, s, "ByName")
	require.NotNil(t, byName.Key)
	assert.False(t, byName.Key.Comparable)
}

func TestBuild_InvalidDefault(t *testing.T) {
	r := &schema.RecordDef{Name: "T", Fields: []*schema.FieldDef{
		{Name: "a", Type: schema.Scalar{Kind: schema.ScalarInt8}, Default: "1000"},
	}}

	_, err := Build(r, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "planning T")
}

func TestBuild_Idempotent(t *testing.T) {
	s := mustParse(t, `
tables:
  - name: T
    sortbysize: true
    fields:
      - {name: a, type: byte}
      - {name: b, type: long}
`)
	first := mustBuild(t, s, "T")
	second := mustBuild(t, s, "T")

	assert.Equal(t, first, second)
}

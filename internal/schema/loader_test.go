package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_Monster(t *testing.T) {
	s, err := LoadFile("testdata/monster.yaml")
	require.NoError(t, err)

	assert.Equal(t, "MyGame.Sample", s.Namespace.String())
	assert.Equal(t, "MONS", s.FileIdentifier)
	assert.Equal(t, "monster", s.FileName)
	require.Len(t, s.Enums, 2)
	require.Len(t, s.Records, 3)

	// Structs are declared before tables.
	assert.Equal(t, "Vec3", s.Records[0].Name)
	assert.True(t, s.Records[0].Fixed)
	assert.Equal(t, "Monster", s.Records[1].Name)
	assert.False(t, s.Records[1].Fixed)

	root := s.Root()
	require.NotNil(t, root)
	assert.Equal(t, "Monster", root.Name)
	assert.True(t, s.IsRoot(root))
	assert.False(t, s.IsRoot(s.Records[2]))

	color := s.Enum("Color")
	require.NotNil(t, color)
	assert.Equal(t, ScalarInt8, color.Underlying)
	require.Len(t, color.Values, 3)
	assert.Equal(t, int64(1), color.Values[1].Value, "missing value continues from the previous one")
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read schema file")
}

func TestParse_UnionInsertsTypeField(t *testing.T) {
	s, err := LoadFile("testdata/monster.yaml")
	require.NoError(t, err)

	monster := s.Record("Monster")
	require.NotNil(t, monster)

	utype := monster.Field("equipped_type")
	require.NotNil(t, utype)
	assert.IsType(t, UnionType{}, utype.Type)

	names := make([]string, 0, len(monster.Fields))
	for _, f := range monster.Fields {
		names = append(names, f.Name)
	}

	assert.Equal(t, []string{
		"pos", "mana", "hp", "name", "friendly", "inventory", "color", "weapons", "equipped_type", "equipped",
	}, names)

	equipment := s.Enum("Equipment")
	require.NotNil(t, equipment)
	assert.True(t, equipment.IsUnion)
	require.Len(t, equipment.Values, 2)
	assert.Equal(t, "NONE", equipment.Values[0].Name)
	assert.Same(t, s.Record("Weapon"), equipment.Values[1].Table)
}

func TestParse_FieldTypes(t *testing.T) {
	s, err := LoadFile("testdata/monster.yaml")
	require.NoError(t, err)

	monster := s.Record("Monster")

	assert.Equal(t, StructRef{Def: s.Record("Vec3")}, monster.Field("pos").Type)
	assert.Equal(t, Scalar{Kind: ScalarInt16}, monster.Field("hp").Type)
	assert.Equal(t, Str{}, monster.Field("name").Type)
	assert.Equal(t, Vector{Elem: Scalar{Kind: ScalarUint8}}, monster.Field("inventory").Type)
	assert.Equal(t, Vector{Elem: TableRef{Def: s.Record("Weapon")}}, monster.Field("weapons").Type)
	assert.Equal(t, EnumRef{Def: s.Enum("Color")}, monster.Field("color").Type)
	assert.Equal(t, "100", monster.Field("hp").Default)
	assert.True(t, monster.Field("name").Required)
	assert.True(t, monster.Field("friendly").Deprecated)

	weapon := s.Record("Weapon")
	assert.True(t, weapon.HasKey, "a key field marks the table as keyed")
	assert.Equal(t, "name", weapon.KeyField().Name)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "unknown type",
			yaml: "tables: [{name: T, fields: [{name: a, type: Nope}]}]",
			want: "unresolved_type",
		},
		{
			name: "misspelled table",
			yaml: "tables: [{name: Weapon, fields: []}, {name: T, fields: [{name: a, type: Weapn}]}]",
			want: `unknown type "Weapn", did you mean "Weapon"?`,
		},
		{
			name: "misspelled scalar",
			yaml: "tables: [{name: T, fields: [{name: a, type: '[ushrt]'}]}]",
			want: `did you mean "ushort"?`,
		},
		{
			name: "nested vector",
			yaml: "tables: [{name: T, fields: [{name: a, type: '[[int]]'}]}]",
			want: "nested vector",
		},
		{
			name: "duplicate definition",
			yaml: "tables: [{name: T, fields: []}, {name: T, fields: []}]",
			want: "duplicate_definition",
		},
		{
			name: "float enum",
			yaml: "enums: [{name: E, type: float, values: [A]}]",
			want: "invalid_enum",
		},
		{
			name: "union over struct",
			yaml: "unions: [{name: U, members: [S]}]\nstructs: [{name: S, fields: [{name: a, type: int}]}]",
			want: "not a table",
		},
		{
			name: "malformed yaml",
			yaml: "tables: [",
			want: "failed to parse schema YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParse_UnknownTypeWithoutHint(t *testing.T) {
	_, err := Parse([]byte("tables: [{name: T, fields: [{name: a, type: Galaxy}]}]"))
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestParse_DocForms(t *testing.T) {
	s, err := Parse([]byte(`
tables:
  - name: A
    doc: [first line, second line]
    fields:
      - {name: f, type: int, doc: single}
`))
	require.NoError(t, err)

	a := s.Record("A")
	assert.Equal(t, []string{"first line", "second line"}, a.Doc)
	assert.Equal(t, []string{"single"}, a.Field("f").Doc)
	assert.Equal(t, "schema", s.FileName)
}

func TestMarshal_RoundTripsDocLines(t *testing.T) {
	out, err := Marshal(&Document{
		Tables: []RecordDoc{{Name: "A", Doc: StringOrArray{"one"}}},
	})
	require.NoError(t, err)
	assert.Contains(t, string(out), "doc: one")
}

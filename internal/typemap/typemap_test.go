package typemap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/music-group/flatbuffers/internal/schema"
)

type fixture struct {
	home   schema.Namespace
	other  schema.Namespace
	vec3   *schema.RecordDef
	weapon *schema.RecordDef
	color  *schema.EnumDef
	equip  *schema.EnumDef
}

func newFixture() fixture {
	home := schema.ParseNamespace("MyGame.Sample")
	other := schema.ParseNamespace("MyGame.Other")

	return fixture{
		home:   home,
		other:  other,
		vec3:   &schema.RecordDef{Name: "Vec3", Namespace: home, Fixed: true},
		weapon: &schema.RecordDef{Name: "Weapon", Namespace: other},
		color:  &schema.EnumDef{Name: "Color", Namespace: other, Underlying: schema.ScalarInt8},
		equip:  &schema.EnumDef{Name: "Equipment", Namespace: home, Underlying: schema.ScalarUint8, IsUnion: true},
	}
}

func TestGo_Map(t *testing.T) {
	f := newFixture()
	m := Go{}

	tests := []struct {
		name string
		typ  schema.Type
		want Target
	}{
		{"bool", schema.Scalar{Kind: schema.ScalarBool}, Target{Expr: "bool", Readable: true}},
		{"short", schema.Scalar{Kind: schema.ScalarInt16}, Target{Expr: "int16", Readable: true}},
		{"double", schema.Scalar{Kind: schema.ScalarFloat64}, Target{Expr: "float64", Readable: true}},
		{"string", schema.Str{}, Target{Expr: "string", Offset: true}},
		{"vector", schema.Vector{Elem: schema.Scalar{Kind: schema.ScalarUint8}}, Target{Expr: "[]uint8", Offset: true}},
		{"struct", schema.StructRef{Def: f.vec3}, Target{Expr: "*Vec3", Name: "Vec3"}},
		{
			"foreign table", schema.TableRef{Def: f.weapon},
			Target{Expr: "*MyGame__Other.Weapon", Name: "Weapon", Namespace: f.other, Offset: true},
		},
		{
			"foreign enum", schema.EnumRef{Def: f.color},
			Target{Expr: "MyGame__Other.Color", Name: "Color", Namespace: f.other, Readable: true},
		},
		{"union", schema.UnionRef{Def: f.equip}, Target{Expr: "flatbuffers.Table", Offset: true}},
		{"union type", schema.UnionType{Def: f.equip}, Target{Expr: "Equipment", Name: "Equipment", Readable: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Map(tt.typ, f.home))
		})
	}
}

func TestGo_SinglePackageNeverQualifies(t *testing.T) {
	f := newFixture()

	got := Go{SinglePackage: true}.Map(schema.EnumRef{Def: f.color}, f.home)

	assert.Equal(t, "Color", got.Expr)
	assert.Empty(t, got.Namespace)
	assert.Equal(t, "ColorRed", got.Qualified("ColorRed"))
}

func TestTarget_Qualified(t *testing.T) {
	f := newFixture()

	got := Go{}.Map(schema.EnumRef{Def: f.color}, f.home)

	assert.Equal(t, "MyGame__Other.ColorRed", got.Qualified("ColorRed"))
}

func TestSwift_Map(t *testing.T) {
	f := newFixture()
	m := Swift{}

	assert.Equal(t, "UInt16", m.Map(schema.Scalar{Kind: schema.ScalarUint16}, nil).Expr)
	assert.Equal(t, "Float", m.Map(schema.Scalar{Kind: schema.ScalarFloat32}, nil).Expr)
	assert.Equal(t, "String", m.Map(schema.Str{}, nil).Expr)
	assert.Equal(t, "Array<Int32>", m.Map(schema.Vector{Elem: schema.Scalar{Kind: schema.ScalarInt32}}, nil).Expr)
	assert.Equal(t, "Array<Never>", m.Map(schema.Vector{Elem: schema.TableRef{Def: f.weapon}}, nil).Expr)

	for _, typ := range []schema.Type{schema.StructRef{Def: f.vec3}, schema.TableRef{Def: f.weapon}, schema.UnionRef{Def: f.equip}} {
		got := m.Map(typ, f.home)
		assert.Equal(t, Never, got.Expr, typ.String())
		assert.False(t, got.Readable, typ.String())
	}

	color := m.Map(schema.EnumRef{Def: f.color}, f.home)
	assert.Equal(t, "Color", color.Expr)
	assert.True(t, color.Readable)
	assert.Empty(t, color.Namespace)
}

func TestMappers_CoverEveryScalarKind(t *testing.T) {
	for k := schema.ScalarBool; int(k) < schema.ScalarKindTotal; k++ {
		assert.NotEmpty(t, GoScalar(k), k.String())
		assert.NotEmpty(t, SwiftScalar(k), k.String())
	}
}

func TestMappers_ReadableMatchesUnderlying(t *testing.T) {
	f := newFixture()
	types := []schema.Type{
		schema.Scalar{Kind: schema.ScalarInt32},
		schema.Str{},
		schema.Vector{Elem: schema.Str{}},
		schema.StructRef{Def: f.vec3},
		schema.TableRef{Def: f.weapon},
		schema.EnumRef{Def: f.color},
		schema.UnionRef{Def: f.equip},
		schema.UnionType{Def: f.equip},
	}

	for _, m := range []Mapper{Go{}, Swift{}} {
		for _, typ := range types {
			got := m.Map(typ, f.home)
			assert.Equal(t, schema.IsScalar(typ), got.Readable, typ.String())
			assert.Equal(t, schema.IsOffset(typ), got.Offset, typ.String())
		}
	}
}

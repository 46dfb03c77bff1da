package schema

import (
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"
)

// Type is the semantic type of a field. The set of implementations is closed:
// Scalar, Str, Vector, StructRef, TableRef, EnumRef, UnionRef and UnionType.
// Code that needs to branch on a Type does so through Match, so that a new
// variant fails to compile wherever a TypeMatcher does not handle it.
type Type interface {
	isType()
	// String returns the schema spelling of the type, e.g. "[short]".
	String() string
}

// Scalar is an inline scalar value.
type Scalar struct {
	Kind ScalarKind
}

// Str is a UTF-8 string, stored out of line behind an offset.
type Str struct{}

// Vector is a vector of Elem, stored out of line behind an offset.
type Vector struct {
	Elem Type
}

// StructRef is a fixed-layout struct stored inline.
type StructRef struct {
	Def *RecordDef
}

// TableRef is a child table stored out of line behind an offset.
type TableRef struct {
	Def *RecordDef
}

// EnumRef is an enum stored inline as its underlying scalar.
type EnumRef struct {
	Def *EnumDef
}

// UnionRef is the value half of a union field: an offset to one of the
// union's member tables.
type UnionRef struct {
	Def *EnumDef
}

// UnionType is the discriminator half of a union field. Parsers insert it as a
// hidden "<field>_type" field directly before the union value field.
type UnionType struct {
	Def *EnumDef
}

func (Scalar) isType()    {}
func (Str) isType()       {}
func (Vector) isType()    {}
func (StructRef) isType() {}
func (TableRef) isType()  {}
func (EnumRef) isType()   {}
func (UnionRef) isType()  {}
func (UnionType) isType() {}

func (t Scalar) String() string { return t.Kind.SchemaName() }
func (Str) String() string      { return "string" }
func (t Vector) String() string { return "[" + t.Elem.String() + "]" }

func (t StructRef) String() string { return t.Def.Name }
func (t TableRef) String() string  { return t.Def.Name }
func (t EnumRef) String() string   { return t.Def.Name }
func (t UnionRef) String() string  { return t.Def.Name }
func (t UnionType) String() string { return t.Def.Name + "_type" }

// TypeMatcher handles every Type variant. Implementations are the exhaustive
// switch over the type system; adding a variant adds a method here.
type TypeMatcher[R any] interface {
	Scalar(kind ScalarKind) R
	Str() R
	Vector(elem Type) R
	Struct(def *RecordDef) R
	Table(def *RecordDef) R
	Enum(def *EnumDef) R
	Union(def *EnumDef) R
	UnionType(def *EnumDef) R
}

// Match dispatches t to the matching method of m.
// It panics on a Type implementation outside this package, which can only be
// a programming error.
func Match[R any](t Type, m TypeMatcher[R]) R {
	switch t := t.(type) {
	case Scalar:
		return m.Scalar(t.Kind)
	case Str:
		return m.Str()
	case Vector:
		return m.Vector(t.Elem)
	case StructRef:
		return m.Struct(t.Def)
	case TableRef:
		return m.Table(t.Def)
	case EnumRef:
		return m.Enum(t.Def)
	case UnionRef:
		return m.Union(t.Def)
	case UnionType:
		return m.UnionType(t.Def)
	}

	panic(fmt.Sprintf("schema: unhandled type variant %T", t))
}

// Underlying returns the scalar kind a value of t is stored as, if t is stored
// inline as a scalar (scalars, enums and union discriminators).
func Underlying(t Type) (ScalarKind, bool) {
	return Match[underlying](t, underlyingMatcher{}).unpack()
}

type underlying struct {
	kind ScalarKind
	ok   bool
}

func (u underlying) unpack() (ScalarKind, bool) { return u.kind, u.ok }

type underlyingMatcher struct{}

func (underlyingMatcher) Scalar(k ScalarKind) underlying { return underlying{k, true} }
func (underlyingMatcher) Str() underlying { return underlying{} }
func (underlyingMatcher) Vector(Type) underlying { return underlying{} }
func (underlyingMatcher) Struct(*RecordDef) underlying { return underlying{} }
func (underlyingMatcher) Table(*RecordDef) underlying { return underlying{} }
func (underlyingMatcher) Enum(d *EnumDef) underlying { return underlying{d.Underlying, true} }
func (underlyingMatcher) Union(*EnumDef) underlying { return underlying{} }
func (underlyingMatcher) UnionType(d *EnumDef) underlying { return underlying{d.Underlying, true} }

// IsScalar reports whether values of t are inline scalars.
func IsScalar(t Type) bool {
	_, ok := Underlying(t)
	return ok
}

// IsStruct reports whether t is an inline fixed struct.
func IsStruct(t Type) bool {
	_, ok := t.(StructRef)
	return ok
}

// IsOffset reports whether values of t live out of line and are referenced
// through a uoffset from the owning record.
func IsOffset(t Type) bool {
	return !IsScalar(t) && !IsStruct(t)
}

// SortSize is the size class a field of type t is bucketed into when a table
// is built with sortbysize. Non-scalar fields count as one uoffset.
func SortSize(t Type) int {
	if k, ok := Underlying(t); ok {
		return k.Size()
	}

	return flatbuffers.SizeUOffsetT
}

package typemap

import (
	"github.com/music-group/flatbuffers/internal/naming"
	"github.com/music-group/flatbuffers/internal/schema"
)

// Swift maps schema types to Swift types. Swift modules have no package
// qualification, so the referencing namespace is ignored.
type Swift struct{}

var swiftScalars = [schema.ScalarKindTotal]string{
	schema.ScalarBool:    "Bool",
	schema.ScalarInt8:    "Int8",
	schema.ScalarUint8:   "UInt8",
	schema.ScalarInt16:   "Int16",
	schema.ScalarUint16:  "UInt16",
	schema.ScalarInt32:   "Int32",
	schema.ScalarUint32:  "UInt32",
	schema.ScalarInt64:   "Int64",
	schema.ScalarUint64:  "UInt64",
	schema.ScalarFloat32: "Float",
	schema.ScalarFloat64: "Double",
}

// SwiftScalar returns the Swift type of a scalar kind.
func SwiftScalar(k schema.ScalarKind) string {
	return swiftScalars[k]
}

// Never is the uninhabited placeholder type of values the Swift target has
// no accessor for.
const Never = "Never"

// Map implements Mapper.
func (Swift) Map(t schema.Type, _ schema.Namespace) Target {
	return schema.Match[Target](t, swiftMatcher{})
}

type swiftMatcher struct{}

func (swiftMatcher) Scalar(k schema.ScalarKind) Target {
	return Target{Expr: SwiftScalar(k), Readable: true}
}

func (swiftMatcher) Str() Target {
	return Target{Expr: "String", Offset: true}
}

func (m swiftMatcher) Vector(elem schema.Type) Target {
	return Target{Expr: "Array<" + schema.Match[Target](elem, m).Expr + ">", Offset: true}
}

func (swiftMatcher) Struct(def *schema.RecordDef) Target {
	return Target{Expr: Never, Name: naming.Swift.Type(def.Name)}
}

func (swiftMatcher) Table(def *schema.RecordDef) Target {
	return Target{Expr: Never, Name: naming.Swift.Type(def.Name), Offset: true}
}

func (swiftMatcher) Enum(def *schema.EnumDef) Target {
	name := naming.Swift.Type(def.Name)

	return Target{Expr: name, Name: name, Readable: true}
}

func (swiftMatcher) Union(def *schema.EnumDef) Target {
	return Target{Expr: Never, Name: naming.Swift.Type(def.Name), Offset: true}
}

func (m swiftMatcher) UnionType(def *schema.EnumDef) Target {
	return m.Enum(def)
}

package typemap

import (
	"strings"

	"github.com/music-group/flatbuffers/internal/naming"
	"github.com/music-group/flatbuffers/internal/schema"
)

// Go maps schema types to Go types.
type Go struct {
	// SinglePackage disables namespace qualification: every definition is
	// generated into one package.
	SinglePackage bool
}

var goScalars = [schema.ScalarKindTotal]string{
	schema.ScalarBool:    "bool",
	schema.ScalarInt8:    "int8",
	schema.ScalarUint8:   "uint8",
	schema.ScalarInt16:   "int16",
	schema.ScalarUint16:  "uint16",
	schema.ScalarInt32:   "int32",
	schema.ScalarUint32:  "uint32",
	schema.ScalarInt64:   "int64",
	schema.ScalarUint64:  "uint64",
	schema.ScalarFloat32: "float32",
	schema.ScalarFloat64: "float64",
}

// GoScalar returns the Go type of a scalar kind.
func GoScalar(k schema.ScalarKind) string {
	return goScalars[k]
}

// Map implements Mapper.
func (g Go) Map(t schema.Type, from schema.Namespace) Target {
	return schema.Match[Target](t, goMatcher{single: g.SinglePackage, from: from})
}

type goMatcher struct {
	single bool
	from   schema.Namespace
}

func (m goMatcher) named(name string, ns schema.Namespace) Target {
	name = naming.Go.Type(name)
	if m.single || ns.Equal(m.from) || len(ns) == 0 {
		return Target{Expr: name, Name: name}
	}

	return Target{Expr: GoPackageAlias(ns) + "." + name, Name: name, Namespace: ns}
}

// GoPackageAlias is the name a namespace's package is imported under. It
// joins the whole namespace with "__", so A.X and B.X never share an alias.
func GoPackageAlias(ns schema.Namespace) string {
	return strings.Join(ns, "__")
}

func (m goMatcher) Scalar(k schema.ScalarKind) Target {
	return Target{Expr: GoScalar(k), Readable: true}
}

func (m goMatcher) Str() Target {
	return Target{Expr: "string", Offset: true}
}

func (m goMatcher) Vector(elem schema.Type) Target {
	return Target{Expr: "[]" + schema.Match[Target](elem, m).Expr, Offset: true}
}

func (m goMatcher) Struct(def *schema.RecordDef) Target {
	t := m.named(def.Name, def.Namespace)
	t.Expr = "*" + t.Expr

	return t
}

func (m goMatcher) Table(def *schema.RecordDef) Target {
	t := m.named(def.Name, def.Namespace)
	t.Expr = "*" + t.Expr
	t.Offset = true

	return t
}

func (m goMatcher) Enum(def *schema.EnumDef) Target {
	t := m.named(def.Name, def.Namespace)
	t.Readable = true

	return t
}

func (m goMatcher) Union(*schema.EnumDef) Target {
	return Target{Expr: "flatbuffers.Table", Offset: true}
}

func (m goMatcher) UnionType(def *schema.EnumDef) Target {
	return m.Enum(def)
}

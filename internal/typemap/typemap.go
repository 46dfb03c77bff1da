// Package typemap maps schema field types to target-language type
// expressions.
//
// Every mapper is a schema.TypeMatcher, so the set of handled variants is
// checked by the compiler.
package typemap

import (
	"github.com/music-group/flatbuffers/internal/schema"
)

// Target is the mapped form of a schema type.
type Target struct {
	// Expr is the full type expression, qualified when needed.
	Expr string
	// Name is the unqualified name of a named type (enum, struct, table).
	Name string
	// Namespace is set when the named type lives outside the namespace of the
	// referencing unit and has to be qualified.
	Namespace schema.Namespace
	// Readable is set when an accessor can read the value directly: scalars,
	// enums and union discriminators.
	Readable bool
	// Offset is set when the value travels as a child offset in builder calls.
	Offset bool
}

// Qualified returns ident prefixed the way Expr qualifies Name. It is used
// for identifiers derived from a named type, such as enum constants.
func (t Target) Qualified(ident string) string {
	if len(t.Namespace) == 0 {
		return ident
	}

	return GoPackageAlias(t.Namespace) + "." + ident
}

// Mapper maps a schema type as referenced from namespace from.
type Mapper interface {
	Map(t schema.Type, from schema.Namespace) Target
}

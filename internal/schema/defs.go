package schema

import (
	"path/filepath"
	"strings"
)

// Namespace is the dotted namespace a definition is declared in, split into
// its components. The zero value is the global namespace.
type Namespace []string

// ParseNamespace splits a dotted namespace such as "MyGame.Sample".
func ParseNamespace(s string) Namespace {
	if s == "" {
		return nil
	}

	return strings.Split(s, ".")
}

// String returns the dotted form of the namespace.
func (ns Namespace) String() string {
	return strings.Join(ns, ".")
}

// Dir returns the relative directory output files of this namespace go to.
func (ns Namespace) Dir() string {
	if len(ns) == 0 {
		return ""
	}

	return filepath.Join(ns...)
}

// Last returns the innermost namespace component, or "" for the global namespace.
func (ns Namespace) Last() string {
	if len(ns) == 0 {
		return ""
	}

	return ns[len(ns)-1]
}

// Equal reports whether both namespaces name the same scope.
func (ns Namespace) Equal(other Namespace) bool {
	return ns.String() == other.String()
}

// FieldDef is a single field of a struct or table.
type FieldDef struct {
	Name string
	Type Type
	// Default is the declared default literal, empty when none was declared.
	// Scalars default to zero, enums to their zero value.
	Default    string
	Deprecated bool
	// Required is only meaningful for offset-typed table fields.
	Required bool
	// Key marks the field the table is sorted by in keyed vectors.
	Key bool
	Doc []string
}

// RecordDef is a struct (Fixed) or table definition.
type RecordDef struct {
	Name      string
	Namespace Namespace
	// Fields in declaration order, deprecated fields included.
	Fields []*FieldDef
	// Fixed is set for structs: inline, fixed layout, no vtable.
	Fixed bool
	// SortBySize reorders builder writes by descending field size.
	SortBySize bool
	// HasKey enables keyed lookup generation over sorted vectors of the table.
	HasKey bool
	// Deprecated records are skipped by the generator entirely.
	Deprecated bool
	Doc        []string
}

// FullName returns the namespace-qualified name of the record.
func (r *RecordDef) FullName() string {
	return qualify(r.Namespace, r.Name)
}

// KeyField returns the non-deprecated field marked as key, or nil.
func (r *RecordDef) KeyField() *FieldDef {
	for _, f := range r.Fields {
		if f.Key && !f.Deprecated {
			return f
		}
	}

	return nil
}

// Field returns the field with the given name, or nil.
func (r *RecordDef) Field(name string) *FieldDef {
	for _, f := range r.Fields {
		if f.Name == name {
			return f
		}
	}

	return nil
}

// EnumVal is a single enumerator. For unions, Table names the member table.
type EnumVal struct {
	Name  string
	Value int64
	Table *RecordDef
	Doc   []string
}

// EnumDef is an enum, or a union when IsUnion is set.
type EnumDef struct {
	Name       string
	Namespace  Namespace
	Underlying ScalarKind
	// Values in declaration order.
	Values  []EnumVal
	IsUnion bool
	Doc     []string
}

// FullName returns the namespace-qualified name of the enum.
func (e *EnumDef) FullName() string {
	return qualify(e.Namespace, e.Name)
}

// Lookup returns the enumerator with the given name.
func (e *EnumDef) Lookup(name string) (EnumVal, bool) {
	for _, v := range e.Values {
		if v.Name == name {
			return v, true
		}
	}

	return EnumVal{}, false
}

// ByValue returns the first enumerator with the given value.
func (e *EnumDef) ByValue(value int64) (EnumVal, bool) {
	for _, v := range e.Values {
		if v.Value == value {
			return v, true
		}
	}

	return EnumVal{}, false
}

// Schema is a fully resolved schema ready for generation.
type Schema struct {
	// Namespace is the default namespace of the schema file.
	Namespace Namespace
	Enums     []*EnumDef
	// Records holds structs and tables in declaration order.
	Records []*RecordDef
	// RootType names the table designated as the buffer root, if any.
	RootType string
	// FileIdentifier is the optional 4-character buffer identifier.
	FileIdentifier string
	// FileName is the base name used for one-file output.
	FileName string
	// OneFile requests a single combined output unit.
	OneFile bool
}

// Root returns the designated root record, or nil when none is designated or
// the designated name does not resolve.
func (s *Schema) Root() *RecordDef {
	if s.RootType == "" {
		return nil
	}

	return s.Record(s.RootType)
}

// IsRoot reports whether r is the schema's designated root.
func (s *Schema) IsRoot(r *RecordDef) bool {
	root := s.Root()
	return root != nil && root == r
}

// Record resolves a record by plain or namespace-qualified name.
func (s *Schema) Record(name string) *RecordDef {
	for _, r := range s.Records {
		if r.Name == name || r.FullName() == name {
			return r
		}
	}

	return nil
}

// Enum resolves an enum or union by plain or namespace-qualified name.
func (s *Schema) Enum(name string) *EnumDef {
	for _, e := range s.Enums {
		if e.Name == name || e.FullName() == name {
			return e
		}
	}

	return nil
}

func qualify(ns Namespace, name string) string {
	if len(ns) == 0 {
		return name
	}

	return ns.String() + "." + name
}

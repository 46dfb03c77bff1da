package emit

import (
	"github.com/music-group/flatbuffers/internal/schema"
	"github.com/music-group/flatbuffers/internal/typemap"
)

// Stmt is one emission statement. The set of statements is closed; renderers
// handle all of them through Visitor.
type Stmt interface {
	accept(v Visitor) error
}

// Visitor handles every statement kind.
type Visitor interface {
	DeclareRecord(s DeclareRecord) error
	GetRootAs(s GetRootAs) error
	Accessor(s Accessor) error
	StructAccessor(s StructAccessor) error
	LookupByKey(s LookupByKey) error
	Start(s Start) error
	Add(s Add) error
	StartVector(s StartVector) error
	End(s End) error
	Finish(s Finish) error
	Create(s Create) error
	CreateStruct(s CreateStruct) error
	Enum(s Enum) error
}

// Walk visits stmts in order and stops at the first error.
func Walk(stmts []Stmt, v Visitor) error {
	for _, s := range stmts {
		if err := s.accept(v); err != nil {
			return err
		}
	}

	return nil
}

// Default is a field default as seen by generated code.
type Default struct {
	// Literal is the canonical scalar spelling.
	Literal string
	// Enumerator is the identifier of the enumerator the value names, empty
	// when the field is not enum-typed or the value has no enumerator.
	Enumerator string
}

// DeclareRecord opens the binding of a struct or table.
type DeclareRecord struct {
	Name  string
	Fixed bool
	Doc   []string
}

// GetRootAs declares the entry point reading a table from the root of a
// buffer.
type GetRootAs struct {
	Record string
}

// Accessor reads a table field through its vtable slot, falling back to
// Default when the slot is absent.
type Accessor struct {
	Record string
	// Field is the schema name of the field.
	Field string
	// Member is the accessor identifier.
	Member  string
	Slot    int
	VOffset int
	// Kind is the storage kind, valid when Readable.
	Kind    schema.ScalarKind
	Type    typemap.Target
	Default Default
	// Readable is unset for offset-typed and struct fields. Their accessor is
	// a flagged placeholder.
	Readable bool
	Doc      []string
}

// StructAccessor reads a struct field at a fixed byte offset.
type StructAccessor struct {
	Record     string
	Field      string
	Member     string
	ByteOffset int
	Kind       schema.ScalarKind
	Type       typemap.Target
	// Readable is unset for nested struct fields, which get a placeholder.
	Readable bool
	Doc      []string
}

// LookupByKey declares a binary search over a sorted vector of tables.
type LookupByKey struct {
	Record string
	Key    Accessor
	// Comparable is set when the key can be compared in place. Keys stored
	// out of line get a flagged placeholder.
	Comparable bool
}

// Start opens a table in the builder.
type Start struct {
	Record string
	// FieldCount is the number of emitted fields.
	FieldCount int
}

// Add writes one field into its vtable slot. Default is passed along so the
// builder can elide values equal to it.
type Add struct {
	Record  string
	Field   string
	Param   string
	Slot    int
	Kind    schema.ScalarKind
	Type    typemap.Target
	Storage Storage
	Default Default
}

// StartVector opens a vector for a vector-typed field.
type StartVector struct {
	Record    string
	Field     string
	ElemSize  int
	Alignment int
}

// Required asserts that a slot was written.
type Required struct {
	Field string
	Slot  int
}

// End closes a table, asserting every required slot in slot order.
type End struct {
	Record   string
	Required []Required
}

// Finish declares the buffer finish entry point of the root table.
type Finish struct {
	Record string
	// FileIdentifier is empty when the schema declares none.
	FileIdentifier string
}

// Create builds a whole table in one call: start, every add in write order,
// end. Params are in slot order.
type Create struct {
	Record string
	Params []Add
	// Order indexes Params in builder write order.
	Order []int
}

// Ordered returns the add calls in builder write order.
func (c Create) Ordered() []Add {
	out := make([]Add, 0, len(c.Order))
	for _, i := range c.Order {
		out = append(out, c.Params[i])
	}

	return out
}

// StructParam is one flattened scalar parameter of a struct constructor.
type StructParam struct {
	Param string
	Kind  schema.ScalarKind
	Type  typemap.Target
}

// StructOp is one builder call of a struct constructor.
type StructOp struct {
	Op StructOpKind
	// Align and Size are set for StructOpPrep.
	Align, Size int
	// Pad is set for StructOpPad.
	Pad int
	// Param indexes CreateStruct.Params for StructOpPut.
	Param int
}

// CreateStruct writes a struct inline. Structs are written back to front, so
// Ops walk the fields in reverse, padding included.
type CreateStruct struct {
	Record string
	Params []StructParam
	Ops    []StructOp
}

// EnumValue is one enumerator.
type EnumValue struct {
	Name  string
	Value int64
	Doc   []string
}

// Enum declares an enum or union discriminator type.
type Enum struct {
	Name       string
	Underlying typemap.Target
	Kind       schema.ScalarKind
	// Values in declaration order.
	Values  []EnumValue
	IsUnion bool
	Doc     []string
}

func (s DeclareRecord) accept(v Visitor) error  { return v.DeclareRecord(s) }
func (s GetRootAs) accept(v Visitor) error      { return v.GetRootAs(s) }
func (s Accessor) accept(v Visitor) error       { return v.Accessor(s) }
func (s StructAccessor) accept(v Visitor) error { return v.StructAccessor(s) }
func (s LookupByKey) accept(v Visitor) error    { return v.LookupByKey(s) }
func (s Start) accept(v Visitor) error          { return v.Start(s) }
func (s Add) accept(v Visitor) error            { return v.Add(s) }
func (s StartVector) accept(v Visitor) error    { return v.StartVector(s) }
func (s End) accept(v Visitor) error            { return v.End(s) }
func (s Finish) accept(v Visitor) error         { return v.Finish(s) }
func (s Create) accept(v Visitor) error         { return v.Create(s) }
func (s CreateStruct) accept(v Visitor) error   { return v.CreateStruct(s) }
func (s Enum) accept(v Visitor) error           { return v.Enum(s) }

package emit

//go:generate go tool stringer -type=Storage,StructOpKind -output=storage_string.go

// Storage is how a field value is passed to the builder.
type Storage int

const (
	_ Storage = iota
	// StorageScalar values are written inline by the add call.
	StorageScalar
	// StorageOffset values are child offsets created before the table.
	StorageOffset
	// StorageStruct values are structs written inline right before the add
	// call.
	StorageStruct
	StorageTotal
)

// StructOpKind is the kind of a struct constructor builder call.
type StructOpKind int

const (
	_ StructOpKind = iota
	StructOpPrep
	StructOpPad
	StructOpPut
	StructOpKindTotal
)

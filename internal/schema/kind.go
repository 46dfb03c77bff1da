package schema

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

//go:generate go tool stringer -type=ScalarKind -trimprefix=Scalar -output=kind_string.go

// ScalarKind is the kind of a scalar value stored inline in a record.
type ScalarKind int

const (
	_ ScalarKind = iota // skip zero value, use it as a default (invalid) value for ScalarKind

	ScalarBool
	ScalarInt8
	ScalarUint8
	ScalarInt16
	ScalarUint16
	ScalarInt32
	ScalarUint32
	ScalarInt64
	ScalarUint64
	ScalarFloat32
	ScalarFloat64

	// ScalarKindTotal is a constant that represents the total number of kinds defined
	ScalarKindTotal = int(iota)
)

// LargestScalarSize is the byte size of the widest scalar kind.
const LargestScalarSize = flatbuffers.SizeInt64

// Size returns the encoded byte size of the scalar.
func (k ScalarKind) Size() int {
	switch k {
	default:
		panic("size requested for invalid scalar kind: " + k.String())
	case ScalarBool:
		return flatbuffers.SizeBool
	case ScalarInt8:
		return flatbuffers.SizeInt8
	case ScalarUint8:
		return flatbuffers.SizeUint8
	case ScalarInt16:
		return flatbuffers.SizeInt16
	case ScalarUint16:
		return flatbuffers.SizeUint16
	case ScalarInt32:
		return flatbuffers.SizeInt32
	case ScalarUint32:
		return flatbuffers.SizeUint32
	case ScalarInt64:
		return flatbuffers.SizeInt64
	case ScalarUint64:
		return flatbuffers.SizeUint64
	case ScalarFloat32:
		return flatbuffers.SizeFloat32
	case ScalarFloat64:
		return flatbuffers.SizeFloat64
	}
}

// Bits returns the width of the scalar in bits.
func (k ScalarKind) Bits() int {
	return k.Size() * 8
}

func (k ScalarKind) IsValid() bool {
	return k > 0 && int(k) < ScalarKindTotal
}

func (k ScalarKind) IsInteger() bool {
	switch k {
	default:
		return false
	case ScalarInt8, ScalarUint8, ScalarInt16, ScalarUint16,
		ScalarInt32, ScalarUint32, ScalarInt64, ScalarUint64:
		return true
	}
}

func (k ScalarKind) IsSigned() bool {
	switch k {
	default:
		return false
	case ScalarInt8, ScalarInt16, ScalarInt32, ScalarInt64:
		return true
	}
}

func (k ScalarKind) IsFloat() bool {
	switch k {
	default:
		return false
	case ScalarFloat32, ScalarFloat64:
		return true
	}
}

// scalarNames maps schema spellings to scalar kinds. Both the classic names and
// the sized aliases are accepted.
var scalarNames = map[string]ScalarKind{
	"bool":    ScalarBool,
	"byte":    ScalarInt8,
	"int8":    ScalarInt8,
	"ubyte":   ScalarUint8,
	"uint8":   ScalarUint8,
	"short":   ScalarInt16,
	"int16":   ScalarInt16,
	"ushort":  ScalarUint16,
	"uint16":  ScalarUint16,
	"int":     ScalarInt32,
	"int32":   ScalarInt32,
	"uint":    ScalarUint32,
	"uint32":  ScalarUint32,
	"long":    ScalarInt64,
	"int64":   ScalarInt64,
	"ulong":   ScalarUint64,
	"uint64":  ScalarUint64,
	"float":   ScalarFloat32,
	"float32": ScalarFloat32,
	"double":  ScalarFloat64,
	"float64": ScalarFloat64,
}

var schemaNames = [...]string{
	ScalarBool:    "bool",
	ScalarInt8:    "byte",
	ScalarUint8:   "ubyte",
	ScalarInt16:   "short",
	ScalarUint16:  "ushort",
	ScalarInt32:   "int",
	ScalarUint32:  "uint",
	ScalarInt64:   "long",
	ScalarUint64:  "ulong",
	ScalarFloat32: "float",
	ScalarFloat64: "double",
}

// SchemaName returns the canonical schema spelling of the kind.
func (k ScalarKind) SchemaName() string {
	if !k.IsValid() {
		return k.String()
	}

	return schemaNames[k]
}

// ParseScalarKind resolves a schema scalar spelling such as "short" or "uint32".
func ParseScalarKind(name string) (ScalarKind, bool) {
	k, ok := scalarNames[name]
	return k, ok
}

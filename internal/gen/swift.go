package gen

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/music-group/flatbuffers/internal/emit"
	"github.com/music-group/flatbuffers/internal/naming"
	"github.com/music-group/flatbuffers/internal/schema"
	"github.com/music-group/flatbuffers/internal/typemap"
)

// swiftRenderer renders Swift bindings against the FlatBuffers Swift
// runtime. Output is not reformatted.
type swiftRenderer struct{}

func (swiftRenderer) Extension() string {
	return "swift"
}

func (swiftRenderer) Options(ns schema.Namespace, _ bool) emit.Options {
	return emit.Options{Mapper: typemap.Swift{}, Naming: naming.Swift, Namespace: ns}
}

func (swiftRenderer) RenderUnit(u *emit.Unit) (*Fragment, error) {
	v := &swiftVisitor{}

	if err := emit.Walk(u.Stmts, v); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", u.Name, err)
	}

	// Record members are nested in the declaration, close it after the last
	// statement.
	if v.open {
		v.buf.WriteString("}\n\n")
	}

	return &Fragment{Unit: u, Body: v.buf.String()}, nil
}

func (swiftRenderer) RenderFile(f *File) ([]byte, error) {
	var buf bytes.Buffer
	if err := swiftTemplates.ExecuteTemplate(&buf, "file", f); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return buf.Bytes(), nil
}

type swiftVisitor struct {
	buf  bytes.Buffer
	open bool
}

func (v *swiftVisitor) exec(name string, data any) error {
	if err := swiftTemplates.ExecuteTemplate(&v.buf, name, data); err != nil {
		return fmt.Errorf("executing %s template: %w", name, err)
	}

	return nil
}

func (v *swiftVisitor) DeclareRecord(s emit.DeclareRecord) error {
	v.open = true
	return v.exec("declare", s)
}

func (v *swiftVisitor) GetRootAs(s emit.GetRootAs) error {
	return v.exec("getRootAs", s)
}

func (v *swiftVisitor) Accessor(s emit.Accessor) error {
	return v.exec("accessor", s)
}

func (v *swiftVisitor) StructAccessor(s emit.StructAccessor) error {
	return v.exec("structAccessor", s)
}

func (v *swiftVisitor) LookupByKey(s emit.LookupByKey) error {
	return v.exec("lookup", s)
}

func (v *swiftVisitor) Start(s emit.Start) error {
	return v.exec("start", s)
}

func (v *swiftVisitor) Add(s emit.Add) error {
	return v.exec("add", s)
}

func (v *swiftVisitor) StartVector(s emit.StartVector) error {
	return v.exec("startVector", s)
}

func (v *swiftVisitor) End(s emit.End) error {
	return v.exec("end", s)
}

func (v *swiftVisitor) Finish(s emit.Finish) error {
	return v.exec("finish", s)
}

func (v *swiftVisitor) Create(s emit.Create) error {
	return v.exec("create", s)
}

func (v *swiftVisitor) CreateStruct(s emit.CreateStruct) error {
	return v.exec("createStruct", s)
}

func (v *swiftVisitor) Enum(s emit.Enum) error {
	return v.exec("enum", s)
}

func swiftIsEnum(t typemap.Target) bool {
	return t.Name != "" && t.Readable
}

// swiftRead returns the expression reading a value of kind k at position at.
// Unknown enum values fall back to the field default.
func swiftRead(t typemap.Target, k schema.ScalarKind, d emit.Default, at string) string {
	read := "_accessor.readBuffer(of: " + typemap.SwiftScalar(k) + ".self, at: " + at + ")"
	if swiftIsEnum(t) {
		return t.Expr + "(rawValue: " + read + ") ?? " + swiftFallback(t, d)
	}

	return read
}

// swiftReadFixed reads a struct field. Struct fields have no default, so an
// unknown enum value traps.
func swiftReadFixed(t typemap.Target, k schema.ScalarKind, at string) string {
	read := "_accessor.readBuffer(of: " + typemap.SwiftScalar(k) + ".self, at: " + at + ")"
	if swiftIsEnum(t) {
		return t.Expr + "(rawValue: " + read + ")!"
	}

	return read
}

func swiftFallback(t typemap.Target, d emit.Default) string {
	if !swiftIsEnum(t) {
		return d.Literal
	}

	if d.Enumerator != "" {
		return "." + d.Enumerator
	}

	return t.Expr + "(rawValue: " + d.Literal + ")!"
}

func swiftStored(t typemap.Target, param string) string {
	if swiftIsEnum(t) {
		return param + ".rawValue"
	}

	return param
}

func swiftAddType(a emit.Add) string {
	if a.Storage == emit.StorageScalar {
		return a.Type.Expr
	}

	return "Offset"
}

func swiftCreateType(a emit.Add) string {
	if a.Storage == emit.StorageStruct {
		return "(inout FlatBufferBuilder) -> Offset"
	}

	return swiftAddType(a)
}

func swiftAddCall(a emit.Add) string {
	if a.Storage == emit.StorageScalar {
		return fmt.Sprintf("builder.add(%d, %s, %s)", a.Slot, swiftStored(a.Type, a.Param), a.Default.Literal)
	}

	// A zero offset means the field is absent, so 0 is its default.
	return fmt.Sprintf("builder.add(%d, %s, 0)", a.Slot, a.Param)
}

func swiftCreateArg(a emit.Add) string {
	if a.Storage == emit.StorageStruct {
		return a.Param + "(&builder)"
	}

	return a.Param
}

func swiftStructOp(cs emit.CreateStruct, op emit.StructOp) string {
	switch op.Op {
	case emit.StructOpPrep:
		return fmt.Sprintf("builder.prep(%d, %d)", op.Align, op.Size)
	case emit.StructOpPad:
		return fmt.Sprintf("builder.pad(%d)", op.Pad)
	default:
		p := cs.Params[op.Param]
		return "builder.prepend(" + swiftStored(p.Type, p.Param) + ")"
	}
}

func swiftComment(indent string, doc []string) string {
	var sb strings.Builder

	for _, line := range doc {
		sb.WriteString(indent)
		sb.WriteString("///")

		if line != "" {
			sb.WriteString(" ")
			sb.WriteString(line)
		}

		sb.WriteString("\n")
	}

	return sb.String()
}

var swiftTemplates = template.Must(template.New("swift").Funcs(template.FuncMap{
	"comment":    swiftComment,
	"quote":      strconv.Quote,
	"part":       naming.Swift.Part,
	"scalar":     typemap.SwiftScalar,
	"isEnum":     swiftIsEnum,
	"read":       swiftRead,
	"readFixed":  swiftReadFixed,
	"fallback":   swiftFallback,
	"addType":    swiftAddType,
	"addCall":    swiftAddCall,
	"createType": swiftCreateType,
	"createArg":  swiftCreateArg,
	"op":         swiftStructOp,
}).Parse(`
{{define "file"}}// Code generated by flatc-bind. DO NOT EDIT.

import FlatBuffers

{{range .Bodies}}{{.}}{{end}}{{end}}

{{define "declare"}}{{comment "" .Doc}}public struct {{.Name}} {
    private var _accessor: {{if .Fixed}}Struct{{else}}Table{{end}}

    public init(_ bb: ByteBuffer, o: Int32) { _accessor = {{if .Fixed}}Struct{{else}}Table{{end}}(bb: bb, position: o) }

{{end}}

{{define "getRootAs"}}    public static func getRootAs{{.Record}}(_ bb: ByteBuffer) -> {{.Record}} { return {{.Record}}(bb, o: bb.rootOffset()) }

{{end}}

{{define "unsupported"}}    public var {{.Member}}: Never { fatalError({{quote (printf "%s.%s is not generated" .Record .Field)}}) }
{{end}}

{{define "accessor"}}{{if .Readable}}{{comment "    " .Doc}}    public var {{.Member}}: {{.Type.Expr}} { let o = _accessor.offset({{.VOffset}}); return o == 0 ? {{fallback .Type .Default}} : {{read .Type .Kind .Default "o"}} }
{{else}}{{template "unsupported" .}}{{end}}{{end}}

{{define "structAccessor"}}{{if .Readable}}{{comment "    " .Doc}}    public var {{.Member}}: {{.Type.Expr}} { return {{readFixed .Type .Kind (printf "%d" .ByteOffset)}} }
{{else}}{{template "unsupported" .}}{{end}}{{end}}

{{define "lookup"}}
{{if .Comparable}}    public static func lookupByKey(_ bb: ByteBuffer, vector: Int32, key: {{scalar .Key.Kind}}) -> {{.Record}}? {
        var span = bb.read(def: Int32.self, position: Int(vector - 4))
        var start: Int32 = 0
        while span != 0 {
            var middle = span / 2
            let obj = {{.Record}}(bb, o: Table.indirect(vector + 4 * (start + middle), bb))
            let value = obj.{{.Key.Member}}{{if isEnum .Key.Type}}.rawValue{{end}}
            if value > key {
                span = middle
            } else if value < key {
                middle += 1
                start += middle
                span -= middle
            } else {
                return obj
            }
        }
        return nil
    }
{{else}}    public static func lookupByKey(_ bb: ByteBuffer, vector: Int32, key: Never) -> {{.Record}}? { fatalError({{quote (printf "%s.%s is not generated" .Record .Key.Field)}}) }
{{end}}{{end}}

{{define "start"}}
    public static func start{{.Record}}(_ builder: inout FlatBufferBuilder) { builder.startObject({{.FieldCount}}) }
{{end}}

{{define "add"}}    public static func add{{part .Field}}(_ builder: inout FlatBufferBuilder, _ {{.Param}}: {{addType .}}) { {{addCall .}} }
{{end}}

{{define "startVector"}}    public static func start{{part .Field}}Vector(_ builder: inout FlatBufferBuilder, _ count: Int) { builder.startVector(count, elementSize: {{.ElemSize}}, alignment: {{.Alignment}}) }
{{end}}

{{define "end"}}    public static func end{{.Record}}(_ builder: inout FlatBufferBuilder) -> Offset {
        let o = builder.endObject()
{{range .Required}}        builder.required(o, {{.Slot}}) // {{.Field}}
{{end}}        return o
    }
{{end}}

{{define "finish"}}    public static func finish{{.Record}}Buffer(_ builder: inout FlatBufferBuilder, _ rootOffset: Offset) { builder.finish(rootOffset{{with .FileIdentifier}}, {{quote .}}{{end}}) }
{{end}}

{{define "create"}}
    public static func create{{.Record}}(_ builder: inout FlatBufferBuilder{{range .Params}}, {{.Param}}: {{createType .}}{{end}}) -> Offset {
        start{{.Record}}(&builder)
{{range .Ordered}}        add{{part .Field}}(&builder, {{createArg .}})
{{end}}        return end{{.Record}}(&builder)
    }
{{end}}

{{define "createStruct"}}
    public static func create{{.Record}}(_ builder: inout FlatBufferBuilder{{range .Params}}, {{.Param}}: {{.Type.Expr}}{{end}}) -> Offset {
{{range .Ops}}        {{op $ .}}
{{end}}        return builder.offset()
    }
{{end}}

{{define "enum"}}{{comment "" .Doc}}public enum {{.Name}}: {{.Underlying.Expr}} {
{{range .Distinct}}{{comment "    " .Doc}}    case {{.Name}} = {{.Value}}
{{end}}{{range .Aliases}}{{comment "    " .Doc}}    public static let {{.Name}} = {{$.Name}}(rawValue: {{.Value}})!
{{end}}}

{{end}}
`))

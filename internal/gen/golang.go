package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"path"
	"strconv"
	"strings"
	"text/template"

	"github.com/music-group/flatbuffers/internal/common"
	"github.com/music-group/flatbuffers/internal/emit"
	"github.com/music-group/flatbuffers/internal/naming"
	"github.com/music-group/flatbuffers/internal/schema"
	"github.com/music-group/flatbuffers/internal/typemap"
)

const flatbuffersImport = "github.com/google/flatbuffers/go"

// goRenderer renders Go bindings on top of the flatbuffers Go runtime.
type goRenderer struct {
	cfg Config
}

func (r *goRenderer) Extension() string {
	return "go"
}

func (r *goRenderer) Options(ns schema.Namespace, single bool) emit.Options {
	return emit.Options{
		Mapper:    typemap.Go{SinglePackage: single},
		Naming:    naming.Go,
		Namespace: ns,
	}
}

func (r *goRenderer) runtimeImport() string {
	if r.cfg.RuntimeImport == "" {
		return DefaultRuntimeImport
	}

	return r.cfg.RuntimeImport
}

// namespaceImport returns the import path of the package a namespace is
// generated into.
func (r *goRenderer) namespaceImport(ns schema.Namespace) string {
	return path.Join(append([]string{r.cfg.ImportBase}, ns...)...)
}

func (r *goRenderer) RenderUnit(u *emit.Unit) (*Fragment, error) {
	v := &goVisitor{
		imports:    map[string]ImportSpec{},
		referenced: map[string]bool{},
		runtime:    r.runtimeImport(),
	}

	if err := emit.Walk(u.Stmts, v); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", u.Name, err)
	}

	// Only namespaces whose identifiers made it into the body are imported,
	// anything else would not compile.
	for _, ns := range u.Imports {
		if v.referenced[ns.String()] {
			p := r.namespaceImport(ns)

			alias := typemap.GoPackageAlias(ns)
			if alias == common.PkgAlias(p) {
				alias = ""
			}

			v.use(p, alias)
		}
	}

	frag := &Fragment{Unit: u, Body: v.buf.String()}
	for _, imp := range v.imports {
		frag.Imports = append(frag.Imports, imp)
	}

	return frag, nil
}

func (r *goRenderer) RenderFile(f *File) ([]byte, error) {
	var buf bytes.Buffer
	if err := goTemplates.ExecuteTemplate(&buf, "file", f); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if r.cfg.OutputDir != "" {
			_ = writeDebugUnformatted(r.cfg.OutputDir, f.Path, buf.Bytes())
		}

		return nil, fmt.Errorf("formatting %s: %w", f.Path, err)
	}

	return formatted, nil
}

// goVisitor renders statements one template each and tracks what the
// rendered code needs imported.
type goVisitor struct {
	buf        bytes.Buffer
	imports    map[string]ImportSpec
	referenced map[string]bool
	runtime    string
}

func (v *goVisitor) use(p, alias string) {
	v.imports[p] = ImportSpec{Alias: alias, Path: p}
}

func (v *goVisitor) useFlatbuffers() {
	v.use(flatbuffersImport, "flatbuffers")
}

func (v *goVisitor) useRuntime() {
	v.use(v.runtime, "fbrt")
}

// reference marks the namespace of a type expression that appears in code.
func (v *goVisitor) reference(t typemap.Target) {
	if len(t.Namespace) > 0 {
		v.referenced[t.Namespace.String()] = true
	}
}

func (v *goVisitor) exec(name string, data any) error {
	if err := goTemplates.ExecuteTemplate(&v.buf, name, data); err != nil {
		return fmt.Errorf("executing %s template: %w", name, err)
	}

	return nil
}

func (v *goVisitor) DeclareRecord(s emit.DeclareRecord) error {
	v.useFlatbuffers()
	return v.exec("declare", s)
}

func (v *goVisitor) GetRootAs(s emit.GetRootAs) error {
	return v.exec("getRootAs", s)
}

func (v *goVisitor) Accessor(s emit.Accessor) error {
	if s.Readable {
		v.reference(s.Type)
	} else {
		v.useRuntime()
	}

	return v.exec("accessor", s)
}

func (v *goVisitor) StructAccessor(s emit.StructAccessor) error {
	if s.Readable {
		v.reference(s.Type)
	} else {
		v.useRuntime()
	}

	return v.exec("structAccessor", s)
}

func (v *goVisitor) LookupByKey(s emit.LookupByKey) error {
	if s.Comparable {
		v.reference(s.Key.Type)
	} else {
		v.useRuntime()
	}

	return v.exec("lookup", s)
}

func (v *goVisitor) Start(s emit.Start) error {
	return v.exec("start", s)
}

func (v *goVisitor) Add(s emit.Add) error {
	if s.Storage == emit.StorageScalar {
		v.reference(s.Type)
	}

	return v.exec("add", s)
}

func (v *goVisitor) StartVector(s emit.StartVector) error {
	return v.exec("startVector", s)
}

func (v *goVisitor) End(s emit.End) error {
	if len(s.Required) > 0 {
		v.useRuntime()
	}

	return v.exec("end", s)
}

func (v *goVisitor) Finish(s emit.Finish) error {
	if s.FileIdentifier != "" {
		v.useRuntime()
	}

	return v.exec("finish", s)
}

func (v *goVisitor) Create(s emit.Create) error {
	for _, p := range s.Params {
		if p.Storage == emit.StorageScalar {
			v.reference(p.Type)
		}
	}

	return v.exec("create", s)
}

func (v *goVisitor) CreateStruct(s emit.CreateStruct) error {
	v.useFlatbuffers()

	for _, p := range s.Params {
		v.reference(p.Type)
	}

	return v.exec("createStruct", s)
}

func (v *goVisitor) Enum(s emit.Enum) error {
	v.use("strconv", "")
	return v.exec("enum", s)
}

// goIsEnum reports whether a readable target is a named enum type rather
// than a plain scalar.
func goIsEnum(t typemap.Target) bool {
	return t.Name != ""
}

// goRead returns the expression reading a scalar of kind k at position at.
func goRead(t typemap.Target, k schema.ScalarKind, at string) string {
	get := "rcv._tab.Get" + k.String() + "(" + at + ")"
	if goIsEnum(t) {
		return t.Expr + "(" + get + ")"
	}

	return get
}

// goFallback returns the value an accessor returns for an absent field.
func goFallback(t typemap.Target, d emit.Default) string {
	if !goIsEnum(t) {
		return d.Literal
	}

	if d.Enumerator != "" {
		return t.Qualified(t.Name + d.Enumerator)
	}

	return t.Expr + "(" + d.Literal + ")"
}

// goStored converts a parameter to the scalar the builder stores.
func goStored(t typemap.Target, k schema.ScalarKind, param string) string {
	if goIsEnum(t) {
		return typemap.GoScalar(k) + "(" + param + ")"
	}

	return param
}

func goAddType(a emit.Add) string {
	if a.Storage == emit.StorageScalar {
		return a.Type.Expr
	}

	return "flatbuffers.UOffsetT"
}

func goAddCall(a emit.Add) string {
	switch a.Storage {
	case emit.StorageOffset:
		return "PrependUOffsetTSlot"
	case emit.StorageStruct:
		return "PrependStructSlot"
	default:
		return "Prepend" + a.Kind.String() + "Slot"
	}
}

func goAddValue(a emit.Add) string {
	if a.Storage == emit.StorageScalar {
		return goStored(a.Type, a.Kind, a.Param)
	}

	return a.Param
}

func goAddDefault(a emit.Add) string {
	if a.Storage == emit.StorageScalar {
		return a.Default.Literal
	}

	return "0"
}

func goCreateType(a emit.Add) string {
	if a.Storage == emit.StorageStruct {
		return "func(*flatbuffers.Builder) flatbuffers.UOffsetT"
	}

	return goAddType(a)
}

func goStructOp(cs emit.CreateStruct, op emit.StructOp) string {
	switch op.Op {
	case emit.StructOpPrep:
		return fmt.Sprintf("builder.Prep(%d, %d)", op.Align, op.Size)
	case emit.StructOpPad:
		return fmt.Sprintf("builder.Pad(%d)", op.Pad)
	default:
		p := cs.Params[op.Param]
		return "builder.Prepend" + p.Kind.String() + "(" + goStored(p.Type, p.Kind, p.Param) + ")"
	}
}

func goComment(doc []string) string {
	var sb strings.Builder

	for _, line := range doc {
		sb.WriteString("//")

		if line != "" {
			sb.WriteString(" ")
			sb.WriteString(line)
		}

		sb.WriteString("\n")
	}

	return sb.String()
}

var goTemplates = template.Must(template.New("go").Funcs(template.FuncMap{
	"comment":    goComment,
	"quote":      strconv.Quote,
	"part":       naming.Go.Part,
	"read":       goRead,
	"fallback":   goFallback,
	"addType":    goAddType,
	"addCall":    goAddCall,
	"addValue":   goAddValue,
	"addDefault": goAddDefault,
	"createType": goCreateType,
	"isStruct":   func(a emit.Add) bool { return a.Storage == emit.StorageStruct },
	"op":         goStructOp,
}).Parse(`
{{define "file"}}// Code generated by flatc-bind. DO NOT EDIT.

package {{.Package}}
{{with .Imports}}
import (
{{range .}}	{{if .Alias}}{{.Alias}} {{end}}{{quote .Path}}
{{end}})
{{end}}
{{range .Bodies}}{{.}}{{end}}{{end}}

{{define "declare"}}{{comment .Doc}}type {{.Name}} struct {
	_tab flatbuffers.{{if .Fixed}}Struct{{else}}Table{{end}}
}

func (rcv *{{.Name}}) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *{{.Name}}) Table() flatbuffers.Table {
	return rcv._tab{{if .Fixed}}.Table{{end}}
}

{{end}}

{{define "getRootAs"}}func GetRootAs{{.Record}}(buf []byte, offset flatbuffers.UOffsetT) *{{.Record}} {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &{{.Record}}{}
	x.Init(buf, n+offset)
	return x
}

{{end}}

{{define "unsupported"}}// {{.Member}} is not generated: {{.Type.Expr}} fields cannot be read in place.
func (rcv *{{.Record}}) {{.Member}}() fbrt.Unsupported {
	panic(fbrt.UnsupportedAccessor({{quote .Record}}, {{quote .Field}}))
}

{{end}}

{{define "accessor"}}{{if .Readable}}{{comment .Doc}}func (rcv *{{.Record}}) {{.Member}}() {{.Type.Expr}} {
	o := flatbuffers.UOffsetT(rcv._tab.Offset({{.VOffset}}))
	if o != 0 {
		return {{read .Type .Kind "o + rcv._tab.Pos"}}
	}
	return {{fallback .Type .Default}}
}

{{else}}{{template "unsupported" .}}{{end}}{{end}}

{{define "structAccessor"}}{{if .Readable}}{{comment .Doc}}func (rcv *{{.Record}}) {{.Member}}() {{.Type.Expr}} {
	return {{read .Type .Kind (printf "rcv._tab.Pos + flatbuffers.UOffsetT(%d)" .ByteOffset)}}
}

{{else}}{{template "unsupported" .}}{{end}}{{end}}

{{define "lookup"}}{{if .Comparable}}// {{.Record}}LookupByKey binary searches the sorted vector of {{.Record}} tables
// starting at vectorLocation for key. On a match obj points at the table.
func {{.Record}}LookupByKey(obj *{{.Record}}, key {{.Key.Type.Expr}}, vectorLocation flatbuffers.UOffsetT, buf []byte) bool {
	span := flatbuffers.GetUOffsetT(buf[vectorLocation-4:])
	start := flatbuffers.UOffsetT(0)
	for span != 0 {
		middle := span / 2
		loc := vectorLocation + 4*(start+middle)
		obj.Init(buf, loc+flatbuffers.GetUOffsetT(buf[loc:]))
		val := obj.{{.Key.Member}}()
		if val > key {
			span = middle
		} else if val < key {
			middle++
			start += middle
			span -= middle
		} else {
			return true
		}
	}
	return false
}

{{else}}// {{.Record}}LookupByKey is not generated: {{.Key.Type.Expr}} keys cannot be compared in place.
func {{.Record}}LookupByKey(obj *{{.Record}}, key fbrt.Unsupported, vectorLocation flatbuffers.UOffsetT, buf []byte) bool {
	panic(fbrt.UnsupportedAccessor({{quote .Record}}, {{quote .Key.Field}}))
}

{{end}}{{end}}

{{define "start"}}func {{.Record}}Start(builder *flatbuffers.Builder) {
	builder.StartObject({{.FieldCount}})
}

{{end}}

{{define "add"}}func {{.Record}}Add{{part .Field}}(builder *flatbuffers.Builder, {{.Param}} {{addType .}}) {
	builder.{{addCall .}}({{.Slot}}, {{addValue .}}, {{addDefault .}})
}

{{end}}

{{define "startVector"}}func {{.Record}}Start{{part .Field}}Vector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector({{.ElemSize}}, numElems, {{.Alignment}})
}

{{end}}

{{define "end"}}func {{.Record}}End(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	o := builder.EndObject()
{{range .Required}}	fbrt.Required(builder, o, {{.Slot}}) // {{.Field}}
{{end}}	return o
}

{{end}}

{{define "finish"}}{{if .FileIdentifier}}// {{.Record}}Identifier is the file identifier of {{.Record}} buffers.
const {{.Record}}Identifier = {{quote .FileIdentifier}}

func Finish{{.Record}}Buffer(builder *flatbuffers.Builder, offset flatbuffers.UOffsetT) {
	builder.FinishWithFileIdentifier(offset, []byte({{.Record}}Identifier))
}

func {{.Record}}BufferHasIdentifier(buf []byte) bool {
	return fbrt.BufferHasIdentifier(buf, {{.Record}}Identifier)
}

{{else}}func Finish{{.Record}}Buffer(builder *flatbuffers.Builder, offset flatbuffers.UOffsetT) {
	builder.Finish(offset)
}

{{end}}{{end}}

{{define "create"}}func Create{{.Record}}(builder *flatbuffers.Builder{{range .Params}}, {{.Param}} {{createType .}}{{end}}) flatbuffers.UOffsetT {
	{{.Record}}Start(builder)
{{range .Ordered}}{{if isStruct .}}	if {{.Param}} != nil {
		{{.Record}}Add{{part .Field}}(builder, {{.Param}}(builder))
	}
{{else}}	{{.Record}}Add{{part .Field}}(builder, {{.Param}})
{{end}}{{end}}	return {{.Record}}End(builder)
}

{{end}}

{{define "createStruct"}}func Create{{.Record}}(builder *flatbuffers.Builder{{range .Params}}, {{.Param}} {{.Type.Expr}}{{end}}) flatbuffers.UOffsetT {
{{range .Ops}}	{{op $ .}}
{{end}}	return builder.Offset()
}

{{end}}

{{define "enum"}}{{comment .Doc}}type {{.Name}} {{.Underlying.Expr}}

const (
{{range .Values}}{{comment .Doc}}	{{$.Name}}{{.Name}} {{$.Name}} = {{.Value}}
{{end}})

var EnumNames{{.Name}} = map[{{.Name}}]string{
{{range .Distinct}}	{{$.Name}}{{.Name}}: {{quote .Name}},
{{end}}}

var EnumValues{{.Name}} = map[string]{{.Name}}{
{{range .Values}}	{{quote .Name}}: {{$.Name}}{{.Name}},
{{end}}}

func (v {{.Name}}) String() string {
	if s, ok := EnumNames{{.Name}}[v]; ok {
		return s
	}
	return "{{.Name}}(" + {{if .Kind.IsSigned}}strconv.FormatInt(int64(v), 10){{else}}strconv.FormatUint(uint64(v), 10){{end}} + ")"
}

{{end}}
`))

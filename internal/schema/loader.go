package schema

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/music-group/flatbuffers/internal/diagnostic"
	"github.com/music-group/flatbuffers/internal/match"
)

// ErrInvalidSchema is returned when a schema document does not resolve.
var ErrInvalidSchema = errors.New("invalid schema")

// unionTypeSuffix names the hidden discriminator field of a union field.
const unionTypeSuffix = "_type"

// LoadFile loads and resolves a YAML schema document from the given path.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a resolved Schema.
func Parse(data []byte) (*Schema, error) {
	var doc Document

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	return Resolve(&doc)
}

// Marshal serializes a Document to YAML.
func Marshal(doc *Document) ([]byte, error) {
	return yaml.Marshal(doc)
}

// Resolve turns a document into a Schema, resolving every type name.
func Resolve(doc *Document) (*Schema, error) {
	applyDefaults(doc)

	r := &resolver{
		schema: &Schema{
			Namespace:      ParseNamespace(doc.Namespace),
			RootType:       doc.RootType,
			FileIdentifier: doc.FileIdentifier,
			FileName:       doc.FileName,
			OneFile:        doc.Options.OneFile,
		},
		diags: &diagnostic.Diagnostics{},
		seen:  map[string]struct{}{},
	}

	for i := range doc.Enums {
		r.declareEnum(&doc.Enums[i])
	}

	for i := range doc.Unions {
		r.declareUnion(&doc.Unions[i])
	}

	records := make([]*RecordDef, 0, len(doc.Structs)+len(doc.Tables))
	for i := range doc.Structs {
		records = append(records, r.declareRecord(&doc.Structs[i], true))
	}

	for i := range doc.Tables {
		records = append(records, r.declareRecord(&doc.Tables[i], false))
	}

	for i := range doc.Unions {
		r.resolveUnion(&doc.Unions[i])
	}

	docs := append(append([]RecordDoc{}, doc.Structs...), doc.Tables...)
	for i, rec := range records {
		r.resolveFields(rec, docs[i].Fields)
	}

	if err := r.diags.Error(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}

	return r.schema, nil
}

// applyDefaults fills in default values for optional document fields.
func applyDefaults(doc *Document) {
	if doc.FileName == "" {
		doc.FileName = "schema"
	}

	for i := range doc.Enums {
		if doc.Enums[i].Type == "" {
			doc.Enums[i].Type = "int"
		}
	}
}

type resolver struct {
	schema *Schema
	diags  *diagnostic.Diagnostics
	seen   map[string]struct{}
}

func (r *resolver) namespace(override string) Namespace {
	if override != "" {
		return ParseNamespace(override)
	}

	return r.schema.Namespace
}

func (r *resolver) claim(ns Namespace, name string) bool {
	full := qualify(ns, name)
	if _, ok := r.seen[full]; ok {
		r.diags.AddError(diagnostic.CodeDuplicateDefinition,
			fmt.Sprintf("%q is defined more than once", full), full, "")

		return false
	}

	r.seen[full] = struct{}{}

	return true
}

func (r *resolver) declareEnum(d *EnumDoc) {
	ns := r.namespace(d.Namespace)
	if !r.claim(ns, d.Name) {
		return
	}

	kind, ok := ParseScalarKind(d.Type)
	if !ok || !kind.IsInteger() {
		r.diags.AddError(diagnostic.CodeInvalidEnum,
			fmt.Sprintf("enum underlying type %q is not an integer type", d.Type), d.Name, "")

		return
	}

	def := &EnumDef{
		Name:       d.Name,
		Namespace:  ns,
		Underlying: kind,
		Doc:        d.Doc,
	}

	next := int64(0)
	for _, v := range d.Values {
		if v.Value != nil {
			next = *v.Value
		}

		def.Values = append(def.Values, EnumVal{Name: v.Name, Value: next, Doc: v.Doc})
		next++
	}

	r.schema.Enums = append(r.schema.Enums, def)
}

func (r *resolver) declareUnion(d *UnionDoc) {
	ns := r.namespace(d.Namespace)
	if !r.claim(ns, d.Name) {
		return
	}

	r.schema.Enums = append(r.schema.Enums, &EnumDef{
		Name:       d.Name,
		Namespace:  ns,
		Underlying: ScalarUint8,
		IsUnion:    true,
		Doc:        d.Doc,
	})
}

// resolveUnion fills in the members once all tables are declared. Value 0 is
// always NONE.
func (r *resolver) resolveUnion(d *UnionDoc) {
	def := r.schema.Enum(qualify(r.namespace(d.Namespace), d.Name))
	if def == nil {
		return
	}

	def.Values = []EnumVal{{Name: "NONE", Value: 0}}

	for i, member := range d.Members {
		table := r.schema.Record(member)
		if table == nil || table.Fixed {
			r.diags.AddError(diagnostic.CodeUnresolvedType,
				fmt.Sprintf("union member %q is not a table", member), d.Name, "")

			continue
		}

		def.Values = append(def.Values, EnumVal{Name: table.Name, Value: int64(i + 1), Table: table})
	}
}

func (r *resolver) declareRecord(d *RecordDoc, fixed bool) *RecordDef {
	ns := r.namespace(d.Namespace)
	r.claim(ns, d.Name)

	def := &RecordDef{
		Name:       d.Name,
		Namespace:  ns,
		Fixed:      fixed,
		SortBySize: d.SortBySize,
		HasKey:     d.HasKey,
		Deprecated: d.Deprecated,
		Doc:        d.Doc,
	}

	r.schema.Records = append(r.schema.Records, def)

	return def
}

func (r *resolver) resolveFields(def *RecordDef, fields []FieldDoc) {
	for _, f := range fields {
		typ, err := r.parseType(f.Type)
		if err != nil {
			r.diags.AddError(diagnostic.CodeUnresolvedType, err.Error(), def.Name, f.Name)
			continue
		}

		field := &FieldDef{
			Name:       f.Name,
			Type:       typ,
			Default:    string(f.Default),
			Deprecated: f.Deprecated,
			Required:   f.Required,
			Key:        f.Key,
			Doc:        f.Doc,
		}

		if u, ok := typ.(UnionRef); ok {
			def.Fields = append(def.Fields, &FieldDef{
				Name:       f.Name + unionTypeSuffix,
				Type:       UnionType{Def: u.Def},
				Deprecated: f.Deprecated,
			})
		}

		if f.Key {
			def.HasKey = true
		}

		def.Fields = append(def.Fields, field)
	}
}

// parseType resolves a schema type spelling: a scalar name, "string",
// "[T]" or the name of an enum, union, struct or table.
func (r *resolver) parseType(spelling string) (Type, error) {
	s := strings.TrimSpace(spelling)

	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		elem, err := r.parseType(s[1 : len(s)-1])
		if err != nil {
			return nil, err
		}

		if _, nested := elem.(Vector); nested {
			return nil, fmt.Errorf("nested vector type %q is not supported", spelling)
		}

		return Vector{Elem: elem}, nil
	}

	if s == "string" {
		return Str{}, nil
	}

	if k, ok := ParseScalarKind(s); ok {
		return Scalar{Kind: k}, nil
	}

	if e := r.schema.Enum(s); e != nil {
		if e.IsUnion {
			return UnionRef{Def: e}, nil
		}

		return EnumRef{Def: e}, nil
	}

	if rec := r.schema.Record(s); rec != nil {
		if rec.Fixed {
			return StructRef{Def: rec}, nil
		}

		return TableRef{Def: rec}, nil
	}

	if hint, ok := match.Closest(s, r.typeNames()); ok {
		return nil, fmt.Errorf("unknown type %q, did you mean %q?", spelling, hint)
	}

	return nil, fmt.Errorf("unknown type %q", spelling)
}

// typeNames lists every spelling parseType accepts for a named type.
func (r *resolver) typeNames() []string {
	names := []string{"string"}

	for k := ScalarKind(1); int(k) < ScalarKindTotal; k++ {
		names = append(names, k.SchemaName())
	}

	for _, e := range r.schema.Enums {
		names = append(names, e.Name, e.FullName())
	}

	for _, rec := range r.schema.Records {
		names = append(names, rec.Name, rec.FullName())
	}

	return names
}

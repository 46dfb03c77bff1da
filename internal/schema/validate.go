package schema

import (
	"fmt"

	"github.com/music-group/flatbuffers/internal/diagnostic"
)

// FileIdentifierLength is the exact length of a buffer file identifier.
const FileIdentifierLength = 4

// Validate checks the integrity conditions the generator relies on. These are
// not user-facing schema validation: every error indicates a schema the
// generator cannot emit correct bindings for, and aborts the run.
func Validate(s *Schema) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if s == nil {
		res.AddError("schema_is_nil", "schema is nil", "", "")
		return res
	}

	validateRoot(s, res)

	for _, e := range s.Enums {
		validateEnum(e, res)
	}

	for _, r := range s.Records {
		if r.Deprecated {
			continue
		}

		if r.Fixed {
			validateStruct(r, res)
		} else {
			validateTable(r, res)
		}

		validateFieldNames(r, res)

		for _, f := range r.Fields {
			if f.Deprecated {
				continue
			}

			if _, _, err := DefaultValue(f); err != nil {
				res.AddError(diagnostic.CodeInvalidDefault, err.Error(), r.Name, f.Name)
			}
		}
	}

	return res
}

func validateRoot(s *Schema, res *diagnostic.Diagnostics) {
	if s.FileIdentifier != "" && len(s.FileIdentifier) != FileIdentifierLength {
		res.AddError(diagnostic.CodeInvalidFileIdentifier,
			fmt.Sprintf("file identifier %q must be exactly %d bytes", s.FileIdentifier, FileIdentifierLength), "", "")
	}

	if s.RootType == "" {
		return
	}

	root := s.Root()
	switch {
	case root == nil:
		res.AddError(diagnostic.CodeRootNotFound,
			fmt.Sprintf("root type %q is not defined", s.RootType), s.RootType, "")
	case root.Fixed:
		res.AddError(diagnostic.CodeRootIsStruct,
			fmt.Sprintf("root type %q must be a table", s.RootType), s.RootType, "")
	}
}

func validateEnum(e *EnumDef, res *diagnostic.Diagnostics) {
	names := make(map[string]struct{}, len(e.Values))
	for _, v := range e.Values {
		if _, ok := names[v.Name]; ok {
			res.AddError(diagnostic.CodeDuplicateDefinition,
				fmt.Sprintf("enumerator %q is declared more than once", v.Name), e.Name, v.Name)
		}

		names[v.Name] = struct{}{}
	}

	if e.IsUnion {
		return
	}

	for _, v := range e.Values {
		if !fitsKind(e.Underlying, v.Value) {
			res.AddError(diagnostic.CodeInvalidEnum,
				fmt.Sprintf("value %d of %s does not fit %s", v.Value, v.Name, e.Underlying.SchemaName()), e.Name, v.Name)
		}
	}
}

func fitsKind(k ScalarKind, v int64) bool {
	bits := k.Bits()
	if k.IsSigned() {
		if bits == 64 {
			return true
		}

		limit := int64(1) << (bits - 1)

		return v >= -limit && v < limit
	}

	if v < 0 {
		return false
	}

	return bits == 64 || v < int64(1)<<bits
}

func validateStruct(r *RecordDef, res *diagnostic.Diagnostics) {
	if r.HasKey || r.KeyField() != nil {
		res.AddError(diagnostic.CodeKeyOnStruct, "structs do not support key lookup", r.Name, "")
	}

	for _, f := range r.Fields {
		if f.Deprecated {
			res.AddError(diagnostic.CodeStructFieldType, "struct fields cannot be deprecated", r.Name, f.Name)
			continue
		}

		if IsOffset(f.Type) {
			res.AddError(diagnostic.CodeStructFieldType,
				fmt.Sprintf("struct fields must be scalars, enums or structs, got %s", f.Type), r.Name, f.Name)
		}
	}

	if structCycle(r, map[*RecordDef]bool{}) {
		res.AddError(diagnostic.CodeStructFieldType, "struct contains itself", r.Name, "")
	}
}

func structCycle(r *RecordDef, visiting map[*RecordDef]bool) bool {
	if visiting[r] {
		return true
	}

	visiting[r] = true
	defer delete(visiting, r)

	for _, f := range r.Fields {
		if s, ok := f.Type.(StructRef); ok {
			if structCycle(s.Def, visiting) {
				return true
			}
		}
	}

	return false
}

// validateFieldNames rejects fields sharing a name, deprecated ones
// included, since slots are assigned by position and names must identify
// them. A union's discriminator counts as a field.
func validateFieldNames(r *RecordDef, res *diagnostic.Diagnostics) {
	names := make(map[string]struct{}, len(r.Fields))

	for _, f := range r.Fields {
		if _, ok := names[f.Name]; ok {
			res.AddError(diagnostic.CodeDuplicateDefinition,
				fmt.Sprintf("field %q is declared more than once", f.Name), r.Name, f.Name)
		}

		names[f.Name] = struct{}{}
	}
}

func validateTable(r *RecordDef, res *diagnostic.Diagnostics) {
	if !r.HasKey {
		return
	}

	emitted := 0

	for _, f := range r.Fields {
		if !f.Deprecated {
			emitted++
		}
	}

	if emitted == 0 {
		res.AddError(diagnostic.CodeKeyWithoutFields, "table has a key but no fields", r.Name, "")
		return
	}

	if r.KeyField() == nil {
		res.AddError(diagnostic.CodeKeyFieldMissing, "table has a key but no field is marked as key", r.Name, "")
	}
}

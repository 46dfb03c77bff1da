// Package schema holds the resolved, language-neutral schema model consumed by
// the binding generator.
//
// The model mirrors what a FlatBuffers schema parser produces once all names
// are resolved:
//   - EnumDef: enums and unions with ordered values
//   - RecordDef: tables (vtable-indirected) and structs (fixed layout)
//   - FieldDef: a named field with a Type, default literal and attributes
//   - Type: a closed set of type variants dispatched through Match
//
// Schemas are loaded from a YAML rendition of the resolved AST (LoadFile,
// Parse) and checked for integrity with Validate. All values are read-only
// once loaded.
package schema

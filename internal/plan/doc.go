// Package plan computes the field plan of a struct or table: the per-field
// facts every emitter consumes.
//
// Planning pipeline for one record:
//  1. Drop deprecated fields
//  2. Number the remaining fields by declaration order: vtable slot i
//  3. Normalise each scalar default to its storage kind
//  4. Derive the builder write order (declaration order, or size buckets
//     when the table is built with sortbysize)
//  5. For structs, lay out fields at fixed byte offsets
//
// Slot numbering and write order are independent: sortbysize only ever
// changes the order of add calls, never a field's slot.
package plan

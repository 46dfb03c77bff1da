// Package emit turns record and enum definitions into a sequence of
// structured statements.
//
// Statements describe what a binding contains (accessors, builder calls,
// required-field assertions, finish entry points) and in which order, with
// every name and type already resolved for the target language. Renderers in
// internal/gen turn them into source text. Ordering invariants of the builder
// protocol are therefore properties of the statement list and are tested
// here without looking at generated source.
package emit

// Package diagnostic provides structured errors and warnings for the binding
// generator.
//
// Key capabilities:
//   - Schema-integrity errors that abort a generation run
//   - Unsupported-construct warnings for bindings that are emitted incomplete
//   - Informational notes about generation decisions
package diagnostic

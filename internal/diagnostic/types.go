package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/music-group/flatbuffers/internal/common"
)

// Diagnostic codes.
const (
	CodeUnresolvedType        = "unresolved_type"
	CodeDuplicateDefinition   = "duplicate_definition"
	CodeInvalidDefault        = "invalid_default"
	CodeInvalidEnum           = "invalid_enum"
	CodeStructFieldType       = "struct_field_type"
	CodeKeyWithoutFields      = "key_without_fields"
	CodeKeyFieldMissing       = "key_field_missing"
	CodeKeyOnStruct           = "key_on_struct"
	CodeRootNotFound          = "root_not_found"
	CodeRootIsStruct          = "root_is_struct"
	CodeInvalidFileIdentifier = "invalid_file_identifier"
	CodeUnsupportedAccessor   = "unsupported_accessor"
	CodeUnsupportedKey        = "unsupported_key"
	CodeRequiredScalar        = "required_scalar"
	CodeDeprecatedField       = "deprecated_field"
)

// Diagnostics holds all diagnostic information from a generation run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Definition names the enum, struct or table this relates to (if any).
	Definition string
	// Field names the field this relates to (if any).
	Field string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, definition, field string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:   DiagnosticError,
		Code:       code,
		Message:    message,
		Definition: definition,
		Field:      field,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, definition, field string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:   DiagnosticWarning,
		Code:       code,
		Message:    message,
		Definition: definition,
		Field:      field,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, definition, field string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity:   DiagnosticInfo,
		Code:       code,
		Message:    message,
		Definition: definition,
		Field:      field,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Codes returns the codes of all diagnostics of the given severity, in order.
func (d *Diagnostics) Codes(severity DiagnosticSeverity) []string {
	var list []Diagnostic

	switch severity {
	case DiagnosticError:
		list = d.Errors
	case DiagnosticWarning:
		list = d.Warnings
	case DiagnosticInfo:
		list = d.Infos
	}

	codes := make([]string, 0, len(list))
	for _, e := range list {
		codes = append(codes, e.Code)
	}

	return codes
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Definition != "" {
		prefix = append(prefix, "["+d.Definition+"]")
	}

	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

package errors

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError collects messages per field and converts to an InvalidArgument error
type ValidationError struct {
	// Fields maps field names to their validation error messages
	Fields map[string][]string `json:"fields"`
}

// Error lists fields in name order so messages are stable
func (v *ValidationError) Error() string {
	if len(v.Fields) == 0 {
		return "validation failed"
	}

	names := make([]string, 0, len(v.Fields))
	for field := range v.Fields {
		names = append(names, field)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, field := range names {
		parts[i] = fmt.Sprintf("%s: %s", field, strings.Join(v.Fields[field], ", "))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

// HasErrors returns true if there are any validation errors
func (v *ValidationError) HasErrors() bool {
	return len(v.Fields) > 0
}

// ToError converts to InvalidArgument with the per-field messages as metadata
func (v *ValidationError) ToError() *Error {
	if !v.HasErrors() {
		return nil
	}
	return InvalidArgument(v.Error()).WithMeta(MetaValidationErrors, v.Fields)
}

// ValidationBuilder accumulates field errors. Build returns nil when nothing was added.
type ValidationBuilder struct {
	err *ValidationError
}

// NewValidationBuilder creates a new validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{
		err: &ValidationError{Fields: make(map[string][]string)},
	}
}

// Field adds a validation error for a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.err.Fields[field] = append(vb.err.Fields[field], message)
	return vb
}

// Fieldf adds a formatted validation error for a field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...interface{}) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField adds a required field error
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// InvalidField adds an invalid field error
func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.Fieldf(field, "is invalid: %s", reason)
}

// Build returns the error if there are validation errors, nil otherwise
func (vb *ValidationBuilder) Build() error {
	if vb.err.HasErrors() {
		return vb.err.ToError()
	}
	return nil
}

// ValidateRequired flags blank strings
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateRange checks if a value is within a range
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Fieldf(field, "must be between %d and %d", minValue, maxValue)
	}
}

// ValidateEnum checks if a value is in a list of allowed values
func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	vb.Fieldf(field, "must be one of: %s", strings.Join(allowed, ", "))
}

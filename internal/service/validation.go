package service

import (
	"sort"
	"strings"
)

// FieldErrors maps a form field name to the message shown next to it.
type FieldErrors map[string]string

// Add records a message for field, keeping the first message reported.
func (fe FieldErrors) Add(field, message string) {
	if _, exists := fe[field]; !exists {
		fe[field] = message
	}
}

// Has reports whether field has an error.
func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// Any reports whether at least one field has an error.
func (fe FieldErrors) Any() bool {
	return len(fe) > 0
}

// ValidationError wraps FieldErrors so services can return them as an error.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

// require adds "<label> is required" when value is blank.
func require(fe FieldErrors, field, value, label string) {
	if strings.TrimSpace(value) == "" {
		fe.Add(field, label+" is required")
	}
}

package crud

import (
	"fmt"
	"strings"
)

// Per-field checks used by resource validators. Each records at most one
// message per field and leaves the error set untouched when the value
// passes.

// RequireString checks that a string field is non-empty after trimming.
func RequireString(errs FieldErrors, field, value string) {
	if strings.TrimSpace(value) == "" {
		errs[field] = field + " is required"
	}
}

// RequireID checks that a numeric foreign key is positive.
func RequireID(errs FieldErrors, field string, id int64) {
	if id <= 0 {
		errs[field] = field + " must reference an existing record"
	}
}

// RequirePositive checks that a quantity or amount is greater than zero.
func RequirePositive(errs FieldErrors, field string, v int64) {
	if v <= 0 {
		errs[field] = field + " must be greater than zero"
	}
}

// RequireRange checks that a value lies within [min, max].
func RequireRange(errs FieldErrors, field string, v, min, max int) {
	if v < min || v > max {
		errs[field] = fmt.Sprintf("%s must be between %d and %d", field, min, max)
	}
}

// RequireMin checks that a value is at least min.
func RequireMin(errs FieldErrors, field string, v, min int) {
	if v < min {
		errs[field] = fmt.Sprintf("%s must be at least %d", field, min)
	}
}

// RequireOneOf checks that a value is one of the allowed choices.
func RequireOneOf(errs FieldErrors, field, value string, allowed ...string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	errs[field] = fmt.Sprintf("%s must be one of: %s", field, strings.Join(allowed, ", "))
}

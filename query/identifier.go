package query

import (
	"fmt"
	"strings"
)

// isSafeIdentifier accepts plain and dot-qualified identifiers
// (foo, bar_1, schema.table). Every segment starts with a letter or
// underscore and continues with letters, digits, underscores or '$'.
func isSafeIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for _, part := range strings.Split(name, ".") {
		if !isSafeSegment(part) {
			return false
		}
	}
	return true
}

func isSafeSegment(part string) bool {
	if part == "" {
		return false
	}
	for i := 0; i < len(part); i++ {
		ch := part[i]
		letter := (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
		if i == 0 {
			if !letter {
				return false
			}
			continue
		}
		if !letter && !(ch >= '0' && ch <= '9') && ch != '$' {
			return false
		}
	}
	return true
}

// ValidateIdentifier reports ErrInvalidIdentifier for anything but a plain
// or dot-qualified identifier. context names the role in the error text.
func ValidateIdentifier(context, name string) error {
	if !isSafeIdentifier(name) {
		return fmt.Errorf("%w: %s %q", ErrInvalidIdentifier, context, name)
	}
	return nil
}

// validateColumn also allows the star projection, bare or table-qualified.
func validateColumn(name string) error {
	if name == "*" {
		return nil
	}
	if prefix, ok := strings.CutSuffix(name, ".*"); ok && isSafeIdentifier(prefix) {
		return nil
	}
	return ValidateIdentifier("column", name)
}

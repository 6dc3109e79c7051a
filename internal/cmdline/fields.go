// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmdline

import "strings"

const (
	// FieldSeparator separates the fields of an argument.
	FieldSeparator = ","

	// LabelSeparator separates label and value of a single field.
	LabelSeparator = "="

	// AnyCount disables the field count check of [SplitFields].
	AnyCount = -1
)

// SplitFields splits the argument s into its comma separated fields.
//
// If expected is not [AnyCount], the number of fields must match exactly.
// Otherwise, a [FieldCountError] is returned that names the given label. An
// empty argument results in a single empty field.
func SplitFields(s, label string, expected int) ([]string, error) {
	fields := strings.Split(s, FieldSeparator)

	if expected != AnyCount && len(fields) != expected {
		return nil, &FieldCountError{
			Label:    label,
			Expected: expected,
			Actual:   len(fields),
		}
	}

	return fields, nil
}

// JoinFields is the inverse of [SplitFields].
func JoinFields(fields ...string) string {
	return strings.Join(fields, FieldSeparator)
}

// SplitLabel returns the value of the given field.
//
// A field without "=" is returned as is and the label is not checked. A field
// with a single "=" must have the given label on the left side, unless label
// is empty. A field with more than one "=" is malformed.
func SplitLabel(field, label string) (string, error) {
	parts := strings.Split(field, LabelSeparator)

	switch len(parts) {
	case 1:
		return parts[0], nil
	case 2: //nolint:mnd
		if label != "" && parts[0] != label {
			return "", &LabelError{Expected: label, Found: parts[0]}
		}

		return parts[1], nil
	default:
		return "", &malformedFieldError{field: field}
	}
}

// Labeled returns the field representation of label and value.
func Labeled(label, value string) string {
	return label + LabelSeparator + value
}

// ParsePath returns the path value of the given labeled field.
//
// Any string is a valid path, including the empty one. The path is neither
// cleaned nor checked for existence. Host paths that must exist are checked
// by the caller before they are used.
func ParsePath(field, label string) (string, error) {
	return SplitLabel(field, label)
}

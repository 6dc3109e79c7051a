// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmdline

import (
	"errors"
	"fmt"
)

var (
	// ErrGrammar matches all errors caused by arguments that do not follow
	// the field grammar: [FieldCountError], [LabelError] and
	// [ErrMalformedField].
	ErrGrammar = errors.New("invalid argument grammar")

	// ErrMalformedField is returned if a field has more than one "=".
	ErrMalformedField = errors.New("invalid argument format")
)

// FieldCountError is returned if an argument does not have the expected number
// of fields.
type FieldCountError struct {
	Label    string
	Expected int
	Actual   int
}

// Error implements the [error] interface.
func (e *FieldCountError) Error() string {
	return fmt.Sprintf(
		"expected --%s argument to have %d comma-separated sub-arguments, found %d",
		e.Label,
		e.Expected,
		e.Actual,
	)
}

// Is implements the [errors.Is] interface.
func (*FieldCountError) Is(other error) bool {
	if other == ErrGrammar {
		return true
	}

	_, ok := other.(*FieldCountError)

	return ok
}

// LabelError is returned if a field's label does not match the expected one.
type LabelError struct {
	Expected string
	Found    string
}

// Error implements the [error] interface.
func (e *LabelError) Error() string {
	return fmt.Sprintf("expected label %s, found %s", e.Expected, e.Found)
}

// Is implements the [errors.Is] interface.
func (*LabelError) Is(other error) bool {
	if other == ErrGrammar {
		return true
	}

	_, ok := other.(*LabelError)

	return ok
}

// FieldError wraps errors that occur while converting a field value into its
// typed representation.
type FieldError struct {
	Field string
	Err   error
}

// Error implements the [error] interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s argument invalid: %v", e.Field, e.Err)
}

// Is implements the [errors.Is] interface.
func (*FieldError) Is(other error) bool {
	_, ok := other.(*FieldError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *FieldError) Unwrap() error {
	return e.Err
}

type malformedFieldError struct {
	field string
}

func (e *malformedFieldError) Error() string {
	return fmt.Sprintf("%v: %s", ErrMalformedField, e.field)
}

func (*malformedFieldError) Is(other error) bool {
	return other == ErrGrammar || other == ErrMalformedField
}

// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package krun

import (
	"errors"
	"fmt"
)

var (
	// ErrSetRootDiskFailed is returned if the root disk could not be set.
	ErrSetRootDiskFailed = errors.New("unable to set virtio-blk root disk")

	// ErrAddVsockPortFailed is returned if a vsock port could not be added.
	ErrAddVsockPortFailed = errors.New("unable to add vsock port")

	// ErrAddVirtiofsFailed is returned if a virtio-fs shared directory could
	// not be added.
	ErrAddVirtiofsFailed = errors.New("unable to add virtiofs shared directory")

	ErrCreateContextFailed = errors.New("unable to create context")
	ErrSetVMConfigFailed   = errors.New("unable to set vm config")
	ErrStartEnterFailed    = errors.New("unable to start vm")
	ErrFreeContextFailed   = errors.New("unable to free context")

	// ErrLibkrunUnavailable is returned by [OpenLibkrun] if the binary was
	// built without the "libkrun" build tag.
	ErrLibkrunUnavailable = errors.New("built without libkrun support")
)

// BoundaryError is returned if a libkrun call returns a negative status code.
//
// Since libkrun does not provide any error details, the error carries the
// values that were applied.
type BoundaryError struct {
	// Err is one of the ErrXXXFailed sentinel errors of this package.
	Err  error
	Code int32

	Port      uint32
	Path      string
	SharedDir string
	MountTag  string
}

// Error implements the [error] interface.
func (e *BoundaryError) Error() string {
	var msg string

	switch e.Err {
	case ErrSetRootDiskFailed:
		msg = fmt.Sprintf("%v %s", e.Err, e.Path)
	case ErrAddVsockPortFailed:
		msg = fmt.Sprintf("%v %d for path %s", e.Err, e.Port, e.Path)
	case ErrAddVirtiofsFailed:
		msg = fmt.Sprintf(
			"%v %s with mount tag %s",
			e.Err,
			e.SharedDir,
			e.MountTag,
		)
	default:
		msg = fmt.Sprint(e.Err)
	}

	return fmt.Sprintf("%s (code %d)", msg, e.Code)
}

// Is implements the [errors.Is] interface.
func (*BoundaryError) Is(other error) bool {
	_, ok := other.(*BoundaryError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *BoundaryError) Unwrap() error {
	return e.Err
}

// PathEncodingError is returned if a path can not be converted into a
// NUL-terminated byte string.
type PathEncodingError struct {
	Path string
	Err  error
}

// Error implements the [error] interface.
func (e *PathEncodingError) Error() string {
	return fmt.Sprintf(
		"unable to convert path %q into NUL-terminated C string: %v",
		e.Path,
		e.Err,
	)
}

// Is implements the [errors.Is] interface.
func (*PathEncodingError) Is(other error) bool {
	_, ok := other.(*PathEncodingError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *PathEncodingError) Unwrap() error {
	return e.Err
}

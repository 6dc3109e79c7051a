// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package device

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDeviceSpec is returned if a device argument has no kind.
	ErrEmptyDeviceSpec = errors.New("no virtio device config found")

	// ErrUnknownDeviceType matches [UnknownTypeError].
	ErrUnknownDeviceType = errors.New("invalid virtio device label specified")

	// ErrInsufficientArguments is returned if a device argument has less
	// fields than required.
	ErrInsufficientArguments = errors.New("insufficient arguments")

	// ErrInvalidPort is returned if a port is not an unsigned 32 bit integer.
	ErrInvalidPort = errors.New("invalid port")

	// ErrInvalidVsockAction is returned for unknown [VsockAction]s.
	ErrInvalidVsockAction = errors.New("invalid vsock action")

	// ErrNotImplemented matches [NotImplementedError].
	ErrNotImplemented = errors.New("not implemented")
)

// UnknownTypeError is returned if the kind of a device argument is unknown.
type UnknownTypeError struct {
	Tag string
}

// Error implements the [error] interface.
func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("%v: %s", ErrUnknownDeviceType, e.Tag)
}

// Is implements the [errors.Is] interface.
func (*UnknownTypeError) Is(other error) bool {
	if other == ErrUnknownDeviceType {
		return true
	}

	_, ok := other.(*UnknownTypeError)

	return ok
}

// NotImplementedError is returned if a [Device] of the given [Kind] can not be
// bound to a context.
type NotImplementedError struct {
	Kind Kind
}

// Error implements the [error] interface.
func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("%s: binding %v", e.Kind, ErrNotImplemented)
}

// Is implements the [errors.Is] interface.
func (*NotImplementedError) Is(other error) bool {
	if other == ErrNotImplemented {
		return true
	}

	_, ok := other.(*NotImplementedError)

	return ok
}

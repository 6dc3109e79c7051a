// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package krun

// ContextID is the opaque handle of a libkrun context.
type ContextID uint32

// Boundary are the raw libkrun calls used for device registration.
//
// String arguments are NUL-terminated byte strings. All calls return a
// negative value on failure.
type Boundary interface {
	SetRootDisk(id ContextID, diskPath *byte) int32
	AddVsockPort(id ContextID, port uint32, socketPath *byte) int32
	AddVirtiofs(id ContextID, mountTag, sharedDir *byte) int32
}

// VMM extends [Boundary] with the calls for the context life cycle.
type VMM interface {
	Boundary

	// CreateContext returns a new context id or a negative value.
	CreateContext() int32
	SetVMConfig(id ContextID, numVCPUs uint8, ramMiB uint32) int32
	// StartEnter starts the VM. It only returns on failure.
	StartEnter(id ContextID) int32
	FreeContext(id ContextID) int32
}

// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package krun

import (
	"log/slog"
)

// VM owns a libkrun context created by a [VMM].
type VM struct {
	vmm VMM
	ctx *Context
}

// NewVM creates a new context with the given [VMM].
func NewVM(vmm VMM) (*VM, error) {
	rc := vmm.CreateContext()
	if rc < 0 {
		return nil, &BoundaryError{Err: ErrCreateContextFailed, Code: rc}
	}

	slog.Debug("Created context", slog.Int("ctx", int(rc)))

	return &VM{
		vmm: vmm,
		ctx: NewContext(vmm, ContextID(rc)),
	}, nil
}

// Context returns the [Context] for device registration.
func (v *VM) Context() *Context {
	return v.ctx
}

// SetConfig sets the number of vCPUs and the memory in MiB.
func (v *VM) SetConfig(numVCPUs uint8, ramMiB uint32) error {
	slog.Debug("Set vm config",
		slog.Uint64("ctx", uint64(v.ctx.id)),
		slog.Uint64("vcpus", uint64(numVCPUs)),
		slog.Uint64("ram_mib", uint64(ramMiB)))

	if rc := v.vmm.SetVMConfig(v.ctx.id, numVCPUs, ramMiB); rc < 0 {
		return &BoundaryError{Err: ErrSetVMConfigFailed, Code: rc}
	}

	return nil
}

// Start starts the VM. With libkrun the process is taken over by the guest, so
// it only returns on failure.
func (v *VM) Start() error {
	slog.Debug("Start vm", slog.Uint64("ctx", uint64(v.ctx.id)))

	if rc := v.vmm.StartEnter(v.ctx.id); rc < 0 {
		return &BoundaryError{Err: ErrStartEnterFailed, Code: rc}
	}

	return nil
}

// Close frees the context.
func (v *VM) Close() error {
	if rc := v.vmm.FreeContext(v.ctx.id); rc < 0 {
		return &BoundaryError{Err: ErrFreeContextFailed, Code: rc}
	}

	return nil
}

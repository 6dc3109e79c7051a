// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build libkrun

package krun

/*
#cgo LDFLAGS: -lkrun
#include <stdint.h>
#include <libkrun.h>
*/
import "C"

import "unsafe"

// Libkrun is the [VMM] backed by the libkrun shared library.
type Libkrun struct{}

var _ VMM = Libkrun{}

// OpenLibkrun returns the libkrun [VMM].
func OpenLibkrun() (VMM, error) {
	return Libkrun{}, nil
}

func (Libkrun) CreateContext() int32 {
	return int32(C.krun_create_ctx())
}

func (Libkrun) SetVMConfig(id ContextID, numVCPUs uint8, ramMiB uint32) int32 {
	return int32(C.krun_set_vm_config(
		C.uint32_t(id),
		C.uint8_t(numVCPUs),
		C.uint32_t(ramMiB),
	))
}

func (Libkrun) SetRootDisk(id ContextID, diskPath *byte) int32 {
	return int32(C.krun_set_root_disk(C.uint32_t(id), cString(diskPath)))
}

func (Libkrun) AddVsockPort(id ContextID, port uint32, socketPath *byte) int32 {
	return int32(C.krun_add_vsock_port(
		C.uint32_t(id),
		C.uint32_t(port),
		cString(socketPath),
	))
}

func (Libkrun) AddVirtiofs(id ContextID, mountTag, sharedDir *byte) int32 {
	return int32(C.krun_add_virtiofs(
		C.uint32_t(id),
		cString(mountTag),
		cString(sharedDir),
	))
}

func (Libkrun) StartEnter(id ContextID) int32 {
	return int32(C.krun_start_enter(C.uint32_t(id)))
}

func (Libkrun) FreeContext(id ContextID) int32 {
	return int32(C.krun_free_ctx(C.uint32_t(id)))
}

func cString(p *byte) *C.char {
	return (*C.char)(unsafe.Pointer(p))
}

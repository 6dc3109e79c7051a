// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package krun

import (
	"log/slog"

	"golang.org/x/sys/unix"
)

// DryRun is a [VMM] that logs all calls on info level and always succeeds.
// StartEnter returns immediately.
type DryRun struct {
	lastID ContextID
}

var _ VMM = (*DryRun)(nil)

func (d *DryRun) CreateContext() int32 {
	d.lastID++

	slog.Info("krun_create_ctx", slog.Uint64("ctx", uint64(d.lastID)))

	return int32(d.lastID) //nolint:gosec
}

func (*DryRun) SetVMConfig(id ContextID, numVCPUs uint8, ramMiB uint32) int32 {
	slog.Info("krun_set_vm_config",
		slog.Uint64("ctx", uint64(id)),
		slog.Uint64("vcpus", uint64(numVCPUs)),
		slog.Uint64("ram_mib", uint64(ramMiB)))

	return 0
}

func (*DryRun) SetRootDisk(id ContextID, diskPath *byte) int32 {
	slog.Info("krun_set_root_disk",
		slog.Uint64("ctx", uint64(id)),
		slog.String("path", unix.BytePtrToString(diskPath)))

	return 0
}

func (*DryRun) AddVsockPort(id ContextID, port uint32, socketPath *byte) int32 {
	slog.Info("krun_add_vsock_port",
		slog.Uint64("ctx", uint64(id)),
		slog.Uint64("port", uint64(port)),
		slog.String("path", unix.BytePtrToString(socketPath)))

	return 0
}

func (*DryRun) AddVirtiofs(id ContextID, mountTag, sharedDir *byte) int32 {
	slog.Info("krun_add_virtiofs",
		slog.Uint64("ctx", uint64(id)),
		slog.String("tag", unix.BytePtrToString(mountTag)),
		slog.String("path", unix.BytePtrToString(sharedDir)))

	return 0
}

func (*DryRun) StartEnter(id ContextID) int32 {
	slog.Info("krun_start_enter", slog.Uint64("ctx", uint64(id)))

	return 0
}

func (*DryRun) FreeContext(id ContextID) int32 {
	slog.Info("krun_free_ctx", slog.Uint64("ctx", uint64(id)))

	return 0
}

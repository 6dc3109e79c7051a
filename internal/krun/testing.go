// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package krun

import "golang.org/x/sys/unix"

// Call is a single [Boundary] call captured by [Recorder].
type Call struct {
	Name      string
	ID        ContextID
	Port      uint32
	Path      string
	MountTag  string
	SharedDir string
}

// Recorder is a [VMM] that records all calls. Calls return the code set in
// Codes for the call's name, or 0.
type Recorder struct {
	Codes map[string]int32
	Calls []Call
	// NextID is returned by CreateContext.
	NextID ContextID
}

var _ VMM = (*Recorder)(nil)

func (r *Recorder) record(call Call) int32 {
	r.Calls = append(r.Calls, call)
	return r.Codes[call.Name]
}

func (r *Recorder) CreateContext() int32 {
	if rc := r.record(Call{Name: "create_ctx"}); rc < 0 {
		return rc
	}

	return int32(r.NextID) //nolint:gosec
}

func (r *Recorder) SetVMConfig(id ContextID, _ uint8, _ uint32) int32 {
	return r.record(Call{Name: "set_vm_config", ID: id})
}

func (r *Recorder) SetRootDisk(id ContextID, diskPath *byte) int32 {
	return r.record(Call{
		Name: "set_root_disk",
		ID:   id,
		Path: unix.BytePtrToString(diskPath),
	})
}

func (r *Recorder) AddVsockPort(id ContextID, port uint32, socketPath *byte) int32 {
	return r.record(Call{
		Name: "add_vsock_port",
		ID:   id,
		Port: port,
		Path: unix.BytePtrToString(socketPath),
	})
}

func (r *Recorder) AddVirtiofs(id ContextID, mountTag, sharedDir *byte) int32 {
	return r.record(Call{
		Name:      "add_virtiofs",
		ID:        id,
		MountTag:  unix.BytePtrToString(mountTag),
		SharedDir: unix.BytePtrToString(sharedDir),
	})
}

func (r *Recorder) StartEnter(id ContextID) int32 {
	return r.record(Call{Name: "start_enter", ID: id})
}

func (r *Recorder) FreeContext(id ContextID) int32 {
	return r.record(Call{Name: "free_ctx", ID: id})
}

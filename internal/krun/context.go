// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package krun

import (
	"log/slog"

	"golang.org/x/sys/unix"
)

// Context binds devices to a single libkrun context.
//
// It does not own the context. The id is passed through to the [Boundary]
// unchanged.
type Context struct {
	id       ContextID
	boundary Boundary
}

// NewContext returns a new [Context] for the given id.
func NewContext(boundary Boundary, id ContextID) *Context {
	return &Context{
		id:       id,
		boundary: boundary,
	}
}

// ID returns the context id.
func (c *Context) ID() ContextID {
	return c.id
}

// SetRootDisk sets the disk image at the given path as root disk.
func (c *Context) SetRootDisk(path string) error {
	cPath, err := encodePath(path)
	if err != nil {
		return err
	}

	slog.Debug("Set root disk",
		slog.Uint64("ctx", uint64(c.id)),
		slog.String("path", path))

	if rc := c.boundary.SetRootDisk(c.id, cPath); rc < 0 {
		return &BoundaryError{
			Err:  ErrSetRootDiskFailed,
			Code: rc,
			Path: path,
		}
	}

	return nil
}

// AddVsockPort maps the guest vsock port to the unix socket at the given path.
func (c *Context) AddVsockPort(port uint32, socketPath string) error {
	cPath, err := encodePath(socketPath)
	if err != nil {
		return err
	}

	slog.Debug("Add vsock port",
		slog.Uint64("ctx", uint64(c.id)),
		slog.Uint64("port", uint64(port)),
		slog.String("path", socketPath))

	if rc := c.boundary.AddVsockPort(c.id, port, cPath); rc < 0 {
		return &BoundaryError{
			Err:  ErrAddVsockPortFailed,
			Code: rc,
			Port: port,
			Path: socketPath,
		}
	}

	return nil
}

// AddVirtiofs shares the host directory with the guest using the given mount
// tag.
func (c *Context) AddVirtiofs(mountTag, sharedDir string) error {
	cSharedDir, err := encodePath(sharedDir)
	if err != nil {
		return err
	}

	cMountTag, err := encodePath(mountTag)
	if err != nil {
		return err
	}

	slog.Debug("Add virtiofs",
		slog.Uint64("ctx", uint64(c.id)),
		slog.String("tag", mountTag),
		slog.String("path", sharedDir))

	if rc := c.boundary.AddVirtiofs(c.id, cMountTag, cSharedDir); rc < 0 {
		return &BoundaryError{
			Err:       ErrAddVirtiofsFailed,
			Code:      rc,
			SharedDir: sharedDir,
			MountTag:  mountTag,
		}
	}

	return nil
}

func encodePath(path string) (*byte, error) {
	p, err := unix.BytePtrFromString(path)
	if err != nil {
		return nil, &PathEncodingError{Path: path, Err: err}
	}

	return p, nil
}

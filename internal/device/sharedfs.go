// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package device

import (
	"fmt"

	"github.com/aibor/virtkrun/internal/cmdline"
	"github.com/aibor/virtkrun/internal/krun"
)

const sharedFSMinFields = 2

// SharedFS is a virtio-fs device sharing a host directory with the guest.
type SharedFS struct {
	SharedDir string
	MountTag  string
}

// parseSharedFS requires at least two fields. Any further fields are ignored.
func parseSharedFS(args string) (SharedFS, error) {
	fields, err := cmdline.SplitFields(args, string(KindSharedFS), cmdline.AnyCount)
	if err != nil {
		return SharedFS{}, err //nolint:wrapcheck
	}

	if len(fields) < sharedFSMinFields {
		return SharedFS{}, fmt.Errorf(
			"%w: expected at least %d, found %d",
			ErrInsufficientArguments,
			sharedFSMinFields,
			len(fields),
		)
	}

	sharedDir, err := cmdline.ParsePath(fields[0], "sharedDir")
	if err != nil {
		return SharedFS{}, err //nolint:wrapcheck
	}

	mountTag, err := cmdline.ParsePath(fields[1], "mountTag")
	if err != nil {
		return SharedFS{}, err //nolint:wrapcheck
	}

	return SharedFS{
		SharedDir: sharedDir,
		MountTag:  mountTag,
	}, nil
}

func (SharedFS) Kind() Kind {
	return KindSharedFS
}

func (s SharedFS) String() string {
	return deviceString(KindSharedFS,
		cmdline.Labeled("sharedDir", s.SharedDir),
		cmdline.Labeled("mountTag", s.MountTag),
	)
}

// Bind adds the shared directory to the context.
func (s SharedFS) Bind(kctx *krun.Context) error {
	return kctx.AddVirtiofs(s.MountTag, s.SharedDir) //nolint:wrapcheck
}

func (SharedFS) isDevice() {}

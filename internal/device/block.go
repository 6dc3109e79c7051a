// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package device

import (
	"github.com/aibor/virtkrun/internal/cmdline"
	"github.com/aibor/virtkrun/internal/krun"
)

// Block is a virtio-blk device used as the guest's root disk.
type Block struct {
	Path string
}

func parseBlock(args string) (Block, error) {
	fields, err := cmdline.SplitFields(args, string(KindBlock), 1)
	if err != nil {
		return Block{}, err //nolint:wrapcheck
	}

	path, err := cmdline.ParsePath(fields[0], "path")
	if err != nil {
		return Block{}, err //nolint:wrapcheck
	}

	return Block{Path: path}, nil
}

func (Block) Kind() Kind {
	return KindBlock
}

func (b Block) String() string {
	return deviceString(KindBlock, cmdline.Labeled("path", b.Path))
}

// Bind sets the disk image as root disk.
func (b Block) Bind(kctx *krun.Context) error {
	return kctx.SetRootDisk(b.Path) //nolint:wrapcheck
}

func (Block) isDevice() {}

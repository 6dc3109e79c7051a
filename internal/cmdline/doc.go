// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cmdline implements the flat argument grammar used by virtkrun flags
// like "--device" and "--bootloader".
//
// An argument is a comma separated list of fields. Each field is either a bare
// value or a "label=value" pair:
//
//	virtio-vsock,port=1024,socketURL=/tmp/vsock.sock,listen
//
// [SplitFields] splits an argument into its fields and optionally enforces the
// number of fields. [SplitLabel] returns the value of a single field and
// verifies its label, if present. The label is optional, so "path=/disk.img"
// and "/disk.img" yield the same value.
package cmdline

// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package device provides the virtio device configurations that can be
// attached to a libkrun VM.
//
// A device is given as a "--device" argument in the form
//
//	<kind>,<field>[,<field>...]
//
// where kind is one of the [Kind] constants. [Resolve] parses such an argument
// into one of the [Device] types [Block], [Entropy], [Serial], [Vsock],
// [Network] and [SharedFS]. Devices are immutable once parsed.
//
// Devices are applied to a [krun.Context] with [Device.Bind]. Only [Block],
// [Vsock] and [SharedFS] can be bound yet. The others fail with
// [ErrNotImplemented].
package device

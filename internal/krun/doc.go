// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package krun provides a narrow adapter to the libkrun C API.
//
// libkrun is configured by registering devices on a numeric context id. All
// calls return a negative status code on failure without any further detail.
// The [Context] adapter accepts validated Go values only, encodes paths as
// NUL-terminated byte strings and maps negative status codes to
// [BoundaryError]s that carry the values that were applied.
//
// The raw calls are abstracted by the [Boundary] and [VMM] interfaces. The
// cgo implementation [Libkrun] is only built with the "libkrun" build tag.
// [DryRun] logs all calls instead and [Recorder] records them for tests.
//
// Calls against the same context must be serialized by the caller.
package krun

// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !libkrun

package krun

// OpenLibkrun returns [ErrLibkrunUnavailable]. Build with tag "libkrun" to
// link against libkrun.
func OpenLibkrun() (VMM, error) {
	return nil, ErrLibkrunUnavailable
}

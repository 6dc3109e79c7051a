// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package bootloader provides the boot firmware configuration given by the
// "--bootloader" argument:
//
//	<firmware>,variable-store=<path>,<action>
package bootloader

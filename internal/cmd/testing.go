// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteTestFile writes content into a file with the given name in a new
// temporary directory and returns the file's path. Use [filepath.Dir] on the
// result for a directory that exists.
func WriteTestFile(tb testing.TB, name string, content []byte) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), name)

	err := os.WriteFile(path, content, 0o600)
	if err != nil {
		tb.Fatalf("failed to write test file %s: %v", path, err)
	}

	return path
}

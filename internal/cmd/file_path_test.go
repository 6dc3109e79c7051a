// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aibor/virtkrun/internal/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilePath_Set(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		name        string
		input       string
		expected    string
		expectedErr error
	}{
		{
			name:        "empty",
			expectedErr: cmd.ErrEmptyFilePath,
		},
		{
			name:     "absolute",
			input:    "/tmp/vm.yaml",
			expected: "/tmp/vm.yaml",
		},
		{
			name:     "relative",
			input:    "vm.yaml",
			expected: filepath.Join(cwd, "vm.yaml"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var path cmd.FilePath

			err := path.Set(tt.input)
			require.ErrorIs(t, err, tt.expectedErr)

			assert.Equal(t, tt.expected, string(path))
		})
	}
}

func TestFilePath_String(t *testing.T) {
	path := cmd.FilePath("/path")
	assert.Equal(t, "/path", path.String())
}

func TestValidatePaths(t *testing.T) {
	file := cmd.WriteTestFile(t, "file", nil)
	dir := filepath.Dir(file)

	require.NoError(t, cmd.ValidateFilePath(file))
	require.ErrorIs(t, cmd.ValidateFilePath(dir), cmd.ErrNotRegularFile)
	require.ErrorIs(t, cmd.ValidateFilePath(filepath.Join(dir, "missing")),
		os.ErrNotExist)

	require.NoError(t, cmd.ValidateDirPath(dir))
	require.ErrorIs(t, cmd.ValidateDirPath(file), cmd.ErrNotDirectory)
	require.ErrorIs(t, cmd.ValidateDirPath(filepath.Join(dir, "missing")),
		os.ErrNotExist)
}

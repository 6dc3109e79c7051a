// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"

	"github.com/aibor/virtkrun/internal/device"
)

// Validate checks that the host paths of the given devices are present.
//
// Only paths that must exist before the VM starts are checked. Sockets and log
// files are created by libkrun.
func Validate(devices []device.Device) error {
	for _, dev := range devices {
		switch dev := dev.(type) {
		case device.Block:
			err := ValidateFilePath(dev.Path)
			if err != nil {
				return fmt.Errorf("root disk: %w", err)
			}
		case device.SharedFS:
			err := ValidateDirPath(dev.SharedDir)
			if err != nil {
				return fmt.Errorf("shared dir: %w", err)
			}
		}
	}

	return nil
}

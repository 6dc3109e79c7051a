// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package device

import (
	"github.com/aibor/virtkrun/internal/cmdline"
	"github.com/aibor/virtkrun/internal/krun"
)

// Serial is a virtio-serial console writing to a log file.
type Serial struct {
	LogFilePath string
}

func parseSerial(args string) (Serial, error) {
	fields, err := cmdline.SplitFields(args, string(KindSerial), 1)
	if err != nil {
		return Serial{}, err //nolint:wrapcheck
	}

	path, err := cmdline.ParsePath(fields[0], "logFilePath")
	if err != nil {
		return Serial{}, err //nolint:wrapcheck
	}

	return Serial{LogFilePath: path}, nil
}

func (Serial) Kind() Kind {
	return KindSerial
}

func (s Serial) String() string {
	return deviceString(KindSerial, cmdline.Labeled("logFilePath", s.LogFilePath))
}

// Bind is not implemented and always fails.
func (Serial) Bind(_ *krun.Context) error {
	return &NotImplementedError{Kind: KindSerial}
}

func (Serial) isDevice() {}

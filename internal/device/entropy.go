// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package device

import (
	"github.com/aibor/virtkrun/internal/cmdline"
	"github.com/aibor/virtkrun/internal/krun"
)

// Entropy is a virtio-rng device. It has no configuration.
type Entropy struct{}

func parseEntropy(args string) (Entropy, error) {
	if args != "" {
		fields, _ := cmdline.SplitFields(args, string(KindEntropy), cmdline.AnyCount)

		return Entropy{}, &cmdline.FieldCountError{
			Label:    string(KindEntropy),
			Expected: 0,
			Actual:   len(fields),
		}
	}

	return Entropy{}, nil
}

func (Entropy) Kind() Kind {
	return KindEntropy
}

func (Entropy) String() string {
	return deviceString(KindEntropy)
}

// Bind is not implemented and always fails.
func (Entropy) Bind(_ *krun.Context) error {
	return &NotImplementedError{Kind: KindEntropy}
}

func (Entropy) isDevice() {}

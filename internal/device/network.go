// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package device

import (
	"github.com/aibor/virtkrun/internal/cmdline"
	"github.com/aibor/virtkrun/internal/krun"
)

const networkFields = 2

// Network is a virtio-net device connected to a unix socket on the host.
//
// The MAC address is stored as given and not validated.
type Network struct {
	UnixSocketPath string
	MACAddress     string
}

func parseNetwork(args string) (Network, error) {
	fields, err := cmdline.SplitFields(args, string(KindNetwork), networkFields)
	if err != nil {
		return Network{}, err //nolint:wrapcheck
	}

	socketPath, err := cmdline.ParsePath(fields[0], "unixSocketPath")
	if err != nil {
		return Network{}, err //nolint:wrapcheck
	}

	mac, err := cmdline.SplitLabel(fields[1], "mac")
	if err != nil {
		return Network{}, err //nolint:wrapcheck
	}

	return Network{
		UnixSocketPath: socketPath,
		MACAddress:     mac,
	}, nil
}

func (Network) Kind() Kind {
	return KindNetwork
}

func (n Network) String() string {
	return deviceString(KindNetwork,
		cmdline.Labeled("unixSocketPath", n.UnixSocketPath),
		cmdline.Labeled("mac", n.MACAddress),
	)
}

// Bind is not implemented and always fails.
func (Network) Bind(_ *krun.Context) error {
	return &NotImplementedError{Kind: KindNetwork}
}

func (Network) isDevice() {}

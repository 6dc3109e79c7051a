// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package device

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aibor/virtkrun/internal/cmdline"
	"github.com/aibor/virtkrun/internal/krun"
)

const vsockFields = 3

// VsockAction is the host side mode of a vsock port.
type VsockAction string

// VsockActionListen makes the host listen on the unix socket for connections
// to the guest port.
const VsockActionListen VsockAction = "listen"

// String implements [fmt.Stringer].
func (a VsockAction) String() string {
	return string(a)
}

// UnmarshalText implements [encoding.TextUnmarshaler]. It is case-insensitive.
func (a *VsockAction) UnmarshalText(text []byte) error {
	action := VsockAction(strings.ToLower(string(text)))

	if action != VsockActionListen {
		return fmt.Errorf("%w: %s", ErrInvalidVsockAction, string(text))
	}

	*a = action

	return nil
}

// Vsock maps a guest vsock port to a unix socket on the host.
type Vsock struct {
	Port      uint32
	SocketURL string
	Action    VsockAction
}

func parseVsock(args string) (Vsock, error) {
	fields, err := cmdline.SplitFields(args, string(KindVsock), vsockFields)
	if err != nil {
		return Vsock{}, err //nolint:wrapcheck
	}

	port, err := parsePort(fields[0])
	if err != nil {
		return Vsock{}, err
	}

	socketURL, err := cmdline.ParsePath(fields[1], "socketURL")
	if err != nil {
		return Vsock{}, err //nolint:wrapcheck
	}

	var action VsockAction

	err = action.UnmarshalText([]byte(fields[2]))
	if err != nil {
		return Vsock{}, &cmdline.FieldError{Field: "action", Err: err}
	}

	return Vsock{
		Port:      port,
		SocketURL: socketURL,
		Action:    action,
	}, nil
}

func parsePort(field string) (uint32, error) {
	value, err := cmdline.SplitLabel(field, "port")
	if err != nil {
		return 0, err //nolint:wrapcheck
	}

	// A single leading plus sign is allowed. ParseUint rejects it.
	port, err := strconv.ParseUint(strings.TrimPrefix(value, "+"), 10, 32)
	if err != nil {
		return 0, &cmdline.FieldError{
			Field: "port",
			Err:   fmt.Errorf("%w: %w", ErrInvalidPort, err),
		}
	}

	return uint32(port), nil
}

func (Vsock) Kind() Kind {
	return KindVsock
}

func (v Vsock) String() string {
	return deviceString(KindVsock,
		cmdline.Labeled("port", strconv.FormatUint(uint64(v.Port), 10)),
		cmdline.Labeled("socketURL", v.SocketURL),
		v.Action.String(),
	)
}

// Bind adds the vsock port to the context.
func (v Vsock) Bind(kctx *krun.Context) error {
	return kctx.AddVsockPort(v.Port, v.SocketURL) //nolint:wrapcheck
}

func (Vsock) isDevice() {}

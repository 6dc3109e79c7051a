// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootloader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aibor/virtkrun/internal/cmdline"
)

const (
	label  = "bootloader"
	fields = 3

	variableStoreLabel = "variable-store"
)

var (
	// ErrInvalidFirmware is returned for unknown [Firmware]s.
	ErrInvalidFirmware = errors.New("invalid bootloader firmware option")

	// ErrInvalidAction is returned for unknown [Action]s.
	ErrInvalidAction = errors.New("invalid bootloader action")
)

// Firmware is the boot firmware type.
type Firmware string

// FirmwareEFI is UEFI firmware.
const FirmwareEFI Firmware = "efi"

// UnmarshalText implements [encoding.TextUnmarshaler]. It is case-insensitive.
func (f *Firmware) UnmarshalText(text []byte) error {
	firmware := Firmware(strings.ToLower(string(text)))
	if firmware != FirmwareEFI {
		return fmt.Errorf("%w: %s", ErrInvalidFirmware, firmware)
	}

	*f = firmware

	return nil
}

// Action defines what to do with the variable store.
type Action string

// ActionCreate creates a new variable store.
const ActionCreate Action = "create"

// UnmarshalText implements [encoding.TextUnmarshaler]. It is case-insensitive.
func (a *Action) UnmarshalText(text []byte) error {
	action := Action(strings.ToLower(string(text)))
	if action != ActionCreate {
		return fmt.Errorf("%w: %s", ErrInvalidAction, action)
	}

	*a = action

	return nil
}

// Config is the bootloader configuration.
type Config struct {
	Firmware      Firmware
	VariableStore string
	Action        Action
}

// Parse parses the given bootloader argument.
func Parse(s string) (Config, error) {
	var cfg Config

	args, err := cmdline.SplitFields(s, label, fields)
	if err != nil {
		return cfg, err //nolint:wrapcheck
	}

	err = cfg.Firmware.UnmarshalText([]byte(args[0]))
	if err != nil {
		return Config{}, err
	}

	cfg.VariableStore, err = cmdline.ParsePath(args[1], variableStoreLabel)
	if err != nil {
		return Config{}, err //nolint:wrapcheck
	}

	err = cfg.Action.UnmarshalText([]byte(args[2]))
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// IsZero returns true if no bootloader is configured.
func (c *Config) IsZero() bool {
	return *c == Config{}
}

// String implements [fmt.Stringer] and [pflag.Value].
func (c *Config) String() string {
	if c.IsZero() {
		return ""
	}

	return cmdline.JoinFields(
		string(c.Firmware),
		cmdline.Labeled(variableStoreLabel, c.VariableStore),
		string(c.Action),
	)
}

// Set implements [pflag.Value].
func (c *Config) Set(s string) error {
	cfg, err := Parse(s)
	if err != nil {
		return err
	}

	*c = cfg

	return nil
}

// Type implements [pflag.Value].
func (*Config) Type() string {
	return "firmware,variable-store=path,action"
}

// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package device

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aibor/virtkrun/internal/cmdline"
	"github.com/aibor/virtkrun/internal/krun"
	"golang.org/x/sync/errgroup"
)

// Device is a virtio device configuration.
//
// The set of implementations is closed: [Block], [Entropy], [Serial], [Vsock],
// [Network] and [SharedFS].
type Device interface {
	// String returns the device argument the device can be resolved from.
	String() string

	// Kind returns the type tag of the device.
	Kind() Kind

	// Bind registers the device with the given context. It must be called
	// at most once per device and context.
	Bind(kctx *krun.Context) error

	isDevice()
}

// Resolve parses a single device argument.
//
// The first field selects the [Kind]. All further fields are passed to the
// parser of the specific kind.
func Resolve(raw string) (Device, error) {
	fields, err := cmdline.SplitFields(raw, "device", cmdline.AnyCount)
	if err != nil {
		return nil, err
	}

	if len(fields) == 0 || fields[0] == "" {
		return nil, ErrEmptyDeviceSpec
	}

	var kind Kind

	err = kind.UnmarshalText([]byte(fields[0]))
	if err != nil {
		return nil, err
	}

	rest := cmdline.JoinFields(fields[1:]...)

	var dev Device

	switch kind {
	case KindBlock:
		dev, err = parseBlock(rest)
	case KindEntropy:
		dev, err = parseEntropy(rest)
	case KindSerial:
		dev, err = parseSerial(rest)
	case KindVsock:
		dev, err = parseVsock(rest)
	case KindNetwork:
		dev, err = parseNetwork(rest)
	case KindSharedFS:
		dev, err = parseSharedFS(rest)
	}

	if err != nil {
		return nil, err
	}

	return dev, nil
}

// ResolveAll resolves all given device arguments concurrently.
//
// The returned devices are in the same order as the arguments. The first error
// encountered is returned.
func ResolveAll(ctx context.Context, raws []string) ([]Device, error) {
	devices := make([]Device, len(raws))

	eg, ctx := errgroup.WithContext(ctx)

	for idx, raw := range raws {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err //nolint:wrapcheck
			}

			dev, err := Resolve(raw)
			if err != nil {
				return fmt.Errorf("device %q: %w", raw, err)
			}

			devices[idx] = dev

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	return devices, nil
}

// BindAll binds the devices one after another in the given order. It stops at
// the first error.
func BindAll(kctx *krun.Context, devices []Device) error {
	for _, dev := range devices {
		slog.Debug("Bind device", slog.String("device", dev.String()))

		if err := dev.Bind(kctx); err != nil {
			return fmt.Errorf("bind %s: %w", dev.Kind(), err)
		}
	}

	return nil
}

func deviceString(kind Kind, fields ...string) string {
	return cmdline.JoinFields(append([]string{string(kind)}, fields...)...)
}

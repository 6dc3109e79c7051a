// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/aibor/virtkrun/internal/device"
	"github.com/aibor/virtkrun/internal/krun"
)

const localConfigFile = ".virtkrun-args"

// IO provides input and output details for the command.
type IO struct {
	Stdout io.Writer
	Stderr io.Writer
}

// VMMFunc returns the [krun.VMM] to use for the run.
type VMMFunc func(dryRun bool) (krun.VMM, error)

// DefaultVMM returns [krun.DryRun] for dry runs and libkrun otherwise.
func DefaultVMM(dryRun bool) (krun.VMM, error) {
	if dryRun {
		return &krun.DryRun{}, nil
	}

	return krun.OpenLibkrun() //nolint:wrapcheck
}

func newFlags(args []string, cfg IO) (*flags, error) {
	args, err := MergedArgs(args, os.DirFS("."), localConfigFile)
	if err != nil {
		return nil, err
	}

	flags, err := parseArgs(args, cfg.Stderr)
	if err != nil {
		return nil, fmt.Errorf("parse args: %w", err)
	}

	return flags, nil
}

func run(ctx context.Context, flags *flags, vmmFn VMMFunc) error {
	devices, err := device.ResolveAll(ctx, flags.Devices)
	if err != nil {
		return err //nolint:wrapcheck
	}

	err = Validate(devices)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	vmm, err := vmmFn(flags.DryRun)
	if err != nil {
		return fmt.Errorf("vmm: %w", err)
	}

	vm, err := krun.NewVM(vmm)
	if err != nil {
		return err //nolint:wrapcheck
	}
	defer closeVM(vm)

	err = vm.SetConfig(uint8(flags.CPUs), uint32(flags.Memory)) //nolint:gosec
	if err != nil {
		return err //nolint:wrapcheck
	}

	slog.Debug("Bootloader",
		slog.String("firmware", string(flags.Bootloader.Firmware)),
		slog.String("variable_store", flags.Bootloader.VariableStore),
		slog.String("action", string(flags.Bootloader.Action)))

	err = device.BindAll(vm.Context(), devices)
	if err != nil {
		return err //nolint:wrapcheck
	}

	slog.Debug("RESTful management URI", slog.String("uri", flags.RestfulURI))

	if flags.DryRun {
		return nil
	}

	err = vm.Start()
	if err != nil {
		return err //nolint:wrapcheck
	}

	return nil
}

func closeVM(vm *krun.VM) {
	err := vm.Close()
	if err != nil {
		slog.Error("Failed to free context", slog.Any("error", err))
	}
}

func handleParseArgsError(err error) int {
	// [ErrHelp] is returned when help is requested. So exit without error
	// in this case.
	if errors.Is(err, ErrHelp) {
		return 0
	}

	// ParseArgs already prints errors, so we just exit without an error.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return 2 //nolint:mnd
}

func handleRunError(err error) int {
	if errors.Is(err, device.ErrNotImplemented) {
		slog.Warn("device type can be configured but not attached yet")
	}

	if errors.Is(err, krun.ErrLibkrunUnavailable) {
		slog.Warn("rebuild with -tags libkrun or use --dry-run")
	}

	slog.Error(err.Error())

	return 1
}

// Run is the main entry point for the CLI command.
func Run(ctx context.Context, args []string, cfg IO, vmmFn VMMFunc) int {
	setupLogging(cfg.Stderr, slog.LevelWarn)

	flags, err := newFlags(args, cfg)
	if err != nil {
		return handleParseArgsError(err)
	}

	setupLogging(cfg.Stderr, flags.logLevel())

	if flags.Version {
		buildInfo, err := getBuildInfo()
		if err != nil {
			slog.Error(err.Error())
			return 1
		}

		fmt.Fprintf(cfg.Stdout, "Version: %s\n", buildInfo.Main.Version)

		return 0
	}

	err = run(ctx, flags, vmmFn)
	if err != nil {
		return handleRunError(err)
	}

	return 0
}

func getBuildInfo() (*debug.BuildInfo, error) {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, ErrReadBuildInfo
	}

	return buildInfo, nil
}

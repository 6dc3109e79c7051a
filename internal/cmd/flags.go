// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/url"
	"os"
	"strings"

	"github.com/aibor/virtkrun/internal/bootloader"
	"github.com/spf13/pflag"
)

const (
	name = "virtkrun"

	cpusDefault = 1
	cpusMin     = 1
	cpusMax     = math.MaxUint8

	memDefault = 512
	memMin     = 128
	memMax     = math.MaxUint32

	usageMessage = `Usage of 'virtkrun':
    virtkrun [flags...]

Example:
	virtkrun --cpus=2 --memory=1024 \
		--bootloader=efi,variable-store=/tmp/efi.store,create \
		--device=virtio-blk,path=/tmp/disk.img \
		--device=virtio-vsock,port=1024,socketURL=/tmp/vsock.sock,listen \
		--device=virtio-fs,sharedDir=/srv/share,mountTag=share \
		--restful-uri=tcp://localhost:8081

Device types: virtio-blk, virtio-rng, virtio-serial, virtio-vsock,
virtio-net, virtio-fs.

All virtkrun flags can also be provided via environment variable VIRTKRUN_ARGS
or via file ./.virtkrun-args, with one argument per line. A YAML or TOML file
given with --config provides defaults that are overridden by flags.
`
)

var errInvalidURI = errors.New("scheme missing")

type flags struct {
	CPUs       uint64
	Memory     uint64
	Bootloader bootloader.Config
	Devices    []string
	RestfulURI string
	ConfigFile string
	DryRun     bool
	Debug      bool
	Version    bool

	flagSet *pflag.FlagSet
}

func newFlagSet(output io.Writer) *flags {
	f := &flags{
		CPUs:   cpusDefault,
		Memory: memDefault,
	}

	f.initFlagset(output)

	return f
}

func (f *flags) initFlagset(output io.Writer) {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = f.usage
	flagSet.SortFlags = false

	flagSet.Var(
		&LimitedUintValue{
			Value: &f.CPUs,
			Lower: cpusMin,
			Upper: cpusMax,
		},
		"cpus",
		"number of vCPUs for the VM",
	)

	flagSet.Var(
		&LimitedUintValue{
			Value: &f.Memory,
			Lower: memMin,
			Upper: memMax,
		},
		"memory",
		"memory (in MiB) for the VM",
	)

	flagSet.Var(
		&f.Bootloader,
		"bootloader",
		"boot firmware: efi,variable-store=<path>,create (required)",
	)

	flagSet.StringArrayVar(
		&f.Devices,
		"device",
		f.Devices,
		"virtio device: <type>,<field>[,<field>...]. Flag may be used more "+
			"than once.",
	)

	flagSet.StringVar(
		&f.RestfulURI,
		"restful-uri",
		f.RestfulURI,
		"URI of the RESTful management service (required)",
	)

	flagSet.Var(
		(*FilePath)(&f.ConfigFile),
		"config",
		"YAML or TOML config file",
	)

	flagSet.BoolVar(
		&f.DryRun,
		"dry-run",
		f.DryRun,
		"log libkrun calls instead of running the VM",
	)

	flagSet.BoolVar(
		&f.Debug,
		"debug",
		f.Debug,
		"enable debug output",
	)

	flagSet.BoolVar(
		&f.Version,
		"version",
		f.Version,
		"show version and exit",
	)

	f.flagSet = flagSet
}

func (f *flags) parse(args []string) error {
	err := f.flagSet.Parse(args)
	if err != nil {
		return &ParseArgsError{msg: "flag parse", err: err}
	}

	if f.flagSet.NArg() > 0 {
		return f.fail("unexpected positional arguments: "+
			strings.Join(f.flagSet.Args(), " "), nil)
	}

	return nil
}

func (f *flags) validate() error {
	if f.Bootloader.IsZero() {
		return f.fail("no bootloader given (use --bootloader)", nil)
	}

	if f.RestfulURI == "" {
		return f.fail("no restful URI given (use --restful-uri)", nil)
	}

	uri, err := url.Parse(f.RestfulURI)
	if err != nil {
		return f.fail("invalid restful URI", err)
	}

	if uri.Scheme == "" {
		return f.fail("invalid restful URI", errInvalidURI)
	}

	return nil
}

// fail fails like flag does. It prints the error first and then usage.
func (f *flags) fail(msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(f.flagSet.Output(), err.Error())

	f.flagSet.Usage()

	return err
}

func (f *flags) usage() {
	fmt.Fprint(f.flagSet.Output(), usageMessage)
	fmt.Fprintln(f.flagSet.Output(), "\nFlags:")
	f.flagSet.PrintDefaults()
}

func (f *flags) logLevel() slog.Level {
	switch {
	case f.Debug:
		return slog.LevelDebug
	case f.DryRun:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

// parseArgs parses the given args. If a config file is given, the args from
// the config file are prepended and parsed again, so flags take precedence.
func parseArgs(args []string, output io.Writer) (*flags, error) {
	f := newFlagSet(output)

	err := f.parse(args)
	if err != nil {
		return nil, err
	}

	if f.Version {
		return f, nil
	}

	if f.ConfigFile != "" {
		cfg, err := ReadConfigFile(os.DirFS("/"), strings.TrimPrefix(f.ConfigFile, "/"))
		if err != nil {
			return nil, f.fail("config file", err)
		}

		f = newFlagSet(output)

		err = f.parse(append(cfg.Args(), args...))
		if err != nil {
			return nil, err
		}
	}

	err = f.validate()
	if err != nil {
		return nil, err
	}

	return f, nil
}

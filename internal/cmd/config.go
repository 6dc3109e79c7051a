// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"io/fs"
	"path"
	"strconv"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the content of a config file given with "--config".
//
// Values use the same grammar as the corresponding flags.
type ConfigFile struct {
	CPUs       *uint64  `toml:"cpus"        yaml:"cpus"`
	Memory     *uint64  `toml:"memory"      yaml:"memory"`
	Bootloader string   `toml:"bootloader"  yaml:"bootloader"`
	Devices    []string `toml:"devices"     yaml:"devices"`
	RestfulURI string   `toml:"restful-uri" yaml:"restful-uri"`
}

// ReadConfigFile reads the YAML or TOML config file with the given name from
// fsys. The format is chosen by file extension.
func ReadConfigFile(fsys fs.FS, name string) (ConfigFile, error) {
	var cfg ConfigFile

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return cfg, fmt.Errorf("read file: %w", err)
	}

	switch ext := path.Ext(name); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, ext)
	}

	if err != nil {
		return ConfigFile{}, fmt.Errorf("decode %s: %w", name, err)
	}

	return cfg, nil
}

// Args returns the config as flag arguments.
func (c *ConfigFile) Args() []string {
	args := []string{}

	if c.CPUs != nil {
		args = append(args, "--cpus="+strconv.FormatUint(*c.CPUs, 10))
	}

	if c.Memory != nil {
		args = append(args, "--memory="+strconv.FormatUint(*c.Memory, 10))
	}

	if c.Bootloader != "" {
		args = append(args, "--bootloader="+c.Bootloader)
	}

	for _, dev := range c.Devices {
		args = append(args, "--device="+dev)
	}

	if c.RestfulURI != "" {
		args = append(args, "--restful-uri="+c.RestfulURI)
	}

	return args
}

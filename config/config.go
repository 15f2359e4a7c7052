/*
 * config.go, part of ipclattice.
 *
 * Copyright 2024 The ipclattice authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package config reads the optional configuration file of the generator.
// The file is in gcfg (INI-like) format:
//
//	[output]
//	data = IPC_startingstate_manner.txt
//	plot = wafer.png
//	xyz = sites.xyz
//
// A data name ending in ".zst" gives a compressed file. Empty plot and xyz
// names, the default, mean no preview and no XYZ snapshot are produced.
package config

import (
	"os"
	"strings"

	ipc "github.com/Zirbo/ipclattice"
	"github.com/Zirbo/ipclattice/lammps"
	"gopkg.in/gcfg.v1"
)

// EnvVar is the environment variable that names the configuration file.
const EnvVar = "IPCLATTICE_CONFIG"

// Config holds the names of the files a run produces. Output.Data is the
// LAMMPS data file; Output.Plot and Output.XYZ are optional and empty when
// not wanted.
type Config struct {
	Output struct {
		Data string
		Plot string
		XYZ  string
	}
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := new(Config)
	c.Output.Data = lammps.DefaultName
	return c
}

// Check returns an error if the configuration can't be used.
func (c *Config) Check() error {
	if strings.TrimSpace(c.Output.Data) == "" {
		return ipc.InvalidArgumentf("config.Check", "the data file name can't be empty")
	}
	return nil
}

// Read reads the configuration file name. Values not in the file keep
// their defaults.
func Read(name string) (*Config, error) {
	c := Default()
	if err := gcfg.ReadFileInto(c, name); err != nil {
		return nil, ipc.NewError(ipc.ErrInvalidArgument, "can't read configuration", name, err, "config.Read")
	}
	return c, ipc.ErrDecorate(c.Check(), "config.Read")
}

// ReadString is like Read, but takes the content of the file.
func ReadString(s string) (*Config, error) {
	c := Default()
	if err := gcfg.ReadStringInto(c, s); err != nil {
		return nil, ipc.NewError(ipc.ErrInvalidArgument, "can't parse configuration", "", err, "config.ReadString")
	}
	return c, ipc.ErrDecorate(c.Check(), "config.ReadString")
}

// FromEnv reads the file named by EnvVar, or returns the defaults if the
// variable is not set or empty.
func FromEnv() (*Config, error) {
	name := os.Getenv(EnvVar)
	if name == "" {
		return Default(), nil
	}
	return Read(name)
}

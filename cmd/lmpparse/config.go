/*
 * config.go, part of golammps.
 *
 *
 * Copyright 2025 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 *
 */

package main

import (
	"bufio"
	"fmt"
	"os"

	lammps "github.com/rmera/golammps"
	"gopkg.in/yaml.v3"
)

// Kind is the kind of file to be read.
type Kind string

// The accepted kinds.
const (
	KData Kind = "data" //data file, atom style full
	KDump Kind = "dump" //text dump trajectory
	KCorr Kind = "corr" //fix ave/correlate output
	KMSD  Kind = "msd"  //time series, simple or multi-component
)

// Kinds lists the accepted kinds.
var Kinds = []Kind{KData, KDump, KCorr, KMSD}

// Output formats.
const (
	FJSON   = "json"   //lmpjson documents
	FCSV    = "csv"    //only for time series
	FNative = "native" //the same format as the input, re-emitted
)

// Config holds everything needed for one run. It can be read from a YAML file with
// LoadConfig, or filled by hand, in which case Check should be called before using it.
type Config struct {
	// Input is the file to be read. It can be gzip or zstd-compressed.
	Input string `yaml:"input"`

	// Kind is the kind of the input file.
	Kind Kind `yaml:"kind"`

	// Components are the time series components to keep. All of them if empty.
	Components []string `yaml:"components"`

	// Output is the file where the result is written, standard output if empty or "-".
	// It is compressed if it ends in .gz or .zst.
	Output string `yaml:"output"`

	// Format is the output format: json (the default), csv or native.
	Format string `yaml:"format"`

	// Mode is the error policy: strict, lenient or default.
	Mode lammps.Mode `yaml:"mode"`
}

// LoadConfig opens and decodes the YAML configuration file path, and checks the result.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c := new(Config)
	dec := yaml.NewDecoder(bufio.NewReader(f))
	if err = dec.Decode(c); err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}
	if err = c.Check(); err != nil {
		return nil, fmt.Errorf("Check: %w", err)
	}
	return c, nil
}

// Check returns an error if a field of the Config is not acceptable. An empty
// Format is set to json.
func (c *Config) Check() error {
	if c.Input == "" {
		return fmt.Errorf("no input file given")
	}
	known := false
	for _, k := range Kinds {
		if c.Kind == k {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown kind %q, must be one of %v", c.Kind, Kinds)
	}
	if c.Format == "" {
		c.Format = FJSON
	}
	switch c.Format {
	case FJSON, FNative:
	case FCSV:
		if c.Kind != KMSD {
			return fmt.Errorf("the csv format is only available for time series")
		}
	default:
		return fmt.Errorf("unknown output format %q", c.Format)
	}
	if len(c.Components) > 0 && c.Kind != KMSD {
		return fmt.Errorf("components can only be selected for time series")
	}
	return nil
}

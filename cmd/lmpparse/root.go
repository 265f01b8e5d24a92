/*
 * root.go, part of golammps.
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
	"io"
	"log"

	"github.com/spf13/cobra"

	lammps "github.com/rmera/golammps"
)

// RootOptions holds the flags shared by all commands.
type RootOptions struct {
	Output  string
	Format  string
	Mode    string
	Verbose bool
}

// NewRootCommand returns the lmpparse command with all its subcommands.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	cmd := &cobra.Command{
		Use:   "lmpparse",
		Short: "lmpparse - read LAMMPS output files",
		Long: `Read LAMMPS data files, text dump trajectories, fix ave/correlate output
and time series (such as mean square displacements), and write their content
as JSON, CSV (time series only) or in their own format.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.Output, "output", "o", "", "output file (standard output if empty)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", FJSON, "output format (json|csv|native)")
	cmd.PersistentFlags().StringVar(&opts.Mode, "mode", "default", "error policy (strict|lenient|default)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log progress to stderr")

	for _, k := range []Kind{KData, KDump, KCorr} {
		cmd.AddCommand(newKindCommand(opts, k))
	}
	cmd.AddCommand(newMSDCommand(opts))
	cmd.AddCommand(newRunCommand(opts))
	return cmd
}

var shorts = map[Kind]string{
	KData: "Read a data file (atom style full)",
	KDump: "Read a text dump trajectory",
	KCorr: "Read the output of fix ave/correlate",
	KMSD:  "Read a time series, simple or multi-component",
}

func newKindCommand(opts *RootOptions, k Kind) *cobra.Command {
	return &cobra.Command{
		Use:   string(k) + " <file>",
		Short: shorts[k],
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFlags(opts, &Config{Input: args[0], Kind: k}, cmd, false)
		},
	}
}

func newMSDCommand(opts *RootOptions) *cobra.Command {
	var components []string
	cmd := &cobra.Command{
		Use:   string(KMSD) + " <file>",
		Short: shorts[KMSD],
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFlags(opts, &Config{Input: args[0], Kind: KMSD, Components: components}, cmd, false)
		},
	}
	cmd.Flags().StringSliceVarP(&components, "components", "c", nil, "components to keep (x,y,z,total)")
	return cmd
}

func newRunCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run <config.yaml>",
		Short: "Read the file described in a YAML configuration file",
		Long: `Read the file described in a YAML configuration file. The output, format
and mode flags, when given, replace the values in the file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := LoadConfig(args[0])
			if err != nil {
				return err
			}
			return runFlags(opts, c, cmd, true)
		},
	}
}

// runFlags puts the flags in c, checks it and runs it. If c comes from a
// configuration file, only the flags actually given replace its values.
func runFlags(opts *RootOptions, c *Config, cmd *cobra.Command, loaded bool) error {
	flags := cmd.Flags()
	fresh := !loaded
	if fresh || flags.Changed("output") {
		c.Output = opts.Output
	}
	if fresh || flags.Changed("format") {
		c.Format = opts.Format
	}
	if fresh || flags.Changed("mode") {
		m, err := lammps.ParseMode(opts.Mode)
		if err != nil {
			return err
		}
		c.Mode = m
	}
	if err := c.Check(); err != nil {
		return err
	}
	logger := log.New(cmd.ErrOrStderr(), "lmpparse: ", 0)
	progress := logger
	if !opts.Verbose {
		progress = log.New(io.Discard, "", 0)
	}
	return Run(c, cmd.OutOrStdout(), progress, logger)
}

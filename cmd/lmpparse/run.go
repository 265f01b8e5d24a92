/*
 * run.go, part of golammps.
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
	"fmt"
	"io"
	"log"

	lammps "github.com/rmera/golammps"
	"github.com/rmera/golammps/corr"
	"github.com/rmera/golammps/data"
	"github.com/rmera/golammps/lmpjson"
	"github.com/rmera/golammps/msd"
	"github.com/rmera/golammps/traj/dump"
)

// Run reads the input file given in c and writes the result to c.Output or, if
// that is empty, to stdout. c must have been checked. Progress is logged to progress,
// and the lines skipped in lenient mode, to logger.
func Run(c *Config, stdout io.Writer, progress, logger *log.Logger) (err error) {
	opt := &lammps.Options{Mode: c.Mode, Logger: logger}
	var w io.WriteCloser
	if c.Output == "" || c.Output == "-" {
		w = nopCloser{stdout}
	} else if w, err = lammps.Create(c.Output); err != nil {
		return err
	}
	defer func() {
		if err2 := w.Close(); err == nil {
			err = err2
		}
	}()
	progress.Printf("Reading %s file `%s`", c.Kind, c.Input)
	switch c.Kind {
	case KData:
		var D *data.Data
		if D, err = data.File(c.Input, opt); err != nil {
			return err
		}
		progress.Printf("%d atoms, %d bonds, %d angles", len(D.Atoms), len(D.Bonds), len(D.Angles))
		if c.Format == FNative {
			return data.Write(w, D)
		}
		return sent(lmpjson.NewTopology(D).Send(w))
	case KDump:
		var snaps []*dump.Snapshot
		if snaps, err = dump.File(c.Input, opt); err != nil {
			return err
		}
		progress.Printf("%d frames", len(snaps))
		if c.Format == FNative {
			return dump.Write(w, snaps)
		}
		return sent(lmpjson.SendFrames(snaps, w))
	case KCorr:
		var S *corr.Series
		if S, err = corr.File(c.Input, opt); err != nil {
			return err
		}
		progress.Printf("%d blocks", S.Len())
		if c.Format == FNative {
			return corr.Write(w, S)
		}
		return sent(lmpjson.NewCorrelation(S).Send(w))
	case KMSD:
		var S *msd.Series
		if S, err = msd.File(c.Input, opt); err != nil {
			return err
		}
		progress.Printf("%s time series, %d timesteps", S.Format, S.Len())
		S = S.Select(c.Components, lammps.Named(c.Input, opt))
		switch c.Format {
		case FNative:
			return msd.Write(w, S)
		case FCSV:
			return msd.WriteCSV(w, S)
		}
		return sent(lmpjson.NewTimeSeries(S).Send(w))
	}
	return fmt.Errorf("unknown kind %q", c.Kind)
}

// sent avoids returning a nil *lmpjson.Error as a non-nil error.
func sent(jerr *lmpjson.Error) error {
	if jerr != nil {
		return jerr
	}
	return nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

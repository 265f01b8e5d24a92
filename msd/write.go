/*
 * write.go, part of golammps
 *
 * Copyright 2025 Raul Mera Adasme <rmera_changeforat_chem-dot-helsinki-dot-fi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License  as published by
 * the Free Software Foundation; either version 2.1 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public License
 * along with this program; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston,
 * MA 02110-1301, USA.
 */

package msd

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	lammps "github.com/rmera/golammps"
)

// Write writes the series in its own format. Only present components are written.
// A series in the Unknown format produces only the comment line.
// Parse always reads a multi-component file with all four components, so a series
// returned by Select reads back with the components left out set to 0.
func Write(w io.Writer, S *Series) error {
	b := bufio.NewWriter(w)
	switch S.Format {
	case Simple:
		fmt.Fprintln(b, "# Timestep total")
		for j, t := range S.Timesteps {
			fmt.Fprintf(b, "%d %s\n", t, float(S.values[Total][j]))
		}
	case MultiComponent:
		names := S.Names()
		fmt.Fprintf(b, "# Timestep Number-of-rows\n# Component-id value (%s)\n", strings.Join(names, " "))
		for j, t := range S.Timesteps {
			fmt.Fprintf(b, "%d %d\n", t, len(names))
			for i := range Components {
				if S.present[i] {
					fmt.Fprintf(b, "%d %s\n", i+1, float(S.values[i][j]))
				}
			}
		}
	default:
		fmt.Fprintln(b, "# empty series")
	}
	return b.Flush()
}

// float formats v so it never reads as an integer, which would change the format
// detected for a simple series.
func float(v float64) string {
	s := lammps.FormatFloat(v)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}
	return s + ".0"
}

// WriteCSV writes the series as comma separated values: a header with "timestep"
// and the names of the present components, then one row per timestep.
func WriteCSV(w io.Writer, S *Series) error {
	c := csv.NewWriter(w)
	names := S.Names()
	if err := c.Write(append([]string{"timestep"}, names...)); err != nil {
		return err
	}
	rec := make([]string, len(names)+1)
	for j, t := range S.Timesteps {
		rec[0] = strconv.Itoa(t)
		for k, n := range names {
			rec[k+1] = lammps.FormatFloat(S.values[ComponentIndex(n)][j])
		}
		if err := c.Write(rec); err != nil {
			return err
		}
	}
	c.Flush()
	return c.Error()
}

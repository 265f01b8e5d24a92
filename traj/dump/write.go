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

package dump

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	lammps "github.com/rmera/golammps"
)

// WNext writes one frame. The number of atom rows must match S.NAtoms.
func (S *Snapshot) WNext(w io.Writer) error {
	if len(S.Atoms) != S.NAtoms {
		return fmt.Errorf("dump.WNext: %d atom rows, but %d atoms declared at timestep %d", len(S.Atoms), S.NAtoms, S.Timestep)
	}
	b := bufio.NewWriter(w)
	fmt.Fprintf(b, "%s\n%d\n%s\n%d\n", itemTimestep, S.Timestep, itemNAtoms, S.NAtoms)
	if S.BoxFlags != "" {
		fmt.Fprintf(b, "%s %s\n", itemBox, S.BoxFlags)
	} else {
		fmt.Fprintf(b, "%s\n", itemBox)
	}
	for i, v := range S.Box {
		if S.Triclinic {
			fmt.Fprintln(b, lammps.JoinFloats(v.Lo, v.Hi, S.Tilt[i]))
		} else {
			fmt.Fprintln(b, lammps.JoinFloats(v.Lo, v.Hi))
		}
	}
	if len(S.Columns) > 0 {
		fmt.Fprintf(b, "%s %s\n", itemAtoms, strings.Join(S.Columns, " "))
	} else {
		fmt.Fprintf(b, "%s\n", itemAtoms)
	}
	for _, r := range S.Atoms {
		line := lammps.JoinInts(r.Ints...)
		if len(r.Floats) > 0 {
			line += " " + lammps.JoinFloats(r.Floats...)
		}
		fmt.Fprintln(b, line)
	}
	return b.Flush()
}

// Write writes all the frames, in order, in the dump format.
func Write(w io.Writer, snaps []*Snapshot) error {
	for _, S := range snaps {
		if err := S.WNext(w); err != nil {
			return err
		}
	}
	return nil
}

/*
 * write.go, part of golammps
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
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

package data

import (
	"fmt"
	"io"
	"strings"

	lammps "github.com/rmera/golammps"
)

// ToData returns the atom as a line of the Atoms section.
func (A Atom) ToData() string {
	return fmt.Sprintf("%d %d %d %s %s\n", A.ID, A.MolID, A.Type, lammps.JoinFloats(A.Charge, A.Pos[0], A.Pos[1], A.Pos[2]), lammps.JoinInts(A.Image[:]...))
}

// ToData returns the bond as a line of the Bonds section.
func (B Bond) ToData() string {
	return lammps.JoinInts(B.ID, B.Type, B.Atoms[0], B.Atoms[1]) + "\n"
}

// ToData returns the angle as a line of the Angles section.
func (A Angle) ToData() string {
	return lammps.JoinInts(A.ID, A.Type, A.Atoms[0], A.Atoms[1], A.Atoms[2]) + "\n"
}

type dataer interface {
	ToData() string
}

func printData[D ~[]E, E dataer](w io.StringWriter, d D) error {
	for _, v := range d {
		if _, err := w.WriteString(v.ToData()); err != nil {
			return err
		}
	}
	return nil
}

// Write writes D in the data file format, in a way that Parse reads back into the same Data.
// Empty sections are not written.
func Write(w io.Writer, D *Data) (err error) {
	sw := stringWriter{w}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("data.Write: %v", r)
		}
	}()
	qwrite(sw, D.Title+"\n\n")
	maxtype := func(n int, t int) int {
		if t > n {
			return t
		}
		return n
	}
	var at, bt, ant int
	for _, v := range D.Atoms {
		at = maxtype(at, v.Type)
	}
	for _, v := range D.Bonds {
		bt = maxtype(bt, v.Type)
	}
	for _, v := range D.Angles {
		ant = maxtype(ant, v.Type)
	}
	qwrite(sw, fmt.Sprintf("%d atoms\n", len(D.Atoms)))
	if len(D.Bonds) > 0 {
		qwrite(sw, fmt.Sprintf("%d bonds\n", len(D.Bonds)))
	}
	if len(D.Angles) > 0 {
		qwrite(sw, fmt.Sprintf("%d angles\n", len(D.Angles)))
	}
	qwrite(sw, fmt.Sprintf("%d atom types\n", at))
	if len(D.Bonds) > 0 {
		qwrite(sw, fmt.Sprintf("%d bond types\n", bt))
	}
	if len(D.Angles) > 0 {
		qwrite(sw, fmt.Sprintf("%d angle types\n", ant))
	}
	qwrite(sw, "\n")
	for _, axis := range lammps.Axes {
		b, ok := D.Bounds[axis]
		if !ok {
			continue
		}
		qwrite(sw, fmt.Sprintf("%s %slo %shi\n", lammps.JoinFloats(b.Lo, b.Hi), axis, axis))
	}
	if len(D.Atoms) > 0 {
		qwrite(sw, "\nAtoms # full\n\n")
		qerr(printData(sw, D.Atoms))
	}
	if len(D.Bonds) > 0 {
		qwrite(sw, "\nBonds\n\n")
		qerr(printData(sw, D.Bonds))
	}
	if len(D.Angles) > 0 {
		qwrite(sw, "\nAngles\n\n")
		qerr(printData(sw, D.Angles))
	}
	return nil
}

type stringWriter struct {
	io.Writer
}

func (s stringWriter) WriteString(str string) (int, error) {
	return io.WriteString(s.Writer, str)
}

func qwrite(w io.StringWriter, s string) {
	_, err := w.WriteString(s)
	qerr(err)
}

func qerr(err error) {
	if err != nil {
		panic(strings.TrimSpace(err.Error()))
	}
}

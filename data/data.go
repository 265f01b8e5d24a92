/*
 * data.go, part of golammps
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

/*
Package data reads and writes LAMMPS data files written with atom style full.
Only the Atoms, Bonds and Angles sections and the box extents are read.
Reading stops at the Velocities section: nothing after it is read, even if
another section header appears later.
*/
package data

import (
	"fmt"
	"regexp"
	"strings"

	lammps "github.com/rmera/golammps"
)

const format = "data"

// Atom is one line of the Atoms section.
type Atom struct {
	ID     int        `json:"id"`
	MolID  int        `json:"mol"`
	Type   int        `json:"type"`
	Charge float64    `json:"q"`
	Pos    [3]float64 `json:"pos"`
	Image  [3]int     `json:"image"`
}

// Bond is one line of the Bonds section.
type Bond struct {
	ID    int    `json:"id"`
	Type  int    `json:"type"`
	Atoms [2]int `json:"atoms"`
}

// Angle is one line of the Angles section.
type Angle struct {
	ID    int    `json:"id"`
	Type  int    `json:"type"`
	Atoms [3]int `json:"atoms"`
}

// Data is the content of a data file. Atom IDs in bonds and angles are
// not checked against Atoms.
type Data struct {
	Title  string
	Atoms  []Atom
	Bonds  []Bond
	Angles []Angle
	Bounds map[string]lammps.Bound //keys are "x", "y" and "z". Axes without a bounds line are absent.
}

// Box returns the extent (hi-lo) of the box along each axis present in the file.
func (D *Data) Box() map[string]float64 {
	ret := make(map[string]float64, len(D.Bounds))
	for k, v := range D.Bounds {
		ret[k] = v.Length()
	}
	return ret
}

type section int

const (
	none section = iota
	atoms
	bonds
	angles
)

var headers = map[string]section{
	"Atoms # full": atoms,
	"Bonds":        bonds,
	"Angles":       angles,
}

// Nothing after this header is read.
const terminal = "Velocities"

var boxRegex = map[string]*regexp.Regexp{
	"x": boxRegexp("x"),
	"y": boxRegexp("y"),
	"z": boxRegexp("z"),
}

func boxRegexp(axis string) *regexp.Regexp {
	return regexp.MustCompile(`^([-+0-9.eE]+)\s+([-+0-9.eE]+)\s+` + axis + `lo\s+` + axis + `hi`)
}

// File reads the data file name. Files ending in .gz or .zst are decompressed.
func File(name string, opt ...*lammps.Options) (*Data, error) {
	text, err := lammps.ReadFile(name)
	if err != nil {
		return nil, err
	}
	D, err := Parse(text, lammps.Named(name, opt...))
	return D, lammps.ErrDecorate(err, "File")
}

// Parse reads the content of a data file. Unless opt says otherwise, it uses
// Strict mode: any line in the Atoms, Bonds or Angles sections that can't be
// decoded aborts the reading.
func Parse(text string, opt ...*lammps.Options) (*Data, error) {
	O := lammps.Resolve(lammps.Strict, opt...)
	L := lammps.NewLines(text, format, O.Name)
	D := &Data{Bounds: make(map[string]lammps.Bound, 3)}
	if s, ok := L.Peek(); ok {
		D.Title = strings.TrimSpace(s)
	}
	if err := D.readBox(L.Rewound(), O); err != nil {
		return nil, lammps.ErrDecorate(err, "Parse")
	}
	if err := D.readSections(L.Rewound(), O); err != nil {
		return nil, lammps.ErrDecorate(err, "Parse")
	}
	return D, nil
}

// the first line matching each axis wins.
func (D *Data) readBox(L *lammps.Lines, O *lammps.Options) error {
	for s, ok := L.Next(); ok; s, ok = L.Next() {
		s = strings.TrimSpace(s)
		for _, axis := range lammps.Axes {
			if _, found := D.Bounds[axis]; found {
				continue
			}
			m := boxRegex[axis].FindStringSubmatch(s)
			if m == nil {
				continue
			}
			f, err := lammps.ParseFloats(m[1], m[2])
			if err != nil {
				if err := O.Fail(L.Errorf(lammps.ErrDecode, L.Line(), "box bounds for %s: %s", axis, err)); err != nil {
					return lammps.ErrDecorate(err, "readBox")
				}
				break
			}
			D.Bounds[axis] = lammps.Bound{Lo: f[0], Hi: f[1]}
			break
		}
	}
	return nil
}

func (D *Data) readSections(L *lammps.Lines, O *lammps.Options) error {
	current := none
	for s, ok := L.Next(); ok; s, ok = L.Next() {
		t := strings.TrimSpace(s)
		if t == terminal {
			break
		}
		if sec, ok := headers[t]; ok {
			current = sec
			continue
		}
		if current == none || lammps.Ignorable(s) {
			continue
		}
		var err error
		f := strings.Fields(s)
		switch current {
		case atoms:
			var at Atom
			if at, err = atomFromFields(f); err == nil {
				D.Atoms = append(D.Atoms, at)
			}
		case bonds:
			var b Bond
			if b, err = bondFromFields(f); err == nil {
				D.Bonds = append(D.Bonds, b)
			}
		case angles:
			var a Angle
			if a, err = angleFromFields(f); err == nil {
				D.Angles = append(D.Angles, a)
			}
		}
		if err != nil {
			if err := O.Fail(L.Errorf(lammps.ErrDecode, L.Line(), "%s: %s", current, err)); err != nil {
				return lammps.ErrDecorate(err, "readSections")
			}
		}
	}
	return nil
}

func (s section) String() string {
	switch s {
	case atoms:
		return "Atoms"
	case bonds:
		return "Bonds"
	case angles:
		return "Angles"
	}
	return "none"
}

// id mol type q x y z ix iy iz. Anything after the 10th field is ignored.
func atomFromFields(f []string) (Atom, error) {
	var at Atom
	if len(f) < 10 {
		return at, fmt.Errorf("%d fields, at least 10 needed", len(f))
	}
	ids, err := lammps.ParseInts(f[:3]...)
	if err != nil {
		return at, err
	}
	fl, err := lammps.ParseFloats(f[3:7]...)
	if err != nil {
		return at, err
	}
	img, err := lammps.ParseInts(f[7:10]...)
	if err != nil {
		return at, err
	}
	at.ID, at.MolID, at.Type = ids[0], ids[1], ids[2]
	at.Charge = fl[0]
	copy(at.Pos[:], fl[1:])
	copy(at.Image[:], img)
	return at, nil
}

func bondFromFields(f []string) (Bond, error) {
	var b Bond
	if len(f) < 4 {
		return b, fmt.Errorf("%d fields, at least 4 needed", len(f))
	}
	n, err := lammps.ParseInts(f[:4]...)
	if err != nil {
		return b, err
	}
	b.ID, b.Type = n[0], n[1]
	copy(b.Atoms[:], n[2:])
	return b, nil
}

func angleFromFields(f []string) (Angle, error) {
	var a Angle
	if len(f) < 5 {
		return a, fmt.Errorf("%d fields, at least 5 needed", len(f))
	}
	n, err := lammps.ParseInts(f[:5]...)
	if err != nil {
		return a, err
	}
	a.ID, a.Type = n[0], n[1]
	copy(a.Atoms[:], n[2:])
	return a, nil
}

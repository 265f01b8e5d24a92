/*
 * dump.go, part of golammps
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

// Package dump reads and writes LAMMPS text dump trajectories. Each frame
// is a block of ITEM: lines followed by one line per atom.
package dump

import (
	"fmt"
	"strconv"
	"strings"

	lammps "github.com/rmera/golammps"
)

const format = "dump"

const (
	itemTimestep = "ITEM: TIMESTEP"
	itemNAtoms   = "ITEM: NUMBER OF ATOMS"
	itemBox      = "ITEM: BOX BOUNDS"
	itemAtoms    = "ITEM: ATOMS"
)

// NInts is the number of leading columns of each atom line that are read as integers.
// The rest are read as floating point numbers. This is a convention of the format,
// not something deduced from the values.
const NInts = 3

// Row is one atom line of a frame.
type Row struct {
	Ints   []int     //the first NInts columns (fewer if there are fewer columns)
	Floats []float64 //the remaining columns
}

// Snapshot is one frame of the trajectory.
type Snapshot struct {
	Timestep  int
	NAtoms    int
	BoxFlags  string          //whatever follows ITEM: BOX BOUNDS, e.g. "pp pp pp"
	Box       [3]lammps.Bound //x, y, z
	Tilt      [3]float64      //xy, xz, yz. Only meaningful if Triclinic
	Triclinic bool
	Columns   []string //from the ITEM: ATOMS line
	Atoms     []Row    //len(Atoms)==NAtoms
}

// File reads all the frames in the dump file name. Files ending in .gz or .zst are decompressed.
func File(name string, opt ...*lammps.Options) ([]*Snapshot, error) {
	text, err := lammps.ReadFile(name)
	if err != nil {
		return nil, err
	}
	S, err := Parse(text, lammps.Named(name, opt...))
	return S, lammps.ErrDecorate(err, "File")
}

// Parse returns the frames in text, in file order. Lines outside of a frame are skipped.
// A missing marker or atom line, or an atom line with a number of fields different from
// the number of declared columns, is always an error. A value that can't be decoded is an
// error in Strict mode (the default); in Lenient mode the whole frame is logged and dropped.
func Parse(text string, opt ...*lammps.Options) ([]*Snapshot, error) {
	O := lammps.Resolve(lammps.Strict, opt...)
	L := lammps.NewLines(text, format, O.Name)
	snaps := make([]*Snapshot, 0, 1)
	for s, ok := L.Peek(); ok; s, ok = L.Peek() {
		if !strings.HasPrefix(s, itemTimestep) {
			L.Next()
			continue
		}
		S, err := next(L, O)
		if err != nil {
			return nil, lammps.ErrDecorate(err, "Parse")
		}
		if S != nil {
			snaps = append(snaps, S)
		}
	}
	return snaps, nil
}

// next reads the frame that starts at the current line. It returns nil, nil
// if the frame was dropped in Lenient mode.
func next(L *lammps.Lines, O *lammps.Options) (*Snapshot, error) {
	var err error
	S := new(Snapshot)
	if _, err = L.Expect(itemTimestep); err != nil {
		return nil, err
	}
	if S.Timestep, err = intLine(L, "timestep"); err != nil {
		return nil, err
	}
	if _, err = L.Expect(itemNAtoms); err != nil {
		return nil, err
	}
	if S.NAtoms, err = intLine(L, "number of atoms"); err != nil {
		return nil, err
	}
	if S.NAtoms < 0 {
		return nil, L.Errorf(lammps.ErrStructure, L.Line(), "negative number of atoms %d", S.NAtoms)
	}
	h, err := L.Expect(itemBox)
	if err != nil {
		return nil, err
	}
	S.BoxFlags = strings.TrimSpace(strings.TrimPrefix(h, itemBox))
	boxlines, err := L.Block(3)
	if err != nil {
		return nil, err
	}
	boxstart := L.Line() - 2
	h, err = L.Expect(itemAtoms)
	if err != nil {
		return nil, err
	}
	S.Columns = strings.Fields(strings.TrimPrefix(h, itemAtoms))
	rows, err := L.Block(S.NAtoms)
	if err != nil {
		return nil, lammps.ErrDecorate(err, fmt.Sprintf("next: timestep %d", S.Timestep))
	}
	rowstart := L.Line() - S.NAtoms + 1

	//The shape of the frame is checked before any value is decoded, so structural
	//problems are reported in both modes.
	box := make([][]string, 3)
	for i, v := range boxlines {
		box[i] = strings.Fields(v)
		if len(box[i]) != 2 && len(box[i]) != 3 {
			return nil, L.Errorf(lammps.ErrStructure, boxstart+i, "box bounds line with %d fields", len(box[i]))
		}
	}
	fields := make([][]string, len(rows))
	for i, v := range rows {
		fields[i] = strings.Fields(v)
		if len(fields[i]) != len(S.Columns) {
			return nil, L.Errorf(lammps.ErrStructure, rowstart+i, "%d fields but %d columns declared", len(fields[i]), len(S.Columns))
		}
	}

	if ferr := S.decodeBox(box, L, boxstart); ferr != nil {
		return dropped(S, O, ferr)
	}
	S.Atoms = make([]Row, len(fields))
	for i, f := range fields {
		var err error
		if S.Atoms[i], err = rowFromFields(f); err != nil {
			return dropped(S, O, L.Errorf(lammps.ErrDecode, rowstart+i, "atom line: %s", err))
		}
	}
	return S, nil
}

func dropped(S *Snapshot, O *lammps.Options, ferr *lammps.FormatError) (*Snapshot, error) {
	ferr.Decorate(fmt.Sprintf("next: timestep %d", S.Timestep))
	if err := O.Fail(ferr); err != nil {
		return nil, err
	}
	O.Logf("dropped the frame at timestep %d", S.Timestep)
	return nil, nil
}

func (S *Snapshot) decodeBox(box [][]string, L *lammps.Lines, start int) *lammps.FormatError {
	for i, f := range box {
		v, err := lammps.ParseFloats(f...)
		if err != nil {
			return L.Errorf(lammps.ErrDecode, start+i, "box bounds: %s", err)
		}
		S.Box[i] = lammps.Bound{Lo: v[0], Hi: v[1]}
		if len(v) == 3 {
			S.Tilt[i] = v[2]
			S.Triclinic = true
		}
	}
	return nil
}

func rowFromFields(f []string) (Row, error) {
	ni := NInts
	if len(f) < ni {
		ni = len(f)
	}
	r := Row{Ints: make([]int, ni), Floats: make([]float64, len(f)-ni)}
	var err error
	for k, v := range f {
		if k < ni {
			r.Ints[k], err = strconv.Atoi(v)
		} else {
			r.Floats[k-ni], err = strconv.ParseFloat(v, 64)
		}
		if err != nil {
			return r, fmt.Errorf("column %d: %w", k+1, err)
		}
	}
	return r, nil
}

// the next line must exist and hold a single integer.
func intLine(L *lammps.Lines, what string) (int, error) {
	s, ok := L.Next()
	if !ok {
		return 0, L.Errorf(lammps.ErrStructure, L.Line(), "expected the %s, found the end of the file", what)
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, L.Errorf(lammps.ErrDecode, L.Line(), "can't read the %s: %s", what, err)
	}
	return n, nil
}

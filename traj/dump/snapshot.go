/*
 * snapshot.go, part of golammps
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
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Coordinate column sets tried, in order, by Coords when no names are given:
// wrapped, unwrapped and scaled coordinates.
var CoordSets = [][3]string{
	{"x", "y", "z"},
	{"xu", "yu", "zu"},
	{"xs", "ys", "zs"},
}

// ColumnIndex returns the position of the column name in the frame, or -1.
func (S *Snapshot) ColumnIndex(name string) int {
	for i, v := range S.Columns {
		if v == name {
			return i
		}
	}
	return -1
}

// value returns the kth column of the ith atom as a float64.
func (S *Snapshot) value(i, k int) float64 {
	r := S.Atoms[i]
	if k < len(r.Ints) {
		return float64(r.Ints[k])
	}
	return r.Floats[k-len(r.Ints)]
}

// Column returns the values of the column name for all atoms, in file order.
// Integer columns are converted to float64. false means there is no such column.
func (S *Snapshot) Column(name string) ([]float64, bool) {
	k := S.ColumnIndex(name)
	if k < 0 {
		return nil, false
	}
	ret := make([]float64, len(S.Atoms))
	for i := range S.Atoms {
		ret[i] = S.value(i, k)
	}
	return ret, true
}

// IntColumn returns the values of the column name, which must be one of the
// first NInts columns (typically id, type or mol).
func (S *Snapshot) IntColumn(name string) ([]int, bool) {
	k := S.ColumnIndex(name)
	if k < 0 || k >= NInts {
		return nil, false
	}
	ret := make([]int, len(S.Atoms))
	for i, r := range S.Atoms {
		ret[i] = r.Ints[k]
	}
	return ret, true
}

// Table returns the whole atom table as a NAtoms x len(Columns) matrix.
// It returns nil for a frame without atoms or without columns.
func (S *Snapshot) Table() *mat.Dense {
	if len(S.Atoms) == 0 || len(S.Columns) == 0 {
		return nil
	}
	T := mat.NewDense(len(S.Atoms), len(S.Columns), nil)
	for i := range S.Atoms {
		for k := range S.Columns {
			T.Set(i, k, S.value(i, k))
		}
	}
	return T
}

// Coords returns a NAtoms x 3 matrix with the columns names. If no names are given,
// the first complete set in CoordSets is used.
func (S *Snapshot) Coords(names ...string) (*mat.Dense, error) {
	if len(S.Atoms) == 0 {
		return nil, fmt.Errorf("frame at timestep %d has no atoms", S.Timestep)
	}
	if len(names) == 0 {
		for _, set := range CoordSets {
			if S.ColumnIndex(set[0]) >= 0 && S.ColumnIndex(set[1]) >= 0 && S.ColumnIndex(set[2]) >= 0 {
				names = set[:]
				break
			}
		}
		if len(names) == 0 {
			return nil, fmt.Errorf("no coordinate columns among %s", strings.Join(S.Columns, " "))
		}
	}
	if len(names) != 3 {
		return nil, fmt.Errorf("3 coordinate columns needed, %d given", len(names))
	}
	ks := make([]int, 3)
	for j, n := range names {
		if ks[j] = S.ColumnIndex(n); ks[j] < 0 {
			return nil, fmt.Errorf("no column %s in frame at timestep %d", n, S.Timestep)
		}
	}
	C := mat.NewDense(len(S.Atoms), 3, nil)
	for i := range S.Atoms {
		for j, k := range ks {
			C.Set(i, j, S.value(i, k))
		}
	}
	return C, nil
}

// Lengths returns the extent of the box along x, y and z.
func (S *Snapshot) Lengths() [3]float64 {
	var ret [3]float64
	for i, v := range S.Box {
		ret[i] = v.Length()
	}
	return ret
}

/*
 * data_test.go, part of golammps
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
	"bytes"
	"errors"
	"log"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lammps "github.com/rmera/golammps"
)

func dimer() *Data {
	return &Data{
		Title: "water dimer",
		Atoms: []Atom{
			{ID: 1, MolID: 1, Type: 1, Charge: -0.8476, Pos: [3]float64{1.5, 2, 3}},
			{ID: 2, MolID: 1, Type: 2, Charge: 0.4238, Pos: [3]float64{2.5, 2, 3}, Image: [3]int{0, 0, -1}},
			{ID: 3, MolID: 1, Type: 2, Charge: 0.4238, Pos: [3]float64{1.2, 2.9, 3}, Image: [3]int{1, 0, 0}},
		},
		Bonds:  []Bond{{ID: 1, Type: 1, Atoms: [2]int{1, 2}}, {ID: 2, Type: 1, Atoms: [2]int{1, 3}}},
		Angles: []Angle{{ID: 1, Type: 1, Atoms: [3]int{2, 1, 3}}},
		Bounds: map[string]lammps.Bound{
			"x": {Lo: 0, Hi: 10},
			"y": {Lo: -5, Hi: 5},
			"z": {Lo: 0, Hi: 12.5},
		},
	}
}

func TestDataFile(Te *testing.T) {
	D, err := File("testdata/water.data")
	require.NoError(Te, err)
	assert.Equal(Te, "LAMMPS data file via write_data, version 2 Aug 2023, timestep = 1000, units = real", D.Title)
	require.Len(Te, D.Atoms, 6)
	assert.Equal(Te, Atom{ID: 4, MolID: 2, Type: 1, Charge: -0.8476, Pos: [3]float64{1, 2, 3}, Image: [3]int{1, 0, -1}}, D.Atoms[3])
	//Velocities comes before Bonds and Angles, and nothing after it is read.
	assert.Empty(Te, D.Bonds)
	assert.Empty(Te, D.Angles)
	box := D.Box()
	assert.Len(Te, box, 3)
	for _, axis := range lammps.Axes {
		assert.InDelta(Te, 20.0, box[axis], 1e-12, axis)
		assert.GreaterOrEqual(Te, box[axis], 0.0)
	}
	assert.Equal(Te, lammps.Bound{Lo: -2, Hi: 18}, D.Bounds["z"])
}

func TestDataSections(Te *testing.T) {
	D, err := File("testdata/water_nov.data")
	require.NoError(Te, err)
	assert.Len(Te, D.Atoms, 3)
	assert.Equal(Te, []Bond{{1, 1, [2]int{1, 2}}, {2, 1, [2]int{1, 3}}}, D.Bonds)
	assert.Equal(Te, []Angle{{1, 1, [3]int{2, 1, 3}}}, D.Angles)
	//the first x line wins
	assert.Equal(Te, 10.0, D.Box()["x"])
}

func TestDataMissingAxis(Te *testing.T) {
	D, err := Parse("title\n\n0 4 xlo xhi\n1 3 zlo zhi\n")
	require.NoError(Te, err)
	assert.Equal(Te, map[string]float64{"x": 4, "z": 2}, D.Box())
	_, ok := D.Bounds["y"]
	assert.False(Te, ok)
	assert.Empty(Te, D.Atoms)
}

func TestDataVelocitiesTerminal(Te *testing.T) {
	text := "t\n\nAtoms # full\n\n1 1 1 0 0 0 0 0 0 0\n\nVelocities\n\n1 0 0 0\n\nAtoms # full\n\n2 1 1 0 0 0 0 0 0 0\n\nBonds\n\n1 1 1 2\n"
	D, err := Parse(text)
	require.NoError(Te, err)
	require.Len(Te, D.Atoms, 1)
	assert.Equal(Te, 1, D.Atoms[0].ID)
	assert.Empty(Te, D.Bonds)
}

func TestDataStrict(Te *testing.T) {
	text := "t\n\nAtoms # full\n\n1 1 1 0 0 0 0 0 0 0\n2 1 one 0 0 0 0 0 0 0\n"
	_, err := Parse(text, &lammps.Options{Name: "bad.data"})
	require.Error(Te, err)
	assert.True(Te, errors.Is(err, lammps.ErrDecode))
	var perr lammps.ParseError
	require.True(Te, errors.As(err, &perr))
	assert.Equal(Te, 6, perr.Line())
	assert.Equal(Te, "bad.data", perr.FileName())
	assert.True(Te, perr.Critical())
	assert.Contains(Te, err.Error(), "data file bad.data line 6")

	//too few fields is also a decode failure.
	_, err = Parse("t\n\nBonds\n\n1 1 2\n")
	assert.True(Te, errors.Is(err, lammps.ErrDecode))
}

func TestDataLenient(Te *testing.T) {
	var logbuf bytes.Buffer
	text := "t\n\nAtoms # full\n\n1 1 1 0 0 0 0 0 0 0\n2 1 one 0 0 0 0 0 0 0\n3 1 1 0 0 0 0 0 0 0\n"
	D, err := Parse(text, &lammps.Options{Mode: lammps.Lenient, Logger: log.New(&logbuf, "", 0)})
	require.NoError(Te, err)
	require.Len(Te, D.Atoms, 2)
	assert.Equal(Te, 3, D.Atoms[1].ID)
	assert.Contains(Te, logbuf.String(), "line 6")
}

func TestDataWrite(Te *testing.T) {
	var buf bytes.Buffer
	require.NoError(Te, Write(&buf, dimer()))
	g := goldie.New(Te)
	g.Assert(Te, "dimer", buf.Bytes())

	D, err := Parse(buf.String())
	require.NoError(Te, err)
	assert.Equal(Te, dimer(), D)
}

func TestDataRoundTrip(Te *testing.T) {
	orig, err := File("testdata/water_nov.data")
	require.NoError(Te, err)
	for _, name := range []string{"water.data", "water.data.gz", "water.data.zst"} {
		Te.Run(name, func(Te *testing.T) {
			path := filepath.Join(Te.TempDir(), name)
			w, err := lammps.Create(path)
			require.NoError(Te, err)
			require.NoError(Te, Write(w, orig))
			require.NoError(Te, w.Close())
			D, err := File(path)
			require.NoError(Te, err)
			assert.Equal(Te, orig, D)
		})
	}
}

/*
 * msd_test.go, part of golammps
 *
 * Copyright 2025 Raul Mera Adasme <rmera_changeforat_chem-dot-helsinki-dot-fi>
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
 */

package msd

import (
	"bytes"
	"errors"
	"log"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lammps "github.com/rmera/golammps"
)

func quiet(buf *bytes.Buffer) *lammps.Options {
	return &lammps.Options{Logger: log.New(buf, "", 0)}
}

func TestMSDDetect(Te *testing.T) {
	assert.Equal(Te, MultiComponent, Detect("0 5"))
	assert.Equal(Te, Simple, Detect("0 1.25"))
	assert.Equal(Te, Simple, Detect("0 5 3"))
	assert.Equal(Te, Simple, Detect("0"))
}

func TestMSDMulti(Te *testing.T) {
	S, err := Parse("0 2\n1 0.0\n4 0.0\n10 2\n1 0.5\n4 1.2\n")
	require.NoError(Te, err)
	assert.Equal(Te, MultiComponent, S.Format)
	assert.Equal(Te, []int{0, 10}, S.Timesteps)
	assert.Equal(Te, []string{"x", "y", "z", "total"}, S.Names())
	M := S.Map()
	assert.Equal(Te, []float64{0, 0.5}, M["x"])
	assert.Equal(Te, []float64{0, 0}, M["y"])
	assert.Equal(Te, []float64{0, 0}, M["z"])
	assert.Equal(Te, []float64{0, 1.2}, M["total"])
	for _, v := range M {
		assert.Len(Te, v, S.Len())
	}
	assert.Equal(Te, []Sample{{0, [4]float64{}}, {10, [4]float64{0.5, 0, 0, 1.2}}}, S.Samples())
}

func TestMSDFile(Te *testing.T) {
	S, err := File("testdata/msd_lj.dat")
	require.NoError(Te, err)
	assert.Equal(Te, MultiComponent, S.Format)
	assert.Equal(Te, []int{0, 1000, 2000}, S.Timesteps)
	tot, ok := S.Component("total")
	require.True(Te, ok)
	assert.Equal(Te, []float64{0, 0.335, 0.676}, tot)

	S, err = File("testdata/msd_total.dat")
	require.NoError(Te, err)
	assert.Equal(Te, Simple, S.Format)
	assert.Equal(Te, []string{"total"}, S.Names())
	assert.Equal(Te, []int{0, 500, 1000, 1500}, S.Timesteps)
	_, ok = S.Component("x")
	assert.False(Te, ok)
}

func TestMSDSelect(Te *testing.T) {
	var logbuf bytes.Buffer
	S, err := File("testdata/msd_total.dat")
	require.NoError(Te, err)
	R := S.Select([]string{"z"}, quiet(&logbuf))
	assert.Equal(Te, []string{"total"}, R.Names())
	assert.NotEmpty(Te, R.Map())
	assert.Contains(Te, logbuf.String(), "none of the requested components")

	S, err = File("testdata/msd_lj.dat")
	require.NoError(Te, err)
	logbuf.Reset()
	R = S.Select([]string{"x", "bogus", "total", "x"}, quiet(&logbuf))
	assert.Equal(Te, []string{"x", "total"}, R.Names())
	assert.Equal(Te, S.Timesteps, R.Timesteps)
	assert.Contains(Te, logbuf.String(), `"bogus"`)
	_, ok := R.Component("y")
	assert.False(Te, ok)
	assert.Equal(Te, S, S.Select(nil))
}

func TestMSDLenient(Te *testing.T) {
	var logbuf bytes.Buffer
	text := "# header\n0 2\n1 0.1\n4 oops\nstep 2\n10 3\n1 0.5\n9 3.0\n4 1.2\n"
	S, err := Parse(text, quiet(&logbuf))
	require.NoError(Te, err)
	assert.Equal(Te, []int{0, 10}, S.Timesteps)
	tot, _ := S.Component("total")
	assert.Equal(Te, []float64{0, 1.2}, tot)
	x, _ := S.Component("x")
	assert.Equal(Te, []float64{0.1, 0.5}, x)
	assert.Contains(Te, logbuf.String(), "line 4")
	assert.Contains(Te, logbuf.String(), "line 5")
	assert.Contains(Te, logbuf.String(), "unknown component id 9")

	logbuf.Reset()
	S, err = Parse("0 0.0\n10 bad\n20 0.3\n", quiet(&logbuf))
	require.NoError(Te, err)
	assert.Equal(Te, []int{0, 20}, S.Timesteps)
	assert.Contains(Te, logbuf.String(), "line 2")
}

func TestMSDStrict(Te *testing.T) {
	_, err := Parse("0 2\n1 0.1\n4 oops\n", &lammps.Options{Mode: lammps.Strict, Name: "msd.dat"})
	require.Error(Te, err)
	assert.True(Te, errors.Is(err, lammps.ErrDecode))
	assert.Contains(Te, err.Error(), "msd file msd.dat line 3")
}

func TestMSDTruncated(Te *testing.T) {
	_, err := Parse("0 2\n1 0.1\n4 0.2\n10 4\n1 0.3\n")
	require.Error(Te, err)
	assert.True(Te, errors.Is(err, lammps.ErrStructure))
}

func TestMSDEmpty(Te *testing.T) {
	S, err := Parse("# nothing here\n\n")
	require.NoError(Te, err)
	assert.Equal(Te, Unknown, S.Format)
	assert.Zero(Te, S.Len())
	assert.Empty(Te, S.Names())
}

func TestMSDRoundTrip(Te *testing.T) {
	for _, name := range []string{"testdata/msd_lj.dat", "testdata/msd_total.dat"} {
		orig, err := File(name)
		require.NoError(Te, err)
		var buf bytes.Buffer
		require.NoError(Te, Write(&buf, orig))
		S, err := Parse(buf.String())
		require.NoError(Te, err)
		assert.Equal(Te, orig, S, name)

		path := filepath.Join(Te.TempDir(), filepath.Base(name)+".zst")
		w, err := lammps.Create(path)
		require.NoError(Te, err)
		require.NoError(Te, Write(w, orig))
		require.NoError(Te, w.Close())
		S, err = File(path)
		require.NoError(Te, err)
		assert.Equal(Te, orig, S, name)
	}
}

func TestMSDCSV(Te *testing.T) {
	S, err := Parse("0 2\n1 0.0\n4 0.0\n10 2\n1 0.5\n4 1.2\n")
	require.NoError(Te, err)
	var buf bytes.Buffer
	require.NoError(Te, WriteCSV(&buf, S.Select([]string{"x", "total"})))
	assert.Equal(Te, "timestep,x,total\n0,0,0\n10,0.5,1.2\n", buf.String())
}

func TestMSDNegativeRows(Te *testing.T) {
	var logbuf bytes.Buffer
	S, err := Parse("0 1\n4 0.1\n10 -2\n20 1\n4 0.3\n", quiet(&logbuf))
	require.NoError(Te, err)
	assert.Equal(Te, []int{0, 10, 20}, S.Timesteps)
	tot, _ := S.Component("total")
	assert.Equal(Te, []float64{0.1, 0, 0.3}, tot)
	assert.Contains(Te, logbuf.String(), "line 3: negative number of rows -2")
}

func TestMSDWriteSelected(Te *testing.T) {
	S, err := File("testdata/msd_lj.dat")
	require.NoError(Te, err)
	var buf bytes.Buffer
	require.NoError(Te, Write(&buf, S.Select([]string{"x", "total"})))
	R, err := Parse(buf.String())
	require.NoError(Te, err)
	//all four components come back; the ones left out are 0
	assert.Equal(Te, []string{"x", "y", "z", "total"}, R.Names())
	x, _ := R.Component("x")
	assert.Equal(Te, []float64{0, 0.112, 0.231}, x)
	y, _ := R.Component("y")
	assert.Equal(Te, []float64{0, 0, 0}, y)
}

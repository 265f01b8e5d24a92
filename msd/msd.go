/*
 * msd.go, part of golammps
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

// Package msd reads time series such as the mean-square displacement written by
// LAMMPS fix ave/time. Two layouts are understood: one "timestep value" line per
// timestep, or a "timestep nrows" header followed by nrows "component value" lines,
// where the components 1 to 4 are x, y, z and the total.
package msd

import (
	"fmt"
	"strconv"
	"strings"

	lammps "github.com/rmera/golammps"
)

const format = "msd"

// Format is the layout of a time series file.
type Format int

const (
	Unknown        Format = iota //no data lines
	Simple                       //timestep value
	MultiComponent               //timestep nrows, then nrows lines of component value
)

func (f Format) String() string {
	switch f {
	case Simple:
		return "simple"
	case MultiComponent:
		return "multi-component"
	default:
		return "unknown"
	}
}

// MarshalText writes the format as its name.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText reads a format written by MarshalText.
func (f *Format) UnmarshalText(text []byte) error {
	switch string(text) {
	case "simple":
		*f = Simple
	case "multi-component":
		*f = MultiComponent
	case "unknown", "":
		*f = Unknown
	default:
		return fmt.Errorf("unknown time series format %q", text)
	}
	return nil
}

// Indexes of the components in Sample.Values.
const (
	X = iota
	Y
	Z
	Total
)

// Components are the names of the components, in order. Component id i in a
// multi-component file is Components[i-1].
var Components = [4]string{"x", "y", "z", "total"}

// ComponentIndex returns the index of the component name, or -1.
func ComponentIndex(name string) int {
	for i, v := range Components {
		if v == name {
			return i
		}
	}
	return -1
}

// Sample holds all components at one timestep. Components not present in the
// series are 0.
type Sample struct {
	Timestep int
	Values   [4]float64
}

// Series is a parsed time series. Every present component has one value per timestep.
type Series struct {
	Format    Format
	Timesteps []int
	values    [4][]float64
	present   [4]bool
}

// Len returns the number of timesteps.
func (S *Series) Len() int { return len(S.Timesteps) }

// Names returns the names of the components present, in the order x, y, z, total.
func (S *Series) Names() []string {
	ret := make([]string, 0, 4)
	for i, v := range Components {
		if S.present[i] {
			ret = append(ret, v)
		}
	}
	return ret
}

// Component returns the values of the component name. false means the component is not present.
func (S *Series) Component(name string) ([]float64, bool) {
	i := ComponentIndex(name)
	if i < 0 || !S.present[i] {
		return nil, false
	}
	return S.values[i], true
}

// Map returns the present components, by name.
func (S *Series) Map() map[string][]float64 {
	ret := make(map[string][]float64, 4)
	for i, v := range Components {
		if S.present[i] {
			ret[v] = S.values[i]
		}
	}
	return ret
}

// Samples returns the series as one Sample per timestep.
func (S *Series) Samples() []Sample {
	ret := make([]Sample, len(S.Timesteps))
	for j, t := range S.Timesteps {
		ret[j].Timestep = t
		for i := range Components {
			if S.present[i] {
				ret[j].Values[i] = S.values[i][j]
			}
		}
	}
	return ret
}

// Select returns a series with only the components in names. It shares its data with S.
// Names that are unknown or not present are dropped with a warning. If none of the names
// is available, or no names are given, S itself is returned, with a warning in the first case.
func (S *Series) Select(names []string, opt ...*lammps.Options) *Series {
	if len(names) == 0 {
		return S
	}
	O := lammps.Resolve(lammps.Lenient, opt...)
	var want [4]bool
	n := 0
	for _, name := range names {
		i := ComponentIndex(name)
		if i < 0 || !S.present[i] {
			O.Logf("component %q not available, ignored", name)
			continue
		}
		if !want[i] {
			want[i] = true
			n++
		}
	}
	if n == 0 {
		O.Logf("none of the requested components (%s) is available, all of them (%s) are returned", strings.Join(names, " "), strings.Join(S.Names(), " "))
		return S
	}
	return &Series{Format: S.Format, Timesteps: S.Timesteps, values: S.values, present: want}
}

// add appends a timestep. Only the present components of v are used.
func (S *Series) add(t int, v [4]float64) {
	S.Timesteps = append(S.Timesteps, t)
	for i := range Components {
		if S.present[i] {
			S.values[i] = append(S.values[i], v[i])
		}
	}
}

// New returns an empty series in the format f. A Simple series has only the total;
// a MultiComponent one has all four components.
func New(f Format) *Series {
	S := &Series{Format: f}
	switch f {
	case Simple:
		S.present[Total] = true
	case MultiComponent:
		S.present = [4]bool{true, true, true, true}
	}
	return S
}

// Add appends a sample to the series.
func (S *Series) Add(s Sample) {
	S.add(s.Timestep, s.Values)
}

// Detect returns the format implied by the first data line of a file: MultiComponent if
// the line has exactly two fields and the second is an integer, Simple otherwise.
func Detect(line string) Format {
	f := strings.Fields(line)
	if len(f) == 2 {
		if _, err := strconv.Atoi(f[1]); err == nil {
			return MultiComponent
		}
	}
	return Simple
}

// File reads the time series file name. Files ending in .gz or .zst are decompressed.
func File(name string, opt ...*lammps.Options) (*Series, error) {
	text, err := lammps.ReadFile(name)
	if err != nil {
		return nil, err
	}
	S, err := Parse(text, lammps.Named(name, opt...))
	return S, lammps.ErrDecorate(err, "File")
}

// Parse reads a time series. The format is detected from the first line that is not
// blank or a comment, and is not checked again. In a multi-component file, a block that
// declares more lines than there are left is always an error, and a negative number
// of lines is read as 0.
// By default (Lenient mode) a line that can't be decoded is logged and skipped: a bad header
// is ignored and a bad component line leaves that component at 0. In Strict mode they
// abort the reading.
func Parse(text string, opt ...*lammps.Options) (*Series, error) {
	O := lammps.Resolve(lammps.Lenient, opt...)
	L := lammps.NewLines(text, format, O.Name)
	f := Unknown
	for s, ok := L.Peek(); ok; s, ok = L.Peek() {
		if !lammps.Ignorable(s) {
			f = Detect(s)
			break
		}
		L.Next()
	}
	S := New(f)
	var err error
	switch f {
	case Simple:
		err = S.readSimple(L, O)
	case MultiComponent:
		err = S.readMulti(L, O)
	}
	if err != nil {
		return nil, lammps.ErrDecorate(err, "Parse")
	}
	return S, nil
}

func (S *Series) readSimple(L *lammps.Lines, O *lammps.Options) error {
	for s, ok := L.Next(); ok; s, ok = L.Next() {
		if lammps.Ignorable(s) {
			continue
		}
		t, v, err := pair(s)
		if err != nil {
			if err := O.Fail(L.Errorf(lammps.ErrDecode, L.Line(), "%s", err)); err != nil {
				return err
			}
			continue
		}
		var vals [4]float64
		vals[Total] = v
		S.add(t, vals)
	}
	return nil
}

func (S *Series) readMulti(L *lammps.Lines, O *lammps.Options) error {
	for s, ok := L.Next(); ok; s, ok = L.Next() {
		if lammps.Ignorable(s) {
			continue
		}
		f := strings.Fields(s)
		if len(f) != 2 {
			continue
		}
		h, err := lammps.ParseInts(f...)
		if err != nil {
			if err := O.Fail(L.Errorf(lammps.ErrDecode, L.Line(), "header: %s", err)); err != nil {
				return err
			}
			continue
		}
		header := L.Line()
		if h[1] < 0 {
			O.Logf("line %d: negative number of rows %d read as 0", header, h[1])
			h[1] = 0
		}
		rows, err := L.Block(h[1])
		if err != nil {
			return lammps.ErrDecorate(err, fmt.Sprintf("readMulti: timestep %d", h[0]))
		}
		var vals [4]float64
		for i, r := range rows {
			line := header + i + 1
			id, v, err := pair(r)
			if err != nil {
				if err := O.Fail(L.Errorf(lammps.ErrDecode, line, "component line: %s", err)); err != nil {
					return err
				}
				continue
			}
			if id < 1 || id > len(Components) {
				O.Logf("line %d: unknown component id %d ignored", line, id)
				continue
			}
			vals[id-1] = v
		}
		S.add(h[0], vals)
	}
	return nil
}

// pair decodes a line of the form "integer float". Extra fields are ignored.
func pair(s string) (int, float64, error) {
	f := strings.Fields(s)
	if len(f) < 2 {
		return 0, 0, fmt.Errorf("2 fields needed, %d found", len(f))
	}
	n, err := strconv.Atoi(f[0])
	if err != nil {
		return 0, 0, err
	}
	v, err := strconv.ParseFloat(f[1], 64)
	return n, v, err
}

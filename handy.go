/*
 * handy.go, part of golammps.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package lammps

import (
	"strconv"
	"strings"
)

// Blank returns true if the line has only whitespace.
func Blank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// Comment returns true if the line, without leading whitespace, starts with '#'.
func Comment(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}

// Ignorable returns true for blank and comment lines, which are never data.
func Ignorable(line string) bool {
	return Blank(line) || Comment(line)
}

// ParseInts decodes each string as a base 10 integer.
func ParseInts(s ...string) ([]int, error) {
	r := make([]int, 0, len(s))
	for _, v := range s {
		i, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		r = append(r, i)
	}
	return r, nil
}

// ParseFloats decodes each string as a float64.
func ParseFloats(s ...string) ([]float64, error) {
	r := make([]float64, 0, len(s))
	for _, v := range s {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
		r = append(r, f)
	}
	return r, nil
}

// FormatFloat writes f with the shortest representation that reads back to the same value.
// All writers use it, so what they write is parsed back unchanged.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// JoinFloats formats each float with FormatFloat and joins them with single spaces.
func JoinFloats(f ...float64) string {
	s := make([]string, len(f))
	for i, v := range f {
		s[i] = FormatFloat(v)
	}
	return strings.Join(s, " ")
}

// JoinInts formats each int and joins them with single spaces.
func JoinInts(n ...int) string {
	s := make([]string, len(n))
	for i, v := range n {
		s[i] = strconv.Itoa(v)
	}
	return strings.Join(s, " ")
}

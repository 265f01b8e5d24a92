/*
 * box.go, part of golammps.
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
 */

package lammps

// Axes are the names of the three box axes, in the order used everywhere in golammps.
var Axes = [3]string{"x", "y", "z"}

// Bound is the lower and upper extent of the simulation box along one axis.
type Bound struct {
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`
}

// Length returns the extent of the box along the axis, Hi-Lo.
func (B Bound) Length() float64 {
	return B.Hi - B.Lo
}

// AxisIndex returns the position of the axis name in Axes, or -1.
func AxisIndex(axis string) int {
	for i, v := range Axes {
		if v == axis {
			return i
		}
	}
	return -1
}

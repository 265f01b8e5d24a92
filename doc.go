/*
 * doc.go, part of golammps.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*
Package lammps is the root package of golammps. It contains what the format
readers share: a forward-only cursor over the lines of a file, the error type
all packages return, the strict/lenient error policy, box bounds and the
functions that read and write (possibly compressed) files.

	**golammps Capabilities**

    Reads/writes LAMMPS data files written with atom style full
	(package data): atoms, bonds, angles and box extents.

    Reads/writes LAMMPS text dump trajectories (package traj/dump). Each frame
	keeps its box, its declared columns and the per-atom table, which can be
	obtained as a gonum matrix.

    Reads/writes the blocks produced by fix ave/correlate (package corr).

    Reads/writes mean square displacement time series, either with a single
	value per timestep or with x, y, z and total components (package msd). The
	layout is detected from the first data line.

    Exports all of the above to JSON (package lmpjson).

Files ending in .gz or .zst are decompressed (and compressed, when writing)
transparently.

Every reader buffers the whole file and returns fully built records. Nothing is
shared between calls, so different files can be read concurrently.
*/
package lammps

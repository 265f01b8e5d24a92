/*
 * write.go, part of golammps
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

package corr

import (
	"bufio"
	"fmt"
	"io"

	lammps "github.com/rmera/golammps"
)

// Write writes the series with the same layout fix ave/correlate uses, so Parse
// reads it back into an equal Series.
func Write(w io.Writer, S *Series) error {
	b := bufio.NewWriter(w)
	fmt.Fprintln(b, "# Time-correlated data")
	fmt.Fprintln(b, "# Timestep Number-of-time-windows")
	fmt.Fprintln(b, "# Index TimeDelta Ncount value")
	for _, B := range S.blocks {
		fmt.Fprintf(b, "%d %d\n", B.Timestep, B.Declared)
		for _, r := range B.Rows {
			fmt.Fprintln(b, lammps.JoinFloats(r[:]...))
		}
	}
	return b.Flush()
}

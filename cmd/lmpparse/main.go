/*
 * main.go, part of golammps.
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

// lmpparse reads LAMMPS data, dump, correlation and time series files and
// writes their content as JSON (or CSV, or the original format) for the
// programs that plot or analyze them.
package main

import (
	"log"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("lmpparse: ")
	if err := NewRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}

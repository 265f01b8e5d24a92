/*
 * config_test.go, part of golammps.
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

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lammps "github.com/rmera/golammps"
)

func TestLoadConfig(t *testing.T) {
	c, err := LoadConfig("testdata/msd.yaml")
	require.NoError(t, err)
	assert.Equal(t, "../../msd/testdata/msd_lj.dat", c.Input)
	assert.Equal(t, KMSD, c.Kind)
	assert.Equal(t, []string{"x", "total"}, c.Components)
	assert.Equal(t, FCSV, c.Format)
	assert.Equal(t, lammps.Strict, c.Mode)
	assert.Empty(t, c.Output)

	_, err = LoadConfig("testdata/bad.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only available for time series")

	_, err = LoadConfig("testdata/nothere.yaml")
	assert.Error(t, err)
}

func TestConfigCheck(t *testing.T) {
	tests := []struct {
		name string
		c    Config
		ok   bool
	}{
		{"minimal", Config{Input: "a", Kind: KDump}, true},
		{"no input", Config{Kind: KDump}, false},
		{"bad kind", Config{Input: "a", Kind: "xyz"}, false},
		{"bad format", Config{Input: "a", Kind: KData, Format: "xml"}, false},
		{"native", Config{Input: "a", Kind: KCorr, Format: FNative}, true},
		{"components outside msd", Config{Input: "a", Kind: KData, Components: []string{"x"}}, false},
		{"unknown component", Config{Input: "a", Kind: KMSD, Components: []string{"w"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Check()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
	c := Config{Input: "a", Kind: KData}
	require.NoError(t, c.Check())
	assert.Equal(t, FJSON, c.Format)
}

/*
 * lines_test.go, part of golammps.
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

package lammps

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLines(Te *testing.T) {
	assert.Nil(Te, SplitLines(""))
	assert.Equal(Te, []string{"a", "b"}, SplitLines("a\nb\n"))
	assert.Equal(Te, []string{"a", "", "b"}, SplitLines("a\r\n\r\nb"))
}

func TestLinesCursor(Te *testing.T) {
	L := NewLines("one\ntwo\nthree\nfour\n", "test", "f.txt")
	assert.Equal(Te, 4, L.Len())
	assert.Equal(Te, 0, L.Line())
	s, ok := L.Peek()
	require.True(Te, ok)
	assert.Equal(Te, "one", s)
	assert.Equal(Te, 0, L.Pos())
	s, _ = L.Next()
	assert.Equal(Te, "one", s)
	assert.Equal(Te, 1, L.Line())

	b, err := L.Block(2)
	require.NoError(Te, err)
	assert.Equal(Te, []string{"two", "three"}, b)
	assert.Equal(Te, 3, L.Pos())

	_, err = L.Block(2)
	require.Error(Te, err)
	assert.True(Te, errors.Is(err, ErrStructure))
	assert.Equal(Te, 3, L.Pos(), "a failed Block doesn't move the cursor")

	_, err = L.Expect("five")
	require.Error(Te, err)
	var perr ParseError
	require.True(Te, errors.As(err, &perr))
	assert.Equal(Te, 4, perr.Line())
	assert.Equal(Te, "f.txt", perr.FileName())
	assert.Equal(Te, "test", perr.Format())
	assert.True(Te, L.Done())
	_, ok = L.Next()
	assert.False(Te, ok)

	_, err = L.Expect("one")
	assert.True(Te, errors.Is(err, ErrStructure))

	R := L.Rewound()
	s, err = R.Expect("on")
	require.NoError(Te, err)
	assert.Equal(Te, "one", s)
	assert.True(Te, L.Done())
}

func TestHandy(Te *testing.T) {
	assert.True(Te, Blank(" \t"))
	assert.True(Te, Comment("   # a comment"))
	assert.False(Te, Comment("1 # trailing"))
	assert.True(Te, Ignorable(""))
	n, err := ParseInts("1", "-2")
	require.NoError(Te, err)
	assert.Equal(Te, []int{1, -2}, n)
	_, err = ParseInts("1.5")
	assert.Error(Te, err)
	f, err := ParseFloats("1e-3", "2")
	require.NoError(Te, err)
	assert.Equal(Te, []float64{0.001, 2}, f)
	assert.Equal(Te, "0.1 12 -2e-05", JoinFloats(0.1, 12, -0.00002))
	assert.Equal(Te, "1 2 3", JoinInts(1, 2, 3))
	assert.Equal(Te, 2, AxisIndex("z"))
	assert.Equal(Te, -1, AxisIndex("w"))
	assert.Equal(Te, 3.0, Bound{Lo: -1, Hi: 2}.Length())
}

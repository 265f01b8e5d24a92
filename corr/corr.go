/*
 * corr.go, part of golammps
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

// Package corr reads the time-correlated output of LAMMPS fix ave/correlate
// and similar fixes: blocks of 4-column rows, each headed by a line with the
// timestep and the number of rows (time windows) in the block.
package corr

import (
	"strconv"
	"strings"

	lammps "github.com/rmera/golammps"
	"gonum.org/v1/gonum/mat"
)

const format = "corr"

// Row is one line of a block: index, time delta, number of samples and
// the value of the correlation function.
type Row [4]float64

// Block holds the rows written at one timestep.
type Block struct {
	Timestep int
	Declared int //number of rows declared in the header. Not checked against len(Rows)
	Rows     []Row
}

// Dense returns the rows of the block as a len(Rows)x4 matrix, or nil if the block has no rows.
func (B *Block) Dense() *mat.Dense {
	if len(B.Rows) == 0 {
		return nil
	}
	D := mat.NewDense(len(B.Rows), 4, nil)
	for i, r := range B.Rows {
		D.SetRow(i, r[:])
	}
	return D
}

// Values returns the last column of the block, i.e. the correlation function.
func (B *Block) Values() []float64 {
	ret := make([]float64, len(B.Rows))
	for i, r := range B.Rows {
		ret[i] = r[3]
	}
	return ret
}

// Series is an ordered collection of blocks, indexed by timestep.
type Series struct {
	blocks []*Block
	index  map[int]int
}

// NewSeries returns an empty series.
func NewSeries() *Series {
	return &Series{blocks: make([]*Block, 0, 1), index: make(map[int]int)}
}

// Add puts B in the series. If a block with the same timestep is already
// there, B replaces it, keeping its position.
func (S *Series) Add(B *Block) {
	if i, ok := S.index[B.Timestep]; ok {
		S.blocks[i] = B
		return
	}
	S.index[B.Timestep] = len(S.blocks)
	S.blocks = append(S.blocks, B)
}

// Len returns the number of blocks.
func (S *Series) Len() int { return len(S.blocks) }

// Timesteps returns the timesteps of the blocks in the order in which they were added.
func (S *Series) Timesteps() []int {
	ret := make([]int, len(S.blocks))
	for i, v := range S.blocks {
		ret[i] = v.Timestep
	}
	return ret
}

// Block returns the block for timestep ts. false means there is none.
func (S *Series) Block(ts int) (*Block, bool) {
	i, ok := S.index[ts]
	if !ok {
		return nil, false
	}
	return S.blocks[i], true
}

// Blocks returns all the blocks, in order.
func (S *Series) Blocks() []*Block {
	ret := make([]*Block, len(S.blocks))
	copy(ret, S.blocks)
	return ret
}

// File reads the correlation file name. Files ending in .gz or .zst are decompressed.
func File(name string, opt ...*lammps.Options) (*Series, error) {
	text, err := lammps.ReadFile(name)
	if err != nil {
		return nil, err
	}
	S, err := Parse(text, lammps.Named(name, opt...))
	return S, lammps.ErrDecorate(err, "File")
}

// Parse reads the blocks in text. A line with 2 fields starts a new block, a line with 4
// fields is a row of the current one. Blank and comment lines, and lines with any other
// number of fields, are ignored. A header not followed by any row produces no block, and
// rows before the first header are dropped. Only the timestep of a header needs to
// be an integer: the declared number of rows is kept if it can be read, and never checked.
// A value that can't be decoded is an error in Strict mode (the default). In Lenient mode
// a bad row is logged and skipped, and a bad header is logged and the rows under it dropped.
func Parse(text string, opt ...*lammps.Options) (*Series, error) {
	O := lammps.Resolve(lammps.Strict, opt...)
	L := lammps.NewLines(text, format, O.Name)
	S := NewSeries()
	var cur *Block
	discard := false //we are under a header that could not be read
	orphans := 0
	flush := func() {
		if cur != nil && len(cur.Rows) > 0 {
			S.Add(cur)
		}
		cur = nil
	}
	for s, ok := L.Next(); ok; s, ok = L.Next() {
		if lammps.Ignorable(s) {
			continue
		}
		f := strings.Fields(s)
		switch len(f) {
		case 2:
			flush()
			ts, err := strconv.Atoi(f[0])
			if err != nil {
				if err := O.Fail(L.Errorf(lammps.ErrDecode, L.Line(), "header: %s", err)); err != nil {
					return nil, lammps.ErrDecorate(err, "Parse")
				}
				discard = true
				continue
			}
			discard = false
			//the declared count is informative only; 0 if it can't be read.
			declared, _ := strconv.Atoi(f[1])
			cur = &Block{Timestep: ts, Declared: declared}
		case 4:
			if discard {
				continue
			}
			r, err := rowFromFields(f)
			if err != nil {
				if err := O.Fail(L.Errorf(lammps.ErrDecode, L.Line(), "row: %s", err)); err != nil {
					return nil, lammps.ErrDecorate(err, "Parse")
				}
				continue
			}
			if cur == nil {
				orphans++
				continue
			}
			cur.Rows = append(cur.Rows, r)
		}
	}
	flush()
	if orphans > 0 {
		O.Logf("%d rows found before the first timestep header were dropped", orphans)
	}
	return S, nil
}

func rowFromFields(f []string) (Row, error) {
	var r Row
	for i, v := range f {
		var err error
		if r[i], err = strconv.ParseFloat(v, 64); err != nil {
			return r, err
		}
	}
	return r, nil
}

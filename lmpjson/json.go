/*
 * json.go, part of golammps.
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

package lmpjson

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"strings"

	lammps "github.com/rmera/golammps"
	"github.com/rmera/golammps/corr"
	"github.com/rmera/golammps/data"
	"github.com/rmera/golammps/msd"
	"github.com/rmera/golammps/traj/dump"
)

// An easily JSON-serializable error type,
type Error struct {
	deco          []string
	IsError       bool //If this is false (no error) all the other fields will be at their zero-values.
	InInput       bool //Was it in reading the input file?
	InProcess     bool
	InPostProcess bool   //was it in preparing the output?
	File          string `json:",omitempty"`
	Line          int    `json:",omitempty"`
	Function      string //which go function gave the error
	Message       string //the error itself
}

// Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

// Serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

// Takes an error and some additional info to create a json-marshal-ble error.
// If err comes from one of the readers, the file name and line are kept.
func NewError(where, function string, err error) *Error {
	jerr := new(Error)
	jerr.IsError = true
	switch where {
	case "input":
		jerr.InInput = true
	case "postprocess":
		jerr.InPostProcess = true
	default:
		jerr.InProcess = true
	}
	var perr lammps.ParseError
	if errors.As(err, &perr) {
		jerr.File = perr.FileName()
		jerr.Line = perr.Line()
	}
	jerr.Function = function
	jerr.Message = err.Error()
	return jerr
}

// Topology is the JSON document for a data file.
type Topology struct {
	Title  string                  `json:"title"`
	Atoms  []data.Atom             `json:"atoms"`
	Bonds  []data.Bond             `json:"bonds"`
	Angles []data.Angle            `json:"angles"`
	Box    map[string]lammps.Bound `json:"box"`
}

// NewTopology returns the document for D.
func NewTopology(D *data.Data) *Topology {
	return &Topology{Title: D.Title, Atoms: D.Atoms, Bonds: D.Bonds, Angles: D.Angles, Box: D.Bounds}
}

// Send Marshals the topology and writes it to out.
func (J *Topology) Send(out io.Writer) *Error {
	return send(out, J, "Topology.Send")
}

// Frame is the JSON document for one frame of a dump file. Values maps each
// column name to the values of all atoms.
type Frame struct {
	Timestep int                  `json:"timestep"`
	NAtoms   int                  `json:"natoms"`
	Box      [3]lammps.Bound      `json:"box"`
	Tilt     *[3]float64          `json:"tilt,omitempty"` //only for triclinic boxes
	Columns  []string             `json:"columns"`
	Values   map[string][]float64 `json:"values"`
}

// NewFrame returns the document for S.
func NewFrame(S *dump.Snapshot) *Frame {
	F := &Frame{Timestep: S.Timestep, NAtoms: S.NAtoms, Box: S.Box, Columns: S.Columns}
	if S.Triclinic {
		t := S.Tilt
		F.Tilt = &t
	}
	F.Values = make(map[string][]float64, len(S.Columns))
	for _, c := range S.Columns {
		F.Values[c], _ = S.Column(c)
	}
	return F
}

// SendFrames writes the frames to out, one JSON object per line.
func SendFrames(snaps []*dump.Snapshot, out io.Writer) *Error {
	const funcname = "SendFrames"
	enc := json.NewEncoder(out)
	for _, S := range snaps {
		if err := enc.Encode(NewFrame(S)); err != nil {
			return NewError("postprocess", funcname, err)
		}
	}
	return nil
}

// DecodeFrames reads frames written by SendFrames until the end of stream.
func DecodeFrames(stream *bufio.Reader) ([]*Frame, *Error) {
	const funcname = "DecodeFrames"
	dec := json.NewDecoder(stream)
	ret := make([]*Frame, 0, 1)
	for {
		F := new(Frame)
		err := dec.Decode(F)
		if err == io.EOF {
			break
		}
		if err != nil {
			return ret, NewError("input", funcname, err)
		}
		ret = append(ret, F)
	}
	return ret, nil
}

// Block is the JSON document for one block of a correlation file.
type Block struct {
	Timestep int          `json:"timestep"`
	Declared int          `json:"declared"`
	Rows     [][4]float64 `json:"rows"`
}

// Correlation is the JSON document for a correlation file.
type Correlation struct {
	Blocks []Block `json:"blocks"`
}

// NewCorrelation returns the document for S, with the blocks in order.
func NewCorrelation(S *corr.Series) *Correlation {
	J := &Correlation{Blocks: make([]Block, 0, S.Len())}
	for _, B := range S.Blocks() {
		rows := make([][4]float64, len(B.Rows))
		for i, r := range B.Rows {
			rows[i] = r
		}
		J.Blocks = append(J.Blocks, Block{Timestep: B.Timestep, Declared: B.Declared, Rows: rows})
	}
	return J
}

// Send Marshals the correlation series and writes it to out.
func (J *Correlation) Send(out io.Writer) *Error {
	return send(out, J, "Correlation.Send")
}

// TimeSeries is the JSON document for a time series: the timesteps plus one
// sequence of the same length per component.
type TimeSeries struct {
	Format     msd.Format           `json:"format"`
	Timesteps  []int                `json:"timesteps"`
	Components map[string][]float64 `json:"components"`
}

// NewTimeSeries returns the document for S.
func NewTimeSeries(S *msd.Series) *TimeSeries {
	return &TimeSeries{Format: S.Format, Timesteps: S.Timesteps, Components: S.Map()}
}

// Send Marshals the time series and writes it to out.
func (J *TimeSeries) Send(out io.Writer) *Error {
	return send(out, J, "TimeSeries.Send")
}

func send(out io.Writer, v interface{}, funcname string) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(v); err != nil {
		return NewError("postprocess", funcname, err)
	}
	return nil
}

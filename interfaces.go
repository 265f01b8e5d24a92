/*
 * interfaces.go, part of golammps.
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
	"fmt"
)

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Adds the name of the caller (or "Caller: extra info") to the error and returns the whole list. An empty string only returns the current list.
}

// ParseError is the interface for errors produced while reading one of the supported files.
type ParseError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
	Line() int
}

// The two kinds of problem a reader can find. Use errors.Is on any error returned by
// the readers to tell them apart.
var (
	//A marker or row is not where the file says it should be, or a declared
	//number of rows is not matched by the available lines. Always fatal.
	ErrStructure = errors.New("structural violation")

	//A token could not be decoded as the number it should be, or a line has too few tokens.
	//Fatal in Strict mode, logged and skipped in Lenient mode.
	ErrDecode = errors.New("decode failure")
)

// FormatError is the error type returned by all readers in golammps. It fullfills Error and ParseError.
type FormatError struct {
	kind     error
	message  string
	format   string //the file format, i.e. "data" or "dump"
	filename string //the input file that has problems, or empty string if none.
	line     int    //1-based, 0 if not known
	deco     []string
	critical bool
}

// NewError returns a critical *FormatError of the given kind (ErrStructure or ErrDecode).
func NewError(kind error, format, filename string, line int, message string, caller ...string) *FormatError {
	E := &FormatError{kind: kind, message: message, format: format, filename: filename, line: line, critical: true}
	if len(caller) > 0 {
		E.deco = append(E.deco, caller...)
	}
	return E
}

func (E *FormatError) Error() string {
	name := E.filename
	if name == "" {
		name = "<input>"
	}
	if E.line > 0 {
		return fmt.Sprintf("%s file %s line %d: %s", E.format, name, E.line, E.message)
	}
	return fmt.Sprintf("%s file %s: %s", E.format, name, E.message)
}

// Decorate adds new information to the error
func (E *FormatError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

// Unwrap returns the kind of the error, ErrStructure or ErrDecode.
func (E *FormatError) Unwrap() error { return E.kind }

// FileName returns the file to which the error was associated.
func (E *FormatError) FileName() string { return E.filename }

// Format returns the format of the file.
func (E *FormatError) Format() string { return E.format }

// Line returns the 1-based line where the problem was found, or 0.
func (E *FormatError) Line() int { return E.line }

// Critical returns true if the error aborted the reading.
func (E *FormatError) Critical() bool { return E.critical }

// Message returns the error message without the file information.
func (E *FormatError) Message() string { return E.message }

// ErrDecorate decorates err with the caller's name if err implements Error.
// Other errors are returned unchanged.
func ErrDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var e Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}

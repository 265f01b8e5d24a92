/*
 * options.go, part of golammps.
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

import (
	"fmt"
	"log"
	"strings"
)

// Mode selects what a reader does when a token can't be decoded.
type Mode int

const (
	Default Mode = iota //whatever the reader uses by default
	Strict              //abort on the first malformed row
	Lenient             //log the malformed row, skip it and go on
)

func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Lenient:
		return "lenient"
	default:
		return "default"
	}
}

// ParseMode returns the Mode named by s ("strict", "lenient", "default" or "").
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return Default, nil
	case "strict":
		return Strict, nil
	case "lenient":
		return Lenient, nil
	}
	return Default, fmt.Errorf("unknown error mode %q", s)
}

// UnmarshalText allows a Mode to be read from configuration files.
func (m *Mode) UnmarshalText(text []byte) error {
	var err error
	*m, err = ParseMode(string(text))
	return err
}

// MarshalText writes a Mode as its name.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Options are the optional parameters for all readers. The zero value is valid.
type Options struct {
	Mode   Mode
	Logger *log.Logger //where Lenient mode reports skipped lines. log.Default() if nil.
	Name   string      //name of the input used in errors and log messages. File functions set it to the file name.
}

// Resolve returns a copy of the first non-nil element of opt (or of the zero Options)
// with the Default mode replaced by def and a nil Logger replaced by log.Default().
func Resolve(def Mode, opt ...*Options) *Options {
	O := new(Options)
	if len(opt) > 0 && opt[0] != nil {
		*O = *opt[0]
	}
	if O.Mode == Default {
		O.Mode = def
	}
	if O.Logger == nil {
		O.Logger = log.Default()
	}
	return O
}

// Strict returns true if the options are in Strict mode.
func (O *Options) Strict() bool {
	return O.Mode == Strict
}

// Logf writes a message through the options' logger, prefixed by the input name.
func (O *Options) Logf(format string, v ...interface{}) {
	O.Logger.Printf("%s: %s", O.name(), fmt.Sprintf(format, v...))
}

// Fail applies the error policy to a decode failure. In Strict mode it returns err.
// In Lenient mode it logs err, marks it as non critical and returns nil.
// Structural errors are always returned.
func (O *Options) Fail(err *FormatError) error {
	if err.kind == ErrStructure || O.Strict() {
		err.critical = true
		return err
	}
	err.critical = false
	O.Logger.Printf("skipped: %s", err.Error())
	return nil
}

func (O *Options) name() string {
	if O.Name == "" {
		return "<input>"
	}
	return O.Name
}

// Named returns a copy of the first non-nil element of opt (or of the zero Options)
// with Name set to name, unless a name was already given.
func Named(name string, opt ...*Options) *Options {
	O := new(Options)
	if len(opt) > 0 && opt[0] != nil {
		*O = *opt[0]
	}
	if O.Name == "" {
		O.Name = name
	}
	return O
}

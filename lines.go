/*
 * lines.go, part of golammps.
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
	"strings"
)

// Lines is a forward-only cursor over the lines of a file. All the index
// arithmetic of the readers goes through it.
type Lines struct {
	lines  []string
	pos    int //index of the next line to be returned
	format string
	name   string
}

// NewLines splits text into lines and returns a cursor on the first one.
// format and name are only used in errors.
func NewLines(text, format, name string) *Lines {
	return &Lines{lines: SplitLines(text), format: format, name: name}
}

// SplitLines splits text on '\n', removing a trailing '\r' from each line.
// A final newline does not produce an empty last line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	l := strings.Split(text, "\n")
	for i, v := range l {
		l[i] = strings.TrimSuffix(v, "\r")
	}
	return l
}

// Len returns the total number of lines.
func (L *Lines) Len() int { return len(L.lines) }

// Pos returns the 0-based index of the next line to be read.
func (L *Lines) Pos() int { return L.pos }

// Line returns the 1-based number of the last line returned, 0 if none has been.
func (L *Lines) Line() int { return L.pos }

// Done returns true if all lines have been consumed.
func (L *Lines) Done() bool { return L.pos >= len(L.lines) }

// Peek returns the next line without consuming it. false means there are no lines left.
func (L *Lines) Peek() (string, bool) {
	if L.Done() {
		return "", false
	}
	return L.lines[L.pos], true
}

// Next returns the next line and advances the cursor.
func (L *Lines) Next() (string, bool) {
	s, ok := L.Peek()
	if ok {
		L.pos++
	}
	return s, ok
}

// Block returns the next n lines and advances the cursor past them. If fewer
// than n lines are left, it returns an ErrStructure error and doesn't move.
func (L *Lines) Block(n int) ([]string, error) {
	if n < 0 {
		return nil, L.Errorf(ErrStructure, L.pos, "negative block length %d", n)
	}
	if left := len(L.lines) - L.pos; left < n {
		return nil, L.Errorf(ErrStructure, len(L.lines), "%d lines declared but only %d left", n, left)
	}
	b := L.lines[L.pos : L.pos+n]
	L.pos += n
	return b, nil
}

// Expect consumes the next line, which must start with prefix. Otherwise it returns
// an ErrStructure error.
func (L *Lines) Expect(prefix string) (string, error) {
	s, ok := L.Next()
	if !ok {
		return "", L.Errorf(ErrStructure, L.pos, "expected %q, found the end of the file", prefix)
	}
	if !strings.HasPrefix(s, prefix) {
		return "", L.Errorf(ErrStructure, L.pos, "expected %q, found %q", prefix, s)
	}
	return s, nil
}

// Errorf returns a critical *FormatError of kind kind for the given 1-based line.
func (L *Lines) Errorf(kind error, line int, format string, v ...interface{}) *FormatError {
	return NewError(kind, L.format, L.name, line, fmt.Sprintf(format, v...))
}

// Rewound returns a new cursor on the first of the same lines. The receiver is not affected.
func (L *Lines) Rewound() *Lines {
	return &Lines{lines: L.lines, format: L.format, name: L.name}
}

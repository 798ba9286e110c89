/*
 * lines.go, part of goffea.
 *
 * Copyright 2026 The goffea developers
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

package ffeatraj

import (
	"bufio"
	"io"
	"strings"
)

// lineReader reads a file forward, one line at a time, and can
// give back the last line read so it is returned again by the next call.
type lineReader struct {
	r        *bufio.Reader
	filename string
	lineno   int
	back     bool
	last     string
}

func newLineReader(r io.Reader, filename string) *lineReader {
	return &lineReader{r: bufio.NewReader(r), filename: filename}
}

// next returns the next line, without the line terminator. At the end
// of the file it returns io.EOF. Any other error is returned as an IOError.
func (L *lineReader) next() (string, error) {
	if L.back {
		L.back = false
		L.lineno++
		return L.last, nil
	}
	s, err := L.r.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return "", &IOError{err, L.filename, []string{"next"}}
		}
		if s == "" {
			return "", io.EOF
		}
		//a last line without a terminator is still a line.
	}
	L.lineno++
	L.last = strings.TrimRight(s, "\r\n")
	return L.last, nil
}

// unread makes the next call to next return the last line again.
// It can only rewind a single line.
func (L *lineReader) unread() {
	if L.back {
		panic("ffeatraj: unread called twice")
	}
	L.back = true
	L.lineno--
}

// formatError builds a FormatError for the current line.
func (L *lineReader) formatError(expected, got, caller string) *FormatError {
	return &FormatError{expected: expected, got: got, filename: L.filename, line: L.lineno, deco: []string{caller}}
}

// truncated builds a FormatError for an unexpected end of file.
func (L *lineReader) truncated(expected, caller string) *FormatError {
	return &FormatError{expected: expected, filename: L.filename, line: L.lineno, truncated: true, deco: []string{caller}}
}

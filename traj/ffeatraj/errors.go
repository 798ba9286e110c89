/*
 * errors.go, part of goffea.
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
	"fmt"

	ffea "github.com/ffea/goffea"
)

const formatName = "FFEA trajectory"

// FormatError is returned when a line of the file does not have the expected
// content or shape. It implements ffea.TrajError.
type FormatError struct {
	expected  string
	got       string
	filename  string
	line      int
	truncated bool
	deco      []string
}

func (err *FormatError) Error() string {
	if err.truncated {
		return fmt.Sprintf("%s file %s: unexpected end of file after line %d, expected %s", formatName, err.filename, err.line, err.expected)
	}
	return fmt.Sprintf("%s file %s, line %d: expected %s, got '%s'", formatName, err.filename, err.line, err.expected, err.got)
}

// Decorate adds new information to the error
func (err *FormatError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Expected returns a description of the token or line shape that was expected.
func (err *FormatError) Expected() string { return err.expected }

// Line returns the number of the offending line, starting from 1.
func (err *FormatError) Line() int { return err.line }

// Truncated is true if the error was caused by an unexpected end of file.
func (err *FormatError) Truncated() bool { return err.truncated }

// FileName returns the file to which the failing trajectory was associated
func (err *FormatError) FileName() string { return err.filename }

// Format returns the format of the file associated to the error
func (err *FormatError) Format() string { return formatName }

// Critical returns true, a FormatError always aborts the read.
func (err *FormatError) Critical() bool { return true }

// IOError is returned when a file can't be opened, read or written.
// It implements ffea.TrajError, and wraps the underlying error.
type IOError struct {
	err      error
	filename string
	deco     []string
}

func (err *IOError) Error() string {
	return fmt.Sprintf("%s file %s: %s", formatName, err.filename, err.err.Error())
}

func (err *IOError) Unwrap() error { return err.err }

// Decorate adds new information to the error
func (err *IOError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file to which the failing trajectory was associated
func (err *IOError) FileName() string { return err.filename }

// Format returns the format of the file associated to the error
func (err *IOError) Format() string { return formatName }

// Critical always returns true.
func (err *IOError) Critical() bool { return true }

// errDecorate is a helper function that decorates err with the caller's name
// if it implements ffea.Error, and returns it.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(ffea.Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}

/*
 * interfaces.go, part of goffea.
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

package ffea

// LinearNoder is anything that can tell which nodes of a given blob
// conformation are linear (corner) nodes, as opposed to the secondary
// (midside) nodes of a second order element. A topology is the usual
// implementation.
type LinearNoder interface {
	//LinearNodes returns the indexes of the linear nodes of conformation
	//c of blob b, in ascending order.
	LinearNodes(b, c int) ([]int, error)
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	//Decorate adds the name of a function in the calling stack (plus, optionally, some info, as "FunctionName: info")
	//and returns the resulting slice. An empty string just returns the current slice.
	Decorate(string) []string
}

// TrajError is the interface for errors in trajectories
type TrajError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

/*
 * doc.go, part of goffea.
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

/*
Package ffea holds the in-memory model of an FFEA (Fluctuating Finite Element
Analysis) trajectory, and a few read-only analyses over it.

A Trajectory contains one BlobTraj per blob and conformation. Each BlobTraj has
a fixed number of nodes and a sequence of frames, one per frame of the whole
trajectory. Only one conformation of a blob is active in a given frame; the
frames of the other conformations of that blob are nil at that index.

Reading and writing the trajectory file format is done by the
github.com/ffea/goffea/traj/ffeatraj package. Node positions are stored in
v3.Matrix objects (github.com/ffea/goffea/v3).
*/
package ffea

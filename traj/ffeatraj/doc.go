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

// Package ffeatraj reads and writes FFEA trajectory files.
//
// Files ending in .zst/.zstd or .gz are transparently (de)compressed.
//
// ******************** Format ***********************************************
//
// An FFEA trajectory is a text file with whitespace-separated fields.
// The header is:
//
//	FFEA_trajectory_file
//
//	Initialisation:
//	Number of Blobs 2
//	Number of Conformations 2 1
//	Blob 0:	Conformation 0 Nodes 10 Conformation 1 Nodes 12
//	Blob 1:	Conformation 0 Nodes 5
//
//	*
//
// Then, for each frame and for each blob in order, a tag line
// "Blob 0, Conformation 0, step 100", a line with STATIC or DYNAMIC and, if
// DYNAMIC, one line per node of the active conformation. Only the first three
// numbers of each node line (the position) are read. The frame ends with:
//
//	*
//	Conformation changes:
//	Blob 0: Conformation 0 -> Conformation 1
//	Blob 1: Conformation 0 -> Conformation 0
//	*
//
// The last number of each change line is the active conformation of the blob in
// the next frame.
//
// OLD trajectories have, instead of the "Number of Conformations" line and the
// per-blob lines, a single line "Blob 0 Nodes 10 Blob 1 Nodes 5". Every blob
// has one conformation, the tag conformation is not checked, a frame ends with
// a single '*' and there is no conformation change block. The file may end
// right after the positions of the last frame, without the '*'. Some old files
// have the number of nodes in a line before the positions; that line is skipped.
//
// The writers in this package always produce NEW files.
package ffeatraj

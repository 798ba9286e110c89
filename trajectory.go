/*
 * trajectory.go, part of goffea.
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

import (
	"fmt"
	"strings"
)

// Format is the layout of a trajectory file. OLD files have a single
// conformation per blob and no conformation change blocks.
type Format int

const (
	FormatNew Format = iota
	FormatOld
)

func (F Format) String() string {
	if F == FormatOld {
		return "OLD"
	}
	return "NEW"
}

// Trajectory is a whole FFEA trajectory. The zero value is an empty
// trajectory, which is what a failed read gives.
type Trajectory struct {
	format  Format
	nodes   [][]int
	blobs   [][]*BlobTraj
	tracks  []*track
	frames  int
	skipped int
}

// New returns an empty NEW-format trajectory where blob b, conformation c
// has nodes[b][c] nodes.
func New(nodes [][]int) (*Trajectory, error) {
	T, err := NewFormat(FormatNew, nodes)
	if err != nil {
		err = errDecorate(err, "New")
	}
	return T, err
}

// NewFormat is like New, but sets the file format of the trajectory.
// OLD trajectories must have exactly one conformation per blob.
func NewFormat(format Format, nodes [][]int) (*Trajectory, error) {
	if len(nodes) == 0 {
		return nil, &ModelError{"a trajectory needs at least one blob", []string{"NewFormat"}}
	}
	T := &Trajectory{format: format}
	T.nodes = make([][]int, len(nodes))
	T.blobs = make([][]*BlobTraj, len(nodes))
	T.tracks = make([]*track, len(nodes))
	for b, confs := range nodes {
		if len(confs) == 0 {
			return nil, &ModelError{fmt.Sprintf("blob %d has no conformations", b), []string{"NewFormat"}}
		}
		if format == FormatOld && len(confs) != 1 {
			return nil, &ModelError{fmt.Sprintf("blob %d has %d conformations, OLD trajectories allow one", b, len(confs)), []string{"NewFormat"}}
		}
		T.tracks[b] = new(track)
		T.nodes[b] = make([]int, len(confs))
		T.blobs[b] = make([]*BlobTraj, len(confs))
		for c, n := range confs {
			if n <= 0 {
				return nil, &ModelError{fmt.Sprintf("blob %d conformation %d has %d nodes", b, c, n), []string{"NewFormat"}}
			}
			T.nodes[b][c] = n
			T.blobs[b][c] = newBlobTraj(n, c, T.tracks[b])
		}
	}
	return T, nil
}

// Format returns the layout of the file the trajectory was read from.
func (T *Trajectory) Format() Format {
	return T.format
}

// NumBlobs returns the number of blobs in the trajectory.
func (T *Trajectory) NumBlobs() int {
	return len(T.blobs)
}

// NumConformations returns the number of conformations of blob b.
func (T *Trajectory) NumConformations(b int) int {
	return len(T.blobs[b])
}

// NumNodes returns the number of nodes of conformation c of blob b.
func (T *Trajectory) NumNodes(b, c int) int {
	return T.nodes[b][c]
}

// Blob returns the trajectory of conformation c of blob b. It panics
// if either index is out of range.
func (T *Trajectory) Blob(b, c int) *BlobTraj {
	return T.blobs[b][c]
}

// Len returns the number of frames stored in the trajectory.
func (T *Trajectory) Len() int {
	return T.frames
}

// Skipped returns the number of frames that were scanned but not stored.
func (T *Trajectory) Skipped() int {
	return T.skipped
}

// SkipFrame records that a frame was scanned but not stored.
func (T *Trajectory) SkipFrame() {
	T.skipped++
}

// AppendFrame adds one frame of the whole trajectory. active[b] is the
// conformation of blob b in this frame and frames[b] its positions,
// or nil if the blob was reported STATIC in this frame. A blob that is
// STATIC in the very first frame gets its motion state set to STATIC.
// Nothing is changed if an error is returned.
func (T *Trajectory) AppendFrame(active []int, frames []*Frame) error {
	nb := len(T.blobs)
	if len(active) != nb || len(frames) != nb {
		return &ModelError{fmt.Sprintf("%d blobs in the trajectory, %d conformations and %d frames given", nb, len(active), len(frames)), []string{"AppendFrame"}}
	}
	for b, c := range active {
		if c < 0 || c >= len(T.blobs[b]) {
			return &ModelError{fmt.Sprintf("blob %d has no conformation %d", b, c), []string{"AppendFrame"}}
		}
		if frames[b] != nil && frames[b].Len() != T.nodes[b][c] {
			return &ModelError{fmt.Sprintf("blob %d conformation %d has %d nodes, frame has %d", b, c, T.nodes[b][c], frames[b].Len()), []string{"AppendFrame"}}
		}
	}
	first := T.frames == 0 && T.skipped == 0
	for b, c := range active {
		if frames[b] == nil && first {
			T.blobs[b][c].motion = Static
		}
		T.tracks[b].slots = append(T.tracks[b].slots, slot{conf: c, frame: frames[b]})
	}
	T.frames++
	return nil
}

// Reset empties the trajectory.
func (T *Trajectory) Reset() {
	*T = Trajectory{}
}

//Errors

// ModelError is returned when the trajectory model is used with wrong
// indexes or shapes. It implements Error.
type ModelError struct {
	message string
	deco    []string
}

func (err *ModelError) Error() string {
	return fmt.Sprintf("ffea: %s (%s)", err.message, strings.Join(err.deco, " <- "))
}

// Decorate adds new information to the error.
func (err *ModelError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// errDecorate is a helper function that asserts that the error
// implements Error and decorates it with the caller's name before returning it.
// if used with an error that is not an Error, it returns it unchanged.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(Error); ok {
		e.Decorate(caller)
		return e
	}
	return err
}

/*
 * blob.go, part of goffea.
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

import "fmt"

// MotionState tells whether a blob moves during the simulation.
type MotionState int

const (
	Dynamic MotionState = iota
	Static
)

func (M MotionState) String() string {
	if M == Static {
		return "STATIC"
	}
	return "DYNAMIC"
}

// slot is one frame of a blob: which conformation was active, and its positions.
type slot struct {
	conf  int
	frame *Frame
}

// track holds the frames of all the conformations of one blob. Since each slot
// names a single conformation, only one conformation can have a frame at a
// given index.
type track struct {
	slots []slot
}

// BlobTraj is the trajectory of one conformation of one blob.
type BlobTraj struct {
	nnodes   int
	motion   MotionState
	conf     int
	tr       *track
	subblobs [][]int
}

func newBlobTraj(nnodes, conf int, tr *track) *BlobTraj {
	return &BlobTraj{nnodes: nnodes, conf: conf, tr: tr, motion: Dynamic}
}

// NumNodes returns the number of nodes of the blob conformation.
func (B *BlobTraj) NumNodes() int {
	return B.nnodes
}

// MotionState returns STATIC if the blob was reported static in the
// first frame of the trajectory, DYNAMIC otherwise.
func (B *BlobTraj) MotionState() MotionState {
	return B.motion
}

// Len returns the number of frame indexes stored for the blob, including
// those where this conformation was not active. It equals the Len of the
// Trajectory.
func (B *BlobTraj) Len() int {
	return len(B.tr.slots)
}

// Active returns true if this conformation was the active one of the blob
// at frame i, even if the blob was STATIC then.
func (B *BlobTraj) Active(i int) bool {
	return i >= 0 && i < len(B.tr.slots) && B.tr.slots[i].conf == B.conf
}

// Frame returns the ith frame of the conformation, or nil if the conformation
// was not active at that frame, the blob was STATIC at that frame, or i is
// out of range.
func (B *BlobTraj) Frame(i int) *Frame {
	if !B.Active(i) {
		return nil
	}
	return B.tr.slots[i].frame
}

// Frames returns all the frames of the conformation, with nil in the
// indexes where the conformation was not active or was STATIC.
func (B *BlobTraj) Frames() []*Frame {
	ret := make([]*Frame, len(B.tr.slots))
	for i := range ret {
		ret[i] = B.Frame(i)
	}
	return ret
}

// DefineSubblob adds a group of node indexes to the blob, and returns
// the index of the new subblob.
func (B *BlobTraj) DefineSubblob(indices []int) (int, error) {
	if len(indices) == 0 {
		return -1, &ModelError{"empty subblob", []string{"DefineSubblob"}}
	}
	for _, v := range indices {
		if v < 0 || v >= B.nnodes {
			return -1, &ModelError{fmt.Sprintf("node %d out of range for a blob with %d nodes", v, B.nnodes), []string{"DefineSubblob"}}
		}
	}
	sb := make([]int, len(indices))
	copy(sb, indices)
	B.subblobs = append(B.subblobs, sb)
	return len(B.subblobs) - 1, nil
}

// NumSubblobs returns how many subblobs have been defined.
func (B *BlobTraj) NumSubblobs() int {
	return len(B.subblobs)
}

// Subblob returns a copy of the node indexes of the ith subblob.
func (B *BlobTraj) Subblob(i int) []int {
	if i < 0 || i >= len(B.subblobs) {
		return nil
	}
	ret := make([]int, len(B.subblobs[i]))
	copy(ret, B.subblobs[i])
	return ret
}

/*
 * analysis.go, part of goffea.
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

	v3 "github.com/ffea/goffea/v3"
	"gonum.org/v1/gonum/floats"
)

// present returns the indexes of the frames where the conformation is active.
func (B *BlobTraj) present() []int {
	ret := make([]int, 0, len(B.tr.slots))
	for i, s := range B.tr.slots {
		if s.conf == B.conf && s.frame != nil {
			ret = append(ret, i)
		}
	}
	return ret
}

// CentroidTrajectory returns the geometric center of the nodes of the given
// subblob, or of the whole blob if subblob is -1, for every frame where this
// conformation is active. The second return value holds the frame index
// of each row of the matrix.
func (B *BlobTraj) CentroidTrajectory(subblob int) (*v3.Matrix, []int, error) {
	var nodes []int //nil means all of them
	n := B.nnodes
	if subblob >= 0 {
		if subblob >= len(B.subblobs) {
			return nil, nil, &ModelError{fmt.Sprintf("blob only contains %d subblobs", len(B.subblobs)), []string{"CentroidTrajectory"}}
		}
		nodes = B.subblobs[subblob]
		n = len(nodes)
	} else if subblob != -1 {
		return nil, nil, &ModelError{fmt.Sprintf("invalid subblob index %d", subblob), []string{"CentroidTrajectory"}}
	}
	index := B.present()
	if len(index) == 0 {
		return nil, nil, &ModelError{fmt.Sprintf("conformation has no frames (motion state %s)", B.motion), []string{"CentroidTrajectory"}}
	}
	centroid := v3.Zeros(len(index))
	for row, i := range index {
		c := centroid.VecView(row)
		c.SumVecs(B.tr.slots[i].frame.pos, nodes)
		floats.Scale(1/float64(n), c.RawRowView(0))
	}
	return centroid, index, nil
}

// NodeDistance returns, for every frame where this conformation is active,
// the vector going from node n1 to node n2, and its norm. The last return value
// holds the frame index of each row.
func (B *BlobTraj) NodeDistance(n1, n2 int) (*v3.Matrix, []float64, []int, error) {
	for _, v := range []int{n1, n2} {
		if v < 0 || v >= B.nnodes {
			return nil, nil, nil, &ModelError{fmt.Sprintf("node %d out of range for a blob with %d nodes", v, B.nnodes), []string{"NodeDistance"}}
		}
	}
	index := B.present()
	if len(index) == 0 {
		return nil, nil, nil, &ModelError{fmt.Sprintf("conformation has no frames (motion state %s)", B.motion), []string{"NodeDistance"}}
	}
	sep := v3.Zeros(len(index))
	dist := make([]float64, len(index))
	for row, i := range index {
		pos := B.tr.slots[i].frame.pos
		r := sep.RawRowView(row)
		floats.SubTo(r, pos.RawRowView(n2), pos.RawRowView(n1))
		dist[row] = floats.Norm(r, 2)
	}
	return sep, dist, index, nil
}

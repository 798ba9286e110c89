/*
 * frame.go, part of goffea.
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
	v3 "github.com/ffea/goffea/v3"
)

// Frame contains the node positions of one blob conformation at one
// simulation step. A Frame is not modified after creation.
type Frame struct {
	step int
	pos  *v3.Matrix
}

// NewFrame returns a Frame for the given step that takes ownership of pos.
// pos must not be modified by the caller afterwards.
func NewFrame(step int, pos *v3.Matrix) (*Frame, error) {
	if pos == nil {
		return nil, &ModelError{"nil positions given", []string{"NewFrame"}}
	}
	return &Frame{step: step, pos: pos}, nil
}

// Len returns the number of nodes in the frame.
func (F *Frame) Len() int {
	return F.pos.NVecs()
}

// Step returns the simulation step recorded for the frame.
func (F *Frame) Step() int {
	return F.step
}

// Pos returns the position of the ith node.
func (F *Frame) Pos(i int) [3]float64 {
	return F.pos.Vec(i)
}

// Coords returns a copy of the positions of all nodes.
func (F *Frame) Coords() *v3.Matrix {
	ret := v3.Zeros(F.pos.NVecs())
	ret.Copy(F.pos)
	return ret
}

// Subset returns a copy of the positions of the nodes with the given
// indexes, in the order given.
func (F *Frame) Subset(indexes []int) (*v3.Matrix, error) {
	if len(indexes) == 0 {
		return nil, &ModelError{"no nodes requested", []string{"Subset"}}
	}
	ret := v3.Zeros(len(indexes))
	if err := ret.SomeVecsSafe(F.pos, indexes); err != nil {
		return nil, errDecorate(err, "Subset")
	}
	return ret, nil
}

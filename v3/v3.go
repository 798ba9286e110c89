/*
 * v3.go, part of goffea.
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

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const cols int = 3

// Matrix is a set of vectors in 3D space, backed by a gonum Dense.
// Each row is the position of one node.
type Matrix struct {
	*mat.Dense
}

// Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

// NewMatrix generates and returns a Matrix with 3 columns from data.
// The slice is used as the backing storage, not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	l := len(data)
	rows := l / cols
	if l == 0 || l%cols != 0 {
		return nil, &Error{fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}, true}
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

// NVecs returns the number of vectors in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != cols {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// VecView returns a view of the ith vector of the matrix.
// Changes in the view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, cols).(*mat.Dense)
	return &Matrix{r}
}

// Vec copies the ith vector of F into an array.
func (F *Matrix) Vec(i int) [3]float64 {
	var ret [3]float64
	copy(ret[:], F.Dense.RawRowView(i))
	return ret
}

// SetVec sets the ith vector of F to the given coordinates.
func (F *Matrix) SetVec(i int, x, y, z float64) {
	row := F.Dense.RawRowView(i)
	row[0], row[1], row[2] = x, y, z
}

// SomeVecs puts in F the vectors of A with the indexes in clist,
// in the same order as clist. Panics on a dimension mismatch.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	ar, ac := A.Dims()
	fr, fc := F.Dims()
	if ac != fc || fr != len(clist) {
		panic(ErrShape)
	}
	for key, val := range clist {
		if val < 0 || val >= ar {
			panic(ErrIndexOutOfRange)
		}
		copy(F.Dense.RawRowView(key), A.Dense.RawRowView(val))
	}
}

// SomeVecsSafe is SomeVecs, returning an error instead of panicking.
func (F *Matrix) SomeVecsSafe(A *Matrix, clist []int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case PanicMsg:
				err = &Error{string(e), []string{"SomeVecsSafe"}, true}
			case mat.Error:
				err = &Error{fmt.Sprintf("goffea/v3: Error in a gonum function: %s", e), []string{"SomeVecsSafe"}, true}
			default:
				panic(r)
			}
		}
	}()
	F.SomeVecs(A, clist)
	return err
}

// SumVecs puts in the first vector of F the sum of the vectors of A with the
// indexes in clist. If clist is nil, all vectors of A are summed.
func (F *Matrix) SumVecs(A *Matrix, clist []int) {
	if F.NVecs() < 1 {
		panic(ErrNotEnoughElements)
	}
	sum := F.Dense.RawRowView(0)
	sum[0], sum[1], sum[2] = 0, 0, 0
	if clist == nil {
		for i := 0; i < A.NVecs(); i++ {
			floats.Add(sum, A.Dense.RawRowView(i))
		}
		return
	}
	n := A.NVecs()
	for _, v := range clist {
		if v < 0 || v >= n {
			panic(ErrIndexOutOfRange)
		}
		floats.Add(sum, A.Dense.RawRowView(v))
	}
}

//Errors

// Error is the v3 error type. It has the same methods as ffea.Error,
// but is declared here to avoid a circular import.
type Error struct {
	message  string
	deco     []string
	critical bool
}

// Error returns a string with an error message.
func (err *Error) Error() string {
	return err.message
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical return whether the error is critical or it can be ignored
func (err *Error) Critical() bool { return err.critical }

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix      = PanicMsg("goffea/v3: A Matrix should have 3 columns")
	ErrNotEnoughElements = PanicMsg("goffea/v3: not enough elements in Matrix")
	ErrShape             = PanicMsg("goffea/v3: Dimension mismatch")
	ErrIndexOutOfRange   = PanicMsg("goffea/v3: index out of range")
)

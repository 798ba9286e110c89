/*
 * write.go, part of goffea.
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
	"errors"
	"fmt"
	"io"
	"log"

	ffea "github.com/ffea/goffea"
	v3 "github.com/ffea/goffea/v3"
)

// The writers always produce NEW trajectories, and only write the first
// conformation of each blob. Every blob is reported to stay in conformation 0.

// Write writes the whole trajectory T to w. logger, if not nil, gets the
// progress as a percentage of the frames written.
func Write(w io.Writer, T *ffea.Trajectory, logger *log.Logger) error {
	W, err := newWriter(w, T, nil, logger)
	if err != nil {
		return errDecorate(err, "Write")
	}
	return errDecorate(W.write(0, T.Len()), "Write")
}

// WriteLinear is like Write, but only writes the linear nodes of each blob,
// as given by top. The node counts in the header are those of the linear nodes.
func WriteLinear(w io.Writer, T *ffea.Trajectory, top ffea.LinearNoder, logger *log.Logger) error {
	if top == nil {
		return &IOError{errors.New("no linear nodes given"), "", []string{"WriteLinear"}}
	}
	W, err := newWriter(w, T, top, logger)
	if err != nil {
		return errDecorate(err, "WriteLinear")
	}
	return errDecorate(W.write(0, T.Len()), "WriteLinear")
}

// WriteFrame writes a trajectory with only the given frame of T.
func WriteFrame(w io.Writer, T *ffea.Trajectory, frame int) error {
	if frame < 0 || frame >= T.Len() {
		return &IOError{fmt.Errorf("frame %d requested, the trajectory has %d frames", frame, T.Len()), "", []string{"WriteFrame"}}
	}
	W, err := newWriter(w, T, nil, nil)
	if err != nil {
		return errDecorate(err, "WriteFrame")
	}
	return errDecorate(W.write(frame, frame+1), "WriteFrame")
}

// WriteFile writes the whole trajectory to filename, compressing it
// if its extension asks for it.
func WriteFile(filename string, T *ffea.Trajectory, logger *log.Logger) error {
	f, err := Create(filename)
	if err != nil {
		return errDecorate(err, "WriteFile")
	}
	err = Write(f, T, logger)
	if err2 := f.Close(); err == nil && err2 != nil {
		err = &IOError{err2, filename, []string{"WriteFile"}}
	}
	return err
}

type writer struct {
	w      *bufio.Writer
	T      *ffea.Trajectory
	nodes  [][]int  //node counts for the header
	linear [][]int //nil, or the nodes of conformation 0 of each blob that are written, ascending
	log    *log.Logger
}

func newWriter(w io.Writer, T *ffea.Trajectory, top ffea.LinearNoder, logger *log.Logger) (*writer, error) {
	if T == nil || T.NumBlobs() == 0 {
		return nil, &IOError{errors.New("can't write an empty trajectory"), "", []string{"newWriter"}}
	}
	W := &writer{w: bufio.NewWriter(w), T: T, log: logger}
	W.nodes = make([][]int, T.NumBlobs())
	if top != nil {
		W.linear = make([][]int, T.NumBlobs())
	}
	for b := range W.nodes {
		W.nodes[b] = make([]int, T.NumConformations(b))
		for c := range W.nodes[b] {
			if top == nil {
				W.nodes[b][c] = T.NumNodes(b, c)
				continue
			}
			lin, err := top.LinearNodes(b, c)
			if err != nil {
				return nil, errDecorate(err, "newWriter")
			}
			keep := make([]bool, T.NumNodes(b, c))
			for _, n := range lin {
				if n < 0 || n >= len(keep) {
					return nil, &IOError{fmt.Errorf("linear node %d out of range for blob %d conformation %d, with %d nodes", n, b, c, len(keep)), "", []string{"newWriter"}}
				}
				if !keep[n] {
					keep[n] = true
					W.nodes[b][c]++
				}
			}
			if W.nodes[b][c] == 0 {
				return nil, &IOError{fmt.Errorf("no linear nodes for blob %d conformation %d", b, c), "", []string{"newWriter"}}
			}
			if c == 0 {
				for n, k := range keep {
					if k {
						W.linear[b] = append(W.linear[b], n)
					}
				}
			}
		}
	}
	return W, nil
}

func (W *writer) logf(format string, v ...interface{}) {
	if W.log != nil {
		W.log.Printf(format, v...)
	}
}

func (W *writer) header() {
	fmt.Fprintf(W.w, "%s\n\n%s\nNumber of Blobs %d\n", fileTag, initTag, len(W.nodes))
	fmt.Fprint(W.w, "Number of Conformations ")
	for _, confs := range W.nodes {
		fmt.Fprintf(W.w, "%d ", len(confs))
	}
	fmt.Fprint(W.w, "\n")
	for b, confs := range W.nodes {
		fmt.Fprintf(W.w, "Blob %d:\t", b)
		for c, n := range confs {
			fmt.Fprintf(W.w, "Conformation %d Nodes %d ", c, n)
		}
		fmt.Fprint(W.w, "\n")
	}
	fmt.Fprintf(W.w, "\n%s\n", separator)
}

// frame writes frame i of the first conformation of every blob. Blobs
// that were STATIC at that frame are written as STATIC, with step 0.
func (W *writer) frame(i int) error {
	for b := range W.nodes {
		bt := W.T.Blob(b, 0)
		if !bt.Active(i) {
			return &IOError{fmt.Errorf("blob %d is not in conformation 0 in frame %d", b, i), "", []string{"frame"}}
		}
		f := bt.Frame(i)
		if f == nil {
			fmt.Fprintf(W.w, "Blob %d, Conformation %d, step %d\n%s\n", b, 0, 0, staticTag)
			continue
		}
		if W.linear == nil {
			W.positions(b, f.Step(), f.Coords())
			continue
		}
		pos, err := f.Subset(W.linear[b])
		if err != nil {
			return errDecorate(err, "frame")
		}
		W.positions(b, f.Step(), pos)
	}
	fmt.Fprintf(W.w, "%s\nConformation Changes:\n", separator)
	for b := range W.nodes {
		fmt.Fprintf(W.w, "Blob %d: Conformation %d -> Conformation %d\n", b, 0, 0)
	}
	fmt.Fprintf(W.w, "%s\n", separator)
	return nil
}

// positions writes the tag of a DYNAMIC blob and one line per node, with
// the velocity and force columns set to zero.
func (W *writer) positions(b, step int, pos *v3.Matrix) {
	fmt.Fprintf(W.w, "Blob %d, Conformation %d, step %d\n%s\n", b, 0, step, dynamicTag)
	for j := 0; j < pos.NVecs(); j++ {
		p := pos.Vec(j)
		fmt.Fprintf(W.w, "%8.6e %8.6e %8.6e %8.6e %8.6e %8.6e %8.6e %8.6e %8.6e %8.6e\n", p[0], p[1], p[2], 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0)
	}
}

// write writes the header and the frames in [from,to). What was written
// before an error is still flushed.
func (W *writer) write(from, to int) error {
	W.header()
	total := to - from
	lastpc := -1
	var err error
	for i := from; i < to; i++ {
		if pc := 10 * (100 * (i - from) / total / 10); total > 1 && pc != lastpc {
			W.logf("\t%d%% of frames written", pc)
			lastpc = pc
		}
		if err = W.frame(i); err != nil {
			err = errDecorate(err, "write")
			break
		}
	}
	if ferr := W.w.Flush(); ferr != nil && err == nil {
		err = &IOError{ferr, "", []string{"write"}}
	}
	if err == nil && total > 1 {
		W.logf("\t100%% of frames written")
	}
	return err
}

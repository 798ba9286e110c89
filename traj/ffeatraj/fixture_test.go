/*
 * fixture_test.go, part of goffea.
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
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fixture builds trajectory files. Node j of blob b, conformation c at frame f
// is at (f, 10b+c, j), and the step of frame f is 10f.
type fixture struct {
	old           bool
	nodes         [][]int //per blob, per conformation
	active        [][]int //per frame, per blob
	static        []bool  //per blob, STATIC in every frame
	nodeCountLine bool    //OLD only
	noFinalStar   bool    //OLD only
}

// singleConf returns a schedule of n frames where every blob stays in conformation 0.
func singleConf(frames, blobs int) [][]int {
	ret := make([][]int, frames)
	for i := range ret {
		ret[i] = make([]int, blobs)
	}
	return ret
}

func (F fixture) String() string {
	var b strings.Builder
	b.WriteString("FFEA_trajectory_file\n\nInitialisation:\n")
	fmt.Fprintf(&b, "Number of Blobs %d\n", len(F.nodes))
	if F.old {
		for i, n := range F.nodes {
			fmt.Fprintf(&b, "Blob %d Nodes %d ", i, n[0])
		}
		b.WriteString("\n")
	} else {
		b.WriteString("Number of Conformations ")
		for _, n := range F.nodes {
			fmt.Fprintf(&b, "%d ", len(n))
		}
		b.WriteString("\n")
		for i, n := range F.nodes {
			fmt.Fprintf(&b, "Blob %d:\t", i)
			for c, m := range n {
				fmt.Fprintf(&b, "Conformation %d Nodes %d ", c, m)
			}
			b.WriteString("\n")
		}
	}
	b.WriteString("\n*\n")
	for f, act := range F.active {
		for bl, c := range act {
			if F.old {
				fmt.Fprintf(&b, "Blob %d, step %d\n", bl, 10*f)
			} else {
				fmt.Fprintf(&b, "Blob %d, Conformation %d, step %d\n", bl, c, 10*f)
			}
			if F.static != nil && F.static[bl] {
				b.WriteString("STATIC\n")
				continue
			}
			b.WriteString("DYNAMIC\n")
			if F.nodeCountLine {
				fmt.Fprintf(&b, "%d\n", F.nodes[bl][c])
			}
			for j := 0; j < F.nodes[bl][c]; j++ {
				fmt.Fprintf(&b, "%d %d %d 0 0 0\n", f, 10*bl+c, j)
			}
		}
		last := f == len(F.active)-1
		if F.old {
			if !(last && F.noFinalStar) {
				b.WriteString("*\n")
			}
			continue
		}
		b.WriteString("*\nConformation changes:\n")
		for bl, c := range act {
			next := c
			if !last {
				next = F.active[f+1][bl]
			}
			fmt.Fprintf(&b, "Blob %d: Conformation %d -> Conformation %d\n", bl, c, next)
		}
		b.WriteString("*\n")
	}
	return b.String()
}

// writeTemp writes content to a file in a temporary directory and returns its name.
func writeTemp(Te *testing.T, name, content string) string {
	Te.Helper()
	path := filepath.Join(Te.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		Te.Fatal(err)
	}
	return path
}

// The 2 blob, 3 and 5 node OLD trajectory with 3 frames.
var oldTwoBlobs = fixture{old: true, nodes: [][]int{{3}, {5}}, active: singleConf(3, 2)}

// A NEW trajectory where blob 0 switches between two conformations.
var newMultiConf = fixture{
	nodes:  [][]int{{2, 3}, {4}},
	active: [][]int{{0, 0}, {1, 0}, {1, 0}, {0, 0}, {1, 0}, {0, 0}},
}

/*
 * write_test.go, part of goffea.
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
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	ffea "github.com/ffea/goffea"
)

// sameFrames checks that every frame of conformation 0 of A and B matches,
// within the precision of the writer.
func sameFrames(Te *testing.T, A, B *ffea.Trajectory) {
	Te.Helper()
	if A.Len() != B.Len() || A.NumBlobs() != B.NumBlobs() {
		Te.Fatalf("%d frames and %d blobs, want %d and %d", B.Len(), B.NumBlobs(), A.Len(), A.NumBlobs())
	}
	for b := 0; b < A.NumBlobs(); b++ {
		for i := 0; i < A.Len(); i++ {
			fa, fb := A.Blob(b, 0).Frame(i), B.Blob(b, 0).Frame(i)
			if fa == nil || fb == nil {
				if fa != fb {
					Te.Fatalf("blob %d frame %d: STATIC in only one of the trajectories", b, i)
				}
				continue
			}
			if fa.Len() != fb.Len() || fa.Step() != fb.Step() {
				Te.Fatalf("blob %d frame %d: %d nodes, step %d; want %d, %d", b, i, fb.Len(), fb.Step(), fa.Len(), fa.Step())
			}
			for j := 0; j < fa.Len(); j++ {
				pa, pb := fa.Pos(j), fb.Pos(j)
				for k := range pa {
					if math.Abs(pa[k]-pb[k]) > 1e-6*math.Max(1, math.Abs(pa[k])) {
						Te.Errorf("blob %d frame %d node %d: %v, want %v", b, i, j, pb, pa)
					}
				}
			}
		}
	}
}

func TestWriteRoundTrip(Te *testing.T) {
	T, err := readString(Te, oldTwoBlobs.String(), nil)
	if err != nil {
		Te.Fatal(err)
	}
	//non-integer coordinates, to check the precision of the output.
	f := T.Blob(0, 0).Frame(1)
	m := f.Coords()
	m.SetVec(1, math.Pi, -1.0/3, 12345.678)
	nf, err := ffea.NewFrame(f.Step(), m)
	if err != nil {
		Te.Fatal(err)
	}
	T2, err := ffea.New([][]int{{3}, {5}})
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < T.Len(); i++ {
		frames := []*ffea.Frame{T.Blob(0, 0).Frame(i), T.Blob(1, 0).Frame(i)}
		if i == 1 {
			frames[0] = nf
		}
		if err := T2.AppendFrame([]int{0, 0}, frames); err != nil {
			Te.Fatal(err)
		}
	}
	var buf bytes.Buffer
	if err := Write(&buf, T2, nil); err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Number of Conformations 1 1") {
		Te.Errorf("the output should be a NEW trajectory:\n%s", buf.String())
	}
	R, err := Read(&buf, "written", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if R.Format() != ffea.FormatNew {
		Te.Errorf("read back as %s", R.Format())
	}
	sameFrames(Te, T2, R)
}

func TestWriteStatic(Te *testing.T) {
	F := fixture{nodes: [][]int{{3}, {2}}, active: singleConf(2, 2), static: []bool{true, false}}
	T, err := readString(Te, F.String(), nil)
	if err != nil {
		Te.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Write(&buf, T, nil); err != nil {
		Te.Fatal(err)
	}
	R, err := Read(&buf, "written", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if R.Len() != 2 || R.Blob(0, 0).MotionState() != ffea.Static || R.Blob(1, 0).Frame(1) == nil {
		Te.Errorf("static blob not written back: %d frames, %s", R.Len(), R.Blob(0, 0).MotionState())
	}
}

func TestWriteStaticFrameInDynamicBlob(Te *testing.T) {
	F := fixture{nodes: [][]int{{2}}, active: singleConf(3, 1)}
	T, err := readString(Te, F.String(), nil)
	if err != nil {
		Te.Fatal(err)
	}
	T2, err := ffea.New([][]int{{2}})
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < T.Len(); i++ {
		f := T.Blob(0, 0).Frame(i)
		if i == 1 {
			f = nil
		}
		if err := T2.AppendFrame([]int{0}, []*ffea.Frame{f}); err != nil {
			Te.Fatal(err)
		}
	}
	var buf bytes.Buffer
	if err := Write(&buf, T2, nil); err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(buf.String(), "step 0\nSTATIC\n") {
		Te.Errorf("frame 1 should be written as STATIC:\n%s", buf.String())
	}
	R, err := Read(&buf, "written", nil)
	if err != nil {
		Te.Fatal(err)
	}
	sameFrames(Te, T2, R)
}

func TestWriteLinear(Te *testing.T) {
	T, err := readString(Te, oldTwoBlobs.String(), nil)
	if err != nil {
		Te.Fatal(err)
	}
	lin := ffea.NodeSets{{0, 0}: {0, 2}, {1, 0}: {1, 3, 4}}
	var buf bytes.Buffer
	if err := WriteLinear(&buf, T, lin, nil); err != nil {
		Te.Fatal(err)
	}
	R, err := Read(&buf, "linear", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if R.NumNodes(0, 0) != 2 || R.NumNodes(1, 0) != 3 || R.Len() != 3 {
		Te.Fatalf("wrong shape: %d and %d nodes, %d frames", R.NumNodes(0, 0), R.NumNodes(1, 0), R.Len())
	}
	if p := R.Blob(0, 0).Frame(2).Pos(1); p != [3]float64{2, 0, 2} {
		Te.Errorf("second linear node of blob 0 at %v", p)
	}
	if p := R.Blob(1, 0).Frame(1).Pos(2); p != [3]float64{1, 10, 4} {
		Te.Errorf("third linear node of blob 1 at %v", p)
	}
	if err := WriteLinear(&buf, T, ffea.NodeSets{{0, 0}: {0, 3}}, nil); err == nil {
		Te.Error("a node out of range should be an error")
	}
	err = WriteLinear(&buf, T, ffea.NodeSets{{0, 0}: {0}}, nil)
	if err == nil {
		Te.Fatal("a blob without linear nodes should be an error")
	}
	//the error comes from the node sets, and keeps the names of the callers.
	if msg := err.Error(); !strings.Contains(msg, "newWriter") || !strings.Contains(msg, "WriteLinear") {
		Te.Errorf("error not decorated by the writer: %s", msg)
	}
}

func TestWriteFrame(Te *testing.T) {
	T, err := readString(Te, oldTwoBlobs.String(), nil)
	if err != nil {
		Te.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteFrame(&buf, T, 2); err != nil {
		Te.Fatal(err)
	}
	R, err := Read(&buf, "frame", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if R.Len() != 1 || R.Blob(0, 0).Frame(0).Pos(0) != [3]float64{2, 0, 0} || R.Blob(0, 0).Frame(0).Step() != 20 {
		Te.Errorf("wrong frame written: %d frames", R.Len())
	}
	for _, i := range []int{-1, 3} {
		buf.Reset()
		if err := WriteFrame(&buf, T, i); err == nil {
			Te.Errorf("frame %d should be out of range", i)
		}
		if buf.Len() != 0 {
			Te.Errorf("nothing should be written for frame %d", i)
		}
	}
}

func TestWriteMissingFirstConformation(Te *testing.T) {
	T, err := readString(Te, newMultiConf.String(), nil)
	if err != nil {
		Te.Fatal(err)
	}
	var buf bytes.Buffer
	//frame 1 has blob 0 in conformation 1.
	if err := Write(&buf, T, nil); err == nil {
		Te.Error("writing a frame without conformation 0 should fail")
	}
	if err := Write(&buf, new(ffea.Trajectory), nil); err == nil {
		Te.Error("writing an empty trajectory should fail")
	}
}

func TestWriteFileCompressed(Te *testing.T) {
	T, err := readString(Te, oldTwoBlobs.String(), nil)
	if err != nil {
		Te.Fatal(err)
	}
	dir := Te.TempDir()
	for _, name := range []string{"t.out", "t.out.gz", "t.out.zst"} {
		path := filepath.Join(dir, name)
		if err := WriteFile(path, T, nil); err != nil {
			Te.Fatalf("%s: %v", name, err)
		}
		R, err := ReadFile(path, nil)
		if err != nil {
			Te.Fatalf("%s: %v", name, err)
		}
		sameFrames(Te, T, R)
		n, err := EstimateFrames(path)
		if err != nil || n != T.Len() {
			Te.Errorf("%s: estimated %d frames (%v), want %d", name, n, err, T.Len())
		}
	}
}

func TestCompressionFor(Te *testing.T) {
	tests := map[string]Compression{
		"traj.out":      Plain,
		"traj.out.gz":   Gzip,
		"traj.OUT.ZST":  Zstd,
		"traj.out.zstd": Zstd,
		"traj.gz.out":   Plain,
	}
	for name, want := range tests {
		if got := CompressionFor(name); got != want {
			Te.Errorf("%s: %d, want %d", name, got, want)
		}
	}
}

/*
 * plot_test.go, part of goffea.
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

package ffeaplot

import (
	"os"
	"path/filepath"
	"testing"

	v3 "github.com/ffea/goffea/v3"
)

func checkFile(Te *testing.T, name string) {
	Te.Helper()
	info, err := os.Stat(name)
	if err != nil {
		Te.Fatal(err)
	}
	if info.Size() == 0 {
		Te.Errorf("%s is empty", name)
	}
}

func TestDistance(Te *testing.T) {
	dir := Te.TempDir()
	name := filepath.Join(dir, "dist.png")
	err := Distance([]float64{1, 1.5, 2.5, 2}, []int{0, 1, 3, 4}, "Node distance", name, Size{})
	if err != nil {
		Te.Fatal(err)
	}
	checkFile(Te, name)
	if err := Distance([]float64{1, 2}, []int{0}, "bad", filepath.Join(dir, "bad.png"), Size{}); err == nil {
		Te.Error("mismatched frames and values should be an error")
	}
	if err := Distance(nil, nil, "empty", filepath.Join(dir, "empty.png"), Size{}); err == nil {
		Te.Error("no data should be an error")
	}
}

func TestCentroid(Te *testing.T) {
	c, err := v3.NewMatrix([]float64{0, 0, 0, 1, 2, 3, 2, 4, 5})
	if err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(Te.TempDir(), "centroid.svg")
	if err := Centroid(c, []int{0, 2, 4}, "Centroid", name, Size{Width: 300, Height: 200}); err != nil {
		Te.Fatal(err)
	}
	checkFile(Te, name)
	if err := Centroid(nil, nil, "", name, Size{}); err == nil {
		Te.Error("a nil matrix should be an error")
	}
}

func TestColors(Te *testing.T) {
	if r, g, b := hsv2rgb(0, 1, 1); r != 255 || g != 0 || b != 0 {
		Te.Errorf("hue 0 should be red, got %d %d %d", r, g, b)
	}
	if r, g, b := hsv2rgb(240, 1, 1); r != 0 || g != 0 || b != 255 {
		Te.Errorf("hue 240 should be blue, got %d %d %d", r, g, b)
	}
	if r, g, b := hsv2rgb(100, 0, 0.5); r != g || g != b {
		Te.Errorf("no saturation should give a gray, got %d %d %d", r, g, b)
	}
	seen := make(map[[3]uint8]bool)
	for k := 0; k < 3; k++ {
		r, g, b := colors(k, 3)
		seen[[3]uint8{r, g, b}] = true
	}
	if len(seen) != 3 {
		Te.Errorf("colors should differ, got %v", seen)
	}
}

/*
 * histo_test.go, part of goffea.
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


package histo

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestHisto(Te *testing.T) {
	raw := []float64{1, 6, 3, 2, 4, 5, 7, 6, 3.5, 3, 5, 1, 1, 0, 0, 5, 8, 1, 2, 3, 44, 3, 7, 3, 1, 3, 5, 32, 1}
	D, err := NewData([]float64{0, 1, 2, 3, 4, 8}, raw)
	if err != nil {
		Te.Fatal(err)
	}
	want := []float64{2, 6, 2, 7, 9} //8, 32 and 44 are out
	if !floats.Equal(D.View(), want) || D.Total() != 26 {
		Te.Errorf("got %v (%d values), want %v", D.View(), D.Total(), want)
	}
	if raw[0] != 1 || raw[1] != 6 {
		Te.Error("ReHisto should not sort the caller's data")
	}
	D.Normalize()
	if math.Abs(D.Sum()-1) > 1e-12 {
		Te.Errorf("normalized histogram adds up to %v", D.Sum())
	}
	D.AddData(0.5, -1, 100)
	D.UnNormalize()
	want[0]++
	if !floats.EqualApprox(D.View(), want, 1e-9) || D.Total() != 27 {
		Te.Errorf("after AddData got %v (%d values), want %v", D.View(), D.Total(), want)
	}
	if _, err := NewData([]float64{3, 1}, nil); err == nil {
		Te.Error("unsorted dividers should be an error")
	}
}

func TestUniform(Te *testing.T) {
	d, err := Uniform(0, 2, 4)
	if err != nil {
		Te.Fatal(err)
	}
	if len(d) != 5 || d[1] != 0.5 || d[4] <= 2 {
		Te.Errorf("wrong dividers %v", d)
	}
	D, _ := NewData(d, []float64{0, 2, 2, 1.2})
	if !floats.Equal(D.View(), []float64{1, 0, 1, 2}) {
		Te.Errorf("the maximum should go in the last bin: %v", D.View())
	}
	if _, err := Uniform(1, 0, 3); err == nil {
		Te.Error("min > max should be an error")
	}
	if _, err := Uniform(1, 1, 3); err != nil {
		Te.Errorf("equal limits should work: %v", err)
	}
}

func TestSummary(Te *testing.T) {
	mean, std := Summary([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if mean != 5 || math.Abs(std-math.Sqrt(32.0/7)) > 1e-12 {
		Te.Errorf("mean %v std %v", mean, std)
	}
	if m, s := Summary([]float64{3}); m != 3 || s != 0 {
		Te.Errorf("one value: %v %v", m, s)
	}
}

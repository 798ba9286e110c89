/*
 * histo.go, part of goffea.
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


// Package histo builds histograms of the values measured along a trajectory.
package histo

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Data is a histogram with arbitrary dividers. Bin i holds the values v with
// dividers[i] <= v < dividers[i+1]. Values outside the dividers are not counted.
type Data struct {
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

// Uniform returns bins+1 evenly spaced dividers covering [min,max]. The
// last divider is nudged up so max itself falls in the last bin.
func Uniform(min, max float64, bins int) ([]float64, error) {
	if bins < 1 || !(max >= min) {
		return nil, fmt.Errorf("histo: can't divide [%g,%g] in %d bins", min, max, bins)
	}
	if max == min {
		max = min + 1
	}
	d := floats.Span(make([]float64, bins+1), min, max)
	d[bins] = math.Nextafter(max, math.Inf(1))
	return d, nil
}

// NewData returns a new histogram from the dividers and rawdata given.
// rawdata can be nil. In that case, an empty histogram is created.
// The dividers must be sorted, and at least two.
func NewData(dividers []float64, rawdata []float64) (*Data, error) {
	if len(dividers) < 2 || !sort.Float64sAreSorted(dividers) {
		return nil, fmt.Errorf("histo: need at least 2 sorted dividers, got %v", dividers)
	}
	d := new(Data)
	//copied so nobody changes it from outside
	d.dividers = append([]float64(nil), dividers...)
	d.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		d.ReHisto(rawdata)
	}
	return d, nil
}

// AddData adds the given data point(s) to the histogram.
func (D *Data) AddData(point ...float64) {
	norma := D.normalized
	if norma {
		D.UnNormalize()
	}
	last := len(D.dividers) - 1
	for _, v := range point {
		if v < D.dividers[0] || v >= D.dividers[last] {
			continue
		}
		//the first divider larger than v closes the bin.
		j := sort.Search(len(D.dividers), func(i int) bool { return D.dividers[i] > v })
		D.histo[j-1]++
		D.total++
	}
	if norma {
		D.Normalize()
	}
}

// ReHisto replaces the contents of the histogram with rawdata.
// rawdata is not modified.
func (D *Data) ReHisto(rawdata []float64) {
	data := append([]float64(nil), rawdata...)
	sort.Float64s(data)
	//stat.Histogram panics with values off limits, so they are removed first.
	lo := sort.SearchFloat64s(data, D.dividers[0])
	hi := sort.SearchFloat64s(data, D.dividers[len(D.dividers)-1])
	data = data[lo:hi]
	D.total = len(data)
	D.normalized = false
	D.histo = stat.Histogram(nil, D.dividers, data, nil)
}

// Total returns the number of values counted.
func (D *Data) Total() int {
	return D.total
}

// Normalized returns true if the histogram is normalized
func (D *Data) Normalized() bool {
	return D.normalized
}

// Normalize scales the bins so they add up to 1.
func (D *Data) Normalize() {
	if D.total <= 0 || D.normalized {
		return
	}
	floats.Scale(1/float64(D.total), D.histo)
	D.normalized = true
}

// UnNormalize goes back to counts.
func (D *Data) UnNormalize() {
	if D.total <= 0 || !D.normalized {
		return
	}
	floats.Scale(float64(D.total), D.histo)
	D.normalized = false
}

// Dividers returns a copy of the dividers of the histogram.
func (D *Data) Dividers() []float64 {
	return append([]float64(nil), D.dividers...)
}

// View returns the bins. Changing the slice changes the histogram.
func (D *Data) View() []float64 {
	return D.histo
}

// Sum returns the sum of all bins.
func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

// String prints one bin per line, as "low high value".
func (D *Data) String() string {
	lines := make([]string, len(D.histo))
	for i, v := range D.histo {
		lines[i] = fmt.Sprintf("%8.4f %8.4f %9.4f", D.dividers[i], D.dividers[i+1], v)
	}
	return strings.Join(lines, "\n")
}

// Summary returns the mean and the standard deviation of values.
func Summary(values []float64) (mean, std float64) {
	if len(values) < 2 {
		if len(values) == 1 {
			return values[0], 0
		}
		return math.NaN(), math.NaN()
	}
	return stat.MeanStdDev(values, nil)
}

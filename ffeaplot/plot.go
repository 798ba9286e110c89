/*
 * plot.go, part of goffea.
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

// Package ffeaplot draws time series obtained from FFEA trajectories,
// such as node distances and centroid positions, using gonum/plot.
// The image format is taken from the extension of the file name
// (png, svg, pdf, eps, jpg or tif).
package ffeaplot

import (
	"fmt"
	"image/color"

	v3 "github.com/ffea/goffea/v3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Size is the size of a saved plot.
type Size struct {
	Width  vg.Length
	Height vg.Length
}

// DefaultSize is used when a zero Size is given.
var DefaultSize = Size{5 * vg.Inch, 4 * vg.Inch}

func (s Size) orDefault() Size {
	if s.Width <= 0 || s.Height <= 0 {
		return DefaultSize
	}
	return s
}

// PlotError is returned by the functions in this package.
type PlotError struct {
	message string
	deco    []string
}

func (err *PlotError) Error() string { return "ffeaplot: " + err.message }

// Decorate adds new information to the error.
func (err *PlotError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func basicPlot(title, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Frame"
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

// series builds the points of one line. frames gives the X of each value.
func series(frames []int, values []float64) (plotter.XYs, error) {
	if len(frames) != len(values) {
		return nil, &PlotError{fmt.Sprintf("%d frames for %d values", len(frames), len(values)), []string{"series"}}
	}
	if len(values) == 0 {
		return nil, &PlotError{"no data to plot", []string{"series"}}
	}
	pts := make(plotter.XYs, len(values))
	for i, v := range values {
		pts[i].X = float64(frames[i])
		pts[i].Y = v
	}
	return pts, nil
}

func addSeries(p *plot.Plot, name string, pts plotter.XYs, key, steps int) error {
	l, s, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	r, g, b := colors(key, steps)
	c := color.RGBA{R: r, G: g, B: b, A: 255}
	l.Color = c
	s.Color = c
	s.Shape = getShape(key)
	p.Add(l, s)
	if name != "" {
		p.Legend.Add(name, l, s)
	}
	return nil
}

// Distance plots a distance against the frame where it was measured,
// as given by NodeDistance, and saves it to filename.
func Distance(dist []float64, frames []int, title, filename string, size Size) error {
	pts, err := series(frames, dist)
	if err != nil {
		return errDecorate(err, "Distance")
	}
	p := basicPlot(title, "Distance")
	p.Y.Min = 0
	if err := addSeries(p, "", pts, 0, 1); err != nil {
		return &PlotError{err.Error(), []string{"Distance"}}
	}
	return save(p, filename, size, "Distance")
}

// Centroid plots the three coordinates of a centroid trajectory, as given
// by CentroidTrajectory, against the frame of each row, and saves it to filename.
func Centroid(c *v3.Matrix, frames []int, title, filename string, size Size) error {
	if c == nil {
		return &PlotError{"nil centroid trajectory", []string{"Centroid"}}
	}
	p := basicPlot(title, "Position")
	p.Legend.Top = true
	vals := make([]float64, c.NVecs())
	for k, name := range []string{"x", "y", "z"} {
		for i := range vals {
			vals[i] = c.At(i, k)
		}
		pts, err := series(frames, vals)
		if err != nil {
			return errDecorate(err, "Centroid")
		}
		if err := addSeries(p, name, pts, k, 3); err != nil {
			return &PlotError{err.Error(), []string{"Centroid"}}
		}
	}
	return save(p, filename, size, "Centroid")
}

func save(p *plot.Plot, filename string, size Size, caller string) error {
	size = size.orDefault()
	if err := p.Save(size.Width, size.Height, filename); err != nil {
		return &PlotError{err.Error(), []string{"save", caller}}
	}
	return nil
}

// getShape gives a different glyph to each of the first 4 series.
func getShape(key int) draw.GlyphDrawer {
	switch key % 4 {
	case 0:
		return draw.CircleGlyph{}
	case 1:
		return draw.SquareGlyph{}
	case 2:
		return draw.PyramidGlyph{}
	}
	return draw.CrossGlyph{}
}

func errDecorate(err error, caller string) error {
	if e, ok := err.(interface{ Decorate(string) []string }); ok {
		e.Decorate(caller)
	}
	return err
}

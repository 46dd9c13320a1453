/*
 * featplot.go, part of cgfeat.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

// Package featplot plots the distributions of computed features.
package featplot

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/rmera/cgfeat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Error is the error type for this package.
type Error struct {
	message  string
	filename string
	deco     []string
}

func (err *Error) Error() string {
	msg := err.message
	if err.filename != "" {
		msg = fmt.Sprintf("%s (file %s)", msg, err.filename)
	}
	if len(err.deco) == 0 {
		return msg
	}
	return fmt.Sprintf("%s [%s]", msg, strings.Join(err.deco, " <- "))
}

// Decorate adds dec to the decoration of the error and returns the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// FileName returns the name of the file involved in the error, if any.
func (err *Error) FileName() string { return err.filename }

func newError(caller, format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf("featplot: "+format, args...), deco: []string{caller}}
}

// axis labels for each group
var labels = map[string]string{
	cgfeat.DistancesKey:       "Distance",
	cgfeat.AnglesKey:          "Angle (rad)",
	cgfeat.DihedralCosinesKey: "cos(Dihedral)",
	cgfeat.DihedralSinesKey:   "sin(Dihedral)",
}

func basicPlot(title, xlabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "Frequency"
	p.Add(plotter.NewGrid())
	return p
}

// column returns the non-NaN values of a column of a group.
func column(f *cgfeat.Features, group string, col int) (plotter.Values, error) {
	if f == nil || f.Group(group) == nil {
		return nil, newError("column", "no feature group %q", group)
	}
	m := f.Group(group)
	r, c := m.Dims()
	if col < 0 || col >= c {
		return nil, newError("column", "column %d out of range for group %s with %d columns", col, group, c)
	}
	vals := make(plotter.Values, 0, r)
	for i := 0; i < r; i++ {
		if v := m.At(i, col); !math.IsNaN(v) {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return nil, newError("column", "no valid values in column %d of group %s", col, group)
	}
	return vals, nil
}

// Histogram returns a normalized histogram, with the given number of bins, of the values of one
// column of a feature group over all frames. If title is empty, one is built from
// the tuple of the column.
func Histogram(f *cgfeat.Features, group string, col, bins int, title string) (*plot.Plot, error) {
	if bins < 1 {
		return nil, newError("Histogram", "invalid number of bins %d", bins)
	}
	vals, err := column(f, group, col)
	if err != nil {
		err.(*Error).Decorate("Histogram")
		return nil, err
	}
	if title == "" {
		title = group
		if d := f.Descriptions[group]; col < len(d) {
			title = fmt.Sprintf("%s %v", group, d[col])
		}
	}
	p := basicPlot(title, labels[group])
	h, err := plotter.NewHist(vals, bins)
	if err != nil {
		return nil, newError("Histogram", "%s", err.Error())
	}
	h.Normalize(1)
	h.FillColor = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	p.Add(h)
	return p, nil
}

// Histograms returns one plot per column of a group, as in Histogram.
func Histograms(f *cgfeat.Features, group string, bins int) ([]*plot.Plot, error) {
	if f == nil || f.Group(group) == nil {
		return nil, newError("Histograms", "no feature group %q", group)
	}
	_, c := f.Group(group).Dims()
	ret := make([]*plot.Plot, 0, c)
	for i := 0; i < c; i++ {
		p, err := Histogram(f, group, i, bins, "")
		if err != nil {
			err.(*Error).Decorate("Histograms")
			return nil, err
		}
		ret = append(ret, p)
	}
	return ret, nil
}

// Save saves p to filename, with the given width and height in inches.
// The format is taken from the extension of filename (png, svg, pdf, etc).
func Save(p *plot.Plot, width, height float64, filename string) error {
	if p == nil {
		return newError("Save", "nil plot")
	}
	if err := p.Save(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, filename); err != nil {
		return &Error{message: "featplot: can't save plot: " + err.Error(), filename: filename, deco: []string{"Save"}}
	}
	return nil
}

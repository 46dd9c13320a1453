/*
 * histo.go, part of cgfeat.
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

package featstat

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/rmera/cgfeat"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Histogram is the distribution of the values of one feature.
type Histogram struct {
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

// NewHistogram returns a histogram of rawdata with the given dividers,
// which must be sorted. Values outside the dividers, and NaNs, are omitted.
// rawdata is not modified.
func NewHistogram(dividers, rawdata []float64) (*Histogram, error) {
	if len(dividers) < 2 {
		return nil, newError("NewHistogram", "at least 2 dividers needed, got %d", len(dividers))
	}
	if !sort.Float64sAreSorted(dividers) {
		return nil, newError("NewHistogram", "dividers are not sorted")
	}
	H := &Histogram{dividers: append([]float64(nil), dividers...)}
	data := make([]float64, 0, len(rawdata))
	for _, v := range rawdata {
		if !math.IsNaN(v) {
			data = append(data, v)
		}
	}
	sort.Float64s(data)
	//stat.Histogram panics with values off limits, so we remove them first.
	mini := sort.SearchFloat64s(data, H.dividers[0])
	maxi := sort.SearchFloat64s(data, H.dividers[len(H.dividers)-1])
	data = data[mini:maxi]
	H.total = len(data)
	H.histo = stat.Histogram(nil, H.dividers, data, nil)
	return H, nil
}

// ColumnHistogram returns the histogram, with the given number of bins, of
// one column of one group in f. The bins evenly span the values in the column.
func ColumnHistogram(f *cgfeat.Features, group string, column, bins int) (*Histogram, error) {
	if f == nil || f.Group(group) == nil {
		return nil, newError("ColumnHistogram", "no feature group %q", group)
	}
	m := f.Group(group)
	r, c := m.Dims()
	if column < 0 || column >= c {
		return nil, newError("ColumnHistogram", "column %d out of range for group %s with %d columns", column, group, c)
	}
	if bins < 1 {
		return nil, newError("ColumnHistogram", "invalid number of bins %d", bins)
	}
	col := mat.Col(make([]float64, r), column, m)
	min, max := math.Inf(1), math.Inf(-1)
	for _, v := range col {
		if math.IsNaN(v) {
			continue
		}
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	if math.IsInf(min, 1) {
		return nil, newError("ColumnHistogram", "no valid values in column %d of group %s", column, group)
	}
	//the last divider is open, so we push it a bit, to keep the maximum.
	max = math.Nextafter(max, math.Inf(1))
	if max-min < 1e-9 {
		max = min + 1e-9
	}
	H, err := NewHistogram(floats.Span(make([]float64, bins+1), min, max), col)
	if err != nil {
		return nil, err
	}
	return H, nil
}

// Normalized returns true if the histogram is normalized.
func (H *Histogram) Normalized() bool {
	return H.normalized
}

// Normalize scales the histogram so it sums to 1.
func (H *Histogram) Normalize() {
	H.normaunnorma(true)
}

// UnNormalize returns the histogram to counts.
func (H *Histogram) UnNormalize() {
	H.normaunnorma(false)
}

func (H *Histogram) normaunnorma(normalize bool) {
	if H.total <= 0 || H.normalized == normalize {
		return
	}
	n := float64(H.total)
	if normalize {
		n = 1 / n
	}
	H.normalized = normalize
	floats.Scale(n, H.histo)
}

// Total returns the number of values in the histogram.
func (H *Histogram) Total() int {
	return H.total
}

// Dividers returns a copy of the dividers of the histogram.
func (H *Histogram) Dividers() []float64 {
	return append([]float64(nil), H.dividers...)
}

// View returns the bins of the histogram. The slice must not be modified.
func (H *Histogram) View() []float64 {
	return H.histo
}

// Sum returns the sum of all bins.
func (H *Histogram) Sum() float64 {
	return floats.Sum(H.histo)
}

// String prints the histogram as 3 lines of text.
func (H *Histogram) String() string {
	ret := fmt.Sprintf("Normalized: %v, TotalData: %d\n", H.normalized, H.total)
	d := make([]string, 0, len(H.histo))
	h := make([]string, 0, len(H.histo))
	for i, v := range H.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", H.dividers[i], H.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

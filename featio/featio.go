/*
 * featio.go, part of cgfeat.
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

// Package featio saves and loads computed features as zstd-compressed JSON.
package featio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/rmera/cgfeat"
	"gonum.org/v1/gonum/mat"
)

// Error is the error type for this package.
type Error struct {
	message  string
	filename string
	deco     []string
	critical bool
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

// Critical returns whether the error is critical.
func (err *Error) Critical() bool { return err.critical }

type jsonMatrix struct {
	Rows int       `json:"rows"`
	Cols int       `json:"cols"`
	Data []float64 `json:"data"`
}

type jsonFeatures struct {
	Descriptions map[string][][]int    `json:"descriptions"`
	Groups       map[string]jsonMatrix `json:"groups"`
}

func dense2JSON(m *mat.Dense) jsonMatrix {
	r, c := m.Dims()
	ret := jsonMatrix{Rows: r, Cols: c, Data: make([]float64, 0, r*c)}
	for i := 0; i < r; i++ {
		ret.Data = append(ret.Data, m.RawRowView(i)[:c]...)
	}
	return ret
}

// Write writes f to w as zstd-compressed JSON.
// NaN and infinite values can't be represented in JSON, and give an error.
func Write(w io.Writer, f *cgfeat.Features) error {
	if f == nil {
		return &Error{message: "featio: nil features", deco: []string{"Write"}, critical: true}
	}
	j := jsonFeatures{Descriptions: make(map[string][][]int), Groups: make(map[string]jsonMatrix)}
	for _, k := range f.Groups() {
		j.Groups[k] = dense2JSON(f.Group(k))
	}
	for k, tuples := range f.Descriptions {
		d := make([][]int, len(tuples))
		for i, t := range tuples {
			d[i] = []int(t)
		}
		j.Descriptions[k] = d
	}
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return &Error{message: "featio: can't create compressor: " + err.Error(), deco: []string{"Write"}, critical: true}
	}
	if err := json.NewEncoder(zw).Encode(j); err != nil {
		zw.Close()
		return &Error{message: "featio: can't encode features: " + err.Error(), deco: []string{"Write"}, critical: true}
	}
	if err := zw.Close(); err != nil {
		return &Error{message: "featio: can't flush compressed data: " + err.Error(), deco: []string{"Write"}, critical: true}
	}
	return nil
}

// Read reads features written by Write from r.
func Read(r io.Reader) (*cgfeat.Features, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, &Error{message: "featio: can't create decompressor: " + err.Error(), deco: []string{"Read"}, critical: true}
	}
	defer zr.Close()
	var j jsonFeatures
	if err := json.NewDecoder(zr).Decode(&j); err != nil {
		return nil, &Error{message: "featio: can't decode features: " + err.Error(), deco: []string{"Read"}, critical: true}
	}
	f := &cgfeat.Features{Descriptions: make(map[string][]cgfeat.Tuple, len(j.Descriptions))}
	for k, d := range j.Descriptions {
		tuples := make([]cgfeat.Tuple, len(d))
		for i, t := range d {
			tuples[i] = cgfeat.Tuple(t)
		}
		f.Descriptions[k] = tuples
	}
	frames := -1
	for k, m := range j.Groups {
		if m.Rows < 1 || m.Cols < 1 || len(m.Data) != m.Rows*m.Cols {
			return nil, &Error{message: fmt.Sprintf("featio: group %s: %d values for a %dx%d matrix", k, len(m.Data), m.Rows, m.Cols), deco: []string{"Read"}, critical: true}
		}
		if frames >= 0 && m.Rows != frames {
			return nil, &Error{message: fmt.Sprintf("featio: group %s has %d frames, other groups have %d", k, m.Rows, frames), deco: []string{"Read"}, critical: true}
		}
		frames = m.Rows
		if len(f.Descriptions[k]) != m.Cols {
			return nil, &Error{message: fmt.Sprintf("featio: group %s has %d columns but %d descriptions", k, m.Cols, len(f.Descriptions[k])), deco: []string{"Read"}, critical: true}
		}
		dense := mat.NewDense(m.Rows, m.Cols, m.Data)
		switch k {
		case cgfeat.DistancesKey:
			f.Distances = dense
		case cgfeat.AnglesKey:
			f.Angles = dense
		case cgfeat.DihedralCosinesKey:
			f.DihedralCosines = dense
		case cgfeat.DihedralSinesKey:
			f.DihedralSines = dense
		default:
			return nil, &Error{message: fmt.Sprintf("featio: unknown feature group %q", k), deco: []string{"Read"}, critical: true}
		}
	}
	return f, nil
}

// WriteFile writes f to the file name, which is created or truncated.
func WriteFile(name string, f *cgfeat.Features) error {
	fout, err := os.Create(name)
	if err != nil {
		return &Error{message: "featio: " + err.Error(), filename: name, deco: []string{"WriteFile"}, critical: true}
	}
	if err := Write(fout, f); err != nil {
		fout.Close()
		return &Error{message: err.Error(), filename: name, deco: []string{"WriteFile"}, critical: true}
	}
	if err := fout.Close(); err != nil {
		return &Error{message: "featio: " + err.Error(), filename: name, deco: []string{"WriteFile"}, critical: true}
	}
	return nil
}

// ReadFile reads features from the file name.
func ReadFile(name string) (*cgfeat.Features, error) {
	fin, err := os.Open(name)
	if err != nil {
		return nil, &Error{message: "featio: " + err.Error(), filename: name, deco: []string{"ReadFile"}, critical: true}
	}
	defer fin.Close()
	f, err := Read(fin)
	if err != nil {
		return nil, &Error{message: err.Error(), filename: name, deco: []string{"ReadFile"}, critical: true}
	}
	return f, nil
}

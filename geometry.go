/*
 * geometry.go, part of cgfeat.
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

package cgfeat

import (
	"math"

	v3 "github.com/rmera/cgfeat/v3"
	"gonum.org/v1/gonum/mat"
)

// All the functions in this file compute one value per tuple and frame, and
// the column of each value is the position of its tuple in the given list.
// Each value depends only on its own tuple, so permuting the tuples
// permutes the columns and nothing else.

// columns transposes the tuples, so the kth slice contains the kth index of each tuple.
func columns(tuples []Tuple, arity int) [][]int {
	c := make([][]int, arity)
	for k := range c {
		c[k] = make([]int, len(tuples))
	}
	for i, t := range tuples {
		for k, v := range t {
			c[k][i] = v
		}
	}
	return c
}

// check validates the frames and tuples given to one of the Geometry functions.
func (G *Geometry) check(F Frames, tuples []Tuple, arity int, caller string) error {
	if F == nil || F.NFrames() < 1 || F.Len() < 1 {
		return newError(ErrNilData, caller, "no frames given")
	}
	if len(tuples) == 0 {
		return newError(ErrNilData, caller, "no tuples given")
	}
	if F.Len() < arity {
		return newError(ErrTooFewBeads, caller, "%d beads per frame, at least %d needed", F.Len(), arity)
	}
	for i, t := range tuples {
		if err := checkTuple(t, i, arity, F.Len(), caller); err != nil {
			return err
		}
	}
	return nil
}

// nanCheck returns an error naming the first NaN in m, if the options ask for it.
func (G *Geometry) nanCheck(m *mat.Dense, tuples []Tuple, caller string) error {
	if !G.o.NaNCheck() {
		return nil
	}
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j, v := range m.RawRowView(i)[:c] {
			if math.IsNaN(v) {
				return newError(ErrNaN, caller, "NaN in frame %d for tuple %v", i, tuples[j])
			}
		}
	}
	return nil
}

// acos returns the arccos of x, snapping values beyond ±1 by no more than
// the ClampEpsilon option back to ±1.
func (G *Geometry) acos(x float64) float64 {
	eps := G.o.ClampEpsilon()
	if x > 1 && x-1 <= eps {
		x = 1
	} else if x < -1 && -1-x <= eps {
		x = -1
	}
	return math.Acos(x)
}

// Distances returns a frames x len(pairs) matrix with the distance between
// the beads of each pair, for each frame in F.
func (G *Geometry) Distances(F Frames, pairs []Tuple) (*mat.Dense, error) {
	if err := G.check(F, pairs, 2, "Distances"); err != nil {
		return nil, err
	}
	idx := columns(pairs, 2)
	n := len(pairs)
	a := v3.Zeros(n)
	b := v3.Zeros(n)
	ba := v3.Zeros(n)
	ret := mat.NewDense(F.NFrames(), n, nil)
	for f := 0; f < F.NFrames(); f++ {
		frame := F.Frame(f)
		a.SomeVecs(frame, idx[0])
		b.SomeVecs(frame, idx[1])
		ba.Sub(b.Dense, a.Dense)
		ba.Norms(ret.RawRowView(f)[:n])
	}
	if err := G.nanCheck(ret, pairs, "Distances"); err != nil {
		return nil, err
	}
	return ret, nil
}

// Angles returns a frames x len(trips) matrix with the angle, in radians, between
// the vectors b-a and c-b for each (a,b,c) tuple in trips and each frame in F.
// Zero-length vectors give NaN.
func (G *Geometry) Angles(F Frames, trips []Tuple) (*mat.Dense, error) {
	if err := G.check(F, trips, 3, "Angles"); err != nil {
		return nil, err
	}
	idx := columns(trips, 3)
	n := len(trips)
	a, b, c := v3.Zeros(n), v3.Zeros(n), v3.Zeros(n)
	ba, cb := v3.Zeros(n), v3.Zeros(n)
	var dots, n1, n2 []float64
	ret := mat.NewDense(F.NFrames(), n, nil)
	for f := 0; f < F.NFrames(); f++ {
		frame := F.Frame(f)
		a.SomeVecs(frame, idx[0])
		b.SomeVecs(frame, idx[1])
		c.SomeVecs(frame, idx[2])
		ba.Sub(b.Dense, a.Dense)
		cb.Sub(c.Dense, b.Dense)
		dots = v3.DotVecs(ba, cb, dots)
		n1 = ba.Norms(n1)
		n2 = cb.Norms(n2)
		row := ret.RawRowView(f)[:n]
		for i := range row {
			row[i] = G.acos(dots[i] / (n1[i] * n2[i]))
		}
	}
	if err := G.nanCheck(ret, trips, "Angles"); err != nil {
		return nil, err
	}
	return ret, nil
}

// Dihedrals returns two frames x len(quads) matrices with the cosine and the sine of the
// dihedral angle around the b-c axis for each (a,b,c,d) tuple in quads and each frame in F.
// With c1=(b-a)x(c-b) and c2=(c-b)x(d-c), the angle is
// atan2(((c2 x c1)·(c-b))/|c-b|, c2·c1).
// A zero c1 or c2 (collinear beads, or a zero-length bond) gives NaN, as does a
// zero-length c-b vector.
func (G *Geometry) Dihedrals(F Frames, quads []Tuple) (cos, sin *mat.Dense, err error) {
	if err := G.check(F, quads, 4, "Dihedrals"); err != nil {
		return nil, nil, err
	}
	idx := columns(quads, 4)
	n := len(quads)
	a, b, c, d := v3.Zeros(n), v3.Zeros(n), v3.Zeros(n), v3.Zeros(n)
	ba, cb, dc := v3.Zeros(n), v3.Zeros(n), v3.Zeros(n)
	c1, c2, plane := v3.Zeros(n), v3.Zeros(n), v3.Zeros(n)
	var s, t, ncb, n1, n2 []float64
	cos = mat.NewDense(F.NFrames(), n, nil)
	sin = mat.NewDense(F.NFrames(), n, nil)
	for f := 0; f < F.NFrames(); f++ {
		frame := F.Frame(f)
		a.SomeVecs(frame, idx[0])
		b.SomeVecs(frame, idx[1])
		c.SomeVecs(frame, idx[2])
		d.SomeVecs(frame, idx[3])
		ba.Sub(b.Dense, a.Dense)
		cb.Sub(c.Dense, b.Dense)
		dc.Sub(d.Dense, c.Dense)
		c1.Cross(ba, cb)
		c2.Cross(cb, dc)
		plane.Cross(c2, c1)
		s = v3.DotVecs(plane, cb, s)
		t = v3.DotVecs(c2, c1, t)
		ncb = cb.Norms(ncb)
		n1 = c1.Norms(n1)
		n2 = c2.Norms(n2)
		crow := cos.RawRowView(f)[:n]
		srow := sin.RawRowView(f)[:n]
		for i := range crow {
			if n1[i] == 0 || n2[i] == 0 {
				crow[i], srow[i] = math.NaN(), math.NaN()
				continue
			}
			phi := math.Atan2(s[i]/ncb[i], t[i])
			srow[i], crow[i] = math.Sincos(phi)
		}
	}
	if err := G.nanCheck(cos, quads, "Dihedrals"); err != nil {
		return nil, nil, err
	}
	return cos, sin, nil
}

/*
 * indexes.go, part of cgfeat.
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

package cgfeat

import (
	"gonum.org/v1/gonum/mat"
)

// Geometry generates feature indexes and computes distances, angles and dihedrals
// for batches of frames. It holds no state other than its options, so the
// same Geometry can be shared by many feature layers.
type Geometry struct {
	o *Options
}

// NewGeometry returns a Geometry using the options o. If o is nil, the
// default options are used.
func NewGeometry(o *Options) *Geometry {
	return &Geometry{o: options(o)}
}

// Options returns the options used by the Geometry.
func (G *Geometry) Options() *Options {
	return G.o
}

// RedundantMap relates each pair of beads to the position of its
// distance in the list produced by DistanceIndices.
type RedundantMap struct {
	n     int
	table [][]int //n x n-1
}

// pairIndex returns the position of the pair (i,j), i<j, in the lexicographic list of n beads.
func pairIndex(i, j, n int) int {
	return i*n - i*(i+1)/2 + (j - i - 1)
}

func newRedundantMap(n int) *RedundantMap {
	r := &RedundantMap{n: n, table: make([][]int, n)}
	for i := 0; i < n; i++ {
		row := make([]int, 0, n-1)
		for j := 0; j < n; j++ {
			switch {
			case j < i:
				row = append(row, pairIndex(j, i, n))
			case j > i:
				row = append(row, pairIndex(i, j, n))
			}
		}
		r.table[i] = row
	}
	return r
}

// Len returns the number of beads covered by the map.
func (R *RedundantMap) Len() int {
	return R.n
}

// PairIndex returns the position of the distance between beads i and j.
// The order of i and j doesn't matter.
func (R *RedundantMap) PairIndex(i, j int) (int, error) {
	if i < 0 || j < 0 || i >= R.n || j >= R.n {
		return -1, newError(ErrIndexOutOfRange, "PairIndex", "pair (%d, %d) out of range for %d beads", i, j, R.n)
	}
	if i == j {
		return -1, newError(ErrRepeatedIndex, "PairIndex", "pair (%d, %d) has no distance", i, j)
	}
	if i > j {
		i, j = j, i
	}
	return pairIndex(i, j, R.n), nil
}

// Row returns the positions of the distances between bead i and every other bead,
// sorted by the index of the other bead. The slice must not be modified.
func (R *RedundantMap) Row(i int) []int {
	return R.table[i]
}

// Matrix returns the whole map as a n x (n-1) matrix.
func (R *RedundantMap) Matrix() *mat.Dense {
	if R.n < 2 {
		return nil
	}
	m := mat.NewDense(R.n, R.n-1, nil)
	for i, row := range R.table {
		for j, v := range row {
			m.Set(i, j, float64(v))
		}
	}
	return m
}

// DistanceIndices returns all the pairs (i, j), i<j, for n beads, sorted,
// and the map from each pair to its position in that list.
func (G *Geometry) DistanceIndices(n int) ([]Tuple, *RedundantMap, error) {
	if n < 2 {
		return nil, nil, newError(ErrTooFewBeads, "DistanceIndices", "distances need at least 2 beads, got %d", n)
	}
	pairs := make([]Tuple, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, Tuple{i, j})
		}
	}
	return pairs, newRedundantMap(n), nil
}

// AdjacentAngles returns the n-2 angle tuples (i, i+1, i+2) of a linear chain of n beads.
func (G *Geometry) AdjacentAngles(n int) ([]Tuple, error) {
	return adjacent(n, 3, "AdjacentAngles")
}

// AdjacentDihedrals returns the n-3 dihedral tuples (i, i+1, i+2, i+3) of a linear chain of n beads.
func (G *Geometry) AdjacentDihedrals(n int) ([]Tuple, error) {
	return adjacent(n, 4, "AdjacentDihedrals")
}

func adjacent(n, arity int, caller string) ([]Tuple, error) {
	if n < arity {
		return nil, newError(ErrTooFewBeads, caller, "%d beads given, at least %d needed", n, arity)
	}
	ret := make([]Tuple, 0, n-arity+1)
	for i := 0; i <= n-arity; i++ {
		t := make(Tuple, arity)
		for j := range t {
			t[j] = i + j
		}
		ret = append(ret, t)
	}
	return ret, nil
}

// DefaultTuples returns the default features for a chain of n beads: all
// the pairwise distances, followed by the adjacent angles and the adjacent dihedrals.
// It fails with ErrTooFewBeads if n<4, as no dihedral can be defined.
func (G *Geometry) DefaultTuples(n int) ([]Tuple, error) {
	if n < 4 {
		return nil, newError(ErrTooFewBeads, "DefaultTuples", "the default features need at least 4 beads, got %d", n)
	}
	pairs, _, err := G.DistanceIndices(n)
	if err != nil {
		return nil, errDecorate(err, "DefaultTuples")
	}
	angles, err := G.AdjacentAngles(n)
	if err != nil {
		return nil, errDecorate(err, "DefaultTuples")
	}
	diheds, err := G.AdjacentDihedrals(n)
	if err != nil {
		return nil, errDecorate(err, "DefaultTuples")
	}
	ret := make([]Tuple, 0, len(pairs)+len(angles)+len(diheds))
	ret = append(ret, pairs...)
	ret = append(ret, angles...)
	return append(ret, diheds...), nil
}

// Neighbors returns, for each frame and each bead, the beads closer than cutoff.
// dist must contain all the pairwise distances for each frame, in the order
// given by DistanceIndices, and R must be the corresponding map.
// If cutoff is not positive, the Cutoff of the Geometry's options is used, and if
// that is not positive either, every other bead is a neighbor.
// The neighbors of each bead are sorted by index.
func (G *Geometry) Neighbors(dist *mat.Dense, R *RedundantMap, cutoff float64) ([][][]int, error) {
	if dist == nil || R == nil {
		return nil, newError(ErrNilData, "Neighbors", "nil distances or map")
	}
	frames, c := dist.Dims()
	if c != R.n*(R.n-1)/2 {
		return nil, newError(ErrShape, "Neighbors", "%d distances per frame, want %d for %d beads", c, R.n*(R.n-1)/2, R.n)
	}
	if cutoff <= 0 {
		cutoff = G.o.Cutoff()
	}
	ret := make([][][]int, frames)
	for f := 0; f < frames; f++ {
		d := dist.RawRowView(f)
		ret[f] = make([][]int, R.n)
		for i, row := range R.table {
			neigh := make([]int, 0, len(row))
			for k, p := range row {
				if cutoff > 0 && !(d[p] < cutoff) {
					continue
				}
				j := k
				if k >= i {
					j = k + 1 //row skips the bead itself
				}
				neigh = append(neigh, j)
			}
			ret[f][i] = neigh
		}
	}
	return ret, nil
}

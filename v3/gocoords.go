/*
 * gocoords.go, part of cgfeat.
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

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//METHODS

// NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != cols {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// Len is an alias for NVecs.
func (F *Matrix) Len() int {
	return F.NVecs()
}

// SomeVecs puts in the receiver all the ith vectors of matrix A,
// where i are the numbers in clist. The vectors are in the same order
// as in clist.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	ar := A.NVecs()
	if F.NVecs() != len(clist) {
		panic(ErrShape)
	}
	for key, val := range clist {
		if val < 0 || val >= ar {
			panic(ErrIndexOutOfRange)
		}
		copy(F.RawRowView(key), A.RawRowView(val))
	}
}

// Cross puts in each vector of F the cross product of the corresponding vectors
// of a and b. Panics if the three matrices don't have the same number of vectors.
// F must not share memory with a or b.
func (F *Matrix) Cross(a, b *Matrix) {
	n := F.NVecs()
	if a.NVecs() != n || b.NVecs() != n {
		panic(ErrNoCrossProduct)
	}
	for i := 0; i < n; i++ {
		u := a.RawRowView(i)
		v := b.RawRowView(i)
		f := F.RawRowView(i)
		f[0] = u[1]*v[2] - u[2]*v[1]
		f[1] = u[2]*v[0] - u[0]*v[2]
		f[2] = u[0]*v[1] - u[1]*v[0]
	}
}

// DotVecs returns a slice with the dot products of each pair of
// corresponding vectors in A and B. If dst has the right length it is
// used for the result.
func DotVecs(A, B *Matrix, dst []float64) []float64 {
	n := A.NVecs()
	if B.NVecs() != n {
		panic(ErrShape)
	}
	if len(dst) != n {
		dst = make([]float64, n)
	}
	for i := range dst {
		dst[i] = floats.Dot(A.RawRowView(i), B.RawRowView(i))
	}
	return dst
}

// Norms returns the euclidean norm of each vector of F.
// If dst has the right length it is used for the result.
func (F *Matrix) Norms(dst []float64) []float64 {
	n := F.NVecs()
	if len(dst) != n {
		dst = make([]float64, n)
	}
	for i := range dst {
		dst[i] = floats.Norm(F.RawRowView(i), 2)
	}
	return dst
}

// String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r := F.NVecs()
	v := make([]string, 0, r)
	for i := 0; i < r; i++ {
		row := F.RawRowView(i)
		v = append(v, fmt.Sprintf("%6.2f %6.2f %6.2f", row[0], row[1], row[2]))
	}
	return "\n[" + strings.Join(v, "\n ") + " ]"
}

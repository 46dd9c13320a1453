/*
 * gonum.go, part of cgfeat.
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

//gonum.go contains the Matrix type and what is needed to move between it and the gonum/mat types.

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const cols int = 3

// Matrix is a set of vectors in 3D space, one per row.
// Elementwise arithmetic (Add, Sub, Scale, MulElem...) is promoted from
// the underlying gonum Dense.
type Matrix struct {
	*mat.Dense
}

// Matrix2Dense returns the Dense underlying A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

// NewMatrix generates and returns a Matrix with 3 columns from data.
// The data is not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	l := len(data)
	if l == 0 || l%cols != 0 {
		return nil, &Error{fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}, true}
	}
	rows := l / cols
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

// View returns a view of r vectors of F, starting from the ith.
// Changes in the view are reflected in F and vice-versa.
// Very little memory allocation happens.
func (F *Matrix) View(i, r int) *Matrix {
	ret := F.Dense.Slice(i, i+r, 0, cols).(*mat.Dense)
	return &Matrix{ret}
}

//Errors

// Error is the error type for the v3 package. It implements the
// Decorate method shared by the errors in cgfeat.
type Error struct {
	message  string
	deco     []string
	critical bool
}

// Error returns a string with an error message.
func (err *Error) Error() string {
	return err.message
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical return whether the error is critical or it can be ignored
func (err *Error) Critical() bool { return err.critical }

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix    = PanicMsg("cgfeat/v3: A Matrix should have 3 columns")
	ErrNoCrossProduct  = PanicMsg("cgfeat/v3: Invalid matrix for cross product")
	ErrShape           = PanicMsg("cgfeat/v3: Dimension mismatch")
	ErrIndexOutOfRange = PanicMsg("cgfeat/v3: index out of range")
)

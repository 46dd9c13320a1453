/*
 * errors.go, part of cgfeat.
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
	"fmt"
	"strings"
)

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing its type or wrapping it around something else.
// If passed an empty string, Decorate just returns the current decoration.
type Error interface {
	Error() string
	Decorate(string) []string
}

// CError is the error type for the cgfeat package. Besides the message
// and the decoration (the list of functions the error went through), it
// keeps the kind of error, which can be checked with errors.Is.
type CError struct {
	msg  string
	deco []string
	kind error
}

// Error returns the error message, followed by the decoration, if any.
func (err *CError) Error() string {
	if len(err.deco) == 0 {
		return err.msg
	}
	return fmt.Sprintf("%s [%s]", err.msg, strings.Join(err.deco, " <- "))
}

// Decorate adds dec to the decoration of the error and returns the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Unwrap returns the kind of the error (one of the Err* values).
func (err *CError) Unwrap() error {
	return err.kind
}

// newError builds a CError of the given kind, decorated with the caller's name.
func newError(kind error, caller string, format string, args ...interface{}) *CError {
	return &CError{msg: fmt.Sprintf("cgfeat: "+format, args...), deco: []string{caller}, kind: kind}
}

// errDecorate decorates err with the caller's name, if err implements Error.
// Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}

// PanicMsg is a message used for panics, and as the kind of a CError.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilData         = PanicMsg("cgfeat: nil or empty data")
	ErrShape           = PanicMsg("cgfeat: dimension mismatch")
	ErrArity           = PanicMsg("cgfeat: wrong number of indices in feature tuple")
	ErrIndexOutOfRange = PanicMsg("cgfeat: bead index out of range")
	ErrRepeatedIndex   = PanicMsg("cgfeat: repeated bead index in feature tuple")
	ErrTooFewBeads     = PanicMsg("cgfeat: not enough beads for the requested features")
	ErrNaN             = PanicMsg("cgfeat: NaN in computed features")
	ErrUnknownResidue  = PanicMsg("cgfeat: unknown residue")
	ErrUnits           = PanicMsg("cgfeat: unknown units")
	ErrOption          = PanicMsg("cgfeat: invalid option value")
)

/*
 * batch.go, part of cgfeat.
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
	v3 "github.com/rmera/cgfeat/v3"
	"gonum.org/v1/gonum/mat"
)

// Batch is a set of frames with the same number of beads, stored
// in one (frames*beads)x3 matrix. It implements Frames.
type Batch struct {
	data   *v3.Matrix
	frames int
	beads  int
}

// NewBatch returns a Batch from data, a row-major slice with the shape (frames, beads, 3).
// The data is not copied.
func NewBatch(data []float64, frames, beads int) (*Batch, error) {
	if frames <= 0 || beads <= 0 {
		return nil, newError(ErrNilData, "NewBatch", "a batch needs at least one frame and one bead, got %d frames, %d beads", frames, beads)
	}
	if len(data) != frames*beads*3 {
		return nil, newError(ErrShape, "NewBatch", "data has %d elements, want %d for %d frames of %d beads", len(data), frames*beads*3, frames, beads)
	}
	m, err := v3.NewMatrix(data)
	if err != nil {
		return nil, errDecorate(err, "NewBatch")
	}
	return &Batch{data: m, frames: frames, beads: beads}, nil
}

// BatchFromFrames copies the given coordinate sets into a new Batch.
// All of them must have the same number of beads.
func BatchFromFrames(frames ...*v3.Matrix) (*Batch, error) {
	if len(frames) == 0 || frames[0] == nil {
		return nil, newError(ErrNilData, "BatchFromFrames", "no frames given")
	}
	beads := frames[0].NVecs()
	b := &Batch{data: v3.Zeros(beads * len(frames)), frames: len(frames), beads: beads}
	for i, f := range frames {
		if f == nil {
			return nil, newError(ErrNilData, "BatchFromFrames", "frame %d is nil", i)
		}
		if f.NVecs() != beads {
			return nil, newError(ErrShape, "BatchFromFrames", "frame %d has %d beads, frame 0 has %d", i, f.NVecs(), beads)
		}
		b.Frame(i).Copy(f)
	}
	return b, nil
}

// NFrames returns the number of frames in the batch.
func (B *Batch) NFrames() int {
	return B.frames
}

// Len returns the number of beads per frame.
func (B *Batch) Len() int {
	return B.beads
}

// Frame returns a view of the coordinates of the ith frame.
func (B *Batch) Frame(i int) *v3.Matrix {
	if i < 0 || i >= B.frames {
		panic(ErrIndexOutOfRange)
	}
	return B.data.View(i*B.beads, B.beads)
}

// At returns the dim coordinate of the bead of the given frame.
func (B *Batch) At(frame, bead, dim int) float64 {
	return B.Frame(frame).At(bead, dim)
}

// Dense returns the (frames*beads)x3 matrix holding the batch.
func (B *Batch) Dense() *mat.Dense {
	return v3.Matrix2Dense(B.data)
}

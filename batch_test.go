/*
 * batch_test.go, part of cgfeat.
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
	"errors"
	"testing"

	v3 "github.com/rmera/cgfeat/v3"
)

func TestNewBatch(Te *testing.T) {
	data := make([]float64, 2*3*3)
	for i := range data {
		data[i] = float64(i)
	}
	B, err := NewBatch(data, 2, 3)
	if err != nil {
		Te.Fatal(err)
	}
	if B.NFrames() != 2 || B.Len() != 3 {
		Te.Errorf("got %d frames of %d beads", B.NFrames(), B.Len())
	}
	//frame 1, bead 2, z
	if v := B.At(1, 2, 2); v != 17 {
		Te.Errorf("At(1,2,2) = %g, want 17", v)
	}
	f := B.Frame(1)
	if f.NVecs() != 3 || f.At(0, 0) != 9 {
		Te.Errorf("wrong frame 1:\n%v", f)
	}
	//frames are views
	data[9] = -1
	if B.At(1, 0, 0) != -1 {
		Te.Error("the batch doesn't share the data given")
	}
	if r, c := B.Dense().Dims(); r != 6 || c != 3 {
		Te.Errorf("Dense is %dx%d, want 6x3", r, c)
	}
	if _, err := NewBatch(data, 3, 3); !errors.Is(err, ErrShape) {
		Te.Errorf("got %v, want ErrShape", err)
	}
	if _, err := NewBatch(nil, 0, 3); !errors.Is(err, ErrNilData) {
		Te.Errorf("got %v, want ErrNilData", err)
	}
}

func TestBatchFromFrames(Te *testing.T) {
	a, _ := v3.NewMatrix([]float64{0, 0, 0, 1, 1, 1})
	b, _ := v3.NewMatrix([]float64{2, 2, 2, 3, 3, 3})
	B, err := BatchFromFrames(a, b)
	if err != nil {
		Te.Fatal(err)
	}
	if B.NFrames() != 2 || B.At(1, 1, 0) != 3 {
		Te.Errorf("wrong batch: %d frames, At(1,1,0)=%g", B.NFrames(), B.At(1, 1, 0))
	}
	//copied
	a.Set(0, 0, 5)
	if B.At(0, 0, 0) != 0 {
		Te.Error("BatchFromFrames didn't copy the frames")
	}
	c, _ := v3.NewMatrix([]float64{1, 2, 3})
	if _, err := BatchFromFrames(a, c); !errors.Is(err, ErrShape) {
		Te.Errorf("got %v, want ErrShape", err)
	}
	if _, err := BatchFromFrames(); !errors.Is(err, ErrNilData) {
		Te.Errorf("got %v, want ErrNilData", err)
	}
}

func TestFramePanics(Te *testing.T) {
	B, _ := NewBatch(make([]float64, 6), 1, 2)
	defer func() {
		if r := recover(); r != ErrIndexOutOfRange {
			Te.Errorf("got panic %v, want ErrIndexOutOfRange", r)
		}
	}()
	B.Frame(1)
}

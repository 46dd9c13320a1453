/*
 * feature_test.go, part of cgfeat.
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
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestGeometryFeatureDefault(Te *testing.T) {
	rng := rand.New(rand.NewSource(20))
	beads, frames := 8, 4
	B := randomBatch(Te, rng, frames, beads)
	GF, err := NewGeometryFeature(nil, beads, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if GF.Beads() != beads {
		Te.Errorf("Beads() = %d", GF.Beads())
	}
	nd, na, nq := beads*(beads-1)/2, beads-2, beads-3
	if GF.NFeatures() != nd+na+2*nq {
		Te.Errorf("NFeatures() = %d, want %d", GF.NFeatures(), nd+na+2*nq)
	}
	F, err := GF.Forward(B)
	if err != nil {
		Te.Fatal(err)
	}
	if F.NFrames() != frames {
		Te.Errorf("NFrames() = %d", F.NFrames())
	}
	if diff := cmp.Diff([]string{DistancesKey, AnglesKey, DihedralCosinesKey, DihedralSinesKey}, F.Groups()); diff != "" {
		Te.Errorf("wrong groups (-want +got):\n%s", diff)
	}
	for k, n := range map[string]int{DistancesKey: nd, AnglesKey: na, DihedralCosinesKey: nq, DihedralSinesKey: nq} {
		r, c := F.Group(k).Dims()
		if r != frames || c != n || len(F.Descriptions[k]) != n {
			Te.Errorf("group %s is %dx%d with %d descriptions, want %dx%d", k, r, c, len(F.Descriptions[k]), frames, n)
		}
	}
	all := F.All()
	if r, c := all.Dims(); r != frames || c != GF.NFeatures() {
		Te.Fatalf("All() is %dx%d", r, c)
	}
	//column layout: distances, angles, cosines, sines
	if all.At(2, nd) != F.Angles.At(2, 0) || all.At(1, nd+na+nq) != F.DihedralSines.At(1, 0) {
		Te.Error("All() doesn't have the expected layout")
	}
	phi := F.DihedralAngles()
	for f := 0; f < frames; f++ {
		for j := 0; j < nq; j++ {
			s, c := math.Sincos(phi.At(f, j))
			if !scalar.EqualWithinAbs(s, F.DihedralSines.At(f, j), 1e-12) || !scalar.EqualWithinAbs(c, F.DihedralCosines.At(f, j), 1e-12) {
				Te.Errorf("frame %d dihedral %d: angle %g doesn't match its sine and cosine", f, j, phi.At(f, j))
			}
		}
	}
}

func TestGeometryFeatureExplicit(Te *testing.T) {
	rng := rand.New(rand.NewSource(21))
	tuples := []Tuple{{2, 0, 1}, {3, 5}, {0, 1}}
	GF, err := NewGeometryFeature(tuples, 0, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if GF.Beads() != 6 {
		Te.Errorf("inferred %d beads, want 6", GF.Beads())
	}
	if diff := cmp.Diff([]Tuple{{3, 5}, {0, 1}}, GF.FeatureSet().Distances); diff != "" {
		Te.Errorf("wrong distances (-want +got):\n%s", diff)
	}
	//an inferred number of beads is a minimum
	F, err := GF.Forward(randomBatch(Te, rng, 2, 9))
	if err != nil {
		Te.Fatal(err)
	}
	if F.DihedralCosines != nil || F.DihedralSines != nil || F.DihedralAngles() != nil {
		Te.Error("got dihedrals without dihedral tuples")
	}
	if _, ok := F.Descriptions[DihedralCosinesKey]; ok {
		Te.Error("empty dihedral group has descriptions")
	}
	if _, c := F.All().Dims(); c != 3 {
		Te.Errorf("All() has %d columns, want 3", c)
	}
	if _, err := GF.Forward(randomBatch(Te, rng, 2, 5)); !errors.Is(err, ErrShape) {
		Te.Errorf("too few beads: got %v, want ErrShape", err)
	}
	//with an explicit number of beads, it must match
	GF, err = NewGeometryFeature(tuples, 6, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := GF.Forward(randomBatch(Te, rng, 2, 9)); !errors.Is(err, ErrShape) {
		Te.Errorf("wrong number of beads: got %v, want ErrShape", err)
	}
	if _, err := NewGeometryFeature(tuples, 5, nil); !errors.Is(err, ErrIndexOutOfRange) {
		Te.Errorf("got %v, want ErrIndexOutOfRange", err)
	}
}

func TestGeometryFeatureErrors(Te *testing.T) {
	if _, err := NewGeometryFeature(nil, 3, nil); !errors.Is(err, ErrTooFewBeads) {
		Te.Errorf("3 beads: got %v, want ErrTooFewBeads", err)
	}
	if _, err := NewGeometryFeature(nil, -1, nil); !errors.Is(err, ErrTooFewBeads) {
		Te.Errorf("negative beads: got %v, want ErrTooFewBeads", err)
	}
	if _, err := NewGeometryFeature([]Tuple{}, 4, nil); !errors.Is(err, ErrNilData) {
		Te.Errorf("empty tuples: got %v, want ErrNilData", err)
	}
	GF, _ := NewGeometryFeature(nil, 4, nil)
	if _, err := GF.Forward(nil); !errors.Is(err, ErrNilData) {
		Te.Errorf("nil frames: got %v, want ErrNilData", err)
	}
	//NaN check goes through Forward
	o := DefaultOptions()
	o.NaNCheck(true)
	GF, _ = NewGeometryFeature(nil, 4, o)
	B, _ := NewBatch(make([]float64, 12), 1, 4)
	if _, err := GF.Forward(B); !errors.Is(err, ErrNaN) {
		Te.Errorf("coincident beads: got %v, want ErrNaN", err)
	}
}

func TestEmptyFeatures(Te *testing.T) {
	F := new(Features)
	if F.All() != nil || F.NFrames() != 0 || len(F.Groups()) != 0 || F.Group("Bonds") != nil {
		Te.Error("empty Features aren't empty")
	}
}

func TestDescriptionsAreCopies(Te *testing.T) {
	B, err := NewBatch([]float64{
		0, 0, 0,
		1, 0, 0,
		3, 4, 0,
	}, 1, 3)
	if err != nil {
		Te.Fatal(err)
	}
	GF, err := NewGeometryFeature([]Tuple{{0, 1}}, 3, nil)
	if err != nil {
		Te.Fatal(err)
	}
	F, err := GF.Forward(B)
	if err != nil {
		Te.Fatal(err)
	}
	//none of these should change the beads the layer uses
	F.Descriptions[DistancesKey][0][1] = 2
	GF.Descriptions()[DistancesKey][0][0] = 2
	GF.FeatureSet().Distances[0][1] = 2
	F, err = GF.Forward(B)
	if err != nil {
		Te.Fatal(err)
	}
	if d := F.Distances.At(0, 0); d != 1 {
		Te.Errorf("distance %g after modifying the descriptions, want 1", d)
	}
	if t := GF.FeatureSet().Distances[0]; !t.Equal(Tuple{0, 1}) {
		Te.Errorf("layer tuple is %v, want (0, 1)", t)
	}
	if t := F.Descriptions[DistancesKey][0]; !t.Equal(Tuple{0, 1}) {
		Te.Errorf("description is %v, want (0, 1)", t)
	}
}

/*
 * feature.go, part of cgfeat.
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
	"math"

	"gonum.org/v1/gonum/mat"
)

// Features contains the geometrical features computed for a batch of frames.
// Each matrix has one row per frame and one column per tuple of
// the corresponding group, in the order given in Descriptions.
// Groups without tuples have nil matrices.
type Features struct {
	Distances       *mat.Dense
	Angles          *mat.Dense
	DihedralCosines *mat.Dense
	DihedralSines   *mat.Dense
	Descriptions    map[string][]Tuple
}

// Group returns the matrix for the group with the given name (one of
// the *Key constants), or nil if there is no such group.
func (F *Features) Group(name string) *mat.Dense {
	switch name {
	case DistancesKey:
		return F.Distances
	case AnglesKey:
		return F.Angles
	case DihedralCosinesKey:
		return F.DihedralCosines
	case DihedralSinesKey:
		return F.DihedralSines
	}
	return nil
}

// Groups returns the names of the non-empty groups, in the order
// in which they appear in All.
func (F *Features) Groups() []string {
	ret := make([]string, 0, 4)
	for _, k := range []string{DistancesKey, AnglesKey, DihedralCosinesKey, DihedralSinesKey} {
		if F.Group(k) != nil {
			ret = append(ret, k)
		}
	}
	return ret
}

// NFrames returns the number of frames for which the features were computed.
func (F *Features) NFrames() int {
	groups := F.Groups()
	if len(groups) == 0 {
		return 0
	}
	r, _ := F.Group(groups[0]).Dims()
	return r
}

// All returns a matrix with all the non-empty groups side by side: distances, angles,
// dihedral cosines and dihedral sines. It returns nil if all groups are empty.
func (F *Features) All() *mat.Dense {
	groups := F.Groups()
	if len(groups) == 0 {
		return nil
	}
	rows := F.NFrames()
	cols := 0
	for _, k := range groups {
		_, c := F.Group(k).Dims()
		cols += c
	}
	ret := mat.NewDense(rows, cols, nil)
	start := 0
	for _, k := range groups {
		g := F.Group(k)
		_, c := g.Dims()
		ret.Slice(0, rows, start, start+c).(*mat.Dense).Copy(g)
		start += c
	}
	return ret
}

// DihedralAngles returns the dihedral angles, in radians, in the (-π, π] range,
// recovered from their cosines and sines. It returns nil if there are no dihedrals.
func (F *Features) DihedralAngles() *mat.Dense {
	if F.DihedralCosines == nil || F.DihedralSines == nil {
		return nil
	}
	r, c := F.DihedralCosines.Dims()
	ret := mat.NewDense(r, c, nil)
	ret.Apply(func(i, j int, v float64) float64 {
		return math.Atan2(F.DihedralSines.At(i, j), v)
	}, F.DihedralCosines)
	return ret
}

// GeometryFeature computes a fixed set of distance, angle and dihedral features
// for batches of frames. The feature set is decided when the GeometryFeature is built.
type GeometryFeature struct {
	geom     *Geometry
	set      *FeatureSet
	beads    int
	inferred bool //beads was taken from the tuples
}

// NewGeometryFeature returns a GeometryFeature for the given tuples. If tuples is nil,
// all the pairwise distances, the adjacent angles and the adjacent dihedrals
// for a chain of beads beads are used, which needs beads>=4. If tuples are given and beads is
// 0, the number of beads is taken as the largest index in the tuples plus one,
// otherwise every index must be smaller than beads. o can be nil.
func NewGeometryFeature(tuples []Tuple, beads int, o *Options) (*GeometryFeature, error) {
	if beads < 0 {
		return nil, newError(ErrTooFewBeads, "NewGeometryFeature", "negative number of beads %d", beads)
	}
	G := NewGeometry(o)
	var err error
	if tuples == nil {
		tuples, err = G.DefaultTuples(beads)
		if err != nil {
			return nil, errDecorate(err, "NewGeometryFeature")
		}
	}
	set, err := Partition(tuples, beads)
	if err != nil {
		return nil, errDecorate(err, "NewGeometryFeature")
	}
	GF := &GeometryFeature{geom: G, set: set, beads: beads}
	if beads == 0 {
		GF.beads = set.MaxIndex() + 1
		GF.inferred = true
	}
	return GF, nil
}

// FeatureSet returns a copy of the tuples used by the feature layer.
func (GF *GeometryFeature) FeatureSet() *FeatureSet {
	return GF.set.Copy()
}

// Descriptions returns a map from each feature group to the tuples
// defining its columns.
func (GF *GeometryFeature) Descriptions() map[string][]Tuple {
	return GF.set.Descriptions()
}

// Beads returns the number of beads the feature layer expects. If it was
// inferred from the tuples, it is the minimum number of beads.
func (GF *GeometryFeature) Beads() int {
	return GF.beads
}

// NFeatures returns the number of columns of the All matrix of the computed features.
func (GF *GeometryFeature) NFeatures() int {
	return len(GF.set.Distances) + len(GF.set.Angles) + 2*len(GF.set.Dihedrals)
}

// Forward computes the features for each frame in F. F must have
// exactly the number of beads given by Beads, or at least that many if the
// number was inferred from the tuples.
func (GF *GeometryFeature) Forward(F Frames) (*Features, error) {
	if F == nil {
		return nil, newError(ErrNilData, "Forward", "nil frames")
	}
	if F.Len() < GF.beads || (!GF.inferred && F.Len() != GF.beads) {
		return nil, newError(ErrShape, "Forward", "frames have %d beads, the feature set was built for %d", F.Len(), GF.beads)
	}
	GF.geom.o.Logger().Debug("computing geometry features", "frames", F.NFrames(), "beads", F.Len(),
		"distances", len(GF.set.Distances), "angles", len(GF.set.Angles), "dihedrals", len(GF.set.Dihedrals))
	ret := &Features{Descriptions: GF.set.Descriptions()}
	var err error
	if len(GF.set.Distances) > 0 {
		ret.Distances, err = GF.geom.Distances(F, GF.set.Distances)
		if err != nil {
			return nil, errDecorate(err, "Forward")
		}
	}
	if len(GF.set.Angles) > 0 {
		ret.Angles, err = GF.geom.Angles(F, GF.set.Angles)
		if err != nil {
			return nil, errDecorate(err, "Forward")
		}
	}
	if len(GF.set.Dihedrals) > 0 {
		ret.DihedralCosines, ret.DihedralSines, err = GF.geom.Dihedrals(F, GF.set.Dihedrals)
		if err != nil {
			return nil, errDecorate(err, "Forward")
		}
	}
	return ret, nil
}

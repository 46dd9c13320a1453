/*
 * tuple.go, part of cgfeat.
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
	"strconv"
	"strings"
)

// Names of the feature groups, as used in the descriptions.
const (
	DistancesKey       = "Distances"
	AnglesKey          = "Angles"
	DihedralCosinesKey = "Dihedral_cosines"
	DihedralSinesKey   = "Dihedral_sines"
)

// Tuple is an ordered set of bead indexes defining a feature:
// 2 indexes for a distance, 3 for an angle and 4 for a dihedral.
type Tuple []int

// String returns the tuple in the form (i, j, k).
func (t Tuple) String() string {
	s := make([]string, len(t))
	for i, v := range t {
		s[i] = strconv.Itoa(v)
	}
	return "(" + strings.Join(s, ", ") + ")"
}

// Equal returns whether t and u contain the same indexes in the same order.
func (t Tuple) Equal(u Tuple) bool {
	if len(t) != len(u) {
		return false
	}
	for i, v := range t {
		if u[i] != v {
			return false
		}
	}
	return true
}

// Copy returns a new tuple with the indexes of t.
func (t Tuple) Copy() Tuple {
	if t == nil {
		return nil
	}
	c := make(Tuple, len(t))
	copy(c, t)
	return c
}

// CopyTuples returns a deep copy of tuples.
func CopyTuples(tuples []Tuple) []Tuple {
	if tuples == nil {
		return nil
	}
	c := make([]Tuple, len(tuples))
	for i, t := range tuples {
		c[i] = t.Copy()
	}
	return c
}

// max returns the largest index in the tuple, or -1 for an empty tuple.
func (t Tuple) max() int {
	m := -1
	for _, v := range t {
		if v > m {
			m = v
		}
	}
	return m
}

// checkTuple returns an error if t doesn't have the given arity (if arity>0),
// has indexes out of the [0,beads) range (if beads>0) or has repeated indexes.
// pos is the position of the tuple in the caller's list, for the error message.
func checkTuple(t Tuple, pos, arity, beads int, caller string) error {
	if arity > 0 && len(t) != arity {
		return newError(ErrArity, caller, "tuple %v at position %d has %d indexes, want %d", t, pos, len(t), arity)
	}
	if len(t) < 2 || len(t) > 4 {
		return newError(ErrArity, caller, "tuple %v at position %d has %d indexes, want 2, 3 or 4", t, pos, len(t))
	}
	for i, v := range t {
		if v < 0 || (beads > 0 && v >= beads) {
			return newError(ErrIndexOutOfRange, caller, "tuple %v at position %d: index %d out of range for %d beads", t, pos, v, beads)
		}
		for _, w := range t[i+1:] {
			if v == w {
				return newError(ErrRepeatedIndex, caller, "tuple %v at position %d repeats bead %d", t, pos, v)
			}
		}
	}
	return nil
}

// FeatureSet contains the tuples for each kind of feature. Within each
// kind, the tuples keep the order in which they were given.
type FeatureSet struct {
	Distances []Tuple
	Angles    []Tuple
	Dihedrals []Tuple
}

// Partition validates tuples and splits them by arity into a FeatureSet,
// keeping the relative order of the tuples of each kind. If beads>0, every index
// must be smaller than beads.
func Partition(tuples []Tuple, beads int) (*FeatureSet, error) {
	if len(tuples) == 0 {
		return nil, newError(ErrNilData, "Partition", "no feature tuples given")
	}
	fs := new(FeatureSet)
	for i, t := range tuples {
		if err := checkTuple(t, i, 0, beads, "Partition"); err != nil {
			return nil, err
		}
		c := t.Copy()
		switch len(t) {
		case 2:
			fs.Distances = append(fs.Distances, c)
		case 3:
			fs.Angles = append(fs.Angles, c)
		case 4:
			fs.Dihedrals = append(fs.Dihedrals, c)
		}
	}
	return fs, nil
}

// Len returns the total number of tuples in the set.
func (fs *FeatureSet) Len() int {
	return len(fs.Distances) + len(fs.Angles) + len(fs.Dihedrals)
}

// MaxIndex returns the largest bead index in the set, or -1 if the set is empty.
func (fs *FeatureSet) MaxIndex() int {
	m := -1
	for _, group := range [][]Tuple{fs.Distances, fs.Angles, fs.Dihedrals} {
		for _, t := range group {
			if tm := t.max(); tm > m {
				m = tm
			}
		}
	}
	return m
}

// Copy returns a deep copy of the set.
func (fs *FeatureSet) Copy() *FeatureSet {
	return &FeatureSet{
		Distances: CopyTuples(fs.Distances),
		Angles:    CopyTuples(fs.Angles),
		Dihedrals: CopyTuples(fs.Dihedrals),
	}
}

// Descriptions returns a map from feature group name to the tuples
// that define each column of that group. Groups without tuples are not included.
// Dihedral cosines and sines get the same tuples. Every entry is a new copy,
// so the map can be modified without affecting the set.
func (fs *FeatureSet) Descriptions() map[string][]Tuple {
	d := make(map[string][]Tuple, 4)
	if len(fs.Distances) > 0 {
		d[DistancesKey] = CopyTuples(fs.Distances)
	}
	if len(fs.Angles) > 0 {
		d[AnglesKey] = CopyTuples(fs.Angles)
	}
	if len(fs.Dihedrals) > 0 {
		d[DihedralCosinesKey] = CopyTuples(fs.Dihedrals)
		d[DihedralSinesKey] = CopyTuples(fs.Dihedrals)
	}
	return d
}

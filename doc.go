/*
 * doc.go, part of cgfeat.
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

/*
Package cgfeat computes geometrical features (distances, angles and dihedrals)
for batches of coarse-grained molecular structures.

The coordinates are given as a batch of frames, each frame a v3.Matrix with one
row per bead. A feature is defined by a tuple of bead indexes: 2 for a distance,
3 for an angle, 4 for a dihedral. Dihedrals are given as their cosine and sine.

	**cgfeat Capabilities**

	Generates the default feature indexes for a linear chain of beads: all the
	pairwise distances, the angles and the dihedrals between adjacent beads.

	Maps pairs of beads to the position of their distance, and builds
	neighbor lists from the distances.

	Computes the features for arbitrary lists of tuples, for any number of frames.
	Permuting the tuples only permutes the resulting columns.

	Derives angles and dihedrals from a bond graph, for molecules that are
	not linear chains.

	Computes hard-sphere minimum distances between coarse-grained aminoacid beads.

	Subpackages compute statistics and harmonic priors for the features (featstat),
	save and load features (featio) and plot their distributions (featplot).

Errors returned by the package implement the Error interface, and their
kind can be checked with errors.Is against the Err* values.
*/
package cgfeat

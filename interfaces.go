/*
 * interfaces.go, part of cgfeat.
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

import v3 "github.com/rmera/cgfeat/v3"

// Frames is an interface for a batch of coordinate sets, all with the
// same number of beads. It is the (frames, beads, 3) coordinate tensor
// the feature engine works on.
type Frames interface {

	//Returns the number of frames in the batch
	NFrames() int

	//Returns the number of beads per frame
	Len() int

	//Returns the coordinates of the ith frame. The returned
	//matrix is not modified by the feature engine.
	Frame(i int) *v3.Matrix
}

// Beader is the basic interface for a coarse-grained topology.
type Beader interface {

	//Returns the number of beads
	Len() int

	//ResSeq returns the residue number of the ith bead
	ResSeq(i int) int

	//ResName returns the residue name of the ith bead
	ResName(i int) string
}

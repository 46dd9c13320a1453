/*
 * bondgraph.go, part of cgfeat.
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
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// BondGraph is the undirected graph of the bonds between beads. It is used
// to derive the angles and dihedrals of molecules that are not linear chains.
type BondGraph struct {
	g *simple.UndirectedGraph
	n int
}

// NewBondGraph builds the graph for n beads and the given bonds.
// Repeated bonds are ignored.
func NewBondGraph(n int, bonds []Tuple) (*BondGraph, error) {
	if n < 1 {
		return nil, newError(ErrTooFewBeads, "NewBondGraph", "%d beads given", n)
	}
	B := &BondGraph{g: simple.NewUndirectedGraph(), n: n}
	for i := 0; i < n; i++ {
		B.g.AddNode(simple.Node(i))
	}
	for i, b := range bonds {
		if err := checkTuple(b, i, 2, n, "NewBondGraph"); err != nil {
			return nil, err
		}
		B.g.SetEdge(simple.Edge{F: simple.Node(b[0]), T: simple.Node(b[1])})
	}
	return B, nil
}

// Len returns the number of beads in the graph.
func (B *BondGraph) Len() int {
	return B.n
}

// Graph returns the underlying gonum graph.
func (B *BondGraph) Graph() graph.Undirected {
	return B.g
}

// Bonded returns whether beads i and j are bonded.
func (B *BondGraph) Bonded(i, j int) bool {
	return B.g.HasEdgeBetween(int64(i), int64(j))
}

// Neighbors returns the beads bonded to bead i, sorted.
func (B *BondGraph) Neighbors(i int) []int {
	nodes := graph.NodesOf(B.g.From(int64(i)))
	ret := make([]int, len(nodes))
	for k, v := range nodes {
		ret[k] = int(v.ID())
	}
	sort.Ints(ret)
	return ret
}

// Bonds returns every bond as a (i, j) tuple with i<j, sorted.
func (B *BondGraph) Bonds() []Tuple {
	var ret []Tuple
	for i := 0; i < B.n; i++ {
		for _, j := range B.Neighbors(i) {
			if i < j {
				ret = append(ret, Tuple{i, j})
			}
		}
	}
	return ret
}

// Angles returns every (a, b, c) tuple where a and c are both bonded to b.
// Each angle appears once, with a<c, and the list is sorted.
func (B *BondGraph) Angles() []Tuple {
	var ret []Tuple
	for b := 0; b < B.n; b++ {
		neigh := B.Neighbors(b)
		for i, a := range neigh {
			for _, c := range neigh[i+1:] {
				ret = append(ret, Tuple{a, b, c})
			}
		}
	}
	sortTuples(ret)
	return ret
}

// Dihedrals returns every (a, b, c, d) tuple such that a-b, b-c and c-d
// are bonds and the 4 beads are different. Each dihedral appears once, with a<d,
// and the list is sorted.
func (B *BondGraph) Dihedrals() []Tuple {
	var ret []Tuple
	seen := make(map[[4]int]bool)
	for _, bc := range B.Bonds() {
		b, c := bc[0], bc[1]
		for _, a := range B.Neighbors(b) {
			if a == c {
				continue
			}
			for _, d := range B.Neighbors(c) {
				if d == b || d == a {
					continue
				}
				q := [4]int{a, b, c, d}
				if a > d {
					q = [4]int{d, c, b, a}
				}
				if seen[q] {
					continue
				}
				seen[q] = true
				ret = append(ret, Tuple{q[0], q[1], q[2], q[3]})
			}
		}
	}
	sortTuples(ret)
	return ret
}

// sortTuples sorts tuples of the same length lexicographically.
func sortTuples(t []Tuple) {
	sort.Slice(t, func(i, j int) bool {
		for k := range t[i] {
			if t[i][k] != t[j][k] {
				return t[i][k] < t[j][k]
			}
		}
		return false
	})
}

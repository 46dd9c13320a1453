/*
 * molecule.go, part of cgfeat.
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

// ResidueRadii contains the radius, in nm, of the side chain of each
// aminoacid, by 3-letter residue name.
var ResidueRadii = map[string]float64{
	"ALA": 0.1845,
	"ARG": 0.3134,
	"ASN": 0.2478,
	"ASP": 0.2335,
	"CYS": 0.2276,
	"GLN": 0.2733,
	"GLU": 0.2639,
	"GLY": 0.0000,
	"HIS": 0.2836,
	"ILE": 0.2890,
	"LEU": 0.2887,
	"LYS": 0.2938,
	"MET": 0.2890,
	"PHE": 0.3140,
	"PRO": 0.2532,
	"SER": 0.1933,
	"THR": 0.2190,
	"TRP": 0.3496,
	"TYR": 0.3363,
	"VAL": 0.2620,
}

// Units is a length unit.
type Units string

const (
	Angstroms  Units = "Angstroms"
	Nanometers Units = "nm"
)

// fromNm returns the factor that converts a length in nm to u.
func (u Units) fromNm() (float64, error) {
	switch u {
	case Angstroms:
		return 10, nil
	case Nanometers:
		return 1, nil
	}
	return 0, newError(ErrUnits, "Units", "unknown units %q", string(u))
}

// CGMolecule is a coarse-grained topology: a name for each bead, the residue
// each bead belongs to, the residue names and, optionally, the bonds
// between beads. It implements Beader.
type CGMolecule struct {
	names  []string
	resseq []int
	resmap map[int]string
	bonds  []Tuple
}

// NewCGMolecule returns a CGMolecule. names and resseq must have one element per bead,
// and every residue number in resseq must have a name in resmap. bonds, which can be nil,
// must be pairs of valid bead indexes.
func NewCGMolecule(names []string, resseq []int, resmap map[int]string, bonds []Tuple) (*CGMolecule, error) {
	if len(names) == 0 {
		return nil, newError(ErrNilData, "NewCGMolecule", "no beads given")
	}
	if len(names) != len(resseq) {
		return nil, newError(ErrShape, "NewCGMolecule", "%d bead names but %d residue numbers", len(names), len(resseq))
	}
	for i, r := range resseq {
		if _, ok := resmap[r]; !ok {
			return nil, newError(ErrUnknownResidue, "NewCGMolecule", "bead %d belongs to residue %d, which has no name", i, r)
		}
	}
	for i, b := range bonds {
		if err := checkTuple(b, i, 2, len(names), "NewCGMolecule"); err != nil {
			return nil, err
		}
	}
	M := &CGMolecule{
		names:  append([]string(nil), names...),
		resseq: append([]int(nil), resseq...),
		resmap: make(map[int]string, len(resmap)),
		bonds:  make([]Tuple, len(bonds)),
	}
	for k, v := range resmap {
		M.resmap[k] = v
	}
	for i, b := range bonds {
		M.bonds[i] = Tuple{b[0], b[1]}
	}
	return M, nil
}

// Len returns the number of beads.
func (M *CGMolecule) Len() int {
	return len(M.names)
}

// Name returns the name of the ith bead.
func (M *CGMolecule) Name(i int) string {
	return M.names[i]
}

// ResSeq returns the residue number of the ith bead.
func (M *CGMolecule) ResSeq(i int) int {
	return M.resseq[i]
}

// ResName returns the residue name of the ith bead.
func (M *CGMolecule) ResName(i int) string {
	return M.resmap[M.resseq[i]]
}

// Bonds returns the bonds of the molecule. The slice must not be modified.
func (M *CGMolecule) Bonds() []Tuple {
	return M.bonds
}

// BondGraph returns the bond graph of the molecule.
func (M *CGMolecule) BondGraph() (*BondGraph, error) {
	g, err := NewBondGraph(M.Len(), M.bonds)
	if err != nil {
		return nil, errDecorate(err, "BondGraph")
	}
	return g, nil
}

// HardSphereMinima returns, for each pair of beads of mol, the sum of the radii
// of the residues they belong to (see ResidueRadii), scaled by prefactor and in the given
// units. Pairs of beads belonging to the same residue get 0.
// The values are meant as the minimum distance allowed between the beads, i.e. for
// a repulsive prior.
func HardSphereMinima(pairs []Tuple, mol Beader, units Units, prefactor float64) ([]float64, error) {
	if mol == nil {
		return nil, newError(ErrNilData, "HardSphereMinima", "nil molecule")
	}
	conv, err := units.fromNm()
	if err != nil {
		return nil, errDecorate(err, "HardSphereMinima")
	}
	ret := make([]float64, 0, len(pairs))
	for i, p := range pairs {
		if err := checkTuple(p, i, 2, mol.Len(), "HardSphereMinima"); err != nil {
			return nil, err
		}
		if mol.ResSeq(p[0]) == mol.ResSeq(p[1]) {
			ret = append(ret, 0)
			continue
		}
		r1, ok1 := ResidueRadii[mol.ResName(p[0])]
		r2, ok2 := ResidueRadii[mol.ResName(p[1])]
		if !ok1 || !ok2 {
			return nil, newError(ErrUnknownResidue, "HardSphereMinima", "no radius for the residues of pair %v (%s, %s)", p, mol.ResName(p[0]), mol.ResName(p[1]))
		}
		ret = append(ret, prefactor*r1*conv+prefactor*r2*conv)
	}
	return ret, nil
}

/*
 * atom.go, part of ipclattice.
 *
 * Copyright 2024 The ipclattice authors
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

package ipc

// Site types and their constants. These are part of the contract with the
// LAMMPS input scripts that read the data file.
const (
	CenterType = 1
	PatchType  = 2

	CenterCharge = -1.0
	PatchCharge  = 0.5

	CenterMass = 2.0
	PatchMass  = 0.5

	SitesPerParticle  = 3
	BondsPerParticle  = 2
	AnglesPerParticle = 1
)

// TypeMasses contains the mass of each atom type, indexed by type-1.
var TypeMasses = [...]float64{CenterMass, PatchMass}

// Atom contains the topological data of one site. The coordinates
// are in a separate matrix.
type Atom struct {
	ID     int //1-based, global.
	MolID  int //1-based index of the owning particle.
	Type   int
	Charge float64
}

// IsCenter returns true if the atom is the center of its IPC.
func (A *Atom) IsCenter() bool {
	return A.Type == CenterType
}

// SiteIDs returns the atom IDs of the center and the two patches of
// the particle with 0-based index i.
func SiteIDs(i int) (center, patch1, patch2 int) {
	center = SitesPerParticle*i + 1
	return center, center + 1, center + 2
}

// Sites returns the three atoms of the particle with 0-based index i:
// center, first patch, second patch.
func Sites(i int) [SitesPerParticle]*Atom {
	c, p1, p2 := SiteIDs(i)
	mol := i + 1
	return [SitesPerParticle]*Atom{
		{ID: c, MolID: mol, Type: CenterType, Charge: CenterCharge},
		{ID: p1, MolID: mol, Type: PatchType, Charge: PatchCharge},
		{ID: p2, MolID: mol, Type: PatchType, Charge: PatchCharge},
	}
}

/*****Topology type***/

var _ Atomer = (*Topology)(nil)

// Topology contains the atoms of a configuration, which are not expected
// to change after construction.
type Topology struct {
	Atoms []*Atom
}

// NewTopology returns a topology with the sites of nparticles particles,
// in particle order.
func NewTopology(nparticles int) *Topology {
	if nparticles < 0 {
		nparticles = 0
	}
	T := new(Topology)
	T.Atoms = make([]*Atom, 0, SitesPerParticle*nparticles)
	for i := 0; i < nparticles; i++ {
		s := Sites(i)
		T.Atoms = append(T.Atoms, s[:]...)
	}
	return T
}

// Atom returns the Atom corresponding to the index i
// of the Atom slice in the Topology. Panics if
// out of range.
func (T *Topology) Atom(i int) *Atom {
	if i >= T.Len() {
		panic("Topology: Requested Atom out of bounds")
	}
	return T.Atoms[i]
}

// Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.Atoms)
}

// Particles returns the number of IPCs in the topology.
func (T *Topology) Particles() int {
	return T.Len() / SitesPerParticle
}

// Charge returns the total charge of the topology.
func (T *Topology) Charge() float64 {
	var q float64
	for _, v := range T.Atoms {
		q += v.Charge
	}
	return q
}

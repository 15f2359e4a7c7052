/*
 * term.go, part of ipclattice
 *
 * Copyright 2024 The ipclattice authors
 *
 *  This program is free software; you can redistribute it and/or modify
 *  it under the terms of the GNU Lesser General Public License as published by
 *  the Free Software Foundation; either version 2.1 of the License, or
 *  (at your option) any later version.
 *
 *  This program is distributed in the hope that it will be useful,
 *  but WITHOUT ANY WARRANTY; without even the implied warranty of
 *  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 *  GNU General Public License for more details.
 *
 *  You should have received a copy of the GNU Lesser General Public License
 *  along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package top

import (
	"fmt"
	"strings"

	ipc "github.com/Zirbo/ipclattice"
)

// The only bond and angle types in an IPC configuration.
const (
	BondType  uint = 1
	AngleType uint = 1

	NBondTypes  = 1
	NAngleTypes = 1
)

// Term is a bonded term: a bond if it involves 2 atoms, an angle if it
// involves 3. For angles, the second atom is the vertex.
type Term struct {
	ID       int //1-based
	FuncType uint
	IDs      []int //1-based atom IDs
}

// Bonds returns the two bonds of the particle with 0-based index i:
// center-patch1 (ID 2i+1) and center-patch2 (ID 2i+2).
func Bonds(i int) [ipc.BondsPerParticle]*Term {
	c, p1, p2 := ipc.SiteIDs(i)
	id := ipc.BondsPerParticle*i + 1
	return [ipc.BondsPerParticle]*Term{
		{ID: id, FuncType: BondType, IDs: []int{c, p1}},
		{ID: id + 1, FuncType: BondType, IDs: []int{c, p2}},
	}
}

// Angle returns the patch1-center-patch2 angle of the particle with
// 0-based index i. Its ID is i+1.
func Angle(i int) *Term {
	c, p1, p2 := ipc.SiteIDs(i)
	return &Term{ID: i + 1, FuncType: AngleType, IDs: []int{p1, c, p2}}
}

// Build returns the bonds and angles of n particles, in particle order.
// A non-positive n gives empty slices.
func Build(n int) (bonds, angles []*Term) {
	if n < 0 {
		n = 0
	}
	bonds = make([]*Term, 0, ipc.BondsPerParticle*n)
	angles = make([]*Term, 0, n)
	for i := 0; i < n; i++ {
		b := Bonds(i)
		bonds = append(bonds, b[:]...)
		angles = append(angles, Angle(i))
	}
	return bonds, angles
}

// IsAngle returns true if the term involves 3 atoms.
func (T *Term) IsAngle() bool {
	return len(T.IDs) == 3
}

// ToLammps writes the term as a line of the Bonds or Angles section of a
// LAMMPS data file: ID, type, atoms. Each field is right-justified in 10
// columns. The line has no trailing newline.
func (T *Term) ToLammps() string {
	b := new(strings.Builder)
	fmt.Fprintf(b, "%10d%10d", T.ID, T.FuncType)
	for _, v := range T.IDs {
		fmt.Fprintf(b, "%10d", v)
	}
	return b.String()
}

func (T *Term) String() string {
	kind := "bond"
	if T.IsAngle() {
		kind = "angle"
	}
	return fmt.Sprintf("%s %d type %d atoms %v", kind, T.ID, T.FuncType, T.IDs)
}

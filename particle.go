/*
 * particle.go, part of ipclattice.
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

import "fmt"

// Region tells which part of the starting configuration a particle belongs to.
type Region int

const (
	Wafer Region = iota
	Fluid
)

func (R Region) String() string {
	switch R {
	case Wafer:
		return "wafer"
	case Fluid:
		return "fluid"
	}
	return fmt.Sprintf("Region(%d)", int(R))
}

// Particle is one IPC: a center and two patches. The coordinates of its
// sites are the rows Index*3, Index*3+1 and Index*3+2 of the coordinate
// matrix of the configuration.
type Particle struct {
	Index  int //0-based position in the configuration.
	Region Region
	Grid   [3]int //lattice indexes ix, iy, iz in its region.
	Patch  int    //index in the table of reference patch vectors.
}

// MolID returns the 1-based molecule ID of the particle.
func (P *Particle) MolID() int {
	return P.Index + 1
}

// Rows returns the indexes of the rows, in the coordinate matrix, of the
// center and the two patches of the particle.
func (P *Particle) Rows() (center, patch1, patch2 int) {
	c, p1, p2 := SiteIDs(P.Index)
	return c - 1, p1 - 1, p2 - 1
}

func (P *Particle) String() string {
	return fmt.Sprintf("%s IPC %d (%d,%d,%d) patch %d", P.Region, P.MolID(), P.Grid[0], P.Grid[1], P.Grid[2], P.Patch)
}

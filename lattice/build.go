/*
 * build.go, part of ipclattice
 *
 * Copyright 2024 The ipclattice authors
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package lattice

import (
	"math"

	ipc "github.com/Zirbo/ipclattice"
	"github.com/Zirbo/ipclattice/top"
	v3 "github.com/Zirbo/ipclattice/v3"
	"gonum.org/v1/gonum/floats"
)

const (
	// WaferOrigin is the x and y offset of the first wafer particle.
	WaferOrigin = 0.6
	// WaferUnit is the distance between neighbouring wafer particles.
	// It is nudged slightly above 1 so no patch lands exactly on a
	// periodic boundary.
	WaferUnit = 1.0000000000001
)

// cos(30 degrees), the distance between wafer columns in units of WaferUnit.
var cos30 = math.Sqrt(3) * .5

// State is a complete starting configuration.
type State struct {
	Params    Params
	Extents   *Extents
	Particles []*ipc.Particle //wafer first, then fluid.
	Top       *ipc.Topology
	Coords    *v3.Matrix //one row per atom, row i is atom i+1.
	Bonds     []*top.Term
	Angles    []*top.Term
}

// Len returns the number of IPCs in the configuration.
func (S *State) Len() int {
	return len(S.Particles)
}

// Wafer returns the particles of the wafer plane.
func (S *State) Wafer() []*ipc.Particle {
	return S.Particles[:S.Extents.Wafer()]
}

// Fluid returns the particles above the wafer.
func (S *State) Fluid() []*ipc.Particle {
	return S.Particles[S.Extents.Wafer():]
}

// Center returns the coordinates of the center of the ith particle.
// The slice is backed by the coordinate matrix.
func (S *State) Center(i int) []float64 {
	c, _, _ := S.Particles[i].Rows()
	return S.Coords.Vec(c)
}

// WaferParity returns the index of the reference patch vector used by the
// wafer particle in column ix and row iy. It alternates so neighbours do
// not have aligned patches.
func WaferParity(ix, iy int) int {
	if (iy+(ix+1)/2)%2 == 0 {
		return WaferPatchA
	}
	return WaferPatchB
}

// WaferCenter returns the center of the wafer particle in column ix and
// row iy, on the plane at height z. Even columns are shifted half a row
// up, giving a close packed arrangement.
func WaferCenter(ix, iy int, z float64) [3]float64 {
	x := WaferOrigin + WaferUnit*cos30*float64(ix)
	var y float64
	if ix%2 == 0 {
		y = WaferOrigin + (.5 + WaferUnit*float64(iy))
	} else {
		y = WaferOrigin + (WaferUnit * float64(iy))
	}
	return [3]float64{x, y, z}
}

// FluidCenter returns the center of the fluid particle with lattice
// indexes ix, iy, iz. Layer iz=0 would lie on the wafer plane, and is
// never used.
func FluidCenter(p *Params, ix, iy, iz int) [3]float64 {
	return [3]float64{
		(.5 + float64(ix)) * p.Spacing,
		(.5 + float64(iy)) * p.Spacing,
		p.Z() + float64(iz)*p.SpacingZ,
	}
}

// Build returns the starting configuration for the parameters p.
// Particles are numbered wafer first (column by column), then the fluid
// layer by layer, each layer x-major. Atom, molecule, bond and angle IDs
// follow the same order.
func Build(p *Params) (*State, error) {
	if err := p.Check(); err != nil {
		return nil, ipc.ErrDecorate(err, "Build")
	}
	S := new(State)
	S.Params = *p
	S.Extents = Resolve(p)
	n := S.Extents.Total()
	S.Particles = make([]*ipc.Particle, 0, n)
	S.Top = ipc.NewTopology(n)
	S.Coords = v3.Zeros(ipc.SitesPerParticle * n)
	S.Bonds, S.Angles = top.Build(n)
	refs := PatchVectors(p.Ecc)
	z := p.Z()
	if S.Extents.Wafer() > 0 {
		for ix := 0; ix < S.Extents.WaferX; ix++ {
			for iy := 0; iy < S.Extents.WaferY; iy++ {
				P := &ipc.Particle{Index: len(S.Particles), Region: ipc.Wafer, Grid: [3]int{ix, iy, 0}, Patch: WaferParity(ix, iy)}
				S.place(P, WaferCenter(ix, iy, z), refs.Vec(P.Patch))
			}
		}
	}
	if S.Extents.Fluid() > 0 {
		for iz := 1; iz <= S.Extents.FluidZ; iz++ {
			for ix := 0; ix < S.Extents.FluidX; ix++ {
				for iy := 0; iy < S.Extents.FluidY; iy++ {
					P := &ipc.Particle{Index: len(S.Particles), Region: ipc.Fluid, Grid: [3]int{ix, iy, iz}, Patch: FluidPatch}
					S.place(P, FluidCenter(p, ix, iy, iz), refs.Vec(P.Patch))
				}
			}
		}
	}
	S.Params.Box.WrapAll(S.Coords)
	return S, nil
}

// place appends P to the configuration, with its center at center and its
// patches at center+ref and center-ref. Build wraps them into the box.
func (S *State) place(P *ipc.Particle, center [3]float64, ref []float64) {
	c, p1, p2 := P.Rows()
	copy(S.Coords.Vec(c), center[:])
	floats.AddTo(S.Coords.Vec(p1), center[:], ref)
	floats.SubTo(S.Coords.Vec(p2), center[:], ref)
	S.Particles = append(S.Particles, P)
}

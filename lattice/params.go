/*
 * params.go, part of ipclattice
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
	"fmt"
	"math"

	ipc "github.com/Zirbo/ipclattice"
)

// MinZ0 is the lowest height allowed for the wafer plane. Lower values are
// silently raised to it, so the patches never sit on the bottom face.
const MinZ0 = 0.25

// MaxParticles is the largest number of IPCs a configuration can hold.
const MaxParticles = 100_000_000

// Params contains the input of the generator.
type Params struct {
	NX, NY   int     //particles per side of the wafer
	Z0       float64 //height of the wafer plane, see Z
	Spacing  float64 //in-plane spacing of the fluid lattice
	SpacingZ float64 //vertical spacing of the fluid lattice
	Box      ipc.Box
	Ecc      float64 //eccentricity: distance from the center to each patch
}

// Z returns the height of the wafer plane: Z0, or MinZ0 if Z0 is lower.
func (p *Params) Z() float64 {
	if p.Z0 < MinZ0 {
		return MinZ0
	}
	return p.Z0
}

// Clamped returns true if Z0 was raised to MinZ0.
func (p *Params) Clamped() bool {
	return p.Z0 < MinZ0
}

// Check returns an error if a parameter is not a finite number, if
// the box is degenerate, or if the configuration would have more than
// MaxParticles IPCs. Non-positive spacings and particle counts are
// accepted; they just give empty regions.
func (p *Params) Check() error {
	fl := map[string]float64{"z0": p.Z0, "s": p.Spacing, "sz": p.SpacingZ, "e": p.Ecc}
	for _, k := range []string{"z0", "s", "sz", "e"} {
		v := fl[k]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ipc.InvalidArgumentf("Params.Check", "%s must be a finite number, got %g", k, v)
		}
	}
	if err := p.Box.Check(); err != nil {
		return ipc.ErrDecorate(err, "Params.Check")
	}
	//counted in floating point, the integer products can overflow.
	E := Resolve(p)
	var n float64
	if E.WaferX > 0 && E.WaferY > 0 {
		n += float64(E.WaferX) * float64(E.WaferY)
	}
	if E.FluidX > 0 && E.FluidY > 0 && E.FluidZ > 0 {
		n += float64(E.FluidX) * float64(E.FluidY) * float64(E.FluidZ)
	}
	if n > MaxParticles {
		return ipc.InvalidArgumentf("Params.Check", "%.6g IPCs requested, at most %d are allowed", n, MaxParticles)
	}
	return nil
}

func (p *Params) String() string {
	return fmt.Sprintf("nPx=%d nPy=%d z0=%g s=%g sz=%g Lx=%g Ly=%g Lz=%g e=%g",
		p.NX, p.NY, p.Z0, p.Spacing, p.SpacingZ, p.Box.X, p.Box.Y, p.Box.Z, p.Ecc)
}

// Extents contains the number of particles per side of both regions. The
// fluid sides can be zero or negative, which means there is no fluid.
type Extents struct {
	WaferX, WaferY         int
	FluidX, FluidY, FluidZ int
}

// Resolve derives the extents of both regions from the parameters.
// The fluid takes floor(L/s) sites per side along x and y. Along z, one
// layer is reserved as a gap above the wafer: floor((Lz-z0)/sz)-1.
func Resolve(p *Params) *Extents {
	E := new(Extents)
	E.WaferX = p.NX
	E.WaferY = p.NY
	E.FluidX = floorDiv(p.Box.X, p.Spacing)
	E.FluidY = floorDiv(p.Box.Y, p.Spacing)
	E.FluidZ = floorDiv(p.Box.Z-p.Z(), p.SpacingZ) - 1
	return E
}

// floorDiv returns floor(l/s), or 0 if the quotient is not a finite number.
func floorDiv(l, s float64) int {
	if !(s > 0) {
		return 0
	}
	q := math.Floor(l / s)
	if math.IsNaN(q) || math.IsInf(q, 0) || math.Abs(q) > math.MaxInt32 {
		return 0
	}
	return int(q)
}

// Wafer returns the number of particles in the wafer.
func (E *Extents) Wafer() int {
	if E.WaferX <= 0 || E.WaferY <= 0 {
		return 0
	}
	return E.WaferX * E.WaferY
}

// Fluid returns the number of particles in the fluid region.
func (E *Extents) Fluid() int {
	if E.FluidX <= 0 || E.FluidY <= 0 || E.FluidZ <= 0 {
		return 0
	}
	return E.FluidX * E.FluidY * E.FluidZ
}

// Total returns the number of IPCs in the configuration.
func (E *Extents) Total() int {
	return E.Wafer() + E.Fluid()
}

// Density returns the number of IPCs per unit volume of the box.
func (E *Extents) Density(B ipc.Box) float64 {
	return float64(E.Total()) / B.Volume()
}

func (E *Extents) String() string {
	return fmt.Sprintf("wafer %dx%d (%d), fluid %dx%dx%d (%d), total %d",
		E.WaferX, E.WaferY, E.Wafer(), E.FluidX, E.FluidY, E.FluidZ, E.Fluid(), E.Total())
}

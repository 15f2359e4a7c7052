/*
 * box.go, part of ipclattice.
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

import (
	"fmt"
	"math"

	v3 "github.com/Zirbo/ipclattice/v3"
)

// Box is an orthorhombic simulation box with one corner at the origin,
// periodic along the three axes.
type Box struct {
	X, Y, Z float64
}

// Sides returns the side lengths of the box as an array.
func (B Box) Sides() [3]float64 {
	return [3]float64{B.X, B.Y, B.Z}
}

// Side returns the side of the box along the axis (0, 1 or 2).
func (B Box) Side(axis int) float64 {
	switch axis {
	case 0:
		return B.X
	case 1:
		return B.Y
	case 2:
		return B.Z
	}
	panic(fmt.Sprintf("ipclattice: Box has no axis %d", axis))
}

// Volume returns the volume of the box.
func (B Box) Volume() float64 {
	return B.X * B.Y * B.Z
}

// Check returns an error if any side of the box is not a positive,
// finite number. Periodic wrapping is undefined for such boxes.
func (B Box) Check() error {
	for i, l := range B.Sides() {
		if !(l > 0) || math.IsInf(l, 0) {
			return InvalidArgumentf("Box.Check", "box side %d must be positive and finite, got %g", i, l)
		}
	}
	return nil
}

// PBC returns the periodic image of v that lies in [0, l).
// Negative values are wrapped as well. A result that rounds up to l
// is mapped to 0, so the interval is always half-open.
func PBC(v, l float64) float64 {
	r := v - l*math.Floor(v/l)
	if r >= l {
		return 0
	}
	return r
}

// Wrap returns the periodic image of v along the given axis.
func (B Box) Wrap(v float64, axis int) float64 {
	return PBC(v, B.Side(axis))
}

// WrapVec wraps, in place, the three coordinates in v.
func (B Box) WrapVec(v []float64) {
	for i := range v[:3] {
		v[i] = B.Wrap(v[i], i)
	}
}

// WrapAll wraps, in place, every vector of the coordinates.
func (B Box) WrapAll(coords *v3.Matrix) {
	for i := 0; i < coords.NVecs(); i++ {
		B.WrapVec(coords.Vec(i))
	}
}

// Contains returns true if v is inside the half-open box.
func (B Box) Contains(v []float64) bool {
	for i, l := range B.Sides() {
		if v[i] < 0 || v[i] >= l {
			return false
		}
	}
	return true
}

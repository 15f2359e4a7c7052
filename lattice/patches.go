package lattice

import (
	"math"

	v3 "github.com/Zirbo/ipclattice/v3"
)

// PatchAngleFactors are the angles, in units of pi, of the reference patch
// directions in the xy plane. They come from the IPC model and are not
// derived from anything else.
var PatchAngleFactors = [3]float64{0.45, 0.93, 0.25}

// Indexes in the reference patch table.
const (
	WaferPatchA = 0
	WaferPatchB = 1
	FluidPatch  = 2
)

// PatchVectors returns the reference patch vectors for the eccentricity ecc,
// one per row: (ecc*cos(t), ecc*sin(t), 0) for each angle t in the table.
func PatchVectors(ecc float64) *v3.Matrix {
	p := v3.Zeros(len(PatchAngleFactors))
	for i, f := range PatchAngleFactors {
		t := f * math.Pi
		row := p.Vec(i)
		row[0] = ecc * math.Cos(t)
		row[1] = ecc * math.Sin(t)
	}
	return p
}

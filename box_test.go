package ipc

import (
	"errors"
	"math"
	"testing"

	v3 "github.com/Zirbo/ipclattice/v3"
	"github.com/stretchr/testify/assert"
)

func TestPBC(Te *testing.T) {
	cases := []struct {
		v, l, want float64
	}{
		{0.5, 5, 0.5},
		{5.2, 5, 0.2},
		{-0.2, 5, 4.8},
		{-5.2, 5, 4.8},
		{0, 5, 0},
		{5, 5, 0},
		{10, 5, 0},
	}
	for _, c := range cases {
		got := PBC(c.v, c.l)
		assert.InDelta(Te, c.want, got, 1e-12, "PBC(%g, %g)", c.v, c.l)
		assert.True(Te, got >= 0 && got < c.l, "PBC(%g, %g)=%g out of [0,L)", c.v, c.l, got)
	}
}

// A tiny negative value makes v - L*floor(v/L) round to L.
func TestPBCHalfOpen(Te *testing.T) {
	v := -1e-17
	got := PBC(v, 5.0)
	if got < 0 || got >= 5.0 {
		Te.Errorf("PBC(%g) = %g, not in [0, 5)", v, got)
	}
}

func TestPBCIdentityInside(Te *testing.T) {
	for _, v := range []float64{0.6, 1.4660254037845, 4.99999999, 0.25} {
		if PBC(v, 5) != v {
			Te.Errorf("PBC changed %v, which is inside the box", v)
		}
	}
}

func TestWrapAll(Te *testing.T) {
	B := Box{X: 2, Y: 3, Z: 4}
	coords, err := v3.NewMatrix([]float64{-0.1, 3.5, 4, 1, 1, 1, 2.5, -3.2, -8.1})
	if err != nil {
		Te.Fatal(err)
	}
	B.WrapAll(coords)
	for i := 0; i < coords.NVecs(); i++ {
		if !B.Contains(coords.Vec(i)) {
			Te.Errorf("vector %d not in the box after wrapping: %v", i, coords.Vec(i))
		}
	}
	assert.InDelta(Te, 1.9, coords.At(0, 0), 1e-12)
	assert.InDelta(Te, 0.5, coords.At(0, 1), 1e-12)
	assert.Equal(Te, 0.0, coords.At(0, 2))
	assert.InDelta(Te, 2.8, coords.At(2, 1), 1e-12)
}

func TestBoxCheck(Te *testing.T) {
	if err := (Box{5, 5, 5}).Check(); err != nil {
		Te.Error(err)
	}
	for _, b := range []Box{{0, 5, 5}, {5, -1, 5}, {5, 5, math.NaN()}, {5, math.Inf(1), 5}} {
		err := b.Check()
		if !errors.Is(err, ErrInvalidArgument) {
			Te.Errorf("box %v: expected an invalid argument error, got %v", b, err)
		}
	}
	assert.Equal(Te, 125.0, Box{5, 5, 5}.Volume())
}

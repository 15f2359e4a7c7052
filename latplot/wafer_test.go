package latplot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	ipc "github.com/Zirbo/ipclattice"
	"github.com/Zirbo/ipclattice/lattice"
	"github.com/stretchr/testify/assert"
)

func example(Te *testing.T) *lattice.State {
	return exampleEcc(Te, 0.22)
}

func exampleEcc(Te *testing.T, e float64) *lattice.State {
	p := &lattice.Params{NX: 2, NY: 2, Z0: 0.25, Spacing: 1.2, SpacingZ: 1.2, Box: ipc.Box{X: 5, Y: 5, Z: 5}, Ecc: e}
	S, err := lattice.Build(p)
	if err != nil {
		Te.Fatal(err)
	}
	return S
}

func TestWaferSites(Te *testing.T) {
	S := example(Te)
	c, p, err := WaferSites(S)
	if err != nil {
		Te.Fatal(err)
	}
	assert.Equal(Te, 4, c.NVecs())
	assert.Equal(Te, 8, p.NVecs())
	for i := 0; i < 4; i++ {
		assert.Equal(Te, S.Center(i), c.Vec(i))
		assert.Equal(Te, S.Coords.Vec(3*i+1), p.Vec(2*i))
		assert.Equal(Te, S.Coords.Vec(3*i+2), p.Vec(2*i+1))
	}
}

func TestWaferPlot(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "wafer.png")
	if err := WaferPlot(example(Te), "Test wafer", name); err != nil {
		Te.Fatal(err)
	}
	st, err := os.Stat(name)
	if err != nil {
		Te.Fatal(err)
	}
	if st.Size() == 0 {
		Te.Error("empty plot file")
	}
}

func TestWaferPlotEmpty(Te *testing.T) {
	p := &lattice.Params{Spacing: 1.2, SpacingZ: 1.2, Box: ipc.Box{X: 5, Y: 5, Z: 5}, Ecc: 0.22}
	S, err := lattice.Build(p)
	if err != nil {
		Te.Fatal(err)
	}
	err = WaferPlot(S, "", filepath.Join(Te.TempDir(), "none.png"))
	if !errors.Is(err, ipc.ErrInvalidArgument) {
		Te.Errorf("expected an invalid argument error, got %v", err)
	}
}

// All the bonds of the example are inside the box, whatever the sign of e.
func TestBondSegments(Te *testing.T) {
	for _, e := range []float64{0.22, -0.22} {
		c, p, err := WaferSites(exampleEcc(Te, e))
		if err != nil {
			Te.Fatal(err)
		}
		segs := bondSegments(c, p, e)
		assert.Equal(Te, 8, len(segs), "e=%g", e)
		for i, s := range segs {
			assert.Equal(Te, c.Vec(i/2)[0], s[0].X, "e=%g segment %d", e, i)
		}
	}
	//a bond across the boundary is left out.
	S := exampleEcc(Te, 0.7)
	c, p, err := WaferSites(S)
	if err != nil {
		Te.Fatal(err)
	}
	assert.Less(Te, len(bondSegments(c, p, -0.7)), 8)
}

func TestWaferPlotNegativeEcc(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "wafer.svg")
	if err := WaferPlot(exampleEcc(Te, -0.22), "Test wafer", name); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(name); err != nil {
		Te.Error(err)
	}
}

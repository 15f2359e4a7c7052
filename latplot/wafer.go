/*
 * wafer.go, part of ipclattice.
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

// Package latplot draws previews of IPC configurations.
package latplot

import (
	"image/color"
	"math"

	ipc "github.com/Zirbo/ipclattice"
	"github.com/Zirbo/ipclattice/lattice"
	v3 "github.com/Zirbo/ipclattice/v3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	centerColor = color.RGBA{R: 200, G: 30, B: 30, A: 255}
	patchColor  = color.RGBA{R: 30, G: 60, B: 200, A: 255}
	bondColor   = color.RGBA{R: 120, G: 120, B: 120, A: 255}
)

// Size is the side of the square image produced.
var Size = 5 * vg.Inch

// WaferSites returns the coordinates of the centers and of the patches
// (both patches of a particle in consecutive rows) of the wafer of S.
func WaferSites(S *lattice.State) (centers, patches *v3.Matrix, err error) {
	n := len(S.Wafer())
	cl := make([]int, 0, n)
	pl := make([]int, 0, 2*n)
	for _, P := range S.Wafer() {
		c, p1, p2 := P.Rows()
		cl = append(cl, c)
		pl = append(pl, p1, p2)
	}
	centers = v3.Zeros(n)
	patches = v3.Zeros(2 * n)
	if n == 0 {
		return centers, patches, nil
	}
	if err = centers.SomeVecsSafe(S.Coords, cl); err != nil {
		return nil, nil, err
	}
	if err = patches.SomeVecsSafe(S.Coords, pl); err != nil {
		return nil, nil, err
	}
	return centers, patches, nil
}

func xys(M *v3.Matrix) plotter.XYs {
	pts := make(plotter.XYs, M.NVecs())
	for i := range pts {
		v := M.Vec(i)
		pts[i].X = v[0]
		pts[i].Y = v[1]
	}
	return pts
}

// bondSegments returns one segment per center-patch bond, leaving out the
// bonds that cross a periodic boundary. The sign of ecc does not matter.
func bondSegments(centers, patches *v3.Matrix, ecc float64) []plotter.XYs {
	half := math.Abs(ecc) * 1.5
	segs := make([]plotter.XYs, 0, patches.NVecs())
	for i := 0; i < centers.NVecs(); i++ {
		c := centers.Vec(i)
		for _, j := range []int{2 * i, 2*i + 1} {
			pa := patches.Vec(j)
			if math.Abs(pa[0]-c[0]) > half || math.Abs(pa[1]-c[1]) > half {
				continue
			}
			segs = append(segs, plotter.XYs{{X: c[0], Y: c[1]}, {X: pa[0], Y: pa[1]}})
		}
	}
	return segs
}

func basicWaferPlot(title string, box ipc.Box) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.X.Min = 0
	p.X.Max = box.X
	p.Y.Min = 0
	p.Y.Max = box.Y
	p.Add(plotter.NewGrid())
	return p
}

// WaferPlot draws the wafer plane of S seen from above and saves it to
// filename. The format is taken from the extension (.png, .svg, .pdf...).
// Each center is joined to its patches unless the bond crosses a periodic
// boundary.
func WaferPlot(S *lattice.State, title, filename string) error {
	if S == nil || len(S.Wafer()) == 0 {
		return ipc.InvalidArgumentf("latplot.WaferPlot", "no wafer to plot")
	}
	centers, patches, err := WaferSites(S)
	if err != nil {
		return ipc.NewError(ipc.ErrInvalidArgument, "incomplete coordinates", filename, err, "latplot.WaferPlot")
	}
	p := basicWaferPlot(title, S.Params.Box)
	for _, seg := range bondSegments(centers, patches, S.Params.Ecc) {
		l, err := plotter.NewLine(seg)
		if err != nil {
			return ipc.NewError(ipc.ErrInvalidArgument, "can't draw a bond", filename, err, "latplot.WaferPlot")
		}
		l.LineStyle.Color = bondColor
		p.Add(l)
	}
	cs, err := plotter.NewScatter(xys(centers))
	if err != nil {
		return ipc.NewError(ipc.ErrInvalidArgument, "bad center coordinates", filename, err, "latplot.WaferPlot")
	}
	cs.GlyphStyle.Color = centerColor
	cs.GlyphStyle.Shape = draw.CircleGlyph{}
	cs.GlyphStyle.Radius = vg.Points(4)
	ps, err := plotter.NewScatter(xys(patches))
	if err != nil {
		return ipc.NewError(ipc.ErrInvalidArgument, "bad patch coordinates", filename, err, "latplot.WaferPlot")
	}
	ps.GlyphStyle.Color = patchColor
	ps.GlyphStyle.Shape = draw.CircleGlyph{}
	ps.GlyphStyle.Radius = vg.Points(2)
	p.Add(cs, ps)
	p.Legend.Add("centers", cs)
	p.Legend.Add("patches", ps)
	p.Legend.Top = true
	if err := p.Save(Size, Size, filename); err != nil {
		return ipc.NewError(ipc.ErrFileWrite, "can't save the plot", filename, err, "latplot.WaferPlot")
	}
	return nil
}

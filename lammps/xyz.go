/*
 * xyz.go, part of ipclattice.
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

package lammps

import (
	"bufio"
	"fmt"
	"io"
	"os"

	ipc "github.com/Zirbo/ipclattice"
	"github.com/Zirbo/ipclattice/lattice"
)

// Element-like labels used for the sites in XYZ files, so common viewers
// can tell centers from patches.
const (
	CenterSymbol = "C"
	PatchSymbol  = "P"
)

// WriteXYZ writes the sites of S to out as a single XYZ frame, for
// visualization. The comment line holds the box sides.
func WriteXYZ(out io.Writer, S *lattice.State) error {
	if S == nil || S.Top == nil || S.Coords == nil || S.Coords.NVecs() != S.Top.Len() {
		return ipc.InvalidArgumentf("lammps.WriteXYZ", "given an incomplete configuration")
	}
	w := bufio.NewWriter(out)
	B := S.Params.Box
	fmt.Fprintf(w, "%-4d\n", S.Top.Len())
	fmt.Fprintf(w, "Lx=%g Ly=%g Lz=%g\n", B.X, B.Y, B.Z)
	for i, at := range S.Top.Atoms {
		c := S.Coords.Vec(i)
		sym := PatchSymbol
		if at.IsCenter() {
			sym = CenterSymbol
		}
		fmt.Fprintf(w, "%-2s  %8.3f%8.3f%8.3f \n", sym, c[0], c[1], c[2])
	}
	if err := w.Flush(); err != nil {
		return ipc.NewError(ipc.ErrFileWrite, "can't write XYZ frame", "", err, "lammps.WriteXYZ")
	}
	return nil
}

// WriteXYZFile writes the sites of S to the XYZ file name, which is
// overwritten if it exists.
func WriteXYZFile(name string, S *lattice.State) error {
	out, err := os.Create(name)
	if err != nil {
		return ipc.NewError(ipc.ErrFileWrite, "can't create XYZ file", name, err, "lammps.WriteXYZFile")
	}
	err = WriteXYZ(out, S)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = ipc.NewError(ipc.ErrFileWrite, "can't close XYZ file", name, cerr, "lammps.WriteXYZFile")
	}
	return ipc.ErrDecorate(err, "lammps.WriteXYZFile")
}

/*
 * write.go, part of ipclattice.
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
	"path/filepath"
	"strconv"
	"strings"

	ipc "github.com/Zirbo/ipclattice"
	"github.com/Zirbo/ipclattice/lattice"
	"github.com/Zirbo/ipclattice/top"
	"github.com/klauspost/compress/zstd"
)

// DefaultName is the name of the data file the generator writes.
const DefaultName = "IPC_startingstate_manner.txt"

// Source is the attribution written in the header of every file.
const Source = "https://github.com/Zirbo/OSPC_LAMMPS"

const (
	atomsComment  = "#   atom-ID    mol-ID   atom-type    charge    x               y               z"
	bondsComment  = "#  ID bond-type atom-1 atom-2"
	anglesComment = "#  ID    angle-type atom-1 atom-2 atom-3  (atom-2 is the center atom in angle)"
	massesComment = "#  atomtype, mass"
)

// pyFloat formats f with the shortest representation that round-trips,
// always with a decimal point ("2.0", "-1.0", "0.5").
func pyFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEIN") {
		s += ".0"
	}
	return s
}

// AtomLine returns the line of the Atoms section for atom at, with
// coordinates c. The line has no trailing newline.
func AtomLine(at *ipc.Atom, c []float64) string {
	return fmt.Sprintf("%10d%10d%10d%10s%16.8f%16.8f%16.8f", at.ID, at.MolID, at.Type, pyFloat(at.Charge), c[0], c[1], c[2])
}

type lammpser interface {
	ToLammps() string
}

func printLammps[L ~[]E, E lammpser](w *bufio.Writer, l L) {
	for _, v := range l {
		w.WriteString("\n")
		w.WriteString(v.ToLammps())
	}
}

// Write writes the configuration S to out in LAMMPS data file format.
func Write(out io.Writer, S *lattice.State) error {
	if S == nil || S.Top == nil || S.Coords == nil {
		return ipc.InvalidArgumentf("lammps.Write", "given an incomplete configuration")
	}
	natoms := S.Top.Len()
	if S.Coords.NVecs() != natoms {
		return ipc.InvalidArgumentf("lammps.Write", "%d atoms but %d coordinates", natoms, S.Coords.NVecs())
	}
	n := S.Top.Particles()
	w := bufio.NewWriter(out)

	w.WriteString("# 3D starting configuration for LAMMPS created with a script available at\n")
	w.WriteString("# " + Source + "\n")
	fmt.Fprintf(w, "# The plane particles are from 1 to %d", S.Extents.Wafer())
	w.WriteString("\n")

	fmt.Fprintf(w, "\n%16d atoms", natoms)
	fmt.Fprintf(w, "\n%16d bonds", len(S.Bonds))
	fmt.Fprintf(w, "\n%16d angles", len(S.Angles))
	w.WriteString("\n")

	fmt.Fprintf(w, "\n%16d atom types", len(ipc.TypeMasses))
	fmt.Fprintf(w, "\n%16d bond types", top.NBondTypes)
	fmt.Fprintf(w, "\n%16d angle types", top.NAngleTypes)
	w.WriteString("\n")

	labels := [3]string{"xlo xhi", "ylo yhi", "zlo zhi"}
	for i, l := range S.Params.Box.Sides() {
		fmt.Fprintf(w, "\n%16.8f%16.8f     %s", 0.0, l, labels[i])
	}

	w.WriteString("\n")
	w.WriteString("\nMasses")
	w.WriteString("\n" + massesComment)
	for i, m := range ipc.TypeMasses {
		fmt.Fprintf(w, "\n%10d%10s", i+1, pyFloat(m))
	}

	w.WriteString("\n")
	w.WriteString("\nAtoms")
	w.WriteString("\n" + atomsComment)
	for i := 0; i < natoms; i++ {
		w.WriteString("\n")
		w.WriteString(AtomLine(S.Top.Atom(i), S.Coords.Vec(i)))
	}

	w.WriteString("\n")
	w.WriteString("\nBonds")
	w.WriteString("\n" + bondsComment)
	printLammps(w, S.Bonds)

	w.WriteString("\n")
	w.WriteString("\nAngles")
	w.WriteString("\n" + anglesComment)
	printLammps(w, S.Angles)
	w.WriteString("\n")

	//bufio.Writer keeps the first error it finds.
	if err := w.Flush(); err != nil {
		return ipc.NewError(ipc.ErrFileWrite, fmt.Sprintf("writing %d IPCs", n), "", err, "lammps.Write")
	}
	return nil
}

// WriteFile writes the configuration S to the file name. The data goes to a
// temporary file in the same directory, which is renamed to name only after
// it has been completely written, so name is either fully written or left
// untouched. If name ends in ".zst" the file is compressed with z-standard.
func WriteFile(name string, S *lattice.State) (err error) {
	dir := filepath.Dir(name)
	tmp, err := os.CreateTemp(dir, ".ipclattice-*.tmp")
	if err != nil {
		return ipc.NewError(ipc.ErrFileWrite, "can't create temporary file", name, err, "lammps.WriteFile")
	}
	var enc *zstd.Encoder
	defer func() {
		if err != nil {
			if enc != nil {
				enc.Close()
			}
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	var out io.Writer = tmp
	if strings.HasSuffix(strings.ToLower(name), ".zst") {
		enc, err = zstd.NewWriter(tmp, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return ipc.NewError(ipc.ErrFileWrite, "can't start the compressor", name, err, "lammps.WriteFile")
		}
		out = enc
	}
	if err = Write(out, S); err != nil {
		return ipc.ErrDecorate(err, "lammps.WriteFile")
	}
	if enc != nil {
		err = enc.Close()
		enc = nil
		if err != nil {
			return ipc.NewError(ipc.ErrFileWrite, "can't finish the compressed stream", name, err, "lammps.WriteFile")
		}
	}
	if err = tmp.Chmod(0o644); err != nil {
		return ipc.NewError(ipc.ErrFileWrite, "can't set permissions", name, err, "lammps.WriteFile")
	}
	if err = tmp.Close(); err != nil {
		return ipc.NewError(ipc.ErrFileWrite, "can't close temporary file", name, err, "lammps.WriteFile")
	}
	if err = os.Rename(tmp.Name(), name); err != nil {
		return ipc.NewError(ipc.ErrFileWrite, "can't move the data file into place", name, err, "lammps.WriteFile")
	}
	return nil
}

/*
 * read.go, part of ipclattice.
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
	"strconv"
	"strings"

	ipc "github.com/Zirbo/ipclattice"
	"github.com/Zirbo/ipclattice/top"
	v3 "github.com/Zirbo/ipclattice/v3"
	"github.com/klauspost/compress/zstd"
)

// Header contains the counts and box bounds of a data file.
type Header struct {
	Comments                         []string
	Atoms, Bonds, Angles             int
	AtomTypes, BondTypes, AngleTypes int
	Lo, Hi                           [3]float64
}

// Box returns the box described by the header, assuming one corner at the origin.
func (H *Header) Box() ipc.Box {
	return ipc.Box{X: H.Hi[0] - H.Lo[0], Y: H.Hi[1] - H.Lo[1], Z: H.Hi[2] - H.Lo[2]}
}

// Data is the content of a data file.
type Data struct {
	Header *Header
	Masses map[int]float64
	Top    *ipc.Topology
	Coords *v3.Matrix
	Bonds  []*top.Term
	Angles []*top.Term
}

func parseints(s ...string) ([]int, error) {
	r := make([]int, 0, len(s))
	for _, v := range s {
		i, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		r = append(r, i)
	}
	return r, nil
}

func parsefloats(s ...string) ([]float64, error) {
	r := make([]float64, 0, len(s))
	for _, v := range s {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
		r = append(r, f)
	}
	return r, nil
}

// headerLine fills H with the data in one line of the header, which
// has already been split in fields.
func (H *Header) headerLine(f []string) error {
	l := len(f)
	switch {
	case l == 2 && f[1] == "atoms":
		return atoiInto(&H.Atoms, f[0])
	case l == 2 && f[1] == "bonds":
		return atoiInto(&H.Bonds, f[0])
	case l == 2 && f[1] == "angles":
		return atoiInto(&H.Angles, f[0])
	case l == 3 && f[2] == "types":
		switch f[1] {
		case "atom":
			return atoiInto(&H.AtomTypes, f[0])
		case "bond":
			return atoiInto(&H.BondTypes, f[0])
		case "angle":
			return atoiInto(&H.AngleTypes, f[0])
		}
	case l == 4 && strings.HasSuffix(f[2], "lo"):
		axis := strings.Index("xyz", f[2][:1])
		if axis < 0 {
			break
		}
		b, err := parsefloats(f[0], f[1])
		if err != nil {
			return err
		}
		H.Lo[axis], H.Hi[axis] = b[0], b[1]
		return nil
	}
	//keywords we don't write are ignored.
	return nil
}

func atoiInto(dest *int, s string) error {
	i, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*dest = i
	return nil
}

var sections = map[string]bool{"Masses": true, "Atoms": true, "Bonds": true, "Angles": true}

// ReadHeader reads only the header of a data file, stopping at the first
// section.
func ReadHeader(r io.Reader) (*Header, error) {
	H := new(Header)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "#") {
			H.Comments = append(H.Comments, line)
			continue
		}
		if line == "" {
			continue
		}
		if sections[line] {
			return H, nil
		}
		if err := H.headerLine(strings.Fields(line)); err != nil {
			return nil, ipc.NewError(ipc.ErrInvalidArgument, fmt.Sprintf("bad header line %q", line), "", err, "lammps.ReadHeader")
		}
	}
	if err := sc.Err(); err != nil {
		return nil, ipc.NewError(ipc.ErrInvalidArgument, "can't read data file", "", err, "lammps.ReadHeader")
	}
	return H, nil
}

// Read reads a complete data file, in the format written by Write, from r.
func Read(r io.Reader) (*Data, error) {
	D := &Data{Header: new(Header), Masses: make(map[int]float64)}
	sc := bufio.NewScanner(r)
	section := ""
	atom := 0
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if section == "" && strings.HasPrefix(line, "#") {
			D.Header.Comments = append(D.Header.Comments, line)
			continue
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if sections[line] {
			section = line
			if section == "Atoms" {
				D.Top = &ipc.Topology{Atoms: make([]*ipc.Atom, 0, D.Header.Atoms)}
				D.Coords = v3.Zeros(D.Header.Atoms)
			}
			continue
		}
		f := strings.Fields(line)
		var err error
		switch section {
		case "":
			err = D.Header.headerLine(f)
		case "Masses":
			var m []float64
			if len(f) < 2 {
				err = fmt.Errorf("expected 2 fields")
				break
			}
			m, err = parsefloats(f[0], f[1])
			if err == nil {
				D.Masses[int(m[0])] = m[1]
			}
		case "Atoms":
			err = D.atomLine(f, atom)
			atom++
		case "Bonds", "Angles":
			var T *top.Term
			T, err = termLine(f, section)
			if section == "Bonds" {
				D.Bonds = append(D.Bonds, T)
			} else {
				D.Angles = append(D.Angles, T)
			}
		}
		if err != nil {
			return nil, ipc.NewError(ipc.ErrInvalidArgument, fmt.Sprintf("bad line %d in section %q", lineno, section), "", err, "lammps.Read")
		}
	}
	if err := sc.Err(); err != nil {
		return nil, ipc.NewError(ipc.ErrInvalidArgument, "can't read data file", "", err, "lammps.Read")
	}
	if D.Top == nil {
		D.Top = new(ipc.Topology)
		D.Coords = v3.Zeros(0)
	}
	if D.Top.Len() != D.Header.Atoms || len(D.Bonds) != D.Header.Bonds || len(D.Angles) != D.Header.Angles {
		return nil, ipc.InvalidArgumentf("lammps.Read", "header declares %d/%d/%d atoms/bonds/angles, found %d/%d/%d",
			D.Header.Atoms, D.Header.Bonds, D.Header.Angles, D.Top.Len(), len(D.Bonds), len(D.Angles))
	}
	return D, nil
}

func (D *Data) atomLine(f []string, i int) error {
	if len(f) < 7 {
		return fmt.Errorf("expected 7 fields, got %d", len(f))
	}
	if i >= D.Header.Atoms {
		return fmt.Errorf("more atoms than the %d declared", D.Header.Atoms)
	}
	ints, err := parseints(f[:3]...)
	if err != nil {
		return err
	}
	fl, err := parsefloats(f[3:7]...)
	if err != nil {
		return err
	}
	D.Top.Atoms = append(D.Top.Atoms, &ipc.Atom{ID: ints[0], MolID: ints[1], Type: ints[2], Charge: fl[0]})
	copy(D.Coords.Vec(i), fl[1:])
	return nil
}

func termLine(f []string, section string) (*top.Term, error) {
	n := 4
	if section == "Angles" {
		n = 5
	}
	if len(f) < n {
		return nil, fmt.Errorf("expected %d fields, got %d", n, len(f))
	}
	ints, err := parseints(f[:n]...)
	if err != nil {
		return nil, err
	}
	return &top.Term{ID: ints[0], FuncType: uint(ints[1]), IDs: ints[2:]}, nil
}

// ReadFile reads the data file name. Files ending in ".zst" are
// decompressed on the fly.
func ReadFile(name string) (*Data, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, ipc.NewError(ipc.ErrInvalidArgument, "can't open data file", name, err, "lammps.ReadFile")
	}
	defer f.Close()
	var r io.Reader = bufio.NewReader(f)
	if strings.HasSuffix(strings.ToLower(name), ".zst") {
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, ipc.NewError(ipc.ErrInvalidArgument, "can't start the decompressor", name, err, "lammps.ReadFile")
		}
		defer dec.Close()
		r = dec
	}
	D, err := Read(r)
	return D, ipc.ErrDecorate(err, "lammps.ReadFile")
}

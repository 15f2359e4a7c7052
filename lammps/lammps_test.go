package lammps

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	ipc "github.com/Zirbo/ipclattice"
	"github.com/Zirbo/ipclattice/lattice"
	"github.com/stretchr/testify/assert"
)

// 1 1 0.25 1.2 1.2 2.5 2.5 2.7 0.7
const golden = `# 3D starting configuration for LAMMPS created with a script available at
# https://github.com/Zirbo/OSPC_LAMMPS
# The plane particles are from 1 to 1

              15 atoms
              10 bonds
               5 angles

               2 atom types
               1 bond types
               1 angle types

      0.00000000      2.50000000     xlo xhi
      0.00000000      2.50000000     ylo yhi
      0.00000000      2.70000000     zlo zhi

Masses
#  atomtype, mass
         1       2.0
         2       0.5

Atoms
#   atom-ID    mol-ID   atom-type    charge    x               y               z
         1         1         1      -1.0      0.60000000      1.10000000      0.25000000
         2         1         2       0.5      0.70950413      1.79138184      0.25000000
         3         1         2       0.5      0.49049587      0.40861816      0.25000000
         4         2         1      -1.0      0.60000000      0.60000000      1.45000000
         5         2         2       0.5      1.09497475      1.09497475      1.45000000
         6         2         2       0.5      0.10502525      0.10502525      1.45000000
         7         3         1      -1.0      0.60000000      1.80000000      1.45000000
         8         3         2       0.5      1.09497475      2.29497475      1.45000000
         9         3         2       0.5      0.10502525      1.30502525      1.45000000
        10         4         1      -1.0      1.80000000      0.60000000      1.45000000
        11         4         2       0.5      2.29497475      1.09497475      1.45000000
        12         4         2       0.5      1.30502525      0.10502525      1.45000000
        13         5         1      -1.0      1.80000000      1.80000000      1.45000000
        14         5         2       0.5      2.29497475      2.29497475      1.45000000
        15         5         2       0.5      1.30502525      1.30502525      1.45000000

Bonds
#  ID bond-type atom-1 atom-2
         1         1         1         2
         2         1         1         3
         3         1         4         5
         4         1         4         6
         5         1         7         8
         6         1         7         9
         7         1        10        11
         8         1        10        12
         9         1        13        14
        10         1        13        15

Angles
#  ID    angle-type atom-1 atom-2 atom-3  (atom-2 is the center atom in angle)
         1         1         2         1         3
         2         1         5         4         6
         3         1         8         7         9
         4         1        11        10        12
         5         1        14        13        15
`

// SHA-256 of the file for 2 2 0.25 1.2 1.2 5 5 5 0.22
const exampleSum = "6c6c4f4e87ebb709801727a7a386eab1f3d4e9b123ea1d6d83e5856a16facf9a"

func build(Te *testing.T, p *lattice.Params) *lattice.State {
	S, err := lattice.Build(p)
	if err != nil {
		Te.Fatal(err)
	}
	return S
}

func smallParams() *lattice.Params {
	return &lattice.Params{NX: 1, NY: 1, Z0: 0.25, Spacing: 1.2, SpacingZ: 1.2, Box: ipc.Box{X: 2.5, Y: 2.5, Z: 2.7}, Ecc: 0.7}
}

func exampleParams() *lattice.Params {
	return &lattice.Params{NX: 2, NY: 2, Z0: 0.25, Spacing: 1.2, SpacingZ: 1.2, Box: ipc.Box{X: 5, Y: 5, Z: 5}, Ecc: 0.22}
}

func TestWriteGolden(Te *testing.T) {
	var b bytes.Buffer
	if err := Write(&b, build(Te, smallParams())); err != nil {
		Te.Fatal(err)
	}
	if b.String() != golden {
		Te.Errorf("output differs from the reference file:\n%s", b.String())
	}
}

func TestWriteExample(Te *testing.T) {
	var b bytes.Buffer
	if err := Write(&b, build(Te, exampleParams())); err != nil {
		Te.Fatal(err)
	}
	sum := fmt.Sprintf("%x", sha256.Sum256(b.Bytes()))
	assert.Equal(Te, exampleSum, sum, "checksum of the example file")
	assert.Equal(Te, 15124, b.Len())
	lines := strings.Split(b.String(), "\n")
	assert.Equal(Te, "# The plane particles are from 1 to 4", lines[2])
	assert.Equal(Te, "             108 atoms", lines[4])
	assert.Equal(Te, "              72 bonds", lines[5])
	assert.Equal(Te, "              36 angles", lines[6])
	assert.True(Te, strings.HasSuffix(b.String(), "\n"))
	assert.False(Te, strings.HasSuffix(b.String(), "\n\n"))
}

func TestWriteDeterministic(Te *testing.T) {
	var b1, b2 bytes.Buffer
	if err := Write(&b1, build(Te, exampleParams())); err != nil {
		Te.Fatal(err)
	}
	if err := Write(&b2, build(Te, exampleParams())); err != nil {
		Te.Fatal(err)
	}
	if !bytes.Equal(b1.Bytes(), b2.Bytes()) {
		Te.Error("two runs with the same parameters gave different files")
	}
}

func TestWriteEmptySections(Te *testing.T) {
	p := smallParams()
	p.NX, p.NY = 0, 0
	p.Box.Z = 1
	var b bytes.Buffer
	if err := Write(&b, build(Te, p)); err != nil {
		Te.Fatal(err)
	}
	s := b.String()
	assert.Contains(Te, s, "# The plane particles are from 1 to 0\n")
	assert.Contains(Te, s, "               0 atoms\n")
	assert.True(Te, strings.HasSuffix(s, "\nAngles\n"+anglesComment+"\n"), "empty angles section")
	assert.Contains(Te, s, "\nBonds\n"+bondsComment+"\n\nAngles")
}

func TestWriteIncomplete(Te *testing.T) {
	var b bytes.Buffer
	err := Write(&b, nil)
	if !errors.Is(err, ipc.ErrInvalidArgument) {
		Te.Errorf("expected an invalid argument error, got %v", err)
	}
}

func TestReadBack(Te *testing.T) {
	S := build(Te, exampleParams())
	var b bytes.Buffer
	if err := Write(&b, S); err != nil {
		Te.Fatal(err)
	}
	D, err := Read(&b)
	if err != nil {
		Te.Fatal(err)
	}
	H := D.Header
	assert.Equal(Te, 3, len(H.Comments))
	assert.Equal(Te, 108, H.Atoms)
	assert.Equal(Te, 72, H.Bonds)
	assert.Equal(Te, 36, H.Angles)
	assert.Equal(Te, 2, H.AtomTypes)
	assert.Equal(Te, 1, H.BondTypes)
	assert.Equal(Te, 1, H.AngleTypes)
	assert.Equal(Te, ipc.Box{X: 5, Y: 5, Z: 5}, H.Box())
	assert.Equal(Te, map[int]float64{1: 2.0, 2: 0.5}, D.Masses)
	for i, at := range D.Top.Atoms {
		want := S.Top.Atom(i)
		if *at != *want {
			Te.Errorf("atom %d: got %+v want %+v", i, at, want)
		}
		for j, v := range D.Coords.Vec(i) {
			assert.InDelta(Te, S.Coords.Vec(i)[j], v, 1e-8, "atom %d coordinate %d", i, j)
		}
	}
	for i, T := range D.Angles {
		assert.Equal(Te, S.Angles[i].IDs, T.IDs, "angle %d", i+1)
	}
	for i, T := range D.Bonds {
		assert.Equal(Te, S.Bonds[i].ToLammps(), T.ToLammps(), "bond %d", i+1)
	}
}

func TestReadHeader(Te *testing.T) {
	H, err := ReadHeader(strings.NewReader(golden))
	if err != nil {
		Te.Fatal(err)
	}
	assert.Equal(Te, "# The plane particles are from 1 to 1", H.Comments[2])
	assert.Equal(Te, 15, H.Atoms)
	assert.Equal(Te, 10, H.Bonds)
	assert.Equal(Te, 5, H.Angles)
	assert.Equal(Te, [3]float64{2.5, 2.5, 2.7}, H.Hi)
	assert.Equal(Te, [3]float64{}, H.Lo)
	_, err = ReadHeader(strings.NewReader("many atoms\n"))
	if !errors.Is(err, ipc.ErrInvalidArgument) {
		Te.Errorf("expected an invalid argument error, got %v", err)
	}
}

func TestReadCountMismatch(Te *testing.T) {
	bad := strings.Replace(golden, "              15 atoms", "              16 atoms", 1)
	_, err := Read(strings.NewReader(bad))
	if !errors.Is(err, ipc.ErrInvalidArgument) {
		Te.Errorf("expected an invalid argument error, got %v", err)
	}
	bad = strings.Replace(golden, "      0.5      1.30502525      1.30502525", "      0.5      1.30502525      xx", 1)
	if _, err = Read(strings.NewReader(bad)); err == nil {
		Te.Error("a malformed atom line was accepted")
	}
}

func TestWriteFile(Te *testing.T) {
	dir := Te.TempDir()
	S := build(Te, smallParams())
	for _, name := range []string{DefaultName, DefaultName + ".zst"} {
		path := filepath.Join(dir, name)
		if err := WriteFile(path, S); err != nil {
			Te.Fatal(err)
		}
		st, err := os.Stat(path)
		if err != nil {
			Te.Fatal(err)
		}
		assert.Equal(Te, os.FileMode(0o644), st.Mode().Perm(), name)
		D, err := ReadFile(path)
		if err != nil {
			Te.Fatal(err)
		}
		assert.Equal(Te, 15, D.Header.Atoms, name)
		assert.Equal(Te, 5, len(D.Angles), name)
	}
	plain, err := os.ReadFile(filepath.Join(dir, DefaultName))
	if err != nil {
		Te.Fatal(err)
	}
	assert.Equal(Te, golden, string(plain))
	packed, err := os.ReadFile(filepath.Join(dir, DefaultName+".zst"))
	if err != nil {
		Te.Fatal(err)
	}
	if bytes.Equal(plain, packed) {
		Te.Error("the .zst file was not compressed")
	}
	//no temporary files left behind
	entries, _ := os.ReadDir(dir)
	assert.Equal(Te, 2, len(entries))
}

func TestWriteFileOverwrite(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), DefaultName)
	if err := os.WriteFile(path, []byte("old content\n"), 0o644); err != nil {
		Te.Fatal(err)
	}
	if err := WriteFile(path, build(Te, smallParams())); err != nil {
		Te.Fatal(err)
	}
	b, _ := os.ReadFile(path)
	assert.Equal(Te, golden, string(b))
}

func TestWriteFileError(Te *testing.T) {
	dir := Te.TempDir()
	path := filepath.Join(dir, "missing", DefaultName)
	err := WriteFile(path, build(Te, smallParams()))
	if !errors.Is(err, ipc.ErrFileWrite) {
		Te.Fatalf("expected a file write error, got %v", err)
	}
	fmt.Println(err)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		Te.Error("a file was created after a failed write")
	}
	//an invalid configuration leaves nothing in place either.
	path = filepath.Join(dir, DefaultName)
	if err = WriteFile(path, nil); err == nil {
		Te.Error("writing a nil configuration succeeded")
	}
	entries, _ := os.ReadDir(dir)
	assert.Equal(Te, 0, len(entries))
}

func TestPyFloat(Te *testing.T) {
	for f, s := range map[float64]string{-1: "-1.0", 0.5: "0.5", 2: "2.0", 0.25: "0.25"} {
		assert.Equal(Te, s, pyFloat(f))
	}
}

func TestWriteXYZ(Te *testing.T) {
	var b bytes.Buffer
	if err := WriteXYZ(&b, build(Te, smallParams())); err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	assert.Equal(Te, 17, len(lines))
	assert.Equal(Te, "15  ", lines[0])
	assert.Equal(Te, "Lx=2.5 Ly=2.5 Lz=2.7", lines[1])
	assert.Equal(Te, "C      0.600   1.100   0.250 ", lines[2])
	assert.Equal(Te, "P      0.710   1.791   0.250 ", lines[3])
}

func TestWriteXYZFile(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "sites.xyz")
	if err := WriteXYZFile(name, build(Te, exampleParams())); err != nil {
		Te.Fatal(err)
	}
	b, err := os.ReadFile(name)
	if err != nil {
		Te.Fatal(err)
	}
	assert.Equal(Te, 110, strings.Count(string(b), "\n"))
	err = WriteXYZFile(filepath.Join(Te.TempDir(), "missing", "sites.xyz"), nil)
	if !errors.Is(err, ipc.ErrFileWrite) {
		Te.Errorf("expected a file write error, got %v", err)
	}
}

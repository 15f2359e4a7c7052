/*
 * main.go, part of ipclattice.
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

// ipcstart writes a LAMMPS starting configuration with a single wafer
// plane of IPCs and a cubic fluid above it.
//
// Usage:
//
//	ipcstart nPx nPy z0 s sz Lx Ly Lz e
//
// The output goes to IPC_startingstate_manner.txt, unless a configuration
// file named by IPCLATTICE_CONFIG says otherwise.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	ipc "github.com/Zirbo/ipclattice"
	"github.com/Zirbo/ipclattice/config"
	"github.com/Zirbo/ipclattice/lammps"
	"github.com/Zirbo/ipclattice/latplot"
	"github.com/Zirbo/ipclattice/lattice"
)

var argNames = [...]string{"nPx", "nPy", "z0", "s", "sz", "Lx", "Ly", "Lz", "e"}

var argHelp = [...]string{
	"number of particles in the X side",
	"number of particles in the Y side",
	"height of the plane",
	"spacing of the fluid in the x-y plane",
	"spacing of the fluid in the z direction",
	"size of the simulation box side base (x)",
	"size of the simulation box side base (y)",
	"height of the simulation box side (z)",
	"eccentricity of the IPCs",
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "usage: %s nPx nPy z0 s sz Lx Ly Lz e\n\n", os.Args[0])
	fmt.Fprintln(out, "Creates a LAMMPS starting configuration with a single wafer plane.")
	fmt.Fprintln(out, "Suggested values for a cubic box: 14 12 0.25 1.2 1.2 12.4 12.4 12.4 0.22")
	fmt.Fprintln(out, "Suggested values for an elongated box for gravity experiments: 14 12 0.25 1.2 sz 12.4 12.4 Lz 0.22")
	fmt.Fprintln(out, "\npositional arguments:")
	for i, n := range argNames {
		fmt.Fprintf(out, "  %-4s %s\n", n, argHelp[i])
	}
	fmt.Fprintf(out, "\nThe environment variable %s can name a configuration file:\n", config.EnvVar)
	fmt.Fprintf(out, "  [output]\n  data = %s\n  plot = wafer.png\n  xyz = sites.xyz\n", lammps.DefaultName)
}

// parseArgs reads the parameters from the 9 positional arguments, and
// checks them.
func parseArgs(args []string) (*lattice.Params, error) {
	if len(args) != len(argNames) {
		return nil, ipc.InvalidArgumentf("parseArgs", "expected %d arguments, got %d", len(argNames), len(args))
	}
	ints := make([]int, 2)
	for i := range ints {
		v, err := strconv.Atoi(args[i])
		if err != nil {
			return nil, ipc.NewError(ipc.ErrInvalidArgument, fmt.Sprintf("%s must be an integer, got %q", argNames[i], args[i]), "", err, "parseArgs")
		}
		ints[i] = v
	}
	fl := make([]float64, len(args)-2)
	for i := range fl {
		v, err := strconv.ParseFloat(args[i+2], 64)
		if err != nil {
			return nil, ipc.NewError(ipc.ErrInvalidArgument, fmt.Sprintf("%s must be a number, got %q", argNames[i+2], args[i+2]), "", err, "parseArgs")
		}
		fl[i] = v
	}
	p := &lattice.Params{
		NX:       ints[0],
		NY:       ints[1],
		Z0:       fl[0],
		Spacing:  fl[1],
		SpacingZ: fl[2],
		Box:      ipc.Box{X: fl[3], Y: fl[4], Z: fl[5]},
		Ecc:      fl[6],
	}
	return p, ipc.ErrDecorate(p.Check(), "parseArgs")
}

// cmdArgs returns the positional arguments. Flags are only looked for
// when the first argument is not a number, so negative values are not
// taken for flags.
func cmdArgs() []string {
	args := os.Args[1:]
	if len(args) > 0 {
		if _, err := strconv.ParseFloat(args[0], 64); err == nil {
			return args
		}
	}
	flag.Parse()
	return flag.Args()
}

// run builds the configuration for p and writes the files named in conf.
// The echo of parameters and counts goes to out.
func run(p *lattice.Params, conf *config.Config, out io.Writer) error {
	if p.Clamped() {
		log.Printf("z0=%g is too low, using %g", p.Z0, lattice.MinZ0)
	}
	S, err := lattice.Build(p)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, p)
	fmt.Fprintln(out, S.Extents)
	fmt.Fprintf(out, "density %g, total charge %g\n", S.Extents.Density(p.Box), S.Top.Charge())
	if err := lammps.WriteFile(conf.Output.Data, S); err != nil {
		return err
	}
	fmt.Fprintf(out, "%d IPCs written to %s, the plane particles are from 1 to %d\n", S.Len(), conf.Output.Data, S.Extents.Wafer())
	if conf.Output.XYZ != "" {
		if err := lammps.WriteXYZFile(conf.Output.XYZ, S); err != nil {
			return err
		}
	}
	if conf.Output.Plot == "" {
		return nil
	}
	if S.Extents.Wafer() == 0 {
		log.Printf("empty wafer, no preview written to %s", conf.Output.Plot)
		return nil
	}
	return latplot.WaferPlot(S, "Wafer plane", conf.Output.Plot)
}

func main() {
	flag.Usage = usage
	p, err := parseArgs(cmdArgs())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}
	conf, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}
	if err := run(p, conf, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

/*
 * doc.go, part of ipclattice.
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

/*
Package ipc is the main package of the ipclattice library. It provides the
site, particle and box types used to build LAMMPS starting configurations
of inverse patchy colloids (IPCs).

	**ipclattice Capabilities**

	Builds a single wafer plane of close packed IPCs, with alternating patch
	orientations, and a simple cubic "fluid" of IPCs stacked above it
	(package lattice).

	Builds the bond and angle topology that keeps each IPC rigid (package top).

	Writes the result as a LAMMPS data file, plain or zstd-compressed, and
	reads back its header (package lammps).

	Plots the wafer plane (package latplot).

Each IPC is a rigid body of three sites: a negatively charged center and two
positively charged patches, placed at a distance equal to the eccentricity
from the center. Particle i (0-based) owns the atoms 3i+1, 3i+2 and 3i+3, the
bonds 2i+1 and 2i+2, and the angle i+1.

Site coordinates are kept in a v3.Matrix, one row per atom, separated from
the topology (the Atom slice), which never changes after construction.
*/
package ipc

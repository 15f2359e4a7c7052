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
Package lammps writes IPC starting configurations as LAMMPS data files
(atom style "full"), and reads them back.

******************** Format ***************************************************

The file is plain ASCII. Lines are separated by "\n" and the file ends with
a single "\n". In order:

Three comment lines, the last one telling the range of IPCs in the wafer:

	# 3D starting configuration for LAMMPS created with a script available at
	# https://github.com/Zirbo/OSPC_LAMMPS
	# The plane particles are from 1 to N

One empty line. The counts, right-justified in 16 columns:

	             108 atoms
	              72 bonds
	              36 angles

One empty line, and the type counts (always 2, 1 and 1) in the same layout
("atom types", "bond types", "angle types"). One empty line, and the box
bounds: two %16.8f fields followed by five spaces and "xlo xhi" (then y, z).

One empty line, "Masses", a comment line, and one line per atom type: the
type in 10 columns and the mass ("2.0", "0.5") right-justified in 10
columns.

One empty line, "Atoms", a comment line, and one line per atom: ID, molecule
ID and type in 10 columns each, the charge ("-1.0" or "0.5") in 10 columns,
and x, y, z as %16.8f.

One empty line, "Bonds", a comment line, one line per bond: ID, type, atom 1,
atom 2, 10 columns each.

One empty line, "Angles", a comment line, one line per angle: ID, type,
atom 1, atom 2 (the vertex), atom 3, 10 columns each.

Files with a name ending in ".zst" are compressed with z-standard.

*******************************************************************************
*/
package lammps

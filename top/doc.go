/*
 * doc.go, part of ipclattice
 *
 * Copyright 2024 The ipclattice authors
 *
 *  This program is free software; you can redistribute it and/or modify
 *  it under the terms of the GNU Lesser General Public License as published by
 *  the Free Software Foundation; either version 2.1 of the License, or
 *  (at your option) any later version.
 *
 *  This program is distributed in the hope that it will be useful,
 *  but WITHOUT ANY WARRANTY; without even the implied warranty of
 *  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 *  GNU General Public License for more details.
 *
 *  You should have received a copy of the GNU Lesser General Public License
 *  along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

/*
Top builds the bonded terms (not to be confused with the ipc Topology
structure, which only holds atoms) that keep each IPC rigid: two
center-patch bonds and one patch-center-patch angle per particle.
Everything is a pure function of the particle index, so nothing needs
to be stored besides the sequential numbering.
*/
package top

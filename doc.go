/*
 * doc.go, part of gotrim.
 *
 *
 * Copyright 2017 The gotrim authors
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
 *
 */

/*Package trim prepares batch input files for TRIM, the ion transport program of the SRIM-2013 suite,
and keeps them organized with the simulation outputs.



	**Capabilities**


    Reads the TRIM reference data: the ATOMDATA element table (joined with the
	displacement, lattice and surface binding energies, which TRIM keeps
	nowhere in its data files) and the Compound.dat compound directory. Both
	can be kept gzip or zstd compressed.

    Allows to register compounds missing from the TRIM directory, such as CF4.

    Builds targets as stacks of layers of elements or compounds, added in any order.
	Widths can be given in Angstrom, microns or centimeters. Gas densities can be
	scaled from STP to a given pressure.

    Writes the TRIM.IN batch input for an ion through a target, byte by byte as
	TRIM expects it, and as many times as needed for different ions through the
	same target.

    Keeps the inputs and outputs of each experiment under IN and OUT
	subdirectories, with file names built from the ion mass, symbol and energy
	(80Ga381600.txt), so that inputs and outputs can be found from one another.


Running TRIM and plotting its results are left to other programs, which only need
the file names returned here.*/
package trim

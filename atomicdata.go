/*
 * atomicdata.go, part of gotrim.
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

package trim

//Number of elements in the reference tables. There is no element 93+.
const NumElements = 92

//Width conversion factors to the canonical unit, the Angstrom.
const (
	AngstromsPerMicron     = 1e4
	AngstromsPerCentimeter = 1e8
)

//Reference pressure (Torr) at which the catalog gas densities are given.
const stpPressure = 760.0

//Units accepted for layer widths, and the factor that takes each one to Angstrom.
var unitFactor = map[string]float64{
	"Ang": 1,
	"um":  AngstromsPerMicron,
	"cm":  AngstromsPerCentimeter,
}

//Binding energies (eV) used by TRIM to compute target damage, copied by hand
//from the TRIM tables since they are not in any of its data files.
//bindingEnergies[Z-1] holds displacement, lattice and surface binding energies.
var bindingEnergies = [NumElements][3]float64{
	{10, 3, 2},    //H
	{5, 1, 2},     //He
	{25, 3, 1.67}, //Li
	{25, 3, 3.38}, //Be
	{25, 3, 5.73}, //B
	{28, 3, 7.41}, //C
	{28, 3, 2},    //N
	{28, 3, 2},    //O
	{25, 3, 2},    //F
	{5, 1, 2},     //Ne
	{25, 3, 1.12}, //Na
	{25, 3, 1.54}, //Mg
	{25, 3, 3.36}, //Al
	{15, 2, 4.7},  //Si
	{25, 3, 3.27}, //P
	{25, 3, 2.88}, //S
	{25, 3, 2},    //Cl
	{5, 1, 2},     //Ar
	{25, 3, 0.93}, //K
	{25, 3, 1.83}, //Ca
	{25, 3, 3.49}, //Sc
	{25, 3, 4.89}, //Ti
	{25, 3, 5.33}, //V
	{25, 3, 4.12}, //Cr
	{25, 3, 2.98}, //Mn
	{25, 3, 4.34}, //Fe
	{25, 3, 4.43}, //Co
	{25, 3, 4.46}, //Ni
	{25, 3, 3.52}, //Cu
	{25, 3, 1.35}, //Zn
	{25, 3, 2.82}, //Ga
	{15, 2, 3.88}, //Ge
	{25, 3, 1.26}, //As
	{25, 3, 2.14}, //Se
	{25, 3, 2},    //Br
	{5, 1, 2},     //Kr
	{25, 3, 0.86}, //Rb
	{25, 3, 1.7},  //Sr
	{25, 3, 4.24}, //Y
	{25, 3, 6.33}, //Zr
	{25, 3, 7.59}, //Nb
	{25, 3, 6.83}, //Mo
	{25, 3, 2},    //Tc
	{25, 3, 6.69}, //Ru
	{25, 3, 5.78}, //Rh
	{25, 3, 3.91}, //Pd
	{25, 3, 2.97}, //Ag
	{25, 3, 1.16}, //Cd
	{25, 3, 2.49}, //In
	{25, 3, 3.12}, //Sn
	{25, 3, 2.72}, //Sb
	{25, 3, 2.02}, //Te
	{25, 3, 2},    //I
	{5, 1, 2},     //Xe
	{25, 3, 0.81}, //Cs
	{25, 3, 1.84}, //Ba
	{25, 3, 4.42}, //La
	{25, 3, 4.23}, //Ce
	{25, 3, 3.71}, //Pr
	{25, 3, 3.28}, //Nd
	{25, 3, 2},    //Pm
	{25, 3, 2.16}, //Sm
	{25, 3, 1.85}, //Eu
	{25, 3, 3.57}, //Gd
	{25, 3, 3.81}, //Tb
	{25, 3, 2.89}, //Dy
	{25, 3, 3.05}, //Ho
	{25, 3, 3.05}, //Er
	{25, 3, 2.52}, //Tm
	{25, 3, 1.74}, //Yb
	{25, 3, 4.29}, //Lu
	{25, 3, 6.31}, //Hf
	{25, 3, 8.1},  //Ta
	{25, 3, 8.68}, //W
	{25, 3, 8.09}, //Re
	{25, 3, 8.13}, //Os
	{25, 3, 6.9},  //Ir
	{25, 3, 5.86}, //Pt
	{25, 3, 3.8},  //Au
	{25, 3, 0.64}, //Hg
	{25, 3, 1.88}, //Tl
	{25, 3, 2.08}, //Pb
	{25, 3, 2.17}, //Bi
	{25, 3, 1.5},  //Po
	{25, 3, 2},    //At
	{25, 3, 2},    //Rn
	{25, 3, 2},    //Fr
	{25, 3, 2},    //Ra
	{25, 3, 2},    //Ac
	{25, 3, 5.93}, //Th
	{25, 3, 2},    //Pa
	{25, 3, 5.42}, //U
}


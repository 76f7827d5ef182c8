/*
 * ion.go, part of gotrim.
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

import "math"

//DefaultAutoSave is the TRIM default number of ions between autosaves.
const DefaultAutoSave = 10000

//IonRun describes the ions to be sent through a target.
type IonRun struct {
	Symbol   string
	Mass     float64 //amu
	Energy   float64 //keV
	Count    int     //number of ions to simulate
	Angle    float64 //degrees
	BraggCor float64
	AutoSave int
	z        Z
}

//NewIonRun returns a validated run of count ions of the element symbol, with the given
//mass (amu) and energy (keV). Angle and Bragg correction are 0, and AutoSave is
//DefaultAutoSave. Use Validate after changing any of those.
func NewIonRun(atoms *AtomCatalog, symbol string, mass, energy float64, count int) (IonRun, error) {
	I := IonRun{Symbol: symbol, Mass: mass, Energy: energy, Count: count, AutoSave: DefaultAutoSave}
	err := I.Validate(atoms)
	return I, errDecorate(err, "NewIonRun")
}

//Validate checks the run against the atom catalog and sets its atomic number.
func (I *IonRun) Validate(atoms *AtomCatalog) error {
	z, err := atoms.Resolve(I.Symbol)
	if err != nil {
		return newError(UnknownIon, "Validate", "%q is not a chemical symbol between H and U", I.Symbol)
	}
	if !(I.Mass > 0) || math.IsInf(I.Mass, 0) || !(I.Energy > 0) || math.IsInf(I.Energy, 0) {
		return newError(InvalidRange, "Validate", "ion mass and energy must be positive, got %v amu, %v keV", I.Mass, I.Energy)
	}
	if I.Count <= 0 || I.AutoSave <= 0 {
		return newError(InvalidRange, "Validate", "ion count and autosave must be positive, got %d and %d", I.Count, I.AutoSave)
	}
	if math.IsNaN(I.Angle) || math.IsInf(I.Angle, 0) || math.IsNaN(I.BraggCor) || math.IsInf(I.BraggCor, 0) {
		return newError(InvalidRange, "Validate", "ion angle and Bragg correction must be finite numbers")
	}
	I.z = z
	return nil
}

//Z returns the atomic number of the ion, 0 if the run was never validated.
func (I IonRun) Z() Z { return I.z }

//FileName returns the name of the input file for the run. See FileName.
func (I IonRun) FileName() string {
	return FileName(I.Mass, I.Symbol, I.Energy)
}

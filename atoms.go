/*
 * atoms.go, part of gotrim.
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

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

//Z is an atomic number.
type Z int

//Atom holds the TRIM reference data for one element.
type Atom struct {
	Z             Z
	Symbol        string
	Name          string
	MAIMass       int     //mass of the most abundant isotope
	MAIWeight     float64 //weight of the most abundant isotope
	Weight        float64 //natural weight (amu)
	Density       float64 //solid density (g/cm3)
	AtomicDensity float64 //atoms/cm3
	FermiVelocity float64
	HeatSubl      float64 //heat of sublimation (eV)
	GasDensity    float64 //gas density at STP (g/cm3)
	GasAtomicDens float64 //gas atomic density at STP
	Disp          float64 //displacement energy (eV)
	Latt          float64 //lattice binding energy (eV)
	Surf          float64 //surface binding energy (eV)
}

//AtomCatalog is the read-only table of the 92 elements known to TRIM.
type AtomCatalog struct {
	atoms    [NumElements]Atom
	bySymbol map[string]Z
}

//atomDataColumns is the number of fields in each ATOMDATA row.
const atomDataColumns = 12

//LoadAtoms reads the TRIM ATOMDATA file at path, which can be plain or compressed
//(see openData), and joins it with the binding energy tables. Rows after
//uranium are ignored. Any problem with the file is an error: no partial catalog
//is ever returned.
func LoadAtoms(path string) (*AtomCatalog, error) {
	D, err := openData(path, false)
	if err != nil {
		return nil, errDecorate(err, "LoadAtoms")
	}
	defer D.Close()
	C := &AtomCatalog{bySymbol: make(map[string]Z, NumElements)}
	s := D.Lines()
	lineno := 0
	//two header lines
	for lineno < 2 && s.Scan() {
		lineno++
	}
	next := Z(1)
	for next <= NumElements && s.Scan() {
		lineno++
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		a, err := parseAtomRow(line)
		if err != nil {
			return nil, &Error{kind: MalformedData, message: fmt.Sprintf("line %d", lineno), filename: path, deco: []string{"LoadAtoms"}, err: err}
		}
		if a.Z != next {
			return nil, &Error{kind: MalformedData, message: fmt.Sprintf("line %d: expected Z=%d, found Z=%d", lineno, next, a.Z), filename: path, deco: []string{"LoadAtoms"}}
		}
		be := bindingEnergies[a.Z-1]
		a.Disp, a.Latt, a.Surf = be[0], be[1], be[2]
		C.atoms[a.Z-1] = a
		C.bySymbol[a.Symbol] = a.Z
		next++
	}
	if err := s.Err(); err != nil {
		return nil, &Error{kind: MalformedData, message: "read failed", filename: path, deco: []string{"LoadAtoms"}, err: err}
	}
	if next <= NumElements {
		return nil, &Error{kind: MalformedData, message: fmt.Sprintf("only %d of %d elements found", next-1, NumElements), filename: path, deco: []string{"LoadAtoms"}}
	}
	logger().Debug("atom catalog loaded", slog.String("path", path), slog.Int("elements", NumElements))
	return C, nil
}

//parseAtomRow parses one whitespace-separated ATOMDATA row.
func parseAtomRow(line string) (Atom, error) {
	var a Atom
	f := strings.Fields(line)
	if len(f) < atomDataColumns {
		return a, fmt.Errorf("%d fields, %d expected", len(f), atomDataColumns)
	}
	z, err := strconv.Atoi(f[0])
	if err != nil {
		return a, err
	}
	if z < 1 {
		return a, fmt.Errorf("atomic number %d", z)
	}
	a.Z = Z(z)
	a.Symbol = f[1]
	a.Name = f[2]
	if a.MAIMass, err = strconv.Atoi(f[3]); err != nil {
		return a, err
	}
	floats := []*float64{&a.MAIWeight, &a.Weight, &a.Density, &a.AtomicDensity, &a.FermiVelocity, &a.HeatSubl, &a.GasDensity, &a.GasAtomicDens}
	for i, p := range floats {
		if *p, err = strconv.ParseFloat(f[4+i], 64); err != nil {
			return a, err
		}
	}
	return a, nil
}

//Resolve returns the atomic number of the element with the given symbol.
func (C *AtomCatalog) Resolve(symbol string) (Z, error) {
	if z, ok := C.bySymbol[symbol]; ok {
		return z, nil
	}
	return 0, newError(UnknownMaterial, "Resolve", "no element with symbol %q", symbol)
}

//Atom returns the element with atomic number z, and false if z is out of range.
func (C *AtomCatalog) Atom(z Z) (Atom, bool) {
	if z < 1 || z > NumElements {
		return Atom{}, false
	}
	return C.atoms[z-1], true
}

//Len returns the number of elements in the catalog.
func (C *AtomCatalog) Len() int { return NumElements }

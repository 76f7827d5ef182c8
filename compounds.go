/*
 * compounds.go, part of gotrim.
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
	"math"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

//Constituent is one element of a stoichiometry, with its fraction of the atoms.
type Constituent struct {
	Z        Z
	Fraction float64
}

//Compound is a named target material with its density and normalized stoichiometry.
type Compound struct {
	Density float64 //g/cm3
	Stoich  []Constituent
}

//CompoundCatalog holds the TRIM compound directory plus any compound
//registered by the user. Entries are never modified once stored, only replaced.
type CompoundCatalog struct {
	compounds map[string]Compound
}

//NewCompoundCatalog returns an empty catalog.
func NewCompoundCatalog() *CompoundCatalog {
	return &CompoundCatalog{compounds: make(map[string]Compound)}
}

//LoadCompounds reads the TRIM Compound.dat file at path. The file is ISO-8859-1
//encoded and can be compressed (see openData). The first two lines are a header,
//and only lines starting with a double quote are compound entries.
func LoadCompounds(path string) (*CompoundCatalog, error) {
	D, err := openData(path, true)
	if err != nil {
		return nil, errDecorate(err, "LoadCompounds")
	}
	defer D.Close()
	C := NewCompoundCatalog()
	s := D.Lines()
	lineno := 0
	for s.Scan() {
		lineno++
		line := s.Text()
		if lineno <= 2 || !strings.HasPrefix(line, `"`) {
			continue
		}
		name, comp, err := ParseCompoundLine(line)
		if err != nil {
			e := err.(*Error)
			e.filename = path
			e.message = fmt.Sprintf("line %d: %s", lineno, e.message)
			return nil, errDecorate(e, "LoadCompounds")
		}
		C.compounds[name] = comp
	}
	if err := s.Err(); err != nil {
		return nil, &Error{kind: MalformedData, message: "read failed", filename: path, deco: []string{"LoadCompounds"}, err: err}
	}
	logger().Debug("compound catalog loaded", slog.String("path", path), slog.Int("compounds", len(C.compounds)))
	return C, nil
}

//ParseCompoundLine parses one entry of the TRIM compound directory:
//
//	"name" , density , n , Z1 , w1 , ... , Zn , wn [, anything else]
//
//The name is whatever is between the first and the last double quote, with
//'%' characters trimmed at both ends. TRIM sometimes omits the comma after
//the name, in which case it is assumed. The weights are normalized so they
//add up to 1, whether they are given as percentages, fractions or atom counts.
//Always returns an *Error on failure.
func ParseCompoundLine(line string) (string, Compound, error) {
	var c Compound
	first := strings.Index(line, `"`)
	last := strings.LastIndex(line, `"`)
	if first < 0 || last <= first {
		return "", c, newError(MalformedData, "ParseCompoundLine", "no quoted name in %q", line)
	}
	name := strings.Trim(line[first+1:last], "%")
	rest := strings.TrimSpace(line[last+1:])
	if !strings.HasPrefix(rest, ",") {
		rest = "," + rest
	}
	fields := strings.Split(rest, ",")[1:]
	for i, v := range fields {
		fields[i] = strings.TrimSpace(v)
	}
	if len(fields) < 2 {
		return "", c, newError(MalformedData, "ParseCompoundLine", "compound %q: missing density or element count", name)
	}
	var err error
	if c.Density, err = strconv.ParseFloat(fields[0], 64); err != nil || c.Density < 0 || math.IsNaN(c.Density) {
		return "", c, newError(MalformedData, "ParseCompoundLine", "compound %q: bad density %q", name, fields[0])
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 1 {
		return "", c, newError(MalformedData, "ParseCompoundLine", "compound %q: bad element count %q", name, fields[1])
	}
	if len(fields) < 2+2*n {
		return "", c, newError(MalformedData, "ParseCompoundLine", "compound %q: %d elements declared, %d values given", name, n, len(fields)-2)
	}
	stoich := make([]Constituent, n)
	for i := range stoich {
		zs, ws := fields[2+2*i], fields[3+2*i]
		z, err := strconv.Atoi(zs)
		if err != nil || z < 1 || z > NumElements {
			return "", c, newError(MalformedData, "ParseCompoundLine", "compound %q: bad atomic number %q", name, zs)
		}
		w, err := strconv.ParseFloat(ws, 64)
		if err != nil || w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return "", c, newError(MalformedData, "ParseCompoundLine", "compound %q: bad weight %q", name, ws)
		}
		stoich[i] = Constituent{Z(z), w}
	}
	if c.Stoich, err = normalize(stoich); err != nil {
		return "", c, newError(MalformedData, "ParseCompoundLine", "compound %q: %s", name, err.Error())
	}
	return name, c, nil
}

//normalize returns a copy of stoich with the fractions divided by their sum.
func normalize(stoich []Constituent) ([]Constituent, error) {
	if len(stoich) == 0 {
		return nil, fmt.Errorf("empty stoichiometry")
	}
	w := make([]float64, len(stoich))
	for i, v := range stoich {
		w[i] = v.Fraction
	}
	total := floats.Sum(w)
	if total <= 0 || math.IsInf(total, 0) || math.IsNaN(total) {
		return nil, fmt.Errorf("stoichiometry weights add up to %v", total)
	}
	ret := make([]Constituent, len(stoich))
	for i, v := range stoich {
		ret[i] = Constituent{v.Z, v.Fraction / total}
	}
	return ret, nil
}

//Register adds the compound name to the catalog, replacing any previous entry
//with that name. It is meant for materials missing from the TRIM directory,
//such as CF4. The stoichiometry weights follow the same normalization as
//the ones read from Compound.dat.
func (C *CompoundCatalog) Register(name string, density float64, stoich []Constituent) error {
	if name == "" {
		return newError(UnknownMaterial, "Register", "empty compound name")
	}
	if density < 0 || math.IsNaN(density) || math.IsInf(density, 0) {
		return newError(InvalidRange, "Register", "compound %q: density %v", name, density)
	}
	for _, v := range stoich {
		if v.Z < 1 || v.Z > NumElements {
			return newError(UnknownMaterial, "Register", "compound %q: atomic number %d", name, v.Z)
		}
		if v.Fraction < 0 || math.IsNaN(v.Fraction) || math.IsInf(v.Fraction, 0) {
			return newError(InvalidRange, "Register", "compound %q: weight %v", name, v.Fraction)
		}
	}
	norm, err := normalize(stoich)
	if err != nil {
		return newError(InvalidRange, "Register", "compound %q: %s", name, err.Error())
	}
	C.compounds[name] = Compound{Density: density, Stoich: norm}
	logger().Debug("compound registered", slog.String("name", name), slog.Int("elements", len(norm)))
	return nil
}

//Compound returns the compound with the given name. The stoichiometry
//returned is a copy.
func (C *CompoundCatalog) Compound(name string) (Compound, bool) {
	c, ok := C.compounds[name]
	if !ok {
		return c, false
	}
	c.Stoich = append([]Constituent(nil), c.Stoich...)
	return c, true
}

//Names returns the compound names, sorted.
func (C *CompoundCatalog) Names() []string {
	ret := make([]string, 0, len(C.compounds))
	for k := range C.compounds {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

func (C *CompoundCatalog) Len() int { return len(C.compounds) }

/*
 * layers.go, part of gotrim.
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
	"math"
	"sort"
)

//LayerSpec describes a target layer as given by the user. The zero values of Unit and
//Correction mean the defaults (Angstrom and 1). Gas has no default and must always be given.
type LayerSpec struct {
	Position   int     //1-based position of the layer in the target
	Name       string  //element symbol if Atom is true, compound name otherwise
	Atom       bool    //the layer is a single element, not a compound
	Width      float64 //in Unit
	Unit       string  //"Ang", "um" or "cm"
	Density    float64 //g/cm3, 0 for the catalog density
	Pressure   float64 //Torr, only for gas layers without a Density
	Correction float64 //compound (Bragg) correction
	Gas        *bool
}

//Flag returns a pointer to b, for the Gas field of LayerSpec.
func Flag(b bool) *bool { return &b }

//Layer is a validated target layer. Width is always in Angstrom.
type Layer struct {
	Position   int
	Name       string
	Compound   bool
	Width      float64
	Density    float64 //override, 0 if the catalog value is to be used
	Pressure   float64 //0 unless the density is to be scaled from the catalog gas value
	Correction float64
	Gas        bool
}

//ResolvedLayer is a layer after the catalog lookups and the pressure scaling,
//ready to be written.
type ResolvedLayer struct {
	Layer   Layer
	Density float64       //final density, g/cm3
	Atoms   []Constituent //the elements contributed by the layer, fractions add up to 1
}

//Stack is an ordered set of target layers. Layers can be added in any order,
//adding a layer at an existing position replaces the old one.
type Stack struct {
	atoms     *AtomCatalog
	compounds *CompoundCatalog
	layers    map[int]Layer
}

//NewStack returns an empty stack whose layers are checked against the given catalogs.
func NewStack(atoms *AtomCatalog, compounds *CompoundCatalog) *Stack {
	if compounds == nil {
		compounds = NewCompoundCatalog()
	}
	return &Stack{atoms: atoms, compounds: compounds, layers: make(map[int]Layer)}
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

//AddLayer validates the layer described by L and stores it at L.Position.
//Nothing is looked up or computed beyond the checks, that happens in Resolve.
func (S *Stack) AddLayer(L LayerSpec) error {
	if L.Position < 1 {
		return newError(InvalidRange, "AddLayer", "layer position %d, positions start at 1", L.Position)
	}
	if L.Atom {
		if _, err := S.atoms.Resolve(L.Name); err != nil {
			return newError(UnknownMaterial, "AddLayer", "layer %d: no element %q", L.Position, L.Name)
		}
	} else if _, ok := S.compounds.Compound(L.Name); !ok {
		return newError(UnknownMaterial, "AddLayer", "layer %d: no compound %q", L.Position, L.Name)
	}
	unit := L.Unit
	if unit == "" {
		unit = "Ang"
	}
	factor, ok := unitFactor[unit]
	if !ok {
		return newError(InvalidUnit, "AddLayer", "layer %d: unit %q, must be Ang, um or cm", L.Position, L.Unit)
	}
	for _, v := range []struct {
		name string
		val  float64
	}{{"width", L.Width}, {"density", L.Density}, {"pressure", L.Pressure}, {"correction", L.Correction}} {
		if !nonNegative(v.val) {
			return newError(InvalidRange, "AddLayer", "layer %d: %s %v", L.Position, v.name, v.val)
		}
	}
	if L.Gas == nil {
		return newError(InvalidFlag, "AddLayer", "layer %d: the gas flag must be given explicitly", L.Position)
	}
	pressure := L.Pressure
	if L.Density != 0 {
		//an explicit density always wins
		pressure = 0
	} else if pressure != 0 && !*L.Gas {
		return newError(PressureOnSolidLayer, "AddLayer", "layer %d: pressure given for solid layer %q", L.Position, L.Name)
	}
	corr := L.Correction
	if corr == 0 {
		corr = 1
	}
	S.layers[L.Position] = Layer{
		Position:   L.Position,
		Name:       L.Name,
		Compound:   !L.Atom,
		Width:      L.Width * factor,
		Density:    L.Density,
		Pressure:   pressure,
		Correction: corr,
		Gas:        *L.Gas,
	}
	return nil
}

//Len returns the number of layers in the stack.
func (S *Stack) Len() int { return len(S.layers) }

//Layers returns the layers sorted by position.
func (S *Stack) Layers() []Layer {
	pos := make([]int, 0, len(S.layers))
	for p := range S.layers {
		pos = append(pos, p)
	}
	sort.Ints(pos)
	ret := make([]Layer, len(pos))
	for i, p := range pos {
		ret[i] = S.layers[p]
	}
	return ret
}

//ValidateContiguity checks that the layer positions are exactly 1 to N, and returns
//a MissingLayer error for the first missing position otherwise.
func (S *Stack) ValidateContiguity() error {
	n := len(S.layers)
	if n == 0 {
		return &Error{kind: MissingLayer, at: 1, message: "empty target", deco: []string{"ValidateContiguity"}}
	}
	for i := 1; i <= n; i++ {
		if _, ok := S.layers[i]; !ok {
			return &Error{kind: MissingLayer, at: i, message: "layer 1 to N must all be defined", deco: []string{"ValidateContiguity"}}
		}
	}
	return nil
}

//Resolve returns the layers, in order, with their densities and element lists
//taken from the catalogs. The stored layers are not modified, so resolving
//the same stack many times always gives the same result.
func (S *Stack) Resolve() ([]ResolvedLayer, error) {
	if err := S.ValidateContiguity(); err != nil {
		return nil, errDecorate(err, "Resolve")
	}
	layers := S.Layers()
	ret := make([]ResolvedLayer, len(layers))
	for i, l := range layers {
		r, err := S.resolveLayer(l)
		if err != nil {
			return nil, errDecorate(err, "Resolve")
		}
		ret[i] = r
	}
	return ret, nil
}

func (S *Stack) resolveLayer(l Layer) (ResolvedLayer, error) {
	r := ResolvedLayer{Layer: l, Density: l.Density}
	if l.Compound {
		c, ok := S.compounds.Compound(l.Name)
		if !ok {
			return r, newError(UnknownMaterial, "resolveLayer", "layer %d: no compound %q", l.Position, l.Name)
		}
		r.Atoms = c.Stoich
		if r.Density == 0 {
			r.Density = c.Density
		}
	} else {
		z, err := S.atoms.Resolve(l.Name)
		if err != nil {
			return r, newError(UnknownMaterial, "resolveLayer", "layer %d: no element %q", l.Position, l.Name)
		}
		a, _ := S.atoms.Atom(z)
		r.Atoms = []Constituent{{z, 1.0}}
		if r.Density == 0 {
			if l.Gas {
				r.Density = a.GasDensity
			} else {
				r.Density = a.Density
			}
		}
	}
	if l.Pressure != 0 {
		//ideal gas scaling from the STP catalog value
		r.Density *= l.Pressure / stpPressure
	}
	return r, nil
}

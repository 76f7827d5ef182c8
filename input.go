/*
 * input.go, part of gotrim.
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
	"bytes"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//TargetAtom is one entry in the flattened list of target atoms, which goes through
//the layers in order and, within each layer, through its elements in order.
type TargetAtom struct {
	Atom     Atom
	Layer    int //index of the layer in Target.Layers
	Fraction float64
}

//Target is a fully resolved stack, with the single atom ordering used in every
//block of the TRIM input.
type Target struct {
	Layers []ResolvedLayer
	Atoms  []TargetAtom
}

//Target resolves the stack and flattens its atoms.
func (S *Stack) Target() (*Target, error) {
	resolved, err := S.Resolve()
	if err != nil {
		return nil, errDecorate(err, "Target")
	}
	T := &Target{Layers: resolved}
	for i, l := range resolved {
		for _, c := range l.Atoms {
			a, ok := S.atoms.Atom(c.Z)
			if !ok {
				return nil, newError(UnknownMaterial, "Target", "layer %d: atomic number %d", l.Layer.Position, c.Z)
			}
			T.Atoms = append(T.Atoms, TargetAtom{Atom: a, Layer: i, Fraction: c.Fraction})
		}
	}
	return T, nil
}

//StoichMatrix returns a layers x atoms matrix where element (i,j) is the fraction
//of the flattened atom j in layer i. Each layer only fills the columns of its own
//atoms, which come right after the previous layer's.
func (T *Target) StoichMatrix() *mat.Dense {
	M := mat.NewDense(len(T.Layers), len(T.Atoms), nil)
	col := 0 //runs over the whole target, not per layer
	for i, l := range T.Layers {
		for _, c := range l.Atoms {
			M.Set(i, col, c.Fraction)
			col++
		}
	}
	return M
}

//Fixed lines of the TRIM.IN grammar (SRIM-2013).
const (
	inHeader      = "==> SRIM-2013.00 This file controls TRIM Calculations."
	inIonComment  = "Ion: Z1 ,  M1,  Energy (keV), Angle,Number,Bragg Corr,AutoSave Number."
	inCascade     = "Cascades(1=No;2=Full;3=Sputt;4-5=Ions;6-7=Neutrons), Random Number Seed, Reminders"
	inCascadeVal  = "1 0 0"
	inDiskfiles   = "Diskfiles (0=no,1=yes): Ranges, Backscatt, Transmit, Sputtered, Collisions(1=Ion;2=Ion+Recoils), Special EXYZ.txt file"
	inDiskVal     = "0 0 0 0 2 0"
	inTarget      = "Target material : Number of Elements & Layers"
	inPlot        = "PlotType (0-5); Plot Depths: Xmin, Xmax(Ang.) [=0 0 for Viewing Full Target]"
	inPlotVal     = "5 0 0"
	inElements    = "Target Elements:    Z   Mass(amu)"
	inLayerHead   = "Layer Layer Name / Width Density "
	inLayerUnits  = "Numb. Description (Ang) (g/cm3) "
	inPhases      = "0  Target layer phases (0=Solid, 1=Gas)"
	inCorrections = "Target Compound Corrections (Bragg)"
	inDisp        = "Individual target atom displacement energies (eV)"
	inLatt        = "Individual target atom lattice binding energies (eV)"
	inSurf        = "Individual target atom surface binding energies (eV)"
	inStopping    = "Stopping Power Version (1=2011, 0=2011)"
	inStoppingVal = " 0"
)

const crlf = "\r\n"

//Compile builds the TRIM batch input for sending the ions in I through the target S.
//It returns the file name for the input (see FileName) and its contents.
//All the checks happen here, so nothing should be written if Compile fails.
//Compile does not modify S, so it can be called for many ions on the same stack.
func Compile(S *Stack, I IonRun) (string, []byte, error) {
	if err := I.Validate(S.atoms); err != nil {
		return "", nil, errDecorate(err, "Compile")
	}
	T, err := S.Target()
	if err != nil {
		return "", nil, errDecorate(err, "Compile")
	}
	return I.FileName(), T.write(I), nil
}

//write renders the input file. I must have been validated.
func (T *Target) write(I IonRun) []byte {
	var b bytes.Buffer
	line := func(s ...string) {
		for _, v := range s {
			b.WriteString(v)
		}
		b.WriteString(crlf)
	}
	//each value followed by a space, as TRIM writes them
	row := func(prefix string, vals []string) {
		b.WriteString(prefix)
		for _, v := range vals {
			b.WriteString(v)
			b.WriteByte(' ')
		}
		b.WriteString(crlf)
	}
	nat := len(T.Atoms)
	nlay := len(T.Layers)

	line(inHeader)
	line(inIonComment)
	//Angle and Bragg correction are always written as 0, as TRIMbatch always did.
	line(fmt.Sprintf("%d %s %s %d %d %d %d", I.Z(), FormatNumber(I.Mass), FormatNumber(I.Energy), 0, I.Count, 0, I.AutoSave))
	line(inCascade)
	line(inCascadeVal)
	line(inDiskfiles)
	line(inDiskVal)
	line(inTarget)
	names := make([]string, nlay)
	for i, l := range T.Layers {
		names[i] = l.Layer.Name
	}
	line(fmt.Sprintf("\"%s (%s) into %s\" %d %d", I.Symbol, FormatNumber(I.Energy), strings.Join(names, "+"), nat, nlay))
	line(inPlot)
	line(inPlotVal)
	line(inElements)
	for i, a := range T.Atoms {
		line(fmt.Sprintf("Atom %d = %s =   %d %s", i+1, a.Atom.Symbol, a.Atom.Z, FormatNumber(a.Atom.Weight)))
	}
	cols := make([]string, nat)
	for i, a := range T.Atoms {
		cols[i] = fmt.Sprintf("%s(%d)", a.Atom.Symbol, a.Atom.Z)
	}
	row(inLayerHead, cols)
	for i := range cols {
		cols[i] = "Stoich"
	}
	row(inLayerUnits, cols)
	M := T.StoichMatrix()
	for i, l := range T.Layers {
		for j := range cols {
			cols[j] = FormatNumber(M.At(i, j))
		}
		row(fmt.Sprintf(" %d \"%s\" %s %s ", l.Layer.Position, l.Layer.Name, FormatNumber(l.Layer.Width), FormatNumber(l.Density)), cols)
	}
	line(inPhases)
	perlayer := make([]string, nlay)
	for i, l := range T.Layers {
		perlayer[i] = "0"
		if l.Layer.Gas {
			perlayer[i] = "1"
		}
	}
	row("", perlayer)
	line(inCorrections)
	for i, l := range T.Layers {
		perlayer[i] = FormatNumber(l.Layer.Correction)
	}
	row("", perlayer)
	energies := []struct {
		head string
		val  func(Atom) float64
	}{
		{inDisp, func(a Atom) float64 { return a.Disp }},
		{inLatt, func(a Atom) float64 { return a.Latt }},
		{inSurf, func(a Atom) float64 { return a.Surf }},
	}
	for _, e := range energies {
		line(e.head)
		for i, a := range T.Atoms {
			cols[i] = FormatNumber(e.val(a.Atom))
		}
		row("", cols)
	}
	line(inStopping)
	line(inStoppingVal)
	return b.Bytes()
}

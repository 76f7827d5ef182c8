/*
 * config.go, part of gotrim.
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

//Package config reads experiment descriptions: YAML files declaring where
//the TRIM data lives, the target layers, any extra compounds and the ions
//to simulate through the target.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	trim "github.com/trific/gotrim"
)

//Default locations, relative to the home directory, used by the TRIFIC setup:
//SRIM-2013 installed under wine, and the experiments kept in TRIFIC/TRIMDATA.
const (
	DefaultOutputRoot   = "~/TRIFIC/TRIMDATA"
	DefaultAtomData     = "~/.wine/drive_c/Program Files (x86)/SRIM-2013/Data/ATOMDATA"
	DefaultCompoundData = "~/.wine/drive_c/Program Files (x86)/SRIM-2013/Data/Compound.dat"
)

//Experiment is the content of an experiment description file.
type Experiment struct {
	Name         string     `yaml:"experiment"`
	OutputRoot   string     `yaml:"output_root,omitempty"`
	AtomData     string     `yaml:"atom_data,omitempty"`
	CompoundData string     `yaml:"compound_data,omitempty"`
	Compounds    []Compound `yaml:"compounds,omitempty"`
	Layers       []Layer    `yaml:"layers"`
	Ions         []Ion      `yaml:"ions"`
}

//Compound is a compound to be registered in addition to the TRIM directory.
type Compound struct {
	Name    string    `yaml:"name"`
	Density float64   `yaml:"density"`
	Stoich  []Element `yaml:"stoich"`
}

//Element is one element of a compound. Weights are normalized, so atom
//counts (1 C, 4 F) can be given directly.
type Element struct {
	Z      int     `yaml:"z"`
	Weight float64 `yaml:"weight"`
}

//Layer is a target layer. Layers are compounds unless Atom is set.
//Gas is kept as a node so a missing or non-boolean value can be reported.
type Layer struct {
	Position   int       `yaml:"position"`
	Name       string    `yaml:"name"`
	Atom       bool      `yaml:"atom,omitempty"`
	Width      float64   `yaml:"width"`
	Unit       string    `yaml:"unit,omitempty"`
	Density    float64   `yaml:"density,omitempty"`
	Pressure   float64   `yaml:"pressure,omitempty"`
	Correction float64   `yaml:"correction,omitempty"`
	Gas        yaml.Node `yaml:"gas"`
}

//Ion is one ion run.
type Ion struct {
	Symbol          string  `yaml:"symbol"`
	Mass            float64 `yaml:"mass"`
	Energy          float64 `yaml:"energy"`
	Count           int     `yaml:"count"`
	Angle           float64 `yaml:"angle,omitempty"`
	BraggCorrection float64 `yaml:"bragg_correction,omitempty"`
	AutoSave        int     `yaml:"autosave,omitempty"`
}

//Load reads the experiment description at path. Relative data and output
//paths are taken from the directory of the file.
func Load(path string) (*Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading experiment file: %w", err)
	}
	E, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	base := filepath.Dir(path)
	for _, p := range []*string{&E.OutputRoot, &E.AtomData, &E.CompoundData} {
		if *p, err = resolvePath(*p, base); err != nil {
			return nil, err
		}
	}
	return E, nil
}

//Parse decodes an experiment description, rejecting unknown fields, and fills
//in the defaults. Paths are left as given.
func Parse(data []byte) (*Experiment, error) {
	E := new(Experiment)
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(E); err != nil {
		return nil, fmt.Errorf("parsing experiment: %w", err)
	}
	if E.Name == "" {
		return nil, fmt.Errorf("parsing experiment: missing experiment name")
	}
	if strings.ContainsAny(E.Name, `/\`) || E.Name == "." || E.Name == ".." {
		return nil, fmt.Errorf("parsing experiment: experiment name %q must be a plain directory name", E.Name)
	}
	if E.OutputRoot == "" {
		E.OutputRoot = DefaultOutputRoot
	}
	if E.AtomData == "" {
		E.AtomData = DefaultAtomData
	}
	if E.CompoundData == "" {
		E.CompoundData = DefaultCompoundData
	}
	for i := range E.Ions {
		if E.Ions[i].AutoSave == 0 {
			E.Ions[i].AutoSave = trim.DefaultAutoSave
		}
	}
	return E, nil
}

//resolvePath expands a leading ~ and makes relative paths relative to base.
func resolvePath(p, base string) (string, error) {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expanding %q: %w", p, err)
		}
		return filepath.Join(home, p[1:]), nil
	}
	if filepath.IsAbs(p) {
		return p, nil
	}
	return filepath.Join(base, p), nil
}

//Batch is an experiment ready to be written: the loaded catalogs, the target
//and the ion runs, which are validated only when written so one bad ion does
//not prevent writing the others.
type Batch struct {
	Data       *trim.Data
	Stack      *trim.Stack
	Ions       []trim.IonRun
	Experiment *trim.Experiment
}

//Build loads the TRIM data, registers the extra compounds and builds the target.
//Any problem with the data or the target is an error.
func (E *Experiment) Build() (*Batch, error) {
	data, err := trim.LoadData(E.AtomData, E.CompoundData)
	if err != nil {
		return nil, err
	}
	return E.BuildWith(data)
}

//BuildWith is like Build, but uses already loaded catalogs. Compounds in
//the experiment are registered in data.Compounds.
func (E *Experiment) BuildWith(data *trim.Data) (*Batch, error) {
	for _, c := range E.Compounds {
		st := make([]trim.Constituent, len(c.Stoich))
		for i, e := range c.Stoich {
			st[i] = trim.Constituent{Z: trim.Z(e.Z), Fraction: e.Weight}
		}
		if err := data.Compounds.Register(c.Name, c.Density, st); err != nil {
			return nil, err
		}
	}
	S := data.NewStack()
	for _, l := range E.Layers {
		gas, err := l.gas()
		if err != nil {
			return nil, err
		}
		spec := trim.LayerSpec{
			Position:   l.Position,
			Name:       l.Name,
			Atom:       l.Atom,
			Width:      l.Width,
			Unit:       l.Unit,
			Density:    l.Density,
			Pressure:   l.Pressure,
			Correction: l.Correction,
			Gas:        gas,
		}
		if err := S.AddLayer(spec); err != nil {
			return nil, err
		}
	}
	if err := S.ValidateContiguity(); err != nil {
		return nil, err
	}
	ions := make([]trim.IonRun, len(E.Ions))
	for i, v := range E.Ions {
		ions[i] = trim.IonRun{
			Symbol:   v.Symbol,
			Mass:     v.Mass,
			Energy:   v.Energy,
			Count:    v.Count,
			Angle:    v.Angle,
			BraggCor: v.BraggCorrection,
			AutoSave: v.AutoSave,
		}
	}
	return &Batch{
		Data:       data,
		Stack:      S,
		Ions:       ions,
		Experiment: trim.NewExperiment(E.OutputRoot, E.Name),
	}, nil
}

//gas decodes the gas flag. It is nil if the flag was not given.
func (l Layer) gas() (*bool, error) {
	if l.Gas.Kind == 0 || l.Gas.ShortTag() == "!!null" {
		return nil, nil
	}
	var b bool
	if l.Gas.Kind != yaml.ScalarNode || l.Gas.ShortTag() != "!!bool" || l.Gas.Decode(&b) != nil {
		return nil, fmt.Errorf("layer %d: gas must be true or false, got %q: %w", l.Position, l.Gas.Value, trim.ErrInvalidFlag)
	}
	return &b, nil
}

/*
 * experiment.go, part of gotrim.
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
	"os"
	"path/filepath"
	"sort"
)

//Subdirectories of an experiment: TRIM inputs go to IN, and the simulation
//runner copies each collision output to OUT with the same file name.
const (
	InDir  = "IN"
	OutDir = "OUT"
)

//Experiment is the directory where the inputs and outputs of one set of
//simulations are kept, such as TRIMDATA/IRIS-2017-09-29.
type Experiment struct {
	Root string //the directory holding all experiments
	Name string
}

//NewExperiment returns the experiment name under root. Nothing is created on disk.
func NewExperiment(root, name string) *Experiment {
	return &Experiment{Root: root, Name: name}
}

//Dir returns the experiment directory.
func (E *Experiment) Dir() string { return filepath.Join(E.Root, E.Name) }

//InputPath returns the path of the input file fname.
func (E *Experiment) InputPath(fname string) string { return filepath.Join(E.Dir(), InDir, fname) }

//OutputPath returns the path where the output for the input fname is kept.
func (E *Experiment) OutputPath(fname string) string { return filepath.Join(E.Dir(), OutDir, fname) }

//Prepare creates the IN and OUT directories if they don't exist. It never
//removes or truncates anything.
func (E *Experiment) Prepare() error {
	for _, d := range []string{InDir, OutDir} {
		if err := os.MkdirAll(filepath.Join(E.Dir(), d), 0o755); err != nil {
			return fmt.Errorf("preparing experiment %s: %w", E.Name, err)
		}
	}
	return nil
}

//Write compiles the input for the ions I through the target S and writes it
//to the IN directory, replacing any input for the same ion. It returns the file name.
//The input is fully built before any file is opened, and it is written to a
//temporary file that is renamed when complete, so a failed call leaves nothing behind.
func (E *Experiment) Write(S *Stack, I IonRun) (string, error) {
	fname, data, err := Compile(S, I)
	if err != nil {
		return "", errDecorate(err, "Write")
	}
	if err := E.Prepare(); err != nil {
		return "", err
	}
	path := E.InputPath(fname)
	if err := writeFile(path, data); err != nil {
		return "", err
	}
	logger().Info("TRIM input written", slog.String("path", path), slog.String("ion", I.Symbol))
	return fname, nil
}

func writeFile(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".trimin-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

//WriteBatch writes one input per ion, all through the same target. The returned
//slices have one element per ion: the file name, or the error for that ion.
//A failing ion doesn't stop the others.
func (E *Experiment) WriteBatch(S *Stack, ions []IonRun) ([]string, []error) {
	names := make([]string, len(ions))
	errs := make([]error, len(ions))
	for i, I := range ions {
		names[i], errs[i] = E.Write(S, I)
		if errs[i] != nil {
			logger().Warn("TRIM input not written", slog.String("ion", I.Symbol), slog.Any("error", errs[i]))
		}
	}
	return names, errs
}

//Inputs lists the input files of the experiment, sorted by name.
func (E *Experiment) Inputs() ([]string, error) {
	return E.list(InDir)
}

//Outputs lists the simulation outputs already in the experiment, sorted by name,
//so they can be analyzed again without running anything.
func (E *Experiment) Outputs() ([]string, error) {
	return E.list(OutDir)
}

func (E *Experiment) list(sub string) ([]string, error) {
	if fi, err := os.Stat(E.Dir()); err != nil || !fi.IsDir() {
		return nil, fmt.Errorf("experiment %q not found in %s", E.Name, E.Root)
	}
	entries, err := os.ReadDir(filepath.Join(E.Dir(), sub))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	ret := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || e.Name()[0] == '.' {
			continue
		}
		ret = append(ret, e.Name())
	}
	sort.Strings(ret)
	return ret, nil
}

/*
 * experiment_test.go, part of gotrim.
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
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestPrepare(Te *testing.T) {
	root := Te.TempDir()
	E := NewExperiment(root, "IRIS-2017-09-29")
	if _, err := E.Inputs(); err == nil {
		Te.Error("listing an experiment that doesn't exist should fail")
	}
	if err := E.Prepare(); err != nil {
		Te.Fatal(err)
	}
	//something already in OUT must survive a second Prepare
	kept := E.OutputPath("80Ga381600.txt")
	if err := os.WriteFile(kept, []byte("collisions"), 0o644); err != nil {
		Te.Fatal(err)
	}
	if err := E.Prepare(); err != nil {
		Te.Fatal(err)
	}
	if b, err := os.ReadFile(kept); err != nil || string(b) != "collisions" {
		Te.Errorf("Prepare touched existing outputs: %q %v", b, err)
	}
	for _, d := range []string{InDir, OutDir} {
		if fi, err := os.Stat(filepath.Join(root, "IRIS-2017-09-29", d)); err != nil || !fi.IsDir() {
			Te.Errorf("%s not created: %v", d, err)
		}
	}
}

func TestWriteBatch(Te *testing.T) {
	D := testData(Te)
	S := trificTarget(Te, D)
	E := NewExperiment(Te.TempDir(), "TRIFIC")
	ions := []IonRun{
		{Symbol: "Ga", Mass: 80, Energy: 381600, Count: 10, AutoSave: DefaultAutoSave},
		{Symbol: "Qq", Mass: 80, Energy: 381600, Count: 10, AutoSave: DefaultAutoSave},
		{Symbol: "Se", Mass: 80, Energy: 452000, Count: 10, AutoSave: DefaultAutoSave},
		{Symbol: "Rb", Mass: 80, Energy: 0, Count: 10, AutoSave: DefaultAutoSave},
	}
	names, errs := E.WriteBatch(S, ions)
	if names[0] != "80Ga381600.txt" || names[2] != "80Se452000.txt" || errs[0] != nil || errs[2] != nil {
		Te.Errorf("good ions not written: %v %v", names, errs)
	}
	if !errors.Is(errs[1], ErrUnknownIon) || names[1] != "" {
		Te.Errorf("expected UnknownIon for Qq, got %v", errs[1])
	}
	if !errors.Is(errs[3], ErrInvalidRange) || names[3] != "" {
		Te.Errorf("expected InvalidRange for a zero energy, got %v", errs[3])
	}
	in, err := E.Inputs()
	if err != nil {
		Te.Fatal(err)
	}
	if !reflect.DeepEqual(in, []string{"80Ga381600.txt", "80Se452000.txt"}) {
		Te.Errorf("wrong inputs in the experiment: %v", in)
	}
	//the file on disk is what Compile produces
	_, want, _ := Compile(S, ions[0])
	got, err := os.ReadFile(E.InputPath("80Ga381600.txt"))
	if err != nil || string(got) != string(want) {
		Te.Errorf("written input differs from the compiled one (%v)", err)
	}
	out, err := E.Outputs()
	if err != nil || len(out) != 0 {
		Te.Errorf("expected no outputs, got %v %v", out, err)
	}
	os.WriteFile(E.OutputPath("80Se452000.txt"), nil, 0o644)
	os.WriteFile(E.OutputPath(".hidden"), nil, 0o644)
	if out, _ := E.Outputs(); !reflect.DeepEqual(out, []string{"80Se452000.txt"}) {
		Te.Errorf("wrong outputs: %v", out)
	}
}

func TestWriteNothingOnError(Te *testing.T) {
	D := testData(Te)
	S := D.NewStack()
	S.AddLayer(LayerSpec{Position: 2, Name: "CF4", Width: 1, Gas: Flag(true)})
	E := NewExperiment(Te.TempDir(), "gap")
	ion, _ := NewIonRun(D.Atoms, "Ga", 80, 381600, 10)
	if _, err := E.Write(S, ion); !errors.Is(err, MissingLayerAt(1)) {
		Te.Errorf("expected missing layer 1, got %v", err)
	}
	if _, err := os.Stat(E.Dir()); !os.IsNotExist(err) {
		Te.Errorf("a failed write created the experiment: %v", err)
	}
}

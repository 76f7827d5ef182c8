/*
 * data_test.go, part of gotrim.
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
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

const (
	testAtomData     = "testdata/ATOMDATA"
	testCompoundData = "testdata/Compound.dat"
)

//testData loads the test catalogs and registers CF4, which TRIM lacks.
func testData(Te *testing.T) *Data {
	Te.Helper()
	D, err := LoadData(testAtomData, testCompoundData)
	if err != nil {
		Te.Fatal(err)
	}
	if err := D.Compounds.Register("CF4", 0.0003808, []Constituent{{6, 1}, {9, 4}}); err != nil {
		Te.Fatal(err)
	}
	return D
}

func TestLoadAtoms(Te *testing.T) {
	C, err := LoadAtoms(testAtomData)
	if err != nil {
		Te.Fatal(err)
	}
	z, err := C.Resolve("Ga")
	if err != nil || z != 31 {
		Te.Errorf("Ga resolved to %d, %v", z, err)
	}
	ga, _ := C.Atom(z)
	if ga.Weight != 69.723 || ga.Name != "Gallium" {
		Te.Errorf("wrong Ga data: %+v", ga)
	}
	u, ok := C.Atom(92)
	if !ok || u.Symbol != "U" || u.Surf != 5.42 {
		Te.Errorf("wrong U data: %+v", u)
	}
	c, _ := C.Atom(6)
	if c.Disp != 28 || c.Latt != 3 || c.Surf != 7.41 {
		Te.Errorf("wrong binding energies for C: %v %v %v", c.Disp, c.Latt, c.Surf)
	}
	//the row for Np is in the file, but there is no element 93
	if _, err := C.Resolve("Np"); !errors.Is(err, ErrUnknownMaterial) {
		Te.Errorf("Np should not be in the catalog, got %v", err)
	}
	if _, ok := C.Atom(93); ok {
		Te.Error("Z=93 should be out of range")
	}
}

func TestLoadAtomsFailures(Te *testing.T) {
	if _, err := LoadAtoms("testdata/nothere"); !errors.Is(err, ErrMalformedData) {
		Te.Errorf("missing file should fail with MalformedData, got %v", err)
	}
	raw, err := os.ReadFile(testAtomData)
	if err != nil {
		Te.Fatal(err)
	}
	dir := Te.TempDir()
	lines := strings.Split(string(raw), "\r\n")
	//truncated: only the first 50 elements
	short := filepath.Join(dir, "short")
	os.WriteFile(short, []byte(strings.Join(lines[:52], "\r\n")), 0o644)
	if _, err := LoadAtoms(short); !errors.Is(err, ErrMalformedData) {
		Te.Errorf("truncated file should fail, got %v", err)
	}
	//a density that is not a number
	bad := append([]string(nil), lines...)
	bad[10] = strings.Replace(bad[10], "1.5 ", "1,5 ", 1)
	badpath := filepath.Join(dir, "bad")
	os.WriteFile(badpath, []byte(strings.Join(bad, "\r\n")), 0o644)
	_, err = LoadAtoms(badpath)
	var e *Error
	if !errors.As(err, &e) || e.Kind() != MalformedData || e.FileName() != badpath {
		Te.Errorf("bad number should fail with MalformedData, got %v", err)
	}
}

func TestLoadCompressed(Te *testing.T) {
	raw, err := os.ReadFile(testAtomData)
	if err != nil {
		Te.Fatal(err)
	}
	var b bytes.Buffer
	w, err := zstd.NewWriter(&b)
	if err != nil {
		Te.Fatal(err)
	}
	w.Write(raw)
	w.Close()
	path := filepath.Join(Te.TempDir(), "ATOMDATA.zst")
	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		Te.Fatal(err)
	}
	C, err := LoadAtoms(path)
	if err != nil {
		Te.Fatal(err)
	}
	if z, _ := C.Resolve("U"); z != 92 {
		Te.Errorf("U resolved to %d from compressed data", z)
	}
	//gzip, and the latin-1 decoding after decompression
	raw, err = os.ReadFile(testCompoundData)
	if err != nil {
		Te.Fatal(err)
	}
	b.Reset()
	gz := gzip.NewWriter(&b)
	gz.Write(raw)
	gz.Close()
	path = filepath.Join(Te.TempDir(), "Compound.dat.gz")
	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		Te.Fatal(err)
	}
	CC, err := LoadCompounds(path)
	if err != nil {
		Te.Fatal(err)
	}
	if _, ok := CC.Compound("Café Glass"); !ok || CC.Len() != 5 {
		Te.Errorf("wrong compounds from gzip data: %v", CC.Names())
	}
}

func TestLoadCompounds(Te *testing.T) {
	C, err := LoadCompounds(testCompoundData)
	if err != nil {
		Te.Fatal(err)
	}
	if C.Len() != 5 {
		Te.Errorf("expected 5 compounds, got %d: %v", C.Len(), C.Names())
	}
	my, ok := C.Compound("Mylar")
	if !ok {
		Te.Fatal("Mylar not found")
	}
	if my.Density != 1.397 || len(my.Stoich) != 3 || my.Stoich[0].Z != 1 || my.Stoich[2].Z != 8 {
		Te.Errorf("wrong Mylar: %+v", my)
	}
	if !scalar.EqualWithinAbs(my.Stoich[1].Fraction, 10.0/22, 1e-12) {
		Te.Errorf("wrong C fraction in Mylar: %v", my.Stoich[1].Fraction)
	}
	//missing comma after the name, and % around it
	w, ok := C.Compound("Water_Liquid")
	if !ok || w.Density != 1 || len(w.Stoich) != 2 {
		Te.Errorf("wrong or missing water: %+v %v", w, C.Names())
	}
	//latin-1 name
	if _, ok := C.Compound("Café Glass"); !ok {
		Te.Errorf("ISO-8859-1 name not decoded: %v", C.Names())
	}
	for _, n := range C.Names() {
		c, _ := C.Compound(n)
		checkStoichSum(Te, n, c.Stoich)
	}
}

func checkStoichSum(Te *testing.T, name string, st []Constituent) {
	Te.Helper()
	f := make([]float64, len(st))
	for i, v := range st {
		f[i] = v.Fraction
	}
	if s := floats.Sum(f); !scalar.EqualWithinAbs(s, 1, 1e-12) {
		Te.Errorf("fractions of %s add up to %v", name, s)
	}
}

func TestParseCompoundLine(Te *testing.T) {
	name, c, err := ParseCompoundLine(`"Polyethylene" 0.93,2,1,2,6,1`)
	if err != nil {
		Te.Fatal(err)
	}
	if name != "Polyethylene" || c.Density != 0.93 || len(c.Stoich) != 2 {
		Te.Errorf("wrong parse: %q %+v", name, c)
	}
	if !scalar.EqualWithinAbs(c.Stoich[0].Fraction, 2.0/3, 1e-12) {
		Te.Errorf("wrong H fraction %v", c.Stoich[0].Fraction)
	}
	bad := []string{
		`no quotes,1,1,1,1`,
		`"X",abc,1,1,1`,
		`"X",1,0`,
		`"X",1,2,1,1`,
		`"X",1,1,93,1`,
		`"X",1,1,1,0`,
		`"X",1,1,1,x`,
	}
	for _, v := range bad {
		if _, _, err := ParseCompoundLine(v); !errors.Is(err, ErrMalformedData) {
			Te.Errorf("%s: expected MalformedData, got %v", v, err)
		}
	}
}

func TestRegister(Te *testing.T) {
	C := NewCompoundCatalog()
	if err := C.Register("CF4", 0.0003808, []Constituent{{6, 20}, {9, 80}}); err != nil {
		Te.Fatal(err)
	}
	c, _ := C.Compound("CF4")
	checkStoichSum(Te, "CF4", c.Stoich)
	if !scalar.EqualWithinAbs(c.Stoich[1].Fraction, 0.8, 1e-12) {
		Te.Errorf("wrong F fraction %v", c.Stoich[1].Fraction)
	}
	//the catalog keeps its own copy
	c.Stoich[0].Fraction = 5
	c2, _ := C.Compound("CF4")
	if c2.Stoich[0].Fraction == 5 {
		Te.Error("compound modified through a returned value")
	}
	if err := C.Register("X", -1, []Constituent{{1, 1}}); !errors.Is(err, ErrInvalidRange) {
		Te.Errorf("negative density accepted: %v", err)
	}
	if err := C.Register("X", 1, nil); !errors.Is(err, ErrInvalidRange) {
		Te.Errorf("empty stoichiometry accepted: %v", err)
	}
	if err := C.Register("X", 1, []Constituent{{0, 1}}); !errors.Is(err, ErrUnknownMaterial) {
		Te.Errorf("Z=0 accepted: %v", err)
	}
}

/*
 * config_test.go, part of gotrim.
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

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	trim "github.com/trific/gotrim"
)

const (
	testAtomData     = "../testdata/ATOMDATA"
	testCompoundData = "../testdata/Compound.dat"
)

func loadData(t *testing.T) *trim.Data {
	t.Helper()
	data, err := trim.LoadData(testAtomData, testCompoundData)
	require.NoError(t, err)
	return data
}

func TestLoad(t *testing.T) {
	exp, err := Load("testdata/trific.yaml")
	require.NoError(t, err)

	assert.Equal(t, "IRIS-2017-09-29", exp.Name)
	assert.Equal(t, filepath.Join("testdata", "trimdata"), exp.OutputRoot)
	assert.Equal(t, testAtomData, exp.AtomData)
	assert.Equal(t, testCompoundData, exp.CompoundData)
	require.Len(t, exp.Layers, 2)
	require.Len(t, exp.Ions, 2)
	assert.Equal(t, trim.DefaultAutoSave, exp.Ions[0].AutoSave)
	assert.Equal(t, 500, exp.Ions[1].AutoSave)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/nothere.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading experiment file")
}

func TestBuild(t *testing.T) {
	exp, err := Load("testdata/trific.yaml")
	require.NoError(t, err)
	batch, err := exp.Build()
	require.NoError(t, err)

	assert.Equal(t, 2, batch.Stack.Len())
	assert.Equal(t, filepath.Join("testdata", "trimdata", "IRIS-2017-09-29"), batch.Experiment.Dir())
	require.Len(t, batch.Ions, 2)
	assert.Equal(t, "Se", batch.Ions[1].Symbol)
	assert.Equal(t, 500, batch.Ions[1].AutoSave)

	//the description is the same target as the golden file
	name, data, err := trim.Compile(batch.Stack, batch.Ions[0])
	require.NoError(t, err)
	assert.Equal(t, "80Ga381600.txt", name)
	golden, err := os.ReadFile("../testdata/golden/80Ga381600.golden")
	require.NoError(t, err)
	assert.Equal(t, string(golden), string(data))
}

func TestParseDefaults(t *testing.T) {
	exp, err := Parse([]byte("experiment: test\nlayers: []\nions: [{symbol: Ga, mass: 80, energy: 1, count: 1}]\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultOutputRoot, exp.OutputRoot)
	assert.Equal(t, DefaultAtomData, exp.AtomData)
	assert.Equal(t, DefaultCompoundData, exp.CompoundData)
	assert.Equal(t, trim.DefaultAutoSave, exp.Ions[0].AutoSave)
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"unknown field": "experiment: test\nlayers: []\nions: []\nlayer: []\n",
		"no name":       "layers: []\nions: []\n",
		"path as name":  "experiment: ../test\nlayers: []\nions: []\n",
		"bad yaml":      "experiment: [test\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestResolvePath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	p, err := resolvePath("~/TRIFIC/TRIMDATA", "/somewhere")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "TRIFIC", "TRIMDATA"), p)

	p, err = resolvePath("/data/ATOMDATA", "/somewhere")
	require.NoError(t, err)
	assert.Equal(t, "/data/ATOMDATA", p)

	p, err = resolvePath("data/ATOMDATA", "/somewhere")
	require.NoError(t, err)
	assert.Equal(t, "/somewhere/data/ATOMDATA", p)
}

func TestGasFlag(t *testing.T) {
	const head = "experiment: test\nions: []\nlayers:\n  - {position: 1, name: Mylar, width: 1"
	cases := []struct {
		name  string
		layer string
		ok    bool
	}{
		{"missing", "}\n", false},
		{"null", ", gas: null}\n", false},
		{"number", ", gas: 1}\n", false},
		{"string", ", gas: \"false\"}\n", false},
		{"list", ", gas: [true]}\n", false},
		{"false", ", gas: false}\n", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			exp, err := Parse([]byte(head + c.layer))
			require.NoError(t, err)
			_, err = exp.BuildWith(loadData(t))
			if c.ok {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, trim.ErrInvalidFlag), "got %v", err)
		})
	}
}

func TestBuildErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "gap",
			doc: `experiment: test
ions: []
layers:
  - {position: 1, name: Mylar, width: 1, gas: false}
  - {position: 3, name: Mylar, width: 1, gas: false}
`,
			want: trim.MissingLayerAt(2),
		},
		{
			name: "unit",
			doc: `experiment: test
ions: []
layers:
  - {position: 1, name: Mylar, width: 1, unit: mm, gas: false}
`,
			want: trim.ErrInvalidUnit,
		},
		{
			name: "pressure on solid",
			doc: `experiment: test
ions: []
layers:
  - {position: 1, name: Mylar, width: 1, pressure: 80, gas: false}
`,
			want: trim.ErrPressureOnSolidLayer,
		},
		{
			name: "bad compound",
			doc: `experiment: test
ions: []
compounds:
  - {name: Weird, density: 1, stoich: [{z: 120, weight: 1}]}
layers:
  - {position: 1, name: Mylar, width: 1, gas: false}
`,
			want: trim.ErrUnknownMaterial,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			exp, err := Parse([]byte(c.doc))
			require.NoError(t, err)
			_, err = exp.BuildWith(loadData(t))
			assert.True(t, errors.Is(err, c.want), "got %v", err)
		})
	}
}

//Bad ions are only caught when written, so they don't block the others.
func TestBuildKeepsBadIons(t *testing.T) {
	exp, err := Parse([]byte(`experiment: test
layers:
  - {position: 1, name: Mylar, width: 1, gas: false}
ions:
  - {symbol: Xx, mass: 80, energy: 1, count: 1}
  - {symbol: Ga, mass: 80, energy: 1, count: 1}
`))
	require.NoError(t, err)
	batch, err := exp.BuildWith(loadData(t))
	require.NoError(t, err)
	require.Len(t, batch.Ions, 2)
	_, _, err = trim.Compile(batch.Stack, batch.Ions[0])
	assert.True(t, errors.Is(err, trim.ErrUnknownIon))
	_, _, err = trim.Compile(batch.Stack, batch.Ions[1])
	assert.NoError(t, err)
}

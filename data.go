/*
 * data.go, part of gotrim.
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

//Data bundles the two reference catalogs, which are loaded once and then only read.
type Data struct {
	Atoms     *AtomCatalog
	Compounds *CompoundCatalog
}

//LoadData loads the TRIM ATOMDATA and Compound.dat files.
func LoadData(atomPath, compoundPath string) (*Data, error) {
	atoms, err := LoadAtoms(atomPath)
	if err != nil {
		return nil, errDecorate(err, "LoadData")
	}
	compounds, err := LoadCompounds(compoundPath)
	if err != nil {
		return nil, errDecorate(err, "LoadData")
	}
	return &Data{Atoms: atoms, Compounds: compounds}, nil
}

//NewStack returns an empty stack checked against the catalogs in D.
func (D *Data) NewStack() *Stack {
	return NewStack(D.Atoms, D.Compounds)
}

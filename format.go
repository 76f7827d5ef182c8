/*
 * format.go, part of gotrim.
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
	"strconv"
)

//FormatNumber writes v the way the TRIMbatch scripts always wrote numbers to TRIM.IN:
//the shortest representation that reads back to v. Integral values have
//no decimal part. Values below 1e-4 or from 1e16 up use exponent notation,
//with at least two exponent digits (4.0084210526315786e-05).
func FormatNumber(v float64) string {
	a := math.Abs(v)
	switch {
	case v == 0:
		return "0"
	case math.IsInf(v, 0) || math.IsNaN(v):
		return strconv.FormatFloat(v, 'g', -1, 64)
	case a < 1e-4 || a >= 1e16:
		return strconv.FormatFloat(v, 'e', -1, 64)
	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}

//FileName returns the name of the TRIM input for an ion: mass, symbol
//and energy concatenated, with a .txt extension (80Ga381600.txt). The
//simulation output keeps the same name, so that is all that is needed to
//find one from the other.
func FileName(mass float64, symbol string, energy float64) string {
	return FormatNumber(mass) + symbol + FormatNumber(energy) + ".txt"
}

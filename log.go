/*
 * log.go, part of gotrim.
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

import "log/slog"

var pkgLogger *slog.Logger

//SetLogger sets the logger used by the package. A nil l restores the
//default, which is whatever slog.Default returns at the time of logging.
func SetLogger(l *slog.Logger) {
	pkgLogger = l
}

func logger() *slog.Logger {
	if pkgLogger != nil {
		return pkgLogger
	}
	return slog.Default()
}

/*
 * errors.go, part of gotrim.
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
	"strings"
)

//Kind classifies the errors returned by this package, so callers can
//branch on them with errors.Is against the Err* sentinels.
type Kind int

const (
	KindUnknown Kind = iota
	UnknownIon
	UnknownMaterial
	InvalidUnit
	InvalidRange
	InvalidFlag
	MissingLayer
	PressureOnSolidLayer
	MalformedData
)

var kindNames = map[Kind]string{
	KindUnknown:          "unknown error",
	UnknownIon:           "unknown ion",
	UnknownMaterial:      "unknown material",
	InvalidUnit:          "invalid unit",
	InvalidRange:         "invalid range",
	InvalidFlag:          "invalid flag",
	MissingLayer:         "missing layer",
	PressureOnSolidLayer: "pressure on solid layer",
	MalformedData:        "malformed data",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

//Sentinels, only meaningful as errors.Is targets.
var (
	ErrUnknownIon           = &Error{kind: UnknownIon}
	ErrUnknownMaterial      = &Error{kind: UnknownMaterial}
	ErrInvalidUnit          = &Error{kind: InvalidUnit}
	ErrInvalidRange         = &Error{kind: InvalidRange}
	ErrInvalidFlag          = &Error{kind: InvalidFlag}
	ErrMissingLayer         = &Error{kind: MissingLayer}
	ErrPressureOnSolidLayer = &Error{kind: PressureOnSolidLayer}
	ErrMalformedData        = &Error{kind: MalformedData}
)

//Error is the error type for all validation and loading failures in gotrim.
//Like the goChem errors, it carries a decoration slice with the names of the
//functions it went through on its way up.
type Error struct {
	kind     Kind
	message  string
	at       int    //layer position, for MissingLayer
	filename string //data source, if any
	deco     []string
	err      error
}

func newError(kind Kind, caller string, format string, args ...interface{}) *Error {
	return &Error{kind: kind, message: fmt.Sprintf(format, args...), deco: []string{caller}}
}

func (err *Error) Error() string {
	var b strings.Builder
	b.WriteString("gotrim: ")
	b.WriteString(err.kind.String())
	if err.filename != "" {
		fmt.Fprintf(&b, " in %s", err.filename)
	}
	if err.message != "" {
		b.WriteString(": ")
		b.WriteString(err.message)
	}
	if err.err != nil {
		b.WriteString(": ")
		b.WriteString(err.err.Error())
	}
	return b.String()
}

//Decorate adds dec to the decoration slice of the error and returns the resulting slice.
//An empty string just returns the current slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Kind returns the class of the error.
func (err *Error) Kind() Kind { return err.kind }

//At returns the layer position a MissingLayer error refers to, 0 otherwise.
func (err *Error) At() int { return err.at }

//FileName returns the data file associated with the error, if any.
func (err *Error) FileName() string { return err.filename }

func (err *Error) Unwrap() error { return err.err }

//Is reports whether target is an *Error of the same kind. A MissingLayer
//target with a position set only matches errors for that position.
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.kind != err.kind {
		return false
	}
	return t.at == 0 || t.at == err.at
}

//errDecorate decorates err with the caller's name if it is an *Error,
//and returns it unchanged otherwise.
func errDecorate(err error, caller string) error {
	if e, ok := err.(*Error); ok {
		e.Decorate(caller)
	}
	return err
}

//MissingLayerAt returns an errors.Is target that matches only a MissingLayer
//error for the given position.
func MissingLayerAt(pos int) error {
	return &Error{kind: MissingLayer, at: pos}
}

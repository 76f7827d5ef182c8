/*
 * files.go, part of gotrim.
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
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/text/encoding/charmap"
)

//*zstd.Decoder has a Close without an error return, so it needs a wrapper
//to be an io.ReadCloser.
type zstdCloser struct {
	*zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

//dataFile is an open reference data source. The reference files
//can be kept compressed (.zst or .gz) next to the TRIM installation.
type dataFile struct {
	f        *os.File
	dec      io.ReadCloser
	r        *bufio.Reader
	filename string
}

//openData opens the data file name, picking the decompressor from its extension.
//If latin1 is true, the content is decoded from ISO-8859-1, which is the encoding
//TRIM uses for Compound.dat.
func openData(name string, latin1 bool) (*dataFile, error) {
	D := &dataFile{filename: name}
	var err error
	D.f, err = os.Open(name)
	if err != nil {
		return nil, &Error{kind: MalformedData, message: "unable to open file", filename: name, deco: []string{"openData"}, err: err}
	}
	var src io.Reader = bufio.NewReader(D.f)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst", ".zstd":
		r, err := zstd.NewReader(src)
		if err != nil {
			D.f.Close()
			return nil, &Error{kind: MalformedData, message: "can't start zstd decoder", filename: name, deco: []string{"openData"}, err: err}
		}
		D.dec = zstdCloser{r}
	case ".gz":
		r, err := gzip.NewReader(src)
		if err != nil {
			D.f.Close()
			return nil, &Error{kind: MalformedData, message: "can't read gzip header", filename: name, deco: []string{"openData"}, err: err}
		}
		D.dec = r
	}
	if D.dec != nil {
		src = D.dec
	}
	if latin1 {
		src = charmap.ISO8859_1.NewDecoder().Reader(src)
	}
	D.r = bufio.NewReader(src)
	return D, nil
}

//Lines returns a scanner over the lines of the file, without line terminators.
func (D *dataFile) Lines() *bufio.Scanner {
	s := bufio.NewScanner(D.r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return s
}

func (D *dataFile) Close() error {
	if D.dec != nil {
		D.dec.Close()
	}
	return D.f.Close()
}

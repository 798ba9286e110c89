/*
 * compress.go, part of goffea.
 *
 * Copyright 2026 The goffea developers
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
 */

package ffeatraj

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression is the codec used for a trajectory file.
type Compression int

const (
	Plain Compression = iota
	Gzip
	Zstd
)

// CompressionFor picks the codec from the file extension: .zst or .zstd
// for zstd, .gz for gzip, plain text otherwise.
func CompressionFor(filename string) Compression {
	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".zst"), strings.HasSuffix(name, ".zstd"):
		return Zstd
	case strings.HasSuffix(name, ".gz"):
		return Gzip
	}
	return Plain
}

// zstd's Decoder Close does not return an error, so it
// doesn't satisfy io.ReadCloser on its own.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// fileReader closes both the decompressor and the file.
type fileReader struct {
	io.Reader
	dec io.Closer
	f   *os.File
}

func (r *fileReader) Close() error {
	var err error
	if r.dec != nil {
		err = r.dec.Close()
	}
	if err2 := r.f.Close(); err == nil {
		err = err2
	}
	return err
}

// Open opens a trajectory file for reading, decompressing it if needed.
func Open(filename string) (io.ReadCloser, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, &IOError{err, filename, []string{"Open"}}
	}
	buf := bufio.NewReader(f)
	switch CompressionFor(filename) {
	case Zstd:
		d, err := zstd.NewReader(buf)
		if err != nil {
			f.Close()
			return nil, &IOError{err, filename, []string{"zstd.NewReader", "Open"}}
		}
		z := zstdReadCloser{d}
		return &fileReader{z, z, f}, nil
	case Gzip:
		g, err := gzip.NewReader(buf)
		if err != nil {
			f.Close()
			return nil, &IOError{err, filename, []string{"gzip.NewReader", "Open"}}
		}
		return &fileReader{g, g, f}, nil
	}
	return &fileReader{buf, nil, f}, nil
}

// fileWriter flushes and closes the compressor before closing the file.
type fileWriter struct {
	io.Writer
	enc io.Closer
	f   *os.File
}

func (w *fileWriter) Close() error {
	var err error
	if w.enc != nil {
		err = w.enc.Close()
	}
	if err2 := w.f.Close(); err == nil {
		err = err2
	}
	return err
}

// Create creates (or truncates) a trajectory file for writing, compressing
// it according to its extension. The returned writer must be closed.
func Create(filename string) (io.WriteCloser, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, &IOError{err, filename, []string{"Create"}}
	}
	switch CompressionFor(filename) {
	case Zstd:
		e, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			f.Close()
			return nil, &IOError{err, filename, []string{"zstd.NewWriter", "Create"}}
		}
		return &fileWriter{e, e, f}, nil
	case Gzip:
		g := gzip.NewWriter(f)
		return &fileWriter{g, g, f}, nil
	}
	return &fileWriter{f, nil, f}, nil
}

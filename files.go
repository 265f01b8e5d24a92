/*
 * files.go, part of golammps.
 *
 *
 * Copyright 2025 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package lammps

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression is the compression of a file, deduced from its name.
type Compression int

const (
	Plain Compression = iota
	Gzip
	Zstd
)

// CompressionOf returns the compression used by the file name:
// Gzip for names ending in ".gz", Zstd for ".zst" and ".zstd", Plain otherwise.
func CompressionOf(name string) Compression {
	n := strings.ToLower(name)
	switch {
	case strings.HasSuffix(n, ".gz"):
		return Gzip
	case strings.HasSuffix(n, ".zst"), strings.HasSuffix(n, ".zstd"):
		return Zstd
	}
	return Plain
}

// Why couldn't *zstd.Decoder implement io.ReadCloser? :-(
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// stackedReader closes the decompressor and then the file under it.
type stackedReader struct {
	io.ReadCloser
	f *os.File
}

func (s stackedReader) Close() error {
	err := s.ReadCloser.Close()
	if err2 := s.f.Close(); err == nil {
		err = err2
	}
	return err
}

// stackedWriter closes the compressor, flushes the buffer and then closes the file.
type stackedWriter struct {
	io.WriteCloser
	b *bufio.Writer
	f *os.File
}

func (s stackedWriter) Close() error {
	err := s.WriteCloser.Close()
	if err2 := s.b.Flush(); err == nil {
		err = err2
	}
	if err2 := s.f.Close(); err == nil {
		err = err2
	}
	return err
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// Open opens the file name for reading, decompressing it if its name says it is compressed.
func Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	var r io.ReadCloser
	in := bufio.NewReader(f)
	switch CompressionOf(name) {
	case Gzip:
		var g *gzip.Reader
		g, err = gzip.NewReader(in)
		r = g
	case Zstd:
		var z *zstd.Decoder
		z, err = zstd.NewReader(in)
		r = zstdReadCloser{z}
	default:
		r = io.NopCloser(in)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("Can't open %s for decompression: %w", name, err)
	}
	return stackedReader{r, f}, nil
}

// ReadFile returns the whole (decompressed) content of the file name.
func ReadFile(name string) (string, error) {
	r, err := Open(name)
	if err != nil {
		return "", err
	}
	defer r.Close()
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("Can't read %s: %w", name, err)
	}
	return string(b), nil
}

// Create creates (or truncates) the file name for writing, compressing what is written
// if the name ends in ".gz" or ".zst". The file is complete only after Close returns.
func Create(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	b := bufio.NewWriter(f)
	var w io.WriteCloser
	switch CompressionOf(name) {
	case Gzip:
		w, err = gzip.NewWriterLevel(b, gzip.DefaultCompression)
	case Zstd:
		w, err = zstd.NewWriter(b, zstd.WithEncoderLevel(zstd.SpeedDefault))
	default:
		w = nopWriteCloser{b}
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("Can't create %s for compression: %w", name, err)
	}
	return stackedWriter{w, b, f}, nil
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iox opens, reads, and saves values through any encoding
// with a streaming Decoder and Encoder. The tomlx and yamlx subpackages
// bind it to TOML and YAML, the formats of settings and scene files.
package iox

import (
	"bufio"
	"bytes"
	"io"
	"os"
)

// Decoder decodes values from the reader it was created with.
type Decoder interface {
	Decode(v any) error
}

// DecoderFunc returns a new Decoder for the given reader.
type DecoderFunc func(r io.Reader) Decoder

// Open reads the given value from the given file.
func Open(v any, filename string, f DecoderFunc) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return f(bufio.NewReader(fp)).Decode(v)
}

// ReadBytes reads the given value from the given bytes.
func ReadBytes(v any, data []byte, f DecoderFunc) error {
	return f(bytes.NewReader(data)).Decode(v)
}

// Encoder encodes values to the writer it was created with.
type Encoder interface {
	Encode(v any) error
}

// EncoderFunc returns a new Encoder for the given writer.
type EncoderFunc func(w io.Writer) Encoder

// Save writes the given value to the given file, replacing it.
func Save(v any, filename string, f EncoderFunc) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := f(bw).Encode(v); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteBytes returns the encoding of the given value.
func WriteBytes(v any, f EncoderFunc) ([]byte, error) {
	var b bytes.Buffer
	if err := f(&b).Encode(v); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

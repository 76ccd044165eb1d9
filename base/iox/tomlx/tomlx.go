// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx provides TOML open and save functions
// built on github.com/pelletier/go-toml/v2.
package tomlx

import (
	"io"

	"cogentcore.org/framekit/base/iox"
	"github.com/pelletier/go-toml/v2"
)

// NewDecoder returns a new [iox.Decoder]
func NewDecoder(r io.Reader) iox.Decoder { return toml.NewDecoder(r) }

// NewEncoder returns a new [iox.Encoder] that indents
// nested tables and writes arrays one element per line.
func NewEncoder(w io.Writer) iox.Encoder {
	return toml.NewEncoder(w).SetIndentTables(true).SetArraysMultiline(true)
}

// Open reads the given value from the given file using TOML encoding.
func Open(v any, filename string) error {
	return iox.Open(v, filename, NewDecoder)
}

// ReadBytes reads the given value from the given bytes using TOML encoding.
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, NewDecoder)
}

// Save writes the given value to the given file using TOML encoding.
func Save(v any, filename string) error {
	return iox.Save(v, filename, NewEncoder)
}

// WriteBytes returns the TOML encoding of the given value.
func WriteBytes(v any) ([]byte, error) {
	return iox.WriteBytes(v, NewEncoder)
}

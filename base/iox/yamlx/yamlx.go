// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlx provides YAML open and save functions
// built on gopkg.in/yaml.v3.
package yamlx

import (
	"io"

	"cogentcore.org/framekit/base/iox"
	"gopkg.in/yaml.v3"
)

// NewDecoder returns a new [iox.Decoder]
func NewDecoder(r io.Reader) iox.Decoder { return yaml.NewDecoder(r) }

// NewEncoder returns a new [iox.Encoder] with an indent of 2.
func NewEncoder(w io.Writer) iox.Encoder {
	e := yaml.NewEncoder(w)
	e.SetIndent(2)
	return e
}

// Open reads the given value from the given file using YAML encoding.
func Open(v any, filename string) error {
	return iox.Open(v, filename, NewDecoder)
}

// ReadBytes reads the given value from the given bytes using YAML encoding.
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, NewDecoder)
}

// Save writes the given value to the given file using YAML encoding.
func Save(v any, filename string) error {
	return iox.Save(v, filename, NewEncoder)
}

// WriteBytes returns the YAML encoding of the given value.
func WriteBytes(v any) ([]byte, error) {
	return iox.WriteBytes(v, NewEncoder)
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scenefile loads declarative descriptions of frame trees from
// TOML or YAML files and builds them in a [frames.Registry].
package scenefile

import (
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/framekit/base/iox/tomlx"
	"cogentcore.org/framekit/base/iox/yamlx"
	"cogentcore.org/framekit/frames"
)

// Formats are the supported scene file encodings.
type Formats int32

const (
	TOML Formats = iota
	YAML
)

// FormatFromExt returns the format for the given filename extension.
func FormatFromExt(filename string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("scenefile: unsupported scene file %q", filename)
}

// Scene is a frame tree description.
type Scene struct {

	// Settings are the registry settings; keys that are not given keep their defaults.
	Settings frames.Settings `toml:"settings" yaml:"settings"`

	// Frames are the root frames, or any frames with an explicit Parent.
	Frames []Frame `toml:"frames" yaml:"frames"`

	// Input is the initial pointer state.
	Input Input `toml:"input" yaml:"input"`
}

// Frame describes one frame and its children.
type Frame struct {
	Name string       `toml:"name" yaml:"name"`
	Kind frames.Kinds `toml:"kind" yaml:"kind"`

	// Parent is the name of the parent frame, for frames that are not
	// nested in the Children of their parent. It must be defined earlier.
	Parent string `toml:"parent" yaml:"parent"`

	// Key registers the frame as a named child of its parent, for
	// example Normal or Pushed for the state textures of a button.
	Key string `toml:"key" yaml:"key"`

	Width  float32 `toml:"width" yaml:"width"`
	Height float32 `toml:"height" yaml:"height"`

	Anchors []Anchor `toml:"anchors" yaml:"anchors"`

	// AllPoints makes the frame cover the named frame
	// ("$parent" or empty for the parent).
	AllPoints *string `toml:"all_points" yaml:"all_points"`

	Strata *frames.Strata `toml:"strata" yaml:"strata"`
	Level  *int           `toml:"level" yaml:"level"`
	Alpha  *float32       `toml:"alpha" yaml:"alpha"`
	Scale  *float32       `toml:"scale" yaml:"scale"`

	Hidden   bool               `toml:"hidden" yaml:"hidden"`
	Layer    *frames.DrawLayers `toml:"layer" yaml:"layer"`
	Sublayer int                `toml:"sublayer" yaml:"sublayer"`
	Mouse    bool               `toml:"mouse" yaml:"mouse"`
	Clamp    bool               `toml:"clamp" yaml:"clamp"`
	Offset   [2]float32         `toml:"offset" yaml:"offset"`
	Disabled bool               `toml:"disabled" yaml:"disabled"`
	Pushed   bool               `toml:"pushed" yaml:"pushed"`

	// Line is the geometry of a Line frame.
	Line *Line `toml:"line" yaml:"line"`

	Children []Frame `toml:"children" yaml:"children"`
}

// Anchor describes one anchor. An empty Target or "$parent" is the
// parent; anything else is the name of a frame, which may be defined later.
type Anchor struct {
	Point         frames.Points  `toml:"point" yaml:"point"`
	Target        string         `toml:"target" yaml:"target"`
	RelativePoint *frames.Points `toml:"relative_point" yaml:"relative_point"`
	X             float32        `toml:"x" yaml:"x"`
	Y             float32        `toml:"y" yaml:"y"`
}

// Line describes the geometry of a Line frame.
type Line struct {
	Start     LineEnd  `toml:"start" yaml:"start"`
	End       LineEnd  `toml:"end" yaml:"end"`
	Thickness *float32 `toml:"thickness" yaml:"thickness"`
}

// LineEnd describes one endpoint of a line.
type LineEnd struct {
	Point  frames.Points `toml:"point" yaml:"point"`
	Target string        `toml:"target" yaml:"target"`
	X      float32       `toml:"x" yaml:"x"`
	Y      float32       `toml:"y" yaml:"y"`
}

// Input is the pointer state, by frame name.
type Input struct {
	Hovered string `toml:"hovered" yaml:"hovered"`
	Pressed string `toml:"pressed" yaml:"pressed"`
}

// New returns a new empty scene with default settings.
func New() *Scene {
	sc := &Scene{}
	sc.Settings.Defaults()
	return sc
}

// Open returns the scene in the given .toml, .yaml, or .yml file.
func Open(filename string) (*Scene, error) {
	f, err := FormatFromExt(filename)
	if err != nil {
		return nil, err
	}
	sc := New()
	switch f {
	case YAML:
		err = yamlx.Open(sc, filename)
	default:
		err = tomlx.Open(sc, filename)
	}
	if err != nil {
		return nil, fmt.Errorf("scenefile.Open %q: %w", filename, err)
	}
	return sc, nil
}

// ReadBytes returns the scene encoded in the given data.
func ReadBytes(data []byte, f Formats) (*Scene, error) {
	sc := New()
	var err error
	switch f {
	case YAML:
		err = yamlx.ReadBytes(sc, data)
	default:
		err = tomlx.ReadBytes(sc, data)
	}
	if err != nil {
		return nil, fmt.Errorf("scenefile.ReadBytes: %w", err)
	}
	return sc, nil
}

// Save writes the scene to the given .toml, .yaml, or .yml file.
func (sc *Scene) Save(filename string) error {
	f, err := FormatFromExt(filename)
	if err != nil {
		return err
	}
	if f == YAML {
		return yamlx.Save(sc, filename)
	}
	return tomlx.Save(sc, filename)
}

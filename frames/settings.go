// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frames

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/framekit/base/iox/tomlx"
	"cogentcore.org/framekit/base/iox/yamlx"
)

// Settings are the configurable defaults of a [Registry].
type Settings struct {

	// ScreenWidth is the screen width used until a layout pass
	// supplies its own screen size.
	ScreenWidth float32 `toml:"screen_width" yaml:"screen_width"`

	// ScreenHeight is the screen height used until a layout pass
	// supplies its own screen size.
	ScreenHeight float32 `toml:"screen_height" yaml:"screen_height"`

	// DefaultStrata is the strata of root frames that have not pinned one.
	DefaultStrata Strata `toml:"default_strata" yaml:"default_strata"`

	// HitTestExclude are the names of full-screen or non-interactive
	// overlay frames that never take part in hit-testing.
	HitTestExclude []string `toml:"hit_test_exclude" yaml:"hit_test_exclude"`
}

// Defaults sets the default values of the settings.
func (s *Settings) Defaults() {
	s.ScreenWidth = 1024
	s.ScreenHeight = 768
	s.DefaultStrata = StrataMedium
	s.HitTestExclude = []string{"UIParent", "WorldFrame"}
}

// IsHitTestExcluded returns whether frames with the given name
// are excluded from hit-testing.
func (s *Settings) IsHitTestExcluded(name string) bool {
	return name != "" && slices.Contains(s.HitTestExclude, name)
}

// OpenSettings returns the defaults overridden by the settings in the
// given .toml, .yaml, or .yml file.
func OpenSettings(filename string) (*Settings, error) {
	s := &Settings{}
	s.Defaults()
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		err = tomlx.Open(s, filename)
	case ".yaml", ".yml":
		err = yamlx.Open(s, filename)
	default:
		err = fmt.Errorf("frames.OpenSettings: unsupported settings file %q", filename)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Save writes the settings to the given .toml, .yaml, or .yml file.
func (s *Settings) Save(filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return tomlx.Save(s, filename)
	case ".yaml", ".yml":
		return yamlx.Save(s, filename)
	}
	return fmt.Errorf("frames.Settings.Save: unsupported settings file %q", filename)
}

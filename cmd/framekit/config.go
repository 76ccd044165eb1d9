// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/framekit/base/errors"
	"cogentcore.org/framekit/frames"
	"cogentcore.org/framekit/scenefile"
)

// Config is the command line configuration of framekit.
type Config struct {

	// Settings is an optional settings file overriding the scene settings.
	Settings string

	// Width and Height override the screen size of the settings.
	Width, Height float32

	// Verbose, VeryVerbose, and Quiet select the log level.
	Verbose, VeryVerbose, Quiet bool

	// Watch renders again whenever the scene file changes.
	Watch bool

	// Subtrees restricts rendering to the subtrees of the named frames.
	Subtrees []string
}

// open builds the registry of the given scene file. Scene build errors
// are logged, and the frames that could be built are kept.
func (c *Config) open(scene string) (*frames.Registry, error) {
	sc, err := scenefile.Open(scene)
	if err != nil {
		return nil, err
	}
	if c.Settings != "" {
		s, err := frames.OpenSettings(c.Settings)
		if err != nil {
			return nil, err
		}
		sc.Settings = *s
	}
	if c.Width > 0 {
		sc.Settings.ScreenWidth = c.Width
	}
	if c.Height > 0 {
		sc.Settings.ScreenHeight = c.Height
	}
	return errors.Log1(sc.NewRegistry()), nil
}

// screen returns the screen size of the registry settings.
func screen(r *frames.Registry) (float32, float32) {
	return r.Settings.ScreenWidth, r.Settings.ScreenHeight
}

// byName returns the frame with the given name.
func byName(r *frames.Registry, name string) (*frames.Frame, error) {
	f := r.ByName(name)
	if f == nil {
		return nil, fmt.Errorf("no frame named %q", name)
	}
	return f, nil
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenefile

import (
	"fmt"
	"log/slog"

	"cogentcore.org/framekit/base/errors"
	"cogentcore.org/framekit/frames"
)

// ParentName is the anchor target name for the parent frame.
const ParentName = "$parent"

// NewRegistry returns a new registry with the settings of
// the scene, and the scene built in it.
func (sc *Scene) NewRegistry() (*frames.Registry, error) {
	r := frames.NewRegistry(&sc.Settings)
	return r, sc.Build(r)
}

// pending is a created frame waiting for its properties.
type pending struct {
	id    frames.ID
	frame *Frame
}

// Build creates all of the frames of the scene in the given registry, then
// applies their properties and anchors, so that anchors can target frames
// defined later in the file. A frame that cannot be created skips its
// children; any other failure is reported but does not stop the build.
// The returned error joins all of the failures.
func (sc *Scene) Build(r *frames.Registry) error {
	var errs []error
	var made []pending
	var create func(fr *Frame, parent frames.ID)
	create = func(fr *Frame, parent frames.ID) {
		if fr.Parent != "" {
			pf := r.ByName(fr.Parent)
			if pf == nil {
				errs = append(errs, fmt.Errorf("frame %q: parent %q is not defined", fr.Name, fr.Parent))
				return
			}
			parent = pf.ID
		}
		id, err := r.Create(fr.Kind, fr.Name, parent)
		if err != nil {
			errs = append(errs, fmt.Errorf("frame %q: %w", fr.Name, err))
			return
		}
		made = append(made, pending{id, fr})
		for i := range fr.Children {
			create(&fr.Children[i], id)
		}
	}
	for i := range sc.Frames {
		create(&sc.Frames[i], frames.NoID)
	}
	for _, p := range made {
		if err := sc.apply(r, p.id, p.frame); err != nil {
			errs = append(errs, fmt.Errorf("frame %v: %w", r.Get(p.id), err))
		}
	}
	if ptr, ok := r.Input.(*frames.Pointer); ok {
		ptr.Hovered = lookup(r, sc.Input.Hovered)
		ptr.Pressed = lookup(r, sc.Input.Pressed)
	}
	slog.Debug("scenefile: built", "frames", len(made), "errors", len(errs))
	return errors.Join(errs...)
}

// lookup returns the id of the frame with the given name, if any.
func lookup(r *frames.Registry, name string) frames.ID {
	if f := r.ByName(name); f != nil {
		return f.ID
	}
	return frames.NoID
}

// target returns the anchor target for the given name.
func target(name string) frames.Target {
	if name == "" || name == ParentName {
		return frames.ParentTarget()
	}
	return frames.NamedTarget(name)
}

// apply sets the properties of the created frame with the given id.
func (sc *Scene) apply(r *frames.Registry, id frames.ID, fr *Frame) error {
	var errs []error
	add := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}
	f := r.Get(id)
	if fr.Key != "" && f.Parent != frames.NoID {
		add(r.SetNamedChild(f.Parent, fr.Key, id))
	}
	add(r.SetSize(id, fr.Width, fr.Height))
	if fr.AllPoints != nil {
		add(r.SetAllPoints(id, target(*fr.AllPoints)))
	}
	for _, a := range fr.Anchors {
		rel := a.Point
		if a.RelativePoint != nil {
			rel = *a.RelativePoint
		}
		add(r.SetPoint(id, frames.NewAnchor(a.Point, target(a.Target), rel, a.X, a.Y)))
	}
	if fr.Strata != nil {
		add(r.SetStrata(id, *fr.Strata))
	}
	if fr.Level != nil {
		add(r.SetLevel(id, *fr.Level))
	}
	if fr.Alpha != nil {
		add(r.SetAlpha(id, *fr.Alpha))
	}
	if fr.Scale != nil {
		add(r.SetScale(id, *fr.Scale))
	}
	if fr.Layer != nil || fr.Sublayer != 0 {
		layer := f.DrawLayer
		if fr.Layer != nil {
			layer = *fr.Layer
		}
		add(r.SetDrawLayer(id, layer, fr.Sublayer))
	}
	add(r.SetShown(id, !fr.Hidden))
	add(r.SetMouseEnabled(id, fr.Mouse))
	add(r.SetClampToScreen(id, fr.Clamp))
	add(r.SetAnimOffset(id, fr.Offset[0], fr.Offset[1]))
	add(r.SetEnabled(id, !fr.Disabled))
	add(r.SetButtonPushed(id, fr.Pushed))
	if ln := fr.Line; ln != nil {
		add(r.SetLineStart(id, frames.LineAnchor{Point: ln.Start.Point, Target: target(ln.Start.Target), X: ln.Start.X, Y: ln.Start.Y}))
		add(r.SetLineEnd(id, frames.LineAnchor{Point: ln.End.Point, Target: target(ln.End.Target), X: ln.End.X, Y: ln.End.Y}))
		if ln.Thickness != nil {
			add(r.SetLineThickness(id, *ln.Thickness))
		}
	}
	return errors.Join(errs...)
}

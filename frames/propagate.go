// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frames

import (
	"fmt"
	"log/slog"

	"cogentcore.org/framekit/math32"
)

// SetStrata sets and pins the strata of the given frame, and propagates it
// to every descendant that has not pinned its own strata.
func (r *Registry) SetStrata(id ID, strata Strata) error {
	f, err := r.frame(id)
	if err != nil {
		return fmt.Errorf("frames.SetStrata: %w", err)
	}
	f.Strata = strata
	f.StrataPinned = true
	r.propagate(f)
	r.orderStale = true
	return nil
}

// UnpinStrata removes the pin set by [Registry.SetStrata], so that the
// frame inherits its strata from its parent again.
func (r *Registry) UnpinStrata(id ID) error {
	f, err := r.frame(id)
	if err != nil {
		return fmt.Errorf("frames.UnpinStrata: %w", err)
	}
	f.StrataPinned = false
	r.inherit(f)
	r.propagate(f)
	r.orderStale = true
	return nil
}

// SetLevel sets and pins the level of the given frame. Descendants without
// a pinned level are re-based to one more than their parent.
func (r *Registry) SetLevel(id ID, level int) error {
	f, err := r.frame(id)
	if err != nil {
		return fmt.Errorf("frames.SetLevel: %w", err)
	}
	f.Level = level
	f.LevelPinned = true
	r.propagate(f)
	r.orderStale = true
	return nil
}

// UnpinLevel removes the pin set by [Registry.SetLevel].
func (r *Registry) UnpinLevel(id ID) error {
	f, err := r.frame(id)
	if err != nil {
		return fmt.Errorf("frames.UnpinLevel: %w", err)
	}
	f.LevelPinned = false
	r.inherit(f)
	r.propagate(f)
	r.orderStale = true
	return nil
}

// SetAlpha sets the local alpha of the given frame, clamped to [0, 1]
// (NaN is treated as 0), and updates the effective alpha of its subtree.
func (r *Registry) SetAlpha(id ID, alpha float32) error {
	f, err := r.frame(id)
	if err != nil {
		return fmt.Errorf("frames.SetAlpha: %w", err)
	}
	if math32.IsNaN(alpha) {
		alpha = 0
	}
	f.Alpha = math32.Clamp(alpha, 0, 1)
	r.inherit(f)
	r.propagate(f)
	return nil
}

// SetScale sets the local scale of the given frame and updates the
// effective scale of its subtree. A scale that is not a finite value
// greater than zero is rejected with [ErrInvalidScale].
func (r *Registry) SetScale(id ID, scale float32) error {
	f, err := r.frame(id)
	if err != nil {
		return fmt.Errorf("frames.SetScale: %w", err)
	}
	if !(scale > 0) || math32.IsInf(scale, 1) {
		slog.Warn("frames: rejected scale", "frame", f, "scale", scale)
		return fmt.Errorf("frames.SetScale %v to %g: %w", f, scale, ErrInvalidScale)
	}
	f.Scale = scale
	r.inherit(f)
	r.propagate(f)
	return nil
}

// inherit derives the unpinned strata and level and the effective alpha
// and scale of the given frame from its parent. A root frame takes the
// default strata and level 0.
func (r *Registry) inherit(f *Frame) {
	par := r.frames[f.Parent]
	if par == nil {
		if !f.StrataPinned {
			f.Strata = r.Settings.DefaultStrata
		}
		if !f.LevelPinned {
			f.Level = 0
		}
		f.EffectiveAlpha = f.Alpha
		f.EffectiveScale = f.Scale
		return
	}
	if !f.StrataPinned {
		f.Strata = par.Strata
	}
	if !f.LevelPinned {
		f.Level = par.Level + 1
	}
	f.EffectiveAlpha = f.Alpha * par.EffectiveAlpha
	f.EffectiveScale = f.Scale * par.EffectiveScale
}

// propagate re-derives the inherited values of all of the descendants
// of the given frame, parents before children. Pinned descendants keep
// their own values but still re-base their unpinned descendants.
func (r *Registry) propagate(f *Frame) {
	r.WalkDownBreadth(f.ID, func(d *Frame) bool {
		if d != f {
			r.inherit(d)
		}
		return Continue
	})
}

// EffectiveAlpha returns the effective alpha of the given frame.
func (r *Registry) EffectiveAlpha(id ID) (float32, bool) {
	f := r.frames[id]
	if f == nil {
		return 0, false
	}
	return f.EffectiveAlpha, true
}

// EffectiveScale returns the effective scale of the given frame.
func (r *Registry) EffectiveScale(id ID) (float32, bool) {
	f := r.frames[id]
	if f == nil {
		return 0, false
	}
	return f.EffectiveScale, true
}

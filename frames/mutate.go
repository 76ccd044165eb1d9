// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frames

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/framekit/base/errors"
	"cogentcore.org/framekit/base/ordmap"
	"cogentcore.org/framekit/math32"
)

// SetSize sets the explicit size of the given frame, in unscaled units.
// Negative values are treated as zero, which means derived from anchors.
func (r *Registry) SetSize(id ID, width, height float32) error {
	f, err := r.frame(id)
	if err != nil {
		return fmt.Errorf("frames.SetSize: %w", err)
	}
	f.Width = math32.Max(width, 0)
	f.Height = math32.Max(height, 0)
	return nil
}

// SetWidth sets the explicit width of the given frame.
func (r *Registry) SetWidth(id ID, width float32) error {
	f, err := r.frame(id)
	if err != nil {
		return fmt.Errorf("frames.SetWidth: %w", err)
	}
	f.Width = math32.Max(width, 0)
	return nil
}

// SetHeight sets the explicit height of the given frame.
func (r *Registry) SetHeight(id ID, height float32) error {
	f, err := r.frame(id)
	if err != nil {
		return fmt.Errorf("frames.SetHeight: %w", err)
	}
	f.Height = math32.Max(height, 0)
	return nil
}

// SetPoint adds the given anchor to the frame, replacing any existing
// anchor on the same point. A named target is bound to the frame holding
// the name, if there is one. An anchor that would make the layout of the
// frame depend on itself is rejected with [ErrCyclicAnchor], and the
// anchors of the frame are left unchanged.
func (r *Registry) SetPoint(id ID, a Anchor) error {
	f, err := r.frame(id)
	if err != nil {
		return fmt.Errorf("frames.SetPoint: %w", err)
	}
	if a.Target, err = r.bindTarget(a.Target); err != nil {
		return fmt.Errorf("frames.SetPoint %v: target: %w", f, err)
	}
	if err := r.checkTarget(f, a.Target); err != nil {
		slog.Warn("frames: rejected anchor", "frame", f, "anchor", a)
		return fmt.Errorf("frames.SetPoint %v %v: %w", f, a, err)
	}
	if i := slices.IndexFunc(f.Anchors, func(o Anchor) bool { return o.Point == a.Point }); i >= 0 {
		f.Anchors[i] = a
	} else {
		f.Anchors = append(f.Anchors, a)
	}
	return nil
}

// SetAnchors replaces all of the anchors of the given frame. Either every
// anchor is accepted or none is, as for [Registry.SetPoint].
func (r *Registry) SetAnchors(id ID, anchors ...Anchor) error {
	f, err := r.frame(id)
	if err != nil {
		return fmt.Errorf("frames.SetAnchors: %w", err)
	}
	bound := make([]Anchor, 0, len(anchors))
	var errs []error
	for _, a := range anchors {
		t, err := r.bindTarget(a.Target)
		if err != nil {
			errs = append(errs, fmt.Errorf("%v: target: %w", a, err))
			continue
		}
		a.Target = t
		if err := r.checkTarget(f, t); err != nil {
			errs = append(errs, fmt.Errorf("%v: %w", a, err))
			continue
		}
		if i := slices.IndexFunc(bound, func(o Anchor) bool { return o.Point == a.Point }); i >= 0 {
			bound[i] = a
		} else {
			bound = append(bound, a)
		}
	}
	if len(errs) > 0 {
		slog.Warn("frames: rejected anchors", "frame", f, "count", len(errs))
		return fmt.Errorf("frames.SetAnchors %v: %w", f, errors.Join(errs...))
	}
	f.Anchors = bound
	return nil
}

// SetAllPoints anchors the top-left and bottom-right corners of the
// given frame to the same corners of the given target, so that it
// covers the target exactly.
func (r *Registry) SetAllPoints(id ID, target Target) error {
	return r.SetAnchors(id,
		NewAnchor(TopLeft, target, TopLeft, 0, 0),
		NewAnchor(BottomRight, target, BottomRight, 0, 0))
}

// ClearAllPoints removes all of the anchors of the given frame.
func (r *Registry) ClearAllPoints(id ID) error {
	f, err := r.frame(id)
	if err != nil {
		return fmt.Errorf("frames.ClearAllPoints: %w", err)
	}
	f.Anchors = nil
	return nil
}

// NumPoints returns the number of anchors of the given frame.
func (r *Registry) NumPoints(id ID) int {
	f := r.frames[id]
	if f == nil {
		return 0
	}
	return len(f.Anchors)
}

// Point returns the anchor of the given frame at the given index.
func (r *Registry) Point(id ID, index int) (Anchor, bool) {
	f := r.frames[id]
	if f == nil || index < 0 || index >= len(f.Anchors) {
		return Anchor{}, false
	}
	return f.Anchors[index], true
}

// SetShown sets the local visible flag of the given frame.
func (r *Registry) SetShown(id ID, shown bool) error {
	f, err := r.frame(id)
	if err != nil {
		return fmt.Errorf("frames.SetShown: %w", err)
	}
	f.Visible = shown
	return nil
}

// Show makes the given frame locally visible.
func (r *Registry) Show(id ID) error {
	return r.SetShown(id, true)
}

// Hide makes the given frame locally hidden, which hides its whole subtree.
func (r *Registry) Hide(id ID) error {
	return r.SetShown(id, false)
}

// SetDrawLayer sets the draw layer and sublayer of the given frame.
func (r *Registry) SetDrawLayer(id ID, layer DrawLayers, sublayer int) error {
	f, err := r.frame(id)
	if err != nil {
		return fmt.Errorf("frames.SetDrawLayer: %w", err)
	}
	f.DrawLayer = layer
	f.DrawSublayer = sublayer
	r.orderStale = true
	return nil
}

// SetMouseEnabled sets whether the given frame takes part in hit-testing.
func (r *Registry) SetMouseEnabled(id ID, enabled bool) error {
	f, err := r.frame(id)
	if err != nil {
		return fmt.Errorf("frames.SetMouseEnabled: %w", err)
	}
	f.MouseEnabled = enabled
	return nil
}

// SetClampToScreen sets whether the resolved rectangle of the
// given frame is kept on-screen.
func (r *Registry) SetClampToScreen(id ID, clamp bool) error {
	f, err := r.frame(id)
	if err != nil {
		return fmt.Errorf("frames.SetClampToScreen: %w", err)
	}
	f.ClampToScreen = clamp
	return nil
}

// SetAnimOffset sets the unscaled translation applied to the given frame
// after anchor layout.
func (r *Registry) SetAnimOffset(id ID, x, y float32) error {
	f, err := r.frame(id)
	if err != nil {
		return fmt.Errorf("frames.SetAnimOffset: %w", err)
	}
	f.AnimOffset = math32.Vec2(x, y)
	return nil
}

// SetEnabled sets the enabled state of the given control.
// A disabled control shows its Disabled texture slot.
func (r *Registry) SetEnabled(id ID, enabled bool) error {
	f, err := r.frame(id)
	if err != nil {
		return fmt.Errorf("frames.SetEnabled: %w", err)
	}
	f.Disabled = !enabled
	return nil
}

// SetButtonPushed sets the own pushed state of the given control,
// which shows its Pushed texture slot even without a pointer press.
func (r *Registry) SetButtonPushed(id ID, pushed bool) error {
	f, err := r.frame(id)
	if err != nil {
		return fmt.Errorf("frames.SetButtonPushed: %w", err)
	}
	f.Pushed = pushed
	return nil
}

// SetNamedChild registers the given child under the given key of the given
// parent, moving the child under the parent first if needed. The reserved
// keys of [Slots] make the child a button-state texture of the parent; a
// child previously in the same slot loses it.
func (r *Registry) SetNamedChild(parent ID, key string, child ID) error {
	par, err := r.frame(parent)
	if err != nil {
		return fmt.Errorf("frames.SetNamedChild: %w", err)
	}
	kid, err := r.frame(child)
	if err != nil {
		return fmt.Errorf("frames.SetNamedChild %v %q: %w", par, key, err)
	}
	if kid.Parent != parent {
		if err := r.Reparent(child, parent); err != nil {
			return fmt.Errorf("frames.SetNamedChild %v %q: %w", par, key, err)
		}
	}
	slot := SlotFromName(key)
	if prev, ok := par.NamedChildren.ValueByKeyTry(key); ok && prev != child {
		if pf := r.frames[prev]; pf != nil && pf.Slot == slot {
			pf.Slot = SlotNone
		}
	}
	if par.NamedChildren == nil {
		par.NamedChildren = ordmap.New[string, ID]()
	}
	par.NamedChildren.DeleteFunc(func(k string, id ID) bool { return id == child && k != key })
	par.NamedChildren.Add(key, child)
	kid.Slot = slot
	return nil
}

// NamedChild returns the child registered under the given key of the given frame.
func (r *Registry) NamedChild(id ID, key string) (ID, bool) {
	f := r.frames[id]
	if f == nil {
		return NoID, false
	}
	return f.NamedChild(key)
}

// SetButtonTexture registers the given texture as the button-state
// texture of the given control for the given slot.
func (r *Registry) SetButtonTexture(button ID, slot Slots, texture ID) error {
	if slot == SlotNone {
		return fmt.Errorf("frames.SetButtonTexture %v: no slot given", button)
	}
	return r.SetNamedChild(button, slot.String(), texture)
}

// lineFrame returns the [KindLine] frame with the given id.
func (r *Registry) lineFrame(id ID) (*Frame, error) {
	f, err := r.frame(id)
	if err != nil {
		return nil, err
	}
	if f.Line == nil {
		return nil, fmt.Errorf("%v is not a line", f)
	}
	return f, nil
}

// setLineAnchor binds and checks the target of a line endpoint.
func (r *Registry) setLineAnchor(f *Frame, dst *LineAnchor, la LineAnchor) error {
	t, err := r.bindTarget(la.Target)
	if err != nil {
		return fmt.Errorf("target: %w", err)
	}
	la.Target = t
	if err := r.checkTarget(f, t); err != nil {
		slog.Warn("frames: rejected line endpoint", "frame", f, "target", t)
		return err
	}
	*dst = la
	return nil
}

// SetLineStart sets the start point of the given line frame.
// Its target is checked as for [Registry.SetPoint].
func (r *Registry) SetLineStart(id ID, la LineAnchor) error {
	f, err := r.lineFrame(id)
	if err != nil {
		return fmt.Errorf("frames.SetLineStart: %w", err)
	}
	if err := r.setLineAnchor(f, &f.Line.Start, la); err != nil {
		return fmt.Errorf("frames.SetLineStart %v: %w", f, err)
	}
	return nil
}

// SetLineEnd sets the end point of the given line frame.
func (r *Registry) SetLineEnd(id ID, la LineAnchor) error {
	f, err := r.lineFrame(id)
	if err != nil {
		return fmt.Errorf("frames.SetLineEnd: %w", err)
	}
	if err := r.setLineAnchor(f, &f.Line.End, la); err != nil {
		return fmt.Errorf("frames.SetLineEnd %v: %w", f, err)
	}
	return nil
}

// SetLineThickness sets the unscaled thickness of the given line frame.
func (r *Registry) SetLineThickness(id ID, thickness float32) error {
	f, err := r.lineFrame(id)
	if err != nil {
		return fmt.Errorf("frames.SetLineThickness: %w", err)
	}
	f.Line.Thickness = math32.Max(thickness, 0)
	return nil
}

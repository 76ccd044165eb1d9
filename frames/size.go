// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frames

import "cogentcore.org/framekit/math32"

// DerivedWidth returns the width of the given frame as seen by size
// queries, without resolving its rectangle:
//
//   - a root frame is as wide as the screen;
//   - if anchors set both vertical edges against the same reference frame,
//     the width follows from the width of the reference and the offsets;
//   - if they set both edges against different references, it is the width
//     of the last resolved rectangle;
//   - otherwise it is the explicit width times the effective scale.
func (r *Registry) DerivedWidth(id ID) (float32, bool) {
	f := r.frames[id]
	if f == nil {
		return 0, false
	}
	return r.derivedAxis(f, 0), true
}

// DerivedHeight returns the height of the given frame as seen by size
// queries. See [Registry.DerivedWidth].
func (r *Registry) DerivedHeight(id ID) (float32, bool) {
	f := r.frames[id]
	if f == nil {
		return 0, false
	}
	return r.derivedAxis(f, 1), true
}

// DerivedSize returns the derived width and height of the given frame.
func (r *Registry) DerivedSize(id ID) (math32.Vector2, bool) {
	f := r.frames[id]
	if f == nil {
		return math32.Vector2{}, false
	}
	return math32.Vec2(r.derivedAxis(f, 0), r.derivedAxis(f, 1)), true
}

// axisOf returns the component of v on the given axis (0 = x, 1 = y).
func axisOf(v math32.Vector2, axis int) float32 {
	if axis == 0 {
		return v.X
	}
	return v.Y
}

// derivedAxis returns the derived size of the frame on the given axis.
func (r *Registry) derivedAxis(f *Frame, axis int) float32 {
	if f.Parent == NoID {
		return axisOf(r.screen, axis)
	}
	explicit := axisOf(math32.Vec2(f.Width, f.Height), axis) * f.EffectiveScale
	if f.Line != nil {
		if f.hasRect {
			return axisOf(f.lastRect.Size(), axis)
		}
		return 0
	}
	if len(f.Anchors) < 2 {
		return explicit
	}
	var lo, hi *Anchor
	for i := range f.Anchors {
		a := &f.Anchors[i]
		fx, fy := a.Point.Fraction()
		switch axisOf(math32.Vec2(fx, fy), axis) {
		case 0:
			lo = a
		case 1:
			hi = a
		}
	}
	if lo == nil || hi == nil {
		return explicit
	}
	ref := r.targetID(f, lo.Target)
	if ref != r.targetID(f, hi.Target) {
		if f.hasRect {
			return axisOf(f.lastRect.Size(), axis)
		}
		return explicit
	}
	refSize := axisOf(r.screen, axis)
	if rf := r.frames[ref]; rf != nil {
		refSize = r.derivedAxis(rf, axis)
	}
	lv := r.edgeOffset(f, lo, refSize, axis)
	hv := r.edgeOffset(f, hi, refSize, axis)
	return math32.Abs(hv - lv)
}

// edgeOffset returns the position of the anchor point of a on the given axis,
// relative to the origin of a reference of the given size.
func (r *Registry) edgeOffset(f *Frame, a *Anchor, refSize float32, axis int) float32 {
	fx, fy := a.RelativePoint.Fraction()
	if axis == 0 {
		return fx*refSize + a.X*f.EffectiveScale
	}
	return fy*refSize - a.Y*f.EffectiveScale
}

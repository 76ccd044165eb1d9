// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frames

import (
	"cogentcore.org/framekit/math32"
)

// CacheEntry is one resolved frame in a [Cache].
type CacheEntry struct {

	// Rect is the resolved rectangle.
	Rect Rect

	// Scale is the effective scale the frame was resolved at.
	Scale float32
}

// Cache memoizes resolved rectangles for one layout pass. It must be
// discarded (or [Cache.Reset]) after any change to the anchors, size,
// parent, or scale of any frame. A cache is bound to the screen size of
// its first use, and is reset automatically when used with another size.
type Cache struct {
	entries map[ID]CacheEntry
	screen  math32.Vector2
}

// NewCache returns a new empty [Cache].
func NewCache() *Cache {
	return &Cache{entries: map[ID]CacheEntry{}}
}

// Get returns the cached entry for the given frame.
func (c *Cache) Get(id ID) (CacheEntry, bool) {
	e, ok := c.entries[id]
	return e, ok
}

// Len returns the number of resolved frames in the cache.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Reset empties the cache.
func (c *Cache) Reset() {
	clear(c.entries)
}

// prepare binds the cache to the given screen size.
func (c *Cache) prepare(screen math32.Vector2) {
	if c.entries == nil {
		c.entries = map[ID]CacheEntry{}
	}
	if c.screen != screen {
		c.Reset()
		c.screen = screen
	}
}

// ResolveRect returns the screen rectangle of the frame with the given id
// for a screen of the given size, and false if there is no such frame.
//
// Every rectangle resolved along the way (parents and anchor targets) is
// stored in the given cache, so that a whole-tree pass resolves each frame
// once. A nil cache uses a fresh one; the result is the same either way.
func (r *Registry) ResolveRect(id ID, width, height float32, cache *Cache) (Rect, bool) {
	f := r.frames[id]
	if f == nil {
		return Rect{}, false
	}
	if cache == nil {
		cache = NewCache()
	}
	r.screen = math32.Vec2(width, height)
	cache.prepare(r.screen)
	return r.resolve(f, cache).Rect, true
}

// resolve returns the cached entry of the given frame, resolving it first
// if needed. It recurses into the parent and the anchor targets, which
// always terminates because cyclic anchors are never stored.
func (r *Registry) resolve(f *Frame, c *Cache) CacheEntry {
	if e, ok := c.entries[f.ID]; ok {
		return e
	}
	var rect Rect
	par := r.frames[f.Parent]
	if par == nil {
		rect = Rect{Width: c.screen.X, Height: c.screen.Y}
	} else {
		prect := r.resolve(par, c).Rect
		if f.Line != nil {
			rect = r.lineBounds(f, prect, c)
		} else {
			rect = r.anchorRect(f, prect, c)
			rect.X += f.AnimOffset.X
			rect.Y += f.AnimOffset.Y
		}
		if f.ClampToScreen {
			rect = rect.clampTo(c.screen)
		}
	}
	e := CacheEntry{Rect: rect, Scale: f.EffectiveScale}
	c.entries[f.ID] = e
	f.lastRect = rect
	f.hasRect = true
	return e
}

// targetRect returns the rectangle of the given target of the given frame,
// whose parent rectangle is prect.
func (r *Registry) targetRect(f *Frame, t Target, prect Rect, c *Cache) Rect {
	id := r.targetID(f, t)
	if id == f.Parent {
		return prect
	}
	return r.resolve(r.frames[id], c).Rect
}

// anchorPoint returns the screen position that an anchor of the given
// frame attaches to: the given point of the target rectangle, plus the
// offsets scaled by the effective scale of the frame. The y offset is
// subtracted, because offsets are bottom-up.
func (r *Registry) anchorPoint(f *Frame, t Target, p Points, x, y float32, prect Rect, c *Cache) math32.Vector2 {
	s := f.EffectiveScale
	return r.targetRect(f, t, prect, c).Point(p).Add(math32.Vec2(x*s, -y*s))
}

// anchorRect lays out a non-line frame from its anchors.
func (r *Registry) anchorRect(f *Frame, prect Rect, c *Cache) Rect {
	s := f.EffectiveScale
	w, h := f.Width*s, f.Height*s
	switch len(f.Anchors) {
	case 0:
		return Rect{X: prect.X, Y: prect.Y, Width: w, Height: h}
	case 1:
		a := f.Anchors[0]
		pt := r.anchorPoint(f, a.Target, a.RelativePoint, a.X, a.Y, prect, c)
		fx, fy := a.Point.Fraction()
		return Rect{X: pt.X - fx*w, Y: pt.Y - fy*h, Width: w, Height: h}
	}
	var ex, ey edges
	for _, a := range f.Anchors {
		pt := r.anchorPoint(f, a.Target, a.RelativePoint, a.X, a.Y, prect, c)
		fx, fy := a.Point.Fraction()
		ex.set(fx, pt.X)
		ey.set(fy, pt.Y)
	}
	x, w := ex.span(prect.X, prect.Width, w)
	y, h := ey.span(prect.Y, prect.Height, h)
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// edge is an optional edge coordinate.
type edge struct {
	v  float32
	ok bool
}

// edges are the constraints on one axis collected from
// the anchors of a frame: the two edges and the center.
type edges struct {
	min, center, max edge
}

// set records the position of an anchor point at the given fraction of the axis.
func (e *edges) set(frac, v float32) {
	switch frac {
	case 0:
		e.min = edge{v, true}
	case 1:
		e.max = edge{v, true}
	default:
		e.center = edge{v, true}
	}
}

// span returns the position and size on the axis. Inverted edges are
// swapped so that the size is never negative. Without both edges the size
// is the given explicit size, and without any constraint the frame is
// centered on the parent span (ppos, psize).
func (e *edges) span(ppos, psize, size float32) (pos, sz float32) {
	if e.min.ok && e.max.ok {
		if e.min.v > e.max.v {
			e.min, e.max = e.max, e.min
		}
		size = e.max.v - e.min.v
	}
	switch {
	case e.min.ok:
		return e.min.v, size
	case e.max.ok:
		return e.max.v - size, size
	case e.center.ok:
		return e.center.v - size/2, size
	}
	return ppos + (psize-size)/2, size
}

// lineBounds returns the bounding box of a line frame: the segment between
// its resolved endpoints, widened by half the scaled thickness on both sides.
// A zero-length line has an empty box at its start point.
func (r *Registry) lineBounds(f *Frame, prect Rect, c *Cache) Rect {
	ln := f.Line
	start := r.anchorPoint(f, ln.Start.Target, ln.Start.Point, ln.Start.X, ln.Start.Y, prect, c)
	end := r.anchorPoint(f, ln.End.Target, ln.End.Point, ln.End.X, ln.End.Y, prect, c)
	d := end.Sub(start)
	if d.LengthSquared() == 0 {
		return Rect{X: start.X, Y: start.Y}
	}
	n := d.Normal().Perp().MulScalar(ln.Thickness * f.EffectiveScale / 2)
	return RectFromBox(math32.B2FromPoints(start.Add(n), start.Sub(n), end.Add(n), end.Sub(n)))
}

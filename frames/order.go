// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frames

import (
	"cmp"
	"image"
	"slices"

	"cogentcore.org/framekit/math32"
	"golang.org/x/image/math/fixed"
)

// RenderItem is one entry of the paint order.
type RenderItem struct {
	ID    ID
	Rect  Rect
	Alpha float32
}

// Bounds returns the pixel bounds of the item.
func (ri RenderItem) Bounds() image.Rectangle {
	return ri.Rect.ToRect()
}

// Fixed returns the bounds of the item in 26.6 fixed point.
func (ri RenderItem) Fixed() fixed.Rectangle26_6 {
	return ri.Rect.ToFixed()
}

// HitItem is one entry of the hit-test order.
type HitItem struct {
	ID   ID
	Rect Rect
}

// comparePaint orders frames by strata, then level, then containers before
// regions, then (among regions) draw layer and sublayer, then id.
func comparePaint(a, b *Frame) int {
	if c := cmp.Compare(a.Strata, b.Strata); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Level, b.Level); c != 0 {
		return c
	}
	ar, br := a.IsRegion(), b.IsRegion()
	if ar != br {
		if ar {
			return 1
		}
		return -1
	}
	if ar {
		if c := cmp.Compare(a.DrawLayer, b.DrawLayer); c != 0 {
			return c
		}
		if c := cmp.Compare(a.DrawSublayer, b.DrawSublayer); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.ID, b.ID)
}

// compareHit orders frames by strata, then level, then id.
func compareHit(a, b *Frame) int {
	if c := cmp.Compare(a.Strata, b.Strata); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Level, b.Level); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// sortedOrders returns all frame ids in paint and in hit-test order,
// rebuilding them if they were marked stale.
func (r *Registry) sortedOrders() (paint, hit []ID) {
	if !r.orderStale && r.paintOrder != nil {
		return r.paintOrder, r.hitOrder
	}
	ids := r.IDs()
	byID := func(c func(a, b *Frame) int) func(a, b ID) int {
		return func(a, b ID) int { return c(r.frames[a], r.frames[b]) }
	}
	r.paintOrder = slices.SortedStableFunc(slices.Values(ids), byID(comparePaint))
	r.hitOrder = slices.SortedStableFunc(slices.Values(ids), byID(compareHit))
	r.orderStale = false
	return r.paintOrder, r.hitOrder
}

// CollectRenderOrder returns the frames to paint for a screen of the given
// size, back to front, with their rectangles and effective alpha.
// If subtrees are given, only frames within them are included.
func (r *Registry) CollectRenderOrder(width, height float32, subtrees ...ID) []RenderItem {
	var filter map[ID]bool
	if len(subtrees) > 0 {
		filter = map[ID]bool{}
		for _, id := range subtrees {
			r.WalkDown(id, func(f *Frame) bool {
				filter[f.ID] = true
				return Continue
			})
		}
	}
	alpha := map[ID]float32{}
	for _, c := range r.candidates() {
		if r.eligible(c, filter) {
			alpha[c.frame.ID] = c.alpha
		}
	}
	paint, _ := r.sortedOrders()
	cache := NewCache()
	r.screen = math32.Vec2(width, height)
	cache.prepare(r.screen)
	items := make([]RenderItem, 0, len(alpha))
	for _, id := range paint {
		a, ok := alpha[id]
		if !ok {
			continue
		}
		items = append(items, RenderItem{ID: id, Rect: r.resolve(r.frames[id], cache).Rect, Alpha: a})
	}
	return items
}

// CollectHitTestOrder returns the frames that can receive pointer input for a
// screen of the given size, lowest first: the effectively visible frames that
// are themselves visible, mouse enabled, and not excluded by name in the
// [Settings]. Hit tests scan it from the end; see [Registry.HitTest].
func (r *Registry) CollectHitTestOrder(width, height float32) []HitItem {
	in := map[ID]bool{}
	for _, c := range r.candidates() {
		f := c.frame
		if f.Visible && f.MouseEnabled && !r.Settings.IsHitTestExcluded(f.Name) {
			in[f.ID] = true
		}
	}
	_, hit := r.sortedOrders()
	cache := NewCache()
	r.screen = math32.Vec2(width, height)
	cache.prepare(r.screen)
	items := make([]HitItem, 0, len(in))
	for _, id := range hit {
		if in[id] {
			items = append(items, HitItem{ID: id, Rect: r.resolve(r.frames[id], cache).Rect})
		}
	}
	return items
}

// HitTest returns the topmost frame that can receive pointer input
// at the given screen position, and false if there is none.
func (r *Registry) HitTest(x, y, width, height float32) (ID, bool) {
	items := r.CollectHitTestOrder(width, height)
	pt := math32.Vec2(x, y)
	for i := len(items) - 1; i >= 0; i-- {
		if items[i].Rect.ContainsPoint(pt) {
			return items[i].ID, true
		}
	}
	return NoID, false
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frames

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaintOrder(t *testing.T) {
	r, root := testTree(t)
	high := mustCreate(t, r, KindFrame, "High", root)
	require.NoError(t, r.SetStrata(high, StrataHigh))
	art := mustCreate(t, r, KindTexture, "Art", root)
	bg := mustCreate(t, r, KindTexture, "Bg", root)
	require.NoError(t, r.SetDrawLayer(bg, LayerBackground, 0))
	under := mustCreate(t, r, KindFontString, "Under", root)
	require.NoError(t, r.SetDrawLayer(under, LayerArtwork, -1))
	box := mustCreate(t, r, KindFrame, "Box", root)
	bgKid := mustCreate(t, r, KindTexture, "BoxBg", box)
	low := mustCreate(t, r, KindFrame, "Low", root)
	require.NoError(t, r.SetStrata(low, StrataBackground))
	require.NoError(t, r.SetLevel(low, 40))

	assert.Equal(t, []ID{low, root, box, bg, under, art, bgKid, high}, renderIDs(r))

	// the cached order follows level changes
	require.NoError(t, r.SetLevel(box, 3))
	assert.Equal(t, []ID{low, root, bg, under, art, box, bgKid, high}, renderIDs(r))
}

func TestPaintOrderLine(t *testing.T) {
	r, root := testTree(t)
	ln := mustCreate(t, r, KindLine, "", root)
	f := mustCreate(t, r, KindFrame, "", root)
	assert.Equal(t, []ID{root, f, ln}, renderIDs(r))
}

func TestRenderItemBounds(t *testing.T) {
	r, root := testTree(t)
	f := mustCreate(t, r, KindFrame, "", root)
	require.NoError(t, r.SetSize(f, 10.5, 10))
	require.NoError(t, r.SetPoint(f, NewAnchor(Center, ParentTarget(), Center, 0, 0)))
	items := r.CollectRenderOrder(100, 100)
	require.Len(t, items, 2)
	assert.Equal(t, Rect{Width: 100, Height: 100}, items[0].Rect)
	it := items[1]
	assert.Equal(t, Rect{X: 44.75, Y: 45, Width: 10.5, Height: 10}, it.Rect)
	assert.Equal(t, image.Rect(44, 45, 56, 55), it.Bounds())
	assert.Equal(t, 44*64+48, int(it.Fixed().Min.X))
	assert.Equal(t, float32(100), r.ScreenSize().X)
}

func hitTree(t *testing.T) (r *Registry, root, a, b ID) {
	r, root = testTree(t)
	require.NoError(t, r.SetMouseEnabled(root, true))
	a = mustCreate(t, r, KindFrame, "A", root)
	require.NoError(t, r.SetSize(a, 100, 100))
	require.NoError(t, r.SetPoint(a, NewAnchor(TopLeft, ParentTarget(), TopLeft, 0, 0)))
	require.NoError(t, r.SetMouseEnabled(a, true))
	b = mustCreate(t, r, KindButton, "B", root)
	require.NoError(t, r.SetSize(b, 50, 50))
	require.NoError(t, r.SetPoint(b, NewAnchor(TopLeft, ParentTarget(), TopLeft, 25, -25)))
	require.NoError(t, r.SetMouseEnabled(b, true))
	return
}

func TestHitTestOrder(t *testing.T) {
	r, _, a, b := hitTree(t)
	items := r.CollectHitTestOrder(1024, 768)
	require.Len(t, items, 2, "UIParent is excluded by name")
	assert.Equal(t, a, items[0].ID)
	assert.Equal(t, b, items[1].ID)
	assert.Equal(t, Rect{X: 25, Y: 25, Width: 50, Height: 50}, items[1].Rect)

	require.NoError(t, r.SetLevel(a, 10))
	items = r.CollectHitTestOrder(1024, 768)
	assert.Equal(t, []ID{b, a}, []ID{items[0].ID, items[1].ID})

	// textures on a higher draw layer do not change the hit order
	tex := mustCreate(t, r, KindTexture, "", b)
	require.NoError(t, r.SetMouseEnabled(tex, true))
	require.NoError(t, r.SetDrawLayer(tex, LayerOverlay, 7))
	items = r.CollectHitTestOrder(1024, 768)
	assert.Equal(t, []ID{b, tex, a}, []ID{items[0].ID, items[1].ID, items[2].ID})
}

func TestHitTest(t *testing.T) {
	r, _, a, b := hitTree(t)
	id, ok := r.HitTest(30, 30, 1024, 768)
	assert.True(t, ok)
	assert.Equal(t, b, id)

	id, ok = r.HitTest(10, 10, 1024, 768)
	assert.True(t, ok)
	assert.Equal(t, a, id)

	_, ok = r.HitTest(500, 500, 1024, 768)
	assert.False(t, ok, "UIParent never takes the hit")

	require.NoError(t, r.SetStrata(a, StrataDialog))
	id, _ = r.HitTest(30, 30, 1024, 768)
	assert.Equal(t, a, id)

	require.NoError(t, r.Hide(a))
	id, _ = r.HitTest(30, 30, 1024, 768)
	assert.Equal(t, b, id)

	require.NoError(t, r.SetMouseEnabled(b, false))
	_, ok = r.HitTest(30, 30, 1024, 768)
	assert.False(t, ok)

	r.Settings.HitTestExclude = nil
	id, ok = r.HitTest(30, 30, 1024, 768)
	assert.True(t, ok)
	assert.Equal(t, ID(1), id)
}

func TestHitTestHiddenAncestor(t *testing.T) {
	r, root, a, _ := hitTree(t)
	kid := mustCreate(t, r, KindButton, "", a)
	require.NoError(t, r.SetSize(kid, 10, 10))
	require.NoError(t, r.SetMouseEnabled(kid, true))
	require.NoError(t, r.SetLevel(kid, 20))
	id, _ := r.HitTest(5, 5, 1024, 768)
	assert.Equal(t, kid, id)

	require.NoError(t, r.Hide(a))
	id, ok := r.HitTest(5, 5, 1024, 768)
	assert.False(t, ok, "got %v", id)
	assert.Equal(t, root, r.Get(a).Parent)
}

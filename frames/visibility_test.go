// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frames

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// renderIDs returns the ids of the render order.
func renderIDs(r *Registry, subtrees ...ID) []ID {
	var ids []ID
	for _, it := range r.CollectRenderOrder(1024, 768, subtrees...) {
		ids = append(ids, it.ID)
	}
	return ids
}

type button struct {
	id ID

	normal, pushed, highlight, disabled ID
}

func testButton(t *testing.T, r *Registry, parent ID) button {
	b := button{id: mustCreate(t, r, KindButton, "OkayButton", parent)}
	for _, s := range []struct {
		slot Slots
		id   *ID
	}{{SlotNormal, &b.normal}, {SlotPushed, &b.pushed}, {SlotHighlight, &b.highlight}, {SlotDisabled, &b.disabled}} {
		*s.id = mustCreate(t, r, KindTexture, "", NoID)
		require.NoError(t, r.SetButtonTexture(b.id, s.slot, *s.id))
		assert.Equal(t, s.slot, r.Get(*s.id).Slot)
	}
	require.NoError(t, r.SetDrawLayer(b.highlight, LayerHighlight, 0))
	return b
}

func (b button) eligible(r *Registry) [4]bool {
	return [4]bool{r.RenderEligible(b.normal), r.RenderEligible(b.pushed), r.RenderEligible(b.highlight), r.RenderEligible(b.disabled)}
}

func TestButtonStates(t *testing.T) {
	r, root := testTree(t)
	b := testButton(t, r, root)
	ptr := r.Input.(*Pointer)

	assert.Equal(t, [4]bool{true, false, false, false}, b.eligible(r))

	ptr.Hovered = b.id
	assert.Equal(t, [4]bool{true, false, true, false}, b.eligible(r))

	ptr.Pressed = b.id
	assert.Equal(t, [4]bool{false, true, true, false}, b.eligible(r))

	ptr.Hovered, ptr.Pressed = NoID, NoID
	require.NoError(t, r.SetButtonPushed(b.id, true))
	assert.Equal(t, [4]bool{false, true, false, false}, b.eligible(r))

	ptr.Hovered = b.id
	require.NoError(t, r.SetEnabled(b.id, false))
	assert.Equal(t, [4]bool{false, false, false, true}, b.eligible(r))

	require.NoError(t, r.SetEnabled(b.id, true))
	require.NoError(t, r.SetButtonPushed(b.id, false))
	assert.Equal(t, [4]bool{true, false, true, false}, b.eligible(r))

	// the render order agrees
	assert.Equal(t, []ID{root, b.id, b.normal, b.highlight}, renderIDs(r))
}

func TestButtonTextureHidden(t *testing.T) {
	r, root := testTree(t)
	b := testButton(t, r, root)
	for _, id := range []ID{b.normal, b.pushed, b.highlight, b.disabled} {
		require.NoError(t, r.Hide(id))
	}
	assert.Equal(t, [4]bool{true, false, false, false}, b.eligible(r))
	assert.False(t, r.IsEffectivelyVisible(b.normal))

	// the textures follow the alpha of the control
	require.NoError(t, r.SetAlpha(b.id, 0))
	assert.Equal(t, [4]bool{}, b.eligible(r))

	// a hidden control hides its textures
	require.NoError(t, r.SetAlpha(b.id, 1))
	require.NoError(t, r.Hide(b.id))
	assert.Equal(t, [4]bool{}, b.eligible(r))
}

func TestSlotNotOnControl(t *testing.T) {
	r, root := testTree(t)
	f := mustCreate(t, r, KindFrame, "", root)
	tex := mustCreate(t, r, KindTexture, "", f)
	require.NoError(t, r.SetNamedChild(f, "Disabled", tex))
	assert.True(t, r.RenderEligible(tex))
	require.NoError(t, r.Hide(tex))
	assert.False(t, r.RenderEligible(tex))

	assert.Error(t, r.SetButtonTexture(f, SlotNone, tex))
}

func TestSlotReassign(t *testing.T) {
	r, root := testTree(t)
	b := testButton(t, r, root)
	other := mustCreate(t, r, KindTexture, "", b.id)
	require.NoError(t, r.SetButtonTexture(b.id, SlotNormal, other))
	assert.Equal(t, SlotNone, r.Get(b.normal).Slot)
	assert.Equal(t, SlotNormal, r.Get(other).Slot)
	id, ok := r.NamedChild(b.id, "Normal")
	assert.True(t, ok)
	assert.Equal(t, other, id)

	// moving a texture away clears its slot
	require.NoError(t, r.Reparent(b.pushed, root))
	assert.Equal(t, SlotNone, r.Get(b.pushed).Slot)
	_, ok = r.NamedChild(b.id, "Pushed")
	assert.False(t, ok)
}

func TestHighlightLayer(t *testing.T) {
	r, root := testTree(t)
	f := mustCreate(t, r, KindFrame, "", root)
	glow := mustCreate(t, r, KindTexture, "", f)
	require.NoError(t, r.SetDrawLayer(glow, LayerHighlight, 0))
	assert.False(t, r.RenderEligible(glow))
	r.Input.(*Pointer).Hovered = f
	assert.True(t, r.RenderEligible(glow))
	require.NoError(t, r.Hide(glow))
	assert.False(t, r.RenderEligible(glow))

	r.Input = nil
	require.NoError(t, r.Show(glow))
	assert.False(t, r.RenderEligible(glow))
}

func TestVisibilityPruning(t *testing.T) {
	r, root := testTree(t)
	a := mustCreate(t, r, KindFrame, "", root)
	b := mustCreate(t, r, KindFrame, "", a)
	c := mustCreate(t, r, KindFrame, "", root)
	assert.Equal(t, []ID{root, a, c, b}, renderIDs(r))

	require.NoError(t, r.Hide(a))
	assert.False(t, r.IsEffectivelyVisible(b))
	assert.True(t, r.Get(b).Visible)
	assert.False(t, r.RenderEligible(b))
	assert.Equal(t, []ID{root, c}, renderIDs(r))

	require.NoError(t, r.Show(a))
	require.NoError(t, r.SetAlpha(c, 0))
	assert.Equal(t, []ID{root, a, b}, renderIDs(r))
	assert.Equal(t, []ID{a, b}, renderIDs(r, a))

	assert.False(t, r.IsEffectivelyVisible(99))
	assert.False(t, r.RenderEligible(99))
}

func TestComposedWidget(t *testing.T) {
	r, root := testTree(t)
	tip := mustCreate(t, r, KindTooltip, "GameTooltip", root)
	line := mustCreate(t, r, KindFontString, "", tip)
	assert.True(t, r.RenderEligible(tip))
	assert.False(t, r.RenderEligible(line))
	assert.True(t, r.IsEffectivelyVisible(line))
	assert.Equal(t, []ID{root, tip}, renderIDs(r))
}

func TestRenderAlpha(t *testing.T) {
	r, root := testTree(t)
	a := mustCreate(t, r, KindFrame, "", root)
	b := mustCreate(t, r, KindTexture, "", a)
	require.NoError(t, r.SetAlpha(root, 0.5))
	require.NoError(t, r.SetAlpha(a, 0.5))
	items := r.CollectRenderOrder(1024, 768)
	require.Len(t, items, 3)
	assert.Equal(t, b, items[2].ID)
	assert.Equal(t, float32(0.25), items[2].Alpha)
	assert.Equal(t, r.Get(b).EffectiveAlpha, items[2].Alpha)
}

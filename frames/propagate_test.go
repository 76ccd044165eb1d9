// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frames

import (
	"math"
	"testing"

	"cogentcore.org/framekit/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrataPinContainment(t *testing.T) {
	r, root := testTree(t)
	a := mustCreate(t, r, KindFrame, "A", root)
	b := mustCreate(t, r, KindFrame, "B", a)
	require.NoError(t, r.SetStrata(root, StrataMedium))
	require.NoError(t, r.SetStrata(a, StrataHigh))
	assert.Equal(t, StrataHigh, r.Get(b).Strata)

	require.NoError(t, r.SetStrata(root, StrataLow))
	assert.Equal(t, StrataLow, r.Get(root).Strata)
	assert.Equal(t, StrataHigh, r.Get(a).Strata)
	assert.Equal(t, StrataHigh, r.Get(b).Strata)

	require.NoError(t, r.UnpinStrata(a))
	assert.False(t, r.Get(a).StrataPinned)
	assert.Equal(t, StrataLow, r.Get(a).Strata)
	assert.Equal(t, StrataLow, r.Get(b).Strata)
}

func TestLevelRebase(t *testing.T) {
	r, root := testTree(t)
	a := mustCreate(t, r, KindFrame, "A", root)
	b := mustCreate(t, r, KindFrame, "B", a)
	c := mustCreate(t, r, KindFrame, "C", b)
	assert.Equal(t, []int{1, 2, 3}, []int{r.Get(a).Level, r.Get(b).Level, r.Get(c).Level})

	require.NoError(t, r.SetLevel(b, 20))
	assert.Equal(t, 20, r.Get(b).Level)
	assert.Equal(t, 21, r.Get(c).Level)

	// a pinned node keeps its level but re-bases its children
	require.NoError(t, r.SetLevel(a, 5))
	assert.Equal(t, 20, r.Get(b).Level)
	assert.Equal(t, 21, r.Get(c).Level)
	require.NoError(t, r.UnpinLevel(b))
	assert.Equal(t, 6, r.Get(b).Level)
	assert.Equal(t, 7, r.Get(c).Level)

	require.NoError(t, r.SetLevel(c, 1))
	require.NoError(t, r.SetLevel(root, 3))
	assert.Equal(t, 1, r.Get(c).Level)
	assert.Equal(t, 5, r.Get(a).Level)

	assert.ErrorIs(t, r.SetLevel(99, 1), ErrUnknownID)
	assert.ErrorIs(t, r.SetStrata(99, StrataLow), ErrUnknownID)
}

func TestReparentRefreshesPinnedSubtree(t *testing.T) {
	r, root := testTree(t)
	pool := mustCreate(t, r, KindFrame, "Pool", root)
	require.NoError(t, r.SetStrata(pool, StrataBackground))
	item := mustCreate(t, r, KindFrame, "Item", pool)
	pinned := mustCreate(t, r, KindFrame, "Pinned", item)
	require.NoError(t, r.SetLevel(pinned, 50))
	leaf := mustCreate(t, r, KindFrame, "Leaf", pinned)
	assert.Equal(t, StrataBackground, r.Get(leaf).Strata)

	dialog := mustCreate(t, r, KindFrame, "Dialog", root)
	require.NoError(t, r.SetStrata(dialog, StrataDialog))
	require.NoError(t, r.Reparent(item, dialog))
	for _, id := range []ID{item, pinned, leaf} {
		assert.Equal(t, StrataDialog, r.Get(id).Strata, "%v", r.Get(id))
	}
	assert.Equal(t, 2, r.Get(item).Level)
	assert.Equal(t, 50, r.Get(pinned).Level)
	assert.Equal(t, 51, r.Get(leaf).Level)
}

func TestEffectiveAlpha(t *testing.T) {
	r, root := testTree(t)
	kid := mustCreate(t, r, KindFrame, "", root)
	grand := mustCreate(t, r, KindTexture, "", kid)
	require.NoError(t, r.SetAlpha(root, 0.5))
	require.NoError(t, r.SetAlpha(kid, 0.5))
	tolassert.Equal(t, 0.25, r.Get(kid).EffectiveAlpha)
	tolassert.Equal(t, 0.25, r.Get(grand).EffectiveAlpha)

	require.NoError(t, r.SetAlpha(root, 1))
	tolassert.Equal(t, 0.5, r.Get(kid).EffectiveAlpha)
	tolassert.Equal(t, 0.5, r.Get(kid).Alpha)
	a, ok := r.EffectiveAlpha(grand)
	assert.True(t, ok)
	tolassert.Equal(t, 0.5, a)

	require.NoError(t, r.SetAlpha(kid, 3))
	assert.Equal(t, float32(1), r.Get(kid).Alpha)
	require.NoError(t, r.SetAlpha(kid, -1))
	assert.Equal(t, float32(0), r.Get(kid).Alpha)
	require.NoError(t, r.SetAlpha(kid, float32(math.NaN())))
	assert.Equal(t, float32(0), r.Get(kid).Alpha)
	assert.Equal(t, float32(0), r.Get(grand).EffectiveAlpha)

	_, ok = r.EffectiveAlpha(99)
	assert.False(t, ok)

	// a new child starts from the current effective alpha
	require.NoError(t, r.SetAlpha(kid, 0.8))
	late := mustCreate(t, r, KindFrame, "", kid)
	tolassert.Equal(t, 0.8, r.Get(late).EffectiveAlpha)
}

func TestEffectiveScale(t *testing.T) {
	r, root := testTree(t)
	kid := mustCreate(t, r, KindFrame, "", root)
	grand := mustCreate(t, r, KindFrame, "", kid)
	require.NoError(t, r.SetScale(root, 2))
	require.NoError(t, r.SetScale(kid, 0.75))
	tolassert.Equal(t, 1.5, r.Get(grand).EffectiveScale)

	for _, bad := range []float32{0, -1, float32(math.NaN()), float32(math.Inf(1))} {
		err := r.SetScale(kid, bad)
		assert.ErrorIs(t, err, ErrInvalidScale, "%g", bad)
	}
	assert.Equal(t, float32(0.75), r.Get(kid).Scale)
	tolassert.Equal(t, 1.5, r.Get(grand).EffectiveScale)

	_, ok := r.EffectiveScale(99)
	assert.False(t, ok)
	assert.ErrorIs(t, r.SetScale(99, 1), ErrUnknownID)
}

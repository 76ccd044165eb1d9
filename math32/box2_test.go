// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestBox2(t *testing.T) {
	b := B2(10, 20, 110, 60)
	assert.Equal(t, Vec2(100, 40), b.Size())
	assert.Equal(t, image.Rect(10, 20, 110, 60), b.ToRect())
	assert.Equal(t, fixed.R(10, 20, 110, 60), b.ToFixed())
}

func TestBox2Empty(t *testing.T) {
	b := B2Empty()
	assert.Equal(t, Infinity, b.Min.X)
	assert.Equal(t, -Infinity, b.Max.Y)
	b.ExpandByPoint(Vec2(3, 4))
	assert.Equal(t, B2(3, 4, 3, 4), b)
	assert.Equal(t, Vector2{}, b.Size())

	b = B2FromPoints(Vec2(5, -1), Vec2(-2, 3), Vec2(0, 0))
	assert.Equal(t, B2(-2, -1, 5, 3), b)
}

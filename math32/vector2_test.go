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

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))

	v := Vector2{}
	v.SetScalar(8.5)
	assert.Equal(t, Vector2{8.5, 8.5}, v)
	assert.Equal(t, fixed.Point26_6{X: 544, Y: 544}, v.ToFixed())
}

func TestVector2Arithmetic(t *testing.T) {
	a := Vec2(3, 4)
	b := Vec2(1, -2)

	assert.Equal(t, Vec2(4, 2), a.Add(b))
	assert.Equal(t, Vec2(2, 6), a.Sub(b))
	assert.Equal(t, Vec2(6, 8), a.MulScalar(2))
	assert.Equal(t, float32(5), a.Length())
	assert.Equal(t, float32(25), a.LengthSquared())
	assert.Equal(t, Vec2(-4, 3), a.Perp())
	assert.Equal(t, Vector2{}, Vector2{}.Normal())

	n := a.Normal()
	assert.InDelta(t, 0.6, n.X, 1e-6)
	assert.InDelta(t, 0.8, n.Y, 1e-6)

	c := a
	c.SetMin(b)
	assert.Equal(t, b, c)
	c.SetMax(a)
	assert.Equal(t, a, c)
}

func TestVector2Points(t *testing.T) {
	v := Vec2(1.5, -1.5)
	assert.Equal(t, image.Pt(1, -2), v.ToPointFloor())
	assert.Equal(t, image.Pt(2, -1), v.ToPointCeil())
	assert.Equal(t, "(1.5, -1.5)", v.String())
}

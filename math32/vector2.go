// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import (
	"fmt"
	"image"

	"golang.org/x/image/math/fixed"
)

// Vector2 is a 2D vector/point with X and Y components.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// ToFixed converts a float32 value to a [fixed.Int26_6].
func ToFixed(x float32) fixed.Int26_6 {
	return fixed.Int26_6(x * 64)
}

// String returns the vector as "(x, y)".
func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector2) SetScalar(scalar float32) {
	v.X = scalar
	v.Y = scalar
}

// ToPointFloor returns the vector as an [image.Point] after applying Floor.
func (v Vector2) ToPointFloor() image.Point {
	return image.Point{int(Floor(v.X)), int(Floor(v.Y))}
}

// ToPointCeil returns the vector as an [image.Point] after applying Ceil.
func (v Vector2) ToPointCeil() image.Point {
	return image.Point{int(Ceil(v.X)), int(Ceil(v.Y))}
}

// ToFixed returns the vector as a [fixed.Point26_6].
func (v Vector2) ToFixed() fixed.Point26_6 {
	return fixed.Point26_6{X: ToFixed(v.X), Y: ToFixed(v.Y)}
}

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v.X + other.X, v.Y + other.Y}
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{v.X - other.X, v.Y - other.Y}
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// SetMin sets this vector components to the minimum values of itself and other vector.
func (v *Vector2) SetMin(other Vector2) {
	v.X = Min(v.X, other.X)
	v.Y = Min(v.Y, other.Y)
}

// SetMax sets this vector components to the maximum value of itself and other vector.
func (v *Vector2) SetMax(other Vector2) {
	v.X = Max(v.X, other.X)
	v.Y = Max(v.Y, other.Y)
}

// Length returns the length (magnitude) of this vector.
func (v Vector2) Length() float32 {
	return Hypot(v.X, v.Y)
}

// LengthSquared returns the length squared of this vector.
func (v Vector2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Normal returns this vector divided by its length (its unit vector).
// A zero vector is returned unchanged.
func (v Vector2) Normal() Vector2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.MulScalar(1 / l)
}

// Perp returns the vector rotated by 90 degrees counter-clockwise
// in a y-down coordinate system.
func (v Vector2) Perp() Vector2 {
	return Vector2{-v.Y, v.X}
}

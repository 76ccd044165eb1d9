// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frames

import (
	"fmt"
	"image"

	"cogentcore.org/framekit/math32"
	"golang.org/x/image/math/fixed"
)

// Rect is a resolved screen rectangle in a top-down coordinate system,
// with the origin at the top-left of the screen.
type Rect struct {
	X, Y, Width, Height float32
}

// RectFromBox returns the [Rect] covering the given box.
func RectFromBox(b math32.Box2) Rect {
	sz := b.Size()
	return Rect{X: b.Min.X, Y: b.Min.Y, Width: sz.X, Height: sz.Y}
}

func (r Rect) String() string {
	return fmt.Sprintf("{x:%g y:%g w:%g h:%g}", r.X, r.Y, r.Width, r.Height)
}

// Pos returns the top-left corner of the rectangle.
func (r Rect) Pos() math32.Vector2 {
	return math32.Vec2(r.X, r.Y)
}

// Size returns the size of the rectangle.
func (r Rect) Size() math32.Vector2 {
	return math32.Vec2(r.Width, r.Height)
}

// Box returns the rectangle as a [math32.Box2].
func (r Rect) Box() math32.Box2 {
	return math32.B2(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Point returns the position of the given anchor point on the rectangle,
// for example (X+Width, Y) for [TopRight].
func (r Rect) Point(p Points) math32.Vector2 {
	fx, fy := p.Fraction()
	return math32.Vec2(r.X+fx*r.Width, r.Y+fy*r.Height)
}

// ContainsPoint returns whether the given point is inside the rectangle.
// The right and bottom edges are exclusive, so an empty rectangle
// contains no points.
func (r Rect) ContainsPoint(p math32.Vector2) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// ToRect returns the rectangle as an [image.Rectangle], with the
// minimum rounded down and the maximum rounded up.
func (r Rect) ToRect() image.Rectangle {
	return r.Box().ToRect()
}

// ToFixed returns the rectangle in 26.6 fixed point.
func (r Rect) ToFixed() fixed.Rectangle26_6 {
	return r.Box().ToFixed()
}

// clampTo shifts a rectangle with a positive size so that it does not
// extend past the given screen size. The origin is never negative, so a
// rectangle larger than the screen overflows to the right or bottom.
func (r Rect) clampTo(screen math32.Vector2) Rect {
	if r.Width <= 0 || r.Height <= 0 {
		return r
	}
	if r.X+r.Width > screen.X {
		r.X = screen.X - r.Width
	}
	if r.X < 0 {
		r.X = 0
	}
	if r.Y+r.Height > screen.Y {
		r.Y = screen.Y - r.Height
	}
	if r.Y < 0 {
		r.Y = 0
	}
	return r
}

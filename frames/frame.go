// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frames

import (
	"strconv"

	"cogentcore.org/framekit/base/ordmap"
	"cogentcore.org/framekit/math32"
)

// ID is the stable, process-unique identity of a frame in a [Registry].
// IDs are never reused by a registry.
type ID int64

// NoID is the zero [ID], meaning "no frame" (for example,
// the parent of a root frame).
const NoID ID = 0

// String returns the id as "#n".
func (id ID) String() string {
	return "#" + strconv.FormatInt(int64(id), 10)
}

// Frame is one node of the widget tree. All frames are owned by a
// [Registry]; Parent, Children, and NamedChildren are ids into it.
//
// The fields are exported for reading. Fields that take part in
// propagation or ordering (Parent, Children, Strata, Level, Alpha, Scale,
// Anchors, and their derived values) must only be changed through the
// [Registry] methods, which keep the tree invariants.
type Frame struct {

	// ID is the identity of the frame in its registry.
	ID ID

	// Name is the optional global name of the frame. Names are unique
	// among the live, non-orphaned frames of a registry.
	Name string

	// Kind is the variant of the frame.
	Kind Kinds

	// Parent is the parent of the frame, or [NoID] for a root frame,
	// which is laid out as the full screen.
	Parent ID

	// Children are the children of the frame in the order they were added.
	// The order is only used as a tie-break, never for layout.
	Children []ID

	// NamedChildren maps slot keys (for example "Normal" or "Label")
	// to specific children.
	NamedChildren *ordmap.Map[string, ID]

	// Slot is the reserved button-state slot this frame occupies in its
	// parent's named children, if any.
	Slot Slots

	// Width and Height are the explicit size of the frame, in unscaled
	// units. Zero means the size is derived from the anchors.
	Width, Height float32

	// Anchors are the layout constraints of the frame.
	Anchors []Anchor

	// Visible is the local shown flag. See [Registry.IsEffectivelyVisible]
	// for visibility that accounts for the ancestors.
	Visible bool

	// Strata is the paint bucket of the frame.
	Strata Strata

	// StrataPinned is whether Strata was set explicitly on this frame,
	// which stops it from being inherited from the parent.
	StrataPinned bool

	// Level is the paint order of the frame within its strata.
	Level int

	// LevelPinned is whether Level was set explicitly on this frame.
	LevelPinned bool

	// Alpha is the local opacity in [0, 1].
	Alpha float32

	// EffectiveAlpha is Alpha multiplied by the EffectiveAlpha of the parent.
	EffectiveAlpha float32

	// Scale is the local scale factor, always > 0.
	Scale float32

	// EffectiveScale is Scale multiplied by the EffectiveScale of the parent.
	EffectiveScale float32

	// DrawLayer orders region frames within one level.
	DrawLayer DrawLayers

	// DrawSublayer orders region frames within one DrawLayer.
	DrawSublayer int

	// MouseEnabled is whether the frame takes part in hit-testing.
	MouseEnabled bool

	// ClampToScreen is whether the resolved rectangle is shifted
	// back on-screen when it overflows the screen.
	ClampToScreen bool

	// AnimOffset is an unscaled translation applied after anchor layout.
	AnimOffset math32.Vector2

	// Line is the geometry of a [KindLine] frame, nil for other kinds.
	Line *Line

	// Disabled is the disabled state of an interactive control.
	Disabled bool

	// Pushed is the own pressed-state flag of an interactive control.
	Pushed bool

	// Orphaned is set on a frame whose name was taken over by a newer frame.
	// An orphaned frame is hidden, detached, and unreachable by name.
	Orphaned bool

	// lastRect is the rectangle of the most recent resolution,
	// valid if hasRect is set.
	lastRect Rect
	hasRect  bool
}

// String returns the name and id of the frame.
func (f *Frame) String() string {
	if f == nil {
		return "nil"
	}
	if f.Name == "" {
		return f.Kind.String() + f.ID.String()
	}
	return f.Name + f.ID.String()
}

// IsRegion returns whether the frame is a drawable region.
func (f *Frame) IsRegion() bool {
	return f.Kind.IsRegion()
}

// LastRect returns the rectangle of the most recent resolution
// of this frame, and false if it was never resolved.
func (f *Frame) LastRect() (Rect, bool) {
	return f.lastRect, f.hasRect
}

// NamedChild returns the child registered under the given key.
func (f *Frame) NamedChild(key string) (ID, bool) {
	return f.NamedChildren.ValueByKeyTry(key)
}

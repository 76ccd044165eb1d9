// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frames

import "fmt"

// TargetKinds are the ways an anchor can refer to the rectangle it attaches to.
type TargetKinds int32

const (
	// TargetParent attaches to the parent rectangle.
	TargetParent TargetKinds = iota

	// TargetFrame attaches to a specific frame by id.
	TargetFrame

	// TargetNamed attaches to a frame by a name that did not resolve
	// yet. It is bound to an id when a frame with that name is created,
	// and laid out against the parent until then.
	TargetNamed
)

// Target is the rectangle an anchor attaches to.
// The zero value is the parent.
type Target struct {
	Kind TargetKinds
	ID   ID
	Name string
}

// ParentTarget returns a [Target] for the parent rectangle.
func ParentTarget() Target {
	return Target{}
}

// FrameTarget returns a [Target] for the frame with the given id.
func FrameTarget(id ID) Target {
	return Target{Kind: TargetFrame, ID: id}
}

// NamedTarget returns a [Target] for the frame with the given name.
// [Registry.SetPoint] binds it to an id right away if the name exists.
func NamedTarget(name string) Target {
	return Target{Kind: TargetNamed, Name: name}
}

func (t Target) String() string {
	switch t.Kind {
	case TargetFrame:
		if t.Name != "" {
			return t.Name + t.ID.String()
		}
		return t.ID.String()
	case TargetNamed:
		return "$" + t.Name
	}
	return "$parent"
}

// Anchor ties the Point of a frame to the RelativePoint of
// the Target rectangle, offset by X and Y.
//
// Offsets follow the bottom-up convention of the anchor coordinate
// system: X is added, and a positive Y moves the frame up the screen.
// Both are multiplied by the effective scale of the anchored frame.
type Anchor struct {
	Point         Points
	Target        Target
	RelativePoint Points
	X, Y          float32
}

// NewAnchor returns a new [Anchor].
func NewAnchor(point Points, target Target, relativePoint Points, x, y float32) Anchor {
	return Anchor{Point: point, Target: target, RelativePoint: relativePoint, X: x, Y: y}
}

func (a Anchor) String() string {
	return fmt.Sprintf("%v -> %v.%v (%g, %g)", a.Point, a.Target, a.RelativePoint, a.X, a.Y)
}

// LineAnchor is one endpoint of a [KindLine] frame: the Point of the
// Target rectangle, offset by X and Y with the same convention as [Anchor].
type LineAnchor struct {
	Point  Points
	Target Target
	X, Y   float32
}

// Line is the geometry of a [KindLine] frame.
type Line struct {
	Start, End LineAnchor

	// Thickness is the unscaled width of the line.
	Thickness float32
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frames

// Strata are the coarse, ordered paint buckets that a frame
// and, by default, all of its descendants are drawn in.
type Strata int32 //enums:enum

const (
	StrataBackground Strata = iota
	StrataLow
	StrataMedium
	StrataHigh
	StrataDialog
	StrataFullscreen
	StrataFullscreenDialog
	StrataTooltip
)

// DrawLayers order the regions (textures, text, lines) of one
// frame level. They have no effect on container frames.
type DrawLayers int32 //enums:enum

const (
	LayerBackground DrawLayers = iota
	LayerBorder
	LayerArtwork
	LayerOverlay

	// LayerHighlight regions are only drawn while their parent
	// frame is hovered.
	LayerHighlight
)

// Points are the nine compass positions on a rectangle that
// anchors attach to.
type Points int32 //enums:enum

const (
	TopLeft Points = iota
	Top
	TopRight
	Left
	Center
	Right
	BottomLeft
	Bottom
	BottomRight
)

// Kinds are the closed set of frame variants. The kind determines
// which layout and visibility rules apply to a frame.
type Kinds int32 //enums:enum

const (
	// KindFrame is a plain container.
	KindFrame Kinds = iota

	// KindButton is an interactive control whose state textures
	// are chosen from its enabled, pressed, and hovered state.
	KindButton

	// KindCheckButton is a [KindButton] with a checked state.
	KindCheckButton

	KindEditBox
	KindSlider
	KindStatusBar
	KindScrollFrame

	// KindTooltip is a composed widget that draws its children itself,
	// so they are never visited for visibility.
	KindTooltip

	// KindTexture is an image region.
	KindTexture

	// KindFontString is a text region.
	KindFontString

	// KindLine is a region drawn between two line anchors. Its rectangle
	// is the bounding box of the segment instead of the anchor layout.
	KindLine
)

// IsRegion returns whether frames of this kind are drawable regions
// (textures, text, lines) rather than containers.
func (k Kinds) IsRegion() bool {
	return k == KindTexture || k == KindFontString || k == KindLine
}

// IsInteractive returns whether frames of this kind are button-like controls.
func (k Kinds) IsInteractive() bool {
	return k == KindButton || k == KindCheckButton
}

// IsComposed returns whether frames of this kind draw their
// children internally as a single visual unit.
func (k Kinds) IsComposed() bool {
	return k == KindTooltip
}

// Slots are the reserved named-child keys of a button-like control
// whose textures are driven by the control state.
type Slots int32 //enums:enum

const (
	// SlotNone is any child that is not a button-state texture.
	SlotNone Slots = iota
	SlotNormal
	SlotPushed
	SlotHighlight
	SlotDisabled
)

// SlotFromName returns the reserved slot for the given named-child key,
// or [SlotNone] if the key is not reserved.
func SlotFromName(name string) Slots {
	var s Slots
	if s.SetString(name) != nil {
		return SlotNone
	}
	return s
}

// Fraction returns the position of the point on a unit rectangle
// in a top-down coordinate system: (0, 0) for [TopLeft] and
// (1, 1) for [BottomRight].
func (p Points) Fraction() (fx, fy float32) {
	switch p {
	case TopLeft, Left, BottomLeft:
		fx = 0
	case Top, Center, Bottom:
		fx = 0.5
	default:
		fx = 1
	}
	switch p {
	case TopLeft, Top, TopRight:
		fy = 0
	case Left, Center, Right:
		fy = 0.5
	default:
		fy = 1
	}
	return
}

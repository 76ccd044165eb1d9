// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frames

import (
	"fmt"
	"strings"
)

var _StrataNames = []string{"Background", "Low", "Medium", "High", "Dialog", "Fullscreen", "FullscreenDialog", "Tooltip"}

var _DrawLayersNames = []string{"Background", "Border", "Artwork", "Overlay", "Highlight"}

var _PointsNames = []string{"TopLeft", "Top", "TopRight", "Left", "Center", "Right", "BottomLeft", "Bottom", "BottomRight"}

var _KindsNames = []string{"Frame", "Button", "CheckButton", "EditBox", "Slider", "StatusBar", "ScrollFrame", "Tooltip", "Texture", "FontString", "Line"}

var _SlotsNames = []string{"None", "Normal", "Pushed", "Highlight", "Disabled"}

// enumName returns the name of the given enum value, or its number
// if it is out of range.
func enumName[T ~int32](v T, names []string) string {
	if v < 0 || int(v) >= len(names) {
		return fmt.Sprintf("%d", int32(v))
	}
	return names[v]
}

// normalizeEnumName lowercases s and drops separators, so that
// "FULLSCREEN_DIALOG", "fullscreen-dialog" and "FullscreenDialog" match.
func normalizeEnumName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', ' ':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}

// setEnum sets v to the value with the given name.
func setEnum[T ~int32](v *T, s string, names []string, typ string) error {
	ns := normalizeEnumName(s)
	for i, nm := range names {
		if normalizeEnumName(nm) == ns {
			*v = T(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type %s", s, typ)
}

// String returns the string representation of this Strata value.
func (i Strata) String() string { return enumName(i, _StrataNames) }

// SetString sets the Strata value from its string representation,
// and returns an error if the string is invalid.
func (i *Strata) SetString(s string) error { return setEnum(i, s, _StrataNames, "Strata") }

// StrataValues returns all possible values for the type Strata.
func StrataValues() []Strata {
	v := make([]Strata, len(_StrataNames))
	for i := range v {
		v[i] = Strata(i)
	}
	return v
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Strata) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Strata) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

// String returns the string representation of this DrawLayers value.
func (i DrawLayers) String() string { return enumName(i, _DrawLayersNames) }

// SetString sets the DrawLayers value from its string representation,
// and returns an error if the string is invalid.
func (i *DrawLayers) SetString(s string) error {
	return setEnum(i, s, _DrawLayersNames, "DrawLayers")
}

// DrawLayersValues returns all possible values for the type DrawLayers.
func DrawLayersValues() []DrawLayers {
	v := make([]DrawLayers, len(_DrawLayersNames))
	for i := range v {
		v[i] = DrawLayers(i)
	}
	return v
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i DrawLayers) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *DrawLayers) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

// String returns the string representation of this Points value.
func (i Points) String() string { return enumName(i, _PointsNames) }

// SetString sets the Points value from its string representation,
// and returns an error if the string is invalid.
func (i *Points) SetString(s string) error { return setEnum(i, s, _PointsNames, "Points") }

// PointsValues returns all possible values for the type Points.
func PointsValues() []Points {
	v := make([]Points, len(_PointsNames))
	for i := range v {
		v[i] = Points(i)
	}
	return v
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Points) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Points) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

// String returns the string representation of this Kinds value.
func (i Kinds) String() string { return enumName(i, _KindsNames) }

// SetString sets the Kinds value from its string representation,
// and returns an error if the string is invalid.
func (i *Kinds) SetString(s string) error { return setEnum(i, s, _KindsNames, "Kinds") }

// KindsValues returns all possible values for the type Kinds.
func KindsValues() []Kinds {
	v := make([]Kinds, len(_KindsNames))
	for i := range v {
		v[i] = Kinds(i)
	}
	return v
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Kinds) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Kinds) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

// String returns the string representation of this Slots value.
func (i Slots) String() string { return enumName(i, _SlotsNames) }

// SetString sets the Slots value from its string representation,
// and returns an error if the string is invalid.
func (i *Slots) SetString(s string) error { return setEnum(i, s, _SlotsNames, "Slots") }

// SlotsValues returns all possible values for the type Slots.
func SlotsValues() []Slots {
	v := make([]Slots, len(_SlotsNames))
	for i := range v {
		v[i] = Slots(i)
	}
	return v
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Slots) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Slots) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

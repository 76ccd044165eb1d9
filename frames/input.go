// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frames

// InputState is the pointer state that render eligibility depends on.
// It is owned by the input tracking of the host application.
type InputState interface {

	// HoveredFrame returns the frame currently under the pointer, or [NoID].
	HoveredFrame() ID

	// PressedFrame returns the frame currently pressed, or [NoID].
	PressedFrame() ID
}

// Pointer is a plain [InputState] that the host updates as
// pointer events arrive.
type Pointer struct {

	// Hovered is the frame under the pointer.
	Hovered ID

	// Pressed is the frame the pointer was pressed on,
	// until the press is released.
	Pressed ID
}

func (p *Pointer) HoveredFrame() ID { return p.Hovered }

func (p *Pointer) PressedFrame() ID { return p.Pressed }

// hovered returns the hovered frame of the registry input, if any.
func (r *Registry) hovered() ID {
	if r.Input == nil {
		return NoID
	}
	return r.Input.HoveredFrame()
}

// pressed returns the pressed frame of the registry input, if any.
func (r *Registry) pressed() ID {
	if r.Input == nil {
		return NoID
	}
	return r.Input.PressedFrame()
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frames

// IsEffectivelyVisible returns whether the given frame and all of its
// ancestors have their visible flag set.
func (r *Registry) IsEffectivelyVisible(id ID) bool {
	if r.frames[id] == nil {
		return false
	}
	return r.WalkUp(id, func(f *Frame) bool {
		return f.Visible
	})
}

// isButtonTexture returns whether the frame is a texture occupying one of
// the reserved state slots of an interactive control.
func (r *Registry) isButtonTexture(f *Frame) bool {
	if f.Kind != KindTexture || f.Slot == SlotNone {
		return false
	}
	par := r.frames[f.Parent]
	return par != nil && par.Kind.IsInteractive()
}

// candidate is a frame that survived the ancestor visibility sweep.
type candidate struct {
	frame *Frame
	alpha float32
}

// candidates returns all frames whose ancestors are visible, in tree order
// from the roots, with their effective alpha. Hidden frames prune their
// subtree, except for button textures, which are kept with the alpha of
// their control. Composed widgets draw their own children, which are
// therefore not candidates.
func (r *Registry) candidates() []candidate {
	var cands []candidate
	alpha := map[ID]float32{}
	for _, root := range r.Roots() {
		r.WalkDown(root, func(f *Frame) bool {
			inherited, ok := alpha[f.Parent]
			if !ok {
				inherited = 1
			}
			if !f.Visible {
				if r.isButtonTexture(f) {
					cands = append(cands, candidate{f, inherited})
				}
				return Break
			}
			a := f.Alpha * inherited
			alpha[f.ID] = a
			cands = append(cands, candidate{f, a})
			if f.Kind.IsComposed() {
				return Break
			}
			return Continue
		})
	}
	return cands
}

// candidateOf returns the candidate for the given frame computed along its
// ancestor chain, and false if the frame is not a candidate.
func (r *Registry) candidateOf(f *Frame) (candidate, bool) {
	alpha := float32(1)
	ok := r.WalkUpParent(f.ID, func(a *Frame) bool {
		if !a.Visible || a.Kind.IsComposed() {
			return Break
		}
		alpha *= a.Alpha
		return Continue
	})
	if !ok {
		return candidate{}, false
	}
	if !f.Visible {
		if r.isButtonTexture(f) {
			return candidate{f, alpha}, true
		}
		return candidate{}, false
	}
	return candidate{f, alpha * f.Alpha}, true
}

// eligible returns whether a candidate is rendered, given the optional
// set of frames that a partial render is restricted to.
func (r *Registry) eligible(c candidate, filter map[ID]bool) bool {
	f := c.frame
	if filter != nil && !filter[f.ID] {
		return false
	}
	if c.alpha <= 0 {
		return false
	}
	if f.DrawLayer == LayerHighlight && (f.Parent == NoID || r.hovered() != f.Parent) {
		return false
	}
	if r.isButtonTexture(f) {
		ctl := r.frames[f.Parent]
		enabled := !ctl.Disabled
		pressed := ctl.Pushed || r.pressed() == ctl.ID
		switch f.Slot {
		case SlotDisabled:
			return ctl.Disabled
		case SlotNormal:
			return enabled && !pressed
		case SlotPushed:
			return enabled && pressed
		case SlotHighlight:
			return enabled && r.hovered() == ctl.ID
		}
	}
	return f.Visible
}

// RenderEligible returns whether the given frame would be included in
// the render order with the current tree and input state.
func (r *Registry) RenderEligible(id ID) bool {
	f := r.frames[id]
	if f == nil {
		return false
	}
	c, ok := r.candidateOf(f)
	return ok && r.eligible(c, nil)
}

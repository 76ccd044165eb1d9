// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frames

// WouldCreateCycle returns whether making the layout of the given frame depend
// on the given target would create a dependency cycle, including the trivial
// one where the target is the frame itself.
//
// The layout of a frame depends on the targets of its anchors (and line
// endpoints) and on its parent, so the search follows both kinds of edges
// from the target, looking for the frame.
func (r *Registry) WouldCreateCycle(frame, target ID) bool {
	if frame == target {
		return true
	}
	visited := map[ID]bool{target: true}
	queue := []ID{target}
	for len(queue) > 0 {
		cur := r.frames[queue[0]]
		queue = queue[1:]
		if cur == nil {
			continue
		}
		for _, dep := range r.dependencies(cur) {
			if dep == frame {
				return true
			}
			if !visited[dep] {
				visited[dep] = true
				queue = append(queue, dep)
			}
		}
	}
	return false
}

// dependencies returns the frames that the layout of the given frame reads.
func (r *Registry) dependencies(f *Frame) []ID {
	deps := make([]ID, 0, len(f.Anchors)+3)
	if f.Parent != NoID {
		deps = append(deps, f.Parent)
	}
	for _, a := range f.Anchors {
		if id := r.targetID(f, a.Target); id != NoID {
			deps = append(deps, id)
		}
	}
	if f.Line != nil {
		for _, la := range []LineAnchor{f.Line.Start, f.Line.End} {
			if id := r.targetID(f, la.Target); id != NoID {
				deps = append(deps, id)
			}
		}
	}
	return deps
}

// targetID returns the frame whose rectangle the given target of the given
// frame refers to. Targets that are the parent, not bound yet, or no longer
// live all refer to the parent.
func (r *Registry) targetID(f *Frame, t Target) ID {
	if t.Kind == TargetFrame {
		if _, ok := r.frames[t.ID]; ok {
			return t.ID
		}
	}
	return f.Parent
}

// bindTarget binds a named target to the frame currently holding the name,
// and checks that a frame target is live.
func (r *Registry) bindTarget(t Target) (Target, error) {
	switch t.Kind {
	case TargetNamed:
		if nf := r.ByName(t.Name); nf != nil {
			return Target{Kind: TargetFrame, ID: nf.ID, Name: t.Name}, nil
		}
	case TargetFrame:
		if _, ok := r.frames[t.ID]; !ok {
			return t, unknown(t.ID)
		}
	}
	return t, nil
}

// checkTarget returns [ErrCyclicAnchor] if the given frame
// may not depend on the given bound target.
func (r *Registry) checkTarget(f *Frame, t Target) error {
	dep := r.targetID(f, t)
	if dep != NoID && r.WouldCreateCycle(f.ID, dep) {
		return ErrCyclicAnchor
	}
	return nil
}

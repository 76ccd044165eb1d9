// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frames

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"cogentcore.org/framekit/base/ordmap"
	"cogentcore.org/framekit/math32"
)

// Registry owns all of the frames of one widget tree, by id, and indexes
// them by name. All mutations of the tree go through the registry so that
// the hierarchy, anchor, and propagation invariants hold after every call.
//
// A Registry is not safe for concurrent use; all access must be
// serialized by the host, typically one owner per frame tick.
type Registry struct {

	// Settings are the configurable defaults of the registry.
	Settings Settings

	// Input is the pointer state used for render eligibility.
	// It defaults to a [Pointer].
	Input InputState

	// frames are all live frames by id.
	frames map[ID]*Frame

	// names is the name index of the non-orphaned frames.
	names map[string]ID

	// lastID is the most recently assigned id.
	lastID ID

	// screen is the screen size of the most recent layout pass.
	screen math32.Vector2

	// paintOrder and hitOrder are all frame ids sorted by paint
	// and hit-test keys, rebuilt when orderStale is set.
	paintOrder []ID
	hitOrder   []ID
	orderStale bool
}

// NewRegistry returns a new empty registry with the given settings,
// or the default settings if none are given.
func NewRegistry(settings ...*Settings) *Registry {
	r := &Registry{
		Input:      &Pointer{},
		frames:     map[ID]*Frame{},
		names:      map[string]ID{},
		orderStale: true,
	}
	if len(settings) > 0 && settings[0] != nil {
		r.Settings = *settings[0]
	} else {
		r.Settings.Defaults()
	}
	r.screen = math32.Vec2(r.Settings.ScreenWidth, r.Settings.ScreenHeight)
	return r
}

// Len returns the number of live frames.
func (r *Registry) Len() int {
	return len(r.frames)
}

// Get returns the frame with the given id, or nil if there is none.
func (r *Registry) Get(id ID) *Frame {
	return r.frames[id]
}

// ByName returns the frame currently bound to the given name,
// or nil if there is none.
func (r *Registry) ByName(name string) *Frame {
	if name == "" {
		return nil
	}
	id, ok := r.names[name]
	if !ok {
		return nil
	}
	return r.frames[id]
}

// IDs returns the ids of all live frames in creation order.
func (r *Registry) IDs() []ID {
	return slices.Sorted(maps.Keys(r.frames))
}

// Roots returns the ids of all frames without a parent in creation order.
func (r *Registry) Roots() []ID {
	var roots []ID
	for _, id := range r.IDs() {
		if r.frames[id].Parent == NoID {
			roots = append(roots, id)
		}
	}
	return roots
}

// ScreenSize returns the screen size of the most recent layout pass,
// which starts out as the screen size of the [Settings].
func (r *Registry) ScreenSize() math32.Vector2 {
	return r.screen
}

// SetScreenSize sets the screen size used by queries that do not
// take one, such as [Registry.DerivedWidth].
func (r *Registry) SetScreenSize(width, height float32) {
	r.screen = math32.Vec2(width, height)
}

// MarkOrderStale signals that the cached paint and hit-test orders
// must be rebuilt before the next ordering pass. Registry mutations
// that change ordering keys call it automatically.
func (r *Registry) MarkOrderStale() {
	r.orderStale = true
}

// OrderStale returns whether the cached paint and hit-test orders are stale.
func (r *Registry) OrderStale() bool {
	return r.orderStale
}

// frame returns the frame with the given id, or an [ErrUnknownID] error.
func (r *Registry) frame(id ID) (*Frame, error) {
	f := r.frames[id]
	if f == nil {
		return nil, unknown(id)
	}
	return f, nil
}

// Create creates a new frame of the given kind, with the given optional
// name, as the last child of the given parent ([NoID] for a root frame).
// The new frame has no anchors, a zero size, is visible, and inherits
// strata, level, alpha, and scale from its parent.
//
// If the name is already bound to a frame, that frame is orphaned:
// it is detached from its parent and hidden, and its children move to
// the new frame, which takes over the name.
func (r *Registry) Create(kind Kinds, name string, parent ID) (ID, error) {
	var par *Frame
	if parent != NoID {
		par = r.frames[parent]
		if par == nil {
			return NoID, fmt.Errorf("frames.Create %q: parent: %w", name, unknown(parent))
		}
	}
	r.lastID++
	f := &Frame{
		ID:             r.lastID,
		Name:           name,
		Kind:           kind,
		Visible:        true,
		Alpha:          1,
		EffectiveAlpha: 1,
		Scale:          1,
		EffectiveScale: 1,
		Strata:         r.Settings.DefaultStrata,
	}
	if kind.IsRegion() {
		f.DrawLayer = LayerArtwork
	}
	if kind == KindLine {
		f.Line = &Line{Thickness: 1}
	}
	r.frames[f.ID] = f
	if par != nil {
		par.Children = append(par.Children, f.ID)
		f.Parent = par.ID
	}
	r.inherit(f)
	if name != "" {
		if old := r.ByName(name); old != nil {
			r.orphan(old, f)
		}
		r.names[name] = f.ID
		r.bindNamedTargets(f)
	}
	r.orderStale = true
	slog.Debug("frames: created", "frame", f, "parent", parent)
	return f.ID, nil
}

// orphan detaches and hides the given frame, which is being replaced by nf
// under the same name, and moves its children and named children to nf.
// Children that nf depends on, through its parents or anchors, stay with
// the orphaned frame.
func (r *Registry) orphan(old, nf *Frame) {
	r.detach(old)
	old.Visible = false
	old.Orphaned = true
	kids := old.Children
	old.Children = nil
	for _, cid := range kids {
		kid := r.frames[cid]
		if kid == nil {
			continue
		}
		if kid == nf || r.isAncestor(kid.ID, nf.ID) {
			// nf was created inside the frame it replaces
			old.Children = append(old.Children, cid)
			continue
		}
		if r.WouldCreateCycle(kid.ID, nf.ID) {
			slog.Warn("frames: child kept by orphaned frame", "child", kid, "frame", old, "replacement", nf, "err", ErrCyclicAnchor)
			old.Children = append(old.Children, cid)
			continue
		}
		kid.Parent = nf.ID
		nf.Children = append(nf.Children, cid)
	}
	r.moveNamedChildren(old, nf)
	r.inherit(old)
	r.propagate(old)
	r.propagate(nf)
	slog.Debug("frames: orphaned", "frame", old, "replacement", nf)
}

// moveNamedChildren moves the named children of old that were
// moved to nf over to the named children of nf.
func (r *Registry) moveNamedChildren(old, nf *Frame) {
	if old.NamedChildren == nil {
		return
	}
	for _, kv := range old.NamedChildren.Order {
		if kid := r.frames[kv.Value]; kid != nil && kid.Parent == nf.ID {
			if nf.NamedChildren == nil {
				nf.NamedChildren = ordmap.New[string, ID]()
			}
			nf.NamedChildren.Add(kv.Key, kv.Value)
		}
	}
	old.NamedChildren.DeleteFunc(func(k string, id ID) bool {
		kid := r.frames[id]
		return kid == nil || kid.Parent != old.ID
	})
}

// isAncestor returns whether the frame a is a strict ancestor of the frame b.
func (r *Registry) isAncestor(a, b ID) bool {
	found := false
	r.WalkUpParent(b, func(f *Frame) bool {
		if f.ID == a {
			found = true
			return Break
		}
		return Continue
	})
	return found
}

// detach removes the frame from the children and named children
// of its parent, making it a root.
func (r *Registry) detach(f *Frame) {
	if par := r.frames[f.Parent]; par != nil {
		par.Children = slices.DeleteFunc(par.Children, func(id ID) bool { return id == f.ID })
		par.NamedChildren.DeleteFunc(func(k string, id ID) bool { return id == f.ID })
	}
	f.Parent = NoID
	f.Slot = SlotNone
}

// Reparent moves the frame with the given id to the end of the children of the
// given new parent ([NoID] to make it a root). Unpinned strata and level are
// re-derived from the new parent, and the whole subtree is re-propagated,
// including when the parent does not change.
//
// A new parent that is the frame itself, one of its descendants, or a frame
// whose layout depends on the frame through anchors is rejected with
// [ErrCyclicAnchor], leaving the tree unchanged.
func (r *Registry) Reparent(id, parent ID) error {
	f, err := r.frame(id)
	if err != nil {
		return fmt.Errorf("frames.Reparent: %w", err)
	}
	var par *Frame
	if parent != NoID {
		par = r.frames[parent]
		if par == nil {
			return fmt.Errorf("frames.Reparent %v: parent: %w", f, unknown(parent))
		}
		if r.WouldCreateCycle(id, parent) {
			slog.Warn("frames: rejected cyclic parent", "frame", f, "parent", par)
			return fmt.Errorf("frames.Reparent %v under %v: %w", f, par, ErrCyclicAnchor)
		}
	}
	if f.Parent != parent {
		r.detach(f)
		if par != nil {
			par.Children = append(par.Children, id)
			f.Parent = parent
		}
	}
	if par != nil {
		f.Orphaned = false
	}
	r.inherit(f)
	r.propagate(f)
	r.orderStale = true
	slog.Debug("frames: reparented", "frame", f, "parent", parent)
	return nil
}

// AddChild makes the given child the last child of the given parent.
// It is [Registry.Reparent] with a required parent.
func (r *Registry) AddChild(parent, child ID) error {
	if _, err := r.frame(parent); err != nil {
		return fmt.Errorf("frames.AddChild: %w", err)
	}
	return r.Reparent(child, parent)
}

// Delete detaches the frame with the given id from its parent and drops
// it and its whole subtree from the registry. Anchors that still target a
// dropped frame lay out against their own parent.
func (r *Registry) Delete(id ID) error {
	f, err := r.frame(id)
	if err != nil {
		return fmt.Errorf("frames.Delete: %w", err)
	}
	r.detach(f)
	r.WalkDownPost(id, func(d *Frame) {
		delete(r.frames, d.ID)
		if d.Name != "" && r.names[d.Name] == d.ID {
			delete(r.names, d.Name)
		}
	})
	r.orderStale = true
	slog.Debug("frames: deleted", "frame", f)
	return nil
}

// bindNamedTargets binds the anchors that name the given new frame
// to its id, unless a binding would create a cycle.
func (r *Registry) bindNamedTargets(nf *Frame) {
	bind := func(f *Frame, t *Target) {
		if t.Kind != TargetNamed || t.Name != nf.Name {
			return
		}
		if r.WouldCreateCycle(f.ID, nf.ID) {
			slog.Warn("frames: named anchor target left unbound", "frame", f, "target", nf.Name, "err", ErrCyclicAnchor)
			return
		}
		*t = Target{Kind: TargetFrame, ID: nf.ID, Name: nf.Name}
	}
	for _, id := range r.IDs() {
		f := r.frames[id]
		for i := range f.Anchors {
			bind(f, &f.Anchors[i].Target)
		}
		if f.Line != nil {
			bind(f, &f.Line.Start.Target)
			bind(f, &f.Line.End.Target)
		}
	}
}

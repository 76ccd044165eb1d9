// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frames

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// WalkUp calls the given function on the frame with the given id and all
// of its parents. It stops walking if the function returns [Break] and keeps
// walking if it returns [Continue]. It returns whether walking was finished
// (false if it was aborted with [Break]).
func (r *Registry) WalkUp(id ID, fun func(f *Frame) bool) bool {
	cur := r.frames[id]
	for cur != nil {
		if !fun(cur) {
			return false
		}
		if cur.Parent == cur.ID { // prevent loops
			return true
		}
		cur = r.frames[cur.Parent]
	}
	return true
}

// WalkUpParent calls the given function on all of the parents of the frame
// with the given id, but not the frame itself. See [Registry.WalkUp].
func (r *Registry) WalkUpParent(id ID, fun func(f *Frame) bool) bool {
	f := r.frames[id]
	if f == nil || f.Parent == NoID {
		return true
	}
	return r.WalkUp(f.Parent, fun)
}

// WalkDown calls the given function on the frame with the given id and all
// of its descendants in depth-first order, children in insertion order.
// It stops walking the current branch of the tree if the function returns
// [Break] and keeps walking if it returns [Continue]. It is non-recursive.
func (r *Registry) WalkDown(id ID, fun func(f *Frame) bool) {
	start := r.frames[id]
	if start == nil {
		return
	}
	stack := []*Frame{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fun(cur) {
			continue
		}
		for i := len(cur.Children) - 1; i >= 0; i-- {
			if kid := r.frames[cur.Children[i]]; kid != nil {
				stack = append(stack, kid)
			}
		}
	}
}

// WalkDownBreadth calls the given function on the frame with the given id and
// all of its descendants in breadth-first order. It stops walking the current
// branch of the tree if the function returns [Break] and keeps walking if it
// returns [Continue].
func (r *Registry) WalkDownBreadth(id ID, fun func(f *Frame) bool) {
	start := r.frames[id]
	if start == nil {
		return
	}
	queue := []*Frame{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if !fun(cur) {
			continue
		}
		for _, cid := range cur.Children {
			if kid := r.frames[cid]; kid != nil {
				queue = append(queue, kid)
			}
		}
	}
}

// WalkDownPost calls the given function on all of the descendants of the frame
// with the given id and then on the frame itself, deeper frames first.
func (r *Registry) WalkDownPost(id ID, fun func(f *Frame)) {
	var order []*Frame
	r.WalkDown(id, func(f *Frame) bool {
		order = append(order, f)
		return Continue
	})
	for i := len(order) - 1; i >= 0; i-- {
		fun(order[i])
	}
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"cogentcore.org/framekit/frames"
	"github.com/muesli/termenv"
)

// header writes the given column titles in bold.
func header(out *termenv.Output, tw *tabwriter.Writer, cols ...string) {
	for i, c := range cols {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, out.String(c).Bold().String())
	}
	fmt.Fprintln(tw)
}

// Render prints the paint order of the given scene file, back to front.
func Render(c *Config, out *termenv.Output, scene string) error {
	r, err := c.open(scene)
	if err != nil {
		return err
	}
	var subtrees []frames.ID
	for _, name := range c.Subtrees {
		f, err := byName(r, name)
		if err != nil {
			return err
		}
		subtrees = append(subtrees, f.ID)
	}
	w, h := screen(r)
	items := r.CollectRenderOrder(w, h, subtrees...)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	header(out, tw, "FRAME", "STRATA", "LEVEL", "LAYER", "RECT", "ALPHA")
	for _, it := range items {
		f := r.Get(it.ID)
		layer := "-"
		if f.IsRegion() {
			layer = f.DrawLayer.String() + ":" + strconv.Itoa(f.DrawSublayer)
		}
		fmt.Fprintf(tw, "%v\t%v\t%d\t%s\t%v\t%g\n", f, f.Strata, f.Level, layer, it.Rect, it.Alpha)
	}
	return tw.Flush()
}

// Hit prints the topmost frame that takes pointer input at
// the given screen position of the given scene file.
func Hit(c *Config, out *termenv.Output, scene, xs, ys string) error {
	x, err := strconv.ParseFloat(xs, 32)
	if err != nil {
		return fmt.Errorf("invalid x: %w", err)
	}
	y, err := strconv.ParseFloat(ys, 32)
	if err != nil {
		return fmt.Errorf("invalid y: %w", err)
	}
	r, err := c.open(scene)
	if err != nil {
		return err
	}
	w, h := screen(r)
	id, ok := r.HitTest(float32(x), float32(y), w, h)
	if !ok {
		fmt.Fprintln(out, out.String("no frame").Faint())
		return nil
	}
	fmt.Fprintln(out, r.Get(id))
	return nil
}

// Rect prints the resolved rectangle, derived size, and effective values
// of the frames with the given names in the given scene file.
func Rect(c *Config, out *termenv.Output, scene string, names ...string) error {
	r, err := c.open(scene)
	if err != nil {
		return err
	}
	w, h := screen(r)
	cache := frames.NewCache()
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	header(out, tw, "FRAME", "RECT", "SIZE", "SCALE", "ALPHA", "VISIBLE")
	for _, name := range names {
		f, err := byName(r, name)
		if err != nil {
			return err
		}
		rect, _ := r.ResolveRect(f.ID, w, h, cache)
		sz, _ := r.DerivedSize(f.ID)
		fmt.Fprintf(tw, "%v\t%v\t%gx%g\t%g\t%g\t%t\n", f, rect, sz.X, sz.Y, f.EffectiveScale, f.EffectiveAlpha, r.RenderEligible(f.ID))
	}
	return tw.Flush()
}

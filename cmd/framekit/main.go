// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command framekit lays out frame tree scene files and prints
// their paint order, hit-test results, and frame rectangles.
package main

import (
	"os"

	"cogentcore.org/framekit/base/logx"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd returns the framekit command tree.
func newRootCmd() *cobra.Command {
	c := &Config{}
	root := &cobra.Command{
		Use:           "framekit",
		Short:         "Lay out frame tree scene files",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(c.VeryVerbose, c.Verbose, c.Quiet)
			logx.SetDefaultLogger()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&c.Settings, "settings", "", "settings `file` (.toml, .yaml) overriding the scene settings")
	pf.Float32Var(&c.Width, "width", 0, "screen width (default from settings)")
	pf.Float32Var(&c.Height, "height", 0, "screen height (default from settings)")
	pf.BoolVarP(&c.Verbose, "verbose", "v", false, "print info log messages")
	pf.BoolVar(&c.VeryVerbose, "vv", false, "print debug log messages")
	pf.BoolVarP(&c.Quiet, "quiet", "q", false, "only print error log messages")

	out := func(cmd *cobra.Command) *termenv.Output {
		return termenv.NewOutput(cmd.OutOrStdout())
	}

	render := &cobra.Command{
		Use:   "render <scene>",
		Short: "Print the paint order of a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !c.Watch {
				return Render(c, out(cmd), args[0])
			}
			return Watch(cmd.Context(), args[0], func() error {
				return Render(c, out(cmd), args[0])
			})
		},
	}
	render.Flags().BoolVarP(&c.Watch, "watch", "w", false, "render again whenever the scene file changes")
	render.Flags().StringSliceVar(&c.Subtrees, "subtree", nil, "only render the subtrees of the given frame `names`")

	hit := &cobra.Command{
		Use:   "hit <scene> <x> <y>",
		Short: "Print the topmost frame at a screen position",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Hit(c, out(cmd), args[0], args[1], args[2])
		},
	}

	rect := &cobra.Command{
		Use:   "rect <scene> <frame>...",
		Short: "Print the resolved rectangles of frames by name",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Rect(c, out(cmd), args[0], args[1:]...)
		},
	}

	root.AddCommand(render, hit, rect)
	return root
}

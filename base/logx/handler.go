// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record,
// with the level label colored according to the terminal profile
// of its output. Color is dropped when the output is not a terminal.
type Handler struct {
	out   *termenv.Output
	mu    *sync.Mutex
	attrs []slog.Attr
	group string
}

// NewHandler returns a new [Handler] writing to the given writer.
func NewHandler(w io.Writer) *Handler {
	return &Handler{out: termenv.NewOutput(w), mu: &sync.Mutex{}}
}

// SetDefaultLogger sets the default [slog] logger to one that
// writes to [os.Stderr] through a [Handler] at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= UserLevel
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(h.levelLabel(r.Level))
	sb.WriteByte(' ')
	sb.WriteString(r.Message)
	for _, a := range h.attrs {
		writeAttr(&sb, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, h.group, a)
		return true
	})
	sb.WriteByte('\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	if h.group != "" {
		for i := len(h.attrs); i < len(nh.attrs); i++ {
			nh.attrs[i].Key = h.group + "." + nh.attrs[i].Key
		}
	}
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	if h.group != "" {
		nh.group = h.group + "." + name
	} else {
		nh.group = name
	}
	return &nh
}

// writeAttr writes the given attribute, qualifying its key with the group.
func writeAttr(sb *strings.Builder, group string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	fmt.Fprintf(sb, " %s=%v", key, a.Value.Resolve())
}

// levelLabel returns the colored label for the given level.
func (h *Handler) levelLabel(level slog.Level) string {
	label := level.String()
	var c termenv.Color
	switch {
	case level >= slog.LevelError:
		c = termenv.ANSIRed
	case level >= slog.LevelWarn:
		c = termenv.ANSIYellow
	case level >= slog.LevelInfo:
		c = termenv.ANSICyan
	default:
		c = termenv.ANSIBrightBlack
	}
	return h.out.String(label).Foreground(c).Bold().String()
}

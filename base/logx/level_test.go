// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	prev := UserLevel
	defer func() { UserLevel = prev }()
	UserLevel = slog.LevelInfo

	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf))
	l.Debug("hidden")
	l.Info("reparent", "frame", 3)
	l.With("pass", 1).WithGroup("rect").Warn("clamped", "x", 0)

	// a bytes.Buffer is not a terminal, so no escape codes are written
	assert.Equal(t, "INFO reparent frame=3\nWARN clamped pass=1 rect.x=0\n", buf.String())
}

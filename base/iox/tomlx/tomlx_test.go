// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type screen struct {
	Width   int
	Height  int
	Exclude []string
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "screen.toml")
	require.NoError(t, Save(&screen{Width: 1024, Height: 768, Exclude: []string{"UIParent"}}, fn))

	s := &screen{Height: 1}
	require.NoError(t, Open(s, fn))
	assert.Equal(t, &screen{Width: 1024, Height: 768, Exclude: []string{"UIParent"}}, s)

	assert.Error(t, Open(s, filepath.Join(t.TempDir(), "missing.toml")))
}

func TestReadBytes(t *testing.T) {
	s := &screen{Width: 800, Height: 600}
	require.NoError(t, ReadBytes(s, []byte("Height = 480\n")))
	assert.Equal(t, &screen{Width: 800, Height: 480}, s)

	b, err := WriteBytes(&screen{Width: 2})
	require.NoError(t, err)
	assert.Contains(t, string(b), "Width = 2")
	assert.Error(t, ReadBytes(s, []byte("Height = ")))
}

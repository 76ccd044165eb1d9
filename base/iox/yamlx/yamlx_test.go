// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type anchor struct {
	Point string  `yaml:"point"`
	X     float32 `yaml:"x"`
}

func TestReadBytes(t *testing.T) {
	var a []anchor
	require.NoError(t, ReadBytes(&a, []byte("- point: TopLeft\n  x: 4\n- point: Center\n")))
	assert.Equal(t, []anchor{{"TopLeft", 4}, {"Center", 0}}, a)

	b, err := WriteBytes(a[:1])
	require.NoError(t, err)
	assert.Equal(t, "- point: TopLeft\n  x: 4\n", string(b))
}

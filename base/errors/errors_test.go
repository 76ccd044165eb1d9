// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))

	err := Wrap(fs.ErrNotExist, "frame 12", "resolve")
	assert.Equal(t, "file does not exist (frame 12: resolve)", err.Error())
	assert.True(t, Is(err, fs.ErrNotExist))

	var e *Error
	if assert.True(t, As(err, &e)) {
		assert.Equal(t, []string{"frame 12", "resolve"}, e.Context)
	}
	assert.Equal(t, "file does not exist", Wrap(fs.ErrNotExist).Error())
}

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := New("bad")
	assert.Equal(t, err, Log(err))
	assert.Equal(t, 3, Log1(3, nil))
	assert.Equal(t, 4, Log1(4, err))
}

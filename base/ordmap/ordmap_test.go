// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func keys[K comparable, V any](om *Map[K, V]) []K {
	var ks []K
	for _, kv := range om.Order {
		ks = append(ks, kv.Key)
	}
	return ks
}

func TestMap(t *testing.T) {
	om := New[string, int]()
	om.Add("Normal", 2)
	om.Add("Pushed", 3)
	om.Add("Label", 4)
	om.Add("Pushed", 5)

	assert.Equal(t, []string{"Normal", "Pushed", "Label"}, keys(om))
	v, ok := om.ValueByKeyTry("Pushed")
	assert.True(t, ok)
	assert.Equal(t, 5, v)
	_, ok = om.ValueByKeyTry("Disabled")
	assert.False(t, ok)

	om.DeleteFunc(func(k string, v int) bool { return v == 5 || k == "Normal" })
	assert.Equal(t, []string{"Label"}, keys(om))
	assert.Equal(t, 0, om.Map["Label"])
	v, ok = om.ValueByKeyTry("Label")
	assert.True(t, ok)
	assert.Equal(t, 4, v)
}

func TestNilMap(t *testing.T) {
	var om *Map[string, int]
	assert.NotPanics(t, func() { om.DeleteFunc(func(string, int) bool { return true }) })
	_, ok := om.ValueByKeyTry("x")
	assert.False(t, ok)
}

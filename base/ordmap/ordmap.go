// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package ordmap implements an ordered map that retains the order of items
added to a slice, while also providing fast key-based map lookup of items.

The slice structure holds the Key and Value for items as they are added,
enabling direct updating of the corresponding map, which holds the
index into the slice. Adding and access are fast, while deleting
is relatively slow, requiring updating of the index map.
*/
package ordmap

import "slices"

// KeyValue represents a key-value pair.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a generic ordered map that combines the order of a slice
// and the fast key lookup of a map. A map stores an index
// into a slice that has the value and key associated with the value.
type Map[K comparable, V any] struct {

	// Order is an ordered list of values and associated keys, in the order added.
	Order []KeyValue[K, V]

	// Map is the key to index mapping.
	Map map[K]int
}

// New returns a new ordered map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		Map: make(map[K]int),
	}
}

// Init initializes the map if it isn't already.
func (om *Map[K, V]) Init() {
	if om.Map == nil {
		om.Map = make(map[K]int)
	}
}

// Add adds a new value for given key.
// If key already exists in map, it replaces the item at that existing index,
// otherwise it is added to the end.
func (om *Map[K, V]) Add(key K, val V) {
	om.Init()
	if idx, has := om.Map[key]; has {
		om.Order[idx] = KeyValue[K, V]{Key: key, Value: val}
	} else {
		om.Map[key] = len(om.Order)
		om.Order = append(om.Order, KeyValue[K, V]{Key: key, Value: val})
	}
}

// ValueByKeyTry returns the value corresponding to the given key,
// with false returned for a missing key.
func (om *Map[K, V]) ValueByKeyTry(key K) (V, bool) {
	if om == nil {
		var zv V
		return zv, false
	}
	idx, ok := om.Map[key]
	if ok {
		return om.Order[idx].Value, ok
	}
	var zv V
	return zv, false
}

// DeleteFunc deletes every item for which del returns true.
func (om *Map[K, V]) DeleteFunc(del func(k K, v V) bool) {
	if om == nil {
		return
	}
	om.Order = slices.DeleteFunc(om.Order, func(kv KeyValue[K, V]) bool {
		return del(kv.Key, kv.Value)
	})
	clear(om.Map)
	for i, kv := range om.Order {
		om.Map[kv.Key] = i
	}
}

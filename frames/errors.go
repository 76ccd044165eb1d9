// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frames

import "cogentcore.org/framekit/base/errors"

var (
	// ErrCyclicAnchor is returned when an anchor or a new parent would make
	// a frame's layout depend on itself. The frame is left unchanged.
	ErrCyclicAnchor = errors.New("frames: cyclic anchor constraint")

	// ErrInvalidScale is returned for a scale that is not a finite value > 0.
	ErrInvalidScale = errors.New("frames: scale must be greater than zero")

	// ErrUnknownID is returned for an id that does not name a live frame.
	ErrUnknownID = errors.New("frames: unknown frame id")
)

// unknown returns an [ErrUnknownID] error for the given id.
func unknown(id ID) error {
	return errors.Wrap(ErrUnknownID, id.String())
}

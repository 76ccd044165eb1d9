// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error functions that extend
// the standard errors package, including context wrapping and logging helpers.
// It can be used as a drop-in replacement for the standard library
// errors package.
package errors

import (
	"errors"
	"strings"
)

// Error is an error with a base error and the list of
// context labels it was wrapped with.
type Error struct {
	Base    error
	Context []string
}

// Wrap wraps the given error into an [*Error] carrying the given
// context labels. It returns nil if the given error is nil.
func Wrap(err error, context ...string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Base:    err,
		Context: context,
	}
}

// Error returns the error as a string, followed by its context labels.
func (e *Error) Error() string {
	res := e.Base.Error()
	if len(e.Context) > 0 {
		res += " (" + strings.Join(e.Context, ": ") + ")"
	}
	return res
}

// Unwrap returns the underlying base error of the Error.
func (e *Error) Unwrap() error {
	return e.Base
}

// New is equivalent to [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Is is equivalent to [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is equivalent to [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join is equivalent to [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

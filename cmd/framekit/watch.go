// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/framekit/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watch calls fun once, and then again every time the given file is
// written or replaced, until the context is done. Errors from fun are
// logged and do not stop watching.
func Watch(ctx context.Context, filename string, fun func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	// editors often replace the file, so watch its directory
	if err := watcher.Add(filepath.Dir(filename)); err != nil {
		return err
	}
	errors.Log(fun())
	target := filepath.Clean(filename)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				slog.Info("scene changed", "file", filename, "op", event.Op)
				errors.Log(fun())
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watching scene", "file", filename, "err", err)
		}
	}
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"cogentcore.org/movi/base/errors"
)

// watch watches the given files, calling the given function with the
// absolute name of each one that is written. Empty names are ignored.
// It returns when the context is done.
func watch(ctx context.Context, names []string, changed func(file string)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watching files: %w", err)
	}
	defer w.Close()

	// editors often replace files, so the directories are watched
	files := map[string]bool{}
	for _, f := range names {
		if f == "" {
			continue
		}
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		files[abs] = true
		if err := w.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("watching %s: %w", f, err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !files[abs] {
				continue
			}
			slog.Info("movi: file changed", "file", ev.Name)
			changed(abs)
		}
	}
}

// files returns the files the session is loaded from.
func (s *session) files() []string {
	return []string{s.cfg.Template, s.cfg.Model}
}

// update updates the session for a change of the given file.
func (s *session) update(file string) error {
	tmpl, err := filepath.Abs(s.cfg.Template)
	if err != nil {
		return err
	}
	if file == tmpl {
		return s.loadTemplate()
	}
	return s.reloadModel()
}

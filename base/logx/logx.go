// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the user-facing log level and
// the default slog handler setup.
package logx

import (
	"io"
	"log/slog"
	"os"
)

// UserLevel is the verbosity [slog.Level] that the user has selected
// for what logging and printing messages should be shown.
var UserLevel = slog.LevelInfo

// SetDefault installs a text [slog.Handler] writing to the given writer
// (os.Stderr if nil) at [UserLevel] as the default logger.
func SetDefault(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: UserLevel})))
}

// LevelFromFlags returns the [slog.Level] for the standard
// verbose and quiet flags.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

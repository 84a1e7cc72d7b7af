// Copyright 2026 The Envfs Authors
// SPDX-License-Identifier: Apache-2.0

// Package envfslog constructs the single structured logger used by the
// envfs daemon.
package envfslog

import (
	"log/slog"
	"os"
)

// New returns a JSON logger writing to stderr. debug lowers the level
// to slog.LevelDebug; otherwise only Info and above are emitted.
func New(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

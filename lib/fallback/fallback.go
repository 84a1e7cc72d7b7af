// Copyright 2026 The Envfs Authors
// SPDX-License-Identifier: Apache-2.0

// Package fallback implements the static name -> target mapping that
// envfs consults when a caller has no usable PATH (setuid transitions,
// early init, a PATH that resolves to nothing). The mapping is built
// once, from a directory of symlinks, at mount time, and never changes
// afterward.
package fallback

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Table is an immutable name -> absolute target mapping. The zero value
// is a valid, empty table.
type Table struct {
	targets map[string]string
}

// Load scans dir for symlink entries and records, for each, the
// basename and the symlink's own link target (not a path inside dir).
// Non-symlink entries are diagnostic errors in the fallback directory;
// they are logged and skipped rather than causing Load to fail, since a
// single bad entry must not prevent the rest of the fallback layer from
// working.
func Load(logger *slog.Logger, dir string) (*Table, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading fallback directory %q: %w", dir, err)
	}

	targets := make(map[string]string, len(entries))
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		info, err := os.Lstat(path)
		if err != nil {
			logger.Warn("fallback entry unreadable, skipping", "path", path, "error", err)
			continue
		}
		if info.Mode()&os.ModeSymlink == 0 {
			logger.Warn("fallback entry is not a symlink, skipping", "path", path)
			continue
		}

		target, err := os.Readlink(path)
		if err != nil {
			logger.Warn("fallback entry symlink unreadable, skipping", "path", path, "error", err)
			continue
		}

		targets[entry.Name()] = target
	}

	return &Table{targets: targets}, nil
}

// Lookup returns the target recorded for name, if any.
func (t *Table) Lookup(name string) (string, bool) {
	if t == nil {
		return "", false
	}
	target, ok := t.targets[name]
	return target, ok
}

// Len reports how many names the table holds. Used by tests and by
// startup logging.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.targets)
}

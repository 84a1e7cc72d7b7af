// Copyright 2026 The Envfs Authors
// SPDX-License-Identifier: Apache-2.0

// Package mountopts parses the comma-separated -o options string that
// mount(8) and its helpers pass through to a filesystem binary.
package mountopts

import (
	"fmt"
	"log/slog"
	"strings"
)

// Options holds the parsed result of an -o options string.
type Options struct {
	// FallbackPath is the directory to scan for the fallback layer, or
	// "" if fallback-path was not given.
	FallbackPath string

	// BindMounts lists additional absolute paths that the mountpoint
	// should be recursively bind-mounted onto after the FUSE session
	// starts.
	BindMounts []string

	// AllowOther requests that non-owning users be permitted to access
	// the mount (the allow_other FUSE mount option / MountOptions.AllowOther).
	AllowOther bool

	// DefaultPermissions requests kernel-side permission checking in
	// addition to the filesystem's own (the default_permissions FUSE
	// mount option).
	DefaultPermissions bool

	// Debug enables verbose FUSE protocol logging.
	Debug bool

	// Remount records that a "remount" option was present. The original
	// implementation ignores remount requests with a warning rather than
	// tearing down and rebuilding the session, and this repo preserves
	// that behavior.
	Remount bool

	// Foreground-vs-daemonize is handled by cmd/envfs's argv parser, not
	// here: envfs never daemonizes in the first place, so there is
	// nothing for an -o option to switch.
}

// Parse splits raw on commas and recognises the options documented in
// the mount option table: fallback-path=, bind-mount= (repeatable),
// nofail/allow_other/default_permissions/debug/remount (flags), ro/rw
// (ignored silently — they describe the mount's write mode, which envfs
// is unconditionally read-only regardless). Unknown options are logged
// as a warning and otherwise ignored. A recognised option requiring a
// value that is given an empty value is a fatal parse error.
func Parse(logger *slog.Logger, raw string) (Options, error) {
	var opts Options

	if raw == "" {
		return opts, nil
	}

	for _, field := range strings.Split(raw, ",") {
		if field == "" {
			continue
		}

		key, value, hasValue := strings.Cut(field, "=")

		switch key {
		case "ro", "rw", "nofail":
			// Pass-through, no effect on envfs's behavior.
		case "remount":
			opts.Remount = true
			logger.Warn("ignoring remount request")
		case "debug":
			opts.Debug = true
		case "allow_other":
			opts.AllowOther = true
		case "default_permissions":
			opts.DefaultPermissions = true
		case "fallback-path":
			if !hasValue || value == "" {
				return Options{}, fmt.Errorf("mount option %q requires a value", key)
			}
			opts.FallbackPath = value
		case "bind-mount":
			if !hasValue || value == "" {
				return Options{}, fmt.Errorf("mount option %q requires a value", key)
			}
			opts.BindMounts = append(opts.BindMounts, value)
		default:
			logger.Warn("ignoring unknown mount option", "option", key)
		}
	}

	return opts, nil
}

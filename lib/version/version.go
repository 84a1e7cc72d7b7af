// Copyright 2026 The Envfs Authors
// SPDX-License-Identifier: Apache-2.0

// Package version exposes build metadata injected at link time via
// -ldflags. All variables default to values that identify a
// non-release build.
package version

// These are overridden at build time with:
//
//	-X github.com/Mic92/envfs/lib/version.Version=1.2.3
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	GitDirty  = "false"
	BuildTime = "unknown"
)

// Short returns the version number alone, e.g. "1.2.3".
func Short() string {
	return Version
}

// Commit returns the git commit, with a "-dirty" suffix when the build
// tree had uncommitted changes.
func Commit() string {
	if GitDirty == "true" {
		return GitCommit + "-dirty"
	}
	return GitCommit
}

// Info returns a one-line human-readable summary suitable for --version
// output: "envfs 0.1.0-dev (commit abcdef0, built 2026-01-01T00:00:00Z)".
func Info() string {
	return "envfs " + Short() + " (commit " + Commit() + ", built " + BuildTime + ")"
}

// Full returns Info with each field on its own line, suitable for
// diagnostic dumps.
func Full() string {
	return "version: " + Version + "\n" +
		"commit: " + Commit() + "\n" +
		"built: " + BuildTime + "\n"
}

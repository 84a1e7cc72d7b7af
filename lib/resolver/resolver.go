// Copyright 2026 The Envfs Authors
// SPDX-License-Identifier: Apache-2.0

// Package resolver implements the per-request name -> absolute target
// resolution policy: first the caller's PATH, then the static fallback
// layer.
package resolver

import (
	"os"
	"strings"

	"github.com/Mic92/envfs/lib/fallback"
	"github.com/Mic92/envfs/lib/pathenv"
)

// Resolver resolves a basename to an absolute executable path on behalf
// of a calling PID.
type Resolver struct {
	fallback *fallback.Table

	// readPATH is overridable in tests so the PATH-search policy can be
	// exercised without a real /proc/<pid>/environ.
	readPATH func(pid int) (string, bool)

	// stat is overridable in tests for the same reason.
	stat func(path string) (os.FileInfo, error)
}

// New returns a Resolver consulting fallbackTable when a caller's PATH
// search comes up empty.
func New(fallbackTable *fallback.Table) *Resolver {
	return &Resolver{
		fallback: fallbackTable,
		readPATH: pathenv.ReadPATH,
		stat:     os.Stat,
	}
}

// Resolve implements the policy from the envfs resolver contract: a
// name containing a slash, or equal to "." or "..", never resolves.
// Otherwise the caller's PATH is searched left to right for a regular,
// executable file named exactly name; the first match wins. If PATH
// search yields nothing, the fallback table is consulted. The returned
// path is the literal directory-component-joined-with-name string, not
// a canonicalized realpath — execve will dereference it itself.
func (r *Resolver) Resolve(name string, pid int) (target string, ok bool) {
	if name == "" || name == "." || name == ".." || strings.Contains(name, "/") {
		return "", false
	}

	if path, found := r.resolveFromPATH(name, pid); found {
		return path, true
	}

	return r.fallback.Lookup(name)
}

func (r *Resolver) resolveFromPATH(name string, pid int) (string, bool) {
	pathValue, present := r.readPATH(pid)
	if !present || pathValue == "" {
		return "", false
	}

	for _, dir := range strings.Split(pathValue, ":") {
		if dir == "" {
			// Empty PATH components conventionally mean the current
			// working directory; envfs skips them instead (see the
			// posix-empty-cwd open question).
			continue
		}

		candidate := dir + "/" + name
		info, err := r.stat(candidate)
		if err != nil {
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		if info.Mode().Perm()&0o111 == 0 {
			continue
		}

		return candidate, true
	}

	return "", false
}

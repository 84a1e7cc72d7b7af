// Copyright 2026 The Envfs Authors
// SPDX-License-Identifier: Apache-2.0

// Package pathenv reads environment variables out of another process's
// /proc/<pid>/environ file. It is the only mechanism envfs has for
// learning a caller's PATH: the FUSE kernel module hands the dispatcher
// a PID per request, and the process's live environment is the only
// race-free source of truth for what that PID considers its search path.
package pathenv

import (
	"bytes"
	"fmt"
	"os"
)

// Read returns the value of the environment variable named key as seen
// in pid's /proc/<pid>/environ, and whether it was present at all.
//
// The file is read fresh on every call: a process may mutate its own
// environment (via setenv/putenv) after execve, and callers that cache
// across requests would observe a stale PATH. Any error reading the
// file (pid gone, file missing, permission denied) is reported as
// "not present" rather than surfaced to the caller — the dispatcher
// degrades this to ENOENT, never a crash.
func Read(pid int, key string) (string, bool) {
	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/environ", pid))
	if err != nil {
		return "", false
	}
	return lookup(data, key)
}

// ReadPATH is a convenience wrapper for the single environment variable
// the resolver actually needs.
func ReadPATH(pid int) (string, bool) {
	return Read(pid, "PATH")
}

// lookup scans a NUL-separated KEY=VALUE environ blob for the first
// token whose key matches exactly.
func lookup(environ []byte, key string) (string, bool) {
	prefix := append([]byte(key), '=')
	for _, token := range bytes.Split(environ, []byte{0}) {
		if bytes.HasPrefix(token, prefix) {
			return string(token[len(prefix):]), true
		}
	}
	return "", false
}

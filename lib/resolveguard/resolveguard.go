// Copyright 2026 The Envfs Authors
// SPDX-License-Identifier: Apache-2.0

// Package resolveguard tells apart the two kinds of caller that ever
// reach envfs's Lookup: one that is about to dereference the name it
// just resolved (execve, readlink) and one that is merely checking
// whether the name exists (stat, access, and their *at variants). The
// low-level FUSE protocol gives no such signal directly — every one of
// these starts life as the same LOOKUP request — so the distinction is
// made the way the original implementation made it: by reading back
// which syscall the calling process is itself blocked in.
package resolveguard

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// currentSyscall is overridden in tests so they don't depend on a real
// /proc/<pid>/syscall.
var currentSyscall = readCurrentSyscall

// readCurrentSyscall returns the syscall number pid is currently
// blocked in, per /proc/<pid>/syscall. It reports false if pid has
// exited, procfs lacks this file, or the process is not inside a
// syscall at the instant of the read (content "running").
func readCurrentSyscall(pid int) (int64, bool) {
	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/syscall", pid))
	if err != nil {
		return 0, false
	}
	return parseSyscallLine(data)
}

func parseSyscallLine(data []byte) (int64, bool) {
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0, false
	}
	num, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, false
	}
	return num, true
}

// AllowsImplicitLookup reports whether pid's current syscall is one
// that dereferences a resolved name (execve/execveat/readlink/
// readlinkat) rather than just probing for its existence. The set of
// dereferencing syscall numbers is supplied per architecture.
//
// When the current syscall cannot be determined at all — the process
// raced past, procfs is restricted, or the kernel reports "running" —
// this reports true. A filesystem that cannot tell what the caller
// wants should fail toward letting execve keep working, not toward
// hiding the directory from it.
func AllowsImplicitLookup(pid int) bool {
	num, ok := currentSyscall(pid)
	if !ok {
		return true
	}
	return dereferenceSyscalls[num]
}

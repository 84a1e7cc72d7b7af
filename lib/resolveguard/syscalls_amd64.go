// Copyright 2026 The Envfs Authors
// SPDX-License-Identifier: Apache-2.0

//go:build amd64

package resolveguard

// dereferenceSyscalls holds the linux/amd64 numbers (arch/x86/entry/syscalls/syscall_64.tbl)
// of the syscalls that follow a resolved name through to its target
// rather than just checking for its presence.
var dereferenceSyscalls = map[int64]bool{
	59:  true, // execve
	89:  true, // readlink
	267: true, // readlinkat
	322: true, // execveat
}

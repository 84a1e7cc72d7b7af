// Copyright 2026 The Envfs Authors
// SPDX-License-Identifier: Apache-2.0

//go:build arm64

package resolveguard

// dereferenceSyscalls holds the linux/arm64 numbers (include/uapi/asm-generic/unistd.h)
// of the syscalls that follow a resolved name through to its target
// rather than just checking for its presence. arm64 carries no legacy
// bare readlink syscall, only the *at form.
var dereferenceSyscalls = map[int64]bool{
	78:  true, // readlinkat
	221: true, // execve
	281: true, // execveat
}

// Copyright 2026 The Envfs Authors
// SPDX-License-Identifier: Apache-2.0

// Package envfs implements the FUSE operation dispatcher: a directory
// that looks empty to readdir but resolves any basename to whichever
// executable the calling process's PATH would find, returning it as a
// symlink.
//
// # Read path
//
// lookup is the only operation that does real work: it asks the
// resolver for a target, allocates an inode for it, and hands the
// kernel a symlink entry. getattr and readlink afterwards only consult
// the inode registry — they never re-resolve.
//
// # Caching
//
// Every reply sets both the entry and the attribute timeout to zero.
// The mapping from name to target depends on the calling process, so
// the kernel must never answer a (parent, name) lookup itself; it must
// always come back to the dispatcher.
//
// # Write path
//
// There is none. envfs is read-only; Open/Read/Write and friends are
// left unimplemented and return ENOSYS via the embedded default
// RawFileSystem.
package envfs

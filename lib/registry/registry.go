// Copyright 2026 The Envfs Authors
// SPDX-License-Identifier: Apache-2.0

// Package registry implements the inode table backing envfs's symlink
// nodes: stable 64-bit inode numbers, kernel lookup refcounts, and the
// associated resolved target path. The root directory (inode 1) is not
// stored here; it is handled by a constant code path in the dispatcher.
package registry

import (
	"log/slog"
	"sync"
)

// firstInode is the first inode number handed out by Allocate. Inode 1
// is reserved for the root directory and never enters this table.
const firstInode uint64 = 2

// Registry is a mutex-protected inode -> target map with a monotonic
// allocation counter. The zero value is not usable; construct with New.
type Registry struct {
	mu      sync.Mutex
	logger  *slog.Logger
	next    uint64
	entries map[uint64]*entry
}

type entry struct {
	target   string
	refcount uint64
}

// New returns an empty Registry.
func New(logger *slog.Logger) *Registry {
	return &Registry{
		logger:  logger,
		next:    firstInode,
		entries: make(map[uint64]*entry),
	}
}

// Allocate records target under a freshly minted inode number with
// refcount 1 and returns that inode number. The counter never rewinds,
// even after the allocated inode is later forgotten, so inode numbers
// are never reused for the lifetime of the mount.
func (r *Registry) Allocate(target string) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	inode := r.next
	r.next++
	r.entries[inode] = &entry{target: target, refcount: 1}
	return inode
}

// Reference increments inode's refcount by n. It is a no-op if inode is
// not present (a repeat lookup arriving after the entry was already
// forgotten would be a kernel/filesystem desync; treating it as a no-op
// keeps the dispatcher from crashing on it).
func (r *Registry) Reference(inode uint64, n uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[inode]; ok {
		e.refcount += n
	}
}

// Forget decrements inode's refcount by n, removing the entry once it
// reaches zero. Forgetting an inode not present in the table is a
// no-op, logged at debug — the kernel's forget accounting and this
// table's should always agree, but a desync must never be fatal.
func (r *Registry) Forget(inode uint64, n uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[inode]
	if !ok {
		r.logger.Debug("forget for unknown inode", "inode", inode, "n", n)
		return
	}

	if n >= e.refcount {
		delete(r.entries, inode)
		return
	}
	e.refcount -= n
}

// GetTarget returns the target path recorded for inode, if it is still
// live.
func (r *Registry) GetTarget(inode uint64) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[inode]
	if !ok {
		return "", false
	}
	return e.target, true
}

// Len reports the number of live entries, excluding the root. Used by
// tests asserting the refcount-correctness property.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Copyright 2026 The Envfs Authors
// SPDX-License-Identifier: Apache-2.0

package envfs

import (
	"log/slog"
	"syscall"

	"github.com/hanwen/go-fuse/v2/fuse"

	"github.com/Mic92/envfs/lib/pathenv"
	"github.com/Mic92/envfs/lib/registry"
	"github.com/Mic92/envfs/lib/resolveguard"
	"github.com/Mic92/envfs/lib/resolver"
)

// accessWrite is the write bit in an Access request's mask.
const accessWrite = 0o2

// FileSystem is a fuse.RawFileSystem implementing the envfs contract.
// It is built directly on the wire-level API rather than go-fuse's
// higher-level tree API because the inode registry's explicit
// allocate/reference/forget lifecycle needs the per-inode Forget
// callback that the tree API does not expose to user code.
type FileSystem struct {
	fuse.RawFileSystem

	logger   *slog.Logger
	resolver *resolver.Resolver
	registry *registry.Registry
}

// New constructs a FileSystem that resolves names through r and tracks
// live symlink inodes in reg.
func New(logger *slog.Logger, r *resolver.Resolver, reg *registry.Registry) *FileSystem {
	return &FileSystem{
		RawFileSystem: fuse.NewDefaultRawFileSystem(),
		logger:        logger,
		resolver:      r,
		registry:      reg,
	}
}

func (fs *FileSystem) String() string {
	return "envfs"
}

func (fs *FileSystem) Init(server *fuse.Server) {
	fs.logger.Debug("fuse session initialized")
}

// Lookup resolves name against the calling process's PATH (falling
// through to the fallback layer), allocating a fresh inode for each
// successful resolution. parent must be the root; envfs has no nested
// directories.
func (fs *FileSystem) Lookup(cancel <-chan struct{}, header *fuse.InHeader, name string, out *fuse.EntryOut) fuse.Status {
	if header.NodeId != rootInode {
		return fuse.ENOTDIR
	}

	if name == "." || name == ".." {
		out.NodeId = rootInode
		out.Attr = rootAttr()
		return fuse.OK
	}

	pid := int(header.Caller.Pid)

	target, ok := fs.resolver.Resolve(name, pid)
	if !ok {
		return fuse.ENOENT
	}

	// By default a name that only resolves because of this lookup is
	// kept invisible to a bare existence check: execve (directly, or
	// the kernel resolving a shebang interpreter) and readlink always
	// get through, since those are what envfs exists to serve, but
	// stat/access-family callers are turned away unless the caller
	// opts in with ENVFS_RESOLVE_ALWAYS. Without this, `ls`/`test -e`
	// would make every name on PATH appear to exist.
	resolveAlways, _ := pathenv.Read(pid, "ENVFS_RESOLVE_ALWAYS")
	if !truthy(resolveAlways) && !resolveguard.AllowsImplicitLookup(pid) {
		fs.logger.Debug("hiding name from non-dereferencing caller", "pid", pid, "name", name)
		return fuse.ENOENT
	}

	inode := fs.registry.Allocate(target)
	out.NodeId = inode
	out.Generation = 0
	out.Attr = symlinkAttr(inode, target)
	return fuse.OK
}

// GetAttr answers from the root constant or the registry; it never
// resolves a name, since by this point a name has already become an
// inode via Lookup.
func (fs *FileSystem) GetAttr(cancel <-chan struct{}, input *fuse.GetAttrIn, out *fuse.AttrOut) fuse.Status {
	if input.NodeId == rootInode {
		out.Attr = rootAttr()
		return fuse.OK
	}

	target, ok := fs.registry.GetTarget(input.NodeId)
	if !ok {
		return fuse.ENOENT
	}
	out.Attr = symlinkAttr(input.NodeId, target)
	return fuse.OK
}

// Readlink returns the target frozen at Lookup time. It deliberately
// never re-resolves, even if the caller's PATH has changed since —
// that would let the lookup, readlink, and execve of a single syscall
// disagree with each other.
func (fs *FileSystem) Readlink(cancel <-chan struct{}, header *fuse.InHeader) ([]byte, fuse.Status) {
	if header.NodeId == rootInode {
		return nil, fuse.EINVAL
	}

	target, ok := fs.registry.GetTarget(header.NodeId)
	if !ok {
		return nil, fuse.ENOENT
	}
	return []byte(target), fuse.OK
}

// Forget reduces the registry's refcount for nodeid, evicting it once
// it hits zero. The kernel never expects a reply.
func (fs *FileSystem) Forget(nodeid, nlookup uint64) {
	if nodeid == rootInode {
		return
	}
	fs.registry.Forget(nodeid, nlookup)
}

// Access grants read+execute but denies write on the root, and defers
// entirely to the kernel's own dereference of symlink targets for
// anything else — the real permission check happens there.
func (fs *FileSystem) Access(cancel <-chan struct{}, input *fuse.AccessIn) fuse.Status {
	if input.NodeId == rootInode {
		if input.Mask&accessWrite != 0 {
			return fuse.EACCES
		}
		return fuse.OK
	}

	if _, ok := fs.registry.GetTarget(input.NodeId); !ok {
		return fuse.ENOENT
	}
	return fuse.OK
}

// OpenDir and ReleaseDir are no-ops: envfs never needs a directory
// handle to answer ReadDir.
func (fs *FileSystem) OpenDir(cancel <-chan struct{}, input *fuse.OpenIn, out *fuse.OpenOut) fuse.Status {
	if input.NodeId != rootInode {
		return fuse.ENOTDIR
	}
	return fuse.OK
}

func (fs *FileSystem) ReleaseDir(input *fuse.ReleaseIn) {}

// ReadDir and ReadDirPlus both answer with exactly "." and ".." and
// nothing else: envfs never enumerates discovered binaries.
func (fs *FileSystem) ReadDir(cancel <-chan struct{}, input *fuse.ReadIn, out *fuse.DirEntryList) fuse.Status {
	if input.NodeId != rootInode {
		return fuse.ENOTDIR
	}
	return fs.listRootEntries(input.Offset, func(entry fuse.DirEntry) bool {
		return out.AddDirEntry(entry)
	})
}

func (fs *FileSystem) ReadDirPlus(cancel <-chan struct{}, input *fuse.ReadIn, out *fuse.DirEntryList) fuse.Status {
	if input.NodeId != rootInode {
		return fuse.ENOTDIR
	}
	attr := rootAttr()
	return fs.listRootEntries(input.Offset, func(entry fuse.DirEntry) bool {
		entryOut := out.AddDirLookupEntry(entry)
		if entryOut == nil {
			return false
		}
		entryOut.NodeId = entry.Ino
		entryOut.Attr = attr
		return true
	})
}

// listRootEntries feeds "." at offset 0 and ".." at offset 1 to add,
// honoring whatever offset the kernel resumes from, and stops as soon
// as add reports the reply buffer is full.
func (fs *FileSystem) listRootEntries(offset uint64, add func(fuse.DirEntry) bool) fuse.Status {
	for off := offset; off < 2; off++ {
		name := "."
		if off == 1 {
			name = ".."
		}
		entry := fuse.DirEntry{
			Mode: syscall.S_IFDIR,
			Name: name,
			Ino:  rootInode,
			Off:  off + 1,
		}
		if !add(entry) {
			return fuse.OK
		}
	}
	return fuse.OK
}

// truthy matches the ENVFS_RESOLVE_ALWAYS contract: any non-empty,
// non-"0" value turns the flag on.
func truthy(value string) bool {
	return value != "" && value != "0"
}

// Copyright 2026 The Envfs Authors
// SPDX-License-Identifier: Apache-2.0

package envfs

import (
	"syscall"

	"github.com/hanwen/go-fuse/v2/fuse"
)

// rootInode is the fixed inode number of the singleton root directory.
// It is never stored in the registry.
const rootInode = 1

// rootAttr returns the fixed attributes of the root directory: a
// read+execute, no-write directory owned by root, with exactly two
// links and zero size, per the root directory node data model.
func rootAttr() fuse.Attr {
	return fuse.Attr{
		Ino:   rootInode,
		Mode:  syscall.S_IFDIR | 0o555,
		Nlink: 2,
		Size:  0,
	}
}

// symlinkAttr returns the attributes of a resolved symlink node for the
// given inode and target. The mode bitwise-ORs the sticky bit onto
// owner read+execute (0o500) permissions, which `ls -l` renders as
// "lr-x-----T".
func symlinkAttr(inode uint64, target string) fuse.Attr {
	return fuse.Attr{
		Ino:   inode,
		Mode:  syscall.S_IFLNK | 0o500 | syscall.S_ISVTX,
		Nlink: 1,
		Size:  uint64(len(target)),
	}
}

// Copyright 2026 The Envfs Authors
// SPDX-License-Identifier: Apache-2.0

package envfs

import (
	"syscall"
	"testing"
)

func TestRootAttrIsReadExecuteOnly(t *testing.T) {
	attr := rootAttr()

	if attr.Mode&syscall.S_IFDIR == 0 {
		t.Errorf("root attr should be a directory")
	}
	if attr.Mode&0o222 != 0 {
		t.Errorf("root attr should carry no write bits, got mode %o", attr.Mode)
	}
	if attr.Mode&0o555 != 0o555 {
		t.Errorf("root attr should carry read+execute for all classes, got mode %o", attr.Mode)
	}
	if attr.Nlink != 2 {
		t.Errorf("root Nlink = %d, want 2", attr.Nlink)
	}
	if attr.Size != 0 {
		t.Errorf("root Size = %d, want 0", attr.Size)
	}
}

func TestSymlinkAttrRendersOwnerExecuteSticky(t *testing.T) {
	attr := symlinkAttr(42, "/usr/bin/cp")

	if attr.Mode&syscall.S_IFLNK == 0 {
		t.Errorf("symlink attr should be a symlink, got mode %o", attr.Mode)
	}
	if attr.Mode&syscall.S_ISVTX == 0 {
		t.Errorf("symlink attr should carry the sticky bit, got mode %o", attr.Mode)
	}
	if attr.Mode&0o777 != 0o500 {
		t.Errorf("symlink attr permission bits = %o, want 0500", attr.Mode&0o777)
	}
	if attr.Ino != 42 {
		t.Errorf("Ino = %d, want 42", attr.Ino)
	}
	if attr.Size != uint64(len("/usr/bin/cp")) {
		t.Errorf("Size = %d, want %d", attr.Size, len("/usr/bin/cp"))
	}
	if attr.Nlink != 1 {
		t.Errorf("Nlink = %d, want 1", attr.Nlink)
	}
}

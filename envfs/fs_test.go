// Copyright 2026 The Envfs Authors
// SPDX-License-Identifier: Apache-2.0

package envfs

import (
	"testing"

	"github.com/hanwen/go-fuse/v2/fuse"
)

func TestTruthy(t *testing.T) {
	cases := map[string]bool{
		"":    false,
		"0":   false,
		"1":   true,
		"yes": true,
		" ":   true,
	}
	for value, want := range cases {
		if got := truthy(value); got != want {
			t.Errorf("truthy(%q) = %v, want %v", value, got, want)
		}
	}
}

func TestListRootEntriesFromStart(t *testing.T) {
	var seen []string
	status := (&FileSystem{}).listRootEntries(0, func(entry fuse.DirEntry) bool {
		seen = append(seen, entry.Name)
		return true
	})
	if status != fuse.OK {
		t.Fatalf("status = %v, want OK", status)
	}
	if len(seen) != 2 || seen[0] != "." || seen[1] != ".." {
		t.Errorf("entries = %v, want [. ..]", seen)
	}
}

func TestListRootEntriesResumesAtOffset(t *testing.T) {
	var seen []string
	(&FileSystem{}).listRootEntries(1, func(entry fuse.DirEntry) bool {
		seen = append(seen, entry.Name)
		return true
	})
	if len(seen) != 1 || seen[0] != ".." {
		t.Errorf("entries = %v, want [..]", seen)
	}
}

func TestListRootEntriesStopsWhenBufferFull(t *testing.T) {
	var seen []string
	(&FileSystem{}).listRootEntries(0, func(entry fuse.DirEntry) bool {
		seen = append(seen, entry.Name)
		return false // buffer full after the first entry
	})
	if len(seen) != 1 {
		t.Errorf("entries = %v, want exactly one entry before stopping", seen)
	}
}

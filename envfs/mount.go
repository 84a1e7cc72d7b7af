// Copyright 2026 The Envfs Authors
// SPDX-License-Identifier: Apache-2.0

package envfs

import (
	"fmt"

	"github.com/hanwen/go-fuse/v2/fuse"
)

// MountOptions configures the FUSE session itself, as distinct from
// the envfs-specific resolution behavior configured via resolver and
// registry construction.
type MountOptions struct {
	AllowOther         bool
	DefaultPermissions bool
	Debug              bool
}

// Mount starts a FUSE session serving fs at mountpoint and returns the
// running server. Callers should call server.Serve() (blocking) or
// go server.Serve(); server.WaitMount() (non-blocking), then
// server.Unmount() on shutdown.
func Mount(mountpoint string, fs *FileSystem, opts MountOptions) (*fuse.Server, error) {
	mountOpts := &fuse.MountOptions{
		AllowOther: opts.AllowOther,
		Debug:      opts.Debug,
		FsName:     "envfs",
		Name:       "envfs",
	}
	if opts.DefaultPermissions {
		mountOpts.Options = append(mountOpts.Options, "default_permissions")
	}

	server, err := fuse.NewServer(fs, mountpoint, mountOpts)
	if err != nil {
		return nil, fmt.Errorf("mounting envfs at %q: %w", mountpoint, err)
	}
	return server, nil
}

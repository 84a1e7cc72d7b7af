// Copyright 2026 The Envfs Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// bindMount recursively bind-mounts source onto target, implementing
// the bind-mount= mount option's side effect. Unlike the original
// envfs implementation (which serves additional FUSE sessions directly
// on each bind-mount target), this rebinds the kernel's view of the
// already-mounted envfs directory, matching a plain `mount --bind`.
func bindMount(source, target string) error {
	if err := unix.Mount(source, target, "", unix.MS_BIND|unix.MS_REC, ""); err != nil {
		return fmt.Errorf("bind-mounting %q onto %q: %w", source, target, err)
	}
	return nil
}

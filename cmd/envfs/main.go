// Copyright 2026 The Envfs Authors
// SPDX-License-Identifier: Apache-2.0

// Command envfs mounts a FUSE filesystem that resolves any basename to
// whichever executable the looking-up process's PATH would find. See
// the envfs package for the request-handling core.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/Mic92/envfs/envfs"
	"github.com/Mic92/envfs/lib/envfslog"
	"github.com/Mic92/envfs/lib/fallback"
	"github.com/Mic92/envfs/lib/mountopts"
	"github.com/Mic92/envfs/lib/process"
	"github.com/Mic92/envfs/lib/registry"
	"github.com/Mic92/envfs/lib/resolver"
	"github.com/Mic92/envfs/lib/version"
)

func main() {
	progName := filepath.Base(os.Args[0])

	parsed, err := parseArgs(progName, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n\n%s", progName, err, usage(progName))
		os.Exit(1)
	}

	if parsed.showHelp {
		fmt.Print(usage(progName))
		return
	}
	if parsed.showVersion {
		fmt.Println(version.Info())
		return
	}

	if err := run(progName, parsed); err != nil {
		process.Fatal(err)
	}
}

func run(progName string, parsed args) error {
	logger := envfslog.New(false)

	opts, err := mountopts.Parse(logger, parsed.optionsString)
	if err != nil {
		return fmt.Errorf("parsing mount options: %w", err)
	}
	if opts.Debug {
		logger = envfslog.New(true)
	}

	if parsed.foreground {
		logger.Debug("foreground requested explicitly (envfs always runs in the foreground)")
	}

	var fallbackTable *fallback.Table
	if opts.FallbackPath != "" {
		fallbackTable, err = fallback.Load(logger, opts.FallbackPath)
		if err != nil {
			return fmt.Errorf("loading fallback layer: %w", err)
		}
		logger.Info("fallback layer loaded", "path", opts.FallbackPath, "entries", fallbackTable.Len())
	}

	reg := registry.New(logger)
	res := resolver.New(fallbackTable)
	fs := envfs.New(logger, res, reg)

	server, err := envfs.Mount(parsed.mountpoint, fs, envfs.MountOptions{
		AllowOther:         opts.AllowOther,
		DefaultPermissions: opts.DefaultPermissions,
		Debug:              opts.Debug,
	})
	if err != nil {
		return err
	}

	go server.Serve()
	if err := server.WaitMount(); err != nil {
		return fmt.Errorf("waiting for mount to complete: %w", err)
	}
	logger.Info("mounted", "mountpoint", parsed.mountpoint, "program", progName)

	for _, target := range opts.BindMounts {
		if err := bindMount(parsed.mountpoint, target); err != nil {
			_ = server.Unmount()
			return err
		}
		logger.Info("bind-mounted", "source", parsed.mountpoint, "target", target)
	}

	waitForUnmountSignal(logger)

	logger.Info("unmounting", "mountpoint", parsed.mountpoint)
	if err := server.Unmount(); err != nil {
		return fmt.Errorf("unmounting %q: %w", parsed.mountpoint, err)
	}

	return nil
}

// waitForUnmountSignal blocks until SIGINT or SIGTERM arrives. This is
// the idiomatic Go equivalent of the original implementation's
// signal-handler-plus-condition-variable wait.
func waitForUnmountSignal(logger *slog.Logger) {
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	notifyCtx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	<-notifyCtx.Done()
	logger.Debug("received shutdown signal")
}

// Copyright 2026 The Envfs Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strings"
)

// args is the result of parsing argv, independent of which of the
// invocation forms (direct, mount.envfs, mount.fuse.envfs) produced it.
type args struct {
	mountpoint    string
	optionsString string
	foreground    bool
	showHelp      bool
	showVersion   bool
}

// mountHelperNames lists the argv[0] basenames that use the mount(8)
// helper calling convention: <device> <mountpoint>, device ignored.
var mountHelperNames = map[string]bool{
	"mount.envfs":      true,
	"mount.fuse.envfs": true,
}

// parseArgs parses argv (not including argv[0]) according to progName's
// calling convention. The loop structure mirrors a conventional
// hand-rolled mount-helper argument parser: a manual index walk
// recognizing -h/--help, -f/--foreground, -o <options>, "--", and
// otherwise collecting positional arguments.
func parseArgs(progName string, argv []string) (args, error) {
	var parsed args
	var positional []string

	for i := 0; i < len(argv); i++ {
		switch argv[i] {
		case "-h", "--help":
			parsed.showHelp = true
			return parsed, nil
		case "-V", "--version":
			parsed.showVersion = true
			return parsed, nil
		case "-f", "--foreground":
			parsed.foreground = true
		case "-o":
			i++
			if i >= len(argv) {
				return args{}, fmt.Errorf("'-o' requires an argument")
			}
			parsed.optionsString = argv[i]
		case "--":
			positional = append(positional, argv[i+1:]...)
			i = len(argv)
		default:
			if strings.HasPrefix(argv[i], "-") {
				return args{}, fmt.Errorf("unrecognized argument %q", argv[i])
			}
			positional = append(positional, argv[i])
		}
	}

	minPositional := 1
	if mountHelperNames[progName] {
		minPositional = 2 // <device> <mountpoint>
	}
	if len(positional) < minPositional {
		return args{}, fmt.Errorf("missing mountpoint argument")
	}

	// Under the mount(8) helper convention the device argument (e.g.
	// "none" or "envfs") precedes the mountpoint and is ignored; under
	// direct invocation there is only ever the mountpoint itself.
	parsed.mountpoint = positional[len(positional)-1]

	return parsed, nil
}

func usage(progName string) string {
	return fmt.Sprintf(`usage: %s [-f] [-o options] mountpoint

  -h, --help             show this help
  -f, --foreground       do not daemonize (default: always foreground)
  -V, --version          print version information
  -o fallback-path=PATH  fallback target directory if PATH is unusable
  -o bind-mount=PATH     recursively bind-mount the mountpoint onto PATH
  -o allow_other         allow access by users other than the mount owner
  -o default_permissions let the kernel additionally enforce permissions
  -o debug               verbose FUSE protocol logging
`, progName)
}

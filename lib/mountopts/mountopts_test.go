// Copyright 2026 The Envfs Authors
// SPDX-License-Identifier: Apache-2.0

package mountopts

import (
	"io"
	"log/slog"
	"reflect"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParseEmpty(t *testing.T) {
	opts, err := Parse(testLogger(), "")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !reflect.DeepEqual(opts, Options{}) {
		t.Errorf("Parse(\"\") = %+v, want zero value", opts)
	}
}

func TestParseFallbackPathAndBindMounts(t *testing.T) {
	opts, err := Parse(testLogger(), "fallback-path=/var/lib/envfs-fallback,bind-mount=/bin,bind-mount=/usr/bin")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if opts.FallbackPath != "/var/lib/envfs-fallback" {
		t.Errorf("FallbackPath = %q", opts.FallbackPath)
	}
	want := []string{"/bin", "/usr/bin"}
	if !reflect.DeepEqual(opts.BindMounts, want) {
		t.Errorf("BindMounts = %v, want %v", opts.BindMounts, want)
	}
}

func TestParseFlags(t *testing.T) {
	opts, err := Parse(testLogger(), "allow_other,default_permissions,debug,nofail,ro")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !opts.AllowOther || !opts.DefaultPermissions || !opts.Debug {
		t.Errorf("flags not all set: %+v", opts)
	}
}

func TestParseRemount(t *testing.T) {
	opts, err := Parse(testLogger(), "remount")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !opts.Remount {
		t.Errorf("Remount should be true")
	}
}

func TestParseUnknownOptionIsNotFatal(t *testing.T) {
	opts, err := Parse(testLogger(), "totally-made-up-option")
	if err != nil {
		t.Fatalf("Parse should not fail on unknown options: %v", err)
	}
	_ = opts
}

func TestParseMissingValueIsFatal(t *testing.T) {
	if _, err := Parse(testLogger(), "fallback-path="); err == nil {
		t.Errorf("Parse should reject an empty fallback-path value")
	}
	if _, err := Parse(testLogger(), "bind-mount"); err == nil {
		t.Errorf("Parse should reject bind-mount with no value")
	}
}

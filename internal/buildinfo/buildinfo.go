// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package buildinfo holds the build metadata printed by --version.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

const notAvailable = "N/A"

// Info carries immutable build-time metadata embedded into binaries.
//
// Values are injected by linker flags during release builds, e.g.
// -ldflags "-X main.buildVersion=v0.10.6".
type Info struct {
	version string
	date    string
	commit  string
}

// New constructs [Info] from the provided build metadata. An empty version
// falls back to the module version recorded by the Go toolchain; any value
// still missing is reported as "N/A".
func New(version, date, commit string) Info {
	if version == "" {
		if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			version = bi.Main.Version
		}
	}

	return Info{
		version: orNotAvailable(version),
		date:    orNotAvailable(date),
		commit:  orNotAvailable(commit),
	}
}

// String renders the version line, e.g. "rga v0.10.6 (commit 1a2b3c, built 2026-01-02)".
func (i Info) String(program string) string {
	return fmt.Sprintf("%s %s (commit %s, built %s)", program, i.version, i.commit, i.date)
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

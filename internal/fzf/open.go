// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fzf

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Opener shows a selected file to the user.
type Opener struct {
	Runner Runner
	// GOOS selects the platform's default opener.
	GOOS string
}

// NewOpener returns an Opener for the current platform.
func NewOpener(runner Runner) *Opener {
	return &Opener{Runner: runner, GOOS: runtime.GOOS}
}

// Open shows fname. PDF files are opened in evince with query pre-filled in
// its search when evince is installed; everything else, and PDFs without
// evince, go to the platform's default opener.
func (o *Opener) Open(query, fname string) error {
	if strings.HasSuffix(fname, ".pdf") {
		err := o.Runner.Start("evince", "--find", query, fname)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrExecutableNotFound) {
			return fmt.Errorf("evince launch failed for '%s': %w", fname, err)
		}
	}

	name, args := openCommand(o.GOOS, fname)
	if err := o.Runner.Start(name, args...); err != nil {
		return fmt.Errorf("opening '%s': %w", fname, err)
	}
	return nil
}

// openCommand returns the default opener of goos for fname.
func openCommand(goos, fname string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{fname}
	case "windows":
		return "cmd", []string{"/c", "start", "", fname}
	default:
		return "xdg-open", []string{fname}
	}
}

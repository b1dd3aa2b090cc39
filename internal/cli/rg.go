// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ErrRgNotFound is returned when the rg executable is not installed.
var ErrRgNotFound = errors.New("could not find rg. Please make sure you have ripgrep installed")

// ExecRg runs rg with inherited standard streams. A non-zero exit status of
// rg is returned as the code, not as an error.
func ExecRg(ctx context.Context, args, env []string) (int, error) {
	cmd := exec.CommandContext(ctx, "rg", args...)
	cmd.Env = append(os.Environ(), env...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if errors.Is(err, exec.ErrNotFound) {
		return 0, ErrRgNotFound
	}
	return 0, fmt.Errorf("could not run rg: %w", err)
}

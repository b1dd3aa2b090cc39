// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fzf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/MKhiriev/go-rga/internal/logger"
)

// installHints are appended to the error when a known program is missing.
var installHints = map[string]string{
	"fzf":    "Please make sure you have fzf installed.",
	"evince": "Please make sure you have evince installed.",
}

// ExecRunner is the [Runner] backed by os/exec.
type ExecRunner struct {
	logger *logger.Logger
}

// NewExecRunner returns an ExecRunner logging the commands it runs. A nil
// log discards the output.
func NewExecRunner(log *logger.Logger) *ExecRunner {
	if log == nil {
		log = logger.Nop()
	}
	return &ExecRunner{logger: log}
}

func (r *ExecRunner) Output(ctx context.Context, inv *Invocation) ([]byte, error) {
	r.logger.Debug().Str("name", inv.Name).Strs("args", inv.Args).Strs("env", inv.Env).Msg("running")

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, inv.Name, inv.Args...)
	cmd.Env = append(os.Environ(), inv.Env...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return nil, mapExecError(err, inv.Name)
	}
	if exitErr != nil {
		r.logger.Debug().Int("code", exitErr.ExitCode()).Msg("fzf exited with non-zero status")
	}

	return stdout.Bytes(), nil
}

func (r *ExecRunner) Start(name string, args ...string) error {
	r.logger.Debug().Str("name", name).Strs("args", args).Msg("starting")

	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return mapExecError(err, name)
	}
	return cmd.Process.Release()
}

func mapExecError(err error, name string) error {
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		if hint, ok := installHints[name]; ok {
			return fmt.Errorf("%w: could not find executable %q. %s", ErrExecutableNotFound, name, hint)
		}
		return fmt.Errorf("%w: could not find executable %q", ErrExecutableNotFound, name)
	}
	return fmt.Errorf("could not run executable %q: %w", name, err)
}

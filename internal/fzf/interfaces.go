// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/runner_mock.go -package=mock
package fzf

import "context"

// Runner starts external programs.
type Runner interface {
	// Output runs inv with inherited stdin and stderr and returns what it
	// wrote to stdout. A non-zero exit status is not an error.
	Output(ctx context.Context, inv *Invocation) ([]byte, error)
	// Start launches name detached from the current process.
	Start(name string, args ...string) error
}

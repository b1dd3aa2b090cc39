// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fzf

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Result is what the user ended up with in fzf.
type Result struct {
	Query string
	File  string
}

func (r Result) String() string {
	return fmt.Sprintf("query='%s', file='%s'", r.Query, r.File)
}

// ParseOutput reads the output of fzf --print-query: the final query on the
// first line and the selected entry on the second.
func ParseOutput(out []byte) (Result, error) {
	if !utf8.Valid(out) {
		return Result{}, fmt.Errorf("%w: not valid UTF-8", ErrUnexpectedOutput)
	}

	lines := strings.SplitN(string(out), "\n", 3)
	if len(lines) < 2 {
		return Result{}, fmt.Errorf("%w: expected two lines, got %q", ErrUnexpectedOutput, out)
	}

	return Result{Query: lines[0], File: lines[1]}, nil
}

// Search runs fzf as prepared by inv and returns the user's choice.
func Search(ctx context.Context, runner Runner, inv *Invocation) (Result, error) {
	out, err := runner.Output(ctx, inv)
	if err != nil {
		return Result{}, err
	}
	return ParseOutput(out)
}

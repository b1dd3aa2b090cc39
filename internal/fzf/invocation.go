// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fzf builds the fzf front end of rga and opens the files the user
// picks from it.
package fzf

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"mvdan.cc/sh/v3/shell"
	"mvdan.cc/sh/v3/syntax"
)

// Environment variables set for fzf.
const (
	DefaultCommandEnvVar = "FZF_DEFAULT_COMMAND"
	InstanceEnvVar       = "RGA_FZF_INSTANCE"
)

// Options are the user-facing parameters of rga-fzf.
type Options struct {
	// InitialQuery is the query fzf starts with.
	InitialQuery string
	// RgParams are extra rga parameters for the file list.
	RgParams string
	// RgPreviewParams are extra rga parameters for the preview pane.
	RgPreviewParams string
	// FzfParams are extra fzf parameters, split like a shell would. Quotes
	// and escapes are honoured; variables expand to nothing and the process
	// environment is never consulted.
	FzfParams string
}

// Invocation is a fully prepared command line.
type Invocation struct {
	Name string
	Args []string
	// Env holds KEY=VALUE entries added to the inherited environment.
	Env []string
}

// NewInvocation prepares the fzf command line for the rga-fzf executable at
// exePath. rga and rga-fzf-open are expected next to it. pid identifies the
// rga-fzf instance to the commands fzf runs.
func NewInvocation(exePath string, opts Options, pid int) (*Invocation, error) {
	dir, ext := filepath.Dir(exePath), filepath.Ext(exePath)

	rga, err := quote(filepath.Join(dir, "rga"+ext))
	if err != nil {
		return nil, err
	}
	open, err := quote(filepath.Join(dir, "rga-fzf-open"+ext))
	if err != nil {
		return nil, err
	}
	initialQuery, err := quote(opts.InitialQuery)
	if err != nil {
		return nil, err
	}

	rgPrefix := joinNonEmpty(rga, "--files-with-matches", "--rga-cache-max-blob-len=10M", opts.RgParams)
	rgPreview := joinNonEmpty(rga, "--pretty", "--context", "5", opts.RgPreviewParams, "{q}", "--rga-fzf-path=_{}")

	args := []string{
		"--preview=" + rgPreview,
		"--preview-window=70%:wrap",
		"--phony",
		"--query",
		opts.InitialQuery,
		"--print-query",
		"--bind=change:reload: " + rgPrefix + " {q}",
		"--bind=ctrl-m:execute:" + open + " {q} {}",
	}

	if opts.FzfParams != "" {
		extra, err := shell.Fields(opts.FzfParams, emptyEnv)
		if err != nil {
			return nil, fmt.Errorf("invalid fzf parameters %q: %w", opts.FzfParams, err)
		}
		args = append(args, extra...)
	}

	return &Invocation{
		Name: "fzf",
		Args: args,
		Env: []string{
			DefaultCommandEnvVar + "=" + rgPrefix + " " + initialQuery,
			InstanceEnvVar + "=" + strconv.Itoa(pid),
		},
	}, nil
}

func emptyEnv(string) string {
	return ""
}

func quote(s string) (string, error) {
	quoted, err := syntax.Quote(s, syntax.LangPOSIX)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrUnquotable, s, err)
	}
	return quoted, nil
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-rga/internal/adapters"
	"github.com/MKhiriev/go-rga/internal/buildinfo"
	"github.com/MKhiriev/go-rga/internal/config"
	"github.com/MKhiriev/go-rga/internal/logger"
)

// noFileFound is printed for the preview of an empty fzf selection.
const noFileFound = "[no file found]"

// ExecFunc runs rg with args, adding env to the inherited environment, and
// returns its exit code.
type ExecFunc func(ctx context.Context, args, env []string) (int, error)

// Rga is the main rga command: it resolves the configuration, answers the
// requests rga handles itself and runs rg for everything else.
type Rga struct {
	Resolver *config.Resolver
	Build    buildinfo.Info
	Exec     ExecFunc
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *logger.Logger
	// PreprocPath is the per-file preprocessor handed to rg with --pre.
	// Empty when no preprocessor is installed.
	PreprocPath string
}

// Run executes rga for the raw process arguments and returns the exit code.
func (r *Rga) Run(ctx context.Context, args []string) int {
	if err := r.run(ctx, args); err != nil {
		var exitErr exitCodeError
		if errors.As(err, &exitErr) {
			return int(exitErr)
		}
		PrintError(r.Stderr, err)
		return ExitFailure
	}
	return ExitSuccess
}

// exitCodeError carries a non-zero exit code of rg.
type exitCodeError int

func (e exitCodeError) Error() string {
	return fmt.Sprintf("rg exited with code %d", int(e))
}

func (r *Rga) run(ctx context.Context, args []string) error {
	program := "rga"
	if len(args) > 0 {
		program = filepath.Base(args[0])
	}

	cfg, passthrough, err := r.Resolver.SplitArgs(args, false)
	if err != nil {
		return err
	}

	switch {
	case cfg.Help:
		_, err := io.WriteString(r.Stdout, config.Usage(program))
		return err
	case cfg.Version:
		_, err := fmt.Fprintln(r.Stdout, r.Build.String(program))
		return err
	case cfg.PrintConfigSchema:
		schema, err := config.Schema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(r.Stdout, string(schema))
		return err
	}

	all, err := adapters.All(cfg)
	if err != nil {
		return err
	}
	if cfg.ListAdapters {
		return adapters.List(r.Stdout, all)
	}

	selected, err := adapters.Select(all, cfg.Adapters)
	if err != nil {
		return err
	}

	if cfg.FzfPath != "" {
		path := strings.TrimPrefix(cfg.FzfPath, "_")
		if path == "" {
			_, err := fmt.Fprintln(r.Stdout, noFileFound)
			return err
		}
		passthrough = append(passthrough, path)
	}

	if len(passthrough) == 0 {
		_, err := io.WriteString(r.Stdout, config.Usage(program))
		return err
	}

	envValue, err := cfg.EnvValue()
	if err != nil {
		return err
	}

	rgArgs := r.rgArgs(cfg, selected, passthrough)
	r.Logger.Debug().Strs("args", rgArgs).Msg("running rg")

	code, err := r.Exec(ctx, rgArgs, []string{config.EnvConfigVar + "=" + envValue})
	if err != nil {
		return err
	}
	if code != 0 {
		return exitCodeError(code)
	}
	return nil
}

// rgArgs returns the full rg command line. Matching inside unusual file
// formats makes casing unreliable, so smart case is on by default.
func (r *Rga) rgArgs(cfg *config.ResolvedConfig, selected []adapters.Adapter, passthrough []string) []string {
	args := []string{"--no-line-number", "--smart-case"}
	if r.PreprocPath != "" {
		if glob, ok := preGlob(selected, cfg.Accurate); ok {
			args = append(args, "--pre", r.PreprocPath, "--pre-glob", glob)
		}
	}
	return append(args, passthrough...)
}

// preGlob selects the files rg hands to the preprocessor: those with an
// extension of a selected adapter, or every file in accurate mode where the
// preprocessor sniffs mime types itself. ok is false when no file can match.
func preGlob(selected []adapters.Adapter, accurate bool) (glob string, ok bool) {
	if accurate {
		return "*", true
	}

	var extensions []string
	for _, a := range selected {
		for _, ext := range a.Extensions {
			extensions = append(extensions, ext, strings.ToUpper(ext))
		}
	}
	if len(extensions) == 0 {
		return "", false
	}
	return "*.{" + strings.Join(extensions, ",") + "}", true
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/MKhiriev/go-rga/internal/buildinfo"
	"github.com/MKhiriev/go-rga/internal/cli"
	"github.com/MKhiriev/go-rga/internal/config"
	"github.com/MKhiriev/go-rga/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("rga")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rga := &cli.Rga{
		Resolver:    config.NewResolver(config.WithLogger(log.GetChildLogger("config"))),
		Build:       buildinfo.New(buildVersion, buildDate, buildCommit),
		Exec:        cli.ExecRg,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Logger:      log,
		PreprocPath: preprocPath(log),
	}

	code := rga.Run(ctx, os.Args)
	stop()
	os.Exit(code)
}

// preprocPath returns the rga-preproc executable next to this one, or an
// empty string when it is not installed.
func preprocPath(log *logger.Logger) string {
	exe, err := os.Executable()
	if err != nil {
		log.Debug().Err(err).Msg("could not get executable location")
		return ""
	}

	path := filepath.Join(filepath.Dir(exe), "rga-preproc"+filepath.Ext(exe))
	if _, err := os.Stat(path); err != nil {
		log.Debug().Str("path", path).Msg("no preprocessor installed")
		return ""
	}
	return path
}

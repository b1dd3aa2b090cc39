// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"os"

	"github.com/MKhiriev/go-rga/internal/cli"
	"github.com/MKhiriev/go-rga/internal/fzf"
	"github.com/MKhiriev/go-rga/internal/logger"
)

func main() {
	log := logger.NewLogger("rga-fzf")

	exe, err := os.Executable()
	if err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(cli.ExitFailure)
	}

	cmd := cli.NewFzfCommand(fzf.NewExecRunner(log), exe, log)
	os.Exit(cli.Execute(cmd))
}

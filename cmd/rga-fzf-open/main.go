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
	log := logger.NewLogger("rga-fzf-open")

	cmd := cli.NewFzfOpenCommand(fzf.NewOpener(fzf.NewExecRunner(log)), log)
	os.Exit(cli.Execute(cmd))
}

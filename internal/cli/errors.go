// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Exit codes of the rga binaries.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

var errorColor = color.New(color.FgRed, color.Bold)

// PrintError writes err to w the way all rga binaries report fatal errors.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", errorColor.Sprint("Error:"), err)
}

// Execute runs cmd and returns the process exit code, reporting a failure
// on the command's error output.
func Execute(cmd *cobra.Command) int {
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	if err := cmd.Execute(); err != nil {
		PrintError(cmd.ErrOrStderr(), err)
		return ExitFailure
	}
	return ExitSuccess
}

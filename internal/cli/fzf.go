// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-rga/internal/fzf"
	"github.com/MKhiriev/go-rga/internal/logger"
)

// NewFzfCommand returns the rga-fzf command. exePath is the location of the
// rga-fzf executable; rga and rga-fzf-open are looked up next to it.
func NewFzfCommand(runner fzf.Runner, exePath string, log *logger.Logger) *cobra.Command {
	var opts fzf.Options

	cmd := &cobra.Command{
		Use:   "rga-fzf [INITIAL_QUERY]",
		Short: "FZF frontend for rga",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.InitialQuery = args[0]
			}

			inv, err := fzf.NewInvocation(exePath, opts, os.Getpid())
			if err != nil {
				return err
			}
			log.Debug().Strs("args", inv.Args).Msg("fzf invocation")

			result, err := fzf.Search(cmd.Context(), runner, inv)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.RgParams, "rg-params", "", "Extra parameters to pass to ripgrep (list view)")
	flags.StringVar(&opts.RgPreviewParams, "rg-preview-params", "", "Extra parameters to pass to ripgrep preview (content view)")
	flags.StringVar(&opts.FzfParams, "fzf-params", "", "Extra parameters to pass to fzf")

	return cmd
}

// NewFzfOpenCommand returns the rga-fzf-open command run by fzf for the
// selected entry.
func NewFzfOpenCommand(opener *fzf.Opener, log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "rga-fzf-open QUERY FILE",
		Short: "Open selected file from rga-fzf",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, fname := args[0], args[1]
			log.Debug().Str("query", query).Str("file", fname).Msg("opening")
			return opener.Open(query, fname)
		},
	}
}

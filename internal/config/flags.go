// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

// Long flag names. Every rga flag carries the "rga-" prefix; the "rg-"
// flags are requests addressed to the wrapped rg binary.
const (
	flagAccurate                 = "rga-accurate"
	flagAdapters                 = "rga-adapters"
	flagNoCache                  = "rga-no-cache"
	flagCacheMaxBlobLen          = "rga-cache-max-blob-len"
	flagCacheCompressionLevel    = "rga-cache-compression-level"
	flagCachePath                = "rga-cache-path"
	flagMaxArchiveRecursion      = "rga-max-archive-recursion"
	flagNoPrefixFilenames        = "rga-no-prefix-filenames"
	flagConfigFile               = "rga-config-file"
	flagFzfPath                  = "rga-fzf-path"
	flagListAdapters             = "rga-list-adapters"
	flagPrintConfigSchema        = "rga-print-config-schema"
	flagZipExtensions            = "rga-zip-extensions"
	flagFfmpegExtensions         = "rga-ffmpeg-extensions"
	flagPostprocBinaryMarker     = "rga-postproc-binary-marker"
	flagPostprocPagePrefix       = "rga-postproc-page-prefix"
	flagPostprocPageIncludeEmpty = "rga-postproc-page-include-empty"
	flagRgHelp                   = "rg-help"
	flagRgVersion                = "rg-version"
	flagHelp                     = "help"
	flagVersion                  = "version"
)

// cliFlags binds a pflag.FlagSet to a draft [ResolvedConfig]. Optional
// values without a natural "unset" state are parsed into scratch fields and
// copied into the draft only when the flag was given.
type cliFlags struct {
	fs  *pflag.FlagSet
	cfg *ResolvedConfig

	binaryMarker string
	pagePrefix   string
	includeEmpty bool
}

// newCLIFlags declares every rga option on a fresh FlagSet. The draft starts
// from [Default], so flags that are not given keep their defaults.
func newCLIFlags(program string) *cliFlags {
	cfg := Default()
	c := &cliFlags{
		fs:  pflag.NewFlagSet(program, pflag.ContinueOnError),
		cfg: &cfg,
	}

	fs := c.fs
	fs.SortFlags = false
	fs.SetOutput(io.Discard)

	fs.BoolVar(&cfg.Accurate, flagAccurate, false,
		"Use more accurate but slower matching by mime type")
	fs.StringSliceVar(&cfg.Adapters, flagAdapters, nil,
		"Change which adapters to use and in which priority order (descending); prefix the list with - to exclude or + to add to the defaults")
	fs.BoolVar(&cfg.Cache.Disabled, flagNoCache, false,
		"Disable caching of results")
	fs.Var(&cfg.Cache.MaxBlobLen, flagCacheMaxBlobLen,
		"Max compressed size to cache (allowed suffixes: k M G)")
	fs.Var(&cfg.Cache.CompressionLevel, flagCacheCompressionLevel,
		"ZSTD compression level to apply to adapter outputs before storing in cache DB (1-22)")
	fs.Var(&cfg.Cache.Path, flagCachePath,
		"Path to store cache DB")
	fs.Var(&cfg.MaxArchiveRecursion, flagMaxArchiveRecursion,
		"Maximum depth of nested archives to recurse into")
	fs.BoolVar(&cfg.NoPrefixFilenames, flagNoPrefixFilenames, false,
		"Don't prefix lines of files within archive with the path inside the archive")
	fs.StringSliceVar((*[]string)(&cfg.ZipExtensions), flagZipExtensions, nil,
		"Override file extensions for the built-in zip adapter")
	fs.StringSliceVar((*[]string)(&cfg.FfmpegExtensions), flagFfmpegExtensions, nil,
		"Override file extensions for the built-in ffmpeg adapter")
	fs.StringVar(&c.binaryMarker, flagPostprocBinaryMarker, "",
		"Marker printed in place of binary data")
	fs.StringVar(&c.pagePrefix, flagPostprocPagePrefix, "",
		"Prefix printed in front of every line of a page")
	fs.BoolVar(&c.includeEmpty, flagPostprocPageIncludeEmpty, false,
		"Emit a prefix line for empty pages")
	fs.StringVar(&cfg.ConfigFilePath, flagConfigFile, "",
		"Config file to use instead of the default one")
	fs.StringVar(&cfg.FzfPath, flagFzfPath, "",
		"Same as passing path directly, except if argument is empty")
	fs.BoolVar(&cfg.ListAdapters, flagListAdapters, false,
		"List all known adapters")
	fs.BoolVar(&cfg.PrintConfigSchema, flagPrintConfigSchema, false,
		"Print the JSON Schema of the configuration file")
	fs.BoolVar(&cfg.RgHelp, flagRgHelp, false,
		"Show help for ripgrep itself")
	fs.BoolVar(&cfg.RgVersion, flagRgVersion, false,
		"Show version of ripgrep itself")
	fs.BoolVarP(&cfg.Help, flagHelp, "h", false,
		"Print help")
	fs.BoolVarP(&cfg.Version, flagVersion, "V", false,
		"Print version")

	_ = fs.MarkHidden(flagFzfPath)

	return c
}

// parse reads args (without the program name) into the draft.
func (c *cliFlags) parse(args []string) (*ResolvedConfig, error) {
	if err := c.fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}
	if c.fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrInvalidArgs, c.fs.Arg(0))
	}

	if c.fs.Changed(flagPostprocBinaryMarker) {
		c.cfg.PostprocBinaryMarker = &c.binaryMarker
	}
	if c.fs.Changed(flagPostprocPagePrefix) {
		c.cfg.PostprocPagePrefix = &c.pagePrefix
	}
	if c.fs.Changed(flagPostprocPageIncludeEmpty) {
		c.cfg.PostprocPageIncludeEmpty = &c.includeEmpty
	}

	return c.cfg, nil
}

// ParseFlags parses the tool-owned arguments into a draft configuration:
// command-line values over compiled-in defaults, without consulting the
// config file or the environment. args[0] is the program name.
func ParseFlags(args []string) (*ResolvedConfig, error) {
	program := "rga"
	if len(args) > 0 {
		program = args[0]
		args = args[1:]
	}
	return newCLIFlags(program).parse(args)
}

// Usage returns the rga usage text listing every visible option.
func Usage(program string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "rga: ripgrep, but also search in PDFs, E-Books, Office documents, zip, tar.gz, etc.\n\n")
	fmt.Fprintf(&b, "Usage: %s [RGA OPTIONS] [RG OPTIONS] PATTERN [PATH ...]\n\n", program)
	fmt.Fprintf(&b, "Options:\n%s\n", newCLIFlags(program).fs.FlagUsages())
	fmt.Fprintf(&b, "All other options not shown here are passed directly to rg, especially [PATTERN] and [PATH ...]\n")
	return b.String()
}

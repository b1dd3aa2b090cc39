// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		assert func(t *testing.T, cfg *ResolvedConfig)
	}{
		{
			name: "no flags yields defaults",
			args: []string{"rga"},
			assert: func(t *testing.T, cfg *ResolvedConfig) {
				assert.Equal(t, Default(), *cfg)
			},
		},
		{
			name: "empty args yields defaults",
			args: nil,
			assert: func(t *testing.T, cfg *ResolvedConfig) {
				assert.Equal(t, Default(), *cfg)
			},
		},
		{
			name: "boolean and numeric options",
			args: []string{"rga", "--rga-accurate", "--rga-no-cache", "--rga-max-archive-recursion=3", "--rga-no-prefix-filenames"},
			assert: func(t *testing.T, cfg *ResolvedConfig) {
				assert.True(t, cfg.Accurate)
				assert.True(t, cfg.Cache.Disabled)
				assert.Equal(t, MaxArchiveRecursion(3), cfg.MaxArchiveRecursion)
				assert.True(t, cfg.NoPrefixFilenames)
			},
		},
		{
			name: "cache options",
			args: []string{"rga", "--rga-cache-max-blob-len=10M", "--rga-cache-compression-level", "3", "--rga-cache-path=/tmp/cache"},
			assert: func(t *testing.T, cfg *ResolvedConfig) {
				assert.Equal(t, CacheMaxBlobLen(10_000_000), cfg.Cache.MaxBlobLen)
				assert.Equal(t, CacheCompressionLevel(3), cfg.Cache.CompressionLevel)
				assert.Equal(t, CachePath("/tmp/cache"), cfg.Cache.Path)
			},
		},
		{
			name: "list options",
			args: []string{"rga", "--rga-adapters=-zip,ffmpeg", "--rga-zip-extensions=zip,jar", "--rga-ffmpeg-extensions", "mkv"},
			assert: func(t *testing.T, cfg *ResolvedConfig) {
				assert.Equal(t, []string{"-zip", "ffmpeg"}, cfg.Adapters)
				assert.Equal(t, Extensions{"zip", "jar"}, cfg.ZipExtensions)
				assert.Equal(t, Extensions{"mkv"}, cfg.FfmpegExtensions)
			},
		},
		{
			name: "empty extension list is kept apart from an absent one",
			args: []string{"rga", "--rga-zip-extensions="},
			assert: func(t *testing.T, cfg *ResolvedConfig) {
				require.NotNil(t, cfg.ZipExtensions)
				assert.Empty(t, cfg.ZipExtensions)
				assert.Nil(t, cfg.FfmpegExtensions)
			},
		},
		{
			name: "postprocessing options are unset unless given",
			args: []string{"rga"},
			assert: func(t *testing.T, cfg *ResolvedConfig) {
				assert.Nil(t, cfg.PostprocBinaryMarker)
				assert.Nil(t, cfg.PostprocPagePrefix)
				assert.Nil(t, cfg.PostprocPageIncludeEmpty)
			},
		},
		{
			name: "postprocessing options keep explicit empty values",
			args: []string{"rga", "--rga-postproc-binary-marker=", "--rga-postproc-page-prefix=Page ", "--rga-postproc-page-include-empty=false"},
			assert: func(t *testing.T, cfg *ResolvedConfig) {
				require.NotNil(t, cfg.PostprocBinaryMarker)
				assert.Equal(t, "", *cfg.PostprocBinaryMarker)
				require.NotNil(t, cfg.PostprocPagePrefix)
				assert.Equal(t, "Page ", *cfg.PostprocPagePrefix)
				require.NotNil(t, cfg.PostprocPageIncludeEmpty)
				assert.False(t, *cfg.PostprocPageIncludeEmpty)
			},
		},
		{
			name: "cli-only options",
			args: []string{"rga", "--rga-config-file=/etc/rga.jsonc", "--rga-fzf-path=_a.pdf", "--rga-list-adapters", "--rga-print-config-schema", "--rg-help", "--rg-version"},
			assert: func(t *testing.T, cfg *ResolvedConfig) {
				assert.Equal(t, "/etc/rga.jsonc", cfg.ConfigFilePath)
				assert.Equal(t, "_a.pdf", cfg.FzfPath)
				assert.True(t, cfg.ListAdapters)
				assert.True(t, cfg.PrintConfigSchema)
				assert.True(t, cfg.RgHelp)
				assert.True(t, cfg.RgVersion)
			},
		},
		{
			name: "short help and version",
			args: []string{"rga", "-h", "-V"},
			assert: func(t *testing.T, cfg *ResolvedConfig) {
				assert.True(t, cfg.Help)
				assert.True(t, cfg.Version)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			require.NoError(t, err)
			tt.assert(t, cfg)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"rga", "--rga-unknown"}},
		{name: "malformed byte size", args: []string{"rga", "--rga-cache-max-blob-len=10X"}},
		{name: "empty byte size", args: []string{"rga", "--rga-cache-max-blob-len="}},
		{name: "malformed integer", args: []string{"rga", "--rga-max-archive-recursion=deep"}},
		{name: "missing value", args: []string{"rga", "--rga-cache-compression-level"}},
		{name: "boolean with bad value", args: []string{"rga", "--rga-accurate=maybe"}},
		{name: "positional argument", args: []string{"rga", "pattern"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			assert.ErrorIs(t, err, ErrInvalidArgs)
			assert.Nil(t, cfg)
		})
	}
}

func TestUsage(t *testing.T) {
	usage := Usage("rga")

	assert.Contains(t, usage, "Usage: rga [RGA OPTIONS] [RG OPTIONS] PATTERN [PATH ...]")
	assert.Contains(t, usage, "--rga-accurate")
	assert.Contains(t, usage, "--rga-cache-max-blob-len bytes")
	assert.Contains(t, usage, "--rg-help")
	assert.Contains(t, usage, "-V, --version")
	assert.NotContains(t, usage, "--rga-fzf-path")
}

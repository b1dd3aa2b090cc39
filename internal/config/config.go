// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// ResolvedConfig is the single authoritative rga configuration produced by
// merging the config file, the RGA_CONFIG environment variable and the
// command-line flags.
//
// Struct tags:
//   - json: key in the config file and in RGA_CONFIG. Fields holding their
//     default are omitted (omitempty/omitzero), so an untouched option never
//     overrides a lower-precedence layer. Fields tagged "-" are CLI-only.
//   - jsonschema, jsonschema_description: used by [Schema].
type ResolvedConfig struct {
	// Accurate enables slower matching by mime type (magic bytes) instead of
	// by file extension.
	// Flag: --rga-accurate
	Accurate bool `json:"accurate,omitempty" jsonschema_description:"Use more accurate but slower matching by mime type. By default rga matches files using file extensions. With this flag rga detects the mime type of input files from their first bytes and uses it to choose the adapter."`

	// Adapters changes which adapters are used and in which priority order.
	// "a,b" selects only a and b, "-a,b" removes a and b from the defaults,
	// "+a,b" adds a and b to the defaults.
	// Flag: --rga-adapters
	Adapters []string `json:"adapters,omitempty" jsonschema_description:"Change which adapters to use and in which priority order (descending). 'foo,bar' means use only adapters foo and bar. '-bar,baz' means use all default adapters except for bar and baz. '+bar,baz' means use all default adapters and also bar and baz."`

	// Cache holds the result cache settings.
	Cache CacheConfig `json:"cache,omitzero"`

	// MaxArchiveRecursion limits the depth of nested archives rga recurses into.
	// Flag: --rga-max-archive-recursion
	MaxArchiveRecursion MaxArchiveRecursion `json:"max_archive_recursion,omitzero" jsonschema:"minimum=0,default=5" jsonschema_description:"Maximum depth of nested archives to recurse into."`

	// NoPrefixFilenames disables prefixing lines of files inside archives with
	// their path inside the archive.
	// Flag: --rga-no-prefix-filenames
	NoPrefixFilenames bool `json:"no_prefix_filenames,omitempty" jsonschema_description:"Don't prefix lines of files within archive with the path inside the archive."`

	// CustomAdapters are user-defined adapters backed by external programs.
	// They have no command-line flag and are normally set in the config file.
	CustomAdapters []CustomAdapterConfig `json:"custom_adapters,omitempty" jsonschema_description:"User-defined adapters. Only settable in the config file."`

	// ZipExtensions replaces the file extensions of the built-in zip adapter.
	// An empty list turns extension matching for the adapter off.
	// Flag: --rga-zip-extensions
	ZipExtensions Extensions `json:"zip_extensions,omitzero" jsonschema_description:"Override file extensions for the built-in zip adapter."`

	// FfmpegExtensions replaces the file extensions of the built-in ffmpeg adapter.
	// Flag: --rga-ffmpeg-extensions
	FfmpegExtensions Extensions `json:"ffmpeg_extensions,omitzero" jsonschema_description:"Override file extensions for the built-in ffmpeg adapter."`

	// PostprocBinaryMarker replaces the marker printed for binary content.
	// Flag: --rga-postproc-binary-marker
	PostprocBinaryMarker *string `json:"postproc_binary_marker,omitempty" jsonschema_description:"Marker printed in place of binary data."`

	// PostprocPagePrefix replaces the prefix put in front of each page of
	// paged documents.
	// Flag: --rga-postproc-page-prefix
	PostprocPagePrefix *string `json:"postproc_page_prefix,omitempty" jsonschema_description:"Prefix printed in front of every line of a page."`

	// PostprocPageIncludeEmpty keeps empty pages in paged documents.
	// Flag: --rga-postproc-page-include-empty
	PostprocPageIncludeEmpty *bool `json:"postproc_page_include_empty,omitempty" jsonschema_description:"Emit a prefix line for empty pages."`

	// ConfigFilePath overrides the config file location.
	// Flag: --rga-config-file (CLI only)
	ConfigFilePath string `json:"-"`

	// FzfPath is a path given by the fzf integration, prefixed with "_" so an
	// empty selection is still a non-empty argument.
	// Flag: --rga-fzf-path (CLI only, hidden)
	FzfPath string `json:"-"`

	// ListAdapters requests the adapter listing.
	// Flag: --rga-list-adapters (CLI only)
	ListAdapters bool `json:"-"`

	// PrintConfigSchema requests the JSON schema of the config file.
	// Flag: --rga-print-config-schema (CLI only)
	PrintConfigSchema bool `json:"-"`

	// RgHelp forwards --help to rg.
	// Flag: --rg-help (CLI only)
	RgHelp bool `json:"-"`

	// RgVersion forwards --version to rg.
	// Flag: --rg-version (CLI only)
	RgVersion bool `json:"-"`

	// Help requests rga's own usage text.
	// Flag: -h, --help (CLI only)
	Help bool `json:"-"`

	// Version requests rga's own version.
	// Flag: -V, --version (CLI only)
	Version bool `json:"-"`
}

// CacheConfig holds the result cache settings.
type CacheConfig struct {
	// Disabled turns caching of extracted text off.
	// Flag: --rga-no-cache
	Disabled bool `json:"disabled,omitempty" jsonschema_description:"Disable caching of results. By default rga caches the extracted text of small enough outputs to a database in the cache path."`

	// MaxBlobLen is the longest adapter output (after compression) to store.
	// Flag: --rga-cache-max-blob-len (accepts k, M, G suffixes)
	MaxBlobLen CacheMaxBlobLen `json:"max_blob_len,omitzero" jsonschema:"minimum=0,default=2000000" jsonschema_description:"Max compressed size to cache. Longer adapter outputs will not be cached and recomputed every time. Allowed suffixes on the command line: k M G."`

	// CompressionLevel is the zstd level used for cached outputs.
	// Flag: --rga-cache-compression-level
	CompressionLevel CacheCompressionLevel `json:"compression_level,omitzero" jsonschema:"minimum=1,maximum=22,default=12" jsonschema_description:"ZSTD compression level to apply to adapter outputs before storing in the cache DB."`

	// Path is the directory of the cache database.
	// Flag: --rga-cache-path
	Path CachePath `json:"path,omitzero" jsonschema_description:"Path to store the cache DB."`
}

// IsZero reports whether c holds only default values, which lets
// encoding/json drop the whole "cache" object.
func (c CacheConfig) IsZero() bool {
	return c == DefaultCacheConfig()
}

// CustomAdapterConfig describes a user-defined adapter that runs an external
// program and reads the extracted text from its standard output.
type CustomAdapterConfig struct {
	// Name is the unique adapter name used in --rga-adapters.
	Name string `json:"name" jsonschema:"required" jsonschema_description:"The unique identifier and name of this adapter. Must only include a-z, 0-9 and _."`
	// Description is shown by --rga-list-adapters.
	Description string `json:"description" jsonschema:"required" jsonschema_description:"A description of this adapter shown in rga's help."`
	// DisabledByDefault keeps the adapter out of the default selection.
	DisabledByDefault *bool `json:"disabled_by_default,omitempty" jsonschema_description:"If true, the adapter will be disabled by default."`
	// Version invalidates cached outputs of older adapter versions.
	Version int32 `json:"version" jsonschema:"required" jsonschema_description:"Version identifier used to key cache entries. Change this if the configuration or program changes."`
	// Extensions are matched against file names.
	Extensions []string `json:"extensions" jsonschema:"required" jsonschema_description:"The file extensions this adapter supports, for example [\"epub\", \"mobi\"]."`
	// Mimetypes are matched in accurate mode.
	Mimetypes []string `json:"mimetypes,omitempty" jsonschema_description:"If not null and --rga-accurate is enabled, mime type matching is used instead of file name matching."`
	// MatchOnlyByMime disables extension matching in accurate mode.
	MatchOnlyByMime *bool `json:"match_only_by_mime,omitempty" jsonschema_description:"If --rga-accurate, only match by mime types and ignore extensions completely."`
	// Binary is the program to run.
	Binary string `json:"binary" jsonschema:"required" jsonschema_description:"The name or path of the binary to run."`
	// Args are passed to Binary; $input_virtual_path is replaced by the file path.
	Args []string `json:"args" jsonschema:"required" jsonschema_description:"The arguments to run the program with. Placeholder $input_virtual_path is replaced by the path of the file."`
	// OutputPathHint names the output of the adapter for nested adapters.
	OutputPathHint *string `json:"output_path_hint,omitempty" jsonschema_description:"The output path hint, used to choose the next adapter for the output. Placeholder ${input_virtual_path} is replaced by the path of the file."`
}

// Default returns a [ResolvedConfig] with all compiled-in defaults applied.
func Default() ResolvedConfig {
	return ResolvedConfig{
		Cache:               DefaultCacheConfig(),
		MaxArchiveRecursion: DefaultMaxArchiveRecursion,
	}
}

// DefaultCacheConfig returns the default cache settings: caching enabled,
// 2 MB max blob length, compression level 12, platform cache directory.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		MaxBlobLen:       DefaultCacheMaxBlobLen,
		CompressionLevel: DefaultCacheCompressionLevel,
		Path:             DefaultCachePath(),
	}
}

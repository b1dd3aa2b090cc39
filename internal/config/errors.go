// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Parse errors returned by the scalar option types. They are wrapped together
// with the offending raw text, so callers should match them with [errors.Is].
var (
	// ErrEmptyByteSize is returned when a byte size is given as an empty string.
	ErrEmptyByteSize = errors.New("empty byte input")
	// ErrInvalidByteSize is returned when a byte size is not an unsigned
	// integer with an optional k, M or G suffix.
	ErrInvalidByteSize = errors.New("invalid byte size")
	// ErrByteSizeOverflow is returned when a suffixed byte size does not fit
	// into 64 bits after applying the unit factor.
	ErrByteSizeOverflow = errors.New("byte size overflows")
	// ErrInvalidInteger is returned when an integer option cannot be parsed.
	ErrInvalidInteger = errors.New("invalid integer")
)

// Source errors returned while reading one of the configuration layers.
var (
	// ErrConfigFileNotFound is returned when an explicit --rga-config-file
	// override points to a file that does not exist.
	ErrConfigFileNotFound = errors.New("config file not found")
	// ErrInvalidConfigFile is returned when the config file is not a valid
	// JSON object after comments are stripped.
	ErrInvalidConfigFile = errors.New("invalid config file")
	// ErrInvalidEnvConfig is returned when RGA_CONFIG is set but does not
	// hold a JSON object.
	ErrInvalidEnvConfig = errors.New("invalid config in environment")
	// ErrInvalidArgs is returned when the tool-owned command-line arguments
	// cannot be parsed.
	ErrInvalidArgs = errors.New("invalid command line arguments")
	// ErrInvalidMergedConfig is returned when the merged document cannot be
	// decoded into a [ResolvedConfig].
	ErrInvalidMergedConfig = errors.New("invalid merged config")
)

// Validation errors returned by [ResolvedConfig.validate].
var (
	// ErrInvalidCompressionLevel indicates a cache compression level outside 1–22.
	ErrInvalidCompressionLevel = errors.New("invalid cache compression level")
	// ErrInvalidMaxArchiveRecursion indicates a negative archive recursion depth.
	ErrInvalidMaxArchiveRecursion = errors.New("invalid max archive recursion")
	// ErrEmptyAdapterName indicates an empty entry in the adapter selection.
	ErrEmptyAdapterName = errors.New("empty adapter name")
)

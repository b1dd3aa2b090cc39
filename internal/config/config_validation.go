// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the merged [ResolvedConfig] satisfies the value
// ranges that the option types themselves do not enforce.
func (cfg *ResolvedConfig) validate() error {
	level := cfg.Cache.CompressionLevel
	if level < MinCacheCompressionLevel || level > MaxCacheCompressionLevel {
		return fmt.Errorf("%w: %d (must be between %d and %d)",
			ErrInvalidCompressionLevel, level, MinCacheCompressionLevel, MaxCacheCompressionLevel)
	}

	if cfg.MaxArchiveRecursion < 0 {
		return fmt.Errorf("%w: %d (must not be negative)", ErrInvalidMaxArchiveRecursion, cfg.MaxArchiveRecursion)
	}

	for i, name := range cfg.Adapters {
		if name == "" {
			return fmt.Errorf("%w at position %d", ErrEmptyAdapterName, i)
		}
	}

	return nil
}

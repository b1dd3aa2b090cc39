// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"
)

const (
	appDirName     = "ripgrep-all"
	configFileName = "config.jsonc"
	schemaFileName = "config.v1.schema.json"
)

//go:embed config.default.jsonc
var defaultConfigTemplate []byte

// DefaultConfigDir returns the per-user rga config directory, e.g.
// ~/.config/ripgrep-all on Linux.
func DefaultConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(dir, appDirName), nil
}

// configFile reads the config-file layer from fs.
type configFile struct {
	fs  afero.Fs
	dir string
}

// read returns the path of the config file and its document.
//
// With an empty override the file is config.jsonc in the config directory;
// when it does not exist yet, the directory, the schema and the default
// config are written and an empty document is returned. A missing override
// file is an [ErrConfigFileNotFound] error.
func (f configFile) read(override string) (string, Document, error) {
	path := override
	if path == "" {
		path = filepath.Join(f.dir, configFileName)
	}

	exists, err := afero.Exists(f.fs, path)
	if err != nil {
		return path, nil, fmt.Errorf("error checking config file %s: %w", path, err)
	}

	if !exists {
		if override != "" {
			return path, nil, fmt.Errorf("%w: %s", ErrConfigFileNotFound, override)
		}
		if err := f.ensureInitialized(path); err != nil {
			return path, nil, err
		}
		return path, Document{}, nil
	}

	raw, err := afero.ReadFile(f.fs, path)
	if err != nil {
		return path, nil, fmt.Errorf("could not read config file %s: %w", path, err)
	}
	contents := jsonc.ToJSON(raw)

	// Decoding into the typed config here only produces a better error
	// message; the untyped document is what gets merged.
	var probe ResolvedConfig
	if err := json.Unmarshal(contents, &probe); err != nil {
		return path, nil, fmt.Errorf("%w: error in config file %s: %s: %w", ErrInvalidConfigFile, path, contents, err)
	}

	doc, err := decodeDocument(contents)
	if err != nil {
		return path, nil, fmt.Errorf("%w: could not parse config file %s: %w", ErrInvalidConfigFile, path, err)
	}

	return path, doc, nil
}

// ensureInitialized writes the schema and the default config template on
// first run. Concurrent first runs write identical content, so the last
// writer winning is harmless.
func (f configFile) ensureInitialized(path string) error {
	if err := f.fs.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("error creating config directory %s: %w", f.dir, err)
	}

	schema, err := Schema()
	if err != nil {
		return err
	}

	schemaPath := filepath.Join(f.dir, schemaFileName)
	if err := afero.WriteFile(f.fs, schemaPath, schema, 0o644); err != nil {
		return fmt.Errorf("error writing config schema %s: %w", schemaPath, err)
	}

	if err := afero.WriteFile(f.fs, path, defaultConfigTemplate, 0o644); err != nil {
		return fmt.Errorf("error writing default config %s: %w", path, err)
	}

	return nil
}

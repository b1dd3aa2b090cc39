// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// EnvConfigVar is the environment variable holding a full or partial config
// document in JSON. rga also uses it to hand the merged configuration to the
// processes it spawns.
const EnvConfigVar = "RGA_CONFIG"

// envSource is the environment layer as seen by caarlos0/env.
type envSource struct {
	Config string `env:"RGA_CONFIG"`
}

// osEnvironment reads the real process environment.
type osEnvironment struct{}

func (osEnvironment) Environ() map[string]string {
	return env.ToMap(os.Environ())
}

// readEnvDocument returns the RGA_CONFIG document. When the variable is
// unset (or empty) the document of the compiled-in defaults is returned
// instead.
func readEnvDocument(environ map[string]string) (Document, error) {
	// caarlos0/env falls back to os.Environ for a nil map.
	if environ == nil {
		environ = map[string]string{}
	}

	var src envSource
	if err := env.ParseWithOptions(&src, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	if src.Config == "" {
		defaults := Default()
		return encodeDocument(&defaults)
	}

	doc, err := decodeDocument([]byte(src.Config))
	if err != nil {
		return nil, fmt.Errorf("%w: could not parse config from env %s: %w", ErrInvalidEnvConfig, EnvConfigVar, err)
	}

	return doc, nil
}

// EnvValue serializes cfg into the form expected in RGA_CONFIG. Options
// holding their default and CLI-only options are left out.
func (cfg *ResolvedConfig) EnvValue() (string, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("error encoding config: %w", err)
	}
	return string(data), nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON Schema describing the config file, pretty-printed.
// It is written next to the default config file on first run and printed
// by --rga-print-config-schema.
func Schema() ([]byte, error) {
	reflector := &jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
		AllowAdditionalProperties:  true,
	}

	schema := reflector.Reflect(&ResolvedConfig{})
	schema.Title = "rga configuration"
	schema.Description = "Configuration of rga, merged from the config file, " +
		EnvConfigVar + " and the command line (in increasing precedence)."

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding config schema: %w", err)
	}

	return data, nil
}

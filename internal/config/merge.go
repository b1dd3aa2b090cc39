// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/knadh/koanf/maps"
)

// Document is an untyped JSON object produced by one configuration source.
// Numbers are kept as json.Number so byte sizes survive the round trip
// without float conversion.
type Document = map[string]any

// MergeDocuments folds docs from lowest to highest precedence into a new
// document. Objects are merged key by key; any other value in a later
// document replaces the earlier one, including an object replaced by a
// scalar and the other way round. The inputs are never modified.
func MergeDocuments(docs ...Document) Document {
	merged := Document{}
	for _, doc := range docs {
		// maps.Merge keeps references into its source, so every layer is
		// merged from a deep copy.
		maps.Merge(maps.Copy(doc), merged)
	}
	return merged
}

// decodeDocument parses data as a single JSON object.
func decodeDocument(data []byte) (Document, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var doc Document
	if err := decoder.Decode(&doc); err != nil {
		return nil, err
	}

	var extra any
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("invalid trailing content after JSON object")
	}

	if doc == nil {
		return Document{}, nil
	}
	return doc, nil
}

// encodeDocument serializes cfg into its untyped form. Options holding their
// default and CLI-only options are left out.
func encodeDocument(cfg *ResolvedConfig) (Document, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("error encoding config: %w", err)
	}
	return decodeDocument(data)
}

// decodeConfig decodes doc on top of the compiled-in defaults, so keys
// missing from doc keep their default values.
func decodeConfig(doc Document) (*ResolvedConfig, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("error encoding merged config: %w", err)
	}
	return decodeConfigJSON(data)
}

func decodeConfigJSON(data []byte) (*ResolvedConfig, error) {
	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

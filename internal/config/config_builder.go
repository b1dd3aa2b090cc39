// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/pretty"
)

// layer is one source document together with a label for log output.
type layer struct {
	name string
	doc  Document
}

// configBuilder collects source documents from lowest to highest precedence
// and folds them into a typed [ResolvedConfig]. Source errors are joined and
// reported together by build.
type configBuilder struct {
	resolver *Resolver
	layers   []layer
	err      error
}

func newConfigBuilder(r *Resolver) *configBuilder {
	return &configBuilder{
		resolver: r,
		layers:   make([]layer, 0, 3),
	}
}

func (b *configBuilder) build() (*ResolvedConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	docs := make([]Document, 0, len(b.layers))
	for _, l := range b.layers {
		docs = append(docs, l.doc)
	}
	merged := MergeDocuments(docs...)
	b.log(merged)

	cfg, err := decodeConfig(merged)
	if err != nil {
		return nil, fmt.Errorf("%w: error parsing merged config: %s: %w", ErrInvalidMergedConfig, prettyDocument(merged), err)
	}

	return cfg, nil
}

// withFile adds the config-file layer, honoring an explicit override path.
func (b *configBuilder) withFile(override string) *configBuilder {
	dir := b.resolver.configDir
	if dir == "" && override == "" {
		var err error
		if dir, err = DefaultConfigDir(); err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
	}

	file := configFile{fs: b.resolver.fs, dir: dir}
	path, doc, err := file.read(override)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, layer{name: path, doc: doc})
	return b
}

// withEnv adds the RGA_CONFIG layer, read fresh from the environment.
func (b *configBuilder) withEnv() *configBuilder {
	doc, err := readEnvDocument(b.resolver.environment.Environ())
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, layer{name: EnvConfigVar, doc: doc})
	return b
}

// withCachedEnv adds the RGA_CONFIG layer, reading the environment only on
// the resolver's first call.
func (b *configBuilder) withCachedEnv() *configBuilder {
	doc, err := b.resolver.cachedEnvDocument()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, layer{name: EnvConfigVar, doc: doc})
	return b
}

// withArgs adds the command-line layer built from the draft.
func (b *configBuilder) withArgs(draft *ResolvedConfig) *configBuilder {
	doc, err := encodeDocument(draft)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, layer{name: "args", doc: doc})
	return b
}

func (b *configBuilder) log(merged Document) {
	event := b.resolver.logger.Debug()
	if !event.Enabled() {
		return
	}

	for _, l := range b.layers {
		event = event.RawJSON(l.name, prettyDocument(l.doc))
	}
	event.RawJSON("merged", prettyDocument(merged)).Msg("configs")
}

// prettyDocument renders doc as indented JSON for error and debug output.
func prettyDocument(doc Document) []byte {
	data, err := json.Marshal(doc)
	if err != nil {
		return []byte(fmt.Sprintf("%q", fmt.Sprint(doc)))
	}
	return pretty.Pretty(data)
}

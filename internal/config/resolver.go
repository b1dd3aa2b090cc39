// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
	"sync"

	"dario.cat/mergo"
	"github.com/spf13/afero"

	"github.com/MKhiriev/go-rga/internal/logger"
)

// Resolver resolves the rga configuration of one process. It owns the
// memoized RGA_CONFIG document used by lightweight resolutions, so tests
// that need isolation simply create a new Resolver.
type Resolver struct {
	fs          afero.Fs
	environment Environment
	configDir   string
	logger      *logger.Logger

	mu        sync.Mutex
	envCached bool
	envDoc    Document
}

// Option configures a [Resolver].
type Option func(*Resolver)

// WithFs sets the filesystem the config file is read from and created on.
func WithFs(fs afero.Fs) Option {
	return func(r *Resolver) {
		r.fs = fs
	}
}

// WithEnvironment sets the environment RGA_CONFIG is read from.
func WithEnvironment(environment Environment) Option {
	return func(r *Resolver) {
		r.environment = environment
	}
}

// WithConfigDir sets the directory holding config.jsonc and its schema.
// By default it is [DefaultConfigDir].
func WithConfigDir(dir string) Option {
	return func(r *Resolver) {
		r.configDir = dir
	}
}

// WithLogger sets the logger used for debug output of the resolution.
func WithLogger(log *logger.Logger) Option {
	return func(r *Resolver) {
		r.logger = log
	}
}

// NewResolver returns a Resolver reading from the OS filesystem and the
// process environment unless configured otherwise.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		fs:          afero.NewOsFs(),
		environment: osEnvironment{},
		logger:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SplitArgs partitions args with [PartitionArgs], resolves the configuration
// from rga's share and returns it together with the arguments for rg.
//
// When --rg-help or --rg-version was requested, --help or --version is put
// in front of the rg arguments.
func (r *Resolver) SplitArgs(args []string, lightweight bool) (*ResolvedConfig, []string, error) {
	owned, passthrough := PartitionArgs(args)
	r.logger.Debug().Strs("args", owned).Msg("rga (our) args")

	cfg, err := r.ParseArgs(owned, lightweight)
	if err != nil {
		return nil, nil, fmt.Errorf("could not parse config: %w", err)
	}

	if cfg.RgHelp {
		passthrough = slices.Insert(passthrough, 0, "--help")
	}
	if cfg.RgVersion {
		passthrough = slices.Insert(passthrough, 0, "--version")
	}
	r.logger.Debug().Strs("args", passthrough).Msg("rga (passthrough) args")

	return cfg, passthrough, nil
}

// ParseArgs resolves the configuration from rga-owned args (args[0] is the
// program name).
//
// In lightweight mode, used once per searched file, only RGA_CONFIG and
// args are merged and RGA_CONFIG is read once per Resolver. Otherwise the
// config file, RGA_CONFIG and args are merged in that order. CLI-only
// options are copied from args into the result. Requests for rga's own
// help or version return the draft parsed from args without consulting any
// other source.
func (r *Resolver) ParseArgs(args []string, lightweight bool) (*ResolvedConfig, error) {
	draft, err := ParseFlags(args)
	if err != nil {
		return nil, err
	}
	if draft.Help || draft.Version {
		return draft, nil
	}

	b := newConfigBuilder(r)
	if lightweight {
		b.withCachedEnv().withArgs(draft)
	} else {
		b.withFile(draft.ConfigFilePath).withEnv().withArgs(draft)
	}

	cfg, err := b.build()
	if err != nil {
		return nil, err
	}

	if err := mergo.Merge(cfg, cliOnly(draft), mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("error restoring command line options: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// cachedEnvDocument returns the RGA_CONFIG document, reading the environment
// only the first time it succeeds.
func (r *Resolver) cachedEnvDocument() (Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.envCached {
		return r.envDoc, nil
	}

	doc, err := readEnvDocument(r.environment.Environ())
	if err != nil {
		return nil, err
	}

	r.envDoc = doc
	r.envCached = true
	return doc, nil
}

// cliOnly returns a config holding only the options that are never
// serialized and therefore do not survive the merge.
func cliOnly(draft *ResolvedConfig) ResolvedConfig {
	return ResolvedConfig{
		ConfigFilePath:    draft.ConfigFilePath,
		FzfPath:           draft.FzfPath,
		ListAdapters:      draft.ListAdapters,
		PrintConfigSchema: draft.PrintConfigSchema,
		RgHelp:            draft.RgHelp,
		RgVersion:         draft.RgVersion,
		Help:              draft.Help,
		Version:           draft.Version,
	}
}

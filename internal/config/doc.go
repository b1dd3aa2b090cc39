// Package config resolves the rga configuration for one invocation.
//
// Configuration is assembled from three sources in the following priority
// order (later sources override earlier ones, key by key):
//  1. The config file (config.jsonc in the per-user config directory, or
//     the file named by --rga-config-file), JSON with comments
//  2. The RGA_CONFIG environment variable, a full or partial JSON document
//  3. Command-line flags prefixed with --rga-
//
// Every source is turned into an untyped [Document]; the documents are
// deep-merged with [MergeDocuments] and decoded into a [ResolvedConfig]
// over the compiled-in defaults from [Default]. Options holding their
// default value are never serialized, so an untouched option in a higher
// layer never overrides a lower one.
//
// Before parsing, [PartitionArgs] separates rga's own arguments from the
// ones forwarded to rg. The main entry point is [Resolver.SplitArgs];
// lightweight resolutions (once per searched file) skip the config file and
// read RGA_CONFIG only once per [Resolver].
package config

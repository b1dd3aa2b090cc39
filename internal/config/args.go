// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"unicode/utf8"
)

// Prefixes and exact arguments that belong to rga rather than rg.
const (
	rgaFlagPrefix = "--rga-"
	rgFlagPrefix  = "--rg-"
)

var ownedExactArgs = map[string]struct{}{
	"--help":    {},
	"-h":        {},
	"--version": {},
	"-V":        {},
}

// PartitionArgs splits the raw process arguments into the ones rga parses
// and the ones forwarded to rg, keeping the relative order within each.
//
// The first argument (program name) is always rga's. An argument is rga's
// when it is valid UTF-8 and starts with "--rga-" or "--rg-", or is one of
// -h, --help, -V, --version. Anything else, including arguments that are not
// valid UTF-8 (which can only be file names), goes to rg.
func PartitionArgs(args []string) (owned, passthrough []string) {
	owned = make([]string, 0, len(args))
	passthrough = make([]string, 0, len(args))

	for i, arg := range args {
		if i == 0 || isOwnedArg(arg) {
			owned = append(owned, arg)
			continue
		}
		passthrough = append(passthrough, arg)
	}

	return owned, passthrough
}

func isOwnedArg(arg string) bool {
	if !utf8.ValidString(arg) {
		return false
	}
	if strings.HasPrefix(arg, rgaFlagPrefix) || strings.HasPrefix(arg, rgFlagPrefix) {
		return true
	}
	_, ok := ownedExactArgs[arg]
	return ok
}

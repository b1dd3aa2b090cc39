// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli holds the cobra commands of the rga-fzf and rga-fzf-open
// binaries and the error reporting shared by all rga binaries.
package cli

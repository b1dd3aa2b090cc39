// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fzf

import "errors"

var (
	ErrExecutableNotFound = errors.New("executable not found")
	ErrUnexpectedOutput   = errors.New("unexpected fzf output")
	ErrUnquotable         = errors.New("cannot quote for the shell")
)

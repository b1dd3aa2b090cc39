// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapters

import "errors"

var (
	ErrUnknownAdapter     = errors.New("unknown adapter")
	ErrAdapterNotInList   = errors.New("could not remove adapter: not in list")
	ErrDuplicateAdapter   = errors.New("duplicate custom adapter name")
	ErrInvalidAdapterName = errors.New("invalid custom adapter name")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

//go:generate mockgen -source=interfaces.go -destination=../mock/environment_mock.go -package=mock

// Environment provides the process environment as a name → value map.
// The resolver reads RGA_CONFIG through it, which lets tests inject values
// and count reads.
type Environment interface {
	// Environ returns a snapshot of the environment variables.
	Environ() map[string]string
}

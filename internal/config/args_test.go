// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionArgs(t *testing.T) {
	tests := []struct {
		name                string
		args                []string
		expectedOwned       []string
		expectedPassthrough []string
	}{
		{
			name:                "rga flags are split from rg arguments",
			args:                []string{"prog", "--rga-accurate", "--rga-max-archive-recursion=3", "foo", "bar.txt"},
			expectedOwned:       []string{"prog", "--rga-accurate", "--rga-max-archive-recursion=3"},
			expectedPassthrough: []string{"foo", "bar.txt"},
		},
		{
			name:                "program name only",
			args:                []string{"rga"},
			expectedOwned:       []string{"rga"},
			expectedPassthrough: []string{},
		},
		{
			name:                "no arguments",
			args:                nil,
			expectedOwned:       []string{},
			expectedPassthrough: []string{},
		},
		{
			name:                "first argument is always owned",
			args:                []string{"foo", "bar"},
			expectedOwned:       []string{"foo"},
			expectedPassthrough: []string{"bar"},
		},
		{
			name:                "help and version forms are owned",
			args:                []string{"rga", "-h", "--help", "-V", "--version", "-i"},
			expectedOwned:       []string{"rga", "-h", "--help", "-V", "--version"},
			expectedPassthrough: []string{"-i"},
		},
		{
			name:                "rg- prefixed requests are owned",
			args:                []string{"rga", "--rg-help", "pattern", "--rg-version"},
			expectedOwned:       []string{"rga", "--rg-help", "--rg-version"},
			expectedPassthrough: []string{"pattern"},
		},
		{
			name:                "similar looking arguments go to rg",
			args:                []string{"rga", "--rgafoo", "-rga-accurate", "--helpme", "-hV", "--", "--rga"},
			expectedOwned:       []string{"rga"},
			expectedPassthrough: []string{"--rgafoo", "-rga-accurate", "--helpme", "-hV", "--", "--rga"},
		},
		{
			name:                "invalid utf-8 goes to rg",
			args:                []string{"rga", "--rga-\xff", "file\xfe.pdf", "--rga-no-cache"},
			expectedOwned:       []string{"rga", "--rga-no-cache"},
			expectedPassthrough: []string{"--rga-\xff", "file\xfe.pdf"},
		},
		{
			name:                "relative order is kept",
			args:                []string{"rga", "a", "--rga-adapters=zip", "b", "--rga-no-cache", "c"},
			expectedOwned:       []string{"rga", "--rga-adapters=zip", "--rga-no-cache"},
			expectedPassthrough: []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owned, passthrough := PartitionArgs(tt.args)
			assert.Equal(t, tt.expectedOwned, owned)
			assert.Equal(t, tt.expectedPassthrough, passthrough)
			assert.Equal(t, len(tt.args), len(owned)+len(passthrough))
		})
	}
}

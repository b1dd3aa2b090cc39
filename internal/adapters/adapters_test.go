// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapters

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-rga/internal/config"
)

func find(t *testing.T, all []Adapter, name string) Adapter {
	t.Helper()
	for _, a := range all {
		if a.Name == name {
			return a
		}
	}
	require.Failf(t, "adapter not found", "%q", name)
	return Adapter{}
}

func TestBuiltin_ExtensionOverrides(t *testing.T) {
	cfg := config.Default()

	builtin := Builtin(&cfg)
	assert.Equal(t, []string{"zip", "jar", "xpi", "kra", "snagx"}, find(t, builtin, "zip").Extensions)
	assert.Contains(t, find(t, builtin, "ffmpeg").Extensions, "mkv")

	cfg.ZipExtensions = []string{"zip", "apk"}
	cfg.FfmpegExtensions = []string{}

	builtin = Builtin(&cfg)
	assert.Equal(t, []string{"zip", "apk"}, find(t, builtin, "zip").Extensions)
	assert.Empty(t, find(t, builtin, "ffmpeg").Extensions)
	assert.Equal(t, []string{"zip", "jar", "xpi", "kra", "snagx"}, defaultZipExtensions)
}

func TestAll(t *testing.T) {
	disabled := true
	cfg := config.Default()
	cfg.CustomAdapters = []config.CustomAdapterConfig{
		{Name: "gron", Description: "json", Extensions: []string{"json"}, Binary: "gron", Args: []string{}},
		{Name: "djvu", Description: "djvu", Extensions: []string{"djvu"}, Binary: "djvutxt", DisabledByDefault: &disabled},
	}

	all, err := All(&cfg)
	require.NoError(t, err)

	assert.Equal(t, "gron", all[0].Name)
	assert.True(t, all[0].Custom)
	assert.True(t, all[1].DisabledByDefault)
	assert.False(t, find(t, all, "zip").Custom)
	assert.Len(t, all, len(Builtin(&cfg))+2)
}

func TestAll_CustomAdapterWithoutBinary(t *testing.T) {
	cfg := config.Default()
	cfg.CustomAdapters = []config.CustomAdapterConfig{
		{Name: "nobin", Description: "no binary configured", Extensions: []string{"nb"}},
	}

	all, err := All(&cfg)
	require.NoError(t, err)

	nobin := find(t, all, "nobin")
	assert.True(t, nobin.Custom)
	assert.Empty(t, nobin.Binary)
	for _, a := range Builtin(&cfg) {
		assert.False(t, a.Custom, a.Name)
	}
}

func TestAll_InvalidCustomAdapters(t *testing.T) {
	tests := []struct {
		name        string
		adapters    []config.CustomAdapterConfig
		expectedErr error
	}{
		{
			name:        "shadows a built-in adapter",
			adapters:    []config.CustomAdapterConfig{{Name: "zip", Binary: "unzip"}},
			expectedErr: ErrDuplicateAdapter,
		},
		{
			name:        "duplicate custom adapter",
			adapters:    []config.CustomAdapterConfig{{Name: "a", Binary: "a"}, {Name: "a", Binary: "b"}},
			expectedErr: ErrDuplicateAdapter,
		},
		{
			name:        "invalid characters",
			adapters:    []config.CustomAdapterConfig{{Name: "My-Adapter", Binary: "x"}},
			expectedErr: ErrInvalidAdapterName,
		},
		{
			name:        "empty name",
			adapters:    []config.CustomAdapterConfig{{Name: "", Binary: "x"}},
			expectedErr: ErrInvalidAdapterName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.CustomAdapters = tt.adapters

			_, err := All(&cfg)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestSelect(t *testing.T) {
	all := []Adapter{
		{Name: "a"},
		{Name: "b"},
		{Name: "c"},
		{Name: "off", DisabledByDefault: true},
	}

	tests := []struct {
		name        string
		selection   []string
		expected    []string
		expectedErr error
	}{
		{name: "empty keeps enabled adapters", selection: nil, expected: []string{"a", "b", "c"}},
		{name: "exact list in given order", selection: []string{"c", "a"}, expected: []string{"c", "a"}},
		{name: "exact list may name disabled adapters", selection: []string{"off"}, expected: []string{"off"}},
		{name: "subtractive", selection: []string{"-a", "c"}, expected: []string{"b"}},
		{name: "additive puts adapters in front", selection: []string{"+off"}, expected: []string{"off", "a", "b", "c"}},
		{name: "additive keeps reverse order", selection: []string{"+off", "c"}, expected: []string{"c", "off", "a", "b", "c"}},
		{name: "unknown adapter", selection: []string{"nope"}, expectedErr: ErrUnknownAdapter},
		{name: "unknown additive adapter", selection: []string{"+nope"}, expectedErr: ErrUnknownAdapter},
		{name: "removing a disabled adapter", selection: []string{"-off"}, expectedErr: ErrAdapterNotInList},
		{name: "removing twice", selection: []string{"-a", "a"}, expectedErr: ErrAdapterNotInList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selected, err := Select(all, tt.selection)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, names(selected))
		})
	}
}

func TestList(t *testing.T) {
	color.NoColor = true

	all := []Adapter{
		{Name: "gron", Description: "Transform JSON", Extensions: []string{"json"}, Custom: true, Binary: "gron"},
		{Name: "zip", Description: "Reads a zip file", Extensions: []string{"zip", "jar"}, Mimetypes: []string{"application/zip"}},
		{Name: "tesseract", Description: "OCR", Extensions: []string{"png"}, DisabledByDefault: true},
	}

	var buf bytes.Buffer
	require.NoError(t, List(&buf, all))

	expected := "Adapters:\n" +
		" - gron\n" +
		"     Transform JSON\n" +
		"     Extensions: .json\n" +
		"     Binary: gron\n" +
		"\n" +
		" - zip\n" +
		"     Reads a zip file\n" +
		"     Extensions: .zip, .jar\n" +
		"     Mime Types: application/zip\n" +
		"\n" +
		"\n" +
		"The following adapters are disabled by default, and can be enabled using '--rga-adapters=+foo,bar':\n" +
		" - tesseract\n" +
		"     OCR\n" +
		"     Extensions: .png\n" +
		"\n"
	assert.Equal(t, expected, buf.String())
}

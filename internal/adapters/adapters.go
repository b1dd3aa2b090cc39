// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapters describes the adapters rga can run on a file and
// resolves the --rga-adapters selection against them.
package adapters

import (
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-rga/internal/config"
)

// Adapter is the metadata of one adapter, built-in or custom.
type Adapter struct {
	Name              string
	Description       string
	Extensions        []string
	Mimetypes         []string
	DisabledByDefault bool
	// Custom is set for adapters defined in the config file.
	Custom bool
	// Binary is the external program a custom adapter runs.
	Binary string
}

var (
	defaultZipExtensions    = []string{"zip", "jar", "xpi", "kra", "snagx"}
	defaultFfmpegExtensions = []string{"mkv", "mp4", "avi", "mp3", "ogg", "flac", "webm"}

	customNamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)
)

// Builtin returns the built-in adapters in default priority order, with the
// zip and ffmpeg extension overrides of cfg applied.
func Builtin(cfg *config.ResolvedConfig) []Adapter {
	zipExtensions := defaultZipExtensions
	if cfg.ZipExtensions != nil {
		zipExtensions = cfg.ZipExtensions
	}
	ffmpegExtensions := defaultFfmpegExtensions
	if cfg.FfmpegExtensions != nil {
		ffmpegExtensions = cfg.FfmpegExtensions
	}

	return []Adapter{
		{
			Name:        "ffmpeg",
			Description: "Uses ffmpeg to extract video metadata/chapters, subtitles, lyrics, and other metadata",
			Extensions:  clone(ffmpegExtensions),
			Mimetypes:   []string{"video/x-matroska", "video/mp4", "audio/mpeg", "audio/ogg", "audio/flac"},
		},
		{
			Name:        "pandoc",
			Description: "Uses pandoc to convert binary/unreadable text documents to plain markdown-like text",
			Extensions:  []string{"epub", "odt", "docx", "fb2", "ipynb", "html", "htm"},
			Mimetypes:   []string{"application/epub+zip", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		},
		{
			Name:        "poppler",
			Description: "Uses pdftotext (from poppler-utils) to extract plain text from PDF files",
			Extensions:  []string{"pdf"},
			Mimetypes:   []string{"application/pdf"},
		},
		{
			Name:        "zip",
			Description: "Reads a zip file as a stream and recurses down into its contents",
			Extensions:  clone(zipExtensions),
			Mimetypes:   []string{"application/zip"},
		},
		{
			Name:        "decompress",
			Description: "Reads compressed file as a stream and runs a different extractor on the contents",
			Extensions:  []string{"als", "bz2", "gz", "tbz", "tbz2", "tgz", "xz", "zst"},
			Mimetypes:   []string{"application/gzip", "application/x-bzip", "application/x-xz", "application/zstd"},
		},
		{
			Name:        "tar",
			Description: "Reads a tar file as a stream and recurses down into its contents",
			Extensions:  []string{"tar"},
			Mimetypes:   []string{"application/x-tar"},
		},
		{
			Name:        "sqlite",
			Description: "Uses sqlite bindings to convert sqlite databases into a simple plain text format",
			Extensions:  []string{"db", "db3", "sqlite", "sqlite3"},
			Mimetypes:   []string{"application/x-sqlite3"},
		},
		{
			Name:        "mail",
			Description: "Reads mailbox files and emails and extracts the text and attachments",
			Extensions:  []string{"mbox", "mbx", "eml"},
			Mimetypes:   []string{"application/mbox", "message/rfc822"},
		},
		{
			Name:              "tesseract",
			Description:       "Uses tesseract to run OCR on images to make them searchable. May need -j1 to prevent overloading the system",
			Extensions:        []string{"jpg", "png"},
			DisabledByDefault: true,
		},
	}
}

// All returns the custom adapters of cfg followed by the built-in ones.
// Custom names must be unique, must not shadow a built-in adapter and may
// only use a-z, 0-9 and _.
func All(cfg *config.ResolvedConfig) ([]Adapter, error) {
	builtin := Builtin(cfg)
	seen := make(map[string]struct{}, len(builtin)+len(cfg.CustomAdapters))
	for _, a := range builtin {
		seen[a.Name] = struct{}{}
	}

	all := make([]Adapter, 0, len(builtin)+len(cfg.CustomAdapters))
	for _, c := range cfg.CustomAdapters {
		if !customNamePattern.MatchString(c.Name) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAdapterName, c.Name)
		}
		if _, ok := seen[c.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateAdapter, c.Name)
		}
		seen[c.Name] = struct{}{}
		all = append(all, fromCustom(c))
	}

	return append(all, builtin...), nil
}

func fromCustom(c config.CustomAdapterConfig) Adapter {
	a := Adapter{
		Name:        c.Name,
		Description: c.Description,
		Extensions:  clone(c.Extensions),
		Mimetypes:   clone(c.Mimetypes),
		Custom:      true,
		Binary:      c.Binary,
	}
	if c.DisabledByDefault != nil {
		a.DisabledByDefault = *c.DisabledByDefault
	}
	return a
}

func clone(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

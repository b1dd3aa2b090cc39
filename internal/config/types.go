// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/pflag"
)

// Value is the capability shared by all scalar option types.
//
// A Value can be set from command-line text (pflag.Value), written to and
// read back from JSON, and reports through IsZero whether it still holds its
// default. encoding/json consults IsZero for fields tagged omitzero, so a
// value equal to its default never shows up in a serialized layer and can
// not override another layer during the merge.
type Value interface {
	pflag.Value
	json.Marshaler
	json.Unmarshaler
	IsZero() bool
}

var (
	_ Value = (*CacheMaxBlobLen)(nil)
	_ Value = (*CacheCompressionLevel)(nil)
	_ Value = (*MaxArchiveRecursion)(nil)
	_ Value = (*CachePath)(nil)
)

// Byte size unit factors accepted as the last character of a [CacheMaxBlobLen].
const (
	kilo = 1_000
	mega = 1_000_000
	giga = 1_000_000_000
)

// CacheMaxBlobLen is the longest adapter output (in bytes, after compression)
// stored in the cache.
type CacheMaxBlobLen uint64

// DefaultCacheMaxBlobLen is the default maximum cached blob length.
const DefaultCacheMaxBlobLen CacheMaxBlobLen = 2_000_000

// ParseCacheMaxBlobLen parses a byte count with an optional k, M or G
// suffix (powers of 1000). "10M" is 10_000_000.
func ParseCacheMaxBlobLen(s string) (CacheMaxBlobLen, error) {
	if s == "" {
		return 0, ErrEmptyByteSize
	}

	var factor uint64
	switch s[len(s)-1] {
	case 'k':
		factor = kilo
	case 'M':
		factor = mega
	case 'G':
		factor = giga
	}

	if factor == 0 {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w %q: %w", ErrInvalidByteSize, s, err)
		}
		return CacheMaxBlobLen(n), nil
	}

	n, err := strconv.ParseUint(s[:len(s)-1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidByteSize, s, err)
	}
	if n > math.MaxUint64/factor {
		return 0, fmt.Errorf("%w: %q", ErrByteSizeOverflow, s)
	}

	return CacheMaxBlobLen(n * factor), nil
}

func (v CacheMaxBlobLen) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

// Set implements pflag.Value.
func (v *CacheMaxBlobLen) Set(s string) error {
	n, err := ParseCacheMaxBlobLen(s)
	if err != nil {
		return err
	}
	*v = n
	return nil
}

// Type implements pflag.Value.
func (v *CacheMaxBlobLen) Type() string {
	return "bytes"
}

// IsZero reports whether v equals [DefaultCacheMaxBlobLen].
func (v CacheMaxBlobLen) IsZero() bool {
	return v == DefaultCacheMaxBlobLen
}

func (v CacheMaxBlobLen) MarshalJSON() ([]byte, error) {
	return json.Marshal(uint64(v))
}

// UnmarshalJSON accepts a plain number as well as a string with a unit
// suffix ("10M").
func (v *CacheMaxBlobLen) UnmarshalJSON(b []byte) error {
	if isJSONNull(b) {
		return nil
	}

	var raw any
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("%w %s: %w", ErrInvalidByteSize, b, err)
	}

	switch value := raw.(type) {
	case json.Number:
		return v.Set(value.String())
	case string:
		return v.Set(value)
	default:
		return fmt.Errorf("%w: %s", ErrInvalidByteSize, b)
	}
}

// CacheCompressionLevel is the zstd level applied to adapter outputs before
// they are stored in the cache. Valid levels are 1 to 22; the range is
// checked when the configuration is resolved.
type CacheCompressionLevel int32

// DefaultCacheCompressionLevel is the default cache compression level.
const DefaultCacheCompressionLevel CacheCompressionLevel = 12

// Bounds of [CacheCompressionLevel].
const (
	MinCacheCompressionLevel CacheCompressionLevel = 1
	MaxCacheCompressionLevel CacheCompressionLevel = 22
)

func (v CacheCompressionLevel) String() string {
	return strconv.FormatInt(int64(v), 10)
}

func (v *CacheCompressionLevel) Set(s string) error {
	n, err := parseInt32(s)
	if err != nil {
		return err
	}
	*v = CacheCompressionLevel(n)
	return nil
}

func (v *CacheCompressionLevel) Type() string {
	return "int"
}

// IsZero reports whether v equals [DefaultCacheCompressionLevel].
func (v CacheCompressionLevel) IsZero() bool {
	return v == DefaultCacheCompressionLevel
}

func (v CacheCompressionLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(int32(v))
}

func (v *CacheCompressionLevel) UnmarshalJSON(b []byte) error {
	if isJSONNull(b) {
		return nil
	}

	var n int32
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("%w %s: %w", ErrInvalidInteger, b, err)
	}
	*v = CacheCompressionLevel(n)
	return nil
}

// MaxArchiveRecursion limits how deep rga descends into archives nested in
// archives.
type MaxArchiveRecursion int32

// DefaultMaxArchiveRecursion is the default archive recursion depth.
const DefaultMaxArchiveRecursion MaxArchiveRecursion = 5

func (v MaxArchiveRecursion) String() string {
	return strconv.FormatInt(int64(v), 10)
}

func (v *MaxArchiveRecursion) Set(s string) error {
	n, err := parseInt32(s)
	if err != nil {
		return err
	}
	*v = MaxArchiveRecursion(n)
	return nil
}

func (v *MaxArchiveRecursion) Type() string {
	return "int"
}

// IsZero reports whether v equals [DefaultMaxArchiveRecursion].
func (v MaxArchiveRecursion) IsZero() bool {
	return v == DefaultMaxArchiveRecursion
}

func (v MaxArchiveRecursion) MarshalJSON() ([]byte, error) {
	return json.Marshal(int32(v))
}

func (v *MaxArchiveRecursion) UnmarshalJSON(b []byte) error {
	if isJSONNull(b) {
		return nil
	}

	var n int32
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("%w %s: %w", ErrInvalidInteger, b, err)
	}
	*v = MaxArchiveRecursion(n)
	return nil
}

// CachePath is the directory holding the cache database.
type CachePath string

// DefaultCachePath returns <user cache dir>/ripgrep-all, falling back to the
// temporary directory when the platform has no cache directory.
func DefaultCachePath() CachePath {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return CachePath(filepath.Join(dir, appDirName))
}

func (v CachePath) String() string {
	return string(v)
}

func (v *CachePath) Set(s string) error {
	*v = CachePath(s)
	return nil
}

func (v *CachePath) Type() string {
	return "path"
}

// IsZero reports whether v equals [DefaultCachePath].
func (v CachePath) IsZero() bool {
	return v == DefaultCachePath()
}

func (v CachePath) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(v))
}

func (v *CachePath) UnmarshalJSON(b []byte) error {
	if isJSONNull(b) {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*v = CachePath(s)
	return nil
}

// Extensions is a list of file extensions overriding the built-in list of
// an adapter. nil keeps the built-in list, while an empty list is an
// explicit override and is kept when serialized.
type Extensions []string

// IsZero reports whether v is nil.
func (v Extensions) IsZero() bool {
	return v == nil
}

func parseInt32(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidInteger, s, err)
	}
	return int32(n), nil
}

// isJSONNull reports whether b is the JSON null literal. Scalar types keep
// their current value on null, like encoding/json does for plain fields.
func isJSONNull(b []byte) bool {
	return string(bytes.TrimSpace(b)) == "null"
}

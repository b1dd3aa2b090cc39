// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger used by the
// rga binaries.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Output goes to stderr because stdout carries rg's search results.
package logger

import (
	"io"
	"os"
	"runtime"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// LevelEnvVar names the environment variable selecting the log level
// (zerolog level names: trace, debug, info, warn, error, ...).
const LevelEnvVar = "RGA_LOG"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

type levelConfig struct {
	Level string `env:"RGA_LOG" envDefault:"warn"`
}

// NewLogger constructs a *Logger for the given role label (e.g. "rga",
// "rga-fzf") writing human-readable lines to stderr.
//
// The level is read from RGA_LOG and defaults to warn; an unknown level
// name falls back to warn as well. Every entry carries the role, a
// timestamp and the calling function name.
func NewLogger(role string) *Logger {
	return newLogger(zerolog.ConsoleWriter{Out: os.Stderr}, role, levelFromEnv())
}

func newLogger(w io.Writer, role string, level zerolog.Level) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).Level(level).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

func levelFromEnv() zerolog.Level {
	var cfg levelConfig
	if err := env.Parse(&cfg); err != nil {
		return zerolog.WarnLevel
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.WarnLevel
	}
	return level
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver and adds the component name.
func (l *Logger) GetChildLogger(component string) *Logger {
	return &Logger{l.With().Str("component", component).Logger()}
}

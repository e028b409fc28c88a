// Copyright 2026 The Sqlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log is a small structured logger on top of slog.Logger.
package log

import (
	"io"
	"log/slog"
)

// Namespaces used across the module.
const (
	NsConnection = "connection"
	NsCursor     = "cursor"
	NsShell      = "shell"
)

// Logger is a structured logger on top of slog.Logger.
type Logger struct {
	slogger *slog.Logger
}

// NewLogger creates a Logger that writes JSON records at info level and
// above to writer.
func NewLogger(writer io.Writer) Logger {
	return New(slog.New(slog.NewJSONHandler(writer, nil)))
}

// NewDebugLogger is NewLogger with debug records enabled.
func NewDebugLogger(writer io.Writer) Logger {
	return New(slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}

// New wraps an existing slog.Logger. A nil slogger yields a Logger that
// drops everything.
func New(slogger *slog.Logger) Logger {
	if slogger == nil {
		return Discard()
	}
	return Logger{slogger: slogger}
}

// Discard returns a Logger that drops every record.
func Discard() Logger {
	return Logger{slogger: slog.New(slog.NewJSONHandler(io.Discard, nil))}
}

// IsInitialized reports whether the Logger was built by one of the
// constructors of this package.
func (l *Logger) IsInitialized() bool {
	return l.slogger != nil
}

// Slog returns the underlying slog.Logger.
func (l *Logger) Slog() *slog.Logger {
	return l.slogger
}

// InfoNs logs structured info message with a namespace.
//
// The namespace is used to differentiate logs from different parts
// and will be included as the first key-value pair in the log.
func (l *Logger) InfoNs(namespace string, msg string, keyVals ...KV) {
	l.slogger.Info(msg, kvToArgsNs(namespace, keyVals...)...)
}

// DebugNs logs structured debug message with a namespace.
func (l *Logger) DebugNs(namespace string, msg string, keyVals ...KV) {
	l.slogger.Debug(msg, kvToArgsNs(namespace, keyVals...)...)
}

// WarnNs logs structured warning message with a namespace.
func (l *Logger) WarnNs(namespace string, msg string, keyVals ...KV) {
	l.slogger.Warn(msg, kvToArgsNs(namespace, keyVals...)...)
}

// ErrorNs logs structured error message with a namespace.
func (l *Logger) ErrorNs(namespace string, msg string, keyVals ...KV) {
	l.slogger.Error(msg, kvToArgsNs(namespace, keyVals...)...)
}

// Copyright 2026 The Sqlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sqlite

import (
	"fmt"

	"github.com/orsinium-labs/enum"
)

// ErrorKind classifies an *Error.
type ErrorKind enum.Member[string]

var (
	// KindEngine is any non-OK status reported by the engine.
	KindEngine = ErrorKind{Value: "engine"}
	// KindUsage is a caller protocol violation, like executing on a cursor
	// that still holds an unfinished statement.
	KindUsage = ErrorKind{Value: "usage"}
	// KindIndex is a column index outside of a row.
	KindIndex = ErrorKind{Value: "index"}
	// KindNotImplemented is a value this package does not render.
	KindNotImplemented = ErrorKind{Value: "not implemented"}

	ErrorKinds = enum.New(KindEngine, KindUsage, KindIndex, KindNotImplemented)
)

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrEngine         = &Error{kind: KindEngine}
	ErrUsage          = &Error{kind: KindUsage}
	ErrIndexRange     = &Error{kind: KindIndex}
	ErrNotImplemented = &Error{kind: KindNotImplemented}
)

// Error is the only error type returned by this package.
type Error struct {
	kind ErrorKind
	code int
	msg  string
}

// Kind returns the error classification.
func (e *Error) Kind() ErrorKind { return e.kind }

// Code returns the engine result code, or zero for errors not coming from
// the engine.
func (e *Error) Code() int { return e.code }

// Error implements error.
func (e *Error) Error() string {
	if e.msg == "" {
		return fmt.Sprintf("sqlite: %s error", e.kind.Value)
	}

	return "sqlite: " + e.msg
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.msg == "" && t.code == 0 && t.kind == e.kind
}

func usageError(msg string) error { return &Error{kind: KindUsage, msg: msg} }

func engineError(code int32, msg string) error {
	return &Error{kind: KindEngine, code: int(code), msg: msg}
}

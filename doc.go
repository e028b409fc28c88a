// Copyright 2026 The Sqlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sqlite is a thin cursor layer over the SQLite C API, as translated
// to Go by modernc.org/sqlite/lib. It gives connection, cursor, row and
// value objects with a definite lifetime in place of raw handles.
//
// Connecting to a database
//
//	conn, err := sqlite.Open("test.db", sqlite.OpenDefault)
//	if err != nil {
//		return err
//	}
//
//	defer conn.Close()
//
// Or, to have the connection closed on every path out of a function,
//
//	err := sqlite.WithConnection("test.db", sqlite.OpenDefault, func(conn *sqlite.Connection) error {
//		...
//	})
//
// Executing statements
//
// A Cursor holds at most one statement and Execute compiles only the first
// statement of its query. Text after it is ignored. Statements without
// result columns run to completion inside Execute. Others leave the cursor
// prepared until the rows are fetched:
//
//	cur := conn.Cursor()
//	if _, err := cur.Execute("create table t(i int)", nil); err != nil {
//		return err
//	}
//
//	if _, err := cur.Execute("select i from t", nil); err != nil {
//		return err
//	}
//
//	rows, err := cur.FetchAll()
//
// Rows and their Values are copies. They remain valid after the statement
// is finalized and after the connection is closed.
//
// Errors
//
// Every error returned is an *Error. Its Kind tells engine failures
// (ErrEngine) from misuse of a cursor (ErrUsage), column indexes out of
// range (ErrIndexRange) and values that cannot be rendered
// (ErrNotImplemented). Use errors.Is with those sentinels.
//
// Concurrency
//
// A Connection and its Cursors must not be used from more than one
// goroutine at a time.
//
// Sqlite documentation
//
// See https://sqlite.org/docs.html
package sqlite

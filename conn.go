// Copyright 2026 The Sqlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sqlite

import (
	"fmt"
	"log/slog"

	"github.com/glebarez/sqlite-cursor/internal/log"
)

// Option configures a Connection at Open time.
type Option func(*Connection)

// WithLogger traces the lifetime of the connection and of the statements of
// its cursors at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *Connection) {
		c.log = log.New(l)
	}
}

// Connection owns one engine connection handle. It is the factory of the
// Cursors that borrow it.
//
// A Connection is not safe for concurrent use.
type Connection struct {
	*engine
	path  string
	flags OpenFlag
	log   log.Logger
	live  map[*Cursor]struct{} // cursors holding a prepared statement
}

func (c *Connection) String() string {
	return fmt.Sprintf("&%T@%p{engine: %v, path: %q, flags: %v, live: %v}", *c, c, c.engine, c.path, c.flags, len(c.live))
}

// Open opens the database file at path with the given flags.
//
// https://www.sqlite.org/c3ref/open.html
func Open(path string, flags OpenFlag, opts ...Option) (_ *Connection, err error) {
	c := &Connection{
		engine: newEngine(),
		path:   path,
		flags:  flags,
		log:    log.Discard(),
		live:   map[*Cursor]struct{}{},
	}
	for _, opt := range opts {
		opt(c)
	}

	defer func() {
		if err != nil {
			c.log.DebugNs(log.NsConnection, "open failed", log.KV{"path": path, "error": err.Error()})
			c.release()
		}
	}()

	if err = c.openV2(path, int32(flags)); err != nil {
		return nil, err
	}

	if err = c.extendedResultCodes(true); err != nil {
		_ = c.closeDB()
		return nil, err
	}

	c.log.DebugNs(log.NsConnection, "opened", log.KV{"path": path, "flags": flags.String()})
	return c, nil
}

// WithConnection opens path, passes the Connection to fn and closes it on
// every exit path. An error from Close is returned only if fn succeeded.
func WithConnection(path string, flags OpenFlag, fn func(*Connection) error, opts ...Option) (err error) {
	c, err := Open(path, flags, opts...)
	if err != nil {
		return err
	}

	defer func() {
		if err2 := c.Close(); err2 != nil && err == nil {
			err = err2
		}
	}()

	return fn(c)
}

// Close finalizes the statements still held by cursors of c and then closes
// the engine connection. Close is idempotent. If the engine refuses to close,
// the handle stays open and Close may be retried.
//
// https://www.sqlite.org/c3ref/close.html
func (c *Connection) Close() (err error) {
	if c.db == 0 {
		return nil
	}

	for cur := range c.live {
		if err2 := cur.Finish(); err2 != nil && err == nil {
			err = err2
		}
	}

	if err2 := c.closeDB(); err2 != nil {
		c.log.ErrorNs(log.NsConnection, "close failed", log.KV{"path": c.path, "error": err2.Error()})
		return err2
	}

	c.release()
	c.log.DebugNs(log.NsConnection, "closed", log.KV{"path": c.path})
	return err
}

// Cursor returns a new Cursor borrowing c.
func (c *Connection) Cursor() *Cursor {
	return &Cursor{conn: c, state: StateIdle}
}

// Closed reports whether c has been closed.
func (c *Connection) Closed() bool { return c.db == 0 }

// Path returns the path c was opened with.
func (c *Connection) Path() string { return c.path }

// Flags returns the flags c was opened with.
func (c *Connection) Flags() OpenFlag { return c.flags }

// LastInsertRowID returns the rowid of the most recent successful INSERT on
// c, or zero once c is closed.
//
// https://www.sqlite.org/c3ref/last_insert_rowid.html
func (c *Connection) LastInsertRowID() int64 {
	if c.db == 0 {
		return 0
	}

	return c.lastInsertRowID()
}

// Changes returns the number of rows modified by the most recent INSERT,
// UPDATE or DELETE on c, or zero once c is closed.
//
// https://www.sqlite.org/c3ref/changes.html
func (c *Connection) Changes() int64 {
	if c.db == 0 {
		return 0
	}

	return c.changes()
}

func (c *Connection) checkOpen() error {
	if c.db == 0 {
		return usageError("connection is closed")
	}

	return nil
}

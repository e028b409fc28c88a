// Copyright 2026 The Sqlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sqlite

import (
	"fmt"

	"github.com/glebarez/sqlite-cursor/internal/log"
	"github.com/orsinium-labs/enum"
	lib "modernc.org/sqlite/lib"
)

// CursorState is the state of a Cursor.
type CursorState enum.Member[string]

var (
	// StateIdle is a cursor holding no statement.
	StateIdle = CursorState{Value: "idle"}
	// StatePrepared is a cursor holding a row producing statement that was
	// not yet fully fetched.
	StatePrepared = CursorState{Value: "prepared"}

	CursorStates = enum.New(StateIdle, StatePrepared)
)

// Binding is reserved for statement parameters. It is accepted by Execute
// and has no effect.
type Binding struct{}

// Cursor executes statements on the Connection it borrows and iterates
// their results. A Cursor holds at most one statement at a time.
type Cursor struct {
	conn    *Connection
	state   CursorState
	pstmt   uintptr
	columns []string
}

func (c *Cursor) String() string {
	return fmt.Sprintf("&%T@%p{conn: %p, state: %v, pstmt: %#x, columns: %v}", *c, c, c.conn, c.state.Value, c.pstmt, c.columns)
}

// Connection returns the Connection c borrows.
func (c *Cursor) Connection() *Connection { return c.conn }

// State returns the current state of c.
func (c *Cursor) State() CursorState { return c.state }

// Columns returns the column names of the last row producing statement
// executed on c.
func (c *Cursor) Columns() []string {
	return append([]string(nil), c.columns...)
}

// Execute compiles the first statement of query. Any text after it is
// ignored and never runs; split scripts into statements with Complete and
// execute them one by one. A statement without result columns runs to completion and is finalized before Execute
// returns. Otherwise c moves to StatePrepared and the rows are read with
// FetchAll or FetchOne.
//
// Execute on a cursor in StatePrepared fails with ErrUsage.
func (c *Cursor) Execute(query string, binding *Binding) (_ *Cursor, err error) {
	if c.state == StatePrepared {
		return nil, usageError("unfinished statement")
	}

	if err = c.conn.checkOpen(); err != nil {
		return nil, err
	}

	pstmt, err := c.conn.prepareV2(query)
	if err != nil {
		c.conn.log.DebugNs(log.NsCursor, "prepare failed", log.KV{"query": query, "error": err.Error()})
		return nil, err
	}

	c.columns = nil
	if pstmt == 0 {
		return c, nil
	}

	n := c.conn.columnCount(pstmt)
	if n == 0 {
		c.conn.log.DebugNs(log.NsCursor, "exec", log.KV{"query": query})
		switch rc := c.conn.step(pstmt); rc {
		case lib.SQLITE_DONE, lib.SQLITE_ROW:
		default:
			err = c.conn.errstr(rc)
		}
		if err2 := c.conn.finalize(pstmt); err2 != nil && err == nil {
			err = err2
		}
		if err != nil {
			return nil, err
		}

		return c, nil
	}

	c.columns = make([]string, n)
	for i := range c.columns {
		c.columns[i] = c.conn.columnName(pstmt, i)
	}
	c.pstmt = pstmt
	c.state = StatePrepared
	c.conn.live[c] = struct{}{}
	c.conn.log.DebugNs(log.NsCursor, "prepared", log.KV{"query": query, "columns": n})
	return c, nil
}

// FetchAll steps the prepared statement to completion and returns every
// row. The statement is finalized and c returns to StateIdle, on success as
// well as on error.
//
// FetchAll on a cursor in StateIdle fails with ErrUsage.
func (c *Cursor) FetchAll() (Rows, error) {
	if c.state != StatePrepared {
		return nil, usageError("no statement to fetch from")
	}

	rows := Rows{}
	for {
		row, ok, err := c.next()
		if err != nil {
			return nil, err
		}

		if !ok {
			return rows, nil
		}

		rows = append(rows, row)
	}
}

// FetchOne steps the prepared statement once. It reports false when the
// statement is exhausted, in which case it is finalized and c returns to
// StateIdle.
func (c *Cursor) FetchOne() (Row, bool, error) {
	if c.state != StatePrepared {
		return Row{}, false, usageError("no statement to fetch from")
	}

	return c.next()
}

func (c *Cursor) next() (Row, bool, error) {
	switch rc := c.conn.step(c.pstmt); rc {
	case lib.SQLITE_ROW:
		row, err := c.materialize()
		if err != nil {
			c.abort()
			return Row{}, false, err
		}

		return row, true, nil
	case lib.SQLITE_DONE:
		return Row{}, false, c.Finish()
	default:
		err := engineError(rc, fmt.Sprintf("unhandled status: %d: %s", rc, c.conn.errmsg()))
		c.abort()
		return Row{}, false, err
	}
}

// materialize copies the current result row out of the statement.
func (c *Cursor) materialize() (Row, error) {
	values := make([]Value, c.conn.columnCount(c.pstmt))
	for i := range values {
		v, err := newValue(c.conn.engine, c.conn.columnValue(c.pstmt, i))
		if err != nil {
			return Row{}, err
		}

		values[i] = v
	}
	return Row{values: values}, nil
}

// abort finalizes the statement after an error that is already being
// returned to the caller.
func (c *Cursor) abort() {
	if err := c.Finish(); err != nil {
		c.conn.log.WarnNs(log.NsCursor, "finalize after error", log.KV{"error": err.Error()})
	}
}

// Finish finalizes the statement held by c, if any, and returns c to
// StateIdle. The engine releases the statement even when it reports an
// error, so c is idle afterwards either way.
//
// https://www.sqlite.org/c3ref/finalize.html
func (c *Cursor) Finish() error {
	if c.state != StatePrepared {
		return nil
	}

	pstmt := c.pstmt
	c.pstmt = 0
	c.state = StateIdle
	delete(c.conn.live, c)

	err := c.conn.finalize(pstmt)
	c.conn.log.DebugNs(log.NsCursor, "finalized", log.KV{"failed": err != nil})
	return err
}

// Close releases the statement held by c. It is Finish under the name
// expected by defer statements and io.Closer.
func (c *Cursor) Close() error {
	return c.Finish()
}

// Copyright 2026 The Sqlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sqlite

import "fmt"

// Row is one result row. Its width is the column count of the statement
// at fetch time.
type Row struct {
	values []Value
}

// Len returns the number of columns of r.
func (r Row) Len() int { return len(r.values) }

// At returns the value of column i. An i outside [0, r.Len()) fails with
// ErrIndexRange.
func (r Row) At(i int) (Value, error) {
	if i < 0 || i >= len(r.values) {
		return Value{}, &Error{kind: KindIndex, msg: fmt.Sprintf("column index out of range: %d of %d", i, len(r.values))}
	}

	return r.values[i], nil
}

// Values returns a copy of the values of r.
func (r Row) Values() []Value {
	return append([]Value(nil), r.values...)
}

// Rows is a result set in fetch order.
type Rows []Row

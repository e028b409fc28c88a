// Copyright 2026 The Sqlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sqlite

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/orsinium-labs/enum"
	lib "modernc.org/sqlite/lib"
)

// Dtype is the dynamic type the engine assigns to a value.
//
// https://www.sqlite.org/c3ref/c_blob.html
type Dtype enum.Member[string]

var (
	DtypeInteger = Dtype{Value: "INTEGER"}
	DtypeFloat   = Dtype{Value: "FLOAT"}
	DtypeText    = Dtype{Value: "TEXT"}
	DtypeBlob    = Dtype{Value: "BLOB"}
	DtypeNull    = Dtype{Value: "NULL"}

	Dtypes = enum.New(DtypeInteger, DtypeFloat, DtypeText, DtypeBlob, DtypeNull)
)

// ParseDtype returns the Dtype named s, ignoring case.
func ParseDtype(s string) (Dtype, bool) {
	d := Dtypes.Parse(strings.ToUpper(s))
	if d == nil {
		return Dtype{}, false
	}

	return *d, true
}

func dtypeOf(code int32) Dtype {
	switch code {
	case lib.SQLITE_INTEGER:
		return DtypeInteger
	case lib.SQLITE_FLOAT:
		return DtypeFloat
	case lib.SQLITE_TEXT:
		return DtypeText
	case lib.SQLITE_BLOB:
		return DtypeBlob
	case lib.SQLITE_NULL:
		return DtypeNull
	default:
		return Dtype{Value: fmt.Sprintf("UNKNOWN(%d)", code)}
	}
}

// Value is one column value of a Row. It is a copy owned by the Row and
// stays valid after the statement that produced it is finalized.
//
// The accessors return the engine's own conversions of the value, taken
// when the row was fetched. They do not check the Dtype.
type Value struct {
	dtype Dtype
	i     int64
	f     float64
	s     string
}

// newValue duplicates the unprotected value pval, reads every
// representation and then the type from the copy and frees it again.
// The numeric type must come last: it converts numeric looking text in
// place, which would rewrite the text representation.
func newValue(e *engine, pval uintptr) (Value, error) {
	p := e.valueDup(pval)
	if p == 0 {
		return Value{}, engineError(lib.SQLITE_NOMEM, "cannot duplicate column value")
	}

	defer e.valueFree(p)

	v := Value{
		i: e.valueInt64(p),
		f: e.valueDouble(p),
		s: e.valueText(p),
	}
	v.dtype = dtypeOf(e.valueNumericType(p))
	return v, nil
}

// Dtype returns the type of v.
func (v Value) Dtype() Dtype { return v.dtype }

// AsInteger returns v converted to an integer.
func (v Value) AsInteger() int64 { return v.i }

// AsFloat returns v converted to a float.
func (v Value) AsFloat() float64 { return v.f }

// AsText returns v converted to text. NULL converts to "".
func (v Value) AsText() string { return v.s }

// IsNull reports whether v is NULL.
func (v Value) IsNull() bool { return v.dtype == DtypeNull }

// Render formats v according to its Dtype. NULL renders as "NULL". Values
// of any other Dtype than INTEGER, FLOAT, TEXT and NULL fail with
// ErrNotImplemented.
func (v Value) Render() (string, error) {
	switch v.dtype {
	case DtypeInteger:
		return strconv.FormatInt(v.i, 10), nil
	case DtypeFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64), nil
	case DtypeText:
		return v.s, nil
	case DtypeNull:
		return "NULL", nil
	default:
		return "", &Error{kind: KindNotImplemented, msg: fmt.Sprintf("rendering of %s values", v.dtype.Value)}
	}
}

// String implements fmt.Stringer. Values Render rejects print as their
// Dtype in angle brackets.
func (v Value) String() string {
	s, err := v.Render()
	if err != nil {
		return "<" + v.dtype.Value + ">"
	}

	return s
}

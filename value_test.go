// Copyright 2026 The Sqlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sqlite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fetchRow(t *testing.T, query string) Row {
	rows, err := must(openTemp(t).Cursor().Execute(query, nil)).FetchAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	return rows[0]
}

func TestRowAt(t *testing.T) {
	row := fetchRow(t, "select 1")

	v, err := row.At(0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.AsInteger())

	for _, i := range []int{1, -1, 100} {
		_, err = row.At(i)
		require.Error(t, err, i)
		assert.ErrorIs(t, err, ErrIndexRange)
		assert.Contains(t, err.Error(), "column index out of range")
	}
}

func TestRowValuesIsCopy(t *testing.T) {
	row := fetchRow(t, "select 'a', 'b'")
	values := row.Values()
	values[0] = Value{}

	v, err := row.At(0)
	require.NoError(t, err)
	assert.Equal(t, "a", v.AsText())
}

func TestValueCoercion(t *testing.T) {
	row := fetchRow(t, "select '12abc', 3.75, 42, NULL")
	v := row.Values()

	// Text is not validated against the requested representation.
	assert.Equal(t, DtypeText, v[0].Dtype())
	assert.Equal(t, int64(12), v[0].AsInteger())
	assert.Equal(t, 12.0, v[0].AsFloat())

	assert.Equal(t, int64(3), v[1].AsInteger())
	assert.Equal(t, "3.75", v[1].AsText())

	assert.Equal(t, 42.0, v[2].AsFloat())
	assert.Equal(t, "42", v[2].AsText())

	assert.Equal(t, int64(0), v[3].AsInteger())
	assert.Equal(t, "", v[3].AsText())
}

func TestValueNumericAffinity(t *testing.T) {
	row := fetchRow(t, "select '7', '2.5'")
	v := row.Values()
	assert.Equal(t, DtypeInteger, v[0].Dtype())
	assert.Equal(t, DtypeFloat, v[1].Dtype())

	t.Run("TextKept", func(t *testing.T) {
		cur := openTemp(t).Cursor()
		mustExec(t, cur, "create table t(s text)")
		mustExec(t, cur, "insert into t values('007'), ('1e3'), (' 5'), ('2.50')")

		rows, err := must(cur.Execute("select s, typeof(s) from t order by rowid", nil)).FetchAll()
		require.NoError(t, err)
		require.Len(t, rows, 4)

		for i, tc := range []struct {
			text  string
			dtype Dtype
			i     int64
			f     float64
		}{
			{"007", DtypeInteger, 7, 7},
			{"1e3", DtypeFloat, 1, 1000},
			{" 5", DtypeInteger, 5, 5},
			{"2.50", DtypeFloat, 2, 2.5},
		} {
			v := rows[i].Values()
			assert.Equal(t, "text", v[1].AsText(), tc.text)
			assert.Equal(t, tc.text, v[0].AsText())
			assert.Equal(t, tc.dtype, v[0].Dtype(), tc.text)
			assert.Equal(t, tc.i, v[0].AsInteger(), tc.text)
			assert.Equal(t, tc.f, v[0].AsFloat(), tc.text)
		}
	})
}

func TestValueRender(t *testing.T) {
	t.Run("Supported", func(t *testing.T) {
		row := fetchRow(t, "select -5, 0.1, 'hello', NULL")
		want := []string{"-5", "0.1", "hello", "NULL"}
		for i, v := range row.Values() {
			s, err := v.Render()
			require.NoError(t, err)
			assert.Equal(t, want[i], s)
			assert.Equal(t, want[i], v.String())
		}
	})

	t.Run("Blob", func(t *testing.T) {
		v, err := fetchRow(t, "select x'00ff'").At(0)
		require.NoError(t, err)
		assert.Equal(t, DtypeBlob, v.Dtype())
		assert.Equal(t, "\x00\xff", v.AsText())

		_, err = v.Render()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotImplemented)
		assert.Equal(t, "<BLOB>", v.String())
	})

	t.Run("Zero", func(t *testing.T) {
		_, err := Value{}.Render()
		assert.ErrorIs(t, err, ErrNotImplemented)
	})
}

func TestParseDtype(t *testing.T) {
	for _, d := range Dtypes.Members() {
		got, ok := ParseDtype(d.Value)
		assert.True(t, ok)
		assert.Equal(t, d, got)
	}

	got, ok := ParseDtype("float")
	assert.True(t, ok)
	assert.Equal(t, DtypeFloat, got)

	_, ok = ParseDtype("decimal")
	assert.False(t, ok)
}

func TestError(t *testing.T) {
	err := usageError("unfinished statement")
	assert.Equal(t, "sqlite: unfinished statement", err.Error())
	assert.ErrorIs(t, err, ErrUsage)
	assert.False(t, errors.Is(err, ErrEngine))

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, KindUsage, e.Kind())
	assert.Zero(t, e.Code())
	assert.True(t, ErrorKinds.Contains(e.Kind()))

	assert.Equal(t, "sqlite: index error", ErrIndexRange.Error())
	assert.False(t, errors.Is(ErrUsage, err))
}

func TestOpenFlagString(t *testing.T) {
	assert.Equal(t, "READWRITE|CREATE", OpenDefault.String())
	assert.Equal(t, "READONLY|URI", (OpenReadOnly | OpenURI).String())
	assert.Equal(t, "0", OpenFlag(0).String())
	assert.True(t, OpenDefault.Has(OpenCreate))
	assert.False(t, OpenDefault.Has(OpenReadOnly))
}

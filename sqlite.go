// Copyright 2026 The Sqlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sqlite

import (
	"fmt"
	"unsafe"

	"modernc.org/libc"
	"modernc.org/libc/sys/types"
	"modernc.org/mathutil"
	lib "modernc.org/sqlite/lib"
)

const ptrSize = mathutil.UintPtrBits / 8

func readPtr(p uintptr) uintptr { return *(*uintptr)(unsafe.Pointer(p)) }

// engine is the raw boundary to the SQLite C API. It owns the libc thread
// state every call runs on and the sqlite3* handle, if any.
type engine struct {
	tls *libc.TLS
	db  uintptr
}

func newEngine() *engine { return &engine{tls: libc.NewTLS()} }

func (e *engine) String() string {
	return fmt.Sprintf("&%T@%p{tls: %p, db: %#x}", *e, e, e.tls, e.db)
}

func (e *engine) release() {
	if e.tls != nil {
		e.tls.Close()
		e.tls = nil
	}
}

// void *malloc(size_t);
func (e *engine) malloc(n int) (uintptr, error) {
	if p := libc.Xmalloc(e.tls, types.Size_t(n)); p != 0 || n == 0 {
		return p, nil
	}

	return 0, engineError(lib.SQLITE_NOMEM, fmt.Sprintf("cannot allocate %d bytes of memory", n))
}

// void free(void*);
func (e *engine) free(p uintptr) {
	if p != 0 {
		libc.Xfree(e.tls, p)
	}
}

func (e *engine) cString(s string) (uintptr, error) {
	n := len(s)
	p, err := e.malloc(n + 1)
	if err != nil {
		return 0, err
	}

	b := unsafe.Slice((*byte)(unsafe.Pointer(p)), n+1)
	copy(b, s)
	b[n] = 0
	return p, nil
}

// int sqlite3_open_v2(
//   const char *filename,   /* Database filename (UTF-8) */
//   sqlite3 **ppDb,         /* OUT: SQLite db handle */
//   int flags,              /* Flags */
//   const char *zVfs        /* Name of VFS module to use */
// );
func (e *engine) openV2(name string, flags int32) error {
	filename, err := e.cString(name)
	if err != nil {
		return err
	}

	defer e.free(filename)

	ppdb, err := e.malloc(int(ptrSize))
	if err != nil {
		return err
	}

	defer e.free(ppdb)

	*(*uintptr)(unsafe.Pointer(ppdb)) = 0
	rc := lib.Xsqlite3_open_v2(e.tls, filename, ppdb, flags, 0)
	e.db = readPtr(ppdb)
	if rc != lib.SQLITE_OK {
		// A handle is allocated even when the open fails, unless the
		// engine ran out of memory.
		err := e.errstr(rc)
		if e.db != 0 {
			lib.Xsqlite3_close(e.tls, e.db)
			e.db = 0
		}
		return err
	}

	return nil
}

// int sqlite3_close(sqlite3*);
func (e *engine) closeDB() error {
	if rc := lib.Xsqlite3_close(e.tls, e.db); rc != lib.SQLITE_OK {
		return e.errstr(rc)
	}

	e.db = 0
	return nil
}

// int sqlite3_extended_result_codes(sqlite3*, int onoff);
func (e *engine) extendedResultCodes(on bool) error {
	var v int32
	if on {
		v = 1
	}
	if rc := lib.Xsqlite3_extended_result_codes(e.tls, e.db, v); rc != lib.SQLITE_OK {
		return e.errstr(rc)
	}

	return nil
}

// const char *sqlite3_errmsg(sqlite3*);
func (e *engine) errmsg() string {
	if e.db == 0 {
		return ""
	}

	return libc.GoString(lib.Xsqlite3_errmsg(e.tls, e.db))
}

// const char *sqlite3_errstr(int);
func (e *engine) errstr(rc int32) error {
	str := libc.GoString(lib.Xsqlite3_errstr(e.tls, rc))
	switch msg := e.errmsg(); {
	case msg == "" || msg == str:
		return engineError(rc, fmt.Sprintf("%s (%v)", str, rc))
	default:
		return engineError(rc, fmt.Sprintf("%s: %s (%v)", str, msg, rc))
	}
}

// int sqlite3_prepare_v2(
//   sqlite3 *db,            /* Database handle */
//   const char *zSql,       /* SQL statement, UTF-8 encoded */
//   int nByte,              /* Maximum length of zSql in bytes. */
//   sqlite3_stmt **ppStmt,  /* OUT: Statement handle */
//   const char **pzTail     /* OUT: Pointer to unused portion of zSql */
// );
//
// Only the first statement of sql is compiled. A zero handle with a nil
// error means sql held no statement at all.
func (e *engine) prepareV2(sql string) (uintptr, error) {
	psql, err := e.cString(sql)
	if err != nil {
		return 0, err
	}

	defer e.free(psql)

	ppstmt, err := e.malloc(int(ptrSize))
	if err != nil {
		return 0, err
	}

	defer e.free(ppstmt)

	*(*uintptr)(unsafe.Pointer(ppstmt)) = 0
	if rc := lib.Xsqlite3_prepare_v2(e.tls, e.db, psql, -1, ppstmt, 0); rc != lib.SQLITE_OK {
		return 0, e.errstr(rc)
	}

	return readPtr(ppstmt), nil
}

// int sqlite3_step(sqlite3_stmt*);
func (e *engine) step(pstmt uintptr) int32 {
	return lib.Xsqlite3_step(e.tls, pstmt)
}

// int sqlite3_finalize(sqlite3_stmt *pStmt);
func (e *engine) finalize(pstmt uintptr) error {
	if rc := lib.Xsqlite3_finalize(e.tls, pstmt); rc != lib.SQLITE_OK {
		return e.errstr(rc)
	}

	return nil
}

// int sqlite3_column_count(sqlite3_stmt *pStmt);
func (e *engine) columnCount(pstmt uintptr) int {
	return int(lib.Xsqlite3_column_count(e.tls, pstmt))
}

// const char *sqlite3_column_name(sqlite3_stmt*, int N);
func (e *engine) columnName(pstmt uintptr, n int) string {
	return libc.GoString(lib.Xsqlite3_column_name(e.tls, pstmt, int32(n)))
}

// sqlite3_value *sqlite3_column_value(sqlite3_stmt*, int iCol);
func (e *engine) columnValue(pstmt uintptr, iCol int) uintptr {
	return lib.Xsqlite3_column_value(e.tls, pstmt, int32(iCol))
}

// sqlite3_value *sqlite3_value_dup(const sqlite3_value*);
func (e *engine) valueDup(pval uintptr) uintptr {
	return lib.Xsqlite3_value_dup(e.tls, pval)
}

// void sqlite3_value_free(sqlite3_value*);
func (e *engine) valueFree(pval uintptr) {
	lib.Xsqlite3_value_free(e.tls, pval)
}

// int sqlite3_value_numeric_type(sqlite3_value*);
func (e *engine) valueNumericType(pval uintptr) int32 {
	return lib.Xsqlite3_value_numeric_type(e.tls, pval)
}

// sqlite3_int64 sqlite3_value_int64(sqlite3_value*);
func (e *engine) valueInt64(pval uintptr) int64 {
	return int64(lib.Xsqlite3_value_int64(e.tls, pval))
}

// double sqlite3_value_double(sqlite3_value*);
func (e *engine) valueDouble(pval uintptr) float64 {
	return float64(lib.Xsqlite3_value_double(e.tls, pval))
}

// const unsigned char *sqlite3_value_text(sqlite3_value*);
func (e *engine) valueText(pval uintptr) string {
	p := lib.Xsqlite3_value_text(e.tls, pval)
	if p == 0 {
		return ""
	}

	// int sqlite3_value_bytes(sqlite3_value*);
	n := lib.Xsqlite3_value_bytes(e.tls, pval)
	return string(libc.GoBytes(p, int(n)))
}

// int sqlite3_changes(sqlite3*);
func (e *engine) changes() int64 {
	return int64(lib.Xsqlite3_changes(e.tls, e.db))
}

// sqlite3_int64 sqlite3_last_insert_rowid(sqlite3*);
func (e *engine) lastInsertRowID() int64 {
	return int64(lib.Xsqlite3_last_insert_rowid(e.tls, e.db))
}

// Complete reports whether sql ends with a complete SQL statement, that is a
// semicolon outside of string literals, identifiers, comments and trigger
// bodies.
//
// https://www.sqlite.org/c3ref/complete.html
func Complete(sql string) bool {
	e := newEngine()
	defer e.release()

	psql, err := e.cString(sql)
	if err != nil {
		return false
	}

	defer e.free(psql)

	// int sqlite3_complete(const char *sql);
	return lib.Xsqlite3_complete(e.tls, psql) != 0
}

// LibVersion returns the version of the linked SQLite engine.
//
// https://www.sqlite.org/c3ref/libversion.html
func LibVersion() string {
	tls := libc.NewTLS()
	defer tls.Close()

	return libc.GoString(lib.Xsqlite3_libversion(tls))
}

// Copyright 2026 The Sqlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sqlite

import (
	"strings"

	lib "modernc.org/sqlite/lib"
)

// OpenFlag is the bitset passed to sqlite3_open_v2.
//
// https://www.sqlite.org/c3ref/c_open_autoproxy.html
type OpenFlag int32

const (
	OpenReadOnly     = OpenFlag(lib.SQLITE_OPEN_READONLY)
	OpenReadWrite    = OpenFlag(lib.SQLITE_OPEN_READWRITE)
	OpenCreate       = OpenFlag(lib.SQLITE_OPEN_CREATE)
	OpenURI          = OpenFlag(lib.SQLITE_OPEN_URI)
	OpenMemory       = OpenFlag(lib.SQLITE_OPEN_MEMORY)
	OpenNoMutex      = OpenFlag(lib.SQLITE_OPEN_NOMUTEX)
	OpenFullMutex    = OpenFlag(lib.SQLITE_OPEN_FULLMUTEX)
	OpenSharedCache  = OpenFlag(lib.SQLITE_OPEN_SHAREDCACHE)
	OpenPrivateCache = OpenFlag(lib.SQLITE_OPEN_PRIVATECACHE)
	OpenNoFollow     = OpenFlag(lib.SQLITE_OPEN_NOFOLLOW)

	// OpenDefault opens the database for reading and writing, creating it
	// if it does not exist.
	OpenDefault = OpenReadWrite | OpenCreate
)

var openFlagNames = []struct {
	flag OpenFlag
	name string
}{
	{OpenReadOnly, "READONLY"},
	{OpenReadWrite, "READWRITE"},
	{OpenCreate, "CREATE"},
	{OpenURI, "URI"},
	{OpenMemory, "MEMORY"},
	{OpenNoMutex, "NOMUTEX"},
	{OpenFullMutex, "FULLMUTEX"},
	{OpenSharedCache, "SHAREDCACHE"},
	{OpenPrivateCache, "PRIVATECACHE"},
	{OpenNoFollow, "NOFOLLOW"},
}

// Has reports whether all bits of o are set in f.
func (f OpenFlag) Has(o OpenFlag) bool { return f&o == o }

// String lists the names of the set flags joined by '|'. Bits without a name
// are dropped.
func (f OpenFlag) String() string {
	var a []string
	for _, v := range openFlagNames {
		if f.Has(v.flag) {
			a = append(a, v.name)
		}
	}
	if len(a) == 0 {
		return "0"
	}

	return strings.Join(a, "|")
}

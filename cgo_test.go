// Copyright 2026 The Sqlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build cgo

package sqlite

import (
	_ "github.com/mattn/go-sqlite3"
)

func init() {
	crossDrivers = append(crossDrivers, "sqlite3")
}

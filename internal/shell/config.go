// Copyright 2026 The Sqlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"fmt"

	"github.com/alexflint/go-arg"
	sqlite "github.com/glebarez/sqlite-cursor"
)

// Config represents the configuration for sqlitecur.
type Config struct {
	Database string `arg:"positional" default:":memory:" help:"path of the database file"`
	ReadOnly bool   `arg:"--readonly" help:"open the database read-only"`
	NoCreate bool   `arg:"--no-create" help:"fail if the database file does not exist"`
	Command  string `arg:"-c,--command" help:"execute one statement, print its result and exit"`
	JSONLog  bool   `arg:"--json-log" help:"write debug logs as JSON to stderr"`
}

func (Config) Version() string {
	return fmt.Sprintf("sqlitecur (SQLite %s)", sqlite.LibVersion())
}

func (Config) Description() string {
	return "sqlitecur runs SQL statements against a SQLite database file."
}

// Flags returns the open flags selected by c.
func (c Config) Flags() sqlite.OpenFlag {
	switch {
	case c.ReadOnly:
		return sqlite.OpenReadOnly
	case c.NoCreate:
		return sqlite.OpenReadWrite
	default:
		return sqlite.OpenDefault
	}
}

func newParser(cfg *Config) (*arg.Parser, error) {
	return arg.NewParser(arg.Config{Program: "sqlitecur"}, cfg)
}

// Parse parses the command line arguments, without the program name.
func Parse(args []string) (Config, error) {
	cfg := Config{}
	parser, err := newParser(&cfg)
	if err != nil {
		return Config{}, err
	}

	if err := parser.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// MustParse parses the command line arguments including the program name. It
// prints usage and exits the program on -h, --version and invalid arguments.
func MustParse(args []string) Config {
	cfg := Config{}
	parser, err := newParser(&cfg)
	if err != nil {
		panic(err)
	}

	parser.MustParse(args[1:])
	return cfg
}

// Copyright 2026 The Sqlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shell implements sqlitecur, an interactive front end to the
// cursor API.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	sqlite "github.com/glebarez/sqlite-cursor"
	"github.com/glebarez/sqlite-cursor/internal/log"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
)

// errQuit is returned by Feed when the user asked to leave.
var errQuit = errors.New("quit")

// Shell runs statements typed by the user on one connection.
type Shell struct {
	conn    *sqlite.Connection
	cur     *sqlite.Cursor
	out     io.Writer
	log     log.Logger
	pending strings.Builder
}

// New returns a Shell printing to out.
func New(conn *sqlite.Connection, out io.Writer, logger log.Logger) *Shell {
	return &Shell{
		conn: conn,
		cur:  conn.Cursor(),
		out:  out,
		log:  logger,
	}
}

// Run runs sqlitecur with the given command line arguments, the first of
// which is the program name.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	conf := MustParse(args)

	logger := log.Discard()
	if conf.JSONLog {
		logger = log.NewDebugLogger(stderr)
	}

	conn, err := sqlite.Open(conf.Database, conf.Flags(), sqlite.WithLogger(logger.Slog()))
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", conf.Database, err)
	}

	defer func() {
		if err2 := conn.Close(); err2 != nil && err == nil {
			err = err2
		}
	}()

	logger.InfoNs(log.NsShell, "session started", log.KV{"database": conf.Database, "flags": conf.Flags().String()})
	sh := New(conn, stdout, logger)
	if conf.Command != "" {
		return sh.Command(conf.Command)
	}

	if stdin == nil {
		return nil
	}

	if f, ok := stdin.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return sh.Interactive()
	}

	return sh.Script(stdin)
}

// Command executes every statement of src in order. It stops at the first
// failing statement and returns its error.
func (s *Shell) Command(src string) error {
	stmts, rest := splitStatements(src)
	if rest = strings.TrimSpace(rest); rest != "" {
		stmts = append(stmts, rest)
	}

	for _, stmt := range stmts {
		if err := s.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Script runs every statement read from r.
func (s *Shell) Script(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		if err := s.Feed(scanner.Text()); err != nil {
			if err == errQuit {
				return nil
			}
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	return s.Flush()
}

// Interactive reads statements from the terminal until .quit, EOF or
// CTRL+C.
func (s *Shell) Interactive() error {
	fmt.Fprintf(s.out, "sqlitecur, SQLite %s, database %s\n", sqlite.LibVersion(), s.conn.Path())
	fmt.Fprintln(s.out, `Enter ".help" for usage hints and ".quit" or "CTRL+C" to quit`)

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(dotCompleter)

	historyPath := filepath.Join(os.TempDir(), ".sqlitecur_history")
	if f, err := os.Open(historyPath); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	defer func() {
		if f, err := os.Create(historyPath); err == nil {
			_, _ = line.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		prompt := "sqlitecur> "
		if s.pending.Len() != 0 {
			prompt = "       ...> "
		}

		input, err := line.Prompt(prompt)
		if err == liner.ErrPromptAborted || err == io.EOF {
			fmt.Fprintln(s.out)
			return nil
		}

		if err != nil {
			return err
		}

		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}

		if err := s.Feed(input); err != nil {
			if err == errQuit {
				return nil
			}
			return err
		}
	}
}

// Feed takes one line of input. Dot commands are run at once. SQL is
// buffered until it forms complete statements, which are then executed one
// by one. Statement errors are printed, not returned.
func (s *Shell) Feed(line string) error {
	if s.pending.Len() == 0 {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			return nil
		}

		if strings.HasPrefix(trimmed, ".") {
			return s.dot(trimmed)
		}
	}

	s.pending.WriteString(line)
	s.pending.WriteByte('\n')
	stmts, rest := splitStatements(s.pending.String())
	s.pending.Reset()
	s.pending.WriteString(rest)

	for _, stmt := range stmts {
		if err := s.Exec(stmt); err != nil {
			s.printError(err)
		}
	}
	return nil
}

// Flush executes whatever is left in the buffer, even without a final
// semicolon.
func (s *Shell) Flush() error {
	rest := strings.TrimSpace(s.pending.String())
	s.pending.Reset()
	if rest == "" {
		return nil
	}

	if err := s.Exec(rest); err != nil {
		s.printError(err)
	}
	return nil
}

// Exec executes one statement and prints its result.
func (s *Shell) Exec(query string) error {
	s.log.DebugNs(log.NsShell, "exec", log.KV{"query": query})
	if _, err := s.cur.Execute(query, nil); err != nil {
		return err
	}

	if s.cur.State() != sqlite.StatePrepared {
		s.renderWrite()
		return nil
	}

	rows, err := s.cur.FetchAll()
	if err != nil {
		return err
	}

	s.renderRows(s.cur.Columns(), rows)
	return nil
}

func (s *Shell) dot(cmd string) error {
	switch fields := strings.Fields(cmd); fields[0] {
	case ".quit", ".exit":
		return errQuit
	case ".help":
		s.printHelp()
	case ".tables":
		if err := s.Exec(`SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`); err != nil {
			s.printError(err)
		}
	case ".version":
		fmt.Fprintf(s.out, "SQLite %s\n", sqlite.LibVersion())
	default:
		fmt.Fprintf(s.out, "Unknown command %s, type .help for usage hints\n", fields[0])
	}
	return nil
}

// splitStatements cuts src after every semicolon that ends a complete
// statement and returns the statements and the incomplete remainder.
func splitStatements(src string) (stmts []string, rest string) {
	start := 0
	for i := 0; i < len(src); i++ {
		if src[i] != ';' || !sqlite.Complete(src[start:i+1]) {
			continue
		}

		if stmt := strings.TrimSpace(src[start : i+1]); stmt != ";" {
			stmts = append(stmts, stmt)
		}
		start = i + 1
	}

	rest = src[start:]
	if strings.TrimSpace(rest) == "" {
		rest = ""
	}
	return stmts, rest
}

// Copyright 2026 The Sqlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	sqlite "github.com/glebarez/sqlite-cursor"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var dotCommands = []struct {
	name, help string
}{
	{".help", "show this message"},
	{".tables", "list the tables of the database"},
	{".version", "show the SQLite version"},
	{".quit", "exit sqlitecur (also .exit)"},
}

// dimmedColor returns a dimmed *color.Color to print secondary information.
func dimmedColor() *color.Color {
	return color.RGB(128, 128, 128)
}

// newTableWriter returns a table.Writer with the sqlitecur styles. Colors
// follow color.NoColor.
func newTableWriter() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Header = text.FormatDefault
	if !color.NoColor {
		tw.Style().Color.Header = text.Colors{text.FgCyan, text.Bold}
		tw.Style().Color.Footer = text.Colors{text.FgCyan, text.Bold}
	}

	return tw
}

func (s *Shell) renderRows(columns []string, rows sqlite.Rows) {
	tw := newTableWriter()
	header := table.Row{}
	for _, col := range columns {
		header = append(header, col)
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, 0, row.Len())
		for _, v := range row.Values() {
			r = append(r, v.String())
		}
		tw.AppendRow(r)
	}

	fmt.Fprintln(s.out, tw.Render())
	noun := "rows"
	if len(rows) == 1 {
		noun = "row"
	}
	dimmedColor().Fprintf(s.out, "%s %s\n", humanize.Comma(int64(len(rows))), noun)
}

func (s *Shell) renderWrite() {
	tw := newTableWriter()
	tw.AppendHeader(table.Row{"-", "Rows Affected", "Last Insert ID"})
	tw.AppendRow(table.Row{"OK", humanize.Comma(s.conn.Changes()), s.conn.LastInsertRowID()})
	fmt.Fprintln(s.out, tw.Render())
}

func (s *Shell) printError(err error) {
	color.New(color.FgRed).Fprintf(s.out, "Error: %s\n", err)
}

func (s *Shell) printHelp() {
	tw := newTableWriter()
	tw.AppendHeader(table.Row{"Command", "Description"})
	for _, cmd := range dotCommands {
		tw.AppendRow(table.Row{cmd.name, cmd.help})
	}
	fmt.Fprintln(s.out, tw.Render())
	dimmedColor().Fprintln(s.out, "Anything else is SQL, executed once terminated by a semicolon.")
}

// dotCompleter completes dot commands for liner.
func dotCompleter(line string) (c []string) {
	for _, cmd := range dotCommands {
		if strings.HasPrefix(cmd.name, strings.ToLower(line)) {
			c = append(c, cmd.name)
		}
	}
	return c
}

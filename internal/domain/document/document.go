// Package document defines the raw inputs handed to the extraction
// pipeline by an external text/table recovery backend.
package document

import "strings"

// Table is a rectangular grid of string cells recovered from a
// document, with a header row. Backends may return malformed grids;
// consumers must tolerate ragged or empty rows.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Cell returns the trimmed cell at the given column, or "" when the row
// is shorter than the header set.
func (t Table) Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// RawDocument carries everything recovered from one source document.
// It is consumed exactly once per extraction run and owned by that run.
type RawDocument struct {
	// Name is the source filename or an opaque id, used only for
	// diagnostics.
	Name string

	// Text is the recovered full text. May be empty.
	Text string

	// Tables are the recovered structured tables, zero or more.
	Tables []Table
}

// Empty reports whether the backend recovered nothing usable.
func (d RawDocument) Empty() bool {
	return strings.TrimSpace(d.Text) == "" && len(d.Tables) == 0
}

// Package ingest materializes RawDocuments from already-extracted
// artifacts. The PDF-to-text/table backends themselves are external
// collaborators; this package only adapts their output files — plain
// text (pdftotext -layout) and XLSX workbooks of recovered tables —
// into the pipeline's input shape.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/FACorreiaa/po-import/internal/domain/document"
)

// FromText wraps an already-recovered text blob.
func FromText(name, text string) document.RawDocument {
	return document.RawDocument{Name: name, Text: text}
}

// FromTextFile reads a text extraction artifact from disk.
func FromTextFile(path string) (document.RawDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return document.RawDocument{}, fmt.Errorf("read text artifact %s: %w", path, err)
	}
	return FromText(filepath.Base(path), string(data)), nil
}

// ScanDir loads every supported artifact in a directory (non-recursive)
// in name order. Unsupported files are skipped; unreadable supported
// files fail the scan.
func ScanDir(dir string) ([]document.RawDocument, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var docs []document.RawDocument
	for _, name := range names {
		path := filepath.Join(dir, name)
		switch strings.ToLower(filepath.Ext(name)) {
		case ".txt":
			doc, err := FromTextFile(path)
			if err != nil {
				return nil, err
			}
			docs = append(docs, doc)
		case ".xlsx":
			doc, err := FromWorkbookFile(path)
			if err != nil {
				return nil, err
			}
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

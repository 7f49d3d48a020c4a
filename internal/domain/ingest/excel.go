package ingest

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/FACorreiaa/po-import/internal/domain/document"
)

// FromWorkbook reads an XLSX workbook whose sheets are recovered
// tables: first row headers, remaining rows data. Empty sheets are
// skipped; a workbook with no usable sheet still yields a valid (empty)
// document — the pipeline reports it as undetected, not as an error.
func FromWorkbook(name string, r io.Reader) (document.RawDocument, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return document.RawDocument{}, fmt.Errorf("open workbook %s: %w", name, err)
	}
	defer f.Close()
	return workbookDocument(name, f)
}

// FromWorkbookFile reads an XLSX artifact from disk.
func FromWorkbookFile(path string) (document.RawDocument, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return document.RawDocument{}, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()
	return workbookDocument(filepath.Base(path), f)
}

func workbookDocument(name string, f *excelize.File) (document.RawDocument, error) {
	doc := document.RawDocument{Name: name}
	var textParts []string

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return document.RawDocument{}, fmt.Errorf("read sheet %s of %s: %w", sheet, name, err)
		}
		if len(rows) < 2 {
			continue
		}

		doc.Tables = append(doc.Tables, document.Table{Headers: rows[0], Rows: rows[1:]})

		// Flatten the sheet into text too, so keyword detection and
		// header extraction see the same content the tables carry.
		for _, row := range rows {
			textParts = append(textParts, strings.Join(row, " "))
		}
	}

	doc.Text = strings.Join(textParts, "\n")
	return doc, nil
}

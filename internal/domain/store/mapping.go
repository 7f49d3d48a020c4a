// Package store resolves extracted destination text or site codes
// against a reference mapping to obtain canonical store identifiers.
package store

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
)

// MappingEntry is one row of the reference table. SiteCode is an
// optional key; Name is the canonical key; StoreID is the import
// target identifier.
type MappingEntry struct {
	SiteCode string `csv:"site_code"`
	Name     string `csv:"name"`
	StoreID  string `csv:"store_id"`
}

// Mapping is the read-only store reference table, loaded once before a
// processing run and shared across concurrent documents.
type Mapping struct {
	entries []MappingEntry

	// lowered names, aligned with entries, precomputed for the
	// containment passes.
	loweredNames []string
}

// NewMapping builds a mapping from already-parsed rows.
func NewMapping(entries []MappingEntry) *Mapping {
	m := &Mapping{entries: entries, loweredNames: make([]string, len(entries))}
	for i, e := range entries {
		m.loweredNames[i] = strings.ToLower(strings.TrimSpace(e.Name))
	}
	return m
}

// LoadCSV reads mapping rows from CSV with a site_code,name,store_id
// header (site_code optional).
func LoadCSV(r io.Reader) (*Mapping, error) {
	var entries []MappingEntry
	if err := gocsv.Unmarshal(r, &entries); err != nil {
		return nil, fmt.Errorf("parse store mapping: %w", err)
	}

	kept := entries[:0]
	for _, e := range entries {
		if strings.TrimSpace(e.Name) == "" && strings.TrimSpace(e.SiteCode) == "" {
			continue
		}
		kept = append(kept, e)
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("store mapping has no usable rows")
	}
	return NewMapping(kept), nil
}

// LoadFile reads a mapping CSV from disk.
func LoadFile(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open store mapping %s: %w", path, err)
	}
	defer f.Close()
	return LoadCSV(f)
}

// Len returns the number of mapping rows.
func (m *Mapping) Len() int { return len(m.entries) }

// Package catalog defines the data model for the audio masterlist: raw
// spreadsheet rows on the way in, normalized entries on the way out.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Column names as they appear in the published sheet header. Matching is
// exact; the sheet is the source of truth for naming.
const (
	ColID          = "ID"
	ColName        = "Name"
	ColType        = "Type"
	ColTags        = "Tags"
	ColSynopsis    = "Synopsis"
	ColDuration    = "Duration"
	ColAudioLink   = "Audio Link"
	ColWriterName  = "Writer Name"
	ColWriterLink  = "Writer Link"
	ColLargeCollab = "Large collab"
	ColScriptLink  = "Script Link"
	ColDate        = "Date"
	ColEditorName  = "Editor Name"
	ColEditorLink  = "Editor Link"
)

// MaxCollabSlots is the number of collab partner column pairs in the sheet.
const MaxCollabSlots = 3

// CollabNameCol returns the name column for collab partner slot i (1-based).
func CollabNameCol(i int) string {
	return fmt.Sprintf("Collab Partner %d Name", i)
}

// CollabLinkCol returns the link column for collab partner slot i (1-based).
func CollabLinkCol(i int) string {
	return fmt.Sprintf("Collab Partner %d Link", i)
}

// Row is one raw spreadsheet record, keyed by column name. Cells hold text
// exactly as decoded; columns missing from a short record are simply absent.
type Row map[string]string

// Person is a named credit (writer, editor, or collab partner).
type Person struct {
	Name string `json:"name"`
	Link string `json:"link,omitempty"`
}

// Entry is one normalized audio-drama record. Optional string fields use the
// empty string for "absent" and are omitted from the JSON document; Tags and
// Collabs are always emitted, even when empty.
type Entry struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Tags        []string `json:"tags"`
	Synopsis    string   `json:"synopsis,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	AudioLink   string   `json:"audioLink,omitempty"`
	Writer      *Person  `json:"writer,omitempty"`
	Type        string   `json:"type"`
	LargeCollab bool     `json:"largeCollab"`
	Collabs     []Person `json:"collabs"`
	ScriptLink  string   `json:"scriptLink,omitempty"`
	Date        string   `json:"date,omitempty"`
	Editor      *Person  `json:"editor,omitempty"`
}

// Catalog is the output document: every accepted entry in sheet order.
type Catalog struct {
	Audios []Entry `json:"audios"`
}

// New returns an empty catalog ready to be appended to. Audios starts
// non-nil so an empty catalog still serializes as "audios": [].
func New() *Catalog {
	return &Catalog{Audios: []Entry{}}
}

// TypeCount is one line of the per-type breakdown.
type TypeCount struct {
	Type  string
	Count int
}

// Stats are derived counts used for console reporting only; they are never
// part of the written document.
type Stats struct {
	Entries      int
	Types        []TypeCount
	LargeCollabs int
}

// Stats tallies entries per type (descending count, ties alphabetical) and
// the number of large collabs.
func (c *Catalog) Stats() Stats {
	counts := make(map[string]int)
	large := 0
	for _, e := range c.Audios {
		counts[e.Type]++
		if e.LargeCollab {
			large++
		}
	}

	types := make([]TypeCount, 0, len(counts))
	for t, n := range counts {
		types = append(types, TypeCount{Type: t, Count: n})
	}
	sort.Slice(types, func(i, j int) bool {
		if types[i].Count != types[j].Count {
			return types[i].Count > types[j].Count
		}
		return types[i].Type < types[j].Type
	})

	return Stats{Entries: len(c.Audios), Types: types, LargeCollabs: large}
}

// WriteFile serializes the catalog to path, two-space indented. HTML escaping
// is off so titles and links keep their source bytes.
func (c *Catalog) WriteFile(path string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}

// ReadFile loads a previously written catalog document.
func ReadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return &c, nil
}

// ABOUTME: Catalog container and CSV export loading
// ABOUTME: Builds the immutable ordered entry list consumed by the picker

package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Catalog is the immutable ordered list of chart entries for a session.
// It is constructed once at startup and passed by reference into the
// filter and sampler; no entry is created, edited or deleted afterwards.
type Catalog struct {
	entries []Entry
}

// New builds a catalog from a slice of entries. The slice is copied so
// later mutation of the argument cannot leak into the catalog.
func New(entries []Entry) *Catalog {
	c := &Catalog{entries: make([]Entry, len(entries))}
	copy(c.entries, entries)

	return c
}

// Entries returns the ordered entry list. Callers must treat the
// returned slice as read-only.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Len returns the number of chart entries in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// CSV column layout of the song export: title, artist, bpm, then one
// level column per tier.
const (
	colTitle = iota
	colArtist
	colBPM
	colBasic
	colAdvanced
	colExtreme
	csvColumnCount
)

// levelColumns maps each tier to its CSV column.
var levelColumns = [...]struct {
	col  int
	diff Difficulty
}{
	{colBasic, Basic},
	{colAdvanced, Advanced},
	{colExtreme, Extreme},
}

// LoadCSV reads a song catalog export and returns a catalog.
// See ParseCSV for the row handling rules.
func LoadCSV(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}

	defer func() {
		_ = file.Close() // Explicitly ignore error for read-only file
	}()

	entries, err := ParseCSV(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}

	return New(entries), nil
}

// ParseCSV parses a song catalog export. Rules, matching the upstream
// spreadsheet export quirks:
//   - the leading header row is skipped, as is any duplicate of it
//     embedded later in the file (exports are sometimes concatenated)
//   - rows with fewer than six fields are discarded
//   - each of the three level columns contributes one entry if and only
//     if it parses as a number
//
// Standard CSV quoting applies (double quotes, doubled-quote escapes).
func ParseCSV(r io.Reader) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Ragged rows are handled below, not rejected

	var entries []Entry

	var header []string

	rowNum := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum+1, err)
		}

		rowNum++

		if rowNum == 1 {
			header = record

			continue
		}

		if len(record) < csvColumnCount {
			continue
		}

		if sameRow(record, header) {
			continue
		}

		title := strings.TrimSpace(record[colTitle])
		artist := strings.TrimSpace(record[colArtist])
		bpm := strings.TrimSpace(record[colBPM])
		variant := VariantOf(title)

		for _, lc := range levelColumns {
			level, err := strconv.ParseFloat(strings.TrimSpace(record[lc.col]), 64)
			if err != nil {
				continue
			}

			entries = append(entries, Entry{
				Title:      title,
				Artist:     artist,
				BPM:        bpm,
				Difficulty: lc.diff,
				Level:      level,
				Variant:    variant,
			})
		}
	}

	return entries, nil
}

// sameRow reports whether a record repeats the leading header row.
func sameRow(record, header []string) bool {
	if len(header) == 0 || len(record) != len(header) {
		return false
	}

	for i := range record {
		if !strings.EqualFold(strings.TrimSpace(record[i]), strings.TrimSpace(header[i])) {
			return false
		}
	}

	return true
}

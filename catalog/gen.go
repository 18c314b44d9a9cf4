// ABOUTME: Generates the embedded Go song table from a CSV export
// ABOUTME: Offline companion to the picker, invoked via chartpick -convert

package catalog

import (
	"fmt"
	"io"
	"strings"
)

// WriteGoTable emits a Go source file holding the given entries as the
// embedded default table. The output replaces catalog/songs_gen.go and
// is what the picker loads at startup when no -catalog override is
// given.
func WriteGoTable(w io.Writer, entries []Entry) error {
	var b strings.Builder

	b.WriteString("// Code generated by chartpick -convert; DO NOT EDIT.\n\n")
	b.WriteString("package catalog\n\n")
	fmt.Fprintf(&b, "// defaultEntries is the embedded song table: %d chart entries.\n", len(entries))
	b.WriteString("var defaultEntries = []Entry{\n")

	for _, e := range entries {
		fmt.Fprintf(&b, "\t{Title: %q, Artist: %q, BPM: %q, Difficulty: %s, Level: %s, Variant: %d},\n",
			e.Title, e.Artist, e.BPM, difficultyIdent(e.Difficulty), levelLiteral(e.Level), e.Variant)
	}

	b.WriteString("}\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}

	return nil
}

// difficultyIdent returns the Go identifier for a tier.
func difficultyIdent(d Difficulty) string {
	switch d {
	case Basic:
		return "Basic"
	case Advanced:
		return "Advanced"
	default:
		return "Extreme"
	}
}

// levelLiteral renders a level as a Go literal following the grid:
// whole-number levels below 9 as plain integers, levels from 9.0 up
// with their tenth digit even when it is zero.
func levelLiteral(level float64) string {
	if level < 9 {
		return fmt.Sprintf("%d", int(level))
	}

	return fmt.Sprintf("%.1f", level)
}

// Default returns the catalog built from the embedded generated table.
func Default() *Catalog {
	return New(defaultEntries)
}

// ABOUTME: CSV conversion mode producing the embedded song table
// ABOUTME: Parses a catalog export and emits generated Go source

package main

import (
	"fmt"
	"os"

	"chartpick/catalog"
)

// RunConvert parses the CSV export at csvPath and writes the generated
// song table to outPath, or stdout when outPath is empty.
func RunConvert(csvPath, outPath string) error {
	f, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("failed to open CSV: %w", err)
	}
	defer f.Close()

	entries, err := catalog.ParseCSV(f)
	if err != nil {
		return fmt.Errorf("failed to parse CSV: %w", err)
	}

	if len(entries) == 0 {
		return fmt.Errorf("no songs found in %s", csvPath)
	}

	if outPath == "" {
		return catalog.WriteGoTable(os.Stdout, entries)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := catalog.WriteGoTable(out, entries); err != nil {
		out.Close()

		return fmt.Errorf("failed to write table: %w", err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	fmt.Printf("Wrote %d charts to %s\n", len(entries), outPath)

	return nil
}

// ABOUTME: Version index build mode scanning a local audio library
// ABOUTME: Reads tags and artwork from soundtrack files and writes the index TOML

package main

import (
	"fmt"

	"chartpick/catalog"
)

const defaultIndexFile = "versions.toml"

// RunIndex scans the audio library under root and writes the version
// index TOML to outPath, extracting embedded jacket art into jacketDir.
func RunIndex(root, outPath, jacketDir string) error {
	if outPath == "" {
		outPath = defaultIndexFile
	}

	fmt.Printf("Scanning library: %s\n", root)

	idx, err := catalog.ScanLibrary(root, jacketDir, true)
	if err != nil {
		return fmt.Errorf("library scan failed: %w", err)
	}

	if idx.Len() == 0 {
		return fmt.Errorf("no audio files found under %s", root)
	}

	if err := catalog.SaveVersionIndex(outPath, idx); err != nil {
		return fmt.Errorf("failed to write version index: %w", err)
	}

	fmt.Printf("Indexed %d songs to %s\n", idx.Len(), outPath)

	return nil
}

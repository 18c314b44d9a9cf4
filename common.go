// ABOUTME: Shared initialization code for all modes (TUI, pick, convert, index)
// ABOUTME: Provides catalog loading, debug log setup, and filter criteria building

package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"chartpick/catalog"
	"chartpick/config"
	"chartpick/picker"
)

var debugLog *log.Logger

// loadCatalog returns the catalog to pick from: a CSV override when a
// path is given, the embedded table otherwise.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}

	cat, err := catalog.LoadCSV(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	if cat.Len() == 0 {
		return nil, fmt.Errorf("catalog %s has no songs", path)
	}

	return cat, nil
}

// criteriaFromConfig builds filter criteria from saved config values,
// falling back to the defaults when a level field holds invalid text.
func criteriaFromConfig(cfg config.Config) picker.Criteria {
	crit := picker.DefaultCriteria()

	if v, err := picker.ParseLevel(cfg.MinLevel); err == nil {
		crit.MinLevel = v
	}

	if v, err := picker.ParseLevel(cfg.MaxLevel); err == nil {
		crit.MaxLevel = v
	}

	if tiers, err := parseTiers(strings.Join(cfg.Difficulties, ",")); err == nil {
		crit.Difficulties = tiers
	}

	if len(cfg.Variants) > 0 {
		crit.Variants = make(map[int]bool)
		for _, v := range cfg.Variants {
			if v == 1 || v == 2 {
				crit.Variants[v] = true
			}
		}
	}

	if cfg.VersionFilter {
		crit.Versions = make(map[string]bool)
		for _, v := range cfg.Versions {
			crit.Versions[v] = true
		}
	}

	return crit
}

// parseTiers parses a comma-separated tier list into the criteria set.
func parseTiers(s string) (map[catalog.Difficulty]bool, error) {
	set := make(map[catalog.Difficulty]bool)

	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		d, err := catalog.ParseDifficulty(name)
		if err != nil {
			return nil, err
		}

		set[d] = true
	}

	if len(set) == 0 {
		return nil, fmt.Errorf("no difficulty tiers in %q", s)
	}

	return set, nil
}

// parseVariants parses a comma-separated variant list ("1,2").
func parseVariants(s string) (map[int]bool, error) {
	set := make(map[int]bool)

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		v, err := strconv.Atoi(part)
		if err != nil || (v != 1 && v != 2) {
			return nil, fmt.Errorf("invalid chart variant %q (want 1 or 2)", part)
		}

		set[v] = true
	}

	if len(set) == 0 {
		return nil, fmt.Errorf("no chart variants in %q", s)
	}

	return set, nil
}

// SetupDebugLog initializes debug logging
func SetupDebugLog(filename string) error {
	if err := InitDebugLog(filename); err != nil {
		return fmt.Errorf("failed to initialize debug log: %w", err)
	}

	fileInfo, _ := os.Stdout.Stat()
	if (fileInfo.Mode() & os.ModeCharDevice) != 0 {
		fmt.Printf("Debug logging enabled: %s\n", filename)
	}

	return nil
}

// InitDebugLog initializes debug logging
func InitDebugLog(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create debug log file: %w", err)
	}

	debugLog = log.New(f, "", log.Ltime|log.Lmicroseconds)

	return nil
}

// debugf logs debug messages if enabled
func debugf(format string, args ...interface{}) {
	if debugLog != nil {
		debugLog.Printf(format, args...)
	}
}

// truncate shortens a string to maxLen runes, adding "..." if needed.
// Counts runes, not bytes: titles are frequently Japanese.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return string(r[:maxLen])
	}

	return string(r[:maxLen-3]) + "..."
}

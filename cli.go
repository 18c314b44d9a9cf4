// ABOUTME: One-shot pick mode for non-interactive use
// ABOUTME: Applies flag overrides on top of saved config and prints the drawn set

package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"chartpick/catalog"
	"chartpick/config"
	"chartpick/picker"
)

// PickOptions contains command-line options for one-shot pick mode.
// Empty string and zero values mean "use the saved config".
type PickOptions struct {
	CatalogPath string
	MinLevel    string
	MaxLevel    string
	Count       int
	Tiers       string
	Variants    string
	Versions    string
	Policy      string
	Seed        uint64
}

// RunPick draws one random set and prints it as a table.
func RunPick(opts PickOptions) error {
	cat, err := loadCatalog(opts.CatalogPath)
	if err != nil {
		return err
	}

	cfg, _ := config.LoadConfig(config.GetConfigPath())

	crit, err := buildCriteria(cfg, opts)
	if err != nil {
		return err
	}

	idx, err := catalog.LoadVersionIndex(cfg.VersionIndex)
	if err != nil {
		return fmt.Errorf("failed to load version index: %w", err)
	}

	policyName := cfg.CountPolicy
	if opts.Policy != "" {
		policyName = opts.Policy
	}

	sampler, err := newSampler(policyName, opts.Seed)
	if err != nil {
		return err
	}

	count := cfg.Count
	if opts.Count > 0 {
		count = opts.Count
	}

	pool := picker.Filter(cat, crit, idx)

	picked, err := sampler.Pick(pool, count)
	if err != nil {
		return err
	}

	printPicked(picked, idx)

	fmt.Printf("\nPicked %d from a pool of %d (%d charts total)\n", len(picked), len(pool), cat.Len())

	return nil
}

// buildCriteria layers flag overrides over the saved config.
func buildCriteria(cfg config.Config, opts PickOptions) (picker.Criteria, error) {
	crit := criteriaFromConfig(cfg)

	if opts.MinLevel != "" {
		v, err := picker.ParseLevel(opts.MinLevel)
		if err != nil {
			return crit, fmt.Errorf("invalid -min: %w", err)
		}

		crit.MinLevel = v
	}

	if opts.MaxLevel != "" {
		v, err := picker.ParseLevel(opts.MaxLevel)
		if err != nil {
			return crit, fmt.Errorf("invalid -max: %w", err)
		}

		crit.MaxLevel = v
	}

	if opts.Tiers != "" {
		tiers, err := parseTiers(opts.Tiers)
		if err != nil {
			return crit, fmt.Errorf("invalid -tiers: %w", err)
		}

		crit.Difficulties = tiers
	}

	if opts.Variants != "" {
		variants, err := parseVariants(opts.Variants)
		if err != nil {
			return crit, fmt.Errorf("invalid -variants: %w", err)
		}

		crit.Variants = variants
	}

	if opts.Versions != "" {
		crit.Versions = make(map[string]bool)
		for _, name := range strings.Split(opts.Versions, ",") {
			if name = strings.TrimSpace(name); name != "" {
				crit.Versions[name] = true
			}
		}
	}

	return crit, nil
}

// printPicked writes the drawn set as an aligned table.
func printPicked(picked []catalog.Entry, idx *catalog.VersionIndex) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	header := "#\tLv\tTier\tTitle\tArtist\tBPM"
	if idx.Len() > 0 {
		header += "\tVersion"
	}

	if _, err := fmt.Fprintln(w, header); err != nil {
		log.Printf("Warning: failed to write header: %v", err)
	}

	for i, e := range picked {
		line := fmt.Sprintf("%d\t%s\t%s\t%s\t%s\t%s",
			i+1,
			catalog.FormatLevel(e.Level),
			e.Difficulty,
			truncate(e.Title, 40),
			truncate(e.Artist, 25),
			e.BPM,
		)

		if idx.Len() > 0 {
			version, _ := idx.Resolve(e.Title)
			line += "\t" + version
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			log.Printf("Warning: failed to write row %d: %v", i+1, err)
		}
	}

	if err := w.Flush(); err != nil {
		log.Printf("Warning: failed to flush output: %v", err)
	}
}

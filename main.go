// ABOUTME: Entry point for the chartpick application
// ABOUTME: Handles command-line parsing and routing to TUI, pick, convert and index modes

// Package main provides the entry point for chartpick, a random chart picker
// for rhythm game practice sessions.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"chartpick/catalog"
	"chartpick/config"
	"chartpick/picker"
	"chartpick/tui"
)

const debugLogFile = "chartpick-debug.log"

func main() {
	os.Exit(run())
}

func run() int {
	pick := flag.Bool("pick", false, "one-shot pick to stdout instead of the interactive TUI")
	convert := flag.String("convert", "", "convert a CSV export to the embedded song table and exit")
	index := flag.String("index", "", "scan an audio library directory and build the version index, then exit")
	catalogPath := flag.String("catalog", "", "CSV catalog to load instead of the embedded table (watched for changes in TUI mode)")
	output := flag.String("o", "", "output path for -convert (default: stdout) and -index (default: versions.toml)")
	jacketDir := flag.String("jackets", "jackets", "directory for jacket art extracted in -index mode")
	minLevel := flag.String("min", "", "minimum level (overrides config)")
	maxLevel := flag.String("max", "", "maximum level (overrides config)")
	count := flag.Int("n", 0, "number of songs to pick (overrides config)")
	tiers := flag.String("tiers", "", "comma-separated difficulty tiers: basic,advanced,extreme (overrides config)")
	variants := flag.String("variants", "", "comma-separated chart variants: 1,2 (overrides config)")
	versions := flag.String("versions", "", "comma-separated game versions to allow (overrides config)")
	policy := flag.String("count-policy", "", "what to do when the count exceeds the pool: lenient or strict (overrides config)")
	seed := flag.Uint64("seed", 0, "seed for reproducible picks (0 = random)")
	debug := flag.Bool("debug", false, "enable debug logging to "+debugLogFile)
	flag.Parse()

	if *debug {
		if err := SetupDebugLog(debugLogFile); err != nil {
			log.Printf("Failed to setup debug log: %v", err)

			return 1
		}
	}

	if *convert != "" {
		if err := RunConvert(*convert, *output); err != nil {
			log.Printf("Convert error: %v", err)

			return 1
		}

		return 0
	}

	if *index != "" {
		if err := RunIndex(*index, *output, *jacketDir); err != nil {
			log.Printf("Index error: %v", err)

			return 1
		}

		return 0
	}

	if *pick {
		if err := RunPick(PickOptions{
			CatalogPath: *catalogPath,
			MinLevel:    *minLevel,
			MaxLevel:    *maxLevel,
			Count:       *count,
			Tiers:       *tiers,
			Variants:    *variants,
			Versions:    *versions,
			Policy:      *policy,
			Seed:        *seed,
		}); err != nil {
			log.Printf("Pick error: %v", err)

			return 1
		}

		return 0
	}

	if err := runTUI(*catalogPath, *seed); err != nil {
		log.Printf("TUI error: %v", err)

		return 1
	}

	return 0
}

// runTUI loads the catalog, config and version index and starts the
// interactive picker.
func runTUI(catalogPath string, seed uint64) error {
	cat, err := loadCatalog(catalogPath)
	if err != nil {
		return err
	}

	configPath := config.GetConfigPath()
	cfg, _ := config.LoadConfig(configPath)

	sharedCfg := &config.SharedConfig{}
	sharedCfg.Update(cfg)

	idx, err := catalog.LoadVersionIndex(cfg.VersionIndex)
	if err != nil {
		return fmt.Errorf("failed to load version index: %w", err)
	}

	sampler, err := newSampler(cfg.CountPolicy, seed)
	if err != nil {
		return err
	}

	opts := tui.Options{
		ConfigPath:  configPath,
		CatalogPath: catalogPath,
	}

	return tui.Run(opts, cat, idx, sharedCfg, sampler, debugf)
}

// newSampler builds a sampler from the configured count policy, seeded
// when a nonzero seed was given.
func newSampler(policyName string, seed uint64) (*picker.Sampler, error) {
	policy, err := picker.ParseCountPolicy(policyName)
	if err != nil {
		return nil, err
	}

	if seed != 0 {
		return picker.NewSeededSampler(policy, seed), nil
	}

	return picker.NewSampler(policy), nil
}

// ABOUTME: Tests for shared mode initialization helpers
// ABOUTME: Covers tier/variant list parsing, config criteria and truncation

package main

import (
	"testing"
	"unicode/utf8"

	"chartpick/catalog"
	"chartpick/config"
)

func TestParseTiers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []catalog.Difficulty
		ok    bool
	}{
		{"single tier", "extreme", []catalog.Difficulty{catalog.Extreme}, true},
		{"all tiers", "basic,advanced,extreme", []catalog.Difficulty{catalog.Basic, catalog.Advanced, catalog.Extreme}, true},
		{"short names", "bsc,adv", []catalog.Difficulty{catalog.Basic, catalog.Advanced}, true},
		{"spaces tolerated", " basic , extreme ", []catalog.Difficulty{catalog.Basic, catalog.Extreme}, true},
		{"unknown tier", "expert", nil, false},
		{"empty list", "", nil, false},
		{"only commas", ",,", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := parseTiers(tt.input)

			if !tt.ok {
				if err == nil {
					t.Fatalf("parseTiers(%q) expected error", tt.input)
				}

				return
			}

			if err != nil {
				t.Fatalf("parseTiers(%q) failed: %v", tt.input, err)
			}

			if len(set) != len(tt.want) {
				t.Fatalf("parseTiers(%q) = %v, want %v", tt.input, set, tt.want)
			}

			for _, d := range tt.want {
				if !set[d] {
					t.Errorf("parseTiers(%q) missing %v", tt.input, d)
				}
			}
		})
	}
}

func TestParseVariants(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
		ok    bool
	}{
		{"both variants", "1,2", []int{1, 2}, true},
		{"alternate only", "2", []int{2}, true},
		{"spaces tolerated", " 1 , 2 ", []int{1, 2}, true},
		{"out of range", "3", nil, false},
		{"not a number", "one", nil, false},
		{"empty list", "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := parseVariants(tt.input)

			if !tt.ok {
				if err == nil {
					t.Fatalf("parseVariants(%q) expected error", tt.input)
				}

				return
			}

			if err != nil {
				t.Fatalf("parseVariants(%q) failed: %v", tt.input, err)
			}

			if len(set) != len(tt.want) {
				t.Fatalf("parseVariants(%q) = %v, want %v", tt.input, set, tt.want)
			}

			for _, v := range tt.want {
				if !set[v] {
					t.Errorf("parseVariants(%q) missing %d", tt.input, v)
				}
			}
		})
	}
}

func TestCriteriaFromConfig(t *testing.T) {
	cfg := config.Config{
		MinLevel:     "9.3",
		MaxLevel:     "10.5",
		Difficulties: []string{"extreme"},
		Variants:     []int{2},
	}

	crit := criteriaFromConfig(cfg)

	if crit.MinLevel != 9.3 || crit.MaxLevel != 10.5 {
		t.Errorf("Bounds = %v-%v, want 9.3-10.5", crit.MinLevel, crit.MaxLevel)
	}

	if len(crit.Difficulties) != 1 || !crit.Difficulties[catalog.Extreme] {
		t.Errorf("Difficulties = %v, want extreme only", crit.Difficulties)
	}

	if len(crit.Variants) != 1 || !crit.Variants[2] {
		t.Errorf("Variants = %v, want variant 2 only", crit.Variants)
	}

	if crit.Versions != nil {
		t.Errorf("Versions should be inactive without version_filter, got %v", crit.Versions)
	}
}

func TestCriteriaFromConfigInvalidLevels(t *testing.T) {
	// Raw in-progress text falls back to the defaults
	cfg := config.Config{MinLevel: "9.", MaxLevel: "pending"}

	crit := criteriaFromConfig(cfg)

	if crit.MinLevel != 9 {
		t.Errorf("MinLevel = %v, want 9 (\"9.\" parses)", crit.MinLevel)
	}

	if crit.MaxLevel != 10.9 {
		t.Errorf("MaxLevel = %v, want default 10.9", crit.MaxLevel)
	}

	if len(crit.Difficulties) != 3 {
		t.Errorf("Expected default tiers, got %v", crit.Difficulties)
	}
}

func TestCriteriaFromConfigVersionFilter(t *testing.T) {
	cfg := config.Config{
		VersionFilter: true,
		Versions:      []string{"knit", "saucer"},
	}

	crit := criteriaFromConfig(cfg)

	if len(crit.Versions) != 2 || !crit.Versions["knit"] || !crit.Versions["saucer"] {
		t.Errorf("Versions = %v, want knit and saucer active", crit.Versions)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"short unchanged", "Evans", 10, "Evans"},
		{"exact length", "Evans", 5, "Evans"},
		{"truncated ascii", "Macuilxochitl", 8, "Macui..."},
		{"tiny max", "Evans", 2, "Ev"},
		{"japanese counted in runes", "猫叉Master", 9, "猫叉Master"},
		{"japanese truncated cleanly", "アルストロメリア", 6, "アルス..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input, tt.maxLen)

			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}

			if !utf8.ValidString(got) {
				t.Errorf("truncate(%q, %d) produced invalid UTF-8", tt.input, tt.maxLen)
			}
		})
	}
}

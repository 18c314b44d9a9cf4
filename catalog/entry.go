// ABOUTME: Defines Entry struct and the difficulty/variant enumerations
// ABOUTME: One Entry per difficulty chart of a song, immutable after load

// Package catalog holds the song catalog: chart entries loaded once from
// a generated table or a CSV export, plus title normalization and the
// version/jacket index used to cross-reference external data.
package catalog

import (
	"fmt"
	"strings"
)

// Difficulty identifies one of the three chart tiers of a song.
type Difficulty int

// Difficulty tiers in ascending order.
const (
	Basic Difficulty = iota
	Advanced
	Extreme
)

// String returns the tier name as displayed in results.
func (d Difficulty) String() string {
	switch d {
	case Basic:
		return "BASIC"
	case Advanced:
		return "ADVANCED"
	case Extreme:
		return "EXTREME"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// ParseDifficulty converts a tier name (any case) to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic", "bsc":
		return Basic, nil
	case "advanced", "adv":
		return Advanced, nil
	case "extreme", "ext":
		return Extreme, nil
	}

	return 0, fmt.Errorf("unknown difficulty %q", s)
}

// Variant suffix on titles marking an alternate chart layout.
const variantMarker = "[2]"

// Entry represents one chart of a song with the metadata needed for
// filtering and display. Entries are read-only values shared by
// reference for the whole session; nothing mutates them after load.
type Entry struct {
	Title      string     // Literal title, may carry a trailing "[2]" marker
	Artist     string     // Artist name
	BPM        string     // BPM as printed in the source export (may be a range like "90-180")
	Difficulty Difficulty // Chart tier
	Level      float64    // Rating on the level grid: ints 1-8, tenths 9.0-10.9
	Variant    int        // 1 = primary chart, 2 = alternate "[2]" chart
}

// VariantOf reports the chart variant a title denotes: 2 when the title
// ends with the "[2]" marker, otherwise 1.
func VariantOf(title string) int {
	if strings.HasSuffix(strings.TrimSpace(title), variantMarker) {
		return 2
	}

	return 1
}

// String returns a formatted one-line representation of the entry.
func (e Entry) String() string {
	return fmt.Sprintf("%-30s - %s Lv.%s (%s)", e.Title, e.Difficulty, FormatLevel(e.Level), e.Artist)
}

// FormatLevel renders a level the way the game prints it: one decimal
// place from 9.0 up, truncated integer below.
func FormatLevel(level float64) string {
	if level >= 9 {
		return fmt.Sprintf("%.1f", level)
	}

	return fmt.Sprintf("%d", int(level))
}

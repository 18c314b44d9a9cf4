// ABOUTME: Tests for the generated song table writer
// ABOUTME: Validates emitted source shape and the embedded default catalog

package catalog

import (
	"strings"
	"testing"
)

func TestWriteGoTable(t *testing.T) {
	entries := []Entry{
		{Title: "Evans", Artist: "DJ YOSHITAKA", BPM: "185", Difficulty: Extreme, Level: 10.2, Variant: 1},
		{Title: "Evans [2]", Artist: "DJ YOSHITAKA", BPM: "185", Difficulty: Extreme, Level: 10.7, Variant: 2},
		{Title: "Snow Goose", Artist: "Mutsuhiko Izumi", BPM: "180", Difficulty: Basic, Level: 5, Variant: 1},
		{Title: "Snow Goose", Artist: "Mutsuhiko Izumi", BPM: "180", Difficulty: Advanced, Level: 9.0, Variant: 1},
	}

	var b strings.Builder
	if err := WriteGoTable(&b, entries); err != nil {
		t.Fatalf("WriteGoTable failed: %v", err)
	}

	out := b.String()

	for _, want := range []string{
		"// Code generated by chartpick -convert; DO NOT EDIT.",
		"package catalog",
		"var defaultEntries = []Entry{",
		`{Title: "Evans", Artist: "DJ YOSHITAKA", BPM: "185", Difficulty: Extreme, Level: 10.2, Variant: 1},`,
		`{Title: "Evans [2]"`,
		"Level: 5, Variant: 1},",
		"Level: 9.0, Variant: 1},",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}

	// Whole levels must come out as plain integers, not 5.0
	if strings.Contains(out, "Level: 5.0") {
		t.Error("Whole level emitted with a decimal point")
	}
}

func TestDefaultCatalog(t *testing.T) {
	cat := Default()

	if cat.Len() == 0 {
		t.Fatal("Embedded catalog is empty")
	}

	for _, e := range cat.Entries() {
		if e.Level < 1 || e.Level > 10.9 {
			t.Errorf("Entry %q has level %v outside the grid", e.Title, e.Level)
		}

		if e.Level < 9 && e.Level != float64(int(e.Level)) {
			t.Errorf("Entry %q has fractional level %v below 9", e.Title, e.Level)
		}

		if e.Variant != VariantOf(e.Title) {
			t.Errorf("Entry %q variant %d disagrees with its title", e.Title, e.Variant)
		}
	}
}

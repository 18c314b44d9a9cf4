// ABOUTME: Tests for the catalog filter engine
// ABOUTME: Validates level bounds, tier/variant/version matching and order preservation

package picker

import (
	"testing"

	"chartpick/catalog"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Entry{
		{Title: "Alpha", Difficulty: catalog.Basic, Level: 4, Variant: 1},
		{Title: "Alpha", Difficulty: catalog.Advanced, Level: 7, Variant: 1},
		{Title: "Alpha", Difficulty: catalog.Extreme, Level: 9.5, Variant: 1},
		{Title: "Beta", Difficulty: catalog.Basic, Level: 5, Variant: 1},
		{Title: "Beta", Difficulty: catalog.Advanced, Level: 8, Variant: 1},
		{Title: "Beta", Difficulty: catalog.Extreme, Level: 10.2, Variant: 1},
		{Title: "Beta [2]", Difficulty: catalog.Extreme, Level: 10.7, Variant: 2},
		{Title: "Gamma", Difficulty: catalog.Extreme, Level: 10.9, Variant: 1},
	})
}

// stubResolver maps titles to fixed versions for version filter tests.
type stubResolver map[string]string

func (r stubResolver) Resolve(title string) (version, jacket string) {
	return r[title], ""
}

func TestFilterLevelBounds(t *testing.T) {
	crit := DefaultCriteria()
	crit.MinLevel = 9.5
	crit.MaxLevel = 10.7

	got := Filter(testCatalog(), crit, nil)

	want := []string{"Alpha", "Beta", "Beta [2]"}
	if len(got) != len(want) {
		t.Fatalf("Filter returned %d entries, want %d", len(got), len(want))
	}

	for i, e := range got {
		if e.Title != want[i] {
			t.Errorf("Entry %d: got %q, want %q (catalog order must be preserved)", i, e.Title, want[i])
		}
	}
}

func TestFilterBoundsInclusive(t *testing.T) {
	// A range collapsing to a single grid point still matches that point
	crit := DefaultCriteria()
	crit.MinLevel = 9.5
	crit.MaxLevel = 9.5

	got := Filter(testCatalog(), crit, nil)

	if len(got) != 1 || got[0].Title != "Alpha" {
		t.Fatalf("Expected only the 9.5 chart, got %v", got)
	}
}

func TestFilterTiers(t *testing.T) {
	crit := DefaultCriteria()
	crit.MinLevel = 1
	crit.MaxLevel = 10.9
	crit.Difficulties = map[catalog.Difficulty]bool{catalog.Advanced: true}

	got := Filter(testCatalog(), crit, nil)

	if len(got) != 2 {
		t.Fatalf("Expected 2 advanced charts, got %d", len(got))
	}

	for _, e := range got {
		if e.Difficulty != catalog.Advanced {
			t.Errorf("Got %v chart %q, want advanced only", e.Difficulty, e.Title)
		}
	}
}

func TestFilterVariants(t *testing.T) {
	crit := DefaultCriteria()
	crit.MinLevel = 1
	crit.MaxLevel = 10.9
	crit.Variants = map[int]bool{2: true}

	got := Filter(testCatalog(), crit, nil)

	if len(got) != 1 || got[0].Title != "Beta [2]" {
		t.Fatalf("Expected only the [2] chart, got %v", got)
	}
}

func TestFilterVersions(t *testing.T) {
	resolver := stubResolver{
		"Alpha":    "copious",
		"Beta":     "saucer",
		"Beta [2]": "saucer",
		"Gamma":    "ave.",
	}

	crit := DefaultCriteria()
	crit.MinLevel = 1
	crit.MaxLevel = 10.9

	t.Run("nil set means inactive", func(t *testing.T) {
		got := Filter(testCatalog(), crit, resolver)
		if len(got) != 8 {
			t.Errorf("Expected all 8 entries with version filter inactive, got %d", len(got))
		}
	})

	t.Run("matches resolved version", func(t *testing.T) {
		crit := crit
		crit.Versions = map[string]bool{"saucer": true}

		got := Filter(testCatalog(), crit, resolver)
		if len(got) != 4 {
			t.Fatalf("Expected 4 saucer entries, got %d", len(got))
		}
	})

	t.Run("empty set matches nothing", func(t *testing.T) {
		crit := crit
		crit.Versions = map[string]bool{}

		got := Filter(testCatalog(), crit, resolver)
		if len(got) != 0 {
			t.Errorf("Expected empty pool, got %d entries", len(got))
		}
	})
}

func TestFilterEmptyResult(t *testing.T) {
	crit := DefaultCriteria()
	crit.MinLevel = 1
	crit.MaxLevel = 3

	got := Filter(testCatalog(), crit, nil)

	if len(got) != 0 {
		t.Errorf("Expected empty pool below level 4, got %d entries", len(got))
	}
}

func TestFilterIsPure(t *testing.T) {
	cat := testCatalog()
	crit := DefaultCriteria()
	crit.MinLevel = 1
	crit.MaxLevel = 10.9

	first := Filter(cat, crit, nil)
	second := Filter(cat, crit, nil)

	if len(first) != len(second) {
		t.Fatalf("Repeated filter gave %d then %d entries", len(first), len(second))
	}

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Entry %d differs between identical filter runs", i)
		}
	}
}

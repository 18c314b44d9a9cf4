// ABOUTME: Tests for random sampling of filtered pools
// ABOUTME: Validates uniqueness, count policies, level sorting and shuffle uniformity

package picker

import (
	"errors"
	"fmt"
	"testing"

	"chartpick/catalog"
)

func numberedPool(n int) []catalog.Entry {
	pool := make([]catalog.Entry, n)
	for i := range pool {
		pool[i] = catalog.Entry{
			Title:      fmt.Sprintf("Song %02d", i),
			Difficulty: catalog.Extreme,
			Level:      10.0,
			Variant:    1,
		}
	}

	return pool
}

func TestPickNoDuplicates(t *testing.T) {
	s := NewSeededSampler(Lenient, 1)
	pool := numberedPool(20)

	picked, err := s.Pick(pool, 10)
	if err != nil {
		t.Fatalf("Pick failed: %v", err)
	}

	if len(picked) != 10 {
		t.Fatalf("Expected 10 entries, got %d", len(picked))
	}

	seen := make(map[string]bool)
	for _, e := range picked {
		if seen[e.Title] {
			t.Errorf("Duplicate entry %q in pick", e.Title)
		}

		seen[e.Title] = true
	}
}

func TestPickMembership(t *testing.T) {
	s := NewSeededSampler(Lenient, 2)
	pool := numberedPool(15)

	inPool := make(map[string]bool, len(pool))
	for _, e := range pool {
		inPool[e.Title] = true
	}

	picked, err := s.Pick(pool, 8)
	if err != nil {
		t.Fatalf("Pick failed: %v", err)
	}

	for _, e := range picked {
		if !inPool[e.Title] {
			t.Errorf("Picked entry %q is not in the pool", e.Title)
		}
	}
}

func TestPickDoesNotReorderPool(t *testing.T) {
	s := NewSeededSampler(Lenient, 3)
	pool := numberedPool(10)

	if _, err := s.Pick(pool, 10); err != nil {
		t.Fatalf("Pick failed: %v", err)
	}

	for i, e := range pool {
		if want := fmt.Sprintf("Song %02d", i); e.Title != want {
			t.Fatalf("Pool entry %d changed to %q after Pick", i, e.Title)
		}
	}
}

func TestPickEmptyPool(t *testing.T) {
	s := NewSampler(Lenient)

	if _, err := s.Pick(nil, 5); !errors.Is(err, ErrEmptyPool) {
		t.Errorf("Expected ErrEmptyPool, got %v", err)
	}
}

func TestPickCountPolicies(t *testing.T) {
	pool := numberedPool(4)

	t.Run("lenient clamps", func(t *testing.T) {
		s := NewSeededSampler(Lenient, 4)

		picked, err := s.Pick(pool, 10)
		if err != nil {
			t.Fatalf("Pick failed: %v", err)
		}

		if len(picked) != 4 {
			t.Errorf("Expected clamp to pool size 4, got %d", len(picked))
		}
	})

	t.Run("strict rejects", func(t *testing.T) {
		s := NewSeededSampler(Strict, 4)

		_, err := s.Pick(pool, 10)

		var countErr *CountError
		if !errors.As(err, &countErr) {
			t.Fatalf("Expected *CountError, got %v", err)
		}

		if countErr.Requested != 10 || countErr.PoolSize != 4 {
			t.Errorf("CountError = %+v, want Requested 10 PoolSize 4", countErr)
		}
	})

	t.Run("strict allows exact count", func(t *testing.T) {
		s := NewSeededSampler(Strict, 4)

		picked, err := s.Pick(pool, 4)
		if err != nil {
			t.Fatalf("Pick failed: %v", err)
		}

		if len(picked) != 4 {
			t.Errorf("Expected 4 entries, got %d", len(picked))
		}
	})
}

func TestPickZeroCount(t *testing.T) {
	s := NewSampler(Lenient)

	picked, err := s.Pick(numberedPool(5), 0)
	if err != nil {
		t.Fatalf("Pick failed: %v", err)
	}

	if len(picked) != 0 {
		t.Errorf("Expected empty result for count 0, got %d entries", len(picked))
	}
}

func TestPickSortsByLevelDescending(t *testing.T) {
	pool := []catalog.Entry{
		{Title: "Low", Level: 9.0},
		{Title: "Mid", Level: 10.1},
		{Title: "Top", Level: 10.9},
		{Title: "Bottom", Level: 4},
		{Title: "High", Level: 10.5},
	}

	s := NewSeededSampler(Lenient, 5)

	picked, err := s.Pick(pool, len(pool))
	if err != nil {
		t.Fatalf("Pick failed: %v", err)
	}

	for i := 1; i < len(picked); i++ {
		if picked[i].Level > picked[i-1].Level {
			t.Errorf("Entry %d level %v above previous %v; want descending order",
				i, picked[i].Level, picked[i-1].Level)
		}
	}
}

func TestSeededPickReproducible(t *testing.T) {
	pool := numberedPool(30)

	a, err := NewSeededSampler(Lenient, 42).Pick(pool, 10)
	if err != nil {
		t.Fatal(err)
	}

	b, err := NewSeededSampler(Lenient, 42).Pick(pool, 10)
	if err != nil {
		t.Fatal(err)
	}

	for i := range a {
		if a[i].Title != b[i].Title {
			t.Fatalf("Same seed gave different picks at %d: %q vs %q", i, a[i].Title, b[i].Title)
		}
	}
}

func TestPickUniformity(t *testing.T) {
	// Every entry of a 10-song pool should land in a 5-song pick about
	// half the time. Loose bounds: catches a biased shuffle, not noise.
	const (
		poolSize = 10
		pickSize = 5
		trials   = 2000
	)

	pool := numberedPool(poolSize)
	s := NewSeededSampler(Lenient, 7)
	counts := make(map[string]int)

	for i := 0; i < trials; i++ {
		picked, err := s.Pick(pool, pickSize)
		if err != nil {
			t.Fatalf("Pick failed: %v", err)
		}

		for _, e := range picked {
			counts[e.Title]++
		}
	}

	expected := trials * pickSize / poolSize
	for _, e := range pool {
		got := counts[e.Title]
		if got < expected*8/10 || got > expected*12/10 {
			t.Errorf("Entry %q picked %d times, expected around %d", e.Title, got, expected)
		}
	}
}

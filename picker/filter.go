// ABOUTME: Filter engine computing the catalog subset matching criteria
// ABOUTME: Pure function over the catalog, preserving catalog order

package picker

import (
	"chartpick/catalog"
)

// Fallback bounds substituted when a level field holds invalid text, so
// filtering keeps working while the validation message is shown.
const (
	DefaultMinLevel = 10
	DefaultMaxLevel = 10.9
)

// Criteria is the active filter state, rebuilt on every interaction.
type Criteria struct {
	MinLevel     float64
	MaxLevel     float64
	Difficulties map[catalog.Difficulty]bool // non-empty; the UI refuses to clear the last tier
	Variants     map[int]bool                // non-empty subset of {1, 2}
	Versions     map[string]bool             // nil = version filtering inactive; empty = zero matches
}

// DefaultCriteria returns criteria matching the 10.0-10.9 range with
// every tier and variant enabled and version filtering inactive.
func DefaultCriteria() Criteria {
	return Criteria{
		MinLevel: 10,
		MaxLevel: 10.9,
		Difficulties: map[catalog.Difficulty]bool{
			catalog.Basic:    true,
			catalog.Advanced: true,
			catalog.Extreme:  true,
		},
		Variants: map[int]bool{1: true, 2: true},
	}
}

// Resolver maps a title to its game version. Satisfied by
// *catalog.VersionIndex; only consulted when version filtering is
// active.
type Resolver interface {
	Resolve(title string) (version, jacket string)
}

// Filter computes the subset of the catalog matching the criteria,
// preserving catalog order among matches. A nil result slice (zero
// matches) is a valid state, not an error.
func Filter(c *catalog.Catalog, crit Criteria, versions Resolver) []catalog.Entry {
	var matches []catalog.Entry

	for _, e := range c.Entries() {
		if e.Level < crit.MinLevel || e.Level > crit.MaxLevel {
			continue
		}

		if !crit.Difficulties[e.Difficulty] {
			continue
		}

		if !crit.Variants[e.Variant] {
			continue
		}

		if crit.Versions != nil {
			version, _ := versions.Resolve(e.Title)
			if !crit.Versions[version] {
				continue
			}
		}

		matches = append(matches, e)
	}

	return matches
}

// ABOUTME: Unbiased random sampling of the filtered pool
// ABOUTME: Fisher-Yates shuffle, count policy handling, level-descending sort

package picker

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"chartpick/catalog"
)

// CountPolicy decides what happens when the requested count exceeds the
// pool size.
type CountPolicy int

const (
	// Lenient silently clamps the drawn count to the pool size.
	Lenient CountPolicy = iota
	// Strict rejects the draw with an error naming the pool size.
	Strict
)

// ParseCountPolicy reads a policy name from config or flags.
func ParseCountPolicy(s string) (CountPolicy, error) {
	switch s {
	case "lenient", "":
		return Lenient, nil
	case "strict":
		return Strict, nil
	}

	return 0, fmt.Errorf("unknown count policy %q (want strict or lenient)", s)
}

// String returns the policy name as written in config files.
func (p CountPolicy) String() string {
	if p == Strict {
		return "strict"
	}

	return "lenient"
}

// ErrEmptyPool is returned when the filtered pool has no entries. The
// caller clears any previous result and shows a "no songs" message.
var ErrEmptyPool = errors.New("no songs in the selected range")

// CountError reports a strict-policy draw asking for more entries than
// the pool holds.
type CountError struct {
	Requested int
	PoolSize  int
}

func (e *CountError) Error() string {
	return fmt.Sprintf("only %d songs in the selected range, requested %d", e.PoolSize, e.Requested)
}

// Rand is the randomness the sampler draws from. Satisfied by
// *rand.Rand; seeded sources make draws reproducible for scripting.
type Rand interface {
	IntN(n int) int
}

// Sampler draws random non-repeating subsets from filtered pools.
type Sampler struct {
	rng    Rand
	policy CountPolicy
}

// NewSampler creates a sampler with the given count policy and a
// ChaCha8-seeded random source.
func NewSampler(policy CountPolicy) *Sampler {
	return &Sampler{rng: defaultRand{}, policy: policy}
}

// NewSeededSampler creates a sampler with a deterministic PCG source,
// for scripted runs and tests.
func NewSeededSampler(policy CountPolicy, seed uint64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewPCG(seed, 0)), policy: policy}
}

// defaultRand adapts the package-level math/rand/v2 generator.
type defaultRand struct{}

func (defaultRand) IntN(n int) int { return rand.IntN(n) }

// Pick draws count entries from the pool uniformly at random without
// replacement and returns them sorted by level descending; entries of
// equal level keep the relative order the shuffle gave them. The pool
// itself is never reordered.
//
// An empty pool returns ErrEmptyPool. A count above the pool size is
// clamped or rejected with a *CountError, per the sampler's policy.
func (s *Sampler) Pick(pool []catalog.Entry, count int) ([]catalog.Entry, error) {
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}

	if count > len(pool) {
		if s.policy == Strict {
			return nil, &CountError{Requested: count, PoolSize: len(pool)}
		}

		count = len(pool)
	}

	if count <= 0 {
		return nil, nil
	}

	// Fisher-Yates over a copy: every permutation equally likely
	shuffled := slices.Clone(pool)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	picked := shuffled[:count:count]

	slices.SortStableFunc(picked, func(a, b catalog.Entry) int {
		switch {
		case a.Level > b.Level:
			return -1
		case a.Level < b.Level:
			return 1
		default:
			return 0
		}
	})

	return picked, nil
}

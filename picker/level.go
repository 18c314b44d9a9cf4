// ABOUTME: Level input parsing, validation and grid stepping
// ABOUTME: Enforces the level grid: integers 1-8, tenths 9.0-10.9

// Package picker implements the selection engine: level input
// normalization, catalog filtering and unbiased random sampling.
package picker

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// The level grid bounds. Levels 1 through 8 are whole numbers; from 9.0
// the grid advances in tenths up to 10.9.
const (
	MinLevel     = 1
	MaxLevel     = 10.9
	decimalStart = 9 // First level with tenth-step granularity
	integerTop   = 8 // Highest whole-number level
)

// Level input rejection reasons.
var (
	ErrLevelNotNumeric   = errors.New("level is not a number")
	ErrLevelOutOfRange   = errors.New("level outside 1 to 10.9")
	ErrLevelNeedsInteger = errors.New("levels below 9 must be whole numbers")
)

// ParseLevel validates free-text level input against the grid. The
// tenth digit of values from 9.0 up is not checked further here: free
// text like "9.25" is accepted and simply matches nothing on a grid
// catalog, while all programmatic stepping stays on the grid.
func ParseLevel(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, ErrLevelNotNumeric
	}

	if v < MinLevel || v > MaxLevel {
		return 0, ErrLevelOutOfRange
	}

	if v < decimalStart && v != math.Trunc(v) {
		return 0, ErrLevelNeedsInteger
	}

	return v, nil
}

// StepUp advances a level one grid step: +1 below 8, a jump from the 8
// range straight to 9.0, then +0.1 up to the 10.9 clamp.
func StepUp(v float64) float64 {
	switch {
	case v >= MaxLevel:
		return MaxLevel
	case v >= decimalStart:
		next := roundTenth(v + 0.1)
		if next > MaxLevel {
			return MaxLevel
		}

		return next
	case v >= integerTop:
		return decimalStart
	default:
		return math.Min(v+1, integerTop)
	}
}

// StepDown decreases a level one grid step: -0.1 above 9.0, a jump from
// the 9.0 boundary down to 8, then -1 to the clamp at 1.
func StepDown(v float64) float64 {
	switch {
	case v <= MinLevel:
		return MinLevel
	case v > decimalStart:
		return roundTenth(v - 0.1)
	case v >= decimalStart:
		return integerTop
	default:
		return math.Max(v-1, MinLevel)
	}
}

// roundTenth snaps a value to one decimal place. Rounding through an
// integer keeps repeated 0.1 steps from accumulating float drift.
func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

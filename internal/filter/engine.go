// Package filter evaluates records against a search/filter state.
//
// Apply never reorders, never returns nil and never fails: a state that matches
// nothing yields an empty slice.
package filter

import (
	"strings"
	"time"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
)

// Apply returns the records of the collection matching state, in source order.
func Apply(records []models.Record, state State, cfg Config) []models.Record {
	filtered := make([]models.Record, 0, len(records))
	if state.IsUnconstrained() {
		return append(filtered, records...)
	}

	search := strings.ToLower(state.Search)
	for _, r := range records {
		if matches(r, search, state.Constraints, cfg) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Match reports whether a single record satisfies state.
func Match(r models.Record, state State, cfg Config) bool {
	return matches(r, strings.ToLower(state.Search), state.Constraints, cfg)
}

func matches(r models.Record, search string, constraints map[string]Constraint, cfg Config) bool {
	if search != "" && !matchesSearch(r, search, cfg.SearchFields) {
		return false
	}
	for field, c := range constraints {
		if !matchesConstraint(r, field, c, cfg.ModeFor(field)) {
			return false
		}
	}
	return true
}

func matchesSearch(r models.Record, search string, fields []string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(r.String(f)), search) {
			return true
		}
	}
	return false
}

func matchesConstraint(r models.Record, field string, c Constraint, mode Mode) bool {
	if c.IsUnconstrained() {
		return true
	}

	if lo, hi, ok := c.Bounds(); ok {
		n, numeric := r.NumberOK(field)
		if !numeric {
			return false
		}
		if lo != nil && n < *lo {
			return false
		}
		if hi != nil && n > *hi {
			return false
		}
		return true
	}

	want, _ := c.Value()
	got := r.String(field)
	switch mode {
	case ModeContains:
		return strings.Contains(strings.ToLower(got), strings.ToLower(want))
	case ModeNumericEquals:
		return got == strings.TrimSpace(want)
	case ModeDateEquals:
		return sameDay(r, field, want)
	default:
		return got == want
	}
}

func sameDay(r models.Record, field, want string) bool {
	got, ok := r.Time(field)
	target, tok := models.ParseTime(want)
	if !ok || !tok {
		return r.String(field) == want
	}
	return got.Format(time.DateOnly) == target.Format(time.DateOnly)
}

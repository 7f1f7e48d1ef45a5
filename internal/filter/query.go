package filter

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
)

// AllSentinel is the select-box value meaning "no constraint". It only exists
// at the query boundary; inside the engine it becomes Unconstrained.
const AllSentinel = "all"

// SearchParam is the query parameter carrying the free-text search.
const SearchParam = "search"

// ParseState builds a State from query parameters. Only fields declared in cfg
// are read: "<field>=<value>" selects EqualTo, "<field>_min" and "<field>_max"
// select a Range on numeric fields, and "all" or an empty value leaves the
// field unconstrained.
func ParseState(q url.Values, cfg Config) State {
	state := State{
		Search:      q.Get(SearchParam),
		Constraints: map[string]Constraint{},
	}

	for _, field := range fieldNames(cfg) {
		if cfg.Fields[field] == ModeNumericEquals {
			lo := parseFloatPtr(q.Get(field + "_min"))
			hi := parseFloatPtr(q.Get(field + "_max"))
			if lo != nil || hi != nil {
				state.Constraints[field] = Range(lo, hi)
				continue
			}
		}

		if c := ParseConstraint(q.Get(field)); !c.IsUnconstrained() {
			state.Constraints[field] = c
		}
	}
	return state
}

// ParseConstraint maps a raw select value to a Constraint.
func ParseConstraint(raw string) Constraint {
	if raw == "" || raw == AllSentinel {
		return Unconstrained()
	}
	return EqualTo(raw)
}

func fieldNames(cfg Config) []string {
	names := make([]string, 0, len(cfg.Fields))
	for f := range cfg.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return names
}

func parseFloatPtr(s string) *float64 {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, ok := models.ToNumber(s)
	if !ok {
		return nil
	}
	return &v
}

// ParseIntPtr parses an optional integer query value.
func ParseIntPtr(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

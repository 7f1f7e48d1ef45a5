package handlers

import (
	"strings"

	"github.com/rogerio-castellano/ops-dashboard/internal/filter"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validatePreset(name string, state filter.State, cfg filter.Config) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(name) == "" {
		errs = append(errs, ValidationError{Field: "name", Description: "Name is required"})
	}
	for field, c := range state.Constraints {
		mode, declared := cfg.Fields[field]
		if !declared {
			errs = append(errs, ValidationError{Field: field, Description: "Field is not filterable"})
			continue
		}
		if _, _, isRange := c.Bounds(); isRange && mode != filter.ModeNumericEquals {
			errs = append(errs, ValidationError{Field: field, Description: "Range requires a numeric field"})
		}
	}
	return errs
}

package filter

import "fmt"

// Mode is how a filter field compares against an EqualTo constraint.
type Mode string

const (
	// ModeEquals compares the stringified value for exact equality.
	ModeEquals Mode = "equals-string"
	// ModeContains is a case-insensitive substring match.
	ModeContains Mode = "equals-case-insensitive-substring"
	// ModeNumericEquals compares the stringified number exactly, not by range.
	ModeNumericEquals Mode = "numeric-equals"
	// ModeDateEquals compares calendar days.
	ModeDateEquals Mode = "date-equals"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeEquals, ModeContains, ModeNumericEquals, ModeDateEquals:
		return true
	}
	return false
}

// Config declares which fields a collection searches and how each filter field compares.
type Config struct {
	SearchFields []string        `yaml:"search_fields" json:"search_fields"`
	Fields       map[string]Mode `yaml:"fields" json:"fields"`
}

// ModeFor returns the comparison mode of field, ModeEquals when undeclared.
func (c Config) ModeFor(field string) Mode {
	if m, ok := c.Fields[field]; ok && m != "" {
		return m
	}
	return ModeEquals
}

// Validate checks the config for unknown modes.
func (c Config) Validate() error {
	for field, m := range c.Fields {
		if !m.Valid() {
			return fmt.Errorf("field %q: unknown mode %q", field, m)
		}
	}
	return nil
}

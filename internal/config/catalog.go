package config

import (
	"fmt"
	"os"

	"github.com/rogerio-castellano/ops-dashboard/internal/filter"
	"github.com/rogerio-castellano/ops-dashboard/internal/metrics"
	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	"gopkg.in/yaml.v3"
)

// Catalog is what the service filters and aggregates with: per-collection
// filter configs and the metric rules.
type Catalog struct {
	Filters filter.Catalog
	Rules   metrics.RuleSet
}

type catalogFile struct {
	Collections filter.Catalog `yaml:"collections"`
	Rules       yaml.Node      `yaml:"rules"`
}

func DefaultCatalog() Catalog {
	return Catalog{Filters: filter.DefaultCatalog(), Rules: metrics.DefaultRules()}
}

// LoadCatalog returns the defaults when path is empty, otherwise the defaults
// overridden by the file.
func LoadCatalog(path string) (Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return ParseCatalog(raw)
}

// ParseCatalog applies a catalog document on top of the defaults. A collection
// entry replaces that collection's filter config. Rule keys override only the
// fields they name.
func ParseCatalog(raw []byte) (Catalog, error) {
	var doc catalogFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Catalog{}, fmt.Errorf("%w: catalog: %v", ErrInvalidConfig, err)
	}

	c := DefaultCatalog()
	for name := range doc.Collections {
		if !models.IsCollection(name) {
			return Catalog{}, fmt.Errorf("%w: catalog: unknown collection %q", ErrInvalidConfig, name)
		}
	}
	c.Filters = c.Filters.Merge(doc.Collections)

	if !doc.Rules.IsZero() {
		if err := doc.Rules.Decode(&c.Rules); err != nil {
			return Catalog{}, fmt.Errorf("%w: catalog rules: %v", ErrInvalidConfig, err)
		}
	}

	if err := c.Filters.Validate(); err != nil {
		return Catalog{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Rules.Maintenance.WindowDays < 0 || c.Rules.Consumables.WindowDays < 0 {
		return Catalog{}, fmt.Errorf("%w: window_days cannot be negative", ErrInvalidConfig)
	}
	return c, nil
}

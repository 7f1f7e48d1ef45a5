package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rogerio-castellano/ops-dashboard/internal/filter"
	"github.com/rogerio-castellano/ops-dashboard/internal/models"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeFile(t, "config.yaml", "seed_file: ./seed.yaml\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %s", cfg.Addr)
	}
	if cfg.Storage != StorageMemory {
		t.Errorf("expected memory storage, got %s", cfg.Storage)
	}
	if cfg.MemoResolution != time.Minute {
		t.Errorf("expected memo resolution 1m, got %s", cfg.MemoResolution)
	}
	if cfg.RateLimit.RPS != 5 || cfg.RateLimit.Burst != 10 {
		t.Errorf("expected rate limit 5/10, got %v/%d", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}
	if cfg.SeedFile != "./seed.yaml" {
		t.Errorf("expected seed file from config, got %s", cfg.SeedFile)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "config.yaml", "addr: \":9000\"\nrate_limit:\n  burst: 4\n")
	t.Setenv("OPSDASH_ADDR", ":7000")
	t.Setenv("OPSDASH_MEMO_RESOLUTION", "30s")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Addr != ":7000" {
		t.Errorf("expected env addr :7000, got %s", cfg.Addr)
	}
	if cfg.MemoResolution != 30*time.Second {
		t.Errorf("expected memo resolution 30s, got %s", cfg.MemoResolution)
	}
	if cfg.RateLimit.Burst != 4 {
		t.Errorf("expected burst 4 from file, got %d", cfg.RateLimit.Burst)
	}
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"postgres without url", "storage: postgres\n"},
		{"unknown storage", "storage: mongo\n"},
		{"zero burst", "rate_limit:\n  burst: 0\n"},
		{"negative resolution", "memo_resolution: -1s\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "config.yaml", tt.data))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestLoadCatalogDefaults(t *testing.T) {
	c, err := LoadCatalog("")
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if _, ok := c.Filters.Lookup(models.CollectionEquipment); !ok {
		t.Error("expected default equipment filters")
	}
	if c.Rules.Maintenance.WindowDays != 7 {
		t.Errorf("expected default window of 7 days, got %d", c.Rules.Maintenance.WindowDays)
	}
}

func TestParseCatalogOverrides(t *testing.T) {
	raw := []byte(`
collections:
  equipment:
    search_fields: [name]
    fields:
      status: equals-string
rules:
  maintenance:
    window_days: 14
`)

	c, err := ParseCatalog(raw)
	if err != nil {
		t.Fatalf("parse catalog: %v", err)
	}

	eq, _ := c.Filters.Lookup(models.CollectionEquipment)
	if len(eq.SearchFields) != 1 || eq.ModeFor("status") != filter.ModeEquals {
		t.Errorf("expected equipment config to be replaced, got %+v", eq)
	}
	if _, ok := c.Filters.Lookup(models.CollectionOrders); !ok {
		t.Error("expected other collections to keep their defaults")
	}
	if c.Rules.Maintenance.WindowDays != 14 {
		t.Errorf("expected window of 14 days, got %d", c.Rules.Maintenance.WindowDays)
	}
	if c.Rules.Maintenance.DateField != "nextMaintenanceDate" {
		t.Errorf("expected date field to keep its default, got %q", c.Rules.Maintenance.DateField)
	}
}

func TestParseCatalogRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"unknown collection", "collections:\n  widgets:\n    search_fields: [name]\n"},
		{"unknown mode", "collections:\n  orders:\n    fields:\n      status: fuzzy\n"},
		{"negative window", "rules:\n  consumables:\n    window_days: -2\n"},
		{"malformed yaml", "collections: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseCatalog([]byte(tt.raw)); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

package repo

import (
	"errors"
	"fmt"
	"os"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	"gopkg.in/yaml.v3"
)

// LoadSeed reads collections from a YAML file shaped as
// collection name -> list of records.
func LoadSeed(path string) (models.Collections, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return ParseSeed(raw)
}

// ParseSeed decodes seed YAML, rejecting unknown collection names.
func ParseSeed(raw []byte) (models.Collections, error) {
	var doc map[string][]map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}

	out := models.Collections{}
	for name, items := range doc {
		if !models.IsCollection(name) {
			return nil, fmt.Errorf("seed collection %q: %w", name, ErrUnknownCollection)
		}
		records := make([]models.Record, 0, len(items))
		for _, item := range items {
			records = append(records, models.Record(item))
		}
		out[name] = records
	}
	return out, nil
}

// Seed inserts every seed record into a repository and returns how many were
// created. Records whose id already exists are skipped, so reseeding a
// persistent store is harmless.
func Seed(r CollectionRepository, c models.Collections) (int, error) {
	created := 0
	for _, name := range models.CollectionNames {
		for _, rec := range c[name] {
			_, err := r.Create(name, rec)
			if errors.Is(err, ErrDuplicatedID) {
				continue
			}
			if err != nil {
				return created, fmt.Errorf("failed to seed %s/%s: %w", name, rec.ID(), err)
			}
			created++
		}
	}
	return created, nil
}

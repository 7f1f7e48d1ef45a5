package repo

import (
	"errors"

	"github.com/rogerio-castellano/ops-dashboard/internal/filter"
)

// Preset is a named, saved filter state for one collection.
type Preset struct {
	Collection string       `json:"collection"`
	Name       string       `json:"name"`
	State      filter.State `json:"state"`
}

// PresetRepository stores saved filter presets.
type PresetRepository interface {
	Save(p Preset) error
	Get(collection, name string) (Preset, error)
	List(collection string) ([]Preset, error)
	Delete(collection, name string) error
}

// ErrPresetNotFound is returned when a preset is not found.
var ErrPresetNotFound = errors.New("preset not found")

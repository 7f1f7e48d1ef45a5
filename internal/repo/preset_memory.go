package repo

import (
	"sort"
	"sync"
)

type InMemoryPresetRepository struct {
	mu      sync.RWMutex
	presets map[string]map[string]Preset
}

func NewInMemoryPresetRepository() *InMemoryPresetRepository {
	return &InMemoryPresetRepository{presets: map[string]map[string]Preset{}}
}

func (r *InMemoryPresetRepository) Save(p Preset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.presets[p.Collection] == nil {
		r.presets[p.Collection] = map[string]Preset{}
	}
	r.presets[p.Collection][p.Name] = p
	return nil
}

func (r *InMemoryPresetRepository) Get(collection, name string) (Preset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.presets[collection][name]
	if !ok {
		return Preset{}, ErrPresetNotFound
	}
	return p, nil
}

// List returns the presets of a collection sorted by name.
func (r *InMemoryPresetRepository) List(collection string) ([]Preset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []Preset{}
	for _, p := range r.presets[collection] {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *InMemoryPresetRepository) Delete(collection, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.presets[collection][name]; !ok {
		return ErrPresetNotFound
	}
	delete(r.presets[collection], name)
	return nil
}

func (r *InMemoryPresetRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.presets = map[string]map[string]Preset{}
}

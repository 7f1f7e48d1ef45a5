package repo

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/ops-dashboard/internal/models"
)

// InMemoryCollectionRepository is an in-memory implementation of CollectionRepository.
type InMemoryCollectionRepository struct {
	mu          sync.RWMutex
	collections models.Collections
}

// NewInMemoryCollectionRepository creates a repository holding the given seed collections.
func NewInMemoryCollectionRepository(seed models.Collections) *InMemoryCollectionRepository {
	r := &InMemoryCollectionRepository{collections: models.Collections{}}
	for name, records := range seed {
		r.collections[name] = append([]models.Record{}, records...)
	}
	return r
}

// GetAll retrieves all records of a collection in insertion order.
func (r *InMemoryCollectionRepository) GetAll(collection string) ([]models.Record, error) {
	if !models.IsCollection(collection) {
		return nil, ErrUnknownCollection
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Record{}, r.collections[collection]...), nil
}

// GetByID retrieves a record by its id.
func (r *InMemoryCollectionRepository) GetByID(collection, id string) (models.Record, error) {
	if !models.IsCollection(collection) {
		return nil, ErrUnknownCollection
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.collections[collection] {
		if rec.ID() == id {
			return rec, nil
		}
	}
	return nil, ErrRecordNotFound
}

// Create adds a record to a collection, assigning an id when it has none.
func (r *InMemoryCollectionRepository) Create(collection string, record models.Record) (models.Record, error) {
	if !models.IsCollection(collection) {
		return nil, ErrUnknownCollection
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	created := make(models.Record, len(record)+1)
	for k, v := range record {
		created[k] = v
	}
	if created.ID() == "" {
		created[models.IDField] = uuid.NewString()
	}
	for _, rec := range r.collections[collection] {
		if rec.ID() == created.ID() {
			return nil, ErrDuplicatedID
		}
	}

	r.collections[collection] = append(r.collections[collection], created)
	return created, nil
}

// Collections returns every collection, each as its own slice.
func (r *InMemoryCollectionRepository) Collections() (models.Collections, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(models.Collections, len(r.collections))
	for name, records := range r.collections {
		out[name] = append([]models.Record{}, records...)
	}
	return out, nil
}

// Clear removes every record.
func (r *InMemoryCollectionRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.collections = models.Collections{}
}

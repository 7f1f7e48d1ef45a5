package repo

import (
	"errors"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
)

// CollectionRepository supplies entity collections to the dashboard.
type CollectionRepository interface {
	GetAll(collection string) ([]models.Record, error)
	GetByID(collection, id string) (models.Record, error)
	Create(collection string, record models.Record) (models.Record, error)
	Collections() (models.Collections, error)
}

var (
	// ErrRecordNotFound is returned when a record is not found in a collection.
	ErrRecordNotFound = errors.New("record not found")
	// ErrUnknownCollection is returned for collection names the dashboard does not serve.
	ErrUnknownCollection = errors.New("unknown collection")
	// ErrDuplicatedID is returned when a record id already exists in its collection.
	ErrDuplicatedID = errors.New("duplicated record id")
)

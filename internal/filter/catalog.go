package filter

import (
	"fmt"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
)

// Catalog maps a collection name to its filter configuration.
type Catalog map[string]Config

// Lookup returns the config for a collection.
func (c Catalog) Lookup(collection string) (Config, bool) {
	cfg, ok := c[collection]
	return cfg, ok
}

// Merge returns a copy of c with the entries of override replacing whole configs.
func (c Catalog) Merge(override Catalog) Catalog {
	out := make(Catalog, len(c)+len(override))
	for k, v := range c {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

// Validate checks every config in the catalog.
func (c Catalog) Validate() error {
	for name, cfg := range c {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("collection %q: %w", name, err)
		}
	}
	return nil
}

// DefaultCatalog returns the filter configuration of every dashboard page.
func DefaultCatalog() Catalog {
	return Catalog{
		models.CollectionInventory: {
			SearchFields: []string{"name", "code", "category"},
			Fields: map[string]Mode{
				"category": ModeEquals,
				"quantity": ModeNumericEquals,
				"supplier": ModeContains,
			},
		},
		models.CollectionEquipment: {
			SearchFields: []string{"name", "serialNumber", "model"},
			Fields: map[string]Mode{
				"status":     ModeEquals,
				"type":       ModeEquals,
				"rentalRate": ModeNumericEquals,
				"location":   ModeContains,
			},
		},
		models.CollectionRentals: {
			SearchFields: []string{"customerName", "equipmentName", "contractNumber"},
			Fields: map[string]Mode{
				"status":    ModeEquals,
				"startDate": ModeDateEquals,
				"endDate":   ModeDateEquals,
			},
		},
		models.CollectionOrders: {
			SearchFields: []string{"orderNumber", "customer.name", "description"},
			Fields: map[string]Mode{
				"status":    ModeEquals,
				"priority":  ModeEquals,
				"createdAt": ModeDateEquals,
				"total":     ModeNumericEquals,
			},
		},
		models.CollectionMaintenance: {
			SearchFields: []string{"equipmentName", "task", "technician"},
			Fields: map[string]Mode{
				"status":              ModeEquals,
				"type":                ModeEquals,
				"nextMaintenanceDate": ModeDateEquals,
			},
		},
		models.CollectionConsumables: {
			SearchFields: []string{"name", "code"},
			Fields: map[string]Mode{
				"category":        ModeEquals,
				"nextRestockDate": ModeDateEquals,
			},
		},
		models.CollectionAlerts: {
			SearchFields: []string{"title", "description", "equipmentName"},
			Fields: map[string]Mode{
				"status":   ModeEquals,
				"priority": ModeEquals,
			},
		},
		models.CollectionTransactions: {
			SearchFields: []string{"description", "reference", "category"},
			Fields: map[string]Mode{
				"type":     ModeEquals,
				"category": ModeEquals,
				"amount":   ModeNumericEquals,
				"date":     ModeDateEquals,
			},
		},
		models.CollectionEmployees: {
			SearchFields: []string{"name", "email", "position"},
			Fields: map[string]Mode{
				"department": ModeEquals,
				"status":     ModeEquals,
				"position":   ModeContains,
			},
		},
		models.CollectionAttendance: {
			SearchFields: []string{"employeeName"},
			Fields: map[string]Mode{
				"status": ModeEquals,
				"date":   ModeDateEquals,
			},
		},
		models.CollectionCustomers: {
			SearchFields: []string{"name", "email", "company"},
			Fields: map[string]Mode{
				"status":   ModeEquals,
				"industry": ModeEquals,
				"city":     ModeContains,
			},
		},
	}
}

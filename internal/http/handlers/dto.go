package handlers

import (
	"github.com/rogerio-castellano/ops-dashboard/internal/filter"
	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	"github.com/rogerio-castellano/ops-dashboard/internal/threshold"
)

// RecordView is a record decorated with its threshold status, when the
// collection has a classifier.
type RecordView struct {
	Record models.Record    `json:"record"`
	Status threshold.Status `json:"status,omitempty"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type RecordsSearchResult struct {
	Data []RecordView `json:"data"`
	Meta Meta         `json:"meta,omitempty"`
}

type PresetRequest struct {
	State filter.State `json:"state"`
}

type PresetResponse struct {
	Collection string       `json:"collection"`
	Name       string       `json:"name"`
	State      filter.State `json:"state"`
}

type PresetsResult struct {
	Data []PresetResponse `json:"data"`
}

type ImportRecordsResult struct {
	Imported int               `json:"imported"`
	Errors   []ValidationError `json:"errors"`
}

package threshold

import (
	"strings"
	"time"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
)

// SeverityRule flags a record critical when its priority equals the maximum
// severity level and its lifecycle status is still open.
type SeverityRule struct {
	PriorityField string   `yaml:"priority_field"`
	Critical      string   `yaml:"critical"`
	StatusField   string   `yaml:"status_field"`
	OpenStatuses  []string `yaml:"open_statuses"`
}

// Classify implements Classifier.
func (s SeverityRule) Classify(r models.Record, _ time.Time) Status {
	if !strings.EqualFold(r.String(s.PriorityField), s.Critical) {
		return StatusNormal
	}
	if !s.IsOpen(r) {
		return StatusNormal
	}
	return StatusCritical
}

// IsOpen reports whether the record's status is in the open set.
func (s SeverityRule) IsOpen(r models.Record) bool {
	return InSet(r.String(s.StatusField), s.OpenStatuses)
}

// PresenceRule marks a record present when its status is one of PresentValues.
type PresenceRule struct {
	StatusField   string   `yaml:"status_field"`
	PresentValues []string `yaml:"present_values"`
}

// Classify implements Classifier.
func (p PresenceRule) Classify(r models.Record, _ time.Time) Status {
	if InSet(r.String(p.StatusField), p.PresentValues) {
		return StatusPresent
	}
	return StatusAbsent
}

// InSet reports whether value case-insensitively equals one of set.
func InSet(value string, set []string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	for _, s := range set {
		if strings.EqualFold(value, s) {
			return true
		}
	}
	return false
}

package threshold

import (
	"time"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
)

// DefaultWindowDays is the look-ahead used for maintenance and consumable restocking.
const DefaultWindowDays = 7

// WindowRule marks a record due when its target date falls on or before
// now + WindowDays. Overdue records are due as well.
type WindowRule struct {
	DateField  string `yaml:"date_field"`
	WindowDays int    `yaml:"window_days"`
}

// Classify implements Classifier. A missing or unparsable date is scheduled.
func (w WindowRule) Classify(r models.Record, now time.Time) Status {
	target, ok := r.TimeIn(w.DateField, now.Location())
	if !ok {
		return StatusScheduled
	}
	if !target.After(w.Deadline(now)) {
		return StatusDue
	}
	return StatusScheduled
}

// Deadline is the latest target date that still counts as due at now.
func (w WindowRule) Deadline(now time.Time) time.Time {
	return now.AddDate(0, 0, w.WindowDays)
}

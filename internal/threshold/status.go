// Package threshold maps a record's numeric, date or severity fields against a
// static rule and yields one status from a closed set. Every classifier is pure
// and total: missing or malformed fields fall back to the non-alerting status.
package threshold

import (
	"time"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
)

// Status is the outcome of a threshold rule.
type Status string

// Stock statuses.
const (
	StatusNormal Status = "normal"
	StatusLow    Status = "low"
	StatusOut    Status = "out"
)

// Date window statuses.
const (
	StatusScheduled Status = "scheduled"
	StatusDue       Status = "due"
)

// Severity statuses. StatusNormal is shared with the stock set.
const (
	StatusCritical Status = "critical"
)

// Presence statuses.
const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
)

// Classifier evaluates a record to a status. Only date window rules read now;
// the others ignore it.
type Classifier interface {
	Classify(r models.Record, now time.Time) Status
}

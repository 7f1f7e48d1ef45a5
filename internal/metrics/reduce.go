package metrics

import (
	"time"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	"github.com/rogerio-castellano/ops-dashboard/internal/threshold"
)

// CountBy groups records by the stringified value of field. Records without the
// field are counted under "".
func CountBy(records []models.Record, field string) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.String(field)]++
	}
	return counts
}

// CountStatus counts the records a classifier maps to want.
func CountStatus(records []models.Record, c threshold.Classifier, now time.Time, want threshold.Status) int {
	n := 0
	for _, r := range records {
		if c.Classify(r, now) == want {
			n++
		}
	}
	return n
}

// Percentage returns part/whole as a percentage clamped to [0, 100], and 0 when
// whole is not positive.
func Percentage(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	pct := float64(part) / float64(whole) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// InMonth reports whether the record's date field falls in now's calendar month
// and year, regardless of day.
func InMonth(r models.Record, field string, now time.Time) bool {
	t, ok := r.TimeIn(field, now.Location())
	if !ok {
		return false
	}
	t = t.In(now.Location())
	return t.Year() == now.Year() && t.Month() == now.Month()
}

// OnDay reports whether the record's date field falls on now's calendar day.
func OnDay(r models.Record, field string, now time.Time) bool {
	t, ok := r.TimeIn(field, now.Location())
	if !ok {
		return false
	}
	t = t.In(now.Location())
	y, m, d := t.Date()
	ny, nm, nd := now.Date()
	return y == ny && m == nm && d == nd
}

package filter

import "github.com/rogerio-castellano/ops-dashboard/internal/models"

// Paginate slices a filtered collection by offset and limit and returns the page
// together with the unpaginated total. A nil or non-positive limit means no limit.
func Paginate(records []models.Record, offset, limit *int) ([]models.Record, int) {
	total := len(records)

	// If offset is greater than the number of records, return an empty page
	if offset != nil && *offset > total {
		return []models.Record{}, total
	}

	start := 0
	if offset != nil {
		start = clamp(*offset, 0, total)
	}

	end := total
	if limit != nil && *limit > 0 {
		end = clamp(start+*limit, start, total)
	}

	page := make([]models.Record, end-start)
	copy(page, records[start:end])
	return page, total
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

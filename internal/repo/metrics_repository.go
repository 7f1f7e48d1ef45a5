package repo

import (
	"fmt"
	"time"

	"github.com/rogerio-castellano/ops-dashboard/internal/metrics"
)

type MetricsRepository interface {
	GetDashboardMetrics() (metrics.Snapshot, error)
}

// DashboardMetricsRepository loads every collection and reduces it through a
// memoized aggregator at the current wall-clock time.
type DashboardMetricsRepository struct {
	collections CollectionRepository
	memo        *metrics.Memo
	clock       func() time.Time
}

func NewDashboardMetricsRepository(memo *metrics.Memo) *DashboardMetricsRepository {
	return &DashboardMetricsRepository{memo: memo, clock: time.Now}
}

func (d *DashboardMetricsRepository) SetRepositories(collections CollectionRepository) {
	d.collections = collections
}

// SetClock overrides the time source, used to pin time-windowed metrics in tests.
func (d *DashboardMetricsRepository) SetClock(clock func() time.Time) {
	d.clock = clock
}

// GetDashboardMetrics implements MetricsRepository.
func (d *DashboardMetricsRepository) GetDashboardMetrics() (metrics.Snapshot, error) {
	c, err := d.collections.Collections()
	if err != nil {
		return metrics.Snapshot{}, fmt.Errorf("failed to load collections: %w", err)
	}
	return d.memo.Aggregate(c, d.clock()), nil
}

// MemoStats reports how often the memo served a cached snapshot.
func (d *DashboardMetricsRepository) MemoStats() (hits, misses uint64) {
	return d.memo.Stats()
}

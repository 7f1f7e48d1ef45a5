package metrics

import (
	"reflect"
	"testing"
	"time"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
)

func TestMemoHitsOnIdenticalInput(t *testing.T) {
	m := NewMemo(DefaultRules(), time.Minute)
	c := sampleCollections()

	first := m.Aggregate(c, now)
	second := m.Aggregate(sampleCollections(), now.Add(20*time.Second))

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected memoized snapshot to equal the first one")
	}
	hits, misses := m.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("expected 1 hit and 1 miss, got %d hits and %d misses", hits, misses)
	}
}

func TestMemoRecomputesOnChange(t *testing.T) {
	m := NewMemo(DefaultRules(), time.Minute)
	c := sampleCollections()
	m.Aggregate(c, now)

	c[models.CollectionOrders] = append(c[models.CollectionOrders], models.Record{"id": "o7", "status": "PENDING"})
	s := m.Aggregate(c, now)
	if s.Orders.Total != 7 {
		t.Errorf("expected recomputed total 7, got %d", s.Orders.Total)
	}

	m.Aggregate(c, now.Add(time.Hour))
	_, misses := m.Stats()
	if misses != 3 {
		t.Errorf("expected a new time bucket to miss, got %d misses", misses)
	}
}

func TestMemoMatchesDirectAggregation(t *testing.T) {
	m := NewMemo(DefaultRules(), time.Minute)
	c := sampleCollections()
	at := now.Add(42 * time.Second)

	got := m.Aggregate(c, at)
	want := Aggregate(c, DefaultRules(), at.Truncate(time.Minute))
	if !reflect.DeepEqual(got, want) {
		t.Errorf("memo result differs from direct aggregation")
	}
}

func TestMemoReturnsIndependentCopies(t *testing.T) {
	m := NewMemo(DefaultRules(), 0)
	c := sampleCollections()

	a := m.Aggregate(c, now)
	a.Orders.ByStatus["COMPLETED"] = 999

	b := m.Aggregate(c, now)
	if b.Orders.ByStatus["COMPLETED"] != 4 {
		t.Errorf("expected caller mutation not to leak into the memo, got %d", b.Orders.ByStatus["COMPLETED"])
	}
}

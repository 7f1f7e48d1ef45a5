package filter

import (
	"encoding/json"
	"net/url"
	"reflect"
	"testing"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
)

func equipment() []models.Record {
	return []models.Record{
		{"id": "eq-1", "name": "Excavator CAT 320", "serialNumber": "CAT-320-001", "status": "available", "type": "heavy", "rentalRate": 450.0},
		{"id": "eq-2", "name": "Scissor Lift", "serialNumber": "SL-19", "status": "rented", "type": "lift", "rentalRate": 120.0},
		{"id": "eq-3", "name": "Mini Excavator", "serialNumber": "KUB-55", "status": "maintenance", "type": "heavy", "rentalRate": 275.5},
		{"id": "eq-4", "name": "All-Terrain Forklift", "serialNumber": "ALL-1", "status": "all", "type": "lift", "rentalRate": "n/a"},
	}
}

var equipmentConfig = DefaultCatalog()[models.CollectionEquipment]

func ids(records []models.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID()
	}
	return out
}

func TestApplySubstringSearch(t *testing.T) {
	items := []models.Record{
		{"id": "1", "name": "Hydraulic Pump Assembly", "code": "HYD-002"},
		{"id": "2", "name": "Engine Oil Filter", "code": "ENG-003"},
	}
	cfg := Config{SearchFields: []string{"name", "code"}}

	got := Apply(items, State{Search: "hyd"}, cfg)
	if len(got) != 1 || got[0].ID() != "1" {
		t.Fatalf("expected only the hydraulic pump, got %v", ids(got))
	}

	got = Apply(items, State{Search: "eng-0"}, cfg)
	if len(got) != 1 || got[0].ID() != "2" {
		t.Fatalf("expected code match on ENG-003, got %v", ids(got))
	}
}

func TestApplyIdentity(t *testing.T) {
	src := equipment()

	states := []State{
		{},
		{Constraints: map[string]Constraint{"status": Unconstrained(), "type": Unconstrained()}},
		ParseState(url.Values{"status": {"all"}, "type": {""}}, equipmentConfig),
	}

	for _, s := range states {
		got := Apply(src, s, equipmentConfig)
		if !reflect.DeepEqual(got, src) {
			t.Errorf("expected unconstrained state to return the source collection, got %v", ids(got))
		}
	}
}

func TestApplyNilCollection(t *testing.T) {
	got := Apply(nil, State{Search: "x"}, equipmentConfig)
	if got == nil {
		t.Fatalf("expected empty non-nil slice")
	}
	if len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}

	got = Apply(nil, State{}, equipmentConfig)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice for unconstrained state, got %#v", got)
	}
}

func TestApplyIdempotent(t *testing.T) {
	src := equipment()
	states := []State{
		{Search: "excavator"},
		{Constraints: map[string]Constraint{"type": EqualTo("lift")}},
		{Search: "e", Constraints: map[string]Constraint{"status": EqualTo("rented")}},
	}

	for _, s := range states {
		once := Apply(src, s, equipmentConfig)
		twice := Apply(once, s, equipmentConfig)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("state %+v: expected idempotent filter, got %v then %v", s, ids(once), ids(twice))
		}
	}
}

func TestApplyMonotonic(t *testing.T) {
	src := equipment()
	base := State{Search: "e"}
	prev := len(Apply(src, base, equipmentConfig))

	s := base
	for _, step := range []struct {
		field string
		c     Constraint
	}{
		{"type", EqualTo("heavy")},
		{"status", EqualTo("available")},
		{"rentalRate", EqualTo("450")},
	} {
		s = s.With(step.field, step.c)
		n := len(Apply(src, s, equipmentConfig))
		if n > prev {
			t.Fatalf("adding %s grew result from %d to %d", step.field, prev, n)
		}
		prev = n
	}
	if prev != 1 {
		t.Errorf("expected a single match after all constraints, got %d", prev)
	}
}

func TestApplyPreservesOrder(t *testing.T) {
	got := Apply(equipment(), State{Constraints: map[string]Constraint{"type": EqualTo("heavy")}}, equipmentConfig)
	if want := []string{"eq-1", "eq-3"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("expected %v, got %v", want, ids(got))
	}
}

func TestNumericEqualsIsExact(t *testing.T) {
	src := equipment()

	tests := []struct {
		value string
		want  []string
	}{
		{"450", []string{"eq-1"}},
		{" 275.5 ", []string{"eq-3"}},
		{"450.0", []string{}},
		{"45", []string{}},
	}

	for _, tt := range tests {
		got := Apply(src, State{Constraints: map[string]Constraint{"rentalRate": EqualTo(tt.value)}}, equipmentConfig)
		if !reflect.DeepEqual(ids(got), tt.want) {
			t.Errorf("rentalRate=%q: expected %v, got %v", tt.value, tt.want, ids(got))
		}
	}
}

func TestRangeConstraint(t *testing.T) {
	lo, hi := 100.0, 300.0
	got := Apply(equipment(), State{Constraints: map[string]Constraint{"rentalRate": Range(&lo, &hi)}}, equipmentConfig)
	if want := []string{"eq-2", "eq-3"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("expected %v, got %v", want, ids(got))
	}

	got = Apply(equipment(), State{Constraints: map[string]Constraint{"rentalRate": Range(&hi, nil)}}, equipmentConfig)
	if want := []string{"eq-1"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("expected open-ended range to match %v, got %v", want, ids(got))
	}
}

func TestRangeRejectsNonFiniteValues(t *testing.T) {
	lo, hi := 10.0, 20.0
	records := []models.Record{
		{"id": "nan", "rentalRate": "NaN"},
		{"id": "inf", "rentalRate": "Inf"},
		{"id": "big", "rentalRate": "1e400"},
		{"id": "ok", "rentalRate": "15"},
	}

	got := Apply(records, State{Constraints: map[string]Constraint{"rentalRate": Range(&lo, &hi)}}, equipmentConfig)
	if want := []string{"ok"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("expected %v, got %v", want, ids(got))
	}
}

func TestLiteralAllIsAValue(t *testing.T) {
	got := Apply(equipment(), State{Constraints: map[string]Constraint{"status": EqualTo("all")}}, equipmentConfig)
	if want := []string{"eq-4"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("expected EqualTo(\"all\") to match the literal value, got %v", ids(got))
	}
}

func TestContainsAndDateModes(t *testing.T) {
	cfg := Config{Fields: map[string]Mode{"city": ModeContains, "date": ModeDateEquals}}
	records := []models.Record{
		{"id": "a", "city": "San Francisco", "date": "2025-05-01T10:30:00Z"},
		{"id": "b", "city": "Santa Fe", "date": "2025-05-02"},
		{"id": "c", "city": "Boston", "date": "garbage"},
	}

	got := Apply(records, State{Constraints: map[string]Constraint{"city": EqualTo("SAN")}}, cfg)
	if want := []string{"a", "b"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("expected %v, got %v", want, ids(got))
	}

	got = Apply(records, State{Constraints: map[string]Constraint{"date": EqualTo("2025-05-01")}}, cfg)
	if want := []string{"a"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("expected %v, got %v", want, ids(got))
	}

	got = Apply(records, State{Constraints: map[string]Constraint{"date": EqualTo("garbage")}}, cfg)
	if want := []string{"c"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("expected string fallback to match %v, got %v", want, ids(got))
	}
}

func TestSearchNestedField(t *testing.T) {
	orders := []models.Record{
		{"id": "o1", "orderNumber": "SO-1001", "customer": map[string]any{"name": "Globex"}},
		{"id": "o2", "orderNumber": "SO-1002", "customer": map[string]any{"name": "Initech"}},
	}
	got := Apply(orders, State{Search: "GLOB"}, DefaultCatalog()[models.CollectionOrders])
	if want := []string{"o1"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("expected %v, got %v", want, ids(got))
	}
}

func TestParseState(t *testing.T) {
	q := url.Values{
		"search":         {"lift"},
		"status":         {"all"},
		"type":           {"lift"},
		"rentalRate_min": {"100"},
		"unknown":        {"x"},
	}
	s := ParseState(q, equipmentConfig)

	if s.Search != "lift" {
		t.Errorf("expected search 'lift', got %q", s.Search)
	}
	if _, ok := s.Constraints["status"]; ok {
		t.Errorf("expected 'all' to leave status unconstrained")
	}
	if v, ok := s.Constraints["type"].Value(); !ok || v != "lift" {
		t.Errorf("expected type = lift, got %v", s.Constraints["type"])
	}
	lo, hi, ok := s.Constraints["rentalRate"].Bounds()
	if !ok || lo == nil || *lo != 100 || hi != nil {
		t.Errorf("expected rentalRate >= 100, got %v", s.Constraints["rentalRate"])
	}
	if _, ok := s.Constraints["unknown"]; ok {
		t.Errorf("expected undeclared fields to be ignored")
	}
}

func TestParseStateRangeNeedsNumericField(t *testing.T) {
	q := url.Values{
		"type_min":       {"1"},
		"rentalRate_min": {"NaN"},
		"rentalRate_max": {"Inf"},
	}
	s := ParseState(q, equipmentConfig)

	if _, ok := s.Constraints["type"]; ok {
		t.Errorf("expected a range on a non-numeric field to be ignored, got %v", s.Constraints["type"])
	}
	if _, ok := s.Constraints["rentalRate"]; ok {
		t.Errorf("expected non-finite bounds to be ignored, got %v", s.Constraints["rentalRate"])
	}
}

func TestConstraintJSON(t *testing.T) {
	lo := 5.0
	in := State{
		Search: "pump",
		Constraints: map[string]Constraint{
			"status":   EqualTo("all"),
			"quantity": Range(&lo, nil),
			"type":     Unconstrained(),
		},
	}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out State
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if v, ok := out.Constraints["status"].Value(); !ok || v != "all" {
		t.Errorf("expected EqualTo(all) to survive, got %v", out.Constraints["status"])
	}
	if !out.Constraints["type"].IsUnconstrained() {
		t.Errorf("expected type to stay unconstrained")
	}
	if got, _, ok := out.Constraints["quantity"].Bounds(); !ok || *got != 5 {
		t.Errorf("expected quantity range to survive, got %v", out.Constraints["quantity"])
	}

	var bad Constraint
	if err := json.Unmarshal([]byte(`{"kind":"between"}`), &bad); err == nil {
		t.Errorf("expected unknown kind to fail")
	}
}

func TestPaginate(t *testing.T) {
	src := equipment()

	tests := []struct {
		name          string
		offset, limit *int
		want          []string
	}{
		{"no paging", nil, nil, []string{"eq-1", "eq-2", "eq-3", "eq-4"}},
		{"first page", ParseIntPtr("0"), ParseIntPtr("2"), []string{"eq-1", "eq-2"}},
		{"second page", ParseIntPtr("2"), ParseIntPtr("2"), []string{"eq-3", "eq-4"}},
		{"limit past end", ParseIntPtr("3"), ParseIntPtr("10"), []string{"eq-4"}},
		{"offset past end", ParseIntPtr("9"), ParseIntPtr("2"), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, total := Paginate(src, tt.offset, tt.limit)
			if total != 4 {
				t.Errorf("expected total 4, got %d", total)
			}
			if !reflect.DeepEqual(ids(page), tt.want) {
				t.Errorf("expected %v, got %v", tt.want, ids(page))
			}
		})
	}
}

func TestCatalogValidate(t *testing.T) {
	if err := DefaultCatalog().Validate(); err != nil {
		t.Fatalf("default catalog invalid: %v", err)
	}

	bad := Catalog{"x": {Fields: map[string]Mode{"f": "fuzzy"}}}
	if err := bad.Validate(); err == nil {
		t.Errorf("expected unknown mode to fail validation")
	}
}

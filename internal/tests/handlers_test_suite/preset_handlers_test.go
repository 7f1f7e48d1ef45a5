package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/rogerio-castellano/ops-dashboard/internal/filter"
	handler "github.com/rogerio-castellano/ops-dashboard/internal/http/handlers"
)

func TestPresetLifecycle(t *testing.T) {
	seed(t, equipment())
	r := newRouter()

	lo := 100.0
	req := handler.PresetRequest{State: filter.State{
		Search:      "lift",
		Constraints: map[string]filter.Constraint{"rentalRate": filter.Range(&lo, nil)},
	}}

	w := putJSON(r, "/presets/equipment/pricey-lifts", req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	w = get(r, "/presets/equipment/pricey-lifts")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var got handler.PresetResponse
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode preset: %v", err)
	}
	if got.Name != "pricey-lifts" || got.State.Search != "lift" {
		t.Errorf("unexpected preset %+v", got)
	}
	if gotLo, _, ok := got.State.Constraints["rentalRate"].Bounds(); !ok || *gotLo != 100 {
		t.Errorf("expected rentalRate range to round-trip, got %v", got.State.Constraints["rentalRate"])
	}

	w = get(r, "/presets/equipment")
	var list handler.PresetsResult
	if err := json.NewDecoder(w.Body).Decode(&list); err != nil {
		t.Fatalf("failed to decode presets: %v", err)
	}
	if len(list.Data) != 1 {
		t.Errorf("expected 1 preset, got %d", len(list.Data))
	}

	resp := decodeSearch(t, get(r, "/collections/equipment?preset=pricey-lifts"))
	if resp.Meta.TotalCount != 2 {
		t.Errorf("expected preset to select 2 records, got %d", resp.Meta.TotalCount)
	}

	resp = decodeSearch(t, get(r, "/collections/equipment?preset=pricey-lifts&status=rented"))
	if resp.Meta.TotalCount != 1 || resp.Data[0].Record.ID() != "e2" {
		t.Errorf("expected query to narrow the preset to e2, got %v", resp.Data)
	}

	if w := del(r, "/presets/equipment/pricey-lifts"); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}
	if w := del(r, "/presets/equipment/pricey-lifts"); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", w.Code)
	}
	if w := get(r, "/presets/equipment/pricey-lifts"); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
	if w := get(r, "/collections/equipment?preset=pricey-lifts"); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for a missing preset, got %d", w.Code)
	}
}

func TestPutPresetHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	lo := 1.0
	tests := []struct {
		name           string
		path           string
		payload        any
		expectCode     int
		expectedFields []string
	}{
		{
			name:           "Undeclared field",
			path:           "/presets/equipment/bad",
			payload:        handler.PresetRequest{State: filter.State{Constraints: map[string]filter.Constraint{"color": filter.EqualTo("red")}}},
			expectCode:     http.StatusBadRequest,
			expectedFields: []string{"color"},
		},
		{
			name:           "Range on a string field",
			path:           "/presets/equipment/bad",
			payload:        handler.PresetRequest{State: filter.State{Constraints: map[string]filter.Constraint{"type": filter.Range(&lo, nil)}}},
			expectCode:     http.StatusBadRequest,
			expectedFields: []string{"type"},
		},
		{
			name:       "Malformed body",
			path:       "/presets/equipment/bad",
			payload:    "not a preset",
			expectCode: http.StatusBadRequest,
		},
		{
			name:       "Unknown collection",
			path:       "/presets/widgets/bad",
			payload:    handler.PresetRequest{},
			expectCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := putJSON(r, tt.path, tt.payload)
			if w.Code != tt.expectCode {
				t.Fatalf("expected %d, got %d", tt.expectCode, w.Code)
			}
			if len(tt.expectedFields) == 0 {
				return
			}

			var errs []handler.ValidationError
			if err := json.NewDecoder(w.Body).Decode(&errs); err != nil {
				t.Fatalf("failed to decode validation errors: %v", err)
			}
			for i, f := range tt.expectedFields {
				if i >= len(errs) || errs[i].Field != f {
					t.Errorf("expected validation error on %s, got %v", f, errs)
				}
			}
		})
	}
}

func TestListPresetsHandler_UnknownCollection(t *testing.T) {
	r := newRouter()
	if w := get(r, "/presets/widgets"); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rogerio-castellano/ops-dashboard/internal/config"
	handler "github.com/rogerio-castellano/ops-dashboard/internal/http/handlers"
	"github.com/rogerio-castellano/ops-dashboard/internal/http/router"
	"github.com/rogerio-castellano/ops-dashboard/internal/metrics"
	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	"github.com/rogerio-castellano/ops-dashboard/internal/repo"
)

var (
	collectionRepo *repo.InMemoryCollectionRepository
	presetRepo     *repo.InMemoryPresetRepository

	now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
)

func init() {
	setupTestRepos()
}

func setupTestRepos() {
	collectionRepo = repo.NewInMemoryCollectionRepository(nil)
	handler.SetCollectionRepo(collectionRepo)

	presetRepo = repo.NewInMemoryPresetRepository()
	handler.SetPresetRepo(presetRepo)

	handler.SetCatalog(config.DefaultCatalog())

	metricsRepo := repo.NewDashboardMetricsRepository(metrics.NewMemo(metrics.DefaultRules(), 0))
	metricsRepo.SetRepositories(collectionRepo)
	metricsRepo.SetClock(func() time.Time { return now })
	handler.SetMetricsRepo(metricsRepo)
}

func newRouter() http.Handler {
	return router.NewRouter(router.Options{})
}

func clearAll() {
	collectionRepo.Clear()
	presetRepo.Clear()
}

func seed(t *testing.T, c models.Collections) {
	t.Helper()
	t.Cleanup(clearAll)
	if _, err := repo.Seed(collectionRepo, c); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func putJSON(r http.Handler, path string, v any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(v)
	req := httptest.NewRequest(http.MethodPut, path, bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func del(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeSearch(t *testing.T, w *httptest.ResponseRecorder) handler.RecordsSearchResult {
	t.Helper()
	var resp handler.RecordsSearchResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func equipment() models.Collections {
	return models.Collections{
		models.CollectionEquipment: {
			{"id": "e1", "name": "Scissor Lift", "type": "lift", "status": "available", "rentalRate": 150, "location": "North Yard"},
			{"id": "e2", "name": "Forklift 3T", "type": "forklift", "status": "rented", "rentalRate": 300, "location": "South Yard"},
			{"id": "e3", "name": "Generator", "type": "power", "status": "available", "rentalRate": 80, "location": "North Depot"},
		},
	}
}

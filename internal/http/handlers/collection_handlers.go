package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/ops-dashboard/internal/filter"
	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	repo "github.com/rogerio-castellano/ops-dashboard/internal/repo"
)

// GetCollectionHandler godoc
// @Summary Search and filter a collection
// @Description Free-text search over the collection's search fields plus one constraint per filter field. "all" or an empty value leaves a field unconstrained; <field>_min and <field>_max select a numeric range.
// @Tags collections
// @Produce json
// @Param name path string true "Collection name"
// @Param search query string false "Case-insensitive substring over the search fields"
// @Param preset query string false "Saved preset to start from; query values override it"
// @Param offset query int false "Offset"
// @Param limit query int false "Limit"
// @Success 200 {object} RecordsSearchResult
// @Failure 404 {string} string "Unknown collection or preset"
// @Failure 500 {string} string "Internal error"
// @Router /collections/{name} [get]
func GetCollectionHandler(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	cfg, ok := catalog.Filters.Lookup(name)
	if !ok {
		http.Error(w, "unknown collection", http.StatusNotFound)
		return
	}

	q := r.URL.Query()
	state := filter.ParseState(q, cfg)

	if presetName := q.Get("preset"); presetName != "" {
		p, err := presetRepo.Get(name, presetName)
		if err != nil {
			if errors.Is(err, repo.ErrPresetNotFound) {
				http.Error(w, "preset not found", http.StatusNotFound)
				return
			}
			logger.Error("failed to load preset", slog.String("collection", name), slog.String("error", err.Error()))
			http.Error(w, "could not load preset", http.StatusInternalServerError)
			return
		}
		state = overlay(p.State, state)
	}

	records, err := collectionRepo.GetAll(name)
	if err != nil {
		if errors.Is(err, repo.ErrUnknownCollection) {
			http.Error(w, "unknown collection", http.StatusNotFound)
			return
		}
		logger.Error("failed to fetch collection", slog.String("collection", name), slog.String("error", err.Error()))
		http.Error(w, "could not fetch records", http.StatusInternalServerError)
		return
	}

	matched := filter.Apply(records, state, cfg)
	page, total := filter.Paginate(matched, filter.ParseIntPtr(q.Get("offset")), filter.ParseIntPtr(q.Get("limit")))

	now := time.Now()
	views := make([]RecordView, len(page))
	for i, rec := range page {
		views[i] = decorate(name, rec, now)
	}

	writeJSON(w, http.StatusOK, RecordsSearchResult{Data: views, Meta: Meta{TotalCount: total}})
}

// GetRecordByIDHandler godoc
// @Summary Get one record of a collection
// @Tags collections
// @Produce json
// @Param name path string true "Collection name"
// @Param id path string true "Record ID"
// @Success 200 {object} RecordView
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /collections/{name}/{id} [get]
func GetRecordByIDHandler(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	id := chi.URLParam(r, "id")

	rec, err := collectionRepo.GetByID(name, id)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrUnknownCollection):
			http.Error(w, "unknown collection", http.StatusNotFound)
		case errors.Is(err, repo.ErrRecordNotFound):
			http.Error(w, "record not found", http.StatusNotFound)
		default:
			logger.Error("failed to fetch record", slog.String("collection", name), slog.String("id", id), slog.String("error", err.Error()))
			http.Error(w, "could not fetch record", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, decorate(name, rec, time.Now()))
}

// CreateRecordHandler godoc
// @Summary Add a record to a collection
// @Description An id is assigned when the record carries none.
// @Tags collections
// @Accept json
// @Produce json
// @Param name path string true "Collection name"
// @Param record body object true "Record to add"
// @Success 201 {object} RecordView
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Unknown collection"
// @Failure 409 {string} string "Duplicated id"
// @Failure 500 {string} string "Internal error"
// @Router /collections/{name} [post]
func CreateRecordHandler(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !models.IsCollection(name) {
		http.Error(w, "unknown collection", http.StatusNotFound)
		return
	}

	var rec models.Record
	if err := readJSON(w, r, &rec); err != nil || rec == nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	created, err := collectionRepo.Create(name, rec)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedID) {
			http.Error(w, "could not create record: id duplicated", http.StatusConflict)
			return
		}
		logger.Error("failed to create record", slog.String("collection", name), slog.String("error", err.Error()))
		http.Error(w, "could not create record", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, decorate(name, created, time.Now()))
}

func decorate(collection string, rec models.Record, now time.Time) RecordView {
	view := RecordView{Record: rec}
	if c, ok := catalog.Rules.ClassifierFor(collection); ok {
		view.Status = c.Classify(rec, now)
	}
	return view
}

// overlay applies the query state on top of a preset: a non-empty search and
// every constrained query field win.
func overlay(base, top filter.State) filter.State {
	out := base
	if top.Search != "" {
		out.Search = top.Search
	}
	for field, c := range top.Constraints {
		out = out.With(field, c)
	}
	return out
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	repo "github.com/rogerio-castellano/ops-dashboard/internal/repo"
)

// ListPresetsHandler godoc
// @Summary List saved filter presets of a collection
// @Tags presets
// @Produce json
// @Param collection path string true "Collection name"
// @Success 200 {object} PresetsResult
// @Failure 404 {string} string "Unknown collection"
// @Failure 500 {string} string "Internal error"
// @Router /presets/{collection} [get]
func ListPresetsHandler(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	if _, ok := catalog.Filters.Lookup(collection); !ok {
		http.Error(w, "unknown collection", http.StatusNotFound)
		return
	}

	presets, err := presetRepo.List(collection)
	if err != nil {
		logger.Error("failed to list presets", slog.String("collection", collection), slog.String("error", err.Error()))
		http.Error(w, "could not fetch presets", http.StatusInternalServerError)
		return
	}

	data := make([]PresetResponse, len(presets))
	for i, p := range presets {
		data[i] = toPresetResponse(p)
	}
	writeJSON(w, http.StatusOK, PresetsResult{Data: data})
}

// GetPresetHandler godoc
// @Summary Get a saved filter preset
// @Tags presets
// @Produce json
// @Param collection path string true "Collection name"
// @Param name path string true "Preset name"
// @Success 200 {object} PresetResponse
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /presets/{collection}/{name} [get]
func GetPresetHandler(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	name := chi.URLParam(r, "name")

	p, err := presetRepo.Get(collection, name)
	if err != nil {
		if errors.Is(err, repo.ErrPresetNotFound) {
			http.Error(w, "preset not found", http.StatusNotFound)
			return
		}
		logger.Error("failed to fetch preset", slog.String("collection", collection), slog.String("name", name), slog.String("error", err.Error()))
		http.Error(w, "could not fetch preset", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toPresetResponse(p))
}

// PutPresetHandler godoc
// @Summary Create or replace a saved filter preset
// @Tags presets
// @Accept json
// @Produce json
// @Param collection path string true "Collection name"
// @Param name path string true "Preset name"
// @Param preset body PresetRequest true "Filter state to save"
// @Success 200 {object} PresetResponse
// @Failure 400 {object} []ValidationError
// @Failure 404 {string} string "Unknown collection"
// @Failure 500 {string} string "Internal error"
// @Router /presets/{collection}/{name} [put]
func PutPresetHandler(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	name := chi.URLParam(r, "name")

	cfg, ok := catalog.Filters.Lookup(collection)
	if !ok {
		http.Error(w, "unknown collection", http.StatusNotFound)
		return
	}

	var req PresetRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if validationErrors := validatePreset(name, req.State, cfg); len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	p := repo.Preset{Collection: collection, Name: name, State: req.State}
	if err := presetRepo.Save(p); err != nil {
		logger.Error("failed to save preset", slog.String("collection", collection), slog.String("name", name), slog.String("error", err.Error()))
		http.Error(w, "could not save preset", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toPresetResponse(p))
}

// DeletePresetHandler godoc
// @Summary Delete a saved filter preset
// @Tags presets
// @Param collection path string true "Collection name"
// @Param name path string true "Preset name"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /presets/{collection}/{name} [delete]
func DeletePresetHandler(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	name := chi.URLParam(r, "name")

	if err := presetRepo.Delete(collection, name); err != nil {
		if errors.Is(err, repo.ErrPresetNotFound) {
			http.Error(w, "preset not found", http.StatusNotFound)
			return
		}
		logger.Error("failed to delete preset", slog.String("collection", collection), slog.String("name", name), slog.String("error", err.Error()))
		http.Error(w, "could not delete preset", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toPresetResponse(p repo.Preset) PresetResponse {
	return PresetResponse{Collection: p.Collection, Name: p.Name, State: p.State}
}

package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	repo "github.com/rogerio-castellano/ops-dashboard/internal/repo"
)

// parseCSV reads one record per row, keyed by the header. Empty cells are left
// out of the record.
func parseCSV(file multipart.File) ([]models.Record, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, errors.New("invalid CSV header")
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	var rows []models.Record
	for {
		line, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		rec := models.Record{}
		for i, h := range headers {
			if h == "" || i >= len(line) {
				continue
			}
			if v := strings.TrimSpace(line[i]); v != "" {
				rec[h] = v
			}
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

// ImportRecordsHandler godoc
// @Summary Import records into a collection via CSV
// @Description The header row names the fields. Rows whose id already exists are reported and skipped.
// @Tags collections
// @Accept multipart/form-data
// @Produce json
// @Param name path string true "Collection name"
// @Param file formData file true "CSV file"
// @Success 200 {object} ImportRecordsResult
// @Failure 400 {string} string "Invalid file"
// @Failure 404 {string} string "Unknown collection"
// @Router /collections/{name}/import [post]
func ImportRecordsHandler(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !models.IsCollection(name) {
		http.Error(w, "unknown collection", http.StatusNotFound)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := parseCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	imported := 0
	errorsList := []ValidationError{}
	for i, rec := range rows {
		rowNum := i + 2 // header is row 1

		if len(rec) == 0 {
			errorsList = append(errorsList, ValidationError{Description: fmt.Sprintf("row %d: empty row", rowNum)})
			continue
		}
		if _, err := collectionRepo.Create(name, rec); err != nil {
			if errors.Is(err, repo.ErrDuplicatedID) {
				errorsList = append(errorsList, ValidationError{Field: models.IDField, Description: fmt.Sprintf("row %d: record '%s' already exists", rowNum, rec.ID())})
				continue
			}
			errorsList = append(errorsList, ValidationError{Description: fmt.Sprintf("row %d: %v", rowNum, err)})
			continue
		}
		imported++
	}

	logger.Info("imported records", slog.String("collection", name), slog.Int("imported", imported), slog.Int("rejected", len(errorsList)))
	writeJSON(w, http.StatusOK, ImportRecordsResult{Imported: imported, Errors: errorsList})
}

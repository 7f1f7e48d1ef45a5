package handlers

import (
	"log/slog"

	"github.com/rogerio-castellano/ops-dashboard/internal/config"
	"github.com/rogerio-castellano/ops-dashboard/internal/observability"
	repo "github.com/rogerio-castellano/ops-dashboard/internal/repo"
)

var (
	collectionRepo repo.CollectionRepository
	metricsRepo    repo.MetricsRepository
	presetRepo     repo.PresetRepository

	catalog  = config.DefaultCatalog()
	exporter = observability.NewExporter()
	logger   = slog.Default()
)

func SetCollectionRepo(r repo.CollectionRepository) {
	collectionRepo = r
}

func SetMetricsRepo(r repo.MetricsRepository) {
	metricsRepo = r
}

func SetPresetRepo(r repo.PresetRepository) {
	presetRepo = r
}

func SetCatalog(c config.Catalog) {
	catalog = c
}

func SetExporter(e *observability.Exporter) {
	exporter = e
}

func SetLogger(l *slog.Logger) {
	logger = l
}

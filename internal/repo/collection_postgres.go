package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/ops-dashboard/internal/models"
)

// RecordsSchema creates the table backing PostgresCollectionRepository.
const RecordsSchema = `
CREATE TABLE IF NOT EXISTS records (
	position   BIGSERIAL PRIMARY KEY,
	collection TEXT NOT NULL,
	id         TEXT NOT NULL,
	data       JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (collection, id)
)`

// PostgresCollectionRepository stores records as JSONB documents, one row per record.
type PostgresCollectionRepository struct {
	db *sql.DB
}

func NewPostgresCollectionRepository(db *sql.DB) *PostgresCollectionRepository {
	return &PostgresCollectionRepository{db: db}
}

// EnsureSchema creates the records table when missing.
func (r *PostgresCollectionRepository) EnsureSchema() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, RecordsSchema); err != nil {
		return fmt.Errorf("failed to create records table: %w", err)
	}
	return nil
}

func (r *PostgresCollectionRepository) GetAll(collection string) ([]models.Record, error) {
	if !models.IsCollection(collection) {
		return nil, ErrUnknownCollection
	}

	query := `SELECT data FROM records WHERE collection = $1 ORDER BY position`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}
	defer rows.Close()

	records := []models.Record{}
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		rec, err := decodeRecord(data)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *PostgresCollectionRepository) GetByID(collection, id string) (models.Record, error) {
	if !models.IsCollection(collection) {
		return nil, ErrUnknownCollection
	}

	query := `SELECT data FROM records WHERE collection = $1 AND id = $2`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var data []byte
	err := r.db.QueryRowContext(ctx, query, collection, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeRecord(data)
}

func (r *PostgresCollectionRepository) Create(collection string, record models.Record) (models.Record, error) {
	if !models.IsCollection(collection) {
		return nil, ErrUnknownCollection
	}

	created := make(models.Record, len(record)+1)
	for k, v := range record {
		created[k] = v
	}
	if created.ID() == "" {
		created[models.IDField] = uuid.NewString()
	}

	data, err := json.Marshal(created)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}

	query := `INSERT INTO records (collection, id, data) VALUES ($1, $2, $3) ON CONFLICT (collection, id) DO NOTHING`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, collection, created.ID(), data)
	if err != nil {
		return nil, fmt.Errorf("failed to insert record: %w", err)
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return nil, ErrDuplicatedID
	}
	return created, nil
}

func (r *PostgresCollectionRepository) Collections() (models.Collections, error) {
	query := `SELECT collection, data FROM records ORDER BY collection, position`
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	out := models.Collections{}
	for rows.Next() {
		var (
			collection string
			data       []byte
		)
		if err := rows.Scan(&collection, &data); err != nil {
			return nil, err
		}
		rec, err := decodeRecord(data)
		if err != nil {
			return nil, err
		}
		out[collection] = append(out[collection], rec)
	}
	return out, rows.Err()
}

func decodeRecord(data []byte) (models.Record, error) {
	var rec models.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	return rec, nil
}

package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/ops-dashboard/internal/redissvc"
)

const presetKeyPrefix = "filter:presets:"

// RedisPresetRepository keeps one hash per collection: preset name -> JSON preset.
type RedisPresetRepository struct {
	rdb *redis.Client
	ctx context.Context
}

func NewRedisPresetRepository(rs *redissvc.RedisService) *RedisPresetRepository {
	return &RedisPresetRepository{rdb: rs.Rdb(), ctx: rs.Ctx()}
}

func presetKey(collection string) string {
	return presetKeyPrefix + collection
}

func (r *RedisPresetRepository) Save(p Preset) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode preset: %w", err)
	}
	if err := r.rdb.HSet(r.ctx, presetKey(p.Collection), p.Name, data).Err(); err != nil {
		return fmt.Errorf("failed to save preset: %w", err)
	}
	return nil
}

func (r *RedisPresetRepository) Get(collection, name string) (Preset, error) {
	data, err := r.rdb.HGet(r.ctx, presetKey(collection), name).Bytes()
	if errors.Is(err, redis.Nil) {
		return Preset{}, ErrPresetNotFound
	}
	if err != nil {
		return Preset{}, fmt.Errorf("failed to read preset: %w", err)
	}

	var p Preset
	if err := json.Unmarshal(data, &p); err != nil {
		return Preset{}, fmt.Errorf("failed to decode preset: %w", err)
	}
	return p, nil
}

// List returns the presets of a collection sorted by name. Entries that fail to
// decode are skipped.
func (r *RedisPresetRepository) List(collection string) ([]Preset, error) {
	entries, err := r.rdb.HGetAll(r.ctx, presetKey(collection)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}

	out := []Preset{}
	for _, item := range entries {
		var p Preset
		if err := json.Unmarshal([]byte(item), &p); err == nil {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *RedisPresetRepository) Delete(collection, name string) error {
	n, err := r.rdb.HDel(r.ctx, presetKey(collection), name).Result()
	if err != nil {
		return fmt.Errorf("failed to delete preset: %w", err)
	}
	if n == 0 {
		return ErrPresetNotFound
	}
	return nil
}

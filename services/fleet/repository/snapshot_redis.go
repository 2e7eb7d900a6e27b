package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/fleetflow/fleetflow/internal/pkg/database"
	"github.com/fleetflow/fleetflow/internal/pkg/models"
)

// RedisSnapshotStore persists the full entity set as a JSON blob under a
// single key. It implements fleet.SnapshotStore.
type RedisSnapshotStore struct {
	client *database.RedisClient
	key    string
}

// NewRedisSnapshotStore creates the adapter
func NewRedisSnapshotStore(client *database.RedisClient, key string) *RedisSnapshotStore {
	return &RedisSnapshotStore{client: client, key: key}
}

// LoadSnapshot returns the stored entity set, or an empty snapshot when
// the key does not exist
func (s *RedisSnapshotStore) LoadSnapshot(ctx context.Context) (*models.FleetSnapshot, error) {
	raw, err := s.client.Get(ctx, s.key)
	if errors.Is(err, redis.Nil) {
		return &models.FleetSnapshot{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	snap := &models.FleetSnapshot{}
	if err := json.Unmarshal([]byte(raw), snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	return snap, nil
}

// SaveSnapshot stores the entity set without expiration
func (s *RedisSnapshotStore) SaveSnapshot(ctx context.Context, snap models.FleetSnapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := s.client.Set(ctx, s.key, raw, 0); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

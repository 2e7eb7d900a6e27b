package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
)

// PostgresSnapshotStore persists the full entity set as one JSON document
// per named snapshot. It implements fleet.SnapshotStore.
type PostgresSnapshotStore struct {
	db   *sqlx.DB
	name string
}

// NewPostgresSnapshotStore creates the adapter and ensures its table exists
func NewPostgresSnapshotStore(db *sqlx.DB, name string) (*PostgresSnapshotStore, error) {
	schema := `
		CREATE TABLE IF NOT EXISTS fleet_snapshots (
			name       TEXT PRIMARY KEY,
			data       JSONB NOT NULL,
			taken_at   TIMESTAMPTZ NOT NULL
		)
	`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to ensure snapshot table: %w", err)
	}

	return &PostgresSnapshotStore{db: db, name: name}, nil
}

// LoadSnapshot returns the stored entity set, or an empty snapshot when
// none has been saved yet
func (s *PostgresSnapshotStore) LoadSnapshot(ctx context.Context) (*models.FleetSnapshot, error) {
	var raw []byte
	query := `SELECT data FROM fleet_snapshots WHERE name = $1`

	err := s.db.QueryRowContext(ctx, query, s.name).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return &models.FleetSnapshot{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	snap := &models.FleetSnapshot{}
	if err := json.Unmarshal(raw, snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	return snap, nil
}

// SaveSnapshot upserts the entity set
func (s *PostgresSnapshotStore) SaveSnapshot(ctx context.Context, snap models.FleetSnapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	query := `
		INSERT INTO fleet_snapshots (name, data, taken_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, taken_at = EXCLUDED.taken_at
	`
	if _, err := s.db.ExecContext(ctx, query, s.name, raw, snap.TakenAt); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

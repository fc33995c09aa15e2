package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"mortgage-advisory-engine/internal/models"
)

// SimulationRepository persists simulation snapshots as JSONB documents.
// The snapshot is self-contained; the indexed columns exist for listing
// and lookup only.
type SimulationRepository struct {
	db *DB
}

// NewSimulationRepository creates a repository on an open connection.
func NewSimulationRepository(db *DB) *SimulationRepository {
	return &SimulationRepository{db: db}
}

// EnsureSchema creates the simulations table and its listing index when
// missing, atomically.
func (r *SimulationRepository) EnsureSchema(ctx context.Context) error {
	return r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			CREATE TABLE IF NOT EXISTS simulations (
				id UUID PRIMARY KEY,
				created_at TIMESTAMPTZ NOT NULL,
				score INT NOT NULL,
				max_price NUMERIC(12,2) NOT NULL,
				snapshot JSONB NOT NULL
			)`); err != nil {
			return fmt.Errorf("failed to ensure simulations table: %w", err)
		}
		if _, err := tx.Exec(ctx, `
			CREATE INDEX IF NOT EXISTS simulations_created_at_idx
			ON simulations (created_at DESC)`); err != nil {
			return fmt.Errorf("failed to ensure simulations index: %w", err)
		}
		return nil
	})
}

// Create stores one simulation snapshot.
func (r *SimulationRepository) Create(ctx context.Context, result *models.SimulationResult) error {
	snapshot, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal simulation snapshot: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO simulations (id, created_at, score, max_price, snapshot)
		VALUES ($1, $2, $3, $4, $5)`,
		result.ID, result.CreatedAt, result.Score.Score, result.Purchase.MaxPurchasePrice, snapshot)
	if err != nil {
		return fmt.Errorf("failed to insert simulation: %w", err)
	}

	return nil
}

// GetByID loads one simulation snapshot.
func (r *SimulationRepository) GetByID(ctx context.Context, id string) (*models.SimulationResult, error) {
	var snapshot []byte

	row := r.db.QueryRowContext(ctx, `SELECT snapshot FROM simulations WHERE id = $1`, id)
	if err := row.Scan(&snapshot); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrSimulationNotFound
		}
		return nil, fmt.Errorf("failed to query simulation: %w", err)
	}

	var result models.SimulationResult
	if err := json.Unmarshal(snapshot, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal simulation snapshot: %w", err)
	}

	return &result, nil
}

// ListRecent returns the latest simulations, newest first.
func (r *SimulationRepository) ListRecent(ctx context.Context, limit int) ([]models.SimulationResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT snapshot FROM simulations
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list simulations: %w", err)
	}
	defer rows.Close()

	var results []models.SimulationResult
	for rows.Next() {
		var snapshot []byte
		if err := rows.Scan(&snapshot); err != nil {
			return nil, fmt.Errorf("failed to scan simulation row: %w", err)
		}

		var result models.SimulationResult
		if err := json.Unmarshal(snapshot, &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal simulation snapshot: %w", err)
		}
		results = append(results, result)
	}

	return results, rows.Err()
}

// DeleteOlderThan removes snapshots past their retention window and
// returns how many were deleted.
func (r *SimulationRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	deleted, err := r.db.ExecContext(ctx, `DELETE FROM simulations WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old simulations: %w", err)
	}
	return deleted, nil
}

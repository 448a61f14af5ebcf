// Package postgres persists fairness score snapshots. Persistence is an
// optional supplement: the pipeline itself stays stateless and the
// repository is only wired when a database URL is configured.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"fairdex/internal/errors"
	"fairdex/internal/score"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Snapshot is one persisted scoring run for a single year.
type Snapshot struct {
	ID        string      `json:"id"`
	Year      int         `json:"year"`
	Rows      []score.Row `json:"rows"`
	CreatedAt time.Time   `json:"created_at"`
}

// SnapshotRepository stores and retrieves score snapshots.
type SnapshotRepository interface {
	Save(ctx context.Context, year int, rows []score.Row) (string, error)
	Latest(ctx context.Context, year int) (*Snapshot, error)
}

type snapshotRepository struct {
	db *sqlx.DB
}

// NewSnapshotRepository creates a snapshot repository
func NewSnapshotRepository(db *sqlx.DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

// EnsureSchema creates the snapshot table if it does not exist.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	schema := `CREATE TABLE IF NOT EXISTS score_snapshots (
		id UUID PRIMARY KEY,
		year INT NOT NULL,
		rows JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS score_snapshots_year_idx ON score_snapshots (year, created_at DESC);`

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return errors.Wrap(err, "failed to create score_snapshots schema")
	}
	return nil
}

// Save stores one year's scored rows and returns the snapshot ID.
func (r *snapshotRepository) Save(ctx context.Context, year int, rows []score.Row) (string, error) {
	rowsJSON, err := json.Marshal(rows)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal score rows")
	}

	id := uuid.NewString()
	query := `INSERT INTO score_snapshots (id, year, rows, created_at) VALUES ($1, $2, $3, $4)`
	if _, err := r.db.ExecContext(ctx, query, id, year, rowsJSON, time.Now().UTC()); err != nil {
		return "", errors.Wrap(err, "failed to save score snapshot")
	}
	return id, nil
}

// Latest retrieves the most recent snapshot for a year, or nil when none
// exists.
func (r *snapshotRepository) Latest(ctx context.Context, year int) (*Snapshot, error) {
	query := `SELECT id, year, rows, created_at FROM score_snapshots
		WHERE year = $1 ORDER BY created_at DESC LIMIT 1`

	var snap Snapshot
	var rowsJSON []byte
	err := r.db.QueryRowContext(ctx, query, year).Scan(&snap.ID, &snap.Year, &rowsJSON, &snap.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load score snapshot")
	}

	if err := json.Unmarshal(rowsJSON, &snap.Rows); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal score rows")
	}
	return &snap, nil
}

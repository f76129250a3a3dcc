// Package postgres implements the prediction and share stores on
// PostgreSQL for multi-node deployments.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bracelet/internal/domain"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// Store wraps a *sql.DB and implements the domain repository interfaces.
type Store struct {
	db *sql.DB
}

// Ensure interfaces are met.
var _ domain.PredictionRepository = (*Store)(nil)
var _ domain.ShareRepository = (*Store)(nil)

// Open connects to PostgreSQL, pings, and runs migrations.
func Open(connStr string) (*Store, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &Store{db: db}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS predictions (
			id TEXT PRIMARY KEY,
			payload JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS shares (
			id TEXT PRIMARY KEY,
			prediction_id TEXT NOT NULL REFERENCES predictions(id) ON DELETE CASCADE,
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_shares_expires_at ON shares(expires_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// SavePrediction stores the record as a JSON payload under a fresh ID.
func (s *Store) SavePrediction(ctx context.Context, result *domain.PredictionResult) (string, error) {
	id := uuid.NewString()
	stored := *result
	stored.ID = id

	payload, err := json.Marshal(&stored)
	if err != nil {
		return "", err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO predictions(id, payload, created_at) VALUES($1, $2, $3);`,
		id, payload, time.Now().UTC(),
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// GetPrediction returns a stored prediction or domain.ErrNotFound.
func (s *Store) GetPrediction(ctx context.Context, id string) (*domain.PredictionResult, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM predictions WHERE id=$1;`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var result domain.PredictionResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SaveShare creates a share link expiring after ttl.
func (s *Store) SaveShare(ctx context.Context, predictionID string, ttl time.Duration) (string, error) {
	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO shares(id, prediction_id, expires_at, created_at) VALUES($1, $2, $3, $4);`,
		id, predictionID, now.Add(ttl), now,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// GetShare resolves a share link, treating expired rows as absent.
func (s *Store) GetShare(ctx context.Context, shareID string) (string, error) {
	var predictionID string
	err := s.db.QueryRowContext(ctx,
		`SELECT prediction_id FROM shares WHERE id=$1 AND expires_at > NOW();`,
		shareID,
	).Scan(&predictionID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return predictionID, nil
}

// DeleteExpiredShares removes expired share rows. Idempotent and safe to
// run concurrently with other operations.
func (s *Store) DeleteExpiredShares(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM shares WHERE expires_at <= NOW();`)
	return err
}

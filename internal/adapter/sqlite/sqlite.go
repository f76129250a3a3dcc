// Package sqlite implements the prediction and share stores on a local
// SQLite file, the default persistence for single-node deployments.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"bracelet/internal/domain"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store wraps a *sql.DB over a SQLite file and implements the domain
// repository interfaces.
type Store struct {
	db *sql.DB
}

// Ensure interfaces are met.
var _ domain.PredictionRepository = (*Store)(nil)
var _ domain.ShareRepository = (*Store)(nil)

// Open creates the database file (and its directory) if needed, pings and
// runs migrations.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// The driver is file-backed; a single writer avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

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

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS predictions (
			id TEXT PRIMARY KEY,
			payload TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS shares (
			id TEXT PRIMARY KEY,
			prediction_id TEXT NOT NULL,
			expires_at INTEGER NOT NULL,
			created_at INTEGER NOT NULL
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
		id, string(payload), time.Now().Unix(),
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// GetPrediction returns a stored prediction or domain.ErrNotFound.
func (s *Store) GetPrediction(ctx context.Context, id string) (*domain.PredictionResult, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM predictions WHERE id=$1;`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var result domain.PredictionResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SaveShare creates a share link expiring after ttl.
func (s *Store) SaveShare(ctx context.Context, predictionID string, ttl time.Duration) (string, error) {
	id := uuid.NewString()
	now := time.Now()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO shares(id, prediction_id, expires_at, created_at) VALUES($1, $2, $3, $4);`,
		id, predictionID, now.Add(ttl).Unix(), now.Unix(),
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
		`SELECT prediction_id FROM shares WHERE id=$1 AND expires_at > $2;`,
		shareID, time.Now().Unix(),
	).Scan(&predictionID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return predictionID, nil
}

// DeleteExpiredShares removes expired share rows. Safe to run concurrently
// with reads and writes.
func (s *Store) DeleteExpiredShares(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM shares WHERE expires_at <= $1;`, time.Now().Unix())
	return err
}

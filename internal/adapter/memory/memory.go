// Package memory implements an in-memory store for development and testing.
package memory

import (
	"context"
	"sync"
	"time"

	"bracelet/internal/domain"

	"github.com/google/uuid"
)

// Store implements the prediction and share repositories in memory.
type Store struct {
	mu          sync.Mutex
	predictions map[string]domain.PredictionResult
	shares      map[string]share
}

type share struct {
	predictionID string
	expiresAt    time.Time
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		predictions: make(map[string]domain.PredictionResult),
		shares:      make(map[string]share),
	}
}

// Ensure interfaces are met.
var _ domain.PredictionRepository = (*Store)(nil)
var _ domain.ShareRepository = (*Store)(nil)

// SavePrediction stores a prediction under a fresh ID.
func (s *Store) SavePrediction(ctx context.Context, result *domain.PredictionResult) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	stored := *result
	stored.ID = id
	s.predictions[id] = stored
	return id, nil
}

// GetPrediction returns a stored prediction or domain.ErrNotFound.
func (s *Store) GetPrediction(ctx context.Context, id string) (*domain.PredictionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.predictions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	ret := stored
	return &ret, nil
}

// SaveShare creates a share link that expires after ttl.
func (s *Store) SaveShare(ctx context.Context, predictionID string, ttl time.Duration) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.shares[id] = share{predictionID: predictionID, expiresAt: time.Now().Add(ttl)}
	return id, nil
}

// GetShare resolves a share link. Expiry is checked lazily: expired shares
// are dropped here even when no sweep has run yet.
func (s *Store) GetShare(ctx context.Context, shareID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sh, ok := s.shares[shareID]
	if !ok {
		return "", domain.ErrNotFound
	}
	if time.Now().After(sh.expiresAt) {
		delete(s.shares, shareID)
		return "", domain.ErrNotFound
	}
	return sh.predictionID, nil
}

// DeleteExpiredShares removes all expired share links.
func (s *Store) DeleteExpiredShares(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for id, sh := range s.shares {
		if now.After(sh.expiresAt) {
			delete(s.shares, id)
		}
	}
	return nil
}

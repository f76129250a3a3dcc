package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"bracelet/internal/adapter/sqlite"
	"bracelet/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.Open(filepath.Join(t.TempDir(), "bracelet.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestPredictionRoundTrip(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	result := &domain.PredictionResult{
		Basic: domain.BasicPrediction{
			Name:     "测试",
			Zodiac:   "龙",
			Elements: []string{"木", "水"},
		},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	id, err := s.SavePrediction(ctx, result)
	require.NoError(t, err)

	got, err := s.GetPrediction(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "龙", got.Basic.Zodiac)
	assert.Equal(t, []string{"木", "水"}, got.Basic.Elements)

	_, err = s.GetPrediction(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestShareLifecycle(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	pid, err := s.SavePrediction(ctx, &domain.PredictionResult{})
	require.NoError(t, err)

	live, err := s.SaveShare(ctx, pid, time.Hour)
	require.NoError(t, err)
	expired, err := s.SaveShare(ctx, pid, -time.Minute)
	require.NoError(t, err)

	got, err := s.GetShare(ctx, live)
	require.NoError(t, err)
	assert.Equal(t, pid, got)

	_, err = s.GetShare(ctx, expired)
	assert.ErrorIs(t, err, domain.ErrNotFound, "expired share reads as absent before any sweep")

	require.NoError(t, s.DeleteExpiredShares(ctx))
	require.NoError(t, s.DeleteExpiredShares(ctx))

	got, err = s.GetShare(ctx, live)
	require.NoError(t, err)
	assert.Equal(t, pid, got)
}

func TestOpenCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "bracelet.db")
	s, err := sqlite.Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())
}

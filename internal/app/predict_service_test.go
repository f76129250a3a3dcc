package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bracelet/internal/adapter/memory"
	"bracelet/internal/app"
	"bracelet/internal/calendar"
	"bracelet/internal/domain"
)

type stubEnricher struct {
	enrichFn func(ctx context.Context, basic *domain.BasicPrediction) domain.EnrichedPrediction
	statusFn func(ctx context.Context) domain.EnrichmentStatus
}

func (s *stubEnricher) Enrich(ctx context.Context, basic *domain.BasicPrediction) domain.EnrichedPrediction {
	if s.enrichFn != nil {
		return s.enrichFn(ctx, basic)
	}
	return domain.EnrichedPrediction{Enriched: false}
}

func (s *stubEnricher) Status(ctx context.Context) domain.EnrichmentStatus {
	if s.statusFn != nil {
		return s.statusFn(ctx)
	}
	return domain.EnrichmentStatus{Success: true}
}

func newService(enricher domain.Enricher) (*app.PredictService, *memory.Store) {
	store := memory.New()
	return app.NewPredictService(store, store, enricher, 7*24*time.Hour), store
}

func TestPredictBasicProfile(t *testing.T) {
	svc, store := newService(nil)

	result, err := svc.Predict(context.Background(), domain.Subject{
		Name: "张三", Gender: "男",
		BirthYear: 2000, BirthMonth: 1, BirthDay: 1, BirthHour: 12,
		Purpose: "财运", Religion: "无",
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.ID)
	require.Equal(t, "2000-01-01", result.Basic.BirthDate)
	require.Equal(t, "12:00", result.Basic.BirthTime)
	require.Equal(t, "龙", result.Basic.Zodiac)
	require.Equal(t, "摩羯座", result.Basic.StarSign)
	require.Len(t, result.Basic.LuckyNumbers, 2)
	require.False(t, result.Enhanced.Enriched)
	require.Equal(t, "未启用增强预测", result.Enhanced.Message)
	require.Equal(t, "basic", result.Bracelet.Source)

	stored, err := store.GetPrediction(context.Background(), result.ID)
	require.NoError(t, err)
	require.Equal(t, result.Basic, stored.Basic)
}

func TestPredictLunarInputNormalized(t *testing.T) {
	svc, _ := newService(nil)

	result, err := svc.Predict(context.Background(), domain.Subject{
		BirthYear: 1999, BirthMonth: 11, BirthDay: 25, BirthHour: 12,
		IsLunar: true, Purpose: "财运", Religion: "无",
	})
	require.NoError(t, err)
	// Lunar 1999-11-25 is solar 2000-01-01.
	require.Equal(t, "2000-01-01", result.Basic.BirthDate)
	require.Equal(t, "摩羯座", result.Basic.StarSign)
}

func TestPredictInvalidDate(t *testing.T) {
	svc, _ := newService(nil)

	_, err := svc.Predict(context.Background(), domain.Subject{
		BirthYear: 2000, BirthMonth: 2, BirthDay: 30, BirthHour: 12,
	})
	require.ErrorIs(t, err, calendar.ErrInvalidDate)

	_, err = svc.Predict(context.Background(), domain.Subject{
		BirthYear: 2000, BirthMonth: 13, BirthDay: 1, BirthHour: 12,
		IsLunar: true,
	})
	require.ErrorIs(t, err, calendar.ErrInvalidDate)
}

func TestPredictEnhancedBraceletOverride(t *testing.T) {
	enricher := &stubEnricher{
		enrichFn: func(ctx context.Context, basic *domain.BasicPrediction) domain.EnrichedPrediction {
			return domain.EnrichedPrediction{
				Enriched:               true,
				YearlyFortune:          "整体运势平稳向好",
				BraceletRecommendation: "推荐佩戴小叶紫檀手串",
			}
		},
	}
	svc, _ := newService(enricher)

	result, err := svc.Predict(context.Background(), domain.Subject{
		BirthYear: 1990, BirthMonth: 6, BirthDay: 15, BirthHour: 12,
		Purpose: "事业", Religion: "无",
	})
	require.NoError(t, err)
	require.True(t, result.Enhanced.Enriched)
	require.Equal(t, "enhanced", result.Bracelet.Source)
	require.Equal(t, "推荐佩戴小叶紫檀手串", result.Bracelet.Text)
}

func TestPredictEnrichmentFailureKeepsBasicBracelet(t *testing.T) {
	enricher := &stubEnricher{
		enrichFn: func(ctx context.Context, basic *domain.BasicPrediction) domain.EnrichedPrediction {
			return domain.EnrichedPrediction{Enriched: false, Error: "请求失败"}
		},
	}
	svc, _ := newService(enricher)

	result, err := svc.Predict(context.Background(), domain.Subject{
		BirthYear: 1990, BirthMonth: 6, BirthDay: 15, BirthHour: 12,
		Purpose: "财运", Religion: "无",
	})
	require.NoError(t, err)
	require.Equal(t, "basic", result.Bracelet.Source)
}

func TestShareAndResolve(t *testing.T) {
	svc, _ := newService(nil)

	result, err := svc.Predict(context.Background(), domain.Subject{
		BirthYear: 1990, BirthMonth: 6, BirthDay: 15, BirthHour: 12,
		Purpose: "财运", Religion: "无",
	})
	require.NoError(t, err)

	shareID, err := svc.Share(context.Background(), result.ID)
	require.NoError(t, err)
	require.NotEmpty(t, shareID)

	resolved, err := svc.SharedPrediction(context.Background(), shareID)
	require.NoError(t, err)
	require.Equal(t, result.ID, resolved.ID)
}

func TestShareUnknownPrediction(t *testing.T) {
	svc, _ := newService(nil)

	_, err := svc.Share(context.Background(), "no-such-id")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEnrichmentStatusWithoutEnricher(t *testing.T) {
	svc, _ := newService(nil)

	status := svc.EnrichmentStatus(context.Background())
	require.False(t, status.Success)
	require.Equal(t, "未启用增强预测", status.Message)
}

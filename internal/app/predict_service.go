package app

import (
	"context"
	"fmt"
	"time"

	"bracelet/internal/calendar"
	"bracelet/internal/domain"
	"bracelet/internal/recommend"
)

// PredictService runs the full prediction flow: calendar facts, base
// recommendation, optional enrichment, persistence.
type PredictService struct {
	predictions domain.PredictionRepository
	shares      domain.ShareRepository
	enricher    domain.Enricher
	shareTTL    time.Duration
}

// NewPredictService creates a PredictService. enricher may be nil when
// enrichment is disabled.
func NewPredictService(predictions domain.PredictionRepository, shares domain.ShareRepository, enricher domain.Enricher, shareTTL time.Duration) *PredictService {
	return &PredictService{
		predictions: predictions,
		shares:      shares,
		enricher:    enricher,
		shareTTL:    shareTTL,
	}
}

// Predict computes and stores a prediction for the subject. Only an invalid
// birth date or a storage failure is an error; enrichment and
// recommendation failures degrade into the result.
func (s *PredictService) Predict(ctx context.Context, subj domain.Subject) (*domain.PredictionResult, error) {
	solar := calendar.SolarDate{Year: subj.BirthYear, Month: subj.BirthMonth, Day: subj.BirthDay}
	if subj.IsLunar {
		var err error
		solar, err = calendar.LunarToSolar(calendar.LunarDate{Year: subj.BirthYear, Month: subj.BirthMonth, Day: subj.BirthDay})
		if err != nil {
			return nil, err
		}
	} else if !calendar.IsValidSolarDate(solar.Year, solar.Month, solar.Day) {
		return nil, fmt.Errorf("%w: 无效的阳历日期 %d-%d-%d", calendar.ErrInvalidDate, solar.Year, solar.Month, solar.Day)
	}

	pillars, err := calendar.ComputeFourPillars(subj.BirthYear, subj.BirthMonth, subj.BirthDay, subj.BirthHour, subj.IsLunar)
	if err != nil {
		return nil, err
	}
	elements := calendar.Elements(pillars)
	colors := luckyColors(elements)

	basic := domain.BasicPrediction{
		Name:         subj.Name,
		Gender:       subj.Gender,
		BirthDate:    isoDate(solar.Year, solar.Month, solar.Day),
		BirthTime:    fmt.Sprintf("%d:00", subj.BirthHour),
		BirthPlace:   subj.BirthPlace,
		Zodiac:       calendar.Zodiac(solar.Year),
		StarSign:     calendar.StarSign(solar.Month, solar.Day),
		FourPillars:  pillars,
		Elements:     elements,
		LuckyNumbers: luckyNumbers(solar),
		LuckyColors:  colors,
		Purpose:      subj.Purpose,
		Religion:     subj.Religion,
	}

	enriched := domain.EnrichedPrediction{Enriched: false, Message: "未启用增强预测"}
	if s.enricher != nil {
		enriched = s.enricher.Enrich(ctx, &basic)
	}

	bracelet := recommend.Recommend(elements, subj.Purpose, subj.Religion, colors)
	if enriched.Enriched && enriched.BraceletRecommendation != "" {
		bracelet = recommend.Enhanced(enriched.BraceletRecommendation)
	}

	result := &domain.PredictionResult{
		Basic:     basic,
		Enhanced:  enriched,
		Bracelet:  bracelet,
		CreatedAt: time.Now().UTC(),
	}
	id, err := s.predictions.SavePrediction(ctx, result)
	if err != nil {
		return nil, err
	}
	result.ID = id
	return result, nil
}

// Share creates a share link for a stored prediction.
func (s *PredictService) Share(ctx context.Context, predictionID string) (string, error) {
	if _, err := s.predictions.GetPrediction(ctx, predictionID); err != nil {
		return "", err
	}
	return s.shares.SaveShare(ctx, predictionID, s.shareTTL)
}

// SharedPrediction resolves a share link to its prediction. Expired or
// unknown shares come back as domain.ErrNotFound.
func (s *PredictService) SharedPrediction(ctx context.Context, shareID string) (*domain.PredictionResult, error) {
	predictionID, err := s.shares.GetShare(ctx, shareID)
	if err != nil {
		return nil, err
	}
	return s.predictions.GetPrediction(ctx, predictionID)
}

// EnrichmentStatus checks gateway connectivity.
func (s *PredictService) EnrichmentStatus(ctx context.Context) domain.EnrichmentStatus {
	if s.enricher == nil {
		return domain.EnrichmentStatus{Success: false, Message: "未启用增强预测"}
	}
	return s.enricher.Status(ctx)
}

// luckyNumbers derives the two lucky numbers from the solar birth date. The
// second shifts by one when both collide.
func luckyNumbers(d calendar.SolarDate) []int {
	n1 := (d.Day+d.Month)%9 + 1
	n2 := (d.Year%100)%9 + 1
	if n1 == n2 {
		n2 = n2%9 + 1
	}
	return []int{n1, n2}
}

// luckyColors expands each element into its color pair, in element order.
func luckyColors(elements []string) []string {
	out := make([]string, 0, 2*len(elements))
	for _, e := range elements {
		out = append(out, calendar.ElementColors[e]...)
	}
	return out
}

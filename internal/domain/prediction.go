// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"errors"
	"time"

	"bracelet/internal/calendar"
	"bracelet/internal/recommend"
)

// ErrNotFound indicates a missing or expired record.
var ErrNotFound = errors.New("not found")

// Subject is the birth-moment input a prediction is computed from.
type Subject struct {
	Name       string `json:"name"`
	Gender     string `json:"gender"`
	BirthYear  int    `json:"birthYear"`
	BirthMonth int    `json:"birthMonth"`
	BirthDay   int    `json:"birthDay"`
	BirthHour  int    `json:"birthHour"`
	IsLunar    bool   `json:"isLunarDate"`
	BirthPlace string `json:"birthPlace"`
	Purpose    string `json:"purpose"`
	Religion   string `json:"religion"`
}

// BasicPrediction is the deterministic calendar-derived profile.
type BasicPrediction struct {
	Name         string               `json:"name"`
	Gender       string               `json:"gender"`
	BirthDate    string               `json:"birthDate"`
	BirthTime    string               `json:"birthTime"`
	BirthPlace   string               `json:"birthPlace"`
	Zodiac       string               `json:"zodiac"`
	StarSign     string               `json:"starSign"`
	FourPillars  calendar.FourPillars `json:"fourPillars"`
	Elements     []string             `json:"fiveElements"`
	LuckyNumbers []int                `json:"luckyNumbers"`
	LuckyColors  []string             `json:"luckyColors"`
	Purpose      string               `json:"purpose"`
	Religion     string               `json:"religion"`
}

// PredictionResult is the stored, shareable record: the deterministic
// profile, the optional enrichment and the bracelet recommendation.
// Write-once: never mutated after Save.
type PredictionResult struct {
	ID        string                   `json:"id,omitempty"`
	Basic     BasicPrediction          `json:"basicPrediction"`
	Enhanced  EnrichedPrediction       `json:"enhancedPrediction"`
	Bracelet  recommend.Recommendation `json:"braceletRecommendation"`
	CreatedAt time.Time                `json:"createdAt"`
}

// PredictionRepository is the port for prediction persistence.
type PredictionRepository interface {
	SavePrediction(ctx context.Context, result *PredictionResult) (string, error)
	GetPrediction(ctx context.Context, id string) (*PredictionResult, error)
}

// ShareRepository is the port for share links. Expiry is lazy: GetShare
// reports ErrNotFound for expired records even before a sweep removes them.
type ShareRepository interface {
	SaveShare(ctx context.Context, predictionID string, ttl time.Duration) (string, error)
	GetShare(ctx context.Context, shareID string) (string, error)
	DeleteExpiredShares(ctx context.Context) error
}

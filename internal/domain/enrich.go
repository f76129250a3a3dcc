package domain

import "context"

// EnrichedPrediction is the generative-text enrichment of a basic
// prediction. Enriched=false carries the reason instead of content; it is
// never an error condition for the caller.
type EnrichedPrediction struct {
	Enriched               bool   `json:"enriched"`
	YearlyFortune          string `json:"yearlyFortune,omitempty"`
	PurposeAdvice          string `json:"purposeAdvice,omitempty"`
	BraceletRecommendation string `json:"braceletRecommendation,omitempty"`
	UsageTips              string `json:"usageTips,omitempty"`
	Error                  string `json:"error,omitempty"`
	Message                string `json:"message,omitempty"`
}

// EnrichmentStatus reports the outcome of a gateway connectivity check.
type EnrichmentStatus struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Response string `json:"response,omitempty"`
}

// Enricher is the port to the generative-text gateway. Enrich must not
// block beyond its own timeout and must fold every failure into
// Enriched=false rather than returning an error.
type Enricher interface {
	Enrich(ctx context.Context, basic *BasicPrediction) EnrichedPrediction
	Status(ctx context.Context) EnrichmentStatus
}

package domain

// IntentSpec is the resolved shopper intent for one request. Category and
// Brand use "" for absent; price bounds use nil pointers for absent.
// After reconciliation, non-nil bounds satisfy *PriceMin <= *PriceMax.
type IntentSpec struct {
	Intent   string   `json:"intent,omitempty"` // optional product word from the intent service
	Category string   `json:"category,omitempty"`
	Brand    string   `json:"brand,omitempty"`
	PriceMin *float64 `json:"price_min"`
	PriceMax *float64 `json:"price_max"`
	Features []string `json:"features"`
}

// ScoredCandidate pairs a catalog product with its relevance score.
// Created only during ranking and discarded after the response is built.
type ScoredCandidate struct {
	Product ProductRecord `json:"product"`
	Score   float64       `json:"score"`
}

// DebugInfo exposes how the intent was resolved for a request
type DebugInfo struct {
	Parsed            IntentSpec `json:"parsed"`
	EffectiveKeywords []string   `json:"effectiveKeywords"`
	Features          []string   `json:"features"`
}

// Recommendation is the full result of running the pipeline for one prompt
type Recommendation struct {
	Products []ProductRecord `json:"products"`
	Debug    DebugInfo       `json:"debug"`
}

package usecase

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/shoplens/backend/internal/domain"
)

// intentSystemPrompt is the fixed instruction payload sent with every
// extraction request. The response is still treated as untrusted text.
const intentSystemPrompt = `You are a shopping intent parser. ` +
	`Given a user's shopping request, reply with ONLY a strict JSON object ` +
	`with these fields: "intent" (string, the product the user wants), ` +
	`"category" (string), "brand" (string), "price_min" (number or null), ` +
	`"price_max" (number or null), "features" (array of strings). ` +
	`Use null for anything you cannot determine. No explanations, no markdown.`

// IntentSignals holds intent fields derived from a single source (the
// probabilistic service or the local detectors) before reconciliation.
type IntentSignals struct {
	Intent   string
	Category string
	Brand    string
	PriceMin *float64
	PriceMax *float64
	Features []string
}

// IntentExtractor produces best-effort intent signals by consulting the
// structured-intent service and, independently, the local detectors. Service
// failures and malformed responses are absorbed: the AI signals come back
// empty and the caller proceeds on the local ones.
type IntentExtractor struct {
	service    domain.IntentService
	brands     *BrandDetector
	categories *CategoryDetector
	debug      bool
}

// NewIntentExtractor creates an extractor with the given collaborator and
// local fallback detectors.
func NewIntentExtractor(service domain.IntentService, brands *BrandDetector, categories *CategoryDetector, debug bool) *IntentExtractor {
	if brands == nil {
		brands = NewBrandDetector(nil)
	}
	if categories == nil {
		categories = NewCategoryDetector(nil)
	}
	return &IntentExtractor{
		service:    service,
		brands:     brands,
		categories: categories,
		debug:      debug,
	}
}

// Extract returns the AI-derived and locally-derived intent signals for the
// raw request text. The local signals always run; the AI signals are zero
// whenever the service fails or returns nothing parseable.
func (e *IntentExtractor) Extract(ctx context.Context, text string) (ai, local IntentSignals) {
	local.Category = e.categories.Detect(text)
	local.Brand = e.brands.Detect(text)
	local.PriceMin, local.PriceMax = ParsePriceRange(text)

	if e.service == nil {
		return ai, local
	}

	raw, err := e.service.Complete(ctx, intentSystemPrompt, text)
	if err != nil {
		// Recovered locally: extraction proceeds on local detectors only
		log.Printf("[INTENT] service call failed, using local fallbacks: %v", err)
		return ai, local
	}

	ai = parseIntentJSON(raw)
	if e.debug {
		log.Printf("[INTENT] ai=%+v local=%+v", ai, local)
	}
	return ai, local
}

// parseIntentJSON locates the first balanced-looking JSON object in the
// service's textual response (first '{' to last '}') and defensively reads
// the intent fields out of it. Anything malformed yields zero signals.
func parseIntentJSON(raw string) IntentSignals {
	var signals IntentSignals

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return signals
	}

	var fields map[string]interface{}
	if err := json.Unmarshal([]byte(raw[start:end+1]), &fields); err != nil {
		return signals
	}

	signals.Intent = pickString(fields, "intent")
	signals.Category = pickString(fields, "category")
	signals.Brand = pickString(fields, "brand")
	signals.PriceMin = ParseAmount(fields["price_min"])
	signals.PriceMax = ParseAmount(fields["price_max"])
	signals.Features = pickStringList(fields, "features")

	return signals
}

// pickString returns the trimmed string value for the key, or "" when the
// field is absent or not a string.
func pickString(fields map[string]interface{}, key string) string {
	if s, ok := fields[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// pickStringList returns the string entries of an array field, dropping
// empties. Non-array or absent fields yield an empty list.
func pickStringList(fields map[string]interface{}, key string) []string {
	items, ok := fields[key].([]interface{})
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}

package usecase

import (
	"sort"
	"strings"
	"unicode"

	"github.com/shoplens/backend/internal/domain"
)

// Result window and keyword fallback limits
const (
	maxResults           = 20
	maxFallbackKeywords  = 5
	minFallbackTokenSize = 2 // tokens must be longer than this
)

// RankingPipeline filters the catalog snapshot by the resolved intent,
// scores the survivors, and returns the top results.
type RankingPipeline struct {
	scorer *ScoringEngine
}

// NewRankingPipeline creates a ranking pipeline
func NewRankingPipeline(scorer *ScoringEngine) *RankingPipeline {
	if scorer == nil {
		scorer = NewScoringEngine()
	}
	return &RankingPipeline{scorer: scorer}
}

// Rank runs filter -> score -> sort -> truncate over the catalog snapshot.
// Returns the ranked products (at most 20, possibly zero - an empty result
// is a valid outcome, not an error) and the effective keyword set used.
func (p *RankingPipeline) Rank(catalog []domain.ProductRecord, spec domain.IntentSpec, rawText string) ([]domain.ProductRecord, []string) {
	candidates := filterCatalog(catalog, spec)
	keywords := effectiveKeywords(spec, rawText)

	scored := make([]domain.ScoredCandidate, 0, len(candidates))
	for _, product := range candidates {
		scored = append(scored, domain.ScoredCandidate{
			Product: product,
			Score:   p.scorer.Score(product, keywords, spec.Features),
		})
	}

	// Descending by score, ties broken by ascending price. Stable sort keeps
	// repeated runs on the same snapshot byte-identical.
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Product.Price < scored[j].Product.Price
	})

	if len(scored) > maxResults {
		scored = scored[:maxResults]
	}

	ranked := make([]domain.ProductRecord, len(scored))
	for i, candidate := range scored {
		ranked[i] = candidate.Product
	}
	return ranked, keywords
}

// filterCatalog applies the category, brand, and price bound filters. A nil
// or empty field skips its filter entirely.
func filterCatalog(catalog []domain.ProductRecord, spec domain.IntentSpec) []domain.ProductRecord {
	candidates := make([]domain.ProductRecord, 0, len(catalog))
	for _, product := range catalog {
		if spec.Category != "" && !strings.EqualFold(product.Category, spec.Category) {
			continue
		}
		if spec.Brand != "" && !strings.Contains(strings.ToLower(product.Brand), strings.ToLower(spec.Brand)) {
			continue
		}
		if spec.PriceMin != nil && product.Price < *spec.PriceMin {
			continue
		}
		if spec.PriceMax != nil && product.Price > *spec.PriceMax {
			continue
		}
		candidates = append(candidates, product)
	}
	return candidates
}

// effectiveKeywords builds the keyword set used for scoring: the optional
// intent word, then features, then brand. When that set is empty, up to five
// tokens longer than two characters are taken from the raw text instead.
func effectiveKeywords(spec domain.IntentSpec, rawText string) []string {
	keywords := []string{}
	if spec.Intent != "" {
		keywords = append(keywords, spec.Intent)
	}
	keywords = append(keywords, spec.Features...)
	if spec.Brand != "" {
		keywords = append(keywords, spec.Brand)
	}
	if len(keywords) > 0 {
		return keywords
	}

	tokens := strings.FieldsFunc(rawText, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
	for _, token := range tokens {
		if len(token) > minFallbackTokenSize {
			keywords = append(keywords, token)
			if len(keywords) == maxFallbackKeywords {
				break
			}
		}
	}
	return keywords
}

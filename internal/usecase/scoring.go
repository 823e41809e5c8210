package usecase

import (
	"math"
	"regexp"
	"strings"

	"github.com/shoplens/backend/internal/domain"
)

// Scoring tiers and bonuses
const (
	wholeWordKeywordScore = 6.0 // keyword matched on word boundaries
	substringKeywordScore = 2.0 // keyword matched as plain substring
	featureMatchScore     = 4.0 // feature matched as plain substring
	ratingWeight          = 0.5 // per rating point, rating capped at 5
	inStockBonus          = 0.5
	maxRating             = 5.0
)

// ScoringEngine scores catalog products against resolved keywords and
// features. Pure computation over immutable inputs.
type ScoringEngine struct{}

// NewScoringEngine creates a scoring engine
func NewScoringEngine() *ScoringEngine {
	return &ScoringEngine{}
}

// Score computes the relevance of a product for the given keyword set and
// feature list. Keywords get a whole-word tier and a weaker substring tier;
// features only the substring tier. Rated and in-stock products get small
// quality bonuses.
func (s *ScoringEngine) Score(product domain.ProductRecord, keywords, features []string) float64 {
	haystack := strings.ToLower(product.Title + " " + product.Description + " " + product.Brand)

	score := 0.0
	for _, keyword := range keywords {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword == "" {
			continue
		}
		switch {
		case matchesWholeWord(haystack, keyword):
			score += wholeWordKeywordScore
		case strings.Contains(haystack, keyword):
			score += substringKeywordScore
		}
	}

	for _, feature := range features {
		feature = strings.ToLower(strings.TrimSpace(feature))
		if feature != "" && strings.Contains(haystack, feature) {
			score += featureMatchScore
		}
	}

	if product.Rating > 0 {
		score += math.Min(product.Rating, maxRating) * ratingWeight
	}
	if product.Stock > 0 {
		score += inStockBonus
	}

	return score
}

// matchesWholeWord reports whether the keyword occurs boundary-delimited in
// the haystack. Keywords come from users and the intent service, so pattern
// metacharacters are escaped before compiling the matcher.
func matchesWholeWord(haystack, keyword string) bool {
	pattern, err := regexp.Compile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
	if err != nil {
		return false
	}
	return pattern.MatchString(haystack)
}

package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/shoplens/backend/internal/domain"
)

const catalogCacheKey = "catalog:snapshot"

// RecommendServiceConfig holds configuration for the recommendation service
type RecommendServiceConfig struct {
	CacheTTL           time.Duration
	EnableDebugLogging bool
}

// RecommendService turns a free-text shopping prompt into a ranked product
// list. Flow: load catalog (cached) -> extract intent -> reconcile ->
// derive features -> filter/score/rank. Only a catalog failure is returned
// as an error; every other failure mode degrades to local fallbacks.
type RecommendService struct {
	cache      domain.SnapshotCache
	catalog    domain.CatalogClient
	extractor  *IntentExtractor
	reconciler *IntentReconciler
	deriver    *FeatureDeriver
	pipeline   *RankingPipeline
	cacheTTL   time.Duration
	debug      bool
}

// NewRecommendService creates a recommendation service with dependencies
func NewRecommendService(
	cache domain.SnapshotCache,
	catalog domain.CatalogClient,
	intentService domain.IntentService,
	config RecommendServiceConfig,
) *RecommendService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 10 * time.Minute
	}

	return &RecommendService{
		cache:      cache,
		catalog:    catalog,
		extractor:  NewIntentExtractor(intentService, nil, nil, config.EnableDebugLogging),
		reconciler: NewIntentReconciler(nil),
		deriver:    NewFeatureDeriver(nil),
		pipeline:   NewRankingPipeline(nil),
		cacheTTL:   cacheTTL,
		debug:      config.EnableDebugLogging,
	}
}

// Recommend resolves the shopper intent for the prompt and ranks the current
// catalog snapshot against it.
func (s *RecommendService) Recommend(ctx context.Context, prompt string) (*domain.Recommendation, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, domain.ErrInvalidRequest
	}

	products, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	ai, local := s.extractor.Extract(ctx, prompt)
	spec := s.reconciler.Reconcile(ai, local)

	// No explicit features from the extractor: derive a small keyword list
	// from the raw text instead
	if len(spec.Features) == 0 {
		spec.Features = s.deriver.Derive(prompt)
	}

	ranked, keywords := s.pipeline.Rank(products, spec, prompt)

	if s.debug {
		log.Printf("[RECOMMEND] prompt=%q category=%q brand=%q keywords=%v results=%d",
			prompt, spec.Category, spec.Brand, keywords, len(ranked))
	}

	return &domain.Recommendation{
		Products: ranked,
		Debug: domain.DebugInfo{
			Parsed:            spec,
			EffectiveKeywords: keywords,
			Features:          spec.Features,
		},
	}, nil
}

// loadCatalog reads the catalog snapshot through the cache. A cache write
// failure is logged and ignored; it never fails the request.
func (s *RecommendService) loadCatalog(ctx context.Context) ([]domain.ProductRecord, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, catalogCacheKey); err == nil && len(cached) > 0 {
			return cached, nil
		}
	}

	products, err := s.catalog.FetchProducts(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, catalogCacheKey, products, s.cacheTTL); err != nil {
			log.Printf("[RECOMMEND] failed to cache catalog snapshot: %v", err)
		}
	}
	return products, nil
}

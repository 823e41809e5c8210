package usecase

import "github.com/shoplens/backend/internal/domain"

// IntentReconciler merges AI-derived and locally-derived intent signals into
// one canonical IntentSpec, applying precedence and sanity rules.
type IntentReconciler struct {
	normalizer *CategoryNormalizer
}

// NewIntentReconciler creates a reconciler using the given category
// normalizer (the built-in table when nil).
func NewIntentReconciler(normalizer *CategoryNormalizer) *IntentReconciler {
	if normalizer == nil {
		normalizer = NewCategoryNormalizer(nil)
	}
	return &IntentReconciler{normalizer: normalizer}
}

// Reconcile resolves the final intent for a request.
//
// Price bounds: when the AI produced neither bound, the local pair is
// adopted wholesale; otherwise the AI values win and only a still-null side
// is filled from local. A bound pair combining both sources is accepted
// behavior. Inverted bounds are swapped afterwards, guarding against
// "between 500 and 200" style inputs and instruction-following failures.
func (r *IntentReconciler) Reconcile(ai, local IntentSignals) domain.IntentSpec {
	spec := domain.IntentSpec{
		Intent:   ai.Intent,
		Features: ai.Features,
	}
	if spec.Features == nil {
		spec.Features = []string{}
	}

	if ai.PriceMin == nil && ai.PriceMax == nil {
		spec.PriceMin, spec.PriceMax = local.PriceMin, local.PriceMax
	} else {
		spec.PriceMin, spec.PriceMax = ai.PriceMin, ai.PriceMax
		if spec.PriceMin == nil {
			spec.PriceMin = local.PriceMin
		}
		if spec.PriceMax == nil {
			spec.PriceMax = local.PriceMax
		}
	}

	if spec.PriceMin != nil && spec.PriceMax != nil && *spec.PriceMin > *spec.PriceMax {
		spec.PriceMin, spec.PriceMax = spec.PriceMax, spec.PriceMin
	}

	// Category is normalized to the catalog's canonical identifier; an
	// unrecognized word resolves to "" and the category filter is skipped.
	word := ai.Category
	if word == "" {
		word = local.Category
	}
	spec.Category = r.normalizer.Normalize(word)

	// Brand is used as-is for substring filtering, no normalization
	spec.Brand = ai.Brand
	if spec.Brand == "" {
		spec.Brand = local.Brand
	}

	return spec
}

package usecase

import (
	"regexp"
	"strings"
)

// defaultBrands is the enumerated set of known brand names, in detection
// priority order. Matching is substring-based on purpose: short brand names
// may match inside longer words, an accepted imprecision.
var defaultBrands = []string{
	"apple", "samsung", "oppo", "huawei", "xiaomi", "realme", "oneplus",
	"vivo", "nokia", "motorola", "infinix", "sony", "dell", "hp", "lenovo",
	"asus", "acer", "microsoft", "dior", "chanel", "gucci", "calvin klein",
}

// categoryRule maps a keyword pattern to a canonical catalog category
type categoryRule struct {
	category string
	pattern  *regexp.Regexp
}

// defaultCategoryRules is tested in order; first match wins.
var defaultCategoryRules = []categoryRule{
	{"smartphones", regexp.MustCompile(`\b(?:phone|phones|mobile|mobiles|smartphone|smartphones|handset|cell)\b`)},
	{"laptops", regexp.MustCompile(`\b(?:laptop|laptops|notebook|notebooks)\b`)},
	{"fragrances", regexp.MustCompile(`\b(?:perfume|perfumes|fragrance|fragrances|cologne)\b`)},
	{"skincare", regexp.MustCompile(`\b(?:skincare|moisturizer|moisturiser|serum|sunscreen)\b`)},
	{"groceries", regexp.MustCompile(`\b(?:grocery|groceries)\b`)},
	{"home-decoration", regexp.MustCompile(`\b(?:decor|decoration|furniture)\b`)},
}

// defaultCategoryAliases maps free-form category words (from either the
// intent service or local detection) to the catalog's canonical identifiers.
// Closed static mapping, not inferred.
var defaultCategoryAliases = map[string]string{
	"smartphone": "smartphones", "smartphones": "smartphones",
	"phone": "smartphones", "phones": "smartphones",
	"mobile": "smartphones", "mobiles": "smartphones", "cellphone": "smartphones",
	"laptop": "laptops", "laptops": "laptops",
	"notebook": "laptops", "notebooks": "laptops",
	"perfume": "fragrances", "perfumes": "fragrances",
	"fragrance": "fragrances", "fragrances": "fragrances", "cologne": "fragrances",
	"skincare": "skincare", "skin-care": "skincare",
	"grocery": "groceries", "groceries": "groceries",
	"decor": "home-decoration", "decoration": "home-decoration",
	"home-decoration": "home-decoration", "furniture": "home-decoration",
}

// BrandDetector is the local keyword-matching fallback for brand detection
type BrandDetector struct {
	brands []string
}

// NewBrandDetector creates a detector over the given brand list, falling
// back to the built-in list when none is provided.
func NewBrandDetector(brands []string) *BrandDetector {
	if len(brands) == 0 {
		brands = defaultBrands
	}
	return &BrandDetector{brands: brands}
}

// Detect returns the first known brand appearing as a case-insensitive
// substring of the text, or "" if none match.
func (d *BrandDetector) Detect(text string) string {
	lowered := strings.ToLower(text)
	for _, brand := range d.brands {
		if strings.Contains(lowered, brand) {
			return brand
		}
	}
	return ""
}

// CategoryDetector is the local keyword-matching fallback for categories
type CategoryDetector struct {
	rules []categoryRule
}

// NewCategoryDetector creates a detector over the given rules, falling back
// to the built-in rules when none are provided.
func NewCategoryDetector(rules []categoryRule) *CategoryDetector {
	if len(rules) == 0 {
		rules = defaultCategoryRules
	}
	return &CategoryDetector{rules: rules}
}

// Detect returns the canonical category whose keyword group first matches
// the text, or "" if none match.
func (d *CategoryDetector) Detect(text string) string {
	lowered := strings.ToLower(text)
	for _, rule := range d.rules {
		if rule.pattern.MatchString(lowered) {
			return rule.category
		}
	}
	return ""
}

// CategoryNormalizer maps a free-form category word to the catalog's
// canonical category identifier via an exact-match lookup table.
type CategoryNormalizer struct {
	aliases map[string]string
}

// NewCategoryNormalizer creates a normalizer over the given alias table,
// falling back to the built-in table when none is provided.
func NewCategoryNormalizer(aliases map[string]string) *CategoryNormalizer {
	if len(aliases) == 0 {
		aliases = defaultCategoryAliases
	}
	return &CategoryNormalizer{aliases: aliases}
}

// Normalize returns the canonical category for the word, or "" if the word
// is unrecognized. Unrecognized categories skip the filter entirely rather
// than failing the request.
func (n *CategoryNormalizer) Normalize(word string) string {
	key := strings.ToLower(strings.TrimSpace(word))
	if key == "" {
		return ""
	}
	return n.aliases[key]
}

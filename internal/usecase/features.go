package usecase

import "strings"

// featureTrigger maps a derived feature to the substrings that imply it
type featureTrigger struct {
	feature  string
	triggers []string
}

// defaultFeatureTriggers is checked in order; each feature is included at
// most once even when several of its trigger words appear.
var defaultFeatureTriggers = []featureTrigger{
	{"camera", []string{"camera", "photo", "photography"}},
	{"battery", []string{"battery"}},
	{"gaming", []string{"gaming", "game"}},
	{"5g", []string{"5g"}},
	{"4g", []string{"4g"}},
	{"ram", []string{"ram"}},
	{"display", []string{"screen", "display"}},
}

// FeatureDeriver builds a small feature keyword list from raw request text.
// Used only when the resolved intent carries no explicit feature list.
type FeatureDeriver struct {
	triggers []featureTrigger
}

// NewFeatureDeriver creates a deriver over the given trigger table, falling
// back to the built-in table when none is provided.
func NewFeatureDeriver(triggers []featureTrigger) *FeatureDeriver {
	if len(triggers) == 0 {
		triggers = defaultFeatureTriggers
	}
	return &FeatureDeriver{triggers: triggers}
}

// Derive scans the lowercased text for trigger substrings and returns the
// implied features in trigger-check order.
func (d *FeatureDeriver) Derive(text string) []string {
	lowered := strings.ToLower(text)
	features := []string{}
	for _, t := range d.triggers {
		for _, trigger := range t.triggers {
			if strings.Contains(lowered, trigger) {
				features = append(features, t.feature)
				break
			}
		}
	}
	return features
}

package usecase

import (
	"reflect"
	"testing"
)

func TestFeatureDeriver(t *testing.T) {
	deriver := NewFeatureDeriver(nil)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"camera trigger", "a phone with a good camera", []string{"camera"}},
		{"photo implies camera", "great for photos", []string{"camera"}},
		{"feature appears once despite multiple triggers", "camera for photography and photos", []string{"camera"}},
		{"multiple features in trigger-check order", "gaming phone with 5g and big battery", []string{"battery", "gaming", "5g"}},
		{"display via screen", "large screen tablet", []string{"display"}},
		{"nothing", "a red jacket", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := deriver.Derive(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Derive(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

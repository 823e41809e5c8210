package usecase

import "testing"

func TestBrandDetector(t *testing.T) {
	detector := NewBrandDetector(nil)

	t.Run("detects brand case-insensitively", func(t *testing.T) {
		if got := detector.Detect("A Samsung phone under 500"); got != "samsung" {
			t.Errorf("Detect = %q, want samsung", got)
		}
	})

	t.Run("returns first brand in enumeration order", func(t *testing.T) {
		d := NewBrandDetector([]string{"apple", "samsung"})
		if got := d.Detect("samsung or apple, not sure"); got != "apple" {
			t.Errorf("Detect = %q, want apple", got)
		}
	})

	t.Run("substring matching is intentional", func(t *testing.T) {
		// a brand matching inside a longer word is an accepted imprecision
		d := NewBrandDetector([]string{"vivo"})
		if got := d.Detect("gifts for survivors"); got != "vivo" {
			t.Errorf("Detect = %q, want vivo (substring match)", got)
		}
	})

	t.Run("returns empty when nothing matches", func(t *testing.T) {
		if got := detector.Detect("a plain red jacket"); got != "" {
			t.Errorf("Detect = %q, want empty", got)
		}
	})
}

func TestCategoryDetector(t *testing.T) {
	detector := NewCategoryDetector(nil)

	tests := []struct {
		text string
		want string
	}{
		{"a phone under 500", "smartphones"},
		{"best mobile for photos", "smartphones"},
		{"cheap smartphone", "smartphones"},
		{"gaming laptop with 16gb", "laptops"},
		{"lightweight notebook", "laptops"},
		{"a floral perfume", "fragrances"},
		{"long lasting fragrance", "fragrances"},
		{"gentle moisturizer", "skincare"},
		{"weekly groceries", "groceries"},
		{"living room decor", "home-decoration"},
		{"a nice red jacket", ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := detector.Detect(tt.text); got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}

	t.Run("first matching group wins", func(t *testing.T) {
		// phone keywords have priority over laptop keywords
		if got := detector.Detect("phone or laptop"); got != "smartphones" {
			t.Errorf("Detect = %q, want smartphones", got)
		}
	})
}

func TestCategoryNormalizer(t *testing.T) {
	normalizer := NewCategoryNormalizer(nil)

	tests := []struct {
		word string
		want string
	}{
		{"phone", "smartphones"},
		{"Smartphone", "smartphones"},
		{"  MOBILE  ", "smartphones"},
		{"laptop", "laptops"},
		{"notebook", "laptops"},
		{"perfume", "fragrances"},
		{"smartphones", "smartphones"},
		{"electronics", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := normalizer.Normalize(tt.word); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

package domain

// ProductRecord represents a single catalog entry. Records are owned by the
// catalog source and treated as immutable for the duration of a request.
type ProductRecord struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Brand       string  `json:"brand,omitempty"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating,omitempty"` // 0-5, 0 means absent
	Stock       int     `json:"stock,omitempty"`
}

// CatalogResponse represents the response from the catalog source API
type CatalogResponse struct {
	Products []ProductRecord `json:"products"`
	Total    int             `json:"total"`
	Skip     int             `json:"skip"`
	Limit    int             `json:"limit"`
}

// RecommendRequest represents a product recommendation request
type RecommendRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

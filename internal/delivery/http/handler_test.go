package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shoplens/backend/config"
	"github.com/shoplens/backend/internal/domain"
)

// TestMain sets up test environment before running tests
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// stubRecommender returns a canned recommendation or error
type stubRecommender struct {
	result *domain.Recommendation
	err    error
}

func (s *stubRecommender) Recommend(ctx context.Context, prompt string) (*domain.Recommendation, error) {
	return s.result, s.err
}

func setupTestRouter(recommender Recommender) *gin.Engine {
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			Environment:    "test",
			AllowedOrigins: []string{"http://localhost:3000", "https://shop.example.com"},
		},
	}
	return SetupRouter(cfg, NewHandler(recommender))
}

func TestHealthCheckEndpoint(t *testing.T) {
	router := setupTestRouter(&stubRecommender{})

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response["status"] != "healthy" {
		t.Errorf("status = %v, want healthy", response["status"])
	}
	if response["service"] != "shoplens-backend" {
		t.Errorf("service = %v, want shoplens-backend", response["service"])
	}
}

func TestRecommendEndpoint(t *testing.T) {
	t.Run("success returns products and debug info", func(t *testing.T) {
		min := 200.0
		recommender := &stubRecommender{
			result: &domain.Recommendation{
				Products: []domain.ProductRecord{
					{Title: "Galaxy A54", Brand: "Samsung", Category: "smartphones", Price: 449},
				},
				Debug: domain.DebugInfo{
					Parsed: domain.IntentSpec{
						Category: "smartphones",
						Brand:    "samsung",
						PriceMin: &min,
						Features: []string{"camera"},
					},
					EffectiveKeywords: []string{"camera", "samsung"},
					Features:          []string{"camera"},
				},
			},
		}
		router := setupTestRouter(recommender)

		body := strings.NewReader(`{"prompt": "samsung phone with camera above 200"}`)
		req, _ := http.NewRequest("POST", "/recommend", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d (body: %s)", w.Code, http.StatusOK, w.Body.String())
		}

		var response struct {
			Products []domain.ProductRecord `json:"products"`
			Debug    domain.DebugInfo       `json:"debug"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if len(response.Products) != 1 || response.Products[0].Title != "Galaxy A54" {
			t.Errorf("products = %+v", response.Products)
		}
		if response.Debug.Parsed.Category != "smartphones" {
			t.Errorf("debug.parsed.category = %q", response.Debug.Parsed.Category)
		}
		if len(response.Debug.EffectiveKeywords) != 2 {
			t.Errorf("debug.effectiveKeywords = %v", response.Debug.EffectiveKeywords)
		}
	})

	t.Run("catalog failure returns 500 with empty products", func(t *testing.T) {
		recommender := &stubRecommender{err: domain.ErrCatalogUnavailable}
		router := setupTestRouter(recommender)

		req, _ := http.NewRequest("POST", "/recommend", strings.NewReader(`{"prompt": "anything"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusInternalServerError)
		}
		if strings.TrimSpace(w.Body.String()) != `{"products":[]}` {
			t.Errorf("body = %s, want {\"products\":[]}", w.Body.String())
		}
	})

	t.Run("missing prompt returns 400 with empty products", func(t *testing.T) {
		router := setupTestRouter(&stubRecommender{})

		req, _ := http.NewRequest("POST", "/recommend", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
		if strings.TrimSpace(w.Body.String()) != `{"products":[]}` {
			t.Errorf("body = %s, want {\"products\":[]}", w.Body.String())
		}
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		router := setupTestRouter(&stubRecommender{})

		req, _ := http.NewRequest("POST", "/recommend", strings.NewReader(`not json`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("invalid request error maps to 400", func(t *testing.T) {
		recommender := &stubRecommender{err: domain.ErrInvalidRequest}
		router := setupTestRouter(recommender)

		req, _ := http.NewRequest("POST", "/recommend", strings.NewReader(`{"prompt": "   "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

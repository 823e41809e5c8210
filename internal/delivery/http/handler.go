package http

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shoplens/backend/internal/domain"
)

// Recommender resolves a free-text prompt into ranked products
type Recommender interface {
	Recommend(ctx context.Context, prompt string) (*domain.Recommendation, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	recommender Recommender
}

// NewHandler creates a new HTTP handler
func NewHandler(recommender Recommender) *Handler {
	return &Handler{recommender: recommender}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "shoplens-backend",
		"version": "1.0.0",
	})
}

// Recommend handles product recommendation requests.
// Only a catalog failure produces the 500 / empty-products response; intent
// extraction failures are absorbed upstream and still return 200.
func (h *Handler) Recommend(c *gin.Context) {
	var req domain.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"products": []domain.ProductRecord{}})
		return
	}

	result, err := h.recommender.Recommend(c.Request.Context(), req.Prompt)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"products": []domain.ProductRecord{}})
			return
		}
		log.Printf("[HTTP] recommend failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"products": []domain.ProductRecord{}})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": result.Products,
		"debug":    result.Debug,
	})
}

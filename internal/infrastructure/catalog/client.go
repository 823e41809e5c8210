package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/shoplens/backend/internal/domain"
	"golang.org/x/time/rate"
)

const (
	maxAttempts  = 3
	defaultBurst = 10
)

// Client handles communication with the product catalog source
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new catalog client. requestsPerHour bounds outbound
// traffic to the catalog source.
func NewClient(baseURL string, timeout time.Duration, requestsPerHour int) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if requestsPerHour <= 0 {
		requestsPerHour = 3600
	}
	limiter := rate.NewLimiter(rate.Limit(float64(requestsPerHour)/3600.0), defaultBurst)

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// SetDebug enables or disables debug logging
func (c *Client) SetDebug(enabled bool) {
	c.debug = enabled
}

// exponentialBackoff returns the wait duration before the given retry attempt
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(500*(1<<(attempt-1))) * time.Millisecond
}

// FetchProducts retrieves the full catalog snapshot. Transient transport and
// server errors are retried with backoff; every terminal failure is wrapped
// in ErrCatalogUnavailable so the caller can map it to the failure response.
func (c *Client) FetchProducts(ctx context.Context) ([]domain.ProductRecord, error) {
	reqURL := fmt.Sprintf("%s/products?limit=0", c.baseURL)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("User-Agent", "ShopLens/1.0")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if c.debug {
				log.Printf("[CATALOG] request error (attempt %d): %v", attempt, err)
			}
			lastErr = fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			if c.debug {
				log.Printf("[CATALOG] status %d (attempt %d): %s", resp.StatusCode, attempt, string(body))
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrCatalogUnavailable, resp.StatusCode)
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				// Client errors will not heal on retry
				return nil, lastErr
			}
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		var catalogResp domain.CatalogResponse
		if err := json.Unmarshal(body, &catalogResp); err != nil {
			return nil, fmt.Errorf("%w: decode: %v", domain.ErrCatalogUnavailable, err)
		}

		if c.debug {
			log.Printf("[CATALOG] fetched %d products", len(catalogResp.Products))
		}
		return catalogResp.Products, nil
	}

	return nil, lastErr
}

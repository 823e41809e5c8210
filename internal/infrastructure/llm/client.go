package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shoplens/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Client calls an OpenAI-compatible chat completion endpoint. There is no
// retry loop: the intent service is fire-and-forget per request and the
// caller degrades to local fallbacks on any failure.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	model       string
	rateLimiter *rate.Limiter
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewClient creates a new structured-intent service client
func NewClient(baseURL, apiKey, model string, timeout time.Duration, requestsPerHour int) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if requestsPerHour <= 0 {
		requestsPerHour = 1000
	}
	limiter := rate.NewLimiter(rate.Limit(float64(requestsPerHour)/3600.0), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     baseURL,
		apiKey:      apiKey,
		model:       model,
		rateLimiter: limiter,
	}
}

// Complete sends the system instruction and user text and returns the first
// choice's content verbatim. The content is untrusted free text that may or
// may not contain usable JSON.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	if c.baseURL == "" || c.model == "" {
		return "", fmt.Errorf("%w: base URL and model required", domain.ErrIntentServiceFailure)
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: rate limiter: %v", domain.ErrIntentServiceFailure, err)
	}

	reqBody, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: marshal: %v", domain.ErrIntentServiceFailure, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrIntentServiceFailure, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrIntentServiceFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", domain.ErrIntentServiceFailure, resp.StatusCode)
	}

	var payload chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("%w: decode: %v", domain.ErrIntentServiceFailure, err)
	}
	if payload.Error != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrIntentServiceFailure, payload.Error.Message)
	}
	if len(payload.Choices) == 0 {
		return "", fmt.Errorf("%w: empty response", domain.ErrIntentServiceFailure)
	}

	return payload.Choices[0].Message.Content, nil
}

package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"huddle/internal/models"
)

// ErrEmptyResponse is returned when the API answers 200 but carries no
// usable candidate text.
var ErrEmptyResponse = errors.New("gemini: response contained no candidates")

// Client calls the Gemini generateContent API. Requests are bounded by the
// HTTP client timeout, so a stalled upstream can never hang a request
// handler indefinitely.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds a Client for the given generateContent endpoint.
func NewClient(endpoint, apiKey string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Generate sends a single-turn prompt and returns the first candidate's
// text. Network failures, non-2xx statuses and empty candidate lists all
// come back as upstream errors.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: prompt}}},
		},
	})
	if err != nil {
		return "", models.NewInternalError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", models.NewInternalError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", models.NewUpstreamError("Failed to reach the summarization service", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a bounded slice of the body so error logs carry context
		// without buffering an arbitrarily large payload.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", models.NewUpstreamError(
			fmt.Sprintf("Summarization service returned status %d", resp.StatusCode),
			fmt.Errorf("gemini: status %d: %s", resp.StatusCode, snippet),
		)
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", models.NewUpstreamError("Summarization service returned an unreadable response", err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", models.NewUpstreamError("Summarization service returned no content", ErrEmptyResponse)
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

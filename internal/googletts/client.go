package googletts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Voice is one record from the provider's voice inventory.
type Voice struct {
	LanguageCodes          []string `json:"languageCodes"`
	Name                   string   `json:"name"`
	SSMLGender             string   `json:"ssmlGender"`
	NaturalSampleRateHertz int      `json:"naturalSampleRateHertz"`
}

// LanguageTag returns the voice's primary language tag.
func (v Voice) LanguageTag() string {
	if len(v.LanguageCodes) == 0 {
		return ""
	}
	return v.LanguageCodes[0]
}

// Response models the voices list payload.
type Response struct {
	Voices []Voice `json:"voices"`
}

// Lister defines the voice inventory operation used by the generator.
type Lister interface {
	ListVoices(ctx context.Context) ([]Voice, error)
}

// Client fetches the voice inventory from the Google Cloud Text-to-Speech
// REST API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var _ Lister = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the request timeout on the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// New creates a voice inventory client.
func New(apiKey, baseURL string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("google tts api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("google tts base url required")
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// ListVoices fetches the full voice inventory in a single request. The
// provider returns the complete list unpaginated; any transport or decode
// failure aborts the generation run.
func (c *Client) ListVoices(ctx context.Context) ([]Voice, error) {
	voices, _, err := c.ListVoicesRaw(ctx)
	return voices, err
}

// ListVoicesRaw fetches the inventory and also returns the raw response
// payload so callers can persist it for offline reuse.
func (c *Client) ListVoicesRaw(ctx context.Context) ([]Voice, []byte, error) {
	endpoint, err := url.Parse(c.baseURL + "/v1beta1/voices")
	if err != nil {
		return nil, nil, fmt.Errorf("parse voices url: %w", err)
	}
	params := url.Values{}
	params.Set("key", c.apiKey)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, nil, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("voices list returned %d (latency=%v)", resp.StatusCode, latency)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read voices response: %w", err)
	}

	voices, err := DecodePayload(raw)
	if err != nil {
		return nil, nil, err
	}
	return voices, raw, nil
}

// DecodePayload parses a raw voices list payload, either fresh from the API
// or replayed from the fetch cache.
func DecodePayload(raw []byte) ([]Voice, error) {
	var payload Response
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode voices payload: %w", err)
	}
	return payload.Voices, nil
}

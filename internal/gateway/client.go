// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents a transport-level failure talking to the
// backend. Its message is for logs; users see a generic notice.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeConnection
	ErrTypeTimeout
	ErrTypeInvalidResponse
)

// Sentinel errors for easy checking.
var (
	ErrUnreachable = &ClientError{Type: ErrTypeConnection, Message: "backend is not reachable"}
	ErrTimeout     = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
)

// BackendError carries a failure message produced by the backend
// itself. The text is shown to the user verbatim.
type BackendError struct {
	Message string
}

func (e *BackendError) Error() string {
	return e.Message
}

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the backend client.
type ClientConfig struct {
	// BaseURL is the backend API base URL (default: http://127.0.0.1:5000)
	// Note: Uses explicit IPv4 address instead of localhost to avoid IPv6 resolution issues on Windows
	BaseURL string

	// Timeout for chat requests (default: 60s)
	Timeout time.Duration

	// ImageTimeout for generation and edit requests, which run longer
	// (default: 120s)
	ImageTimeout time.Duration

	// PrimaryProvider for image generation (default: "gemini")
	PrimaryProvider string

	// FallbackProvider tried when the primary fails (default: "pollinations")
	FallbackProvider string

	// Style applied to generation and edit requests (default: "photorealistic")
	Style string

	// AspectRatio applied to generation and edit requests (default: "1:1")
	AspectRatio string

	// RequestsPerSecond caps outbound request rate (default: 2)
	RequestsPerSecond float64

	// Burst for the rate limiter (default: 4)
	Burst int
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL:           "http://127.0.0.1:5000",
		Timeout:           60 * time.Second,
		ImageTimeout:      120 * time.Second,
		PrimaryProvider:   "gemini",
		FallbackProvider:  "pollinations",
		Style:             "photorealistic",
		AspectRatio:       "1:1",
		RequestsPerSecond: 2,
		Burst:             4,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the muse backend API.
//
// The Client is thread-safe for concurrent use.
type Client struct {
	config      *ClientConfig
	httpClient  *http.Client
	imageClient *http.Client
	limiter     *rate.Limiter
}

// NewClient creates a new backend client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a new backend client with custom
// configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	// Fill in defaults for any zero values
	if config.BaseURL == "" {
		config.BaseURL = "http://127.0.0.1:5000"
	}
	if config.Timeout == 0 {
		config.Timeout = 60 * time.Second
	}
	if config.ImageTimeout == 0 {
		config.ImageTimeout = 120 * time.Second
	}
	if config.PrimaryProvider == "" {
		config.PrimaryProvider = "gemini"
	}
	if config.FallbackProvider == "" {
		config.FallbackProvider = "pollinations"
	}
	if config.Style == "" {
		config.Style = "photorealistic"
	}
	if config.AspectRatio == "" {
		config.AspectRatio = "1:1"
	}
	if config.RequestsPerSecond == 0 {
		config.RequestsPerSecond = 2
	}
	if config.Burst == 0 {
		config.Burst = 4
	}

	return &Client{
		config:      config,
		httpClient:  &http.Client{Timeout: config.Timeout},
		imageClient: &http.Client{Timeout: config.ImageTimeout},
		limiter:     rate.NewLimiter(rate.Limit(config.RequestsPerSecond), config.Burst),
	}
}

// =============================================================================
// REQUEST PLUMBING
// =============================================================================

// errorBody is the backend's failure envelope.
type errorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do sends the request through the rate limiter and decodes the
// response into out. Backend-reported failures become *BackendError;
// everything else becomes *ClientError.
func (c *Client) do(ctx context.Context, hc *http.Client, req *http.Request, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &ClientError{Type: ErrTypeTimeout, Message: "rate limit wait aborted", Cause: err}
	}

	resp, err := hc.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrTimeout
		}
		return &ClientError{Type: ErrTypeConnection, Message: "backend is not reachable", Cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to read response", Cause: err}
	}

	// The backend reports its own failures as JSON with status "error",
	// on both 200 and non-200 responses.
	var eb errorBody
	if json.Unmarshal(body, &eb) == nil {
		if eb.Status == "error" || (resp.StatusCode >= 400 && (eb.Message != "" || eb.Error != "")) {
			msg := eb.Message
			if msg == "" {
				msg = eb.Error
			}
			if msg != "" {
				return &BackendError{Message: msg}
			}
		}
	}

	if resp.StatusCode != http.StatusOK {
		return &ClientError{
			Type:    ErrTypeInvalidResponse,
			Message: "unexpected status from backend: " + resp.Status,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}
	return nil
}

// =============================================================================
// HEALTH CHECK
// =============================================================================

// Health verifies that the backend is reachable.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"/api/health", nil)
	if err != nil {
		return &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	return c.do(ctx, c.httpClient, req, nil)
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
)

// =============================================================================
// IMAGE GENERATION
// =============================================================================

// generateRequest is the /api/generate request body.
type generateRequest struct {
	Prompt      string `json:"prompt"`
	Provider    string `json:"provider"`
	Style       string `json:"style"`
	AspectRatio string `json:"aspect_ratio"`
}

// imageResponse is shared by /api/generate and /api/edit. The backend
// returns raw base64 without a data-URL prefix.
type imageResponse struct {
	ImageBase64 string `json:"image_base64"`
}

// imageDataURLPrefix wraps the backend's raw base64 payloads. The
// backend always produces PNG.
const imageDataURLPrefix = "data:image/png;base64,"

// GeneratedResult is the outcome of a successful generation: the image
// and the provider that actually produced it.
type GeneratedResult struct {
	DataURL  string
	Provider string
}

// GenerateImage asks the primary provider for an image and, if that
// fails for any reason, tries the fallback provider once. Providers
// are tried sequentially, never in parallel. The returned error is the
// fallback's when both fail.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (*GeneratedResult, error) {
	dataURL, err := c.generateWith(ctx, prompt, c.config.PrimaryProvider)
	if err == nil {
		return &GeneratedResult{DataURL: dataURL, Provider: c.config.PrimaryProvider}, nil
	}

	dataURL, ferr := c.generateWith(ctx, prompt, c.config.FallbackProvider)
	if ferr != nil {
		return nil, ferr
	}
	return &GeneratedResult{DataURL: dataURL, Provider: c.config.FallbackProvider}, nil
}

func (c *Client) generateWith(ctx context.Context, prompt, provider string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Prompt:      prompt,
		Provider:    provider,
		Style:       c.config.Style,
		AspectRatio: c.config.AspectRatio,
	})
	if err != nil {
		return "", &ClientError{Type: ErrTypeUnknown, Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.config.BaseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	var out imageResponse
	if err := c.do(ctx, c.imageClient, req, &out); err != nil {
		return "", err
	}
	if out.ImageBase64 == "" {
		return "", &ClientError{Type: ErrTypeInvalidResponse, Message: "backend returned no image"}
	}
	return imageDataURLPrefix + out.ImageBase64, nil
}

// =============================================================================
// IMAGE EDITING
// =============================================================================

// editRequest is the /api/edit request body.
type editRequest struct {
	Image       string `json:"image"`
	EditPrompt  string `json:"edit_prompt"`
	Style       string `json:"style"`
	AspectRatio string `json:"aspect_ratio"`
}

// EditImage sends an image (as a data URL) and an edit instruction,
// returning the edited image's data URL.
func (c *Client) EditImage(ctx context.Context, imageDataURL, editPrompt string) (string, error) {
	body, err := json.Marshal(editRequest{
		Image:       imageDataURL,
		EditPrompt:  editPrompt,
		Style:       c.config.Style,
		AspectRatio: c.config.AspectRatio,
	})
	if err != nil {
		return "", &ClientError{Type: ErrTypeUnknown, Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.config.BaseURL+"/api/edit", bytes.NewReader(body))
	if err != nil {
		return "", &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	var out imageResponse
	if err := c.do(ctx, c.imageClient, req, &out); err != nil {
		return "", err
	}
	if out.ImageBase64 == "" {
		return "", &ClientError{Type: ErrTypeInvalidResponse, Message: "backend returned no image"}
	}
	return imageDataURLPrefix + out.ImageBase64, nil
}

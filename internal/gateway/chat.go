// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"

	"github.com/jeranaias/muse-tui/internal/session"
)

// =============================================================================
// CHAT
// =============================================================================

// chatRequest is the /api/chat request body.
type chatRequest struct {
	Message string         `json:"message"`
	History []session.Turn `json:"history"`
	Model   string         `json:"model"`
}

// chatResponse tolerates both response field names the backend has
// used across versions.
type chatResponse struct {
	Answer   string `json:"answer"`
	Response string `json:"response"`
}

func (r chatResponse) text() string {
	if r.Answer != "" {
		return r.Answer
	}
	return r.Response
}

// Chat sends a plain text message with the conversation history and
// returns the model's reply.
func (c *Client) Chat(ctx context.Context, message string, history []session.Turn, model string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Message: message,
		History: history,
		Model:   model,
	})
	if err != nil {
		return "", &ClientError{Type: ErrTypeUnknown, Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.config.BaseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	var out chatResponse
	if err := c.do(ctx, c.httpClient, req, &out); err != nil {
		return "", err
	}
	return out.text(), nil
}

// =============================================================================
// VISION CHAT
// =============================================================================

// ChatWithImage sends a message together with an attached image as a
// multipart form. imageDataURL is the full data URL; the backend
// decodes it server-side.
func (c *Client) ChatWithImage(ctx context.Context, message, imageDataURL string, history []session.Turn, model string) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"message": message,
		"image":   imageDataURL,
		"model":   model,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return "", &ClientError{Type: ErrTypeUnknown, Message: "failed to encode form", Cause: err}
		}
	}

	hist, err := json.Marshal(history)
	if err != nil {
		return "", &ClientError{Type: ErrTypeUnknown, Message: "failed to encode history", Cause: err}
	}
	if err := w.WriteField("history", string(hist)); err != nil {
		return "", &ClientError{Type: ErrTypeUnknown, Message: "failed to encode form", Cause: err}
	}
	if err := w.Close(); err != nil {
		return "", &ClientError{Type: ErrTypeUnknown, Message: "failed to encode form", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.config.BaseURL+"/api/chat-with-image", &buf)
	if err != nil {
		return "", &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var out chatResponse
	if err := c.do(ctx, c.httpClient, req, &out); err != nil {
		return "", err
	}
	return out.text(), nil
}

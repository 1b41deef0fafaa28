// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/muse-tui/internal/session"
)

func testClient(baseURL string) *Client {
	return NewClientWithConfig(&ClientConfig{
		BaseURL:           baseURL,
		RequestsPerSecond: 1000,
		Burst:             1000,
	})
}

func TestChatSendsHistoryAndModel(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]string{"response": "hi there"})
	}))
	defer srv.Close()

	history := []session.Turn{session.UserTurn("earlier", "")}
	reply, err := testClient(srv.URL).Chat(context.Background(), "hello", history, "gemini-2.0-flash")
	require.NoError(t, err)
	assert.Equal(t, "hi there", reply)
	assert.Equal(t, "hello", got.Message)
	assert.Equal(t, "gemini-2.0-flash", got.Model)
	require.Len(t, got.History, 1)
	assert.Equal(t, "earlier", got.History[0].Parts[0].Text)
}

func TestChatPrefersAnswerField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"answer": "from answer", "response": "from response"})
	}))
	defer srv.Close()

	reply, err := testClient(srv.URL).Chat(context.Background(), "q", nil, "m")
	require.NoError(t, err)
	assert.Equal(t, "from answer", reply)
}

func TestChatBackendErrorIsVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Backend failures arrive with HTTP 200 and an error envelope.
		json.NewEncoder(w).Encode(map[string]string{"status": "error", "message": "model overloaded, try again"})
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Chat(context.Background(), "q", nil, "m")
	var be *BackendError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, "model overloaded, try again", be.Message)
}

func TestChatTransportErrorIsClientError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	_, err := testClient(srv.URL).Chat(context.Background(), "q", nil, "m")
	var ce *ClientError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, ErrTypeConnection, ce.Type)
}

func TestChatWithImageMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chat-with-image", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "what is this", r.FormValue("message"))
		assert.Equal(t, "data:image/png;base64,AAAA", r.FormValue("image"))
		assert.Equal(t, "gemini-2.5-pro", r.FormValue("model"))

		var hist []session.Turn
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("history")), &hist))
		assert.Len(t, hist, 2)

		json.NewEncoder(w).Encode(map[string]string{"response": "a dog"})
	}))
	defer srv.Close()

	history := []session.Turn{
		session.UserTurn("hi", ""),
		session.ModelTurn("hello", ""),
	}
	reply, err := testClient(srv.URL).ChatWithImage(context.Background(),
		"what is this", "data:image/png;base64,AAAA", history, "gemini-2.5-pro")
	require.NoError(t, err)
	assert.Equal(t, "a dog", reply)
}

func TestGenerateFallsBackSequentially(t *testing.T) {
	var providers []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		providers = append(providers, req.Provider)

		if req.Provider == "gemini" {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"status": "error", "message": "quota exhausted"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "success", "image_base64": "BBBB"})
	}))
	defer srv.Close()

	res, err := testClient(srv.URL).GenerateImage(context.Background(), "a red bicycle")
	require.NoError(t, err)
	// The backend sends raw base64; the client supplies the data-URL prefix.
	assert.Equal(t, "data:image/png;base64,BBBB", res.DataURL)
	assert.Equal(t, "pollinations", res.Provider)
	// Primary first, fallback second, nothing in parallel.
	assert.Equal(t, []string{"gemini", "pollinations"}, providers)
}

func TestGeneratePrimarySuccessSkipsFallback(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(map[string]string{"status": "success", "image_base64": "CCCC"})
	}))
	defer srv.Close()

	res, err := testClient(srv.URL).GenerateImage(context.Background(), "a cat")
	require.NoError(t, err)
	assert.Equal(t, "gemini", res.Provider)
	assert.Equal(t, 1, calls)
}

func TestGenerateBothProvidersFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "error", "message": "all providers down"})
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).GenerateImage(context.Background(), "anything")
	var be *BackendError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, "all providers down", be.Message)
}

func TestEditImagePayload(t *testing.T) {
	var got editRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/edit", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]string{"status": "success", "image_base64": "DDDD"})
	}))
	defer srv.Close()

	edited, err := testClient(srv.URL).EditImage(context.Background(),
		"data:image/png;base64,AAAA", "add a hat")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,DDDD", edited)
	assert.Equal(t, "data:image/png;base64,AAAA", got.Image)
	assert.Equal(t, "add a hat", got.EditPrompt)
	assert.Equal(t, "photorealistic", got.Style)
	assert.Equal(t, "1:1", got.AspectRatio)
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/health", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer srv.Close()

	assert.NoError(t, testClient(srv.URL).Health(context.Background()))
}

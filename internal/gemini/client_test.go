package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateText(t *testing.T) {
	var gotPath, gotKey string
	var gotReq generateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "Vanakkam! How can I help?"}}}},
			},
		})
	}))
	defer srv.Close()

	c := NewHTTPClient("test-key", srv.URL, time.Second)
	history := []Message{
		{Role: RoleUser, Text: "hello"},
		{Role: RoleModel, Text: "hi there"},
	}
	reply, err := c.GenerateText(context.Background(), "be helpful", history, "what time is the pool open?")

	require.NoError(t, err)
	assert.Equal(t, "Vanakkam! How can I help?", reply)
	assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	require.NotNil(t, gotReq.SystemInstruction)
	assert.Equal(t, "be helpful", gotReq.SystemInstruction.Parts[0].Text)
	// History turns followed by the new user message.
	require.Len(t, gotReq.Contents, 3)
	assert.Equal(t, RoleModel, gotReq.Contents[1].Role)
	assert.Equal(t, "what time is the pool open?", gotReq.Contents[2].Parts[0].Text)
}

func TestGenerateTextAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": 403, "message": "API key not valid"},
		})
	}))
	defer srv.Close()

	c := NewHTTPClient("bad-key", srv.URL, time.Second)
	_, err := c.GenerateText(context.Background(), "", nil, "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestGenerateTextEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer srv.Close()

	c := NewHTTPClient("test-key", srv.URL, time.Second)
	_, err := c.GenerateText(context.Background(), "", nil, "hello")
	assert.Error(t, err)
}

func TestGenerateImage(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G'}
	var gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{
					{"text": "here is your image"},
					{"inlineData": map[string]any{
						"mimeType": "image/png",
						"data":     base64.StdEncoding.EncodeToString(raw),
					}},
				}}},
			},
		})
	}))
	defer srv.Close()

	c := NewHTTPClient("test-key", srv.URL, time.Second)
	img, mime, err := c.GenerateImage(context.Background(), "a postcard of the resort")

	require.NoError(t, err)
	assert.Equal(t, "/v1beta/models/gemini-2.5-flash-image:generateContent", gotPath)
	assert.Equal(t, "image/png", mime)
	assert.Equal(t, raw, img)
}

func TestGenerateImageNoImageInResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "cannot draw that"}}}},
			},
		})
	}))
	defer srv.Close()

	c := NewHTTPClient("test-key", srv.URL, time.Second)
	_, _, err := c.GenerateImage(context.Background(), "a postcard")
	assert.Error(t, err)
}

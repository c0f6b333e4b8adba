// Package gemini is a thin REST client for the Google Generative Language API,
// used by the concierge service for chat and souvenir image generation. The
// client applies its own timeout and reports plain errors; the caller is
// responsible for degrading to a user-visible fallback.
package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	chatModel      = "gemini-2.5-flash"
	imageModel     = "gemini-2.5-flash-image"

	defaultTimeout = 30 * time.Second
)

// Message roles in a conversation history.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Message is one turn of an ordered conversation history.
type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Client calls the generative backend. It is satisfied by *HTTPClient and by
// test doubles.
type Client interface {
	GenerateText(ctx context.Context, systemInstruction string, history []Message, message string) (string, error)
	GenerateImage(ctx context.Context, prompt string) ([]byte, string, error)
}

type HTTPClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewHTTPClient builds a client for the given API key. baseURL is overridable
// for tests; pass "" for the production endpoint.
func NewHTTPClient(apiKey, baseURL string, timeout time.Duration) *HTTPClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// Wire types for the generateContent endpoint.

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	SystemInstruction *content  `json:"systemInstruction,omitempty"`
	Contents          []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateText sends the conversation history plus the new user message and
// returns the model's text reply.
func (c *HTTPClient) GenerateText(ctx context.Context, systemInstruction string, history []Message, message string) (string, error) {
	req := generateRequest{}
	if systemInstruction != "" {
		req.SystemInstruction = &content{Parts: []part{{Text: systemInstruction}}}
	}
	for _, m := range history {
		req.Contents = append(req.Contents, content{Role: m.Role, Parts: []part{{Text: m.Text}}})
	}
	req.Contents = append(req.Contents, content{Role: RoleUser, Parts: []part{{Text: message}}})

	resp, err := c.generate(ctx, chatModel, req)
	if err != nil {
		return "", err
	}
	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			if p.Text != "" {
				return p.Text, nil
			}
		}
	}
	return "", fmt.Errorf("gemini: empty response")
}

// GenerateImage asks the image model for a single image and returns the raw
// bytes plus the mime type.
func (c *HTTPClient) GenerateImage(ctx context.Context, prompt string) ([]byte, string, error) {
	req := generateRequest{
		Contents: []content{{Role: RoleUser, Parts: []part{{Text: prompt}}}},
	}

	resp, err := c.generate(ctx, imageModel, req)
	if err != nil {
		return nil, "", err
	}
	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			if p.InlineData == nil {
				continue
			}
			raw, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
			if err != nil {
				return nil, "", fmt.Errorf("gemini: decode image payload: %w", err)
			}
			return raw, p.InlineData.MimeType, nil
		}
	}
	return nil, "", fmt.Errorf("gemini: response contained no image")
}

func (c *HTTPClient) generate(ctx context.Context, modelName string, payload generateRequest) (generateResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return generateResponse{}, fmt.Errorf("gemini: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, modelName)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return generateResponse{}, fmt.Errorf("gemini: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return generateResponse{}, fmt.Errorf("gemini: call %s: %w", modelName, err)
	}
	defer httpResp.Body.Close()

	var resp generateResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return generateResponse{}, fmt.Errorf("gemini: decode response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		if resp.Error != nil {
			return generateResponse{}, fmt.Errorf("gemini: %s (status %d)", resp.Error.Message, httpResp.StatusCode)
		}
		return generateResponse{}, fmt.Errorf("gemini: unexpected status %d", httpResp.StatusCode)
	}
	return resp, nil
}

package service

import (
	"context"
	"encoding/base64"

	"backend/internal/gemini"
	"backend/pkg/logging"
)

// conciergePersona is the system instruction for the digital concierge.
const conciergePersona = `You are 'Kalki Sakhi', the digital concierge for KALKI JAM JAM RESORT in Bhavani, Tamil Nadu.
You speak in a warm, welcoming Tamil-English friendly tone.
The resort features a water park, spa, luxury buffet, and events.
Help guests with: package queries, directions, food suggestions, and resort facts.
Resort Motto: 'One ID • All Fun • Pay at Exit'.`

// souvenirPromptPrefix decorates free-text souvenir prompts with the resort's
// house style.
const souvenirPromptPrefix = "A high-quality, vibrant, family-friendly resort souvenir photo: "

const souvenirPromptSuffix = ". The style should be tropical, festive, and premium, featuring Kalki Jam Jam Resort branding elements like palm trees and aqua water."

// chatFallback is shown whenever the generative backend fails. Failures are
// never propagated and never retried.
const chatFallback = "Sorry, Kalki Sakhi is taking a short break. Please ask our front desk for help!"

// --- DTOs ---

type ChatMessage struct {
	Role string `json:"role" binding:"required,oneof=user model"`
	Text string `json:"text" binding:"required"`
}

type ChatRequest struct {
	History []ChatMessage `json:"history"`
	Message string        `json:"message" binding:"required"`
}

type ChatResponse struct {
	Reply    string `json:"reply"`
	Fallback bool   `json:"fallback"`
}

type SouvenirRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type SouvenirResponse struct {
	Image    string `json:"image,omitempty"` // base64 payload
	MimeType string `json:"mime_type,omitempty"`
	Message  string `json:"message,omitempty"`
}

// --- Interface ---

type ConciergeService interface {
	// Chat never fails: a backend error degrades to the fixed fallback reply.
	Chat(ctx context.Context, req ChatRequest) ChatResponse
	// Souvenir returns an image payload, or a fallback message and no image.
	Souvenir(ctx context.Context, req SouvenirRequest) SouvenirResponse
}

type conciergeService struct {
	client gemini.Client
}

func NewConciergeService(client gemini.Client) ConciergeService {
	return &conciergeService{client: client}
}

// --- Implementation ---

func (s *conciergeService) Chat(ctx context.Context, req ChatRequest) ChatResponse {
	history := make([]gemini.Message, 0, len(req.History))
	for _, m := range req.History {
		history = append(history, gemini.Message{Role: m.Role, Text: m.Text})
	}

	reply, err := s.client.GenerateText(ctx, conciergePersona, history, req.Message)
	if err != nil {
		logging.ErrorLogger.Errorf("concierge chat failed: %v", err)
		return ChatResponse{Reply: chatFallback, Fallback: true}
	}
	return ChatResponse{Reply: reply}
}

func (s *conciergeService) Souvenir(ctx context.Context, req SouvenirRequest) SouvenirResponse {
	prompt := souvenirPromptPrefix + req.Prompt + souvenirPromptSuffix
	raw, mimeType, err := s.client.GenerateImage(ctx, prompt)
	if err != nil {
		logging.ErrorLogger.Errorf("souvenir generation failed: %v", err)
		return SouvenirResponse{Message: chatFallback}
	}
	return SouvenirResponse{
		Image:    base64.StdEncoding.EncodeToString(raw),
		MimeType: mimeType,
	}
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"resume-screener/internal/config"
)

// TextGenerator is the narrow seam between this application and the external
// AI service: prompt in, raw text out. Tests substitute a deterministic stub.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type AIErrorKind string

const (
	AIErrorAuth      AIErrorKind = "auth"
	AIErrorRateLimit AIErrorKind = "rate_limit"
	AIErrorNetwork   AIErrorKind = "network"
	AIErrorUnknown   AIErrorKind = "unknown"
)

// AIServiceError is any failure of the external AI call, tagged with a kind
// the orchestrator can turn into a distinct user-facing message.
type AIServiceError struct {
	Kind AIErrorKind
	Err  error
}

func (e *AIServiceError) Error() string {
	return fmt.Sprintf("ai service error (%s): %v", e.Kind, e.Err)
}

func (e *AIServiceError) Unwrap() error {
	return e.Err
}

// Message returns the caller-facing description for the error kind.
func (e *AIServiceError) Message() string {
	switch e.Kind {
	case AIErrorAuth:
		return "AI service rejected the configured credential"
	case AIErrorRateLimit:
		return "AI service rate limit or quota exceeded, try again later"
	case AIErrorNetwork:
		return "AI service is unreachable or timed out"
	default:
		return "AI service returned an unexpected error"
	}
}

// ClassifyAIError buckets an error from the genai client into the taxonomy
// above. The client surfaces transport and API failures as wrapped errors, so
// classification inspects the error chain and its text.
func ClassifyAIError(err error) AIErrorKind {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return AIErrorNetwork
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key") ||
		strings.Contains(msg, "unauthenticated") ||
		strings.Contains(msg, "permission") ||
		strings.Contains(msg, "401") ||
		strings.Contains(msg, "403"):
		return AIErrorAuth
	case strings.Contains(msg, "quota") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "resource exhausted") ||
		strings.Contains(msg, "429"):
		return AIErrorRateLimit
	case strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "deadline") ||
		strings.Contains(msg, "connection") ||
		strings.Contains(msg, "unavailable") ||
		strings.Contains(msg, "no such host"):
		return AIErrorNetwork
	default:
		return AIErrorUnknown
	}
}

type GeminiService interface {
	TextGenerator
}

type geminiService struct {
	client    *genai.Client
	modelName string
}

func NewGeminiService(cfg config.GeminiConfig) (GeminiService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:    client,
		modelName: cfg.Model,
	}, nil
}

// GenerateText implements TextGenerator with exactly one blocking call per
// invocation. Every consumed invocation spends API quota, so there are no
// silent retries here; failures go straight back to the caller.
func (g *geminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	temperature := float32(0.3)
	genCfg := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 4096,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), genCfg)
	if err != nil {
		return "", &AIServiceError{Kind: ClassifyAIError(err), Err: err}
	}

	if resp == nil {
		return "", &AIServiceError{Kind: AIErrorUnknown, Err: errors.New("nil response from model")}
	}

	text := resp.Text()
	if text == "" {
		return "", &AIServiceError{Kind: AIErrorUnknown, Err: errors.New("no text content in response")}
	}

	return text, nil
}

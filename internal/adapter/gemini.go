// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-job-tracker/internal/config"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/models"
)

const (
	geminiTemperature = 0.7
	geminiMaxTokens   = 1024
)

type geminiGenerator struct {
	model  llms.Model
	logger *logger.Logger
}

// NewGeminiGenerator constructs a [TextGenerator] backed by Google Gemini.
func NewGeminiGenerator(ctx context.Context, cfg config.Gemini, log *logger.Logger) (TextGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: gemini api key is empty", ErrNotConfigured)
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.APIKey),
		googleai.WithDefaultModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating gemini client: %w", err)
	}

	return newGeminiGenerator(llm, log), nil
}

func newGeminiGenerator(model llms.Model, log *logger.Logger) *geminiGenerator {
	return &geminiGenerator{model: model, logger: log}
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	text, err := llms.GenerateFromSinglePrompt(ctx, g.model, prompt,
		llms.WithTemperature(geminiTemperature),
		llms.WithMaxTokens(geminiMaxTokens),
	)
	if err != nil {
		return "", &StatusError{Service: models.ServiceGemini, Code: geminiStatus(err), Err: err}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", &StatusError{Service: models.ServiceGemini, Code: http.StatusOK, Err: fmt.Errorf("%w: empty completion", ErrDecodeResponse)}
	}

	return text, nil
}

// geminiStatus derives an HTTP status from a Gemini client error. The client
// reports gRPC codes; errors without one are treated as transport failures.
func geminiStatus(err error) int {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return 0
	}

	if st, ok := status.FromError(err); ok && st.Code() != codes.Unknown {
		switch st.Code() {
		case codes.OK:
			return http.StatusOK
		case codes.ResourceExhausted:
			return http.StatusTooManyRequests
		case codes.InvalidArgument, codes.FailedPrecondition:
			return http.StatusBadRequest
		case codes.Unauthenticated:
			return http.StatusUnauthorized
		case codes.PermissionDenied:
			return http.StatusForbidden
		case codes.NotFound:
			return http.StatusNotFound
		case codes.Unavailable:
			return http.StatusServiceUnavailable
		default:
			return http.StatusInternalServerError
		}
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "429"), strings.Contains(msg, "RESOURCE_EXHAUSTED"), strings.Contains(msg, "quota"):
		return http.StatusTooManyRequests
	case strings.Contains(msg, "API key not valid"), strings.Contains(msg, "INVALID_ARGUMENT"), strings.Contains(msg, "400"):
		return http.StatusBadRequest
	case strings.Contains(msg, "503"), strings.Contains(msg, "UNAVAILABLE"):
		return http.StatusServiceUnavailable
	case strings.Contains(msg, "500"), strings.Contains(msg, "INTERNAL"):
		return http.StatusInternalServerError
	default:
		return 0
	}
}
